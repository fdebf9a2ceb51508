package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/tsconf/internal/engine/resolver"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		ref      string
		platform resolver.Platform
		want     resolver.PathInfo
	}{
		{name: "posix absolute", ref: "/etc/tsconfig.json", platform: resolver.PlatformPOSIX, want: resolver.PathInfo{Root: "/", IsAbsolute: true}},
		{name: "posix relative dot", ref: "./base.json", platform: resolver.PlatformPOSIX, want: resolver.PathInfo{}},
		{name: "posix relative parent", ref: "../base", platform: resolver.PlatformPOSIX, want: resolver.PathInfo{}},
		{name: "posix package", ref: "@tsconfig/node16", platform: resolver.PlatformPOSIX, want: resolver.PathInfo{IsPackage: true}},
		{name: "posix bare file is a package", ref: "base.json", platform: resolver.PlatformPOSIX, want: resolver.PathInfo{IsPackage: true}},
		{name: "posix drive letter is a package", ref: `C:\base.json`, platform: resolver.PlatformPOSIX, want: resolver.PathInfo{IsPackage: true}},
		{name: "empty", ref: "", platform: resolver.PlatformPOSIX, want: resolver.PathInfo{IsPackage: true}},
		{name: "windows drive", ref: `C:\repo\tsconfig.json`, platform: resolver.PlatformWindows, want: resolver.PathInfo{Root: `C:\`, IsAbsolute: true}},
		{name: "windows drive relative", ref: `c:tsconfig.json`, platform: resolver.PlatformWindows, want: resolver.PathInfo{Root: `c:`, IsAbsolute: true}},
		{name: "windows rooted", ref: `\repo\tsconfig.json`, platform: resolver.PlatformWindows, want: resolver.PathInfo{Root: `\`, IsAbsolute: true}},
		{name: "windows forward slash", ref: "/repo/tsconfig.json", platform: resolver.PlatformWindows, want: resolver.PathInfo{Root: "/", IsAbsolute: true}},
		{name: "windows unc", ref: `\\server\share\tsconfig.json`, platform: resolver.PlatformWindows, want: resolver.PathInfo{Root: `\\server\share\`, IsAbsolute: true}},
		{name: "windows unc without trailing separator", ref: `\\server\share`, platform: resolver.PlatformWindows, want: resolver.PathInfo{Root: `\\server\share`, IsAbsolute: true}},
		{name: "windows relative", ref: `..\base`, platform: resolver.PlatformWindows, want: resolver.PathInfo{}},
		{name: "windows package", ref: "@tsconfig/node16", platform: resolver.PlatformWindows, want: resolver.PathInfo{IsPackage: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.Classify(tt.ref, tt.platform))
		})
	}
}
