package resolver

import (
	"runtime"
	"strings"
)

// Platform selects the path syntax used by Classify.
type Platform int

const (
	// PlatformNative uses the syntax of the running operating system.
	PlatformNative Platform = iota
	// PlatformPOSIX uses forward-slash paths rooted at "/".
	PlatformPOSIX
	// PlatformWindows accepts drive letters, UNC shares and either separator.
	PlatformWindows
)

// PathInfo describes how a reference should be resolved.
type PathInfo struct {
	// Root is the root segment of the reference, empty when relative.
	Root string
	// IsAbsolute is true when Root is present.
	IsAbsolute bool
	// IsPackage is true when the reference is neither rooted nor starts with ".".
	IsPackage bool
}

// Classify inspects ref without touching the filesystem. Every string is
// classifiable.
func Classify(ref string, platform Platform) PathInfo {
	if platform == PlatformNative {
		platform = PlatformPOSIX
		if runtime.GOOS == "windows" {
			platform = PlatformWindows
		}
	}

	var root string
	if platform == PlatformWindows {
		root = windowsRoot(ref)
	} else if strings.HasPrefix(ref, "/") {
		root = "/"
	}

	return PathInfo{
		Root:       root,
		IsAbsolute: root != "",
		IsPackage:  root == "" && !strings.HasPrefix(ref, "."),
	}
}

func isWindowsSeparator(c byte) bool {
	return c == '/' || c == '\\'
}

// windowsRoot returns the leading `\`, `C:`, `C:\` or `\\server\share\`
// segment of p.
func windowsRoot(p string) string {
	if p == "" {
		return ""
	}

	if isWindowsSeparator(p[0]) {
		if len(p) > 1 && isWindowsSeparator(p[1]) {
			if root, ok := uncRoot(p); ok {
				return root
			}
		}
		return p[:1]
	}

	if len(p) >= 2 && p[1] == ':' && isDriveLetter(p[0]) {
		if len(p) > 2 && isWindowsSeparator(p[2]) {
			return p[:3]
		}
		return p[:2]
	}

	return ""
}

// uncRoot matches `\\server\share` with an optional trailing separator.
func uncRoot(p string) (string, bool) {
	server := segmentEnd(p, 2)
	if server == 2 || server == len(p) {
		return "", false
	}

	share := segmentEnd(p, server+1)
	if share == server+1 {
		return "", false
	}
	if share < len(p) {
		return p[:share+1], true
	}
	return p, true
}

func segmentEnd(p string, start int) int {
	i := start
	for i < len(p) && !isWindowsSeparator(p[i]) {
		i++
	}
	return i
}

func isDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
