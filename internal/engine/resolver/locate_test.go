package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsconf/internal/adapters/fs"
	"go.trai.ch/tsconf/internal/adapters/npm"
	"go.trai.ch/tsconf/internal/core/domain"
	"go.trai.ch/tsconf/internal/core/ports/mocks"
	"go.trai.ch/tsconf/internal/engine/resolver"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestLocator_Locate(t *testing.T) {
	mem := memTree(t, map[string]string{
		"/repo/tsconfig.json":                                "{}",
		"/repo/a/b/c/.keep":                                  "",
		"/repo/pkg/tsconfig.json":                            "{}",
		"/repo/pkg/tsconfig.build.json":                      "{}",
		"/repo/pkg/configs/tsconfig.json":                    "{}",
		"/repo/pkg/configs/custom.json":                      "{}",
		"/repo/node_modules/@tsconfig/node16/tsconfig.json":  "{}",
		"/repo/node_modules/shared-config/base.json":         "{}",
		"/repo/node_modules/dir-config/nested/tsconfig.json": "{}",
		"/isolated/src/.keep":                                "",
	})
	probe := fs.NewProbeWithFs(mem)
	locator := resolver.NewLocator(probe, npm.NewResolver(probe))

	tests := []struct {
		name       string
		cwd        string
		searchName string
		explicit   string
		want       string
		wantErr    bool
	}{
		{name: "config in cwd", cwd: "/repo/pkg", want: "/repo/pkg/tsconfig.json"},
		{name: "walks upward", cwd: "/repo/a/b/c", want: "/repo/tsconfig.json"},
		{name: "cwd is a file", cwd: "/repo/pkg/tsconfig.build.json", want: "/repo/pkg/tsconfig.build.json"},
		{name: "not found up to root", cwd: "/isolated/src", wantErr: true},
		{name: "non-default name in cwd", cwd: "/repo/pkg", searchName: "tsconfig.build.json", want: "/repo/pkg/tsconfig.build.json"},
		{name: "non-default name does not walk upward", cwd: "/repo/pkg/configs", searchName: "tsconfig.build.json", wantErr: true},
		{name: "non-default name naming a directory", cwd: "/repo/pkg", searchName: "configs", want: "/repo/pkg/configs/tsconfig.json"},
		{name: "explicit relative file", cwd: "/repo/pkg", explicit: "configs/custom.json", want: "/repo/pkg/configs/custom.json"},
		{name: "explicit absolute file", cwd: "/isolated", explicit: "/repo/pkg/configs/custom.json", want: "/repo/pkg/configs/custom.json"},
		{name: "explicit directory appends search name", cwd: "/repo/pkg", explicit: "configs", want: "/repo/pkg/configs/tsconfig.json"},
		{name: "explicit directory with custom search name", cwd: "/repo/pkg", explicit: "configs", searchName: "custom.json", want: "/repo/pkg/configs/custom.json"},
		{name: "explicit missing file does not fall back", cwd: "/repo/pkg", explicit: "missing.json", wantErr: true},
		{name: "package directory", cwd: "/repo/pkg", explicit: "npm:@tsconfig/node16", want: "/repo/node_modules/@tsconfig/node16/tsconfig.json"},
		{name: "package file without extension", cwd: "/repo/pkg", explicit: "npm:shared-config/base", want: "/repo/node_modules/shared-config/base.json"},
		{name: "package subdirectory", cwd: "/repo", explicit: "npm:dir-config/nested", want: "/repo/node_modules/dir-config/nested/tsconfig.json"},
		{name: "package not installed", cwd: "/repo", explicit: "npm:absent", wantErr: true},
		{name: "package outside the search path", cwd: "/isolated", explicit: "npm:shared-config/base", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := locator.Locate(tt.cwd, tt.searchName, tt.explicit)
			if tt.wantErr {
				require.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocator_Locate_NotFoundMetadata(t *testing.T) {
	probe := fs.NewProbeWithFs(memTree(t, map[string]string{"/empty/.keep": ""}))
	locator := resolver.NewLocator(probe, npm.NewResolver(probe))

	_, err := locator.Locate("/empty", "", "")
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "/empty", zErr.Metadata()["cwd"])
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestLocator_Locate_NotFoundMatchesSentinel(t *testing.T) {
	probe := fs.NewProbeWithFs(memTree(t, map[string]string{"/work/.keep": ""}))
	locator := resolver.NewLocator(probe, npm.NewResolver(probe))

	tests := []struct {
		name       string
		searchName string
		explicit   string
	}{
		{name: "missing explicit file", explicit: "tsconfig.build.json"},
		{name: "missing package", explicit: "npm:@acme/tsconfig"},
		{name: "missing named file", searchName: "jsconfig.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := locator.Locate("/work", tt.searchName, tt.explicit)
			require.ErrorIs(t, err, domain.ErrConfigNotFound)
			assert.Equal(t, domain.ErrConfigNotFound.Error(), err.Error())
		})
	}
}

func TestLocator_Locate_PackageFailureKeepsReason(t *testing.T) {
	probe := fs.NewProbeWithFs(memTree(t, map[string]string{"/work/.keep": ""}))

	_, err := resolver.NewLocator(probe, npm.NewResolver(probe)).Locate("/work", "", "npm:@acme/tsconfig")

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "npm:@acme/tsconfig", zErr.Metadata()["file"])
	assert.Contains(t, zErr.Metadata()["reason"], domain.ErrPackageNotFound.Error())
}

func TestLocator_Locate_PackageUsesCwdAsBase(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsys := mocks.NewMockFileSystem(ctrl)
	packages := mocks.NewMockPackageResolver(ctrl)

	packages.EXPECT().ResolvePackage("shared", "/work").Return("/cache/shared/tsconfig.json", nil)
	fsys.EXPECT().IsDir("/cache/shared/tsconfig.json").Return(false)
	fsys.EXPECT().IsFile("/cache/shared/tsconfig.json").Return(true).Times(2)

	got, err := resolver.NewLocator(fsys, packages).Locate("/work", "", "npm:shared")
	require.NoError(t, err)
	assert.Equal(t, "/cache/shared/tsconfig.json", got)
}
