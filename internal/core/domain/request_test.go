package domain_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsconf/internal/core/domain"
)

func TestParseCacheStrategy(t *testing.T) {
	tests := []struct {
		in   string
		want domain.CacheStrategy
	}{
		{in: "", want: ""},
		{in: "never", want: domain.CacheNever},
		{in: "Always", want: domain.CacheAlways},
		{in: " directory ", want: domain.CacheDirectory},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseCacheStrategy(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := domain.ParseCacheStrategy("sometimes")
	require.ErrorContains(t, err, domain.ErrInvalidCacheStrategy.Error())
}

func TestRequest_WithDefaults(t *testing.T) {
	getwd := func() (string, error) { return "/work", nil }

	got := domain.Request{}.WithDefaults(getwd)

	assert.Equal(t, domain.Request{
		Cwd:           filepath.FromSlash("/work"),
		SearchName:    domain.DefaultSearchName,
		CacheStrategy: domain.CacheNever,
	}, got)
}

func TestRequest_WithDefaults_ExplicitFileCachesAlways(t *testing.T) {
	got := domain.Request{Cwd: "/work", FilePath: "tsconfig.build.json"}.WithDefaults(nil)

	assert.Equal(t, domain.CacheAlways, got.CacheStrategy)

	got = domain.Request{Cwd: "/work", FilePath: "tsconfig.build.json", CacheStrategy: domain.CacheNever}.WithDefaults(nil)
	assert.Equal(t, domain.CacheNever, got.CacheStrategy)
}

func TestRequest_WithDefaults_RelativeCwd(t *testing.T) {
	got := domain.Request{Cwd: "packages/app", SearchName: "jsconfig.json"}.WithDefaults(nil)

	assert.True(t, filepath.IsAbs(got.Cwd))
	assert.Equal(t, "jsconfig.json", got.SearchName)
}

func TestRequest_WithDefaults_GetwdFails(t *testing.T) {
	got := domain.Request{}.WithDefaults(func() (string, error) { return "", errors.New("gone") })

	abs, err := filepath.Abs(".")
	require.NoError(t, err)
	assert.Equal(t, abs, got.Cwd)
}
