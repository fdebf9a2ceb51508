package resolver_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsconf/internal/adapters/cache"
	"go.trai.ch/tsconf/internal/adapters/fs"
	"go.trai.ch/tsconf/internal/adapters/jsonc"
	"go.trai.ch/tsconf/internal/adapters/npm"
	"go.trai.ch/tsconf/internal/adapters/telemetry"
	"go.trai.ch/tsconf/internal/core/ports/mocks"
	"go.trai.ch/tsconf/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

// memTree builds an in-memory filesystem from path to content pairs.
func memTree(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	mem := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, mem.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, afero.WriteFile(mem, path, []byte(content), 0o644))
	}
	return mem
}

// quietLogger accepts any log call.
func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()

	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}

func newChain(t *testing.T, mem afero.Fs) *resolver.Chain {
	t.Helper()

	probe := fs.NewProbeWithFs(mem)
	return resolver.NewChain(
		resolver.NewLoader(probe, jsonc.NewParser()),
		probe,
		npm.NewResolver(probe),
		quietLogger(t),
	)
}

func newResolver(t *testing.T, mem afero.Fs) *resolver.Resolver {
	t.Helper()

	probe := fs.NewProbeWithFs(mem)
	return resolver.New(
		probe,
		jsonc.NewParser(),
		npm.NewResolver(probe),
		cache.NewStore(),
		telemetry.NewNoOpTracer(),
		quietLogger(t),
	)
}

func writeFile(mem afero.Fs, path, content string) error {
	return afero.WriteFile(mem, path, []byte(content), 0o644)
}
