package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsconf/internal/adapters/logger"
	"go.trai.ch/tsconf/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer with colors disabled.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("ancestor /repo/base.json could not be loaded and is treated as empty: failed to parse config file: invalid json")

	g := goldie.New(t)
	g.Assert(t, "warn_ancestor_degraded", buf.Bytes())
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("resolved /repo/tsconfig.json")

	assert.Equal(t, "resolved /repo/tsconfig.json\n", buf.String())
}

func TestLogger_Debug(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Debug("extends cycle stopped at /repo/a.json")
	assert.Empty(t, buf.String(), "debug is filtered at the default level")

	lg.SetLevel(slog.LevelDebug)
	lg.Debug("extends cycle stopped at /repo/a.json")

	g := goldie.New(t)
	g.Assert(t, "debug_enabled", buf.Bytes())
}

func TestLogger_SetLevel_SurvivesModeSwitch(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetLevel(slog.LevelWarn)
	lg.SetJSON(true)
	lg.SetJSON(false)

	lg.Info("hidden")
	assert.Empty(t, buf.String())

	lg.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "directory without configuration",
			err:        zerr.With(zerr.With(domain.ErrResolutionFailed, "reason", "not-found"), "cwd", "/repo/app"),
			goldenName: "error_resolution_not_found",
		},
		{
			name:       "invalid configuration",
			err:        zerr.With(zerr.With(domain.ErrResolutionFailed, "reason", "invalid-config"), "path", "/repo/broken/tsconfig.json"),
			goldenName: "error_resolution_invalid",
		},
		{
			name: "locate failure keeps sentinel cause",
			err: zerr.Wrap(
				zerr.With(zerr.Wrap(domain.ErrConfigNotFound, ""), "file", "/repo/tsconfig.build.json"),
				"failed to locate configuration",
			),
			goldenName: "error_locate_failed",
		},
		{
			name:       "query without match",
			err:        zerr.With(zerr.With(domain.ErrQueryNoMatch, "query", "compilerOptions.jsx"), "path", "/repo/tsconfig.json"),
			goldenName: "error_query_no_match",
		},
		{
			name: "read failure over stdlib error",
			err: zerr.With(
				zerr.Wrap(errors.New("open /repo/base.json: permission denied"), domain.ErrConfigReadFailed.Error()),
				"path", "/repo/base.json",
			),
			goldenName: "error_read_failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String(), "Expected no output for nil error")
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Error(zerr.With(zerr.New("config is not an object"), "path", "/repo/tsconfig.json"))

	output := buf.String()
	assert.Contains(t, output, `"error"`, "JSON output should contain error field")
	assert.Contains(t, output, `"level":"ERROR"`, "JSON output should contain level field")
	assert.Contains(t, output, "config is not an object")
	assert.NotContains(t, output, "✗", "JSON format should not have pretty markers")
}

func TestLogger_FormatSwitching(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(errors.New("error in pretty mode"))
	prettyOutput := buf.String()
	buf.Reset()

	lg.SetJSON(true)
	lg.Error(errors.New("error in json mode"))
	jsonOutput := buf.String()
	buf.Reset()

	lg.SetJSON(false)
	lg.Error(errors.New("error back in pretty mode"))
	backToPrettyOutput := buf.String()

	assert.Contains(t, prettyOutput, "✗")
	assert.NotContains(t, prettyOutput, `"error"`)
	assert.Contains(t, jsonOutput, `"error"`)
	assert.NotContains(t, jsonOutput, "✗")
	assert.Contains(t, backToPrettyOutput, "✗")
}

func TestLogger_SetOutput_Nil(t *testing.T) {
	require.NotPanics(t, func() {
		lg := logger.New().(*logger.Logger)
		lg.SetOutput(nil)
	})
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, _ := newTestLogger(t)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			switch i % 4 {
			case 0:
				lg.Info("concurrent info")
			case 1:
				lg.Warn("concurrent warn")
			case 2:
				lg.Error(errors.New("concurrent error"))
			default:
				lg.SetJSON(i%8 == 3)
			}
		}()
	}
	wg.Wait()
}
