package kdtree

import (
	"bytes"
	"log/slog"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, RoundRobin{}, cfg.Strategy)
	assert.Equal(t, 0, cfg.Workers)
	assert.Nil(t, cfg.Logger)
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	applyDefaults(&cfg)
	assert.Equal(t, RoundRobin{}, cfg.Strategy)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.NotNil(t, cfg.Logger)

	cfg = Config{Strategy: MaxSpread{}, Workers: 3}
	applyDefaults(&cfg)
	assert.Equal(t, MaxSpread{}, cfg.Strategy)
	assert.Equal(t, 3, cfg.Workers)
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = -1
	_, err := New([]Vec2[float64]{{0, 0}}, cfg)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "Workers")
}

func TestNew_ZeroConfig(t *testing.T) {
	tree, err := New([]Vec2[float64]{{0, 0}, {1, 1}}, Config{})
	require.NoError(t, err)
	assert.Equal(t, 2, tree.Len())
}

func TestNew_LogsBuild(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Strategy = MaxSpread{}
	cfg.Logger = slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := New([]Vec3[float64]{{0, 0, 0}, {1, 2, 3}, {4, 5, 6}}, cfg)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"kdtree built"`)
	assert.Contains(t, out, `"points":3`)
	assert.Contains(t, out, `"height":2`)
	assert.Contains(t, out, `"strategy":"max_spread"`)
}

func TestNew_QuietAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(&buf, nil))

	_, err := New([]Vec1[float64]{{1}}, cfg)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
