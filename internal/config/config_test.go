package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridtop/gridtop/internal/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, time.Second, cfg.RefreshInterval)
	assert.Equal(t, 60*time.Second, cfg.TimeWindow)
	assert.True(t, cfg.ShowBorder)
	assert.True(t, cfg.ShowScrollIndex)
	assert.False(t, cfg.DotMarker)
	assert.NoError(t, cfg.Validate())
}

func TestEffectiveHistorySize(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want int
	}{
		{
			name: "derived from time window",
			cfg:  Config{RefreshInterval: time.Second, TimeWindow: 60 * time.Second},
			want: 60,
		},
		{
			name: "explicit override wins",
			cfg:  Config{RefreshInterval: time.Second, TimeWindow: 60 * time.Second, HistorySize: 120},
			want: 120,
		},
		{
			name: "sub-second refresh",
			cfg:  Config{RefreshInterval: 250 * time.Millisecond, TimeWindow: 30 * time.Second},
			want: 120,
		},
		{
			name: "never fewer than two samples",
			cfg:  Config{RefreshInterval: time.Minute, TimeWindow: time.Minute},
			want: 2,
		},
		{
			name: "zero interval",
			cfg:  Config{},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.EffectiveHistorySize())
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults valid", mutate: func(c *Config) {}},
		{name: "interval too short", mutate: func(c *Config) { c.RefreshInterval = 50 * time.Millisecond }, wantErr: true},
		{name: "window below interval", mutate: func(c *Config) { c.TimeWindow = 500 * time.Millisecond }, wantErr: true},
		{name: "negative history", mutate: func(c *Config) { c.HistorySize = -1 }, wantErr: true},
		{name: "zero cores", mutate: func(c *Config) { c.Cores = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `refresh_interval: 2s
time_window: 120s
dot_marker: true
show_border: false
cores: 4
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.RefreshInterval)
	assert.Equal(t, 120*time.Second, cfg.TimeWindow)
	assert.True(t, cfg.DotMarker)
	assert.False(t, cfg.ShowBorder)
	assert.Equal(t, 4, cfg.Cores)
	// Unset fields keep their defaults
	assert.True(t, cfg.ShowScrollIndex)
	assert.Equal(t, 60, cfg.EffectiveHistorySize())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoadInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("refresh_interval: 10ms\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFindExplicit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cores: 2\n"), 0o644))

	found, err := Find(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	_, err = Find(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadOrDefaultWithoutConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
