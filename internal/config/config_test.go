package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/larynjahor/ds/internal/config"
)

func TestLoad_Default(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.NotEmpty(t, cfg.Scenarios)

	for _, sc := range cfg.Scenarios {
		require.Positive(t, sc.Ops)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		err  error
	}{
		{
			name: "unknown adapter",
			yaml: `
scenarios:
  - name: x
    adapter: tree
    backend: vector
    ops: 1
`,
			err: config.ErrUnknownAdapter,
		},
		{
			name: "unknown backend",
			yaml: `
scenarios:
  - name: x
    adapter: stack
    backend: rope
    ops: 1
`,
			err: config.ErrUnknownBackend,
		},
		{
			name: "queue over vector",
			yaml: `
scenarios:
  - name: x
    adapter: queue
    backend: vector
    ops: 1
`,
			err: config.ErrBadScenario,
		},
		{
			name: "no ops",
			yaml: `
scenarios:
  - name: x
    adapter: stack
    backend: vector
    ops: 0
`,
			err: config.ErrBadScenario,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			_, err := config.Load(path)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
