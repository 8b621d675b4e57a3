package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/Akron/morton-go/harness"
)

func newTestContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	app, err := newApp()
	require.NoError(t, err)
	set := flag.NewFlagSet(app.Name, flag.ContinueOnError)
	for _, f := range app.Flags {
		require.NoError(t, f.Apply(set))
	}
	require.NoError(t, set.Parse(args))
	return cli.NewContext(app, set, nil)
}

func writeConfig(t *testing.T, json string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(json), 0o600))
	return path
}

func TestFlagDefaultsMatchConfig(t *testing.T) {
	defaults, err := harness.NewConfig()
	require.NoError(t, err)

	c := newTestContext(t)
	assert.Equal(t, defaults.MinSize, c.Int(MINSIZE))
	assert.Equal(t, defaults.MaxSize, c.Int(MAXSIZE))
	assert.Equal(t, defaults.Times, c.Int(TIMES))
	assert.Equal(t, defaults.PoolSize, c.Int(POOLSIZE))
	assert.Equal(t, defaults.Seed, c.Int64(SEED))
	assert.Equal(t, defaults.Workers, c.Int(WORKERS))
}

func TestLoadConfigPrecedence(t *testing.T) {
	defaults, err := harness.NewConfig()
	require.NoError(t, err)
	path := writeConfig(t, `{"maxSize": 256, "times": 5, "seed": 9}`)

	tests := []struct {
		name string
		args []string
		want harness.Config
	}{
		{
			name: "defaults",
			want: defaults,
		},
		{
			name: "config file over defaults",
			args: []string{"--config", path},
			want: harness.Config{MinSize: 32, MaxSize: 256, Times: 5, PoolSize: 9000, Seed: 9, Workers: 1},
		},
		{
			name: "flags over config file",
			args: []string{"-c", path, "--max-size", "512", "--seed", "3", "-w", "2"},
			want: harness.Config{MinSize: 32, MaxSize: 512, Times: 5, PoolSize: 9000, Seed: 3, Workers: 2},
		},
		{
			name: "flags over defaults",
			args: []string{"--min-size", "8", "--pool-size", "100"},
			want: harness.Config{MinSize: 8, MaxSize: 128, Times: 3, PoolSize: 100, Seed: 42, Workers: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadConfig(newTestContext(t, tt.args...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestLoadConfigEnvOverConfigFile(t *testing.T) {
	t.Setenv("TIMES", "7")
	cfg, err := loadConfig(newTestContext(t, "--config", writeConfig(t, `{"times": 5}`)))
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Times)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	_, err := loadConfig(newTestContext(t, "--workers", "0"))
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	_, err = loadConfig(newTestContext(t, "--config", writeConfig(t, `{"colour": "red"}`)))
	assert.ErrorIs(t, err, harness.ErrUnknownConfigKeys)
}
