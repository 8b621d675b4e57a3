package harness

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, Config{MinSize: 32, MaxSize: 128, Times: 3, PoolSize: 9000, Seed: 42, Workers: 1}, cfg)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, []int{32, 64, 128}, cfg.Sizes())
}

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		want    Config
		wantErr error
		invalid bool
	}{
		{
			name: "empty object keeps defaults",
			json: `{}`,
			want: Config{MinSize: 32, MaxSize: 128, Times: 3, PoolSize: 9000, Seed: 42, Workers: 1},
		},
		{
			name: "overrides",
			json: `{"minSize": 16, "maxSize": 512, "times": 10, "seed": 7, "workers": 4}`,
			want: Config{MinSize: 16, MaxSize: 512, Times: 10, PoolSize: 9000, Seed: 7, Workers: 4},
		},
		{
			name:    "unknown keys",
			json:    `{"maxSize": 64, "colour": "red"}`,
			wantErr: ErrUnknownConfigKeys,
		},
		{
			name:    "max below min",
			json:    `{"minSize": 256, "maxSize": 128}`,
			invalid: true,
		},
		{
			name:    "max above 1024",
			json:    `{"maxSize": 2048}`,
			invalid: true,
		},
		{
			name:    "no workers",
			json:    `{"workers": 0}`,
			invalid: true,
		},
		{
			name:    "malformed",
			json:    `{"times": "three"}`,
			invalid: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tt.json))
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.invalid:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, cfg)
			}
		})
	}
}

func TestParseConfigNamesUnknownKeys(t *testing.T) {
	_, err := ParseConfig([]byte(`{"zeta": 1, "alpha": 2}`))
	assert.EqualError(t, err, "harness: unknown config keys: alpha, zeta")
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"maxSize": 64, "poolSize": 100}`), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.MaxSize)
	assert.Equal(t, 100, cfg.PoolSize)
	assert.Equal(t, []int{32, 64}, cfg.Sizes())

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSizes(t *testing.T) {
	assert.Equal(t, []int{8}, Config{MinSize: 8, MaxSize: 15}.Sizes())
	assert.Equal(t, []int{3, 6, 12, 24}, Config{MinSize: 3, MaxSize: 24}.Sizes())
	assert.Empty(t, Config{}.Sizes())
	assert.Empty(t, Config{MinSize: -4, MaxSize: 64}.Sizes())
	assert.Empty(t, Config{MinSize: 64, MaxSize: 32}.Sizes())

	sizes := Config{MinSize: 1, MaxSize: math.MaxInt}.Sizes()
	require.NotEmpty(t, sizes)
	assert.Equal(t, 1, sizes[0])
	assert.Positive(t, sizes[len(sizes)-1])
}

func TestParseConfigWrapsValidationErrors(t *testing.T) {
	_, err := ParseConfig([]byte(`{"workers": 0}`))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "config: "), err.Error())

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "Workers", verrs[0].Field())
}
