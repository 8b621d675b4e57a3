package harness

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/perimeterx/marshmallow"
)

// Config controls the performance sweeps. Sizes are cube edges; the runner
// measures every power of two from MinSize up to MaxSize.
type Config struct {
	MinSize  int   `json:"minSize" default:"32" validate:"gte=1,lte=1024"`
	MaxSize  int   `json:"maxSize" default:"128" validate:"gtefield=MinSize,lte=1024"`
	Times    int   `json:"times" default:"3" validate:"gte=1"`
	PoolSize int   `json:"poolSize" default:"9000" validate:"gte=3"`
	Seed     int64 `json:"seed" default:"42"`
	Workers  int   `json:"workers" default:"1" validate:"gte=1,lte=64"`
}

// NewConfig returns a Config holding the defaults.
func NewConfig() (Config, error) {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return Config{}, fmt.Errorf("config defaults: %w", err)
	}
	return cfg, nil
}

// ParseConfig decodes a JSON config on top of the defaults. Keys that map to
// no field are rejected with ErrUnknownConfigKeys.
func ParseConfig(data []byte) (Config, error) {
	cfg, err := NewConfig()
	if err != nil {
		return Config{}, err
	}
	unknown, err := marshmallow.Unmarshal(data, &cfg, marshmallow.WithExcludeKnownFieldsFromMap(true))
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if len(unknown) > 0 {
		keys := make([]string, 0, len(unknown))
		for k := range unknown {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownConfigKeys, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and parses the JSON config file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return ParseConfig(data)
}

// Validate checks the field ranges declared in the validate tags.
func (c Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return validate.Struct(c)
}

// Sizes returns the cube edges to measure, doubling from MinSize while not
// exceeding MaxSize. A MinSize below 1 yields no sizes; the doubling never
// overflows.
func (c Config) Sizes() []int {
	if c.MinSize < 1 {
		return nil
	}
	var sizes []int
	for s := c.MinSize; s <= c.MaxSize; s *= 2 {
		sizes = append(sizes, s)
		if s > c.MaxSize/2 {
			break
		}
	}
	return sizes
}
