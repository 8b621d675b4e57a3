package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/iancoleman/strcase"
	"github.com/urfave/cli/v2"

	morton "github.com/Akron/morton-go"
	"github.com/Akron/morton-go/harness"
)

const CONFIG string = `config`
const MINSIZE string = `min-size`
const MAXSIZE string = `max-size`
const TIMES string = `times`
const POOLSIZE string = `pool-size`
const SEED string = `seed`
const WORKERS string = `workers`
const SKIPPERF string = `skip-perf`
const LOGLEVEL string = `log-level`

func main() {
	app, err := newApp()
	if err == nil {
		err = app.Run(os.Args)
	}
	if err != nil {
		var exitErr cli.ExitCoder
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

// newApp builds the command. Flag defaults come from harness.NewConfig so
// both stay in sync with the config struct tags.
//
//nolint:funlen
func newApp() (*cli.App, error) {
	defaults, err := harness.NewConfig()
	if err != nil {
		return nil, err
	}

	app := cli.NewApp()
	app.Name = "mortontest"
	app.Usage = "Validate and benchmark the Morton encode/decode strategies"
	app.Version = versioninfo.Short()

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    CONFIG,
			Aliases: []string{"c"},
			Usage:   "JSON config file. Flags given explicitly override its values",
			EnvVars: []string{strcase.ToScreamingSnake(CONFIG)},
		},
		&cli.IntFlag{
			Name:    MINSIZE,
			Usage:   "Smallest cube edge to measure",
			Value:   defaults.MinSize,
			EnvVars: []string{strcase.ToScreamingSnake(MINSIZE)},
		},
		&cli.IntFlag{
			Name:    MAXSIZE,
			Usage:   "Largest cube edge to measure (at most 1024)",
			Value:   defaults.MaxSize,
			EnvVars: []string{strcase.ToScreamingSnake(MAXSIZE)},
		},
		&cli.IntFlag{
			Name:    TIMES,
			Usage:   "Repetitions per measurement",
			Value:   defaults.Times,
			EnvVars: []string{strcase.ToScreamingSnake(TIMES)},
		},
		&cli.IntFlag{
			Name:    POOLSIZE,
			Usage:   "Number of random values the random sweeps cycle through",
			Value:   defaults.PoolSize,
			EnvVars: []string{strcase.ToScreamingSnake(POOLSIZE)},
		},
		&cli.Int64Flag{
			Name:    SEED,
			Usage:   "Seed of the random pools",
			Value:   defaults.Seed,
			EnvVars: []string{strcase.ToScreamingSnake(SEED)},
		},
		&cli.IntFlag{
			Name:    WORKERS,
			Aliases: []string{"w"},
			Usage:   "Number of measurements run in parallel",
			Value:   defaults.Workers,
			EnvVars: []string{strcase.ToScreamingSnake(WORKERS)},
		},
		&cli.BoolFlag{
			Name:    SKIPPERF,
			Usage:   "Only run the correctness sweeps",
			EnvVars: []string{strcase.ToScreamingSnake(SKIPPERF)},
		},
		&cli.StringFlag{
			Name:    LOGLEVEL,
			Usage:   "Log level (DEBUG, INFO, ERROR, NOOP)",
			Value:   "INFO",
			EnvVars: []string{strcase.ToScreamingSnake(LOGLEVEL)},
		},
	}

	app.Action = run
	return app, nil
}

func run(c *cli.Context) error {
	logger.New(c.String(LOGLEVEL))
	defer logger.OnExit()
	log := logger.Sugar.WithServiceName(c.App.Name)

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	log.Infof("BMI2 instructions available: %t", morton.IsBMI2Available())

	report := harness.Report{
		Sweeps: harness.NewChecker(log).CheckAll(),
	}
	if !c.Bool(SKIPPERF) {
		runner := harness.NewRunner(cfg, log)
		report.Timings, err = runner.Run(c.Context)
		if err != nil {
			return err
		}
		report.Checksum = runner.Checksum()
	}
	if err := report.Write(c.App.Writer); err != nil {
		return err
	}

	if err := harness.Verify(report.Sweeps); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

// loadConfig starts from the config file, or the defaults without one, and
// applies every flag the user set explicitly.
func loadConfig(c *cli.Context) (harness.Config, error) {
	var cfg harness.Config
	var err error
	if path := c.String(CONFIG); path != "" {
		cfg, err = harness.LoadConfig(path)
	} else {
		cfg, err = harness.NewConfig()
	}
	if err != nil {
		return harness.Config{}, err
	}

	ints := map[string]*int{
		MINSIZE:  &cfg.MinSize,
		MAXSIZE:  &cfg.MaxSize,
		TIMES:    &cfg.Times,
		POOLSIZE: &cfg.PoolSize,
		WORKERS:  &cfg.Workers,
	}
	for name, field := range ints {
		if c.IsSet(name) {
			*field = c.Int(name)
		}
	}
	if c.IsSet(SEED) {
		cfg.Seed = c.Int64(SEED)
	}

	if err := cfg.Validate(); err != nil {
		return harness.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
