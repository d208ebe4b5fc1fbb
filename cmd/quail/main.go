package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/marco-hrlic/go-sir/track"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	// config is a path to JSON config file
	config string
	// out is a path to CSV output file
	out string
	// runs is the number of Monte Carlo runs
	runs int
	// seed seeds the random source when non-negative
	seed int64
	// verbose enables debug logging
	verbose bool
	// cfg is the tracking configuration assembled from flags
	cfg = track.DefaultConfig()
)

func init() {
	flag.StringVar(&config, "config", "", "JSON config file; overrides the model flags")
	flag.StringVar(&out, "out", "", "Write truth, observations and estimates to this CSV file")
	flag.IntVar(&runs, "runs", 1, "Number of Monte Carlo runs")
	flag.Int64Var(&seed, "seed", -1, "Random seed; time based when negative")
	flag.BoolVar(&verbose, "v", false, "Log every filter step")

	flag.Float64Var(&cfg.InitialState, "x0", cfg.InitialState, "Initial state of the system")
	flag.IntVar(&cfg.Particles, "particles", cfg.Particles, "Number of filter particles")
	flag.Float64Var(&cfg.ProcessVar, "q", cfg.ProcessVar, "Process noise variance")
	flag.Float64Var(&cfg.MeasurementVar, "r", cfg.MeasurementVar, "Measurement noise variance")
	flag.Float64Var(&cfg.InitialSpread, "spread", cfg.InitialSpread, "Variance of the initial particles")
	flag.IntVar(&cfg.Steps, "steps", cfg.Steps, "Number of time steps")
}

func readConfig(path string) (track.Config, error) {
	c := track.DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return c, errors.Wrap(err, "failed to open config")
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&c); err != nil {
		return c, errors.Wrapf(err, "failed to decode config %s", path)
	}

	return c, nil
}

func main() {
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	if config != "" {
		log.Infof("Reading config from: %s", config)
		c, err := readConfig(config)
		if err != nil {
			log.Fatalf("Config is invalid: %v", err)
		}
		cfg = c
	}

	if seed >= 0 {
		cfg = cfg.WithSeed(uint64(seed))
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config is invalid: %v", err)
	}

	ctx := context.Background()
	logger := log.StandardLogger()

	if runs > 1 {
		mc, err := track.MonteCarlo(ctx, cfg, runs, track.WithLogger(logger))
		if err != nil {
			log.Fatalf("Monte Carlo runs failed: %v", err)
		}
		log.WithFields(log.Fields{
			"runs":   runs,
			"mean":   mc.MeanMSE(),
			"stddev": mc.StdDevMSE(),
		}).Info("Mean squared error")
		return
	}

	res, err := track.Run(ctx, cfg, track.WithLogger(logger))
	if err != nil {
		log.Fatalf("Run failed: %v", err)
	}
	log.Infof("Mean squared error = %f", res.MSE)

	if out != "" {
		if err := writeCSV(out, res); err != nil {
			log.Fatalf("Failed to write results to %s: %v", out, err)
		}
		log.Infof("Results written to %s", out)
	}
}
