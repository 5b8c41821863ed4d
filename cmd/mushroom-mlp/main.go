package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"mushroom-mlp/internal/config"
	"mushroom-mlp/internal/metrics"
	"mushroom-mlp/internal/trainer"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	cfgPath := flag.String("config", "configs/mushroom.yaml", "Path to YAML config")
	dataPath := flag.String("data", "", "Override data file or directory")
	epochs := flag.Int("epochs", 0, "Number of training epochs")
	hidden := flag.Int("hidden", 0, "Hidden layer size")
	lr := flag.Float64("lr", 0, "Initial learning rate")
	ratio := flag.Float64("ratio", 0, "Share of samples used for training")
	seed := flag.Int64("seed", 0, "PRNG seed")
	logEvery := flag.Int("log-every", 0, "Log every N epochs")
	metricsAddr := flag.String("metrics-addr", "", "Serve prometheus metrics on this address")
	quiet := flag.Bool("quiet", false, "Skip per-epoch scoring and logging")
	jsonLogs := flag.Bool("json-logs", false, "Emit JSON logs instead of console output")

	flag.Parse()

	if !*jsonLogs {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	cfg.ApplyOverrides(config.Overrides{
		DataPath:     *dataPath,
		TrainRatio:   *ratio,
		HiddenSize:   *hidden,
		LearningRate: *lr,
		Epochs:       *epochs,
		Seed:         *seed,
		LogEvery:     *logEvery,
		MetricsAddr:  *metricsAddr,
		Quiet:        *quiet,
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	runCfg := trainer.RunConfig{
		DataPath:     cfg.DataPath,
		TrainRatio:   cfg.TrainRatio,
		HiddenSize:   cfg.HiddenSize,
		LearningRate: cfg.LearningRate,
		Epochs:       cfg.Epochs,
		Seed:         cfg.Seed,
		Verbose:      cfg.Verbose,
		LogEvery:     cfg.LogEvery,
	}

	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		rec, err := metrics.NewRecorder(reg)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to register metrics")
		}
		runCfg.Recorder = rec
		go serveMetrics(cfg.MetricsAddr, reg)
	}

	res, err := trainer.Run(runCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("training failed")
	}

	fmt.Println("Test Set Results:")
	fmt.Printf("Accuracy: %.4f\n", res.Test.Accuracy)
	fmt.Printf("Precision: %.4f\n", res.Test.Precision)
	fmt.Printf("Recall: %.4f\n", res.Test.Recall)
	fmt.Printf("F1-Score: %.4f\n", res.Test.F1)
}

// loadConfig falls back to the defaults when the file does not exist, so
// the flags alone are enough to run.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Warn().Str("config", path).Msg("config not found, using defaults")
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func serveMetrics(addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	log.Info().Str("addr", addr).Msg("serving metrics")
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error().Err(err).Msg("metrics server stopped")
	}
}
