// Command qce analyzes quantum and classical source code and serves the
// analysis pipeline over HTTP.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/quantalab/qce/internal/config"
	"github.com/quantalab/qce/internal/pipeline"
	"github.com/quantalab/qce/internal/server"
	"github.com/quantalab/qce/internal/types"
	"github.com/quantalab/qce/pkg/logger"
)

var Version = "1.0.0"

// loadConfigWithOverrides loads configuration and applies CLI flag overrides.
func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if c.IsSet("port") {
		cfg.Server.Port = c.Int("port")
	}
	if c.IsSet("dev") {
		cfg.Server.DevMode = c.Bool("dev")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	app := &cli.App{
		Name:                   "qce",
		Usage:                  "Quantum code analysis for intelligent routing",
		Version:                Version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to qce.toml",
				Value:   config.DefaultPath,
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "detect",
				Usage:     "Detect the notation of a source file (or stdin)",
				ArgsUsage: "[file]",
				Action:    runDetect,
			},
			{
				Name:      "analyze",
				Usage:     "Run the full analysis pipeline on a source file (or stdin)",
				ArgsUsage: "[file]",
				Action:    runAnalyze,
			},
			{
				Name:   "languages",
				Usage:  "List supported notations",
				Action: runLanguages,
			},
			{
				Name:  "serve",
				Usage: "Serve the analysis pipeline over HTTP",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Usage: "listen port"},
					&cli.BoolFlag{Name: "dev", Usage: "development mode"},
					&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
				},
				Action: runServe,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// readSource reads the submission from the first argument or stdin.
func readSource(c *cli.Context) (string, error) {
	if path := c.Args().First(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runDetect(c *cli.Context) error {
	code, err := readSource(c)
	if err != nil {
		return err
	}
	return printJSON(pipeline.New().Detect(code))
}

func runAnalyze(c *cli.Context) error {
	code, err := readSource(c)
	if err != nil {
		return err
	}

	result, err := pipeline.New().Analyze(code)
	if err != nil {
		return err
	}
	return printJSON(result)
}

func runLanguages(c *cli.Context) error {
	return printJSON(map[string]any{
		"languages": types.SupportedLanguages,
		"count":     len(types.SupportedLanguages),
	})
}

func runServe(c *cli.Context) error {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	log.Info().Int("port", cfg.Server.Port).Msg("starting code analysis engine")

	srv := server.FromConfig(cfg, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
		return err
	}

	log.Info().Msg("server stopped")
	return nil
}
