package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/GabrielRod726/hardware-diagnostic/internal/collect"
	"github.com/GabrielRod726/hardware-diagnostic/internal/config"
	"github.com/GabrielRod726/hardware-diagnostic/internal/http"
	"github.com/GabrielRod726/hardware-diagnostic/internal/report"
	"github.com/GabrielRod726/hardware-diagnostic/internal/score"
)

func main() {
	app := &cli.App{
		Name: "hwdiag",
		Description: "point-in-time hardware diagnostic: samples cpu, memory and disk state, " +
			"scores the machine and prints a maintenance recommendation\n\n" +
			"examples:\n" +
			"   hwdiag                  run a diagnostic\n" +
			"   hwdiag --save           run and save the report to a file\n" +
			"   hwdiag --full           include the detailed hardware sections\n" +
			"   hwdiag serve --port 8080   serve diagnostics over http",
		Usage:   "diagnose this machine or serve diagnostics over http (use subcommands)",
		Version: appVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to the YAML config file",
				Value: config.DefaultPath(),
			},
			&cli.BoolFlag{
				Name:    "save",
				Aliases: []string{"s"},
				Usage:   "save the report to a timestamped file",
			},
			&cli.BoolFlag{
				Name:    "full",
				Aliases: []string{"f"},
				Usage:   "print the detailed hardware sections",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable ANSI colors",
			},
			&cli.DurationFlag{
				Name:  "interval",
				Usage: "sampling window for cpu and process usage",
			},
			&cli.BoolFlag{
				Name:  "all-partitions",
				Usage: "include every mounted filesystem instead of the curated set",
			},
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdUpdate(),
			cmdCompleteUpdate(),
		},
		CommandNotFound: func(c *cli.Context, command string) {
			fmt.Fprintf(os.Stderr, "unknown command %q\n\n", command)
			cli.ShowAppHelpAndExit(c, 1)
		},
		Action:       runDiagnose,
		BashComplete: cli.ShowCompletions,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runDiagnose(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	r := report.New(cfg.Report.Color)
	fmt.Print(r.Banner())
	fmt.Println("🔍 Collecting system information...")

	snap, err := collect.Snapshot(c.Context, collectOptions(cfg))
	if err != nil {
		return fmt.Errorf("collecting system state: %w", err)
	}
	for _, w := range snap.Warnings {
		fmt.Printf("⚠️  %s\n", w)
	}

	res := score.Evaluate(*snap)

	fmt.Print(r.Summary(snap))
	fmt.Print(r.ScoreBlock(res))
	fmt.Print(r.Decision(res))
	if cfg.Report.Full {
		fmt.Print(r.Full(snap))
	}
	fmt.Print(r.Footer(snap.TakenAt))

	if c.Bool("save") {
		text := report.Compose(report.New(false), snap, res, true)
		path, err := report.SaveReport(cfg.Report.Dir, text, snap.TakenAt)
		if err != nil {
			fmt.Printf("❌ Failed to save report: %v\n", err)
		} else {
			fmt.Printf("📄 Report saved to: %s\n", path)
		}
	}

	return nil
}

func cmdServe() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve diagnostics over HTTP (JSON API and plain-text report)",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				EnvVars: []string{"PORT"},
				Usage:   "TCP port to listen on",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			if c.IsSet("port") {
				cfg.Serve.Port = c.Int("port")
				if err := cfg.Validate(); err != nil {
					return fmt.Errorf("invalid config: %w", err)
				}
			}

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := http.New(cfg.Serve.Port, collectOptions(cfg), collect.Snapshot, newLogger(cfg.Log.Level))
			return srv.Serve(ctx)
		},
	}
}

// loadConfig reads the config file and lays the command-line flags
// over it. Flags win; unset flags leave the file values alone.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if c.IsSet("interval") {
		cfg.Collect.SampleInterval = c.Duration("interval").String()
	}
	if c.IsSet("all-partitions") {
		cfg.Collect.AllPartitions = c.Bool("all-partitions")
	}
	if c.IsSet("full") {
		cfg.Report.Full = c.Bool("full")
	}
	if c.Bool("no-color") || os.Getenv("NO_COLOR") != "" {
		cfg.Report.Color = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func collectOptions(cfg *config.Config) collect.Options {
	return collect.Options{
		SampleInterval: cfg.Collect.Interval(),
		AllPartitions:  cfg.Collect.AllPartitions,
		TopProcesses:   cfg.Collect.TopProcesses,
		GPU:            cfg.Collect.GPU,
	}
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

func appVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi == nil {
		return "unknown"
	}

	version := bi.Main.Version
	var rev string
	var modified bool
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if version != "" && version != "(devel)" {
		return version
	}
	if rev != "" {
		if modified {
			return rev + " (modified)"
		}
		return rev
	}
	if version != "" {
		return version
	}
	return "unknown"
}
