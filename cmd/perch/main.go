package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/perch-tui/perch/internal/app"
	"github.com/perch-tui/perch/internal/config"
	"github.com/perch-tui/perch/internal/logging"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() falls
	// back to runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
)

func build() string {
	v, c := version, commit

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" {
					c = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}
	return fmt.Sprintf("%s (%s)", v, short)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		logCloser  func()
		configPath string
		prefsPath  string
		logFile    string
		logLevel   string
		pollEvery  int
	)

	cmd := &cli.Command{
		Name:  "perch",
		Usage: "A terminal desk dashboard: clock, weather and notifications",
		Description: `Perch renders a full-screen dashboard with a large clock, simulated
weather for a configured place, and a toast notification stack.

Run 'perch' with no arguments to open the dashboard. Press ? inside
for the key reference.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file (defaults to ~/.config/perch/config.toml)",
				Sources:     cli.EnvVars("PERCH_CONFIG"),
				Destination: &configPath,
			},
			&cli.StringFlag{
				Name:        "prefs",
				Usage:       "path to preferences file (defaults to ~/.config/perch/prefs.toml)",
				Sources:     cli.EnvVars("PERCH_PREFS"),
				Destination: &prefsPath,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to the configured [log] file)",
				Sources:     cli.EnvVars("PERCH_LOG_FILE"),
				Destination: &logFile,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal)",
				Sources:     cli.EnvVars("PERCH_LOG_LEVEL"),
				Destination: &logLevel,
			},
			&cli.IntFlag{
				Name:        "poll",
				Usage:       "weather poll interval in seconds (overrides the config)",
				Sources:     cli.EnvVars("PERCH_POLL_SECONDS"),
				Destination: &pollEvery,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// The TUI owns stdout, so logging always goes to a file.
			cfg, err := config.Load(configPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			file := logFile
			if file == "" {
				file = cfg.Log.File
			}
			level := logLevel
			if level == "" {
				level = cfg.Log.Level
			}

			logger, closer, err := logging.New(level, file)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			log.Info().Str("version", build()).Msg("perch starting")
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return app.Run(ctx, app.Options{
				ConfigPath: configPath,
				PrefsPath:  prefsPath,
				PollEvery:  pollEvery,
			})
		},
	}

	err := cmd.Run(ctx, os.Args)
	if logCloser != nil {
		logCloser()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
