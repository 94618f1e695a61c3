package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/commands"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/config"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/logging"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/styles"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/printer"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := printer.NewContext(context.Background(), printer.New(os.Stderr))

	var logCloser func()

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "fscs",
		Usage:     "Browse the FSCS club site in the terminal",
		UsageText: "fscs [global options] command [command options]",
		Description: `fscs shows the 鳳山高中電腦資訊社 site in the terminal: news, the
team, announcements, events with their photo albums, alumni and contacts.

Run 'fscs' with no arguments to open the interactive browser.
Run 'fscs gallery <album-id>' to jump straight into an album.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("FSCS_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("FSCS_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("FSCS_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "content",
				Usage:       "path to a content file (overrides content_path)",
				Sources:     cli.EnvVars("FSCS_CONTENT"),
				Destination: &flags.ContentPath,
			},
			&cli.StringFlag{
				Name:        "theme",
				Usage:       fmt.Sprintf("color theme %v (overrides theme)", styles.ThemeNames()),
				Sources:     cli.EnvVars("FSCS_THEME"),
				Destination: &flags.Theme,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger.Hook(logging.ContextHook{})
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			if flags.Theme != "" {
				cfg.Theme = flags.Theme
			}

			palette, ok := styles.GetPalette(cfg.Theme)
			if !ok {
				return ctx, fmt.Errorf("unknown theme %q, available: %v", cfg.Theme, styles.ThemeNames())
			}
			styles.SetTheme(palette)

			flags.Config = cfg
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	browseCmd := commands.NewBrowseCmd(flags)

	app = browseCmd.Register(app)
	app = commands.NewGalleryCmd(flags).Register(app)
	app = commands.NewLsCmd(flags).Register(app)
	app = commands.NewContentCmd(flags).Register(app)
	app = commands.NewAvatarCmd(flags).Register(app)

	// Register browse flags on root command
	app.Flags = append(app.Flags, browseCmd.Flags()...)

	// Set browse as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'fscs --help' for usage", c.Args().First())
		}
		return browseCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
