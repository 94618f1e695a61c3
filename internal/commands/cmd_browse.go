package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/content"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/logging"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/tui"
)

type BrowseCmd struct {
	flags *Flags
	page  string
}

// NewBrowseCmd creates a new browse command
func NewBrowseCmd(flags *Flags) *BrowseCmd {
	return &BrowseCmd{flags: flags}
}

// Register adds the browse command to the application
func (cmd *BrowseCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "browse",
		Usage:     "Open the interactive site browser",
		UsageText: "fscs browse [--page PAGE]",
		Description: `Opens the club site in the terminal.

Use tab and shift+tab to switch pages, arrow keys to move between cards,
enter to open a card and g to view photos. Press ? for every key.`,
		Flags:  cmd.Flags(),
		Action: cmd.Run,
	})
	return app
}

// Flags returns the browse flags for registration on the root command
func (cmd *BrowseCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "page",
			Aliases:     []string{"p"},
			Usage:       fmt.Sprintf("page to open first %v", content.Pages),
			Value:       string(content.PageHome),
			Destination: &cmd.page,
		},
	}
}

// Run executes the browser. Exported for use as default command.
func (cmd *BrowseCmd) Run(ctx context.Context, _ *cli.Command) error {
	if !content.Page(cmd.page).Valid() {
		return fmt.Errorf("unknown page %q, available: %v", cmd.page, content.Pages)
	}
	ctx = logging.WithPage(ctx, cmd.page)
	return runBrowser(ctx, cmd.flags, tui.Options{StartPage: content.Page(cmd.page)})
}

// runBrowser loads content, starts the optional file watcher and runs the
// TUI until it exits.
func runBrowser(ctx context.Context, flags *Flags, opts tui.Options) error {
	loader := flags.Loader()
	if opts.Site == nil {
		site, err := loader.Load()
		if err != nil {
			return fmt.Errorf("load content: %w", err)
		}
		opts.Site = site
	}
	opts.Loader = loader

	if flags.Config.Watch {
		if loader.Path == "" {
			opts.Warnings = append(opts.Warnings, "watch is enabled but no content file is set")
		} else {
			watcher, err := content.NewWatcher(loader.Path)
			if err != nil {
				return err
			}
			defer func() { _ = watcher.Close() }()
			opts.Changes = watcher.Changes()
		}
	}

	log.Info().Ctx(ctx).
		Str("content", loader.Source()).
		Str("theme", flags.Config.Theme).
		Msg("starting browser")

	m := tui.New(flags.Config, opts)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
