package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/content"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/logging"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/tui"
)

type GalleryCmd struct {
	flags *Flags
	start int
}

// NewGalleryCmd creates a new gallery command
func NewGalleryCmd(flags *Flags) *GalleryCmd {
	return &GalleryCmd{flags: flags}
}

// Register adds the gallery command to the application
func (cmd *GalleryCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "gallery",
		Usage:     "Open an album in the lightbox",
		UsageText: "fscs gallery <album-id> [--start N]",
		Description: `Opens the browser on the events page with the album already showing.

Closing the lightbox returns to the events page. Run 'fscs ls albums' to see
album ids.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "start",
				Aliases:     []string{"n"},
				Usage:       "photo number to show first (1-based)",
				Value:       1,
				Destination: &cmd.start,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *GalleryCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return errors.New("expected exactly one album id")
	}
	id := c.Args().First()

	opts, err := cmd.options(id)
	if err != nil {
		return err
	}

	ctx = logging.WithAlbumID(ctx, id)
	return runBrowser(ctx, cmd.flags, opts)
}

// options resolves the album and the start position for the browser.
func (cmd *GalleryCmd) options(id string) (tui.Options, error) {
	site, err := cmd.flags.Loader().Load()
	if err != nil {
		return tui.Options{}, fmt.Errorf("load content: %w", err)
	}

	album, err := site.Album(id)
	if err != nil {
		return tui.Options{}, err
	}
	if len(album.Images) == 0 {
		return tui.Options{}, fmt.Errorf("album %q has no photos", id)
	}
	if cmd.start < 1 || cmd.start > len(album.Images) {
		return tui.Options{}, fmt.Errorf("--start must be between 1 and %d", len(album.Images))
	}

	return tui.Options{
		Site:       site,
		StartPage:  content.PageEvents,
		Gallery:    album.Refs(),
		StartIndex: cmd.start - 1,
	}, nil
}
