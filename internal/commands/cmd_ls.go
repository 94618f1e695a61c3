package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/content"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/tui/jsoncolor"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/pkg/iojson"
)

var lsKinds = []string{"pages", "albums", "events", "announcements", "team", "alumni"}

type LsCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List site content",
		UsageText: "fscs ls <" + strings.Join(lsKinds, "|") + "> [--json]",
		Description: `Displays a table of one kind of content record.

Use --json for script-friendly output. JSON is colored when written to a
terminal.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

// listing is a kind of record ready for table or JSON output.
type listing struct {
	header []string
	rows   [][]string
	data   any
}

func (cmd *LsCmd) run(_ context.Context, c *cli.Command) error {
	kind := c.Args().First()
	if !slices.Contains(lsKinds, kind) {
		return fmt.Errorf("expected one of %s", strings.Join(lsKinds, ", "))
	}

	site, err := cmd.flags.Loader().Load()
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	l, err := buildListing(site, kind)
	if err != nil {
		return err
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		return writeJSON(out, l.data)
	}

	if len(l.rows) == 0 {
		fmt.Fprintf(os.Stderr, "No %s found\n", kind)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, strings.Join(l.header, "\t"))
	for _, row := range l.rows {
		_, _ = fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}

type pageInfo struct {
	Page     content.Page `json:"page"`
	Title    string       `json:"title"`
	Subtitle string       `json:"subtitle,omitempty"`
}

type albumInfo struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Date   string `json:"date"`
	Photos int    `json:"photos"`
	Cover  string `json:"cover,omitempty"`
}

type eventInfo struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Photos   int    `json:"photos"`
	AlbumID  string `json:"album_id,omitempty"`
}

type alumniInfo struct {
	Year     string `json:"year"`
	Name     string `json:"name"`
	Nickname string `json:"nickname,omitempty"`
	Role     string `json:"role"`
}

func buildListing(site *content.Site, kind string) (listing, error) {
	switch kind {
	case "pages":
		infos := make([]pageInfo, 0, len(site.Nav))
		l := listing{header: []string{"PAGE", "TITLE", "SUBTITLE"}}
		for _, n := range site.Nav {
			h := site.Header(n.Page)
			infos = append(infos, pageInfo{Page: n.Page, Title: n.Title, Subtitle: h.Subtitle})
			l.rows = append(l.rows, []string{string(n.Page), n.Title, h.Subtitle})
		}
		l.data = infos
		return l, nil

	case "albums":
		infos := make([]albumInfo, 0, len(site.Albums))
		l := listing{header: []string{"ID", "TITLE", "DATE", "PHOTOS"}}
		for _, a := range site.Albums {
			info := albumInfo{ID: a.ID, Title: a.Title, Date: a.Date, Photos: len(a.Images)}
			if cover, ok := a.Cover(); ok {
				info.Cover = cover.URL
			}
			infos = append(infos, info)
			l.rows = append(l.rows, []string{a.ID, a.Title, a.Date, strconv.Itoa(len(a.Images))})
		}
		l.data = infos
		return l, nil

	case "events":
		infos := make([]eventInfo, 0, len(site.Events))
		l := listing{header: []string{"ID", "DATE", "CATEGORY", "TITLE", "PHOTOS", "ALBUM"}}
		for _, e := range site.Events {
			infos = append(infos, eventInfo{
				ID: e.ID, Title: e.Title, Date: e.Date, Category: e.Category,
				Photos: len(e.Images), AlbumID: e.AlbumID,
			})
			l.rows = append(l.rows, []string{e.ID, e.Date, e.Category, e.Title, strconv.Itoa(len(e.Images)), orDash(e.AlbumID)})
		}
		l.data = infos
		return l, nil

	case "announcements":
		l := listing{header: []string{"DATE", "CATEGORY", "TITLE", "LINK"}, data: site.Announcements}
		for _, a := range site.Announcements {
			l.rows = append(l.rows, []string{a.Date, a.Category, a.Title, orDash(a.Link)})
		}
		return l, nil

	case "team":
		l := listing{header: []string{"NAME", "NICKNAME", "ROLE"}, data: site.Team}
		for _, m := range site.Team {
			l.rows = append(l.rows, []string{m.Name, orDash(m.Nickname), m.Role})
		}
		return l, nil

	case "alumni":
		infos := make([]alumniInfo, 0, site.AlumniCount())
		l := listing{header: []string{"YEAR", "NAME", "NICKNAME", "ROLE"}}
		for _, g := range site.Alumni {
			for _, m := range g.Members {
				infos = append(infos, alumniInfo{Year: g.Year, Name: m.Name, Nickname: m.Nickname, Role: m.Role})
				l.rows = append(l.rows, []string{g.Year, m.Name, orDash(m.Nickname), m.Role})
			}
		}
		l.data = infos
		return l, nil
	}

	return listing{}, errors.New("unknown kind " + kind)
}

// writeJSON encodes v to w, colored when w is a terminal.
func writeJSON(w io.Writer, v any) error {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return iojson.WriteWith(w, v)
	}

	var buf bytes.Buffer
	if err := iojson.WriteWith(&buf, v); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, jsoncolor.Colorize(buf.Bytes()))
	return err
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
