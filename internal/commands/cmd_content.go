package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/content"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/printer"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/pkg/iojson"
)

type ContentCmd struct {
	flags *Flags

	format   string
	force    bool
	expanded bool

	// confirm asks before overwriting; nil uses an interactive prompt when
	// stdin is a terminal.
	confirm func(path string) (bool, error)
}

// NewContentCmd creates a new content command.
func NewContentCmd(flags *Flags) *ContentCmd {
	return &ContentCmd{flags: flags}
}

// Register adds the content commands to the application.
func (cmd *ContentCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "content",
		Usage: "Content file commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate the configuration and content files",
				UsageText:   "fscs content validate [--format text|json]",
				Description: "Loads the config and content, expanding album globs, and reports every field error.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.runValidate,
			},
			{
				Name:      "export",
				Usage:     "Write the built-in content to a file",
				UsageText: "fscs content export [path] [--force] [--expanded]",
				Description: `Writes the built-in club content as YAML, ready to edit and point
content_path at. The path defaults to content.yaml; use - for stdout.

With --expanded the currently loaded content is written instead, with album
globs resolved to image lists.`,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "force",
						Aliases:     []string{"f"},
						Usage:       "overwrite without asking",
						Destination: &cmd.force,
					},
					&cli.BoolFlag{
						Name:        "expanded",
						Usage:       "export the loaded content with globs resolved",
						Destination: &cmd.expanded,
					},
				},
				Action: cmd.runExport,
			},
		},
	})

	return app
}

// validationIssue is one failed field in JSON output.
type validationIssue struct {
	File    string `json:"file"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (cmd *ContentCmd) runValidate(ctx context.Context, c *cli.Command) error {
	var issues []validationIssue

	if err := cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath); err != nil {
		issues = append(issues, toIssues(cmd.flags.ConfigPath, err)...)
	}

	loader := cmd.flags.Loader()
	site, err := loader.Load()
	if err != nil {
		issues = append(issues, toIssues(loader.Source(), err)...)
	}

	if cmd.format == "json" {
		out := struct {
			Valid  bool              `json:"valid"`
			Issues []validationIssue `json:"issues,omitempty"`
		}{Valid: len(issues) == 0, Issues: issues}
		if err := iojson.WriteWith(c.Root().Writer, out); err != nil {
			return err
		}
		if len(issues) > 0 {
			return cli.Exit("", 1)
		}
		return nil
	}

	p := printer.Ctx(ctx)
	for _, issue := range issues {
		if issue.Field != "" {
			p.Errorf("%s: %s: %s", issue.File, issue.Field, issue.Message)
		} else {
			p.Errorf("%s: %s", issue.File, issue.Message)
		}
	}

	if len(issues) > 0 {
		p.Printf("")
		p.Errorf("%d error(s) found", len(issues))
		return cli.Exit("", 1)
	}

	p.Successf("config: %s", cmd.flags.ConfigPath)
	p.Successf("content: %s (%d pages, %d albums, %d events, %d alumni)",
		loader.Source(), len(site.Nav), len(site.Albums), len(site.Events), site.AlumniCount())
	return nil
}

// toIssues splits criterio field errors into one issue each.
func toIssues(file string, err error) []validationIssue {
	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return []validationIssue{{File: file, Message: err.Error()}}
	}

	issues := make([]validationIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, validationIssue{File: file, Field: fe.Field, Message: fe.Err.Error()})
	}
	return issues
}

func (cmd *ContentCmd) runExport(ctx context.Context, c *cli.Command) error {
	data, err := cmd.exportData()
	if err != nil {
		return err
	}

	path := c.Args().First()
	if path == "" {
		path = "content.yaml"
	}
	if path == "-" {
		_, err := c.Root().Writer.Write(data)
		return err
	}

	p := printer.Ctx(ctx)
	if _, err := os.Stat(path); err == nil && !cmd.force {
		ok, err := cmd.confirmOverwrite(path)
		if err != nil {
			return err
		}
		if !ok {
			p.Infof("Export cancelled")
			return nil
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write content: %w", err)
	}
	p.Successf("Wrote %s", path)
	return nil
}

func (cmd *ContentCmd) exportData() ([]byte, error) {
	if !cmd.expanded {
		return content.DefaultYAML(), nil
	}
	site, err := cmd.flags.Loader().Load()
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return content.Marshal(site)
}

func (cmd *ContentCmd) confirmOverwrite(path string) (bool, error) {
	if cmd.confirm != nil {
		return cmd.confirm(path)
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, fmt.Errorf("%s exists; use --force to overwrite", path)
	}
	return promptOverwrite(path)
}

func promptOverwrite(path string) (bool, error) {
	var overwrite bool
	err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Content file already exists").
			Description(path + "\nOverwrite?").
			Value(&overwrite),
	)).WithOutput(os.Stderr).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return overwrite, err
}
