package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/avatar"
)

type AvatarCmd struct {
	flags *Flags
	size  int
}

// NewAvatarCmd creates a new avatar command
func NewAvatarCmd(flags *Flags) *AvatarCmd {
	return &AvatarCmd{flags: flags}
}

// Register adds the avatar command to the application
func (cmd *AvatarCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "avatar",
		Usage:     "Print the avatar URL for an e-mail address",
		UsageText: "fscs avatar [email] [--size N]",
		Description: `Prints the Gravatar identicon URL the team pages use for a member.

Without an address the club's own address is used.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "size",
				Aliases:     []string{"s"},
				Usage:       "image edge length in pixels",
				Value:       avatar.DefaultSize,
				Destination: &cmd.size,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *AvatarCmd) run(_ context.Context, c *cli.Command) error {
	_, err := fmt.Fprintln(c.Root().Writer, avatar.URL(c.Args().First(), cmd.size))
	return err
}
