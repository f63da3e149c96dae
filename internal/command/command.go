package command

import (
	commandHandler "apitracker/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(NewCommand, commandHandler.NewSummaryHandler)

type Command struct {
	summaryCommandHandler *commandHandler.SummaryHandler
}

// NewCommand .
func NewCommand(
	summaryCommandHandler *commandHandler.SummaryHandler,
) *Command {
	return &Command{
		summaryCommandHandler: summaryCommandHandler,
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "summary",
			Short: "print the trailing 24h traffic summary and exit",
			Run: func(cmd *cobra.Command, args []string) {
				command, cleanup, err := newCmd()
				if err != nil {
					panic(err)
				}
				defer cleanup()

				command.summaryCommandHandler.Print(cmd, args)
			},
		},
	)
}
