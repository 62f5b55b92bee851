package rules

import (
	"github.com/spf13/cobra"

	"github.com/psucodervn/blackjack/internal/console"
	"github.com/psucodervn/blackjack/internal/game"
)

func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the house rules",
		Run: func(cmd *cobra.Command, args []string) {
			console.NewPresenter(cmd.OutOrStdout()).Rules(game.DefaultRule)
		},
	}
}
