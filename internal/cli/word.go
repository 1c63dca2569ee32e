package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newWordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "word",
		Short: "Lexicon commands",
	}

	cmd.AddCommand(newWordScoreCmd())

	return cmd
}

func newWordScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <word>",
		Short: "Show the letter-value score of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result WordScore

			if err := client.Get(fmt.Sprintf("/api/v1/words/%s/score", url.PathEscape(args[0])), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}
