package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match commands",
	}

	cmd.AddCommand(newMatchCreateCmd())
	cmd.AddCommand(newMatchListCmd())
	cmd.AddCommand(newMatchGetCmd())
	cmd.AddCommand(newMatchScoresCmd())
	cmd.AddCommand(newMatchValidateCmd())
	cmd.AddCommand(newMatchPlayCmd())
	cmd.AddCommand(newMatchPassCmd())
	cmd.AddCommand(newMatchAckCmd())

	return cmd
}

func matchPath(id string, suffix string) string {
	return fmt.Sprintf("/api/v1/matches/%s%s", url.PathEscape(id), suffix)
}

func newMatchCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <opponent>",
		Short: "Start a match against another player; you move first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"opponent": args[0]}
			var result MatchView

			if err := client.Post("/api/v1/matches", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newMatchListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your ongoing matches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Roster

			if err := client.Get("/api/v1/matches", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newMatchGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a match as you see it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MatchView

			if err := client.Get(matchPath(args[0], ""), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newMatchScoresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scores <id>",
		Short: "Show your score and your opponent's",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Scores

			if err := client.Get(matchPath(args[0], "/scores"), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

const placementHelp = `Each placement is <piece>:<letter>@<x>,<y> where piece is the index
of the tile in your hand and letter is what it spells. A blank takes
whichever letter you give it. Example: 0:T@7,7 2:U@8,7`

func newMatchValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <id> <placement>...",
		Short: "Check a move without playing it",
		Long:  "Check a move without playing it.\n\n" + placementHelp,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := ParseMove(args[1:])
			if err != nil {
				return err
			}

			var result ValidateResult
			if err := client.Post(matchPath(args[0], "/validate"), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newMatchPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play <id> <placement>...",
		Short: "Play tiles from your hand",
		Long:  "Play tiles from your hand.\n\n" + placementHelp,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := ParseMove(args[1:])
			if err != nil {
				return err
			}

			var result MatchView
			if err := client.Post(matchPath(args[0], "/play"), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newMatchPassCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pass <id>",
		Short: "Pass your turn; two passes in a row end the match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MatchView

			if err := client.Post(matchPath(args[0], "/pass"), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newMatchAckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ack <id>",
		Short: "Acknowledge that a match has ended",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post(matchPath(args[0], "/acknowledge"), nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage("Match acknowledged")
			return nil
		},
	}
}
