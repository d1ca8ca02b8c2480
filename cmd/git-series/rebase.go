package main

import (
	"github.com/spf13/cobra"

	"github.com/gitseries/git-series/internal/rebase"
)

func newRebaseCmd() *cobra.Command {
	var interactive bool
	cmd := &cobra.Command{
		Use:   "rebase [<onto>]",
		Short: "Rebase the current series's commits, then fix up working",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo()
			if err != nil {
				return err
			}
			name, err := currentOrArg(repo, nil)
			if err != nil {
				return err
			}
			var onto string
			if len(args) == 1 {
				onto = args[0]
			}
			return rebase.Rebase(repo, repo.Store, name, rebase.Options{Interactive: interactive, Onto: onto})
		},
	}
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "run an interactive rebase")
	return cmd
}
