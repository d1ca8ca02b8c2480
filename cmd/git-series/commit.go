package main

import (
	"github.com/spf13/cobra"

	"github.com/gitseries/git-series/internal/series"
)

func newCommitCmd() *cobra.Command {
	var all bool
	var message string
	var verbose bool
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Promote staged (or working, with -a) to a new committed series commit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo()
			if err != nil {
				return err
			}
			name, err := currentOrArg(repo, nil)
			if err != nil {
				return err
			}
			return repo.Commit(name, series.CommitOptions{All: all, Message: message, Verbose: verbose})
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "commit the working tree directly, skipping staged")
	cmd.Flags().StringVarP(&message, "message", "m", "", "commit message")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "seed the editor with a diff below the cut line")
	return cmd
}
