package main

import (
	"github.com/spf13/cobra"

	"github.com/gitseries/git-series/internal/series"
)

func newLogCmd() *cobra.Command {
	var patch bool
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the committed history of the current series",
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
			entries, err := repo.Log(name)
			if err != nil {
				return err
			}
			return series.RenderLog(cmd.OutOrStdout(), repo.Store, entries, patch)
		},
	}
	cmd.Flags().BoolVarP(&patch, "patch", "p", false, "show a diff for each series commit")
	return cmd
}
