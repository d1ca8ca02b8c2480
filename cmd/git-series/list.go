package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitseries/git-series/internal/series"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every series known under any tier, marking the current one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo()
			if err != nil {
				return err
			}
			return runList(cmd, repo)
		},
	}
}

func runList(cmd *cobra.Command, repo *series.Repo) error {
	entries, err := repo.List()
	if err != nil {
		return err
	}
	for _, e := range entries {
		marker := "  "
		if e.Current {
			marker = "* "
		}
		fmt.Fprintln(cmd.OutOrStdout(), marker+e.Name)
	}
	return nil
}
