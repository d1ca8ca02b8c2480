package main

import "github.com/spf13/cobra"

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show staged and unstaged series changes",
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
			st, err := repo.Status(name)
			if err != nil {
				return err
			}
			st.Render(cmd.OutOrStdout())
			return nil
		},
	}
}
