package main

import "github.com/spf13/cobra"

func newCoverCmd() *cobra.Command {
	var unset bool
	cmd := &cobra.Command{
		Use:   "cover",
		Short: "Edit or clear the current series's cover letter",
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
			if unset {
				return repo.ClearCover(name)
			}
			return repo.EditCover(name)
		},
	}
	cmd.Flags().BoolVarP(&unset, "unset", "d", false, "remove the cover letter without editing")
	return cmd
}
