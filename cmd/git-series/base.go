package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBaseCmd() *cobra.Command {
	var unset bool
	cmd := &cobra.Command{
		Use:   "base [<commit>]",
		Short: "Show or set the current series's base",
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

			if unset {
				return repo.ClearBase(name)
			}
			if len(args) == 1 {
				return repo.SetBase(name, args[0])
			}

			base, err := repo.GetBase(name)
			if err != nil {
				return err
			}
			if base == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "(no base set)")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), *base)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&unset, "unset", "d", false, "remove the base from the working tree")
	return cmd
}
