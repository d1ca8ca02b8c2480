package main

import "github.com/spf13/cobra"

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <change>...",
		Short: "Stage series/base/cover changes from working into staged",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo()
			if err != nil {
				return err
			}
			name, err := currentOrArg(repo, nil)
			if err != nil {
				return err
			}
			return repo.Add(name, args)
		},
	}
}

func newUnaddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unadd <change>...",
		Short: "Unstage series/base/cover changes back toward committed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo()
			if err != nil {
				return err
			}
			name, err := currentOrArg(repo, nil)
			if err != nil {
				return err
			}
			return repo.Unadd(name, args)
		},
	}
}
