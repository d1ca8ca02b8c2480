// Command git-series tracks the evolution of a patch series — an ordered
// list of commits, an optional base, and an optional cover letter — using
// nothing but ordinary, reachable git objects, so that plain `git push`
// and `git fetch` carry a series's full history without any git-side
// extension.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitseries/git-series/internal/series"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor implements the CLI's 0/1/2 exit-code contract: 2 means the
// command found an on-disk series tree that violates the object model's
// own invariants (a problem with repository state, not usage); 1 covers
// every other error (bad arguments, missing series, dirty worktree, ...).
func exitCodeFor(err error) int {
	if errors.Is(err, series.ErrMalformedSeriesTree) {
		return 2
	}
	return 1
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "git-series",
		Short:         "Track the evolution of a patch series inside git",
		SilenceUsage:  true,
		SilenceErrors: false,
		// A bare `git series` with no subcommand lists every series, the
		// same dispatch original_source used for its empty-command case.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo()
			if err != nil {
				return err
			}
			return runList(cmd, repo)
		},
	}
	root.AddCommand(
		newStartCmd(),
		newCheckoutCmd(),
		newDetachCmd(),
		newDeleteCmd(),
		newBaseCmd(),
		newCoverCmd(),
		newAddCmd(),
		newUnaddCmd(),
		newCommitCmd(),
		newStatusCmd(),
		newLogCmd(),
		newRebaseCmd(),
		newCpCmd(),
		newMvCmd(),
		newListCmd(),
	)
	return root
}

func openRepo() (*series.Repo, error) {
	return series.Open(".")
}

// currentOrArg resolves the series name a command should operate on:
// args[0] if given, else the current series from SHEAD.
func currentOrArg(repo *series.Repo, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	name, ok, err := repo.CurrentName()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("series name required (no current series via SHEAD)")
	}
	return name, nil
}
