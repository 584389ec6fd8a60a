package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var errSaveFailed = errors.New("could not write to the notebook database")

func (a *app) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a post",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := a.store.Get(args[0]); !ok {
				return errPostNotFound
			}
			if !a.store.Delete(args[0]) {
				return errSaveFailed
			}
			printSuccess(cmd.OutOrStdout(), "Deleted post %s", args[0])
			return nil
		},
	}
}

func (a *app) clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.store.Clear() {
				return errSaveFailed
			}
			printSuccess(cmd.OutOrStdout(), "All posts deleted")
			return nil
		},
	}
}

func (a *app) seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Add the sample posts to an empty notebook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			posts := a.store.SeedIfEmpty()
			printSuccess(cmd.OutOrStdout(), "Notebook holds %d posts", len(posts))
			return nil
		},
	}
}
