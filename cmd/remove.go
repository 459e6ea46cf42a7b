package cmd

import (
	"fmt"

	"git-monthly/internal/repo"

	"github.com/spf13/cobra"
)

var removeInvalid bool

var removeCmd = &cobra.Command{
	Use:   "remove [path]",
	Short: "Remove a repository",
	Args: func(cmd *cobra.Command, args []string) error {
		if removeInvalid {
			if len(args) != 0 {
				return fmt.Errorf("usage: git-monthly remove --invalid")
			}
			return nil
		}
		if len(args) != 1 {
			return fmt.Errorf("usage: git-monthly remove <path>")
		}
		return nil
	},
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().BoolVar(&removeInvalid, "invalid", false, "Remove all invalid repositories")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	store, err := repo.DefaultStore()
	if err != nil {
		return err
	}

	if !removeInvalid {
		removed, err := store.Remove(args[0])
		if err != nil {
			return err
		}
		if removed == 0 {
			fmt.Fprintf(out, "%s is not in the repository list\n", args[0])
			return nil
		}
		fmt.Fprintln(out, args[0])
		return nil
	}

	_, invalid, err := store.Verify()
	if err != nil {
		return err
	}
	if len(invalid) == 0 {
		fmt.Fprintln(out, "no invalid repositories")
		return nil
	}

	removed, err := store.Remove(invalid...)
	if err != nil {
		return err
	}
	for _, p := range invalid {
		fmt.Fprintln(out, p)
	}
	fmt.Fprintf(out, "removed %d repositories\n", removed)
	return nil
}
