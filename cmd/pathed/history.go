package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pathed/internal/errors"
	"pathed/internal/style"
)

func newHistoryCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded PATH revisions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := a.history.Entries(limit)
			if errors.IsErrorCode(err, errors.ErrNotFound) {
				if !a.opts.quiet {
					fmt.Fprintln(a.stderr, style.Render("Muted", "No history recorded yet. Use -H to record one.", style.IsTerminal(a.stderr)))
				}
				return nil
			}
			if err != nil {
				return err
			}
			for i, raw := range entries {
				fmt.Fprintf(a.stdout, "%4d  %s\n", i+1, raw)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many revisions (0 shows all)")
	return cmd
}
