package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"pathed/internal/errors"
	"pathed/internal/pathlist"
)

var mutates = map[string]string{annotationMutates: "true"}

func newAddCmd(a *app) *cobra.Command {
	var force, prepend bool

	cmd := &cobra.Command{
		Use:   "add [dir...]",
		Short: "Add one or more directories",
		Long: `Add directories to PATH. Each directory must exist unless --force is given.
Directories already in PATH are rejected; use up/dn to change their priority.`,
		Annotations: mutates,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			cwd, err := a.cwd()
			if err != nil {
				return err
			}

			entries := make([]pathlist.Entry, len(args))
			for i, arg := range args {
				entries[i] = pathlist.Normalize(arg, cwd)
			}
			if !force {
				for _, e := range entries {
					// empty entries are rejected by Add
					if e != "" && !a.exists(e) {
						return errors.Newf(errors.ErrInvalidInput,
							"directory `%s` does not exist, double check the directories you intend to add or use --force", e).
							WithDetail("entry", string(e))
					}
				}
			}

			list, err := pathlist.Add(a.store.Read(cwd), entries, prepend)
			if err != nil {
				return err
			}
			return a.commit("add", list)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Add directories that don't exist")
	cmd.Flags().BoolVarP(&prepend, "prepend", "p", false, "Give the directories the highest priority by prepending them")
	return cmd
}

func newRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "rm [dir]",
		Aliases:     []string{"del"},
		Short:       "Remove a directory",
		Args:        cobra.MaximumNArgs(1),
		Annotations: mutates,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := a.cwd()
			if err != nil {
				return err
			}
			target := pathlist.Normalize(argOr(args, 0, "."), cwd)

			list, err := pathlist.Remove(a.store.Read(cwd), target)
			if err != nil {
				return err
			}
			return a.commit("rm", list)
		},
	}
}

type direction int

const (
	moveUp direction = iota
	moveDown
)

func newMoveCmd(a *app, dir direction) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "up [dir] [jump]",
		Aliases:     []string{"inc"},
		Short:       "Increase the priority of a directory",
		Args:        cobra.MaximumNArgs(2),
		Annotations: mutates,
	}
	if dir == moveDown {
		cmd.Use = "dn [dir] [jump]"
		cmd.Aliases = []string{"dec", "down"}
		cmd.Short = "Decrease the priority of a directory"
	}
	cmd.Long = cmd.Short + `.

The directory moves JUMP positions (default 1). A jump past either end of
PATH leaves the directory at that end.`

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		jump, err := parseJump(argOr(args, 1, "1"))
		if err != nil {
			return err
		}
		cwd, err := a.cwd()
		if err != nil {
			return err
		}
		target := pathlist.Normalize(argOr(args, 0, "."), cwd)
		current := a.store.Read(cwd)

		var list pathlist.List
		if dir == moveUp {
			list, err = pathlist.Up(current, target, jump)
		} else {
			list, err = pathlist.Down(current, target, jump)
		}
		if err != nil {
			return err
		}
		return a.commit(cmd.Name(), list)
	}
	return cmd
}

func newCleanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "clean",
		Aliases: []string{"dedup"},
		Short:   "Remove duplicate and non-existent directories",
		Long: `Remove directories that no longer exist and every repeat of a directory.
The first occurrence keeps its position, so command lookup is unchanged.`,
		Args:        cobra.NoArgs,
		Annotations: mutates,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := a.cwd()
			if err != nil {
				return err
			}
			current := a.store.Read(cwd)
			list := pathlist.Clean(current, a.exists)

			if removed := len(current) - len(list); removed > 0 && !a.opts.quiet {
				fmt.Fprintf(a.stderr, "Removed %d entr%s\n", removed, plural(removed, "y", "ies"))
			}
			return a.commit("clean", list)
		},
	}
}

func newRevertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "revert [revision]",
		Short: "Revert PATH to a recorded revision",
		Long: `Replace PATH with a value recorded in the history. Revision 1, the default,
is the most recent; see 'pathed history' for the list.`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: mutates,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(argOr(args, 0, "1"))
			if err != nil {
				return errors.Newf(errors.ErrInvalidInput, "revision must be a positive whole number, got %q", args[0])
			}
			raw, err := a.history.Revision(n)
			if err != nil {
				return err
			}
			cwd, err := a.cwd()
			if err != nil {
				return err
			}
			return a.commit("revert", a.store.Parse(raw, cwd))
		},
	}
}

func parseJump(s string) (int, error) {
	jump, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Newf(errors.ErrInvalidInput, "jump must be a whole number, got %q", s)
	}
	if jump < 0 {
		return 0, errors.Newf(errors.ErrInvalidInput, "jump must not be negative, got %d", jump)
	}
	return jump, nil
}

func argOr(args []string, i int, fallback string) string {
	if i < len(args) {
		return args[i]
	}
	return fallback
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
