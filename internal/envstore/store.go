// Package envstore reads the PATH variable and writes edited lists back out.
//
// A child process cannot change its parent shell's environment, so writing
// means printing: either the bare value or an assignment statement for the
// selected shell, meant to be evaluated by the caller.
package envstore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"pathed/internal/errors"
	"pathed/internal/logging"
	"pathed/internal/pathlist"
	"pathed/internal/style"
)

// DefaultVariable is the variable edited when none is configured.
const DefaultVariable = "PATH"

// Store is the capability the CLI needs to read and persist the list.
type Store interface {
	Raw() string
	Parse(raw, cwd string) pathlist.List
	Read(cwd string) pathlist.List
	Write(list pathlist.List, dryRun bool) error
	Echo() error
}

// Options configures an EnvStore. Zero values pick the process defaults.
type Options struct {
	Variable  string
	Mode      string
	Separator string
	Getenv    func(string) string
	Stdout    io.Writer
	Stderr    io.Writer
	// Styled forces styling of stderr output on or off; nil detects a TTY.
	Styled *bool
}

// EnvStore is the Store backed by the process environment.
type EnvStore struct {
	variable string
	mode     string
	sep      string
	getenv   func(string) string
	stdout   io.Writer
	stderr   io.Writer
	styled   bool
}

// New builds an EnvStore, rejecting unknown output modes.
func New(opts Options) (*EnvStore, error) {
	s := &EnvStore{
		variable: opts.Variable,
		mode:     strings.ToLower(opts.Mode),
		sep:      opts.Separator,
		getenv:   opts.Getenv,
		stdout:   opts.Stdout,
		stderr:   opts.Stderr,
	}
	if s.variable == "" {
		s.variable = DefaultVariable
	}
	if s.mode == "" {
		s.mode = ModeRaw
	}
	if !ModeIsValid(s.mode) {
		return nil, errors.Newf(errors.ErrInvalidInput,
			"unsupported shell '%s', supported: %s", opts.Mode, strings.Join(ModeNames(), ", "))
	}
	if s.sep == "" {
		s.sep = string(os.PathListSeparator)
	}
	if s.getenv == nil {
		s.getenv = os.Getenv
	}
	if s.stdout == nil {
		s.stdout = os.Stdout
	}
	if s.stderr == nil {
		s.stderr = os.Stderr
	}
	if opts.Styled != nil {
		s.styled = *opts.Styled
	} else {
		s.styled = style.IsTerminal(s.stderr)
	}
	return s, nil
}

// Raw returns the unparsed value of the variable.
func (s *EnvStore) Raw() string {
	return s.getenv(s.variable)
}

// Parse splits a raw value into normalized entries. Relative entries are
// resolved against cwd.
func (s *EnvStore) Parse(raw, cwd string) pathlist.List {
	return pathlist.FromStrings(s.split(raw), cwd)
}

// Read parses the current value of the variable.
func (s *EnvStore) Read(cwd string) pathlist.List {
	list := s.Parse(s.Raw(), cwd)
	logger := logging.GetLogger("envstore")
	logger.Debug().
		Str("variable", s.variable).
		Int("entries", len(list)).
		Msg("Read path list")
	return list
}

// Join renders the list as a raw separator-joined value.
func (s *EnvStore) Join(list pathlist.List) string {
	return strings.Join(list.Strings(), s.sep)
}

// Write prints list in the configured mode. With dryRun the before and after
// values go to stderr and stdout is left untouched.
func (s *EnvStore) Write(list pathlist.List, dryRun bool) error {
	if dryRun {
		return s.preview(s.Join(list))
	}
	return s.emit(list.Strings())
}

// Echo prints the current value unmodified, in the configured mode.
func (s *EnvStore) Echo() error {
	return s.emit(s.split(s.Raw()))
}

func (s *EnvStore) emit(entries []string) error {
	out := renderers[s.mode](s.variable, entries, s.sep)
	if _, err := fmt.Fprintln(s.stdout, out); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "could not write %s", s.variable)
	}
	return nil
}

func (s *EnvStore) preview(after string) error {
	before := style.Render("Header", s.variable+" before modification:", s.styled)
	changed := style.Render("Header", s.variable+" after modification:", s.styled)
	_, err := fmt.Fprintf(s.stderr, "%s\n\t%s\n%s\n\t%s\n", before, s.Raw(), changed, after)
	if err != nil {
		return errors.Wrap(err, errors.ErrIO, "could not write preview")
	}
	return nil
}

func (s *EnvStore) split(raw string) []string {
	if raw == "" {
		return nil
	}
	if s.sep == string(os.PathListSeparator) {
		// handles quoted Windows entries
		return filepath.SplitList(raw)
	}
	return strings.Split(raw, s.sep)
}

// Exists reports whether e names an existing directory.
func Exists(e pathlist.Entry) bool {
	info, err := os.Stat(string(e))
	return err == nil && info.IsDir()
}
