// Package history keeps an append-only log of previous PATH values so an
// edit can be reverted. Each line holds one raw value; the newest is last.
package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"pathed/internal/errors"
	"pathed/internal/logging"
)

const (
	// EnvHistoryFile overrides the history location.
	EnvHistoryFile = "PATHED_HISTORY"

	appDirName  = "pathed"
	historyName = ".path_history"
)

// DefaultPath returns $PATHED_HISTORY, or the history file under the XDG
// config home.
func DefaultPath() string {
	if p := os.Getenv(EnvHistoryFile); p != "" {
		return p
	}
	return filepath.Join(xdg.ConfigHome, appDirName, historyName)
}

// Log is a history file on disk.
type Log struct {
	path string
}

// New returns a Log stored at path. An empty path uses DefaultPath.
func New(path string) *Log {
	if path == "" {
		path = DefaultPath()
	}
	return &Log{path: path}
}

// Path returns the file backing the log.
func (l *Log) Path() string {
	return l.path
}

// Append records raw as the most recent revision.
func (l *Log) Append(raw string) error {
	if strings.ContainsAny(raw, "\r\n") {
		return errors.New(errors.ErrInvalidInput, "refusing to record a value that spans several lines")
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to create history directory for %s", l.path)
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to open history file %s", l.path)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, raw); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to write history file %s", l.path)
	}

	logger := logging.GetLogger("history")
	logger.Debug().Str("path", l.path).Msg("Recorded revision")
	return nil
}

// Revision returns the nth most recent value; 1 is the latest.
func (l *Log) Revision(n int) (string, error) {
	if n < 1 {
		return "", errors.Newf(errors.ErrInvalidInput, "revision must be a positive whole number, got %d", n)
	}

	var found string
	count := 0
	err := l.walk(func(line string) bool {
		count++
		if count == n {
			found = line
			return false
		}
		return true
	})
	if err != nil {
		return "", err
	}
	if count < n {
		return "", errors.Newf(errors.ErrNotFound,
			"revision %d not found, history holds %d revision(s)", n, count).
			WithDetail("revisions", count)
	}
	return found, nil
}

// Entries returns up to limit revisions, newest first. A limit of zero or
// less returns all of them.
func (l *Log) Entries(limit int) ([]string, error) {
	var out []string
	err := l.walk(func(line string) bool {
		out = append(out, line)
		return limit <= 0 || len(out) < limit
	})
	return out, err
}

// walk visits revisions newest first until fn returns false.
func (l *Log) walk(fn func(string) bool) error {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrNotFound, "history file %s not found, nothing to revert to", l.path)
		}
		return errors.Wrapf(err, errors.ErrIO, "failed to open history file %s", l.path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to stat history file %s", l.path)
	}

	scanner := NewReverseScanner(f, info.Size())
	for scanner.Scan() {
		if !fn(scanner.Text()) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to read history file %s", l.path)
	}
	return nil
}
