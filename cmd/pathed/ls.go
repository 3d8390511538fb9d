package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"pathed/internal/errors"
)

const (
	formatPlain = "plain"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func newLsCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"echo"},
		Short:   "List the directories in PATH",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runLs(format)
		},
	}
	cmd.Flags().StringVar(&format, "format", formatPlain, "Output format: plain, json, yaml")
	return cmd
}

func (a *app) runLs(format string) error {
	if !isValidFormat(format) {
		return errors.Newf(errors.ErrInvalidInput, "unsupported format '%s', supported formats: plain, json, yaml", format)
	}
	cwd, err := a.cwd()
	if err != nil {
		return err
	}

	output, err := formatPaths(a.store.Read(cwd).Strings(), format)
	if err != nil {
		return errors.Wrap(err, errors.ErrIO, "error formatting output")
	}
	fmt.Fprint(a.stdout, output)
	return nil
}

func isValidFormat(format string) bool {
	return format == formatPlain || format == formatJSON || format == formatYAML
}

func formatPaths(paths []string, format string) (string, error) {
	if paths == nil {
		paths = []string{}
	}
	switch format {
	case formatPlain:
		if len(paths) == 0 {
			return "", nil
		}
		return strings.Join(paths, "\n") + "\n", nil
	case formatJSON:
		pathData := map[string][]string{"PATH": paths}
		jsonBytes, err := json.Marshal(pathData)
		if err != nil {
			return "", err
		}
		return string(jsonBytes) + "\n", nil
	case formatYAML:
		pathData := map[string][]string{"PATH": paths}
		yamlBytes, err := yaml.Marshal(pathData)
		if err != nil {
			return "", err
		}
		return string(yamlBytes), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}
