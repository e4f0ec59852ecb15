/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"

	stdioPath = "-"
)

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"o"},
		Value:   formatJSON,
		Usage:   "output format: json or yaml",
	}
}

func outputFormat(cmd *cli.Command) (string, error) {
	switch f := strings.ToLower(cmd.String("format")); f {
	case formatJSON, formatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", errUnsupportedFormat, f)
	}
}

func encode(w io.Writer, format string, v any) error {
	if format == formatYAML {
		e := yaml.NewEncoder(w)
		e.SetIndent(2)

		if err := e.Encode(v); err != nil {
			return err
		}

		return e.Close()
	}

	e := json.NewEncoder(w)
	e.SetIndent("", "  ")

	return e.Encode(v)
}

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}

	return os.Stdout
}

func stdin(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}

	return os.Stdin
}

// openInput opens path for reading; "-" reads stdin.
func openInput(cmd *cli.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == stdioPath {
		return io.NopCloser(stdin(cmd)), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}

	return f, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// createOutput opens path for writing; "-" writes to stdout.
func createOutput(cmd *cli.Command, path string) (io.WriteCloser, error) {
	if path == "" || path == stdioPath {
		return nopWriteCloser{stdout(cmd)}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output: %w", err)
	}

	return f, nil
}
