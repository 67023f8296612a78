package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/uafields/pkg/useragent"
)

var errUnknownFormat = errors.New("unknown output format")

func newClassifyCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "classify [user-agent...]",
		Short: "Classify user agents from arguments or stdin",
		Long: `Classify prints the fields of each user agent on its own line.

Without arguments it reads one user agent per line from stdin. The json
format prints the analytics properties; fields that could not be
classified are omitted. The text format prints a short summary such as
"Chrome 91 (Windows)".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			write, err := formatter(format)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) > 0 {
				for _, ua := range args {
					if err := write(out, useragent.Classify(ua)); err != nil {
						return err
					}
				}
				return nil
			}

			sc := bufio.NewScanner(cmd.InOrStdin())
			sc.Buffer(make([]byte, 0, 4096), 64*1024)
			for sc.Scan() {
				line := strings.TrimSpace(sc.Text())
				if line == "" {
					continue
				}
				if err := write(out, useragent.Classify(line)); err != nil {
					return err
				}
			}
			return sc.Err()
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json, text")
	return cmd
}

func formatter(format string) (func(io.Writer, useragent.Result) error, error) {
	switch format {
	case "json":
		return func(w io.Writer, res useragent.Result) error {
			return json.NewEncoder(w).Encode(res)
		}, nil
	case "text":
		return func(w io.Writer, res useragent.Result) error {
			_, err := fmt.Fprintln(w, res.String())
			return err
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}
