// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// The calc command implements a simple calculator.
// The command line arguments are joined into a single arithmetic expression,
// which is parsed with the arith example grammar and then evaluated.
//
// Every flag can also be set from the environment with the CALC_ prefix, so
// CALC_TREE=true is the same as passing --tree.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aiifabbf/parsec/core/log"
	"github.com/aiifabbf/parsec/core/text/parsec/examples/arith"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

const longHelp = `calc: A simple calculator.

Flags are only read before the expression. An expression that starts with a
negative number must follow -- so it is not read as a flag, as in
calc -- -1 + 2.`

type options struct {
	verbose bool
	tree    bool
}

func newCommand() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:           "calc [flags] [--] expression...",
		Short:         "calc: A simple calculator.",
		Long:          longHelp,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return checkEnvironmentVariables(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := newContext(cmd.ErrOrStderr(), opts.verbose)
			if err := run(ctx, cmd.OutOrStdout(), strings.Join(args, " "), opts); err != nil {
				log.E(ctx, "%v", err)
				return err
			}
			return nil
		},
	}
	// Everything after the first argument belongs to the expression, so
	// "calc 1 - -2" does not read -2 as a flag.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every grammar rule as it is tried")
	cmd.Flags().BoolVar(&opts.tree, "tree", false, "print the parenthesised syntax tree instead of the input")
	return cmd
}

// newContext returns a context that logs to w through logrus.
func newContext(w io.Writer, verbose bool) context.Context {
	severity := log.Info
	if verbose {
		severity = log.Debug
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(log.LogrusLevel(severity))
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	ctx := log.PutHandler(context.Background(), log.Logrus(l))
	ctx = log.PutFilter(ctx, log.SeverityFilter(severity))
	return log.Enter(ctx, "calc")
}

func run(ctx context.Context, w io.Writer, input string, opts options) error {
	e, err := arith.Parse(ctx, input)
	if err != nil {
		return err
	}
	value, err := e.Eval()
	if err != nil {
		return err
	}
	shown := input
	if opts.tree {
		shown = e.String()
	}
	_, err = fmt.Fprintf(w, "%s = %d\n", shown, value)
	return err
}
