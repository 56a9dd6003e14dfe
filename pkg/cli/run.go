// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/shayne/yargs"
	"github.com/yeetrun/px/pkg/fileutil"
	"github.com/yeetrun/px/pkg/ftdetect"
	"github.com/yeetrun/px/pkg/schema"
	"github.com/yeetrun/px/pkg/tui"
	"tailscale.com/types/logger"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitError   = 1
	ExitInvalid = 2
)

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

type app struct {
	flags  GlobalFlags
	tokens []string
	stdout io.Writer
	stderr io.Writer
	color  tui.Colorizer // stderr
	out    tui.Colorizer // stdout
	logf   logger.Logf
}

// Run executes pxargs with args (without the binary name) and returns the
// process exit code. Everything after the first "--" is handed to the schema
// untouched.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	head, tokens := splitArgsAtDoubleDash(args)

	flags, rest, err := ParseGlobal(head)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitError
	}
	a := &app{
		flags:  flags,
		tokens: tokens,
		stdout: stdout,
		stderr: stderr,
		color:  tui.NewColorizer(stderr, !flags.NoColor),
		out:    tui.NewColorizer(stdout, !flags.NoColor),
		logf:   logger.Discard,
	}
	if flags.Verbose {
		a.logf = log.New(stderr, "pxargs: ", 0).Printf
	}

	handlers := map[string]yargs.SubcommandHandler{
		CommandRun:   a.run,
		CommandUsage: a.usage,
		CommandCheck: a.check,
	}
	err = yargs.RunSubcommands(ctx, rest, HelpConfig(), GlobalFlags{}, handlers)
	return a.exit(err)
}

func (a *app) exit(err error) int {
	if err == nil {
		return ExitOK
	}
	fmt.Fprintf(a.stderr, "%s %v\n", a.color.Error("error:"), err)
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitError
}

func (a *app) schemaPath() (string, error) {
	if a.flags.Schema != "" {
		return a.flags.Schema, nil
	}
	if p := os.Getenv(SchemaEnv); p != "" {
		return p, nil
	}
	return "", fmt.Errorf("no schema given; use --schema or set %s", SchemaEnv)
}

func (a *app) load() (*schema.Set, error) {
	path, err := a.schemaPath()
	if err != nil {
		return nil, err
	}
	ft := ftdetect.Unknown
	if a.flags.SchemaType != "" {
		if ft, err = ftdetect.ParseFileType(a.flags.SchemaType); err != nil {
			return nil, err
		}
	}
	doc, err := schema.LoadType(path, ft)
	if err != nil {
		return nil, err
	}
	set, err := schema.Build(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.logf("loaded %s: program %q, %d args", path, doc.Program, len(doc.Args))
	set.CommandLine().SetLogf(a.logf)
	return set, nil
}

func (a *app) run(_ context.Context, args []string) error {
	flags, rest, err := ParseRun(args)
	if err != nil {
		return err
	}
	if err := RequireNoArgs(CommandRun, rest); err != nil {
		return err
	}
	set, err := a.load()
	if err != nil {
		return err
	}

	program := set.Doc().Program
	tokens := a.tokens
	if flags.Program {
		if len(tokens) > 0 {
			program = tokens[0]
		}
	} else {
		tokens = append([]string{program}, tokens...)
	}
	if err := set.Parse(tokens); err != nil {
		return err
	}

	if err := set.CommandLine().Validate(); err != nil {
		set.CommandLine().PrintHelp(a.stderr)
		return &exitError{code: ExitInvalid, err: err}
	}

	var buf bytes.Buffer
	if err := writeResult(&buf, flags.Format, program, set.Entries()); err != nil {
		return err
	}
	if flags.Out != "" {
		if err := fileutil.WriteFile(flags.Out, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", flags.Out, err)
		}
		a.logf("wrote %s", flags.Out)
		return nil
	}
	_, err = a.stdout.Write(buf.Bytes())
	return err
}

func (a *app) usage(_ context.Context, args []string) error {
	if err := RequireNoArgs(CommandUsage, stripCommand(args, CommandUsage)); err != nil {
		return err
	}
	set, err := a.load()
	if err != nil {
		return err
	}
	set.CommandLine().PrintHelp(a.stdout)
	return nil
}

func (a *app) check(_ context.Context, args []string) error {
	flags, rest, err := ParseCheck(args)
	if err != nil {
		return err
	}
	if err := RequireNoArgs(CommandCheck, rest); err != nil {
		return err
	}
	set, err := a.load()
	if err != nil {
		return err
	}
	if !flags.Quiet {
		fmt.Fprintf(a.stdout, "%s %s, %d arguments\n", a.out.OK("ok:"), set.CommandLine().Name(), len(set.CommandLine().Descriptors()))
	}
	return nil
}
