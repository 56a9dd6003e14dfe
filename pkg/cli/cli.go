// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shayne/yargs"
)

const (
	CommandRun   = "run"
	CommandUsage = "usage"
	CommandCheck = "check"
)

// SchemaEnv names the environment variable consulted when --schema is absent.
const SchemaEnv = "PXARGS_SCHEMA"

type CommandInfo struct {
	Name        string
	Description string
	Usage       string
	Examples    []string
	Hidden      bool
	Aliases     []string
}

type GlobalFlags struct {
	Schema     string `flag:"schema" short:"s" help:"Argument schema file (PXARGS_SCHEMA)"`
	SchemaType string `flag:"schema-type" help:"Schema format: toml, yaml or json (detected when empty)"`
	Verbose    bool   `flag:"verbose" short:"v" help:"Trace token matches to stderr"`
	NoColor    bool   `flag:"no-color" help:"Disable colored output"`
}

type RunFlags struct {
	Format  string
	Program bool
	Out     string
}

type CheckFlags struct {
	Quiet bool
}

type runFlagsParsed struct {
	Format  string `flag:"format" short:"f" default:"env" help:"Output format: env, json, yaml or toml"`
	Program bool   `flag:"program" help:"The first token is the program name"`
	Out     string `flag:"out" short:"o" help:"Write the output to a file instead of stdout"`
}

type checkFlagsParsed struct {
	Quiet bool `flag:"quiet" short:"q" help:"Print nothing on success"`
}

// Formats lists the output formats accepted by run.
var Formats = []string{"env", "json", "yaml", "toml"}

var commandInfos = map[string]CommandInfo{
	CommandRun: {
		Name:        CommandRun,
		Description: "Parse tokens against the schema and print the resolved values",
		Usage:       "[--format env|json|yaml|toml] [--program] [--out FILE] -- TOKENS...",
		Examples: []string{
			`eval "$(pxargs -s backup.toml run -- "$@")"`,
			"pxargs -s backup.toml run --format json -- -s /srv --keep 30",
			"pxargs -s backup.toml run --program -- backup -s /srv",
		},
	},
	CommandUsage: {
		Name:        CommandUsage,
		Description: "Print the argument help generated from the schema",
		Examples:    []string{"pxargs -s backup.toml usage"},
	},
	CommandCheck: {
		Name:        CommandCheck,
		Description: "Validate a schema file",
		Usage:       "[--quiet]",
		Examples:    []string{"pxargs -s backup.toml check"},
		Aliases:     []string{"lint"},
	},
}

func CommandNames() []string {
	names := make([]string, 0, len(commandInfos))
	for name := range commandInfos {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// HelpConfig returns the yargs help metadata for pxargs.
func HelpConfig() yargs.HelpConfig {
	subcommands := make(map[string]yargs.SubCommandInfo, len(commandInfos))
	for _, name := range CommandNames() {
		subcommands[name] = toSubCommandInfo(name, commandInfos[name])
	}
	return yargs.HelpConfig{
		Command: yargs.CommandInfo{
			Name:        "pxargs",
			Description: "Parse command-line arguments for shell scripts from a declarative schema.",
			Examples: []string{
				"pxargs --schema backup.toml usage",
				`eval "$(pxargs --schema backup.toml run -- "$@")"`,
			},
		},
		SubCommands: subcommands,
	}
}

func toSubCommandInfo(name string, info CommandInfo) yargs.SubCommandInfo {
	return yargs.SubCommandInfo{
		Name:        name,
		Description: info.Description,
		Usage:       info.Usage,
		Examples:    info.Examples,
		Hidden:      info.Hidden,
		Aliases:     info.Aliases,
	}
}

// ParseGlobal extracts the global flags from args, leaving the rest intact.
func ParseGlobal(args []string) (GlobalFlags, []string, error) {
	result, err := yargs.ParseKnownFlags[GlobalFlags](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return GlobalFlags{}, nil, err
	}
	return result.Flags, result.RemainingArgs, nil
}

// ParseRun parses the flags of the run command. args may start with the
// command name.
func ParseRun(args []string) (RunFlags, []string, error) {
	parsed, err := parseFlags[runFlagsParsed](stripCommand(args, CommandRun))
	if err != nil {
		return RunFlags{}, nil, err
	}
	flags := RunFlags{
		Format:  strings.ToLower(parsed.Flags.Format),
		Program: parsed.Flags.Program,
		Out:     parsed.Flags.Out,
	}
	if !slices.Contains(Formats, flags.Format) {
		return RunFlags{}, nil, fmt.Errorf("unknown format %q, want one of %s", parsed.Flags.Format, strings.Join(Formats, ", "))
	}
	return flags, parsed.Args, nil
}

// ParseCheck parses the flags of the check command.
func ParseCheck(args []string) (CheckFlags, []string, error) {
	parsed, err := parseFlags[checkFlagsParsed](stripCommand(args, CommandCheck, "lint"))
	if err != nil {
		return CheckFlags{}, nil, err
	}
	return CheckFlags{Quiet: parsed.Flags.Quiet}, parsed.Args, nil
}

type parsedFlags[T any] struct {
	Flags T
	Args  []string
}

func parseFlags[T any](args []string) (parsedFlags[T], error) {
	result, err := yargs.ParseFlags[T](args)
	if err != nil {
		return parsedFlags[T]{}, err
	}
	argsOut := append([]string{}, result.Args...)
	if len(result.RemainingArgs) > 0 {
		argsOut = append(argsOut, result.RemainingArgs...)
	}
	return parsedFlags[T]{Flags: result.Flags, Args: argsOut}, nil
}

// stripCommand removes the first non-flag argument when it names the
// command.
func stripCommand(args []string, names ...string) []string {
	for i, arg := range args {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		if slices.Contains(names, arg) {
			return slices.Delete(slices.Clone(args), i, i+1)
		}
		break
	}
	return args
}

// splitArgsAtDoubleDash splits args at the first "--". The second result is
// nil when there is no separator.
func splitArgsAtDoubleDash(args []string) ([]string, []string) {
	for i, arg := range args {
		if arg == "--" {
			return args[:i], append([]string{}, args[i+1:]...)
		}
	}
	return args, nil
}

func RequireNoArgs(subcmd string, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("'%s' takes no arguments, got %q; pass tokens after --", subcmd, args)
	}
	return nil
}
