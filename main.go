// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/staranto/cachefxgo/internal/command"
	mylog "github.com/staranto/cachefxgo/internal/log"
	"github.com/staranto/cachefxgo/internal/stats"
	"github.com/staranto/cachefxgo/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

func realMain() int {
	mylog.InitLogger()

	args := os.Args

	if len(args) < 2 {
		fmt.Println(command.AnalyzeUsage)
		return 1
	}

	// Short-circuit --version/-v.
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return 0
		}
	}

	args = mangleArguments(args)

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		return fail(err)
	}

	return 0
}

// fail prints the one-line, category-specific message for err on stdout
// and returns the process exit code. All failures are terminal; nothing
// of the report is printed before the error line.
func fail(err error) int {
	var usage *command.UsageError
	var notFound *stats.NotFoundError
	var malformed *stats.MalformedError

	switch {
	case errors.As(err, &usage):
		fmt.Println(usage.Usage)
	case errors.As(err, &notFound):
		fmt.Printf("Error: File '%s' not found\n", notFound.Path)
	case errors.As(err, &malformed):
		fmt.Printf("Error parsing JSON: %s\n", malformed.Detail)
	default:
		fmt.Printf("Error: %v\n", err)
	}

	return 1
}

// mangleArguments routes the plain invocation `cachefx <stats file>` to
// the analyze subcommand so the common case needs no subcommand at all.
func mangleArguments(args []string) []string {
	switch args[1] {
	case "analyze", "browse", "diff", "completion":
		return args
	}

	for _, a := range args {
		if a == "--help" || a == "-h" {
			return args
		}
	}

	return append([]string{args[0], "analyze"}, args[1:]...)
}
