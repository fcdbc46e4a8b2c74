// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/treefix/cmd/formats"
	makecmd "github.com/matt-FFFFFF/treefix/cmd/make"
	"github.com/matt-FFFFFF/treefix/cmd/show"
	"github.com/matt-FFFFFF/treefix/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

const jsonFlag = "json"

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		formats.FormatsCmd,
		makecmd.MakeCmd,
		show.ShowCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "treefix",
	Description: `Treefix materializes directory trees from declarative shape manifests.
A manifest lists files and directories in a loose, human-friendly form; treefix
normalizes the entries and creates them on disk, either under a directory you
name or under a fresh temporary directory whose path is printed for scripting.
Manifests may be written in YAML, HCL or txtar format.`,
	Usage:     "treefix make -f shape.yaml",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:     jsonFlag,
			Usage:    "Emit logs as JSON instead of the pretty console format",
			Value:    false,
			OnlyOnce: true,
		},
	},
	Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
		if cmd.Bool(jsonFlag) {
			ctx = ctxlog.New(ctx, ctxlog.JSONLogger)
		}

		return ctx, nil
	},
}
