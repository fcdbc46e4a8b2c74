// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package show implements the command that prints the normalized form
// of a shape manifest as an indented tree.
package show

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/matt-FFFFFF/treefix/internal/color"
	"github.com/matt-FFFFFF/treefix/internal/ctxlog"
	"github.com/matt-FFFFFF/treefix/internal/manifest"
	"github.com/matt-FFFFFF/treefix/internal/shape"
	"github.com/urfave/cli/v3"
)

const (
	fileFlag = "file"

	indent = "  "
)

// ShowCmd is the command that prints the normalized form of a shape
// manifest without creating anything on disk.
var ShowCmd = &cli.Command{
	Name: "show",
	Description: `Print the normalized form of a shape manifest as an indented tree.

Manifest URLs use Hashicorp's go-getter syntax, which allows for fetching files
from various sources. See https://github.com/hashicorp/go-getter.

Directories are listed with a trailing separator and files are annotated with
the size of the content they would be created with. Nothing is written to disk.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     fileFlag,
			Aliases:  []string{"f"},
			Usage:    "Specify the URL of the shape manifest to show.",
			OnlyOnce: true,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)
	logger.Debug("Running show command")

	url := cmd.String(fileFlag)
	if url == "" {
		logger.Error("Please specify a manifest URL using the --file or -f flag.")
		return cli.Exit("", 1)
	}

	def, err := manifest.LoadURL(ctx, url)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to load manifest %s: %s", url, err.Error()))
		return cli.Exit("", 1)
	}

	entries, err := def.Shape()
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to normalize manifest %s: %s", url, err.Error()))
		return cli.Exit("", 1)
	}

	p := &treePrinter{w: cmd.Writer, color: color.Enabled()}
	if err := p.print(def.Name, entries); err != nil {
		logger.Error(fmt.Sprintf("Failed to write tree: %s", err.Error()))
		return cli.Exit("", 1)
	}

	return nil
}

// treePrinter renders normalized entries as an indented tree. Parent
// directories that are implied by an entry name but not listed
// themselves are synthesized, mirroring their on-demand creation during
// materialization. Listed entries are never deduplicated.
type treePrinter struct {
	w     io.Writer
	color bool
}

func (p *treePrinter) print(name string, entries shape.Shape) error {
	if name != "" {
		if _, err := fmt.Fprintln(p.w, p.paint(name, color.Bold)); err != nil {
			return err
		}
	}

	// Sorted order puts a listed directory before anything beneath it, so
	// tracking printed directories is enough to avoid synthesizing one twice.
	printed := map[string]struct{}{}

	for _, e := range entries {
		trimmed := strings.TrimSuffix(e.Name, shape.Sep)
		segs := strings.Split(trimmed, shape.Sep)

		for i := range len(segs) - 1 {
			parent := strings.Join(segs[:i+1], shape.Sep)
			if _, ok := printed[parent]; ok {
				continue
			}

			printed[parent] = struct{}{}

			if err := p.line(i, segs[i]+shape.Sep, nil); err != nil {
				return err
			}
		}

		depth := len(segs) - 1

		if e.IsDir() {
			printed[trimmed] = struct{}{}
		}

		if err := p.line(depth, segs[depth], e.Content); err != nil {
			return err
		}
	}

	return nil
}

func (p *treePrinter) line(depth int, base string, content *string) error {
	sb := strings.Builder{}
	sb.WriteString(strings.Repeat(indent, depth))

	if content == nil {
		if !strings.HasSuffix(base, shape.Sep) {
			base += shape.Sep
		}

		sb.WriteString(p.paint(base, color.Bold, color.FgBlue))
	} else {
		sb.WriteString(base)
		sb.WriteString(" ")
		sb.WriteString(p.paint(fmt.Sprintf("(%d B)", len(*content)), color.Faint))
	}

	_, err := fmt.Fprintln(p.w, sb.String())

	return err
}

func (p *treePrinter) paint(s string, codes ...color.Code) string {
	if !p.color {
		return s
	}

	return color.Sprint(s, codes...)
}
