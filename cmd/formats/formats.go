// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package formats implements the command that lists the registered
// shape manifest formats.
package formats

import (
	"context"
	"fmt"
	"slices"

	"github.com/matt-FFFFFF/treefix/internal/manifest"
	"github.com/urfave/cli/v3"
)

var descriptions = map[string]string{
	".yaml":  "YAML manifest with a name and an entries sequence",
	".yml":   "YAML manifest with a name and an entries sequence",
	".hcl":   "HCL manifest with tree, dir and file blocks",
	".txtar": "txtar archive, one file per section",
}

// FormatsCmd is the command that lists the manifest formats treefix can
// decode, keyed by file extension.
var FormatsCmd = &cli.Command{
	Name:   "formats",
	Usage:  "List the supported shape manifest formats",
	Action: actionFunc,
}

func actionFunc(_ context.Context, cmd *cli.Command) error {
	fmt.Fprintf(cmd.Writer, "Supported manifest extensions:\n\n")

	exts := make([]string, 0, len(manifest.DefaultRegistry))
	for ext := range manifest.DefaultRegistry {
		exts = append(exts, ext)
	}

	slices.Sort(exts)

	for _, ext := range exts {
		desc, ok := descriptions[ext]
		if !ok {
			desc = "registered decoder"
		}

		fmt.Fprintf(cmd.Writer, "  %-8s - %s\n", ext, desc)
	}

	return nil
}
