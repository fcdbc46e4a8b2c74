// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package make implements the command that fetches shape manifests and
// creates the trees they describe.
package make

import (
	"context"
	"errors"
	"fmt"

	"github.com/matt-FFFFFF/treefix/internal/ctxlog"
	"github.com/matt-FFFFFF/treefix/internal/manifest"
	"github.com/matt-FFFFFF/treefix/internal/shape"
	"github.com/matt-FFFFFF/treefix/internal/tempdir"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const (
	fileFlag = "file"
	dirFlag  = "dir"

	dirPerm = 0o755
)

// ErrTargetDir is returned when the target directory cannot be created.
var ErrTargetDir = errors.New("failed to create target directory")

// FS is the filesystem used to materialize trees under an explicit
// target directory. It is swappable for testing.
var FS = afero.NewOsFs()

// MakeCmd is the command that materializes shape manifests on disk.
var MakeCmd = &cli.Command{
	Name: "make",
	Description: `Create the files and directories described by one or more shape manifests.

Manifest URLs use Hashicorp's go-getter syntax, which allows for fetching files
from various sources. See https://github.com/hashicorp/go-getter.

Without --dir the tree is created under a fresh temporary directory. The target
directory path is printed to stdout.`,
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:    fileFlag,
			Aliases: []string{"f"},
			Usage: "Specify the URL of the shape manifest to materialize. " +
				"Supports Hashicorp's go-getter syntax for fetching files from various sources. " +
				"Specify multiple times to combine manifests into one tree.",
			OnlyOnce: false,
		},
		&cli.StringFlag{
			Name:      dirFlag,
			Aliases:   []string{"d"},
			Usage:     "Create the tree under this directory instead of a fresh temporary directory",
			TakesFile: true,
			Value:     "",
			OnlyOnce:  true,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)
	logger.Debug("Running make command")

	urls := cmd.StringSlice(fileFlag)
	if len(urls) == 0 {
		logger.Error("Please specify at least one manifest URL using the --file or -f flag.")
		return cli.Exit("", 1)
	}

	var raws []shape.RawEntry

	for i, u := range urls {
		if u == "" {
			logger.Error(fmt.Sprintf("The URL at index %d is empty. Please provide a valid URL.", i))
			return cli.Exit("", 1)
		}

		def, err := manifest.LoadURL(ctx, u)
		if err != nil {
			logger.Error(fmt.Sprintf("Failed to load manifest %s: %s", u, err.Error()))
			return cli.Exit("", 1)
		}

		logger.Debug("Loaded manifest", "url", u, "name", def.Name, "entries", len(def.Entries))

		raws = append(raws, def.Entries...)
	}

	path, err := createTree(raws, cmd.String(dirFlag))
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to create tree: %s", err.Error()))
		return cli.Exit("", 1)
	}

	logger.Info("Created tree", "dir", path, "entries", len(raws))
	fmt.Fprintln(cmd.Writer, path)

	return nil
}

// createTree materializes the raw entries under dir, creating it if it
// does not exist. When dir is empty the tree is created under a fresh
// temporary directory instead, which is released again if the entries
// turn out to be invalid. The target directory path is returned.
func createTree(raws []shape.RawEntry, dir string) (string, error) {
	if dir == "" {
		td := tempdir.New()
		if err := td.Create(); err != nil {
			return "", err
		}

		if err := td.MakeTree(raws...); err != nil {
			td.Release() //nolint:errcheck

			return "", err
		}

		return td.Path(), nil
	}

	entries, err := shape.Normalize(raws)
	if err != nil {
		return "", err
	}

	if err := FS.MkdirAll(dir, dirPerm); err != nil {
		return "", errors.Join(ErrTargetDir, err)
	}

	if err := shape.Create(FS, dir, entries); err != nil {
		return "", err
	}

	return dir, nil
}
