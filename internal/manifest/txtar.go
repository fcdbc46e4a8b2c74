// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package manifest

import (
	"bytes"
	"strings"

	"github.com/matt-FFFFFF/treefix/internal/shape"
	"golang.org/x/tools/txtar"
)

// decodeTxtar decodes a txtar archive of the form:
//
//	demo
//	-- a/b.txt --
//	hello
//	-- c/d/ --
//
// Each archive file is an entry. Names ending in the separator with
// blank bodies are directories; everything else is a file whose content
// is the body exactly as parsed. The first non-blank comment line, if
// any, names the shape.
func decodeTxtar(data []byte, _ string) (Definition, error) {
	arc := txtar.Parse(data)

	def := Definition{Name: txtarName(arc.Comment)}

	for _, f := range arc.Files {
		if strings.HasSuffix(f.Name, shape.Sep) && len(bytes.TrimSpace(f.Data)) == 0 {
			def.Entries = append(def.Entries, shape.Dir(f.Name))
			continue
		}

		def.Entries = append(def.Entries, shape.File(f.Name, string(f.Data)))
	}

	return def, nil
}

func txtarName(comment []byte) string {
	for _, line := range strings.Split(string(comment), "\n") {
		if s := strings.TrimSpace(line); s != "" {
			return s
		}
	}

	return ""
}
