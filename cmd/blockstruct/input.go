// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	bst "github.com/katalvlaran/gfstruct/blockstructure"
	"gopkg.in/yaml.v3"
)

// readGfStructs parses a YAML list of block structures, one per shell:
//
//	- up: [0, 1]
//	  down: [0, 1]
//	- eg: [z2, x2y2]
//
// Unquoted integers become integer labels; everything else is a string label.
func readGfStructs(path string) ([]bst.GfStruct, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var shells []map[string][]any
	if err = yaml.Unmarshal(raw, &shells); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	out := make([]bst.GfStruct, len(shells))
	for ish, blocks := range shells {
		g := make(bst.GfStruct, len(blocks))
		for name, idxs := range blocks {
			labels := make([]bst.Label, len(idxs))
			for i, v := range idxs {
				if labels[i], err = labelOf(v); err != nil {
					return nil, fmt.Errorf("%s: shell %d block %q: %w", path, ish, name, err)
				}
			}
			g[name] = labels
		}
		out[ish] = g
	}

	return out, nil
}

// pairSpec is one from/to entry of a mapping file.
type pairSpec struct {
	From []any `yaml:"from"`
	To   []any `yaml:"to"`
}

// readMapping parses a YAML list of per-shell pair lists:
//
//	- - {from: [up, 0], to: [ud, 0]}
//	  - {from: [down, 0], to: [ud, 1]}
//	- null
//
// A null shell keeps that shell unchanged.
func readMapping(path string) ([]map[bst.Key]bst.Key, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var shells [][]pairSpec
	if err = yaml.Unmarshal(raw, &shells); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	out := make([]map[bst.Key]bst.Key, len(shells))
	for ish, pairs := range shells {
		if pairs == nil {
			continue
		}
		m := make(map[bst.Key]bst.Key, len(pairs))
		for i, p := range pairs {
			from, err := keyOf(p.From)
			if err != nil {
				return nil, fmt.Errorf("%s: shell %d pair %d from: %w", path, ish, i, err)
			}
			to, err := keyOf(p.To)
			if err != nil {
				return nil, fmt.Errorf("%s: shell %d pair %d to: %w", path, ish, i, err)
			}
			m[from] = to
		}
		out[ish] = m
	}

	return out, nil
}

func keyOf(v []any) (bst.Key, error) {
	if len(v) != 2 {
		return bst.Key{}, fmt.Errorf("want [block, index], got %v: %w", v, bst.ErrInvalidLabel)
	}
	block, ok := v[0].(string)
	if !ok {
		return bst.Key{}, fmt.Errorf("block %v: %w", v[0], bst.ErrInvalidLabel)
	}
	l, err := labelOf(v[1])
	if err != nil {
		return bst.Key{}, err
	}

	return bst.K(block, l), nil
}

func labelOf(v any) (bst.Label, error) {
	switch x := v.(type) {
	case int:
		return bst.IntLabel(x), nil
	case string:
		return bst.NameLabel(x), nil
	}

	return bst.Label{}, fmt.Errorf("label %v (%T): %w", v, v, bst.ErrInvalidLabel)
}
