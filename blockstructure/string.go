// SPDX-License-Identifier: MIT

package blockstructure

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/gfstruct/matrix"
)

// String renders every table for debugging: structures, both index maps
// sorted by (block, index), equivalence groups (conjugated members marked
// with *) and the transformation.
func (bs *BlockStructure) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "gf_struct_sumk %v\n", bs.GfStructSumk)
	sb.WriteString("gf_struct_solver [")
	for ish, g := range bs.GfStructSolver {
		if ish > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%v", g.List())
	}
	sb.WriteString("]\n")
	fmt.Fprintf(&sb, "solver_to_sumk_block %v\n", bs.SolverToSumkBlock)

	sb.WriteString("solver_to_sumk\n")
	for ish, m := range bs.SolverToSumk {
		fmt.Fprintf(&sb, " shell %d\n", ish)
		for _, k := range sortedKeys(m) {
			fmt.Fprintf(&sb, "  %s -> %s\n", k, m[k])
		}
	}
	sb.WriteString("sumk_to_solver\n")
	for ish, m := range bs.SumkToSolver {
		fmt.Fprintf(&sb, " shell %d\n", ish)
		for _, k := range sortedKeys(m) {
			fmt.Fprintf(&sb, "  %s -> %s\n", k, m[k])
		}
	}

	sb.WriteString("deg_shells\n")
	for ish, groups := range bs.DegShells {
		fmt.Fprintf(&sb, " shell %d\n", ish)
		for gi, g := range groups {
			fmt.Fprintf(&sb, "  equivalent group %d\n", gi)
			switch grp := g.(type) {
			case SimpleGroup:
				for _, name := range grp {
					fmt.Fprintf(&sb, "   %s\n", name)
				}
			case TransformGroup:
				for _, name := range grp.Blocks() {
					bt := grp[name]
					mark := ""
					if bt.Conjugate {
						mark = "*"
					}
					fmt.Fprintf(&sb, "   %s%s:\n", name, mark)
					fmt.Fprintf(&sb, "    %s\n", indent(matrixString(bt.Matrix), "    "))
				}
			}
		}
	}

	sb.WriteString("transformation\n")
	if bs.Transformation == nil {
		sb.WriteString(noneSentinel)

		return sb.String()
	}
	for ish, t := range bs.Transformation {
		fmt.Fprintf(&sb, " shell %d\n", ish)
		switch tr := t.(type) {
		case UniformTransform:
			fmt.Fprintf(&sb, "  %s\n", indent(matrixString(tr.Matrix), "  "))
		case BlockTransforms:
			names := make([]string, 0, len(tr))
			for name := range tr {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(&sb, "  %s:\n   %s\n", name, indent(matrixString(tr[name]), "   "))
			}
		default:
			sb.WriteString("  " + noneSentinel + "\n")
		}
	}

	return sb.String()
}

func indent(s, prefix string) string {
	return strings.ReplaceAll(s, "\n", "\n"+prefix)
}

func matrixString(m *matrix.Dense) string {
	if m == nil {
		return noneSentinel
	}

	return m.String()
}
