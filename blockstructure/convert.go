// SPDX-License-Identifier: MIT

package blockstructure

import (
	"fmt"
	"math/cmplx"
)

// Convert moves g from its structure into this one.
//
// g follows shell ishFrom of the source structure (WithSourceStructure, the
// receiver by default) in the source space (WithSourceSpace, Solver by
// default). The result follows shell WithDestShell (ishFrom by default) of
// the receiver in WithDestSpace (Solver by default). It is written into
// WithDestination after validation, or into a new block function. A new
// block function comes from WithFactory; without it, a source reporting its
// mesh size (MeshSize() int, as *gf.BlockGf does) gets a destination on a
// mesh of the same size, and any other source gets DefaultFactory.
//
// Every source element is read before the first write, so a failing read
// leaves WithDestination untouched. A failing write (a destination whose
// mesh does not match the source) may leave it partly written.
//
// For every block of the source and every ordered pair (i1, i2) of its
// labels, both labels are resolved to sumk pairs and then to destination
// pairs. The element is copied only when both destination pairs exist and
// lie in the same block. Otherwise it is dropped:
//   - missing counterpart: always reported as LossyConversion;
//   - counterparts in different blocks: approximated to zero, reported only
//     when its largest modulus exceeds the loss threshold.
//
// The threshold only gates the warning; dropped elements are never written.
// Conversion is not information-preserving: A → B → A restores the data only
// when B refines A.
//
// Errors: ErrInvalidSpace, ErrShellOutOfRange, ErrStructureMismatch for a
// destination that does not fit, ErrUnknownIndex when a source solver pair
// has no recorded sumk counterpart, and element access errors from g.
func (bs *BlockStructure) Convert(g BlockFunction, ishFrom int, opts ...Option) (BlockFunction, error) {
	const op = "Convert"
	o := gatherOptions(opts)
	src := o.source
	if src == nil {
		src = bs
	}
	ishTo := ishFrom
	if o.shellToSet {
		ishTo = o.shellTo
	}
	if err := o.spaceFrom.Validate(); err != nil {
		return nil, fmt.Errorf("%s: source %w", op, err)
	}
	if err := o.spaceTo.Validate(); err != nil {
		return nil, fmt.Errorf("%s: destination %w", op, err)
	}
	in, err := src.structFor(ishFrom, o.spaceFrom)
	if err != nil {
		return nil, fmt.Errorf("%s: source %w", op, err)
	}
	if o.spaceFrom == Solver && ishFrom >= len(src.SolverToSumk) {
		return nil, shellErrorf(op, ishFrom, ErrShellOutOfRange)
	}

	resolveDest, err := bs.destResolver(ishTo, o.spaceTo)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := o.dest
	if out == nil {
		factory := o.factory
		if m, ok := g.(meshSizer); ok && !o.factorySet && m.MeshSize() > 0 {
			factory = MeshFactory(m.MeshSize())
		}
		if out, err = bs.createGf(ishTo, o.spaceTo, factory); err != nil {
			return nil, err
		}
	} else if err = bs.CheckGf(out, ishTo, o.spaceTo); err != nil {
		return nil, err
	}

	toSumk := func(k Key) (Key, error) {
		if o.spaceFrom == Sumk {
			return k, nil
		}
		sk, ok := src.SolverToSumk[ishFrom][k]
		if !ok {
			return Key{}, shellErrorf(op, ishFrom, fmt.Errorf("source %s: %w", k, ErrUnknownIndex))
		}

		return sk, nil
	}
	report := func(block string, i1, i2 Label, mag float64, msg string) {
		o.diag.Warn(Warning{
			Kind:      LossyConversion,
			Shell:     ishFrom,
			Block:     block,
			I1:        i1,
			I2:        i2,
			Magnitude: mag,
			Message:   msg,
		})
	}

	type write struct {
		block  string
		i1, i2 Label
		v      []complex128
	}
	var pending []write
	for _, block := range in.names {
		idxs := in.dict[block]
		for _, i1 := range idxs {
			for _, i2 := range idxs {
				s1, err := toSumk(K(block, i1))
				if err != nil {
					return nil, err
				}
				s2, err := toSumk(K(block, i2))
				if err != nil {
					return nil, err
				}
				d1, ok1 := resolveDest(s1)
				d2, ok2 := resolveDest(s2)
				if !ok1 || !ok2 {
					if o.lossWarnings {
						report(block, i1, i2, 0, fmt.Sprintf(
							"element %s,%s of block %s of G is not present in the new structure", i1, i2, block))
					}
					continue
				}
				v, err := g.Element(block, i1.String(), i2.String())
				if err != nil {
					return nil, fmt.Errorf("%s: read %s[%s,%s]: %w", op, block, i1, i2, err)
				}
				if d1.Block != d2.Block {
					if mag := maxAbs(v); o.lossWarnings && mag > o.threshold {
						report(block, i1, i2, mag, fmt.Sprintf(
							"element %s,%s of block %s of G is approximated to zero to match the new structure; max abs value %g",
							i1, i2, block, mag))
					}
					continue
				}
				pending = append(pending, write{block: d1.Block, i1: d1.Index, i2: d2.Index, v: v})
			}
		}
	}
	for _, w := range pending {
		if err = out.SetElement(w.block, w.i1.String(), w.i2.String(), w.v); err != nil {
			return nil, fmt.Errorf("%s: write %s[%s,%s]: %w", op, w.block, w.i1, w.i2, err)
		}
	}

	return out, nil
}

// destResolver returns the sumk→destination lookup of shell ish in space.
// Sumk pairs unknown to the destination resolve as missing.
func (bs *BlockStructure) destResolver(ish int, space Space) (func(Key) (Key, bool), error) {
	if space == Sumk {
		st, err := bs.structFor(ish, Sumk)
		if err != nil {
			return nil, err
		}

		return func(k Key) (Key, bool) {
			idxs, ok := st.dict[k.Block]

			return k, ok && indexOf(idxs, k.Index) >= 0
		}, nil
	}
	if err := bs.solverShell("Convert", ish); err != nil {
		return nil, err
	}
	su2so := bs.SumkToSolver[ish]

	return func(k Key) (Key, bool) {
		return su2so[k].Key()
	}, nil
}

func maxAbs(v []complex128) float64 {
	var best float64
	for _, x := range v {
		if a := cmplx.Abs(x); a > best {
			best = a
		}
	}

	return best
}
