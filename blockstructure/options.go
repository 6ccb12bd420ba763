// SPDX-License-Identifier: MIT

// Package blockstructure: functional options shared by the operations that
// can warn, create block functions, or convert between structures.
//
// Defaults:
//   - no diagnostics (warnings discarded),
//   - loss reporting on, threshold DefaultLossThreshold,
//   - source structure = receiver, source and destination space = Solver,
//   - destination shell = source shell,
//   - factory = gf.New with gf.DefaultMeshSize points (Convert follows the
//     source mesh instead when the source reports one).
//
// Option constructors panic on nonsensical values (programmer error).

package blockstructure

import (
	"fmt"
	"math"
)

// DefaultLossThreshold is the magnitude above which a cross-block drop is reported.
const DefaultLossThreshold = 1e-10

// Option configures a single call.
type Option func(*options)

type options struct {
	diag         *Diagnostics
	lossWarnings bool
	threshold    float64
	factory      Factory
	factorySet   bool
	dest         BlockFunction
	source       *BlockStructure
	spaceFrom    Space
	spaceTo      Space
	shellTo      int
	shellToSet   bool
}

func gatherOptions(opts []Option) options {
	o := options{
		lossWarnings: true,
		threshold:    DefaultLossThreshold,
		factory:      DefaultFactory,
		spaceFrom:    Solver,
		spaceTo:      Solver,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithDiagnostics routes warnings into d.
func WithDiagnostics(d *Diagnostics) Option {
	return func(o *options) { o.diag = d }
}

// WithLossThreshold sets the cross-block drop reporting threshold.
// Panics if t is negative or NaN.
func WithLossThreshold(t float64) Option {
	if math.IsNaN(t) || t < 0 {
		panic(fmt.Sprintf("blockstructure: WithLossThreshold(%v): threshold must be >= 0", t))
	}

	return func(o *options) { o.threshold = t }
}

// WithoutLossWarnings disables LossyConversion reporting.
func WithoutLossWarnings() Option {
	return func(o *options) { o.lossWarnings = false }
}

// WithFactory sets the constructor used for new block functions.
// Panics on nil.
func WithFactory(f Factory) Option {
	if f == nil {
		panic("blockstructure: WithFactory(nil)")
	}

	return func(o *options) { o.factory, o.factorySet = f, true }
}

// WithDestination makes Convert write into g (validated first) instead of a
// freshly created block function.
func WithDestination(g BlockFunction) Option {
	return func(o *options) { o.dest = g }
}

// WithSourceStructure declares the structure the converted data follows.
// nil means the receiver.
func WithSourceStructure(src *BlockStructure) Option {
	return func(o *options) { o.source = src }
}

// WithSourceSpace declares the space of the converted data.
func WithSourceSpace(s Space) Option {
	return func(o *options) { o.spaceFrom = s }
}

// WithDestSpace selects the space of the result.
func WithDestSpace(s Space) Option {
	return func(o *options) { o.spaceTo = s }
}

// WithDestShell selects the shell of the result.
func WithDestShell(ish int) Option {
	return func(o *options) { o.shellTo, o.shellToSet = ish, true }
}
