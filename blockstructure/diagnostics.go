// SPDX-License-Identifier: MIT

package blockstructure

import (
	"context"
	"log/slog"
)

// WarningKind classifies a recoverable condition.
type WarningKind int

const (
	// AmbiguousMapping: a relabeling sent one solver block to two sumk blocks;
	// the first assignment was kept.
	AmbiguousMapping WarningKind = iota + 1

	// LossyConversion: a conversion dropped an element (no counterpart) or
	// approximated it to zero (cross-block placement).
	LossyConversion

	// UnsupportedComparison: equality met a value kind it cannot compare and
	// reported the pair as unequal.
	UnsupportedComparison
)

// String returns the kind name used in log records.
func (k WarningKind) String() string {
	switch k {
	case AmbiguousMapping:
		return "AmbiguousMapping"
	case LossyConversion:
		return "LossyConversion"
	case UnsupportedComparison:
		return "UnsupportedComparison"
	}

	return "Unknown"
}

// Warning carries enough context to locate the offending element.
// Fields that do not apply to a kind are left zero (Shell is -1).
type Warning struct {
	Kind      WarningKind
	Shell     int
	Block     string
	I1, I2    Label
	Magnitude float64
	Message   string
}

// Diagnostics collects warnings raised by operations it is passed to.
// Warnings are always recorded; they are written to Logger only when
// Coordinator is set, so that under process-parallel execution exactly one
// process emits them. A nil *Diagnostics discards everything.
type Diagnostics struct {
	Logger      *slog.Logger
	Coordinator bool

	warnings []Warning
}

// NewDiagnostics returns a collector logging through logger (slog.Default when nil).
func NewDiagnostics(logger *slog.Logger, coordinator bool) *Diagnostics {
	if logger == nil {
		logger = slog.Default()
	}

	return &Diagnostics{Logger: logger, Coordinator: coordinator}
}

// Warn records w and emits it if this is the coordinating process.
func (d *Diagnostics) Warn(w Warning) {
	if d == nil {
		return
	}
	d.warnings = append(d.warnings, w)
	if !d.Coordinator {
		return
	}
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	attrs := []slog.Attr{slog.String("kind", w.Kind.String())}
	if w.Shell >= 0 {
		attrs = append(attrs, slog.Int("shell", w.Shell))
	}
	if w.Block != "" {
		attrs = append(attrs, slog.String("block", w.Block))
	}
	if w.Kind == LossyConversion {
		attrs = append(attrs,
			slog.String("i1", w.I1.String()),
			slog.String("i2", w.I2.String()),
			slog.Float64("max_abs", w.Magnitude))
	}
	logger.LogAttrs(context.Background(), slog.LevelWarn, w.Message, attrs...)
}

// Warnings returns the recorded warnings in the order they were raised.
func (d *Diagnostics) Warnings() []Warning {
	if d == nil {
		return nil
	}

	return append([]Warning(nil), d.warnings...)
}

// Count returns how many recorded warnings have kind k.
func (d *Diagnostics) Count(k WarningKind) int {
	var n int
	for _, w := range d.Warnings() {
		if w.Kind == k {
			n++
		}
	}

	return n
}

// Reset forgets recorded warnings.
func (d *Diagnostics) Reset() {
	if d != nil {
		d.warnings = nil
	}
}
