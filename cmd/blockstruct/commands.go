// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/katalvlaran/gfstruct/archive"
	bst "github.com/katalvlaran/gfstruct/blockstructure"
	"github.com/spf13/cobra"
)

// defaultKey is the archive entry the commands read and write.
const defaultKey = "block_structure"

// app carries the state shared by all subcommands of one invocation.
type app struct {
	out     io.Writer
	logger  *slog.Logger
	archive string
	key     string
	verbose bool
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out}
	root := &cobra.Command{
		Use:          "blockstruct",
		Short:        "Build and edit solver/sumk block structures",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVarP(&a.archive, "archive", "a", "", "archive file holding the structure (required)")
	root.PersistentFlags().StringVar(&a.key, "key", defaultKey, "archive entry name")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug messages")
	_ = root.MarkPersistentFlagRequired("archive")

	root.AddCommand(a.fullCmd(), a.showCmd(), a.pickCmd(), a.mapCmd(), a.diagonalCmd())

	return root
}

func (a *app) fullCmd() *cobra.Command {
	var (
		gfPath string
		corr   []int
	)
	cmd := &cobra.Command{
		Use:   "full",
		Short: "Create the identity structure from a solver block structure",
		RunE: func(cmd *cobra.Command, args []string) error {
			gs, err := readGfStructs(gfPath)
			if err != nil {
				return err
			}
			var c []int
			if cmd.Flags().Changed("corr-to-inequiv") {
				c = corr
			}
			bs, err := bst.FullStructure(gs, c)
			if err != nil {
				return err
			}
			a.logger.Info("created structure", "shells", bs.NumShells(), "corr_shells", bs.NumCorrShells())

			return a.save(bs)
		},
	}
	cmd.Flags().StringVarP(&gfPath, "gf-struct", "g", "", "YAML list of per-shell block structures (required)")
	cmd.Flags().IntSliceVar(&corr, "corr-to-inequiv", nil, "inequivalent shell of each correlated shell")
	_ = cmd.MarkFlagRequired("gf-struct")

	return cmd
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print every table of the stored structure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := a.load()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, bs.String())

			return err
		},
	}
}

func (a *app) pickCmd() *cobra.Command {
	var (
		selPath string
		sumk    bool
	)
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Keep only the selected blocks and indices",
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := a.load()
			if err != nil {
				return err
			}
			sel, err := readGfStructs(selPath)
			if err != nil {
				return err
			}
			if sumk {
				err = bs.PickSumk(sel)
			} else {
				err = bs.PickSolver(sel)
			}
			if err != nil {
				return err
			}
			a.logger.Info("picked orbitals", "sumk_labels", sumk)

			return a.save(bs)
		},
	}
	cmd.Flags().StringVarP(&selPath, "select", "s", "", "YAML list of per-shell structures to keep (required)")
	cmd.Flags().BoolVar(&sumk, "sumk", false, "selection is given in sumk labels")
	_ = cmd.MarkFlagRequired("select")

	return cmd
}

func (a *app) mapCmd() *cobra.Command {
	var mapPath string
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Regroup solver orbitals into new blocks",
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := a.load()
			if err != nil {
				return err
			}
			m, err := readMapping(mapPath)
			if err != nil {
				return err
			}
			diag := bst.NewDiagnostics(a.logger, true)
			if err = bs.MapSolver(m, bst.WithDiagnostics(diag)); err != nil {
				return err
			}
			a.logger.Info("remapped solver structure", "warnings", len(diag.Warnings()))

			return a.save(bs)
		},
	}
	cmd.Flags().StringVarP(&mapPath, "mapping", "m", "", "YAML list of per-shell from/to pairs (required)")
	_ = cmd.MarkFlagRequired("mapping")

	return cmd
}

func (a *app) diagonalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diagonal",
		Short: "Split every mapped orbital into its own 1x1 block",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := a.load()
			if err != nil {
				return err
			}
			if err = bs.ApproximateAsDiagonal(); err != nil {
				return err
			}
			a.logger.Warn("diagonal approximation discards off-diagonal elements")

			return a.save(bs)
		},
	}
}

// load reads the structure stored under a.key.
func (a *app) load() (*bst.BlockStructure, error) {
	st, err := archive.Load(a.archive)
	if err != nil {
		return nil, err
	}
	v, err := st.Get(a.key)
	if err != nil {
		return nil, err
	}
	bs, ok := v.(*bst.BlockStructure)
	if !ok {
		return nil, fmt.Errorf("entry %q holds %s, not %s", a.key, v.PersistName(), bst.PersistName)
	}
	a.logger.Debug("loaded structure", "archive", a.archive, "key", a.key)

	return bs, nil
}

// save stores bs under a.key, keeping the archive's other entries.
func (a *app) save(bs *bst.BlockStructure) error {
	st, err := archive.Load(a.archive)
	if errors.Is(err, fs.ErrNotExist) {
		st, err = archive.NewStore(), nil
	}
	if err != nil {
		return err
	}
	if err = st.Put(a.key, bs); err != nil {
		return err
	}
	if err = st.Save(a.archive); err != nil {
		return err
	}
	a.logger.Debug("saved structure", "archive", a.archive, "key", a.key)

	return nil
}
