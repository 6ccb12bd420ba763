// SPDX-License-Identifier: MIT

// Command blockstruct builds, inspects and edits block structures stored in a
// YAML archive file.
//
//	blockstruct full --gf-struct solver.yaml --archive dft.yaml
//	blockstruct pick --select keep.yaml --archive dft.yaml
//	blockstruct show --archive dft.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
