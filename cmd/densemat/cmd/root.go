// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/densemat/matrix"
)

var (
	filePath string
	eps      float64
)

var rootCmd = &cobra.Command{
	Use:   "densemat",
	Short: "Dense matrix toolbox: RREF reduction and inversion",
	Long: `densemat reduces dense real matrices to Reduced Row Echelon Form
and inverts square matrices via identity-augmented reduction.

Matrices are given as positional arguments (<rows> <cols> followed by
rows*cols values in row-major order) or loaded from a YAML file with
--file.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Guard the tolerance here so the library option never panics on
		// user input.
		if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
			return fmt.Errorf("invalid --eps %v: must be finite and non-negative", eps)
		}

		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&filePath, "file", "f", "", "YAML file with the input matrix (alternative to positional values)")
	rootCmd.PersistentFlags().Float64Var(&eps, "eps", matrix.DefaultEpsilon, "absolute tolerance for pivot detection and comparisons")
}
