// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/densemat/matrix"
)

var inverseCmd = &cobra.Command{
	Use:   "inverse <n> <values...>",
	Short: "Invert a square matrix",
	Long: `Construct an n-by-n matrix from row-major values (or --file) and print
its inverse, computed by row-reducing the augmented matrix [A|I].`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// A single order argument describes both dimensions.
		if filePath == "" && len(args) >= 1 {
			args = append([]string{args[0]}, args...)
		}
		m, err := inputMatrix(args)
		if err != nil {
			return err
		}

		inv, err := matrix.Inverse(m, matrix.WithEpsilon(eps))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Input matrix:\n%s\n", m)
		fmt.Fprintf(out, "Inverse of the matrix:\n%s\n", inv)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(inverseCmd)
}
