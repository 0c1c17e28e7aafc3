// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/densemat/matrix"
)

var rrefCmd = &cobra.Command{
	Use:   "rref <rows> <cols> <values...>",
	Short: "Row-reduce a matrix to reduced row echelon form",
	Long: `Construct a matrix from row-major values (or --file) and reduce it
in place to reduced row echelon form, printing the matrix before and after.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := inputMatrix(args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Input matrix:\n%s\n", m)

		if err = matrix.RREF(m, matrix.WithEpsilon(eps)); err != nil {
			return err
		}

		fmt.Fprintf(out, "RREF of the matrix:\n%s\n", m)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(rrefCmd)
}
