// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/densemat/matrix"
)

// matrixDoc is the YAML document shape accepted by --file. Either the
// flat form (rows, cols, data) or the nested form (values) must be set.
type matrixDoc struct {
	Rows   int         `yaml:"rows"`
	Cols   int         `yaml:"cols"`
	Data   []float64   `yaml:"data"`
	Values [][]float64 `yaml:"values"`
}

// loadYAMLMatrix reads a matrixDoc from path and constructs a Dense from
// whichever form the document carries. Constructor sentinels (shape,
// rectangularity) propagate unchanged.
func loadYAMLMatrix(path string) (*matrix.Dense, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var doc matrixDoc
	if err = yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if len(doc.Values) > 0 {
		return matrix.NewDenseFromRows(doc.Values)
	}

	return matrix.NewDenseFromFlat(doc.Rows, doc.Cols, doc.Data)
}

// parseArgsMatrix builds a Dense from positional arguments:
// <rows> <cols> followed by exactly rows*cols row-major values.
func parseArgsMatrix(args []string) (*matrix.Dense, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("expected <rows> <cols> <values...>")
	}
	rows, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("invalid row count %q: %w", args[0], err)
	}
	cols, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, fmt.Errorf("invalid column count %q: %w", args[1], err)
	}
	if rows < 1 || cols < 1 {
		return nil, matrix.ErrInvalidDimensions
	}

	vals := args[2:]
	want := rows * cols
	if len(vals) != want {
		return nil, fmt.Errorf("expected %d values for a %dx%d matrix, but got %d",
			want, rows, cols, len(vals))
	}

	flat := make([]float64, want)
	for i, s := range vals {
		flat[i], err = strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q at position %d: %w", s, i+1, err)
		}
	}

	return matrix.NewDenseFromFlat(rows, cols, flat)
}

// inputMatrix resolves the matrix from --file when set, otherwise from
// the positional arguments.
func inputMatrix(args []string) (*matrix.Dense, error) {
	if filePath != "" {
		return loadYAMLMatrix(filePath)
	}

	return parseArgsMatrix(args)
}
