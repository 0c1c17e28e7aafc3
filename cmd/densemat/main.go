// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/katalvlaran/densemat/cmd/densemat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
