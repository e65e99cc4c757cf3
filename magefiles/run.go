//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Loads a sample material through the CLI. Expects a materials/ directory
// next to the working directory with at least one AmbientCG pack in it.
func (Run) Example() error {
	fmt.Println("Run acgloader...")
	if _, err := executeCmd("go", withArgs("run", "./cmd/acgloader", "-name", "Bricks090", "-resolution", "2K", "-uv-scale", "8,8"), withStream()); err != nil {
		return err
	}
	return nil
}
