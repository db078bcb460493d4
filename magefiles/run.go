//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the pipeline with the default configuration file.
func (Run) Pipeline() error {
	fmt.Println("Run pipeline...")
	if _, err := executeCmd("go", withArgs("run", "main.go", "-config", "pigment.toml"), withStream()); err != nil {
		return err
	}
	return nil
}
