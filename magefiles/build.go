//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Compiles the pigment binary.
func (Build) Binary() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/pigment", "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the full test suite.
func (Build) Test() error {
	if _, err := executeCmd("go", withArgs("test", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Tidies go.mod and regenerates generated code.
func (Build) Tidy() error {
	return goTidy()
}

// Runs go vet across the module.
func (Build) Lint() error {
	if _, err := executeCmd("go", withArgs("vet", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}
