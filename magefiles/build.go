//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

const binary = "bin/flabird"

type Build mg.Namespace

// Terminal builds the terminal and SSH binary.
func (Build) Terminal() error {
	_, err := executeCmd("go", withArgs("build", "-o", binary, "./cmd/flabird"), withStream())
	return err
}

// Window builds the binary with the desktop window enabled.
func (Build) Window() error {
	_, err := executeCmd("go", withArgs("build", "-tags", "ebiten", "-o", binary, "./cmd/flabird"), withStream())
	return err
}

// Test runs the test suite with the race detector.
func Test() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./..."), withStream())
	return err
}

// Lint vets the code for both build variants.
func Lint() error {
	if _, err := executeCmd("go", withArgs("vet", "./..."), withStream()); err != nil {
		return err
	}
	_, err := executeCmd("go", withArgs("vet", "-tags", "ebiten", "./..."), withStream())
	return err
}

// Tidy runs go mod tidy.
func Tidy() error {
	_, err := executeCmd("go", withArgs("mod", "tidy"))
	return err
}
