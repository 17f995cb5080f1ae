//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Play builds the binary and starts a terminal game.
func (Run) Play() error {
	mg.Deps(Build{}.Terminal)
	fmt.Println("Run flabird...")
	_, err := executeCmd(binary, withArgs("play"), withStream())
	return err
}

// Serve builds the binary and starts the SSH server on :23234.
func (Run) Serve() error {
	mg.Deps(Build{}.Terminal)
	_, err := executeCmd(binary, withArgs("serve", "--log-level", "debug"), withStream())
	return err
}

// Simulate runs a short deterministic autopilot simulation.
func (Run) Simulate() error {
	_, err := executeCmd("go",
		withArgs("run", "./cmd/flabird", "simulate", "--autopilot", "--restart", "--seed", "1"),
		withEnv("CGO_ENABLED=0"),
		withStream(),
	)
	return err
}
