//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// Screen runs the full evaluation pipeline on the content passed via
// CONTENT. Builds the binary first.
func Screen() error {
	mg.Deps(Build)
	content := os.Getenv("CONTENT")
	if content == "" {
		return fmt.Errorf("set CONTENT to the text to screen")
	}
	return runCLI("full-pipeline", content)
}

// Score runs one weight-adjustment cycle over the latest batch scores.
// Builds the binary first.
func Score() error {
	mg.Deps(Build)
	return runCLI("weights", "run")
}

func runCLI(args ...string) error {
	cmd := exec.Command(filepath.Join(binDir, binName), args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
