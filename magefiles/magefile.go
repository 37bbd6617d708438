// Package main provides build targets for parceltracker using Mage.
//
// Usage:
//
//	mage build      Compile the parceltracker binary to bin/
//	mage test       Run all tests, including the container-backed suites
//	mage testShort  Run tests with -short, skipping testcontainers
//	mage lint       Run golangci-lint
//	mage tidy       Tidy go.mod and go.sum
//	mage clean      Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "parceltracker"
	binaryDir  = "bin"
	cmdDir     = "./cmd/app"
)

// Build compiles the parceltracker binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs every test. Docker must be available for the postgres suites.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

func TestShort() error {
	return sh.RunV("go", "test", "-short", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	mg.Deps(Tidy)
	return sh.RunV("golangci-lint", "run", "./...")
}

func Tidy() error {
	return sh.RunV("go", "mod", "tidy")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}
