// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Build targets for readykit.
//
//	mage build        Compile readykit to bin/
//	mage install      Install readykit to GOPATH/bin
//	mage clean        Remove build artifacts
//	mage lint         Run golangci-lint
//	mage test:all     Run every test
//	mage test:cover   Run tests with a coverage profile
//	mage test:smoke   Drive the built binary through a backup round trip
//	mage stats        Print lines of code per package
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "readykit"
	binaryDir  = "bin"
	cmdDir     = "./cmd/readykit"
	versionVar = "github.com/mesh-intelligence/readykit/internal/cli.buildCommit"
)

// Default target.
var Default = Build

// Build compiles the readykit binary to bin/, stamping the git commit.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	ldflags := ""
	if commit, err := sh.Output("git", "rev-parse", "--short", "HEAD"); err == nil && commit != "" {
		ldflags = fmt.Sprintf("-X %s=%s", versionVar, commit)
	}
	return sh.RunV(binGo, "build", "-ldflags", ldflags, "-o", binaryPath(), cmdDir)
}

func binaryPath() string {
	return filepath.Join(binaryDir, binaryName)
}

// Clean removes build artifacts.
func Clean() error {
	for _, p := range []string{binaryDir, coverProfile} {
		if err := os.RemoveAll(p); err != nil {
			return err
		}
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	dst := filepath.Join(gopath, "bin", binaryName)
	if err := sh.Copy(dst, binaryPath()); err != nil {
		return err
	}
	return os.Chmod(dst, 0o755)
}
