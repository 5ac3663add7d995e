// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const coverProfile = "coverage.out"

// Test groups test targets.
type Test mg.Namespace

// All runs every test with the race detector.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Cover runs every test and prints per-function coverage.
func (Test) Cover() error {
	if err := sh.RunV(binGo, "test", "-coverprofile="+coverProfile, "./..."); err != nil {
		return err
	}
	return sh.RunV(binGo, "tool", "cover", "-func="+coverProfile)
}

// Redis runs the store tests against a live Redis at $READYKIT_TEST_REDIS_ADDR.
func (Test) Redis() error {
	if os.Getenv("READYKIT_TEST_REDIS_ADDR") == "" {
		return fmt.Errorf("READYKIT_TEST_REDIS_ADDR is not set")
	}
	return sh.RunV(binGo, "test", "-v", "-run", "Store", "./internal/store/...")
}

// Smoke builds the binary and drives it through init, a checklist change,
// an export and an import in throwaway directories.
func (Test) Smoke() error {
	mg.Deps(Build)

	tmp, err := os.MkdirTemp("", "readykit-smoke-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmp)

	bin, err := filepath.Abs(binaryPath())
	if err != nil {
		return err
	}
	env := map[string]string{
		"READYKIT_CONFIG_DIR": filepath.Join(tmp, "config"),
		"READYKIT_DATA_DIR":   filepath.Join(tmp, "data"),
	}
	run := func(args ...string) (string, error) {
		return sh.OutputWith(env, bin, args...)
	}

	steps := [][]string{
		{"init"},
		{"checklist", "check", "1", "water-1"},
		{"pantry", "add", "--name", "Smoke test beans", "--expiry", "2030-01-01"},
		{"export", "--format", "json", "--out", tmp},
		{"checklist", "reset"},
	}
	for _, args := range steps {
		if _, err := run(args...); err != nil {
			return fmt.Errorf("readykit %s: %w", strings.Join(args, " "), err)
		}
	}

	backups, err := filepath.Glob(filepath.Join(tmp, "emergency-prep-backup-*.json"))
	if err != nil || len(backups) != 1 {
		return fmt.Errorf("expected one backup in %s, found %d", tmp, len(backups))
	}
	if _, err := run("import", backups[0]); err != nil {
		return fmt.Errorf("readykit import: %w", err)
	}

	out, err := run("--json", "checklist", "progress")
	if err != nil {
		return fmt.Errorf("readykit checklist progress: %w", err)
	}
	var progress struct {
		Overall struct {
			Completed int `json:"completed"`
		} `json:"overall"`
	}
	if err := json.Unmarshal([]byte(out), &progress); err != nil {
		return fmt.Errorf("parse progress: %w", err)
	}
	if progress.Overall.Completed != 1 {
		return fmt.Errorf("after import: %d items completed, want 1", progress.Overall.Completed)
	}
	fmt.Println("smoke test passed")
	return nil
}
