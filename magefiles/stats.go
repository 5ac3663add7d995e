package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Stats prints lines of Go per package plus documentation word counts as one
// JSON record.
func Stats() error {
	prod := map[string]int{}
	tests := map[string]int{}

	err := filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			switch path {
			case "vendor", ".git", binaryDir, "_examples", "magefiles":
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}
		count, countErr := countLines(path)
		if countErr != nil {
			return nil
		}
		pkg := filepath.Dir(path)
		if strings.HasSuffix(path, "_test.go") {
			tests[pkg] += count
		} else {
			prod[pkg] += count
		}
		return nil
	})
	if err != nil {
		return err
	}

	docWords := 0
	for _, doc := range []string{"README.md", "DESIGN.md", "SPEC_FULL.md"} {
		if n, err := countWordsInFile(doc); err == nil {
			docWords += n
		}
	}

	record := struct {
		Prod     map[string]int `json:"go_loc_prod"`
		Test     map[string]int `json:"go_loc_test"`
		Total    int            `json:"go_loc"`
		DocWords int            `json:"doc_wc"`
	}{Prod: prod, Test: tests, DocWords: docWords}
	for _, n := range prod {
		record.Total += n
	}
	for _, n := range tests {
		record.Total += n
	}

	line, err := json.Marshal(record)
	if err != nil {
		return err
	}
	fmt.Println(string(line))
	return nil
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		count++
	}
	return count, scanner.Err()
}

func countWordsInFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	count := 0
	inWord := false
	for _, r := range string(data) {
		if unicode.IsSpace(r) {
			inWord = false
		} else if !inWord {
			inWord = true
			count++
		}
	}
	return count, nil
}
