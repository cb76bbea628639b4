package propdoc

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// manifestFile marks the project root during the upward directory search.
const manifestFile = "go.mod"

// ErrRootNotFound is returned when no manifest is found in any parent
// directory of the search start.
var ErrRootNotFound = errors.New("project root not found (no go.mod in any parent directory)")

// Harvest is the main entry point: it locates the project root, reads both
// documentation corpora, runs the three extraction passes and patches the
// target data file in a single whole-file write. Setup and missing-input
// failures abort before anything is written; unmatched property names are
// collected as warnings on the result.
func Harvest(config Config) (*Result, error) {
	start := config.Root
	if start == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("working directory: %w", err)
		}
		start = cwd
	}

	root, err := FindProjectRoot(start)
	if err != nil {
		return nil, err
	}

	unityPath, err := resolveDoc(root, config.UnityDoc)
	if err != nil {
		return nil, fmt.Errorf("unity documentation: %w", err)
	}
	mozillaPath, err := resolveDoc(root, config.MozillaDoc)
	if err != nil {
		return nil, fmt.Errorf("mozilla documentation: %w", err)
	}
	targetPath := filepath.Join(root, config.TargetFile)

	// All inputs are read fully up front; a failure here leaves the target
	// file untouched.
	unityDoc, err := os.ReadFile(unityPath)
	if err != nil {
		return nil, fmt.Errorf("read unity documentation: %w", err)
	}
	mozillaDoc, err := os.ReadFile(mozillaPath)
	if err != nil {
		return nil, fmt.Errorf("read mozilla documentation: %w", err)
	}
	target, err := os.ReadFile(targetPath)
	if err != nil {
		return nil, fmt.Errorf("read target file: %w", err)
	}

	formats := ExtractFormats(string(unityDoc))
	unity := ExtractUnityExamples(string(unityDoc))
	mozilla := ExtractMozillaExamples(string(mozillaDoc))

	if config.Verbose {
		fmt.Printf("Found %d property formats in %s\n", len(formats), unityPath)
		fmt.Printf("Found %d property examples in %s\n", len(unity), unityPath)
		fmt.Printf("Found %d property examples in %s\n", len(mozilla), mozillaPath)
	}

	patched, stats, err := MergeRecords(target, formats, unity, mozilla)
	if err != nil {
		return nil, fmt.Errorf("merge failed: %w", err)
	}

	result := &Result{
		Root:            root,
		UnityDocPath:    unityPath,
		MozillaDocPath:  mozillaPath,
		TargetPath:      targetPath,
		FormatsFound:    len(formats),
		UnityExamples:   len(unity),
		MozillaExamples: len(mozilla),
		RecordsUpdated:  stats.RecordsUpdated,
		FieldsInserted:  stats.FieldsInserted,
		Warnings:        stats.Warnings,
		DryRun:          config.DryRun,
	}

	if config.DryRun {
		return result, nil
	}

	if !bytes.Equal(patched, target) {
		if err := os.WriteFile(targetPath, patched, 0o644); err != nil {
			return nil, fmt.Errorf("write target file: %w", err)
		}
	}

	return result, nil
}

// FindProjectRoot walks upward from start until a directory containing the
// manifest file is found.
func FindProjectRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}

	for {
		if info, err := os.Stat(filepath.Join(dir, manifestFile)); err == nil && !info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrRootNotFound
		}
		dir = parent
	}
}

// resolveDoc expands a documentation glob relative to root and picks the
// lexically last candidate, so versioned dumps resolve to the newest one.
// Gitignored candidates (scratch copies of docs) are skipped.
func resolveDoc(root, pattern string) (string, error) {
	matches, err := doublestar.FilepathGlob(filepath.Join(root, pattern))
	if err != nil {
		return "", fmt.Errorf("glob pattern %q: %w", pattern, err)
	}

	gi := loadGitIgnore(root)

	var candidates []string
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}
		if gi != nil {
			if rel, err := filepath.Rel(root, match); err == nil && gi.MatchesPath(rel) {
				continue
			}
		}
		candidates = append(candidates, match)
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("no document matches %q under %s", pattern, root)
	}

	sort.Strings(candidates)
	return candidates[len(candidates)-1], nil
}

// loadGitIgnore loads the project's .gitignore if present.
// Gracefully degrades if it doesn't exist.
func loadGitIgnore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}
