package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// gitignoreFileName is created next to a project's config.yaml.
const gitignoreFileName = ".gitignore"

// gitignorePatterns keep per-user files in .gridpage/ out of version control
// while config.yaml stays tracked.
//
//nolint:gochecknoglobals // Read-only pattern list.
var gitignorePatterns = []string{
	"*.log",
	"logs/",
	// Editor swap and backup files left behind by hand edits of config.yaml.
	"*.swp",
	"*~",
}

// GitignoreContent returns the .gitignore written by EnsureGitignore.
func GitignoreContent() string {
	var b strings.Builder
	b.WriteString("# gridpage project files (generated by 'gridpage config init')\n")
	b.WriteString("# config.yaml is meant to be committed.\n")
	for _, p := range gitignorePatterns {
		b.WriteString(p)
		b.WriteByte('\n')
	}
	return b.String()
}

// EnsureGitignore writes GitignoreContent to dir/.gitignore unless the file
// already exists, and reports whether it was created. An existing file is
// never modified.
func EnsureGitignore(dir string) (bool, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, gitignoreFileName)
	//nolint:gosec // A .gitignore is meant to be world-readable.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("creating %s: %w", path, err)
	}

	if _, err = f.WriteString(GitignoreContent()); err != nil {
		_ = f.Close()
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return false, fmt.Errorf("closing %s: %w", path, err)
	}
	return true, nil
}
