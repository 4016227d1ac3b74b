// Package store persists generated apps under the output directory.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"huggable/internal/types"
)

// EntryFile is the fixed name of every generated app's entry point.
const EntryFile = "index.html"

// Slug converts a human app name into its directory name: spaces become
// underscores, then the whole name is lowercased.
func Slug(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}

// AppDir resolves the directory an app named name lives in, rejecting names
// whose slug would escape outputDir.
func AppDir(outputDir, name string) (string, error) {
	slug := Slug(name)
	if err := validateSlug(slug); err != nil {
		return "", err
	}
	return filepath.Join(outputDir, slug), nil
}

// Save writes the sanitized document to outputDir/<slug>/index.html, creating
// the directory if needed. Re-running with the same name overwrites the
// previous artifact. The returned Project carries the absolute entry path.
func Save(outputDir, name, html string) (types.Project, error) {
	dir, err := AppDir(outputDir, name)
	if err != nil {
		return types.Project{}, err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return types.Project{}, fmt.Errorf("failed to create app directory: %w", err)
	}

	path := filepath.Join(dir, EntryFile)
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return types.Project{}, fmt.Errorf("failed to write %s: %w", EntryFile, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return types.Project{}, fmt.Errorf("failed to resolve app path: %w", err)
	}

	return types.Project{
		Name:      name,
		Dir:       filepath.Dir(abs),
		EntryFile: abs,
	}, nil
}

// validateSlug rejects slugs that would resolve outside the output directory.
// App names are user input, but the directory they map to must stay put.
func validateSlug(slug string) error {
	if slug == "" {
		return errors.New("app name produces an empty directory name")
	}
	if strings.ContainsAny(slug, `/\`) || strings.Contains(slug, "..") {
		return fmt.Errorf("app name %q is not a safe directory name", slug)
	}
	return nil
}
