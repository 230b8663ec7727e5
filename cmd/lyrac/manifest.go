package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

const noLyraTomlMessage = "no lyra.toml found\nplease pass source files explicitly, e.g.:\n  lyrac units path/to/file.lyra"

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Package packageConfig `toml:"package"`
	Build   buildConfig   `toml:"build"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type buildConfig struct {
	SourceDir string `toml:"source_dir"`
}

func findLyraToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "lyra.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findLyraToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg projectConfig
	if _, err := toml.DecodeFile(manifestPath, &cfg); err != nil {
		return nil, true, fmt.Errorf("failed to parse %q: %w", manifestPath, err)
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

// sourceDir resolves the configured source directory, defaulting to the
// manifest root.
func (m *projectManifest) sourceDir() string {
	if m.Config.Build.SourceDir == "" {
		return m.Root
	}
	return filepath.Join(m.Root, m.Config.Build.SourceDir)
}

// collectSourceFiles returns the sorted list of .lyra and .java files under
// dir. Sorted for deterministic unit registration order.
func collectSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".lyra") || strings.HasSuffix(path, ".java") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// resolveInputs turns command arguments into the list of files to load:
// explicit paths win, otherwise the project manifest's source dir is walked.
func resolveInputs(args []string) ([]string, error) {
	if len(args) > 0 {
		out := make([]string, 0, len(args))
		for _, arg := range args {
			info, err := os.Stat(arg)
			if err != nil {
				return nil, err
			}
			if info.IsDir() {
				files, err := collectSourceFiles(arg)
				if err != nil {
					return nil, err
				}
				out = append(out, files...)
				continue
			}
			out = append(out, arg)
		}
		return out, nil
	}

	manifest, ok, err := loadProjectManifest(".")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New(noLyraTomlMessage)
	}
	return collectSourceFiles(manifest.sourceDir())
}
