// Package project locates the root of a breed guide site.
package project

import (
	"os"
	"path/filepath"
)

// Info describes a detected site root.
type Info struct {
	Root       string
	ConfigFile string // rc file found in the root, if any
	HasBreeds  bool   // <dataDir>/racas.json exists
}

// FindSiteRoot climbs from startPath looking for a directory that holds a
// racas rc file or <dataDir>/racas.json. It reports false when no ancestor
// qualifies.
func FindSiteRoot(startPath, dataDir string, configFiles []string) (*Info, bool, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return nil, false, err
	}

	currentDir := absPath
	for {
		if info := Detect(currentDir, dataDir, configFiles); info.ConfigFile != "" || info.HasBreeds {
			return info, true, nil
		}

		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			break
		}
		currentDir = parent
	}

	return nil, false, nil
}

// Detect inspects a single directory.
func Detect(rootPath, dataDir string, configFiles []string) *Info {
	info := &Info{Root: rootPath}

	for _, name := range configFiles {
		if fileExists(filepath.Join(rootPath, name)) {
			info.ConfigFile = name
			break
		}
	}

	// absolute data dirs say nothing about where the root is
	if !filepath.IsAbs(dataDir) {
		info.HasBreeds = fileExists(filepath.Join(rootPath, dataDir, "racas.json"))
	}

	return info
}

func fileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}
