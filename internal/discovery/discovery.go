package discovery

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/dotcommander/racas/internal/types"
)

// DataFileEntry maps a data file kind to the base name it is stored under.
// Each base name may carry a .json, .yaml or .yml extension.
type DataFileEntry struct {
	Kind     string
	BaseName string
	Required bool
}

// DefaultDataFiles is the registry of data files read by a build.
var DefaultDataFiles = []DataFileEntry{
	{Kind: types.KindRules, BaseName: "rules", Required: true},
	{Kind: types.KindBreeds, BaseName: "racas", Required: true},
	{Kind: types.KindSite, BaseName: "site", Required: false},
	{Kind: types.KindAliases, BaseName: "aliases_oficiais", Required: false},
}

// dataExtensions lists accepted extensions in lookup priority order.
var dataExtensions = []string{".json", ".yaml", ".yml"}

// DataFiles holds the resolved path of each data file kind. Optional files
// that were not found are absent from the map.
type DataFiles map[string]string

// Path returns the resolved path for kind, or "" when it was not found.
func (d DataFiles) Path(kind string) string {
	return d[kind]
}

// FileDiscovery manages file discovery operations
type FileDiscovery struct {
	rootPath string
}

// NewFileDiscovery creates a new FileDiscovery instance
func NewFileDiscovery(rootPath string) *FileDiscovery {
	return &FileDiscovery{rootPath: rootPath}
}

// DiscoverDataFiles resolves every registry entry inside dataDir (relative to
// the root). A missing required file is an error.
func (fd *FileDiscovery) DiscoverDataFiles(dataDir string) (DataFiles, error) {
	return fd.DiscoverDataFilesWithRegistry(dataDir, DefaultDataFiles)
}

// DiscoverDataFilesWithRegistry resolves files using a custom registry.
func (fd *FileDiscovery) DiscoverDataFilesWithRegistry(dataDir string, registry []DataFileEntry) (DataFiles, error) {
	dir := fd.resolve(dataDir)
	files := make(DataFiles)

	for _, entry := range registry {
		path, err := findDataFile(dir, entry.BaseName)
		if err != nil {
			return nil, fmt.Errorf("error discovering %s file: %w", entry.Kind, err)
		}
		if path == "" {
			if entry.Required {
				return nil, fmt.Errorf("%s file not found: %s/%s{%s}", entry.Kind, dir, entry.BaseName, strings.Join(dataExtensions, ","))
			}
			continue
		}
		files[entry.Kind] = path
	}

	return files, nil
}

// resolve joins dir to the root unless it is already absolute.
func (fd *FileDiscovery) resolve(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(fd.rootPath, dir)
}

// findDataFile returns the first existing base+extension in dir, honoring the
// extension priority order.
func findDataFile(dir, base string) (string, error) {
	for _, ext := range dataExtensions {
		path := filepath.Join(dir, base+ext)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
		if err != nil && !os.IsNotExist(err) {
			return "", fmt.Errorf("cannot access %s: %w", path, err)
		}
	}
	return "", nil
}

// DiscoverTemplates finds every HTML template under templatesDir and returns
// them keyed by path relative to that directory (forward slashes).
func (fd *FileDiscovery) DiscoverTemplates(templatesDir string) (map[string]string, error) {
	dir := fd.resolve(templatesDir)
	matches, err := doublestar.Glob(os.DirFS(dir), "**/*.html")
	if err != nil {
		return nil, fmt.Errorf("error evaluating template pattern in %s: %w", dir, err)
	}
	sort.Strings(matches)

	templates := make(map[string]string, len(matches))
	for _, match := range matches {
		full := filepath.Join(dir, filepath.FromSlash(match))
		info, err := os.Stat(full)
		if err != nil || info.IsDir() {
			continue
		}
		templates[match] = full
	}
	return templates, nil
}

// ReadDataFile reads a data file and returns its content as JSON. YAML input
// is decoded and re-encoded so that every downstream consumer (schema
// validation and decoding) sees a single format.
func ReadDataFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return data, nil
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		out, err := json.Marshal(stringKeys(doc))
		if err != nil {
			return nil, fmt.Errorf("failed to convert %s to JSON: %w", path, err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported data file extension: %s", path)
	}
}

// stringKeys converts YAML mappings with non-string keys (such as numeric FCI
// groups) into JSON-compatible string-keyed maps.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = stringKeys(val)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = stringKeys(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = stringKeys(val)
		}
		return t
	default:
		return v
	}
}
