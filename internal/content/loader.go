package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDir scans root for pack files (.yaml, .yml, .json) and merges them into
// a single pack. Files load in name order for deterministic question IDs;
// unreadable or malformed files are skipped.
func LoadDir(root string) (*Pack, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("content: walking directory %s: %w", root, err)
	}

	sort.Strings(files)

	merged := &Pack{Name: filepath.Base(root)}
	for _, path := range files {
		pack, err := LoadFile(path)
		if err != nil {
			continue
		}
		merged.Questions = append(merged.Questions, pack.Questions...)
	}

	if merged.Len() == 0 {
		return nil, fmt.Errorf("content: no questions found under %s", root)
	}
	return merged, nil
}

// LoadFile loads a single pack file, choosing the parser by extension.
func LoadFile(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: reading file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".json":
		return ParseJSON(data)
	default:
		return nil, fmt.Errorf("content: unsupported pack format %s", path)
	}
}

// ParseYAML parses a YAML question pack.
func ParseYAML(data []byte) (*Pack, error) {
	var pack Pack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("content: yaml unmarshal: %w", err)
	}
	return &pack, nil
}

// ParseJSON parses a JSON question pack.
func ParseJSON(data []byte) (*Pack, error) {
	var pack Pack
	if err := json.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("content: json unmarshal: %w", err)
	}
	return &pack, nil
}

func isSupportedExtension(ext string) bool {
	switch ext {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}
