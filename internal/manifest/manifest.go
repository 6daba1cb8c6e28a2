// Package manifest loads lists of directory paths from a file given with
// --from-file.
//
// Two encodings are accepted, chosen by file extension:
//
//   - .yaml / .yml: parsed with gopkg.in/yaml.v3
//   - anything else: JSONC, with comments and trailing commas stripped by
//     github.com/tidwall/jsonc before encoding/json parses it
//
// The top level is either a plain list or an object with a "directories"
// list, which is the shape mkd writes with --output json/yaml. Each entry is
// a path string or an object with a "path" field, so a previous report can
// be fed straight back in. An "outcome" field on such an object must name a
// known outcome kind; it is checked and otherwise ignored.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/mkd/internal/model"
)

// entry is one directory in a manifest. It unmarshals from either a bare
// string or an object carrying a "path" field.
type entry struct {
	Path    string
	Outcome string
}

func (e *entry) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		e.Path = s
		return nil
	}
	var obj struct {
		Path    string `json:"path"`
		Outcome string `json:"outcome"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("entry must be a string or an object with \"path\": %w", err)
	}
	e.Path, e.Outcome = obj.Path, obj.Outcome
	return nil
}

func (e *entry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&e.Path)
	case yaml.MappingNode:
		var obj struct {
			Path    string `yaml:"path"`
			Outcome string `yaml:"outcome"`
		}
		if err := node.Decode(&obj); err != nil {
			return err
		}
		e.Path, e.Outcome = obj.Path, obj.Outcome
		return nil
	default:
		return fmt.Errorf("line %d: entry must be a string or a mapping with \"path\"", node.Line)
	}
}

// document is the object form of a manifest.
type document struct {
	Directories []entry `json:"directories" yaml:"directories"`
}

// Load reads the manifest at path and returns its directory paths in file
// order. Every failure is fatal for the run and comes back as a CLIError
// with ExitManifestError.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitManifestError, fmt.Sprintf("failed to read manifest %s", path), err)
	}

	var entries []entry
	if IsYAML(path) {
		entries, err = parseYAML(data)
	} else {
		entries, err = parseJSONC(data)
	}
	if err != nil {
		return nil, model.WrapCLIError(model.ExitManifestError, fmt.Sprintf("failed to parse manifest %s", path), err)
	}

	paths := make([]string, 0, len(entries))
	for i, e := range entries {
		if e.Path == "" {
			return nil, model.NewCLIError(model.ExitManifestError,
				fmt.Sprintf("manifest %s: entry %d has an empty path", path, i+1))
		}
		if e.Outcome != "" {
			if _, err := model.ParseOutcomeKind(e.Outcome); err != nil {
				return nil, model.WrapCLIError(model.ExitManifestError,
					fmt.Sprintf("manifest %s: entry %d", path, i+1), err)
			}
		}
		paths = append(paths, e.Path)
	}
	return paths, nil
}

// IsYAML reports whether path is treated as a YAML manifest.
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func parseJSONC(data []byte) ([]entry, error) {
	clean := bytes.TrimSpace(jsonc.ToJSON(data))
	if len(clean) == 0 {
		return nil, nil
	}

	if clean[0] == '{' {
		var doc document
		if err := json.Unmarshal(clean, &doc); err != nil {
			return nil, err
		}
		return doc.Directories, nil
	}

	var list []entry
	if err := json.Unmarshal(clean, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func parseYAML(data []byte) ([]entry, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	// An empty file decodes to a zero node.
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, nil
	}

	top := root.Content[0]
	switch top.Kind {
	case yaml.SequenceNode:
		var list []entry
		if err := top.Decode(&list); err != nil {
			return nil, err
		}
		return list, nil
	case yaml.MappingNode:
		var doc document
		if err := top.Decode(&doc); err != nil {
			return nil, err
		}
		return doc.Directories, nil
	default:
		return nil, fmt.Errorf("line %d: manifest must be a list or a mapping with \"directories\"", top.Line)
	}
}
