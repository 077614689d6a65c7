package fakefs

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

var defaultTree = mustParse(defaultYAML)

var (
	ErrEmpty  = errors.New("filesystem document is empty")
	ErrNoRoot = errors.New("filesystem document has no \"/\" key")
)

// Default returns the tree shipped with the binary.
func Default() *Node {
	return defaultTree
}

// LoadFile reads a tree from a YAML file.
func LoadFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read filesystem file: %w", err)
	}
	return Parse(data)
}

// Parse builds a tree from YAML. The document is a mapping with a "/" key;
// mappings become directories and empty values become leaves. Key order in
// the document is kept.
func Parse(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse filesystem: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmpty
	}
	top := doc.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("filesystem document must be a mapping, got line %d", top.Line)
	}
	for i := 0; i+1 < len(top.Content); i += 2 {
		if top.Content[i].Value == RootName {
			root, err := build(RootName, top.Content[i+1])
			if err != nil {
				return nil, err
			}
			if !root.dir {
				return nil, fmt.Errorf("filesystem root must be a mapping")
			}
			return root, nil
		}
	}
	return nil, ErrNoRoot
}

func build(name string, value *yaml.Node) (*Node, error) {
	switch value.Kind {
	case yaml.MappingNode:
		dir := Dir(name)
		for i := 0; i+1 < len(value.Content); i += 2 {
			key := value.Content[i].Value
			if _, exists := dir.Child(key); exists {
				return nil, fmt.Errorf("duplicate entry %q in %q (line %d)", key, name, value.Content[i].Line)
			}
			child, err := build(key, value.Content[i+1])
			if err != nil {
				return nil, err
			}
			dir.Children = append(dir.Children, child)
		}
		return dir, nil
	case yaml.ScalarNode:
		return File(name), nil
	case yaml.AliasNode:
		return build(name, value.Alias)
	default:
		return nil, fmt.Errorf("unsupported value for %q at line %d", name, value.Line)
	}
}

func mustParse(data []byte) *Node {
	root, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("fakefs: invalid embedded tree: %v", err))
	}
	return root
}
