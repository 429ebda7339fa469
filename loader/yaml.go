package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// loadYAML reads a mapping of coordinate keys to blocks:
//
//	"3,3": Grass
//	"(4, 4)": Object('y')
//	"5,5": {Sign: "Keep out"}
func loadYAML(path string) ([]rawCell, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading map %s: %w", path, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("no cells defined in %s", path)
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: top level must be a mapping of \"x,y\" to blocks", filepath.Base(path))
	}

	file := filepath.Base(path)
	cells := make([]rawCell, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]
		src := fmt.Sprintf("%s:%d", file, keyNode.Line)

		x, y, err := parseCoordKey(keyNode.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src, err)
		}
		cell, err := blockFromNode(valNode)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src, err)
		}
		cell.x, cell.y, cell.src = x, y, src
		cells = append(cells, cell)
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("no cells defined in %s", path)
	}
	return cells, nil
}

// parseCoordKey accepts "x,y" with optional parentheses and spaces.
func parseCoordKey(s string) (x, y int, err error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("coordinate %q: want \"x,y\"", s)
	}
	if x, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return 0, 0, fmt.Errorf("coordinate %q: bad x: %w", s, err)
	}
	if y, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return 0, 0, fmt.Errorf("coordinate %q: bad y: %w", s, err)
	}
	return x, y, nil
}

// blockFromNode accepts a scalar literal or a single-key mapping {Tag: payload}.
func blockFromNode(n *yaml.Node) (rawCell, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		tag, payload, hasPayload := parseBlockLiteral(n.Value)
		return rawCell{tag: tag, payload: payload, hasPayload: hasPayload}, nil
	case yaml.MappingNode:
		if len(n.Content) != 2 || n.Content[1].Kind != yaml.ScalarNode {
			return rawCell{}, fmt.Errorf("block mapping must be a single {Tag: value} pair")
		}
		return rawCell{tag: n.Content[0].Value, payload: n.Content[1].Value, hasPayload: true}, nil
	}
	return rawCell{}, fmt.Errorf("unsupported block value")
}
