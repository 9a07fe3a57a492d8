// Package metadata extracts and parses the delimited key-value block that
// precedes a document's prose body.
package metadata

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Delimiter marks the opening and closing of a metadata block.
const Delimiter = "---"

// Block is the parsed key-value mapping from a document's leading metadata
// block. Keys are unique; insertion order is irrelevant for validation.
type Block map[string]any

// GetString returns the value for key as a string, or "" when absent or not a
// scalar string.
func (b Block) GetString(key string) string {
	v, ok := b[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// Has reports whether key is present in the block.
func (b Block) Has(key string) bool {
	_, ok := b[key]
	return ok
}

// Extract splits content into its leading metadata block and the remaining
// body. The block must start on the first non-blank line with a delimiter line
// and end with a matching delimiter line.
func Extract(content []byte) (Block, string, error) {
	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.TrimSpace(line) == Delimiter {
			start = i
		}
		break
	}
	if start == -1 {
		return nil, text, fmt.Errorf("no metadata block found")
	}

	end := -1
	for i := start + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == Delimiter {
			end = i
			break
		}
	}
	if end == -1 {
		return nil, text, fmt.Errorf("metadata block is not closed")
	}

	raw := strings.Join(lines[start+1:end], "\n")
	block, err := parseBlock(raw)
	if err != nil {
		return nil, strings.Join(lines[end+1:], "\n"), err
	}

	return block, strings.Join(lines[end+1:], "\n"), nil
}

// parseBlock decodes the raw block text into a key-value mapping.
func parseBlock(raw string) (Block, error) {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &node); err != nil {
		return nil, fmt.Errorf("malformed metadata block: %w", err)
	}

	root := &node
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, fmt.Errorf("metadata block is empty")
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("metadata block must be a key-value mapping")
	}

	// Duplicate keys are a parse failure: the block's keys must be unique.
	seen := make(map[string]bool, len(root.Content)/2)
	for i := 0; i < len(root.Content); i += 2 {
		key := root.Content[i].Value
		if seen[key] {
			return nil, fmt.Errorf("duplicate metadata key: %s", key)
		}
		seen[key] = true
	}

	block := make(Block)
	if err := node.Decode(&block); err != nil {
		return nil, fmt.Errorf("malformed metadata block: %w", err)
	}
	return block, nil
}
