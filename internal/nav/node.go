package nav

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Node is one navigation item: a leaf (label -> target page) or a branch
// (label -> ordered children).
type Node struct {
	Label    string
	Target   string
	Children []Node
}

// Leaf creates a leaf node.
func Leaf(label, target string) Node {
	return Node{Label: label, Target: target}
}

// Branch creates a branch node; a branch never has nil children.
func Branch(label string, children ...Node) Node {
	if children == nil {
		children = []Node{}
	}
	return Node{Label: label, Children: children}
}

// IsLeaf reports whether n points at a page.
func (n Node) IsLeaf() bool {
	return n.Children == nil
}

// Find returns the direct child with the given label.
func (n Node) Find(label string) (Node, bool) {
	for _, c := range n.Children {
		if c.Label == label {
			return c, true
		}
	}
	return Node{}, false
}

// MarshalJSON encodes the node as a single-key object.
func (n Node) MarshalJSON() ([]byte, error) {
	if n.IsLeaf() {
		return json.Marshal(map[string]string{n.Label: n.Target})
	}
	return json.Marshal(map[string][]Node{n.Label: n.Children})
}

// MarshalYAML encodes the node as a single-key mapping, keeping child order.
func (n Node) MarshalYAML() (any, error) {
	return n.yamlNode(), nil
}

func (n Node) yamlNode() *yaml.Node {
	value := scalar(n.Target)
	if !n.IsLeaf() {
		value = sequence(n.Children)
	}
	return &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: []*yaml.Node{scalar(n.Label), value},
	}
}

func sequence(nodes []Node) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, n := range nodes {
		seq.Content = append(seq.Content, n.yamlNode())
	}
	return seq
}

// scalar quotes purely numeric labels so years stay strings.
func scalar(v string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
	if isDigits(v) {
		node.Style = yaml.SingleQuotedStyle
	}
	return node
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
