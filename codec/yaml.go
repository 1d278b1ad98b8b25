// SPDX-License-Identifier: MIT
// Package: hyperlath/codec
//
// yaml.go — YAML reader and writer.
//
// Accepted documents (root node kind decides):
//   • mapping with "kind: hypergraph"  → the layout EncodeYAML writes.
//   • any other mapping                → edge dict: id → member | [members] | null.
//   • sequence of sequences            → edge list, ids from WithEdgeIDs.
//   • empty document                   → empty hypergraph.
// Everything else is convert.ErrUnsupportedInput. Aliases (*name) resolve to
// their anchors. The stream must hold one document; a second non-empty
// document is ErrDecode.

package codec

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hyperlath/convert"
	"github.com/katalvlaran/hyperlath/hypergraph"
)

// documentKind marks a document written by EncodeYAML.
const documentKind = "hypergraph"

// yamlDocument is the EncodeYAML layout. Nodes and Counts are derived data:
// DecodeYAML checks Counts when present and ignores Nodes.
type yamlDocument struct {
	Kind      string                      `yaml:"kind"`
	Attrs     hypergraph.Attrs            `yaml:"attrs,omitempty"`
	Counts    *yamlCounts                 `yaml:"counts,omitempty"`
	Edges     map[string][]string         `yaml:"edges"`
	Nodes     map[string][]string         `yaml:"nodes,omitempty"`
	NodeAttrs map[string]hypergraph.Attrs `yaml:"node_attrs,omitempty"`
	EdgeAttrs map[string]hypergraph.Attrs `yaml:"edge_attrs,omitempty"`
}

type yamlCounts struct {
	Nodes int `yaml:"nodes"`
	Edges int `yaml:"edges"`
}

// DecodeYAML reads one YAML document from r.
func DecodeYAML(r io.Reader, opts ...Option) (*Document, error) {
	o := newOptions(opts...)

	dec := yaml.NewDecoder(r)
	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return &Document{Input: convert.None[string, string]()}, nil
		}
		return nil, fmt.Errorf("DecodeYAML: %w: %w", ErrDecode, err)
	}
	var extra yaml.Node
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
	case err != nil:
		return nil, fmt.Errorf("DecodeYAML: %w: %w", ErrDecode, err)
	case !isEmptyDocument(&extra):
		return nil, fmt.Errorf("DecodeYAML: line %d: second document in stream: %w", extra.Line, ErrDecode)
	}
	node := resolveAlias(documentBody(&root))

	switch node.Kind {
	case yaml.MappingNode:
		if isEncodedDocument(node) {
			return decodeYAMLDocument(node)
		}
		dict, err := yamlEdgeDict(node)
		if err != nil {
			return nil, fmt.Errorf("DecodeYAML: %w", err)
		}
		return &Document{Input: convert.FromEdgeDict(dict)}, nil
	case yaml.SequenceNode:
		list, err := yamlEdgeList(node)
		if err != nil {
			return nil, fmt.Errorf("DecodeYAML: %w", err)
		}
		return &Document{Input: convert.FromEdgeListIDs(list, o.edgeIDs)}, nil
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return &Document{Input: convert.None[string, string]()}, nil
		}
	}

	return nil, fmt.Errorf("DecodeYAML: line %d: root %s: %w", node.Line, kindName(node.Kind), convert.ErrUnsupportedInput)
}

// documentBody unwraps a DocumentNode to its root content.
func documentBody(n *yaml.Node) *yaml.Node {
	if n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		return n.Content[0]
	}

	return n
}

// isEmptyDocument reports whether n holds nothing but a null (for example a
// trailing "---").
func isEmptyDocument(n *yaml.Node) bool {
	body := documentBody(n)
	if body.Kind == yaml.DocumentNode {
		return true
	}

	return body.Kind == yaml.ScalarNode && body.ShortTag() == "!!null"
}

// resolveAlias follows *name references to the anchored node.
func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}

	return n
}

// isEncodedDocument reports whether a root mapping carries "kind: hypergraph".
func isEncodedDocument(m *yaml.Node) bool {
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], resolveAlias(m.Content[i+1])
		if k.Value == "kind" && v.Kind == yaml.ScalarNode && v.Value == documentKind {
			return true
		}
	}

	return false
}

func decodeYAMLDocument(node *yaml.Node) (*Document, error) {
	var doc yamlDocument
	if err := node.Decode(&doc); err != nil {
		return nil, fmt.Errorf("DecodeYAML: %w: %w", ErrDecode, err)
	}

	members := hypergraph.NewSet[string]()
	for _, ns := range doc.Edges {
		for _, n := range ns {
			members.Add(n)
		}
	}
	if doc.Counts != nil && (doc.Counts.Edges != len(doc.Edges) || doc.Counts.Nodes != members.Len()) {
		return nil, fmt.Errorf("DecodeYAML: counts %d/%d, edges describe %d/%d: %w",
			doc.Counts.Nodes, doc.Counts.Edges, members.Len(), len(doc.Edges), ErrDecode)
	}
	for n := range doc.NodeAttrs {
		if !members.Has(n) {
			return nil, fmt.Errorf("DecodeYAML: node_attrs names unknown node %q: %w", n, ErrDecode)
		}
	}
	for e := range doc.EdgeAttrs {
		if _, ok := doc.Edges[e]; !ok {
			return nil, fmt.Errorf("DecodeYAML: edge_attrs names unknown edge %q: %w", e, ErrDecode)
		}
	}

	return &Document{
		Input:     convert.FromEdgeDict(doc.Edges),
		Attrs:     doc.Attrs,
		NodeAttrs: doc.NodeAttrs,
		EdgeAttrs: doc.EdgeAttrs,
	}, nil
}

// yamlEdgeDict reads id → member | [members] | null.
func yamlEdgeDict(m *yaml.Node) (map[string][]string, error) {
	out := make(map[string][]string, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := resolveAlias(m.Content[i]), resolveAlias(m.Content[i+1])
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: edge id must be a scalar: %w", k.Line, ErrDecode)
		}
		if _, dup := out[k.Value]; dup {
			return nil, fmt.Errorf("line %d: edge %q: %w", k.Line, k.Value, hypergraph.ErrDuplicateEdge)
		}
		members, err := yamlMembers(v)
		if err != nil {
			return nil, fmt.Errorf("edge %q: %w", k.Value, err)
		}
		out[k.Value] = members
	}

	return out, nil
}

// yamlEdgeList reads a sequence whose entries are member sequences.
func yamlEdgeList(s *yaml.Node) ([][]string, error) {
	out := make([][]string, 0, len(s.Content))
	for i, item := range s.Content {
		item = resolveAlias(item)
		if item.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("line %d: entry %d is a %s: %w", item.Line, i, kindName(item.Kind), convert.ErrUnsupportedInput)
		}
		members, err := yamlMembers(item)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out = append(out, members)
	}

	return out, nil
}

func yamlMembers(v *yaml.Node) ([]string, error) {
	v = resolveAlias(v)
	switch v.Kind {
	case yaml.ScalarNode:
		if v.ShortTag() == "!!null" {
			return nil, nil
		}
		return []string{v.Value}, nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(v.Content))
		for _, n := range v.Content {
			n = resolveAlias(n)
			if n.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: member must be a scalar: %w", n.Line, ErrDecode)
			}
			out = append(out, n.Value)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("line %d: members must be a scalar or a sequence: %w", v.Line, ErrDecode)
	}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}

// EncodeYAML writes h in the layout DecodeYAML reads back: kind, attrs,
// counts, edges and nodes (members sorted), then non-empty attribute records.
func EncodeYAML(w io.Writer, h *hypergraph.Hypergraph[string, string]) error {
	if h == nil {
		return fmt.Errorf("EncodeYAML: nil hypergraph: %w", convert.ErrUnsupportedInput)
	}

	doc := yamlDocument{
		Kind:   documentKind,
		Attrs:  h.Attrs(),
		Counts: &yamlCounts{Nodes: h.NumNodes(), Edges: h.NumEdges()},
		Edges:  sortedMembership(h.EdgeMap()),
		Nodes:  sortedMembership(h.NodeMap()),
	}
	for _, n := range h.Nodes() {
		if a, _ := h.NodeAttrs(n); len(a) > 0 {
			if doc.NodeAttrs == nil {
				doc.NodeAttrs = make(map[string]hypergraph.Attrs)
			}
			doc.NodeAttrs[n] = a
		}
	}
	for _, e := range h.Edges() {
		if a, _ := h.EdgeAttrs(e); len(a) > 0 {
			if doc.EdgeAttrs == nil {
				doc.EdgeAttrs = make(map[string]hypergraph.Attrs)
			}
			doc.EdgeAttrs[e] = a
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("EncodeYAML: %w", err)
	}

	return enc.Close()
}

func sortedMembership(m map[string]hypergraph.Set[string]) map[string][]string {
	out := make(map[string][]string, len(m))
	for k, s := range m {
		out[k] = hypergraph.SortedItems(s)
	}

	return out
}
