// SPDX-License-Identifier: MIT
// Package: hyperlath/codec
//
// hcl.go — HCL reader.
//
//	name  = "lunch club"          # optional, becomes attrs["name"]
//	attrs = { season = "spring" } # optional graph attributes
//
//	edge "monday" {
//	  nodes = ["ann", "bob"]
//	  attrs = { room = 4 }        # optional edge attributes
//	}
//
// Block labels are edge ids; a repeated label is hypergraph.ErrDuplicateEdge.

package codec

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/hyperlath/convert"
	"github.com/katalvlaran/hyperlath/hypergraph"
)

// hclFile is the top-level schema of an HCL hypergraph file.
type hclFile struct {
	Name  string     `hcl:"name,optional"`
	Attrs cty.Value  `hcl:"attrs,optional"`
	Edges []*hclEdge `hcl:"edge,block"`
}

type hclEdge struct {
	ID    string    `hcl:"id,label"`
	Nodes []string  `hcl:"nodes"`
	Attrs cty.Value `hcl:"attrs,optional"`
}

// DecodeHCL parses src (filename is used in diagnostics only).
func DecodeHCL(src []byte, filename string) (*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("DecodeHCL(%s): %w: %w", filename, ErrDecode, diags)
	}

	var parsed hclFile
	if diags = gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("DecodeHCL(%s): %w: %w", filename, ErrDecode, diags)
	}

	doc := &Document{}
	attrs, err := attrsFromCty(parsed.Attrs)
	if err != nil {
		return nil, fmt.Errorf("DecodeHCL(%s): attrs: %w", filename, err)
	}
	if parsed.Name != "" {
		if attrs == nil {
			attrs = hypergraph.Attrs{}
		}
		attrs["name"] = parsed.Name
	}
	doc.Attrs = attrs

	dict := make(map[string][]string, len(parsed.Edges))
	for _, e := range parsed.Edges {
		if _, dup := dict[e.ID]; dup {
			return nil, fmt.Errorf("DecodeHCL(%s): edge %q: %w", filename, e.ID, hypergraph.ErrDuplicateEdge)
		}
		dict[e.ID] = e.Nodes

		ea, err := attrsFromCty(e.Attrs)
		if err != nil {
			return nil, fmt.Errorf("DecodeHCL(%s): edge %q attrs: %w", filename, e.ID, err)
		}
		if ea != nil {
			if doc.EdgeAttrs == nil {
				doc.EdgeAttrs = make(map[string]hypergraph.Attrs)
			}
			doc.EdgeAttrs[e.ID] = ea
		}
	}
	doc.Input = convert.FromEdgeDict(dict)

	return doc, nil
}
