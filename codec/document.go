// SPDX-License-Identifier: MIT
// Package: hyperlath/codec
//
// document.go — the decoded form shared by every reader.

package codec

import (
	"github.com/katalvlaran/hyperlath/convert"
	"github.com/katalvlaran/hyperlath/hypergraph"
)

// Document is a decoded hypergraph description: an Input for convert plus
// the attributes the source carried alongside it.
type Document struct {
	// Input is the incidence payload, ready for convert.Convert.
	Input convert.Input[string, string]
	// Attrs are graph-level attributes; nil when the source had none.
	Attrs hypergraph.Attrs
	// NodeAttrs and EdgeAttrs are per-id attribute records.
	NodeAttrs map[string]hypergraph.Attrs
	EdgeAttrs map[string]hypergraph.Attrs
}

// Convert runs convert.Convert on d.Input and then applies d's attributes.
// Graph attributes set through convert.WithAttrs win over d.Attrs. Entries
// in NodeAttrs or EdgeAttrs naming ids absent from the result are ignored;
// the decoders never produce such entries.
func (d *Document) Convert(opts ...convert.Option[string, string]) (*hypergraph.Hypergraph[string, string], error) {
	h, err := convert.Convert(d.Input, opts...)
	if err != nil {
		return nil, err
	}

	set := h.Attrs()
	for k, v := range d.Attrs {
		if _, ok := set[k]; !ok {
			h.SetAttr(k, v)
		}
	}
	for n, attrs := range d.NodeAttrs {
		for k, v := range attrs {
			h.SetNodeAttr(n, k, v)
		}
	}
	for e, attrs := range d.EdgeAttrs {
		for k, v := range attrs {
			h.SetEdgeAttr(e, k, v)
		}
	}

	return h, nil
}
