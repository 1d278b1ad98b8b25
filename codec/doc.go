// SPDX-License-Identifier: MIT

// Package codec reads hypergraph descriptions from YAML, HCL and CSV into a
// Document (a convert.Input plus attribute records) and writes a Hypergraph
// back out as YAML.
//
//	doc, err := codec.Decode(f, codec.FormatAuto, "teams.yaml")
//	if err != nil { ... }
//	h, err := doc.Convert()
//	if err != nil { ... }
//	err = codec.EncodeYAML(os.Stdout, h)
//
// EncodeYAML output decodes back to an equal hypergraph, attributes
// included. Decoders wrap ErrDecode for syntax and schema problems and
// convert.ErrUnsupportedInput for shapes no builder accepts.
package codec
