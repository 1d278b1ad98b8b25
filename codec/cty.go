// SPDX-License-Identifier: MIT
// Package: hyperlath/codec
//
// cty.go — cty.Value → plain Go values for attribute records.

package codec

import (
	"fmt"
	"math/big"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/hyperlath/hypergraph"
)

// attrsFromCty converts an object or map value into Attrs. A null (absent)
// value yields nil.
func attrsFromCty(v cty.Value) (hypergraph.Attrs, error) {
	if v.IsNull() {
		return nil, nil
	}
	ty := v.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("want an object, got %s: %w", ty.FriendlyName(), ErrDecode)
	}
	native, err := ctyToNative(v)
	if err != nil {
		return nil, err
	}

	return hypergraph.Attrs(native.(map[string]any)), nil
}

// ctyToNative maps strings, bools, numbers (int when integral, else
// float64), lists, tuples, sets, maps and objects to their Go counterparts.
func ctyToNative(v cty.Value) (any, error) {
	if !v.IsKnown() {
		return nil, fmt.Errorf("unknown value: %w", ErrAttrValue)
	}
	if v.IsNull() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty == cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact {
				return int(i), nil
			}
		}
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("number: %w: %w", ErrAttrValue, err)
		}
		return f, nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		out := []any{}
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			nv, err := ctyToNative(ev)
			if err != nil {
				return nil, err
			}
			out = append(out, nv)
		}
		return out, nil

	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]any)
		for it := v.ElementIterator(); it.Next(); {
			k, ev := it.Element()
			nv, err := ctyToNative(ev)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k.AsString(), err)
			}
			out[k.AsString()] = nv
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%s: %w", ty.FriendlyName(), ErrAttrValue)
	}
}
