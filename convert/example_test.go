// SPDX-License-Identifier: MIT

package convert_test

import (
	"fmt"

	"github.com/katalvlaran/hyperlath/convert"
	"github.com/katalvlaran/hyperlath/hypergraph"
	"github.com/katalvlaran/hyperlath/table"
)

// ExampleConvert normalizes an edge dictionary and reads the dual index.
func ExampleConvert() {
	h, err := convert.Convert(convert.FromEdgeDict(map[string][]string{
		"lunch":  {"ann", "bob"},
		"dinner": {"bob", "cid"},
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, n := range hypergraph.SortedItems(hypergraph.NewSet(h.Nodes()...)) {
		edges, _ := h.Memberships(n)
		fmt.Println(n, hypergraph.SortedItems(edges))
	}
	// Output:
	// ann [lunch]
	// bob [dinner lunch]
	// cid [dinner]
}

// ExampleFromTable reads a two-column table by label.
func ExampleFromTable() {
	frame, err := table.NewFrame([]string{"person", "club"}, [][]any{
		{"ann", "chess"},
		{"bob", "chess"},
		{"bob", "go"},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	h, err := convert.Convert(convert.FromTable[string, string](frame, table.Label("person"), table.Label("club")))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	members, _ := h.Members("chess")
	fmt.Println(h.NumNodes(), h.NumEdges(), hypergraph.SortedItems(members))
	// Output:
	// 2 2 [ann bob]
}
