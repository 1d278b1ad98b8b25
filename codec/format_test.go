// SPDX-License-Identifier: MIT

package codec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperlath/codec"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]codec.Format{
		"auto": codec.FormatAuto,
		"YAML": codec.FormatYAML,
		"yml":  codec.FormatYAML,
		"hcl":  codec.FormatHCL,
		"csv":  codec.FormatCSV,
	} {
		got, err := codec.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := codec.ParseFormat("xml")
	require.ErrorIs(t, err, codec.ErrUnknownFormat)
}

func TestDecode_Auto(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{"g.yaml", "x: [a, b]\n"},
		{"g.YML", "x: [a, b]\n"},
		{"g.hcl", "edge \"x\" { nodes = [\"a\", \"b\"] }\n"},
		{"g.csv", "node,edge\na,x\nb,x\n"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc, err := codec.Decode(strings.NewReader(tc.src), codec.FormatAuto, tc.name)
			require.NoError(t, err)
			h, err := doc.Convert()
			require.NoError(t, err)
			m, ok := h.Members("x")
			require.True(t, ok)
			assert.True(t, m.Equal(set("a", "b")))
		})
	}

	_, err := codec.Decode(strings.NewReader(""), codec.FormatAuto, "g.txt")
	require.ErrorIs(t, err, codec.ErrUnknownFormat)
	_, err = codec.Decode(strings.NewReader(""), codec.Format("xml"), "g")
	require.ErrorIs(t, err, codec.ErrUnknownFormat)
}
