package convert

import (
	"testing"

	"github.com/signadot/hippo-format/hippo/encode"
	"github.com/signadot/hippo-format/hippo/ir"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDoc() *ir.Document {
	return ir.NewDocument(
		ir.NewContainer("SomeObject").Add(
			ir.MustNode("SomeElement", "SomeValue", 69, true).Append(
				ir.MustNode("Child", "a[b]c", -4),
			),
			ir.MustNode("Empty"),
		),
		ir.NewContainer("Nothing"),
	)
}

func TestToAny(t *testing.T) {
	doc := ir.NewDocument(ir.NewContainer("O").Add(ir.MustNode("A", 1).Append(ir.MustNode("B"))))
	want := []any{
		map[string]any{
			"name": "O",
			"nodes": []any{
				map[string]any{
					"name":   "A",
					"values": []any{int64(1)},
					"children": []any{
						map[string]any{"name": "B", "values": []any{}, "children": []any{}},
					},
				},
			},
		},
	}
	assert.Equal(t, want, ToAny(doc))
}

func TestJSON(t *testing.T) {
	doc := ir.NewDocument(ir.NewContainer("O").Add(ir.MustNode("A", 1, "x", true)))
	d, err := MarshalJSON(doc)
	require.NoError(t, err)
	assert.Equal(t, `[{"name":"O","nodes":[{"children":[],"name":"A","values":[1,"x",true]}]}]`, string(d))

	doc = sampleDoc()
	d, err = MarshalIndentJSON(doc, "  ")
	require.NoError(t, err)
	got, err := UnmarshalJSON(d)
	require.NoError(t, err)
	assert.Equal(t, encode.MustString(doc), encode.MustString(got))
	v := got.Containers()[0].Nodes()[0].Value(1)
	assert.Equal(t, ir.FromInt(69), v)
}

func TestYAML(t *testing.T) {
	doc := sampleDoc()
	d, err := MarshalYAML(doc)
	require.NoError(t, err)
	got, err := UnmarshalYAML(d)
	require.NoError(t, err)
	assert.True(t, ir.DocumentEqual(doc, got), "yaml:\n%s", d)

	in := `
- name: Obj
  nodes:
    - name: Key
      values: [value, 3, false]
- name: Bare
`
	got, err = UnmarshalYAML([]byte(in))
	require.NoError(t, err)
	assert.Equal(t, "Obj{(Key[value][3][false])}\nBare{}\n", encode.MustString(got))
}

func TestFromAnyErrors(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"not a list", map[string]any{"name": "x"}},
		{"container not a map", []any{"x"}},
		{"missing name", []any{map[string]any{"nodes": []any{}}}},
		{"nodes not a list", []any{map[string]any{"name": "x", "nodes": "y"}}},
		{"float value", []any{map[string]any{"name": "x", "nodes": []any{
			map[string]any{"name": "n", "values": []any{1.5}},
		}}}},
		{"nested value", []any{map[string]any{"name": "x", "nodes": []any{
			map[string]any{"name": "n", "values": []any{[]any{1}}},
		}}}},
		{"null value", []any{map[string]any{"name": "x", "nodes": []any{
			map[string]any{"name": "n", "values": []any{nil}},
		}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromAny(tt.in)
			assert.ErrorIs(t, err, ErrConvert)
		})
	}
}

func TestFromAnyIntegralFloat(t *testing.T) {
	in := []any{map[string]any{"name": "x", "nodes": []any{
		map[string]any{"name": "n", "values": []any{2.0, uint64(7)}},
	}}}
	doc, err := FromAny(in)
	require.NoError(t, err)
	assert.Equal(t, "x{(n[2][7])}\n", encode.MustString(doc))
}

func TestApplyJSONPatch(t *testing.T) {
	doc := ir.NewDocument(ir.NewContainer("O").Add(ir.MustNode("A", 1)))
	patch := `[
		{"op": "replace", "path": "/0/nodes/0/values/0", "value": 2},
		{"op": "add", "path": "/0/nodes/-", "value": {"name": "B", "values": ["x"]}},
		{"op": "add", "path": "/-", "value": {"name": "P"}}
	]`
	got, err := ApplyJSONPatch(doc, []byte(patch))
	require.NoError(t, err)
	assert.Equal(t, "O{(A[2])(B[x])}\nP{}\n", encode.MustString(got))
	assert.Equal(t, "O{(A[1])}\n", encode.MustString(doc))

	_, err = ApplyJSONPatch(doc, []byte(`[{"op": "remove", "path": "/5"}]`))
	assert.Error(t, err)
	_, err = ApplyJSONPatch(doc, []byte(`not json`))
	assert.Error(t, err)
}
