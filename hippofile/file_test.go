package hippofile

import (
	"os"
	"sync"
	"testing"

	"github.com/signadot/hippo-format/hippo/encode"
	"github.com/signadot/hippo-format/hippo/format"
	"github.com/signadot/hippo-format/hippo/ir"
	"github.com/signadot/hippo-format/hippo/parse"
	"github.com/signadot/hippo-format/hippo/transform"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenario = "SomeObject{(SomeElement[SomeValue][69][true])}\n"

func scenarioContainer() *ir.Container {
	return ir.NewContainer("SomeObject").Add(ir.MustNode("SomeElement", "SomeValue", 69, true))
}

func TestNewSaveOpen(t *testing.T) {
	fs := memfs.New()
	f, err := New(fs, "data/config", "settings")
	require.NoError(t, err)
	assert.Equal(t, "data/config/settings.hippo", f.Path())
	assert.Equal(t, "settings", f.Name())

	empty, err := f.IsEmpty()
	require.NoError(t, err)
	assert.True(t, empty)

	f.Add(scenarioContainer())
	require.NoError(t, f.Save())

	raw, err := util.ReadFile(fs, f.Path())
	require.NoError(t, err)
	assert.Equal(t, scenario, string(raw))

	g, err := Open(fs, f.Path())
	require.NoError(t, err)
	assert.True(t, ir.DocumentEqual(f.Document(), g.Document()))

	c, err := g.Container("someobject")
	require.NoError(t, err)
	n, err := c.Node("SOMEELEMENT")
	require.NoError(t, err)
	assert.Equal(t, []ir.Value{ir.FromString("SomeValue"), ir.FromInt(69), ir.FromBool(true)}, n.Values())

	_, err = g.Container("missing")
	assert.ErrorIs(t, err, ir.ErrNotFound)
}

func TestNewKeepsExisting(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "d/keep.hippo", []byte(scenario), 0o644))
	f, err := New(fs, "d", "keep")
	require.NoError(t, err)
	empty, err := f.IsEmpty()
	require.NoError(t, err)
	assert.False(t, empty)
}

func TestEncryptDefault(t *testing.T) {
	fs := memfs.New()
	f, err := New(fs, "vault", "secret")
	require.NoError(t, err)
	f.Add(scenarioContainer())
	require.NoError(t, f.Encrypt())

	raw, err := util.ReadFile(fs, f.Path())
	require.NoError(t, err)
	want, err := transform.Swap().Encode(scenario)
	require.NoError(t, err)
	assert.Equal(t, want, string(raw))

	g, err := Open(fs, f.Path(), WithTransforms(transform.Swap()))
	require.NoError(t, err)
	assert.True(t, ir.DocumentEqual(f.Document(), g.Document()))
}

func TestEncryptInvalidUTF8(t *testing.T) {
	fs := memfs.New()
	f, err := New(fs, "vault", "latin1")
	require.NoError(t, err)
	f.Add(ir.NewContainer("O").Add(ir.MustNode("A", "caf\xe9")))

	err = f.Encrypt(transform.Swap())
	assert.ErrorIs(t, err, transform.ErrTransform)
	empty, err := f.IsEmpty()
	require.NoError(t, err)
	assert.True(t, empty)

	require.NoError(t, f.Encrypt(transform.Base64()))
	g, err := Open(fs, f.Path(), WithTransforms(transform.Base64()))
	require.NoError(t, err)
	assert.True(t, ir.DocumentEqual(f.Document(), g.Document()))
}

func TestDocumentCopy(t *testing.T) {
	f, err := New(memfs.New(), "d", "copy")
	require.NoError(t, err)
	f.Add(scenarioContainer())

	doc := f.Document()
	doc.Add(ir.NewContainer("Extra"))
	c, err := doc.Container("SomeObject")
	require.NoError(t, err)
	c.Add(ir.MustNode("Added"))

	got := f.Document()
	assert.Equal(t, 1, got.Len())
	c, err = got.Container("SomeObject")
	require.NoError(t, err)
	assert.Len(t, c.Nodes(), 1)
}

func TestEncryptChain(t *testing.T) {
	fs := memfs.New()
	ts := []transform.Transform{transform.Swap(), transform.Base64(), transform.Reverse()}
	f, err := New(fs, "x", "chained", WithTransforms(ts...))
	require.NoError(t, err)
	f.Add(
		ir.NewContainer("we{ird}").Add(ir.MustNode("A", "a[[b]]c").Append(ir.MustNode("B", "line\nbreak"))),
		ir.NewContainer("Other"),
	)
	require.NoError(t, f.Encrypt())

	g, err := Open(fs, f.Path(), WithTransforms(ts...))
	require.NoError(t, err)
	assert.True(t, ir.DocumentEqual(f.Document(), g.Document()))

	_, err = Open(fs, f.Path())
	assert.ErrorIs(t, err, parse.ErrMalformed)
}

func TestLegacyConcat(t *testing.T) {
	fs := memfs.New()
	opts := []Option{
		WithTransforms(transform.LegacySwap()),
		WithMode(transform.Concat),
		WithFormat(format.LegacyFormat),
	}
	f, err := New(fs, "old", "legacy", opts...)
	require.NoError(t, err)
	f.Add(ir.NewContainer("Obj").Add(ir.MustNode("Key", "value")))
	require.NoError(t, f.Encrypt())

	raw, err := util.ReadFile(fs, f.Path())
	require.NoError(t, err)
	// "Obj{(Key[value])}\n" has even length so nothing is lost.
	assert.Len(t, raw, len("Obj{(Key[value])}\n"))

	g, err := Open(fs, f.Path(), opts...)
	require.NoError(t, err)
	assert.True(t, ir.DocumentEqual(f.Document(), g.Document()))

	// two transforms in concat mode write the record twice.
	require.NoError(t, f.Encrypt(transform.LegacySwap(), transform.LegacySwap()))
	raw, err = util.ReadFile(fs, f.Path())
	require.NoError(t, err)
	assert.Len(t, raw, 2*len("Obj{(Key[value])}\n"))
	g, err = Open(fs, f.Path(), opts...)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Document().Len())
}

func TestClear(t *testing.T) {
	fs := memfs.New()
	f, err := New(fs, "c", "clear")
	require.NoError(t, err)
	f.Add(scenarioContainer())
	require.NoError(t, f.Save())
	empty, err := f.IsEmpty()
	require.NoError(t, err)
	assert.False(t, empty)

	require.NoError(t, f.Clear())
	empty, err = f.IsEmpty()
	require.NoError(t, err)
	assert.True(t, empty)
	assert.Equal(t, 1, f.Document().Len())
}

func TestOpenErrors(t *testing.T) {
	fs := memfs.New()
	_, err := Open(fs, "nope.hippo")
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, util.WriteFile(fs, "bad.hippo", []byte("Obj{(A"), 0o644))
	_, err = Open(fs, "bad.hippo")
	assert.ErrorIs(t, err, parse.ErrMalformed)

	require.NoError(t, util.WriteFile(fs, "odd.hippo", []byte("abc"), 0o644))
	_, err = Open(fs, "odd.hippo", WithTransforms(transform.LegacySwap()))
	assert.ErrorIs(t, err, transform.ErrTransform)
}

func TestDecodeEncode(t *testing.T) {
	doc := ir.NewDocument(scenarioContainer())
	opts := []Option{WithTransforms(transform.Base64()), WithParseOptions(parse.Untyped())}
	d, err := Encode(doc, opts...)
	require.NoError(t, err)
	got, err := Decode(d, opts...)
	require.NoError(t, err)
	assert.Equal(t, scenario, encode.MustString(got))
	n := got.Containers()[0].Nodes()[0]
	assert.Equal(t, ir.StringType, n.Value(1).Type)
}

func TestConcurrentAdd(t *testing.T) {
	f, err := New(memfs.New(), "p", "parallel")
	require.NoError(t, err)
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.Add(scenarioContainer())
		}()
	}
	wg.Wait()
	assert.Equal(t, 16, f.Document().Len())
	require.NoError(t, f.Save())
}
