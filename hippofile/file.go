package hippofile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/signadot/hippo-format/hippo/debug"
	"github.com/signadot/hippo-format/hippo/encode"
	"github.com/signadot/hippo-format/hippo/format"
	"github.com/signadot/hippo-format/hippo/ir"
	"github.com/signadot/hippo-format/hippo/parse"
	"github.com/signadot/hippo-format/hippo/transform"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// File is a document bound to a path on a billy filesystem.  Its methods are
// safe for concurrent use.  Containers returned by Container are live and
// are not guarded.
type File struct {
	fs   billy.Filesystem
	path string
	opts *fileOpts

	mu  sync.Mutex
	doc *ir.Document
}

// New creates dir if needed and an empty <name>.hippo inside it unless the
// file already exists.  The returned File starts with an empty document.
func New(fs billy.Filesystem, dir, name string, opts ...Option) (*File, error) {
	if err := fs.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("could not create %s: %w", dir, err)
	}
	path := fs.Join(dir, name+format.Suffix)
	_, err := fs.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := util.WriteFile(fs, path, nil, filePerm); err != nil {
			return nil, fmt.Errorf("could not create %s: %w", path, err)
		}
	case err != nil:
		return nil, err
	}
	if debug.File() {
		debug.Logf("new hippo file %s\n", path)
	}
	return &File{fs: fs, path: path, opts: newFileOpts(opts), doc: ir.NewDocument()}, nil
}

// Open reads and decodes the file at path.
func Open(fs billy.Filesystem, path string, opts ...Option) (*File, error) {
	d, err := util.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	doc, err := Decode(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if debug.File() {
		debug.Logf("opened %s with %d containers\n", path, doc.Len())
	}
	return &File{fs: fs, path: path, opts: newFileOpts(opts), doc: doc}, nil
}

// Decode reverses the configured pipeline over d and parses the result.
func Decode(d []byte, opts ...Option) (*ir.Document, error) {
	o := newFileOpts(opts)
	text, err := o.pipeline(o.transforms).Decode(string(d))
	if err != nil {
		return nil, err
	}
	pOpts := append([]parse.ParseOption{parse.ParseFormat(o.format)}, o.parseOpts...)
	return parse.Parse([]byte(text), pOpts...)
}

// Encode serializes doc and runs the configured pipeline forward.
func Encode(doc *ir.Document, opts ...Option) ([]byte, error) {
	o := newFileOpts(opts)
	return o.encode(doc, o.transforms)
}

func (o *fileOpts) encode(doc *ir.Document, ts []transform.Transform) ([]byte, error) {
	text, err := encode.Marshal(doc, encode.EncodeFormat(o.format))
	if err != nil {
		return nil, err
	}
	if debug.Encode() {
		debug.Logf("encoded %d records as %s (%d bytes)\n", doc.Len(), o.format, len(text))
	}
	text, err = o.pipeline(ts).Encode(text)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

func (f *File) Path() string { return f.path }

// Name returns the file name without directory or suffix.
func (f *File) Name() string {
	return strings.TrimSuffix(filepath.Base(f.path), format.Suffix)
}

// Add appends containers to the in-memory document.  Nothing is written
// until Save or Encrypt.
func (f *File) Add(cs ...*ir.Container) *File {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.doc.Add(cs...)
	return f
}

// Container returns the first container named name, ignoring case.
func (f *File) Container(name string) (*ir.Container, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, err := f.doc.Container(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.path, err)
	}
	return c, nil
}

// Document returns a copy of the document.
func (f *File) Document() *ir.Document {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.doc.Clone()
}

// Save writes the document as plain text, replacing the file contents.
func (f *File) Save() error {
	return f.write(nil)
}

// Encrypt writes the document through ts.  With no arguments it uses the
// transforms the file was opened with, or the swap cipher if there are none.
func (f *File) Encrypt(ts ...transform.Transform) error {
	if len(ts) == 0 {
		ts = f.opts.transforms
	}
	if len(ts) == 0 {
		ts = []transform.Transform{transform.Swap()}
	}
	return f.write(ts)
}

func (f *File) write(ts []transform.Transform) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, err := f.opts.encode(f.doc, ts)
	if err != nil {
		return fmt.Errorf("%s: %w", f.path, err)
	}
	if err := util.WriteFile(f.fs, f.path, d, filePerm); err != nil {
		return err
	}
	if debug.File() {
		debug.Logf("wrote %d bytes to %s\n", len(d), f.path)
	}
	return nil
}

// Clear truncates the file.  The in-memory document is kept.
func (f *File) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return util.WriteFile(f.fs, f.path, nil, filePerm)
}

// IsEmpty reports whether the file on disk has no content.
func (f *File) IsEmpty() (bool, error) {
	fi, err := f.fs.Stat(f.path)
	if err != nil {
		return false, err
	}
	return fi.Size() == 0, nil
}
