package ir

import (
	"strings"
)

// Document is an ordered sequence of containers, one per record.
type Document struct {
	containers []*Container
}

func NewDocument(containers ...*Container) *Document {
	return (&Document{}).Add(containers...)
}

// Containers returns the document's containers.  The slice must not be
// modified.
func (d *Document) Containers() []*Container {
	return d.containers
}

func (d *Document) Len() int {
	return len(d.containers)
}

// Add appends containers and returns d.
func (d *Document) Add(containers ...*Container) *Document {
	for _, c := range containers {
		if c == nil {
			continue
		}
		d.containers = append(d.containers, c)
	}
	return d
}

// Container returns the first container whose name matches name
// case-insensitively.
func (d *Document) Container(name string) (*Container, error) {
	for _, c := range d.containers {
		if strings.EqualFold(c.name, name) {
			return c, nil
		}
	}
	return nil, &NotFoundError{Scope: "document", Name: name}
}

func (d *Document) Clone() *Document {
	res := &Document{}
	for _, c := range d.containers {
		res.containers = append(res.containers, c.Clone())
	}
	return res
}
