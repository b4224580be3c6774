package ir

// Equal reports whether a and b have the same name, values and children.
// Values are compared by literal.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.name != b.name {
		return false
	}
	if !ValuesEqual(a.values, b.values) {
		return false
	}
	if len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}

func ValuesEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func ContainerEqual(a, b *Container) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.name != b.name || len(a.nodes) != len(b.nodes) {
		return false
	}
	for i := range a.nodes {
		if !Equal(a.nodes[i], b.nodes[i]) {
			return false
		}
	}
	return true
}

func DocumentEqual(a, b *Document) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.containers) != len(b.containers) {
		return false
	}
	for i := range a.containers {
		if !ContainerEqual(a.containers[i], b.containers[i]) {
			return false
		}
	}
	return true
}
