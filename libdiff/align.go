package libdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// pairing is one step of an alignment: an element of from kept as an
// element of to (Equal), dropped (Delete) or introduced (Insert).  Absent
// sides are -1.
type pairing struct {
	op       diffpatch.Operation
	from, to int
}

// align matches two sequences by key.  Each distinct key is mapped to a
// rune so that the sequences can be diffed as text.
func align[T any](from, to []T, key func(T) string) []pairing {
	m := map[string]rune{}
	fromRunes := keyRunes(m, from, key)
	toRunes := keyRunes(m, to, key)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	res := make([]pairing, 0, max(len(from), len(to)))
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		for range []rune(diff.Text) {
			switch diff.Type {
			case diffpatch.DiffEqual:
				res = append(res, pairing{op: diff.Type, from: fi, to: ti})
				fi++
				ti++
			case diffpatch.DiffDelete:
				res = append(res, pairing{op: diff.Type, from: fi, to: -1})
				fi++
			case diffpatch.DiffInsert:
				res = append(res, pairing{op: diff.Type, from: -1, to: ti})
				ti++
			}
		}
	}
	return res
}

func keyRunes[T any](m map[string]rune, xs []T, key func(T) string) []rune {
	rs := make([]rune, len(xs))
	for i, x := range xs {
		k := key(x)
		r, ok := m[k]
		if !ok {
			r = rune(len(m))
			m[k] = r
		}
		rs[i] = r
	}
	return rs
}
