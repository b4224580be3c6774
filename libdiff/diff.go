package libdiff

import (
	"github.com/signadot/hippo-format/hippo/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the changes turning from into to, in document order.
// Containers and nodes are aligned by name; aligned nodes are compared by
// value literal and their children diffed in turn.
func Diff(from, to *ir.Document) []Change {
	var res []Change
	fcs, tcs := from.Containers(), to.Containers()
	fOcc := ir.Occurrences(fcs, (*ir.Container).Name)
	tOcc := ir.Occurrences(tcs, (*ir.Container).Name)
	var root *ir.Path
	for _, pr := range align(fcs, tcs, (*ir.Container).Name) {
		switch pr.op {
		case diffpatch.DiffDelete:
			c := fcs[pr.from]
			res = append(res, Change{Op: Remove, Path: root.Join(c.Name(), fOcc[pr.from]), Container: c})
		case diffpatch.DiffInsert:
			c := tcs[pr.to]
			res = append(res, Change{Op: Add, Path: root.Join(c.Name(), tOcc[pr.to]), Container: c})
		case diffpatch.DiffEqual:
			p := root.Join(fcs[pr.from].Name(), fOcc[pr.from])
			res = diffNodes(res, p, fcs[pr.from].Nodes(), tcs[pr.to].Nodes())
		}
	}
	return res
}

func diffNodes(res []Change, parent *ir.Path, from, to []*ir.Node) []Change {
	fOcc := ir.Occurrences(from, (*ir.Node).Name)
	tOcc := ir.Occurrences(to, (*ir.Node).Name)
	for _, pr := range align(from, to, (*ir.Node).Name) {
		switch pr.op {
		case diffpatch.DiffDelete:
			n := from[pr.from]
			res = append(res, Change{Op: Remove, Path: parent.Join(n.Name(), fOcc[pr.from]), Node: n})
		case diffpatch.DiffInsert:
			n := to[pr.to]
			res = append(res, Change{Op: Add, Path: parent.Join(n.Name(), tOcc[pr.to]), Node: n})
		case diffpatch.DiffEqual:
			f, t := from[pr.from], to[pr.to]
			p := parent.Join(f.Name(), fOcc[pr.from])
			if vs := DiffValues(f.Values(), t.Values()); len(vs) != 0 {
				res = append(res, Change{Op: Modify, Path: p, Values: vs})
			}
			res = diffNodes(res, p, f.Children(), t.Children())
		}
	}
	return res
}

// DiffValues aligns two value lists by literal.  A removal directly
// followed by an addition is reported as a modification with a character
// diff.
func DiffValues(from, to []ir.Value) []ValueChange {
	var (
		res  []ValueChange
		dels []pairing
	)
	flush := func() {
		for _, d := range dels {
			res = append(res, ValueChange{Op: Remove, Index: d.from, From: from[d.from]})
		}
		dels = nil
	}
	for _, pr := range align(from, to, ir.Value.Literal) {
		switch pr.op {
		case diffpatch.DiffDelete:
			dels = append(dels, pr)
		case diffpatch.DiffInsert:
			if len(dels) == 0 {
				res = append(res, ValueChange{Op: Add, Index: pr.to, To: to[pr.to]})
				continue
			}
			d := dels[0]
			dels = dels[1:]
			f, t := from[d.from], to[pr.to]
			res = append(res, ValueChange{
				Op:    Modify,
				Index: d.from,
				From:  f,
				To:    t,
				Text:  DiffString(f.Literal(), t.Literal()),
			})
		case diffpatch.DiffEqual:
			flush()
		}
	}
	flush()
	return res
}
