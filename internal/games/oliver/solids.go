package oliver

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/prince-of-oliver/internal/core"
)

const (
	tagSolid = "solid"
	tagProbe = "probe"

	indexCell   = 16
	indexMargin = 64
)

// solidIndex is a broadphase over the static solids. It narrows the list the
// resolver has to test; the exact overlap test stays in core.Resolve.
//
// resolv works in a space whose origin is its top-left cell, so world boxes
// are translated by origin before they are inserted.
type solidIndex struct {
	space  *resolv.Space
	origin core.Vec2
	byID   map[Handle]*resolv.Object
	owner  map[*resolv.Object]Handle
}

func newSolidIndex(bounds core.Box) *solidIndex {
	b := bounds.Grow(indexMargin)
	w := int(math.Ceil(b.Size.X)) + indexCell
	h := int(math.Ceil(b.Size.Y)) + indexCell
	return &solidIndex{
		space:  resolv.NewSpace(w, h, indexCell, indexCell),
		origin: b.Min(),
		byID:   make(map[Handle]*resolv.Object),
		owner:  make(map[*resolv.Object]Handle),
	}
}

func (ix *solidIndex) object(box core.Box, tag string) *resolv.Object {
	min := box.Min().Sub(ix.origin)
	obj := resolv.NewObject(min.X, min.Y, box.Size.X, box.Size.Y, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, box.Size.X, box.Size.Y))
	return obj
}

func (ix *solidIndex) add(h Handle, box core.Box) {
	obj := ix.object(box, tagSolid)
	ix.space.Add(obj)
	ix.byID[h] = obj
	ix.owner[obj] = h
}

func (ix *solidIndex) remove(h Handle) {
	obj, ok := ix.byID[h]
	if !ok {
		return
	}
	ix.space.Remove(obj)
	delete(ix.byID, h)
	delete(ix.owner, obj)
}

// query returns the handles of solids sharing a cell with region, in handle
// order so resolution matches a full scan of the arena.
func (ix *solidIndex) query(region core.Box) []Handle {
	probe := ix.object(region, tagProbe)
	ix.space.Add(probe)
	defer ix.space.Remove(probe)

	check := probe.Check(0, 0, tagSolid)
	if check == nil {
		return nil
	}

	solids := check.ObjectsByTags(tagSolid)
	out := make([]Handle, 0, len(solids))
	for _, obj := range solids {
		if h, ok := ix.owner[obj]; ok {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (ix *solidIndex) count() int {
	return len(ix.byID)
}
