package formats

import (
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/vovakirdan/prince-of-oliver/internal/core"
	"github.com/vovakirdan/prince-of-oliver/internal/level"
)

// Tiled layer and object group names understood by LoadTMX.
const (
	tmxSolids      = "solids"
	tmxLadders     = "ladders"
	tmxHazards     = "hazards"
	tmxKeys        = "keys"
	tmxCheckpoints = "checkpoints"
	tmxDoors       = "doors"
	tmxPrincess    = "princess"
	tmxGuards      = "guards"
	tmxSpawn       = "spawn"
)

// LoadTMX parses a Tiled map. Every non-empty tile of the "solids" tile layer
// becomes a solid; object groups name the other entity kinds. It takes an
// fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (level.Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return level.Level{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	h := float64(levelMap.Height) * tileH

	id := strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath))
	l := level.Level{
		ID:     id,
		Name:   id,
		Width:  float64(levelMap.Width) * tileW,
		Height: h,
	}

	// Tiled objects are anchored at their top-left corner; points have no size.
	rect := func(o *tiled.Object) level.Rect {
		return level.Rect{
			Name: o.Name,
			Pos:  core.V(o.X+o.Width/2, h-(o.Y+o.Height/2)),
			Size: core.V(o.Width, o.Height),
		}
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != tmxSolids {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				l.Solids = append(l.Solids, level.Solid{Rect: level.Rect{
					Name: fmt.Sprintf("tile_%d_%d", x, y),
					Pos:  core.V((float64(x)+0.5)*tileW, h-(float64(y)+0.5)*tileH),
					Size: core.V(tileW, tileH),
				}})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			r := rect(o)
			switch og.Name {
			case tmxSolids:
				l.Solids = append(l.Solids, level.Solid{Rect: r})
			case tmxLadders:
				l.Ladders = append(l.Ladders, r)
			case tmxHazards:
				l.Hazards = append(l.Hazards, r)
			case tmxKeys:
				l.Keys = append(l.Keys, r)
			case tmxCheckpoints:
				cp := level.Checkpoint{Rect: r, Resume: r.Pos}
				if rx, ok := floatProp(o.Properties.GetString, "resume_x"); ok {
					cp.Resume.X = rx
				}
				if ry, ok := floatProp(o.Properties.GetString, "resume_y"); ok {
					cp.Resume.Y = h - ry
				}
				l.Checkpoints = append(l.Checkpoints, cp)
			case tmxDoors:
				l.Doors = append(l.Doors, r)
				if o.Properties.GetString("blocker") != "false" {
					blocker := r
					blocker.Name = r.Name + "_blocker"
					l.Solids = append(l.Solids, level.Solid{Rect: blocker, DoorBlocker: true})
				}
			case tmxPrincess:
				p := r
				l.Princess = &p
			case tmxGuards:
				g := level.GuardSpawn{Name: o.Name, Pos: r.Pos, Left: r.Pos.X, Right: r.Pos.X}
				if left, ok := floatProp(o.Properties.GetString, "left"); ok {
					g.Left = left
				}
				if right, ok := floatProp(o.Properties.GetString, "right"); ok {
					g.Right = right
				}
				l.Guards = append(l.Guards, g)
			case tmxSpawn:
				l.PlayerSpawn = r.Pos
			}
		}
	}

	return l, nil
}

func floatProp(get func(string) string, name string) (float64, bool) {
	s := get(name)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
