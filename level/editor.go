package level

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/lixenwraith/munchies/constants"
	"github.com/lixenwraith/munchies/entity"
	"github.com/lixenwraith/munchies/profile"
	"github.com/lixenwraith/munchies/vmath"
)

// Tool is an editor brush
type Tool string

const (
	ToolGrass Tool = "grass"
	ToolPath  Tool = "path"
	ToolHole  Tool = "hole"
	ToolCrate Tool = "crate"
	ToolTree  Tool = "tree"
	ToolErase Tool = "erase"
)

// Tools lists brushes in toolbar order
var Tools = []Tool{ToolGrass, ToolPath, ToolHole, ToolCrate, ToolTree, ToolErase}

var (
	ErrNoSavedLevels = errors.New(constants.MsgNoSavedLevels)
	ErrUnknownTool   = errors.New("unknown editor tool")
)

// Canvas receives level geometry for display
type Canvas interface {
	ClearLevel()
	AddObstacle(o entity.Obstacle)
}

// Editor places and erases obstacles on a working layout
type Editor struct {
	canvas    Canvas
	tool      Tool
	obstacles []entity.Obstacle
}

// NewEditor starts editing from a base layout
func NewEditor(canvas Canvas, base []entity.Obstacle) *Editor {
	e := &Editor{canvas: canvas, tool: ToolCrate}
	e.replace(base)
	return e
}

// Tool returns the selected brush
func (e *Editor) Tool() Tool {
	return e.tool
}

// Obstacles returns a copy of the working layout
func (e *Editor) Obstacles() []entity.Obstacle {
	return slices.Clone(e.obstacles)
}

// SelectTool switches brush
func (e *Editor) SelectTool(t Tool) error {
	if !slices.Contains(Tools, t) {
		return errors.Wrap(ErrUnknownTool, string(t))
	}
	e.tool = t
	return nil
}

// Click applies the selected brush at a ground point
// Grass and path are paint-only and change nothing in the layout
func (e *Editor) Click(point vmath.Vec3F) {
	point.Y = 0
	switch e.tool {
	case ToolHole:
		e.place(entity.Obstacle{Kind: entity.ObstacleHole, Position: point, Radius: constants.HoleRadius})
	case ToolCrate:
		e.place(entity.Obstacle{Kind: entity.ObstacleCrate, Position: point})
	case ToolTree:
		e.place(entity.Obstacle{Kind: entity.ObstacleTree, Position: point})
	case ToolErase:
		kept := e.obstacles[:0]
		for _, o := range e.obstacles {
			if vmath.V3FDist(o.Position, point) >= constants.EraseRadius {
				kept = append(kept, o)
			}
		}
		e.replace(kept)
	}
}

// Cycle moves the brush forward or backward through Tools
func (e *Editor) Cycle(step int) Tool {
	i := slices.Index(Tools, e.tool)
	n := len(Tools)
	e.tool = Tools[((i+step)%n+n)%n]
	return e.tool
}

// Save appends the working layout to the profile's custom levels
func (e *Editor) Save(p *profile.Profile) {
	p.CustomLevels = append(p.CustomLevels, profile.CustomLevel{Objects: e.Obstacles()})
}

// Load replaces the working layout with the most recently saved level
func (e *Editor) Load(p *profile.Profile) error {
	if len(p.CustomLevels) == 0 {
		return ErrNoSavedLevels
	}
	e.replace(p.CustomLevels[len(p.CustomLevels)-1].Objects)
	return nil
}

func (e *Editor) place(o entity.Obstacle) {
	e.obstacles = append(e.obstacles, o)
	e.canvas.AddObstacle(o)
}

func (e *Editor) replace(obstacles []entity.Obstacle) {
	e.obstacles = slices.Clone(obstacles)
	e.canvas.ClearLevel()
	for _, o := range e.obstacles {
		e.canvas.AddObstacle(o)
	}
}
