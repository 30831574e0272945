package level

import (
	_ "embed"
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/munchies/entity"
	"github.com/lixenwraith/munchies/vmath"
)

//go:embed layouts.yaml
var defaultLayouts []byte

// ErrUnknownLayout is returned for a layout name missing from the catalog
var ErrUnknownLayout = errors.New("unknown layout")

// Layout is a named recipe of obstacle generators
type Layout struct {
	Name       string      `yaml:"name"`
	Generators []Generator `yaml:"generators"`
}

// Generator is exactly one of Ring, Points or Lattice
type Generator struct {
	Ring    *Ring             `yaml:"ring,omitempty"`
	Points  []entity.Obstacle `yaml:"points,omitempty"`
	Lattice *Lattice          `yaml:"lattice,omitempty"`
}

// Ring places Count obstacles evenly on a circle, the first at angle zero (+X)
type Ring struct {
	Kind   entity.ObstacleKind `yaml:"kind"`
	Count  int                 `yaml:"count"`
	Radius float64             `yaml:"radius"`
}

// Lattice places one obstacle per cell for i, j in [-Extent, Extent] stepping by Step, scaled by Spacing
type Lattice struct {
	Kind       string  `yaml:"kind"` // crate, tree or random
	Extent     int     `yaml:"extent"`
	Step       int     `yaml:"step"`
	Spacing    float64 `yaml:"spacing"`
	SkipOrigin bool    `yaml:"skip_origin"`
}

type catalogFile struct {
	Layouts []Layout `yaml:"layouts"`
}

// Catalog generates obstacle layouts by name
type Catalog struct {
	layouts []Layout
	rng     *rand.Rand
}

// NewCatalog loads the embedded layouts; rng drives random lattice cells
func NewCatalog(rng *rand.Rand) (*Catalog, error) {
	return ParseCatalog(defaultLayouts, rng)
}

// ParseCatalog loads layouts from YAML
func ParseCatalog(data []byte, rng *rand.Rand) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "parse layout catalog")
	}
	if len(f.Layouts) == 0 {
		return nil, errors.New("layout catalog is empty")
	}
	for _, l := range f.Layouts {
		for i, g := range l.Generators {
			if err := g.validate(); err != nil {
				return nil, errors.Wrapf(err, "layout %s generator %d", l.Name, i)
			}
		}
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Catalog{layouts: f.Layouts, rng: rng}, nil
}

func (g Generator) validate() error {
	set := 0
	if g.Ring != nil {
		set++
		if g.Ring.Count <= 0 {
			return errors.New("ring count must be positive")
		}
	}
	if g.Points != nil {
		set++
	}
	if g.Lattice != nil {
		set++
		if g.Lattice.Step <= 0 {
			return errors.New("lattice step must be positive")
		}
	}
	if set != 1 {
		return errors.Errorf("generator must set exactly one shape, got %d", set)
	}
	return nil
}

// Layouts returns layout names in catalog order
func (c *Catalog) Layouts() []string {
	names := make([]string, len(c.layouts))
	for i, l := range c.layouts {
		names[i] = l.Name
	}
	return names
}

// Generate expands a layout into obstacles
func (c *Catalog) Generate(name string) ([]entity.Obstacle, error) {
	for _, l := range c.layouts {
		if l.Name == name {
			return c.expand(l), nil
		}
	}
	return nil, errors.Wrap(ErrUnknownLayout, name)
}

func (c *Catalog) expand(l Layout) []entity.Obstacle {
	var out []entity.Obstacle
	for _, g := range l.Generators {
		switch {
		case g.Ring != nil:
			for i := 0; i < g.Ring.Count; i++ {
				angle := float64(i) / float64(g.Ring.Count) * 2 * math.Pi
				out = append(out, entity.Obstacle{
					Kind:     g.Ring.Kind,
					Position: vmath.Vec3F{X: math.Cos(angle) * g.Ring.Radius, Z: math.Sin(angle) * g.Ring.Radius},
				})
			}
		case g.Points != nil:
			out = append(out, g.Points...)
		case g.Lattice != nil:
			lt := g.Lattice
			for x := -lt.Extent; x <= lt.Extent; x += lt.Step {
				for z := -lt.Extent; z <= lt.Extent; z += lt.Step {
					if lt.SkipOrigin && x == 0 && z == 0 {
						continue
					}
					out = append(out, entity.Obstacle{
						Kind:     c.latticeKind(lt.Kind),
						Position: vmath.Vec3F{X: float64(x) * lt.Spacing, Z: float64(z) * lt.Spacing},
					})
				}
			}
		}
	}
	return out
}

func (c *Catalog) latticeKind(kind string) entity.ObstacleKind {
	if kind != "random" {
		return entity.ObstacleKind(kind)
	}
	if c.rng.Float64() > 0.5 {
		return entity.ObstacleCrate
	}
	return entity.ObstacleTree
}
