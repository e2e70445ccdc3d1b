// Package prodplan holds the external recipe/production-graph record types
// spec §6 defines and the supplemented rate-propagation solver
// ("kirkmcdonald", after the community calculator it is named for in the
// original implementation) that builds a ProductionGraph from a desired
// output rate.
package prodplan

import "github.com/dshills/busforge/pkg/rational"

// Category names a crafting building class. Only Assembler and Furnace have
// a known base crafting speed; the others are carried through so recipe
// data can name them, but Solve rejects any recipe that resolves to one of
// them, matching the original's "not yet implemented" categories.
type Category int

const (
	Assembler Category = iota
	Furnace
	Centrifuge
	ChemicalLab
	OilRefinery
	RocketSilo
)

func (c Category) String() string {
	switch c {
	case Assembler:
		return "assembler"
	case Furnace:
		return "furnace"
	case Centrifuge:
		return "centrifuge"
	case ChemicalLab:
		return "chemical-lab"
	case OilRefinery:
		return "oil-refinery"
	case RocketSilo:
		return "rocket-silo"
	default:
		return "unknown"
	}
}

// baseCraftingSpeed returns the building's base crafting speed multiplier,
// or an error if the category has no known speed (Centrifuge, ChemicalLab,
// OilRefinery and RocketSilo are carried in the data model but not yet
// supported by Solve).
func (c Category) baseCraftingSpeed() (rational.Rational, error) {
	switch c {
	case Assembler:
		return rational.New(3, 4), nil
	case Furnace:
		return rational.New(2, 1), nil
	default:
		return rational.Zero, errUnsupportedCategory(c)
	}
}

// Ingredient is one (item, amount) pair consumed or produced by a Recipe. A
// non-empty Fluid marks the ingredient as fluid-carried rather than
// belt-carried.
type Ingredient struct {
	Name  string
	Amount int32
	Fluid  string
}

// Recipe describes one crafting recipe: what it consumes, what it produces,
// which building class crafts it, and how long one craft takes.
type Recipe struct {
	Ingredients  []Ingredient
	Results      []Ingredient
	Category     Category
	CraftingTime rational.Rational
}

// ProductionGraph is the external production-graph shape spec §4.2 consumes:
// one output item, its desired rate, how many concurrent buildings are
// needed to hit that rate, and the recursively-resolved inputs it requires.
// A node with no inputs is a raw/external input to the whole plan.
type ProductionGraph struct {
	Output    string
	Fluid     string
	PerSecond rational.Rational
	HowMany   rational.Rational
	Building  *Category
	Inputs    []*ProductionGraph
}
