package prodplan

import (
	"testing"

	"github.com/dshills/busforge/pkg/rational"
)

func testRecipes() []Recipe {
	return []Recipe{
		{
			Results:      []Ingredient{{Name: "automation-science-pack", Amount: 1}},
			Ingredients:  []Ingredient{{Name: "copper-plate", Amount: 1}, {Name: "iron-gear-wheel", Amount: 1}},
			Category:     Assembler,
			CraftingTime: rational.New(5, 1),
		},
		{
			Results:      []Ingredient{{Name: "iron-gear-wheel", Amount: 1}},
			Ingredients:  []Ingredient{{Name: "iron-plate", Amount: 2}},
			Category:     Assembler,
			CraftingTime: rational.New(1, 2),
		},
		{
			Results:      []Ingredient{{Name: "copper-plate", Amount: 1}},
			Ingredients:  []Ingredient{{Name: "copper-ore", Amount: 1}},
			Category:     Furnace,
			CraftingTime: rational.New(32, 10),
		},
	}
}

func TestSolveLeafIsExternalInput(t *testing.T) {
	g, err := Solve(testRecipes(), "copper-ore", rational.New(1, 1))
	if err != nil {
		t.Fatal(err)
	}
	if g.Building != nil {
		t.Fatal("raw input should have no building")
	}
}

func TestSolveRecursesAndScalesRates(t *testing.T) {
	g, err := Solve(testRecipes(), "automation-science-pack", rational.New(3, 4))
	if err != nil {
		t.Fatal(err)
	}
	if g.Building == nil || *g.Building != Assembler {
		t.Fatalf("expected Assembler building, got %v", g.Building)
	}
	// 0.75/s at 1 pack/craft/5s -> 3.75 concurrent crafts; / base speed 0.75 = how_many of exactly 5
	if g.HowMany.IsZero() {
		t.Fatal("expected nonzero how_many")
	}
	if len(g.Inputs) != 2 {
		t.Fatalf("expected 2 inputs, got %d", len(g.Inputs))
	}
	gear := g.Inputs[1]
	if gear.Output != "iron-gear-wheel" {
		t.Fatalf("expected iron-gear-wheel, got %s", gear.Output)
	}
	if len(gear.Inputs) != 1 || gear.Inputs[0].Output != "iron-plate" {
		t.Fatal("gear wheel should recurse into iron-plate")
	}
}

func TestSolveAmbiguousRecipe(t *testing.T) {
	recipes := append(testRecipes(), Recipe{
		Results:      []Ingredient{{Name: "copper-plate", Amount: 1}},
		Ingredients:  []Ingredient{{Name: "scrap", Amount: 1}},
		Category:     Furnace,
		CraftingTime: rational.New(1, 1),
	})
	if _, err := Solve(recipes, "copper-plate", rational.New(1, 1)); err != ErrAmbiguousRecipe {
		t.Fatalf("expected ErrAmbiguousRecipe, got %v", err)
	}
}

func TestSolveUnsupportedCategory(t *testing.T) {
	recipes := []Recipe{{
		Results:      []Ingredient{{Name: "rocket-part", Amount: 1}},
		Category:     RocketSilo,
		CraftingTime: rational.New(1, 1),
	}}
	if _, err := Solve(recipes, "rocket-part", rational.New(1, 1)); err == nil {
		t.Fatal("expected error for unsupported category")
	}
}
