// Package reciperepo loads prodplan.Recipe values from a directory of YAML
// files, one recipe per file. It supplements the interface spec §6 leaves to
// "an external recipe repository" — the original implementation loaded the
// same shape of data out of the game's own Lua files, which has no place in
// a standalone Go module, so this loader reads plain YAML instead.
package reciperepo

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dshills/busforge/pkg/prodplan"
	"github.com/dshills/busforge/pkg/rational"
	"gopkg.in/yaml.v3"
)

// ingredientFile mirrors one YAML ingredient entry.
type ingredientFile struct {
	Name   string `yaml:"name"`
	Amount int32  `yaml:"amount"`
	Fluid  string `yaml:"fluid,omitempty"`
}

// recipeFile mirrors one YAML recipe file.
type recipeFile struct {
	Result       string           `yaml:"result"`
	ResultAmount int32            `yaml:"result_amount"`
	ResultFluid  string           `yaml:"result_fluid,omitempty"`
	Category     string           `yaml:"category"`
	CraftingTime struct {
		Num int32 `yaml:"num"`
		Den int32 `yaml:"den"`
	} `yaml:"crafting_time"`
	Ingredients []ingredientFile `yaml:"ingredients"`
}

var categoryByName = map[string]prodplan.Category{
	"assembler":    prodplan.Assembler,
	"furnace":      prodplan.Furnace,
	"centrifuge":   prodplan.Centrifuge,
	"chemical-lab": prodplan.ChemicalLab,
	"oil-refinery": prodplan.OilRefinery,
	"rocket-silo":  prodplan.RocketSilo,
}

// Load reads every "*.yaml" file directly inside dir and parses it into a
// prodplan.Recipe. Files are processed in sorted filename order so that
// Solve's ambiguous-recipe detection is deterministic across runs.
func Load(dir string) ([]prodplan.Recipe, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reciperepo: reading %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	recipes := make([]prodplan.Recipe, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reciperepo: reading %s: %w", path, err)
		}
		var rf recipeFile
		if err := yaml.Unmarshal(data, &rf); err != nil {
			return nil, fmt.Errorf("reciperepo: parsing %s: %w", path, err)
		}
		r, err := toRecipe(rf)
		if err != nil {
			return nil, fmt.Errorf("reciperepo: %s: %w", path, err)
		}
		recipes = append(recipes, r)
	}
	return recipes, nil
}

func toRecipe(rf recipeFile) (prodplan.Recipe, error) {
	cat, ok := categoryByName[rf.Category]
	if !ok {
		return prodplan.Recipe{}, fmt.Errorf("unknown category %q", rf.Category)
	}
	if rf.CraftingTime.Den == 0 {
		return prodplan.Recipe{}, fmt.Errorf("crafting_time.den must be nonzero")
	}
	ingredients := make([]prodplan.Ingredient, 0, len(rf.Ingredients))
	for _, i := range rf.Ingredients {
		ingredients = append(ingredients, prodplan.Ingredient{Name: i.Name, Amount: i.Amount, Fluid: i.Fluid})
	}
	return prodplan.Recipe{
		Results:      []prodplan.Ingredient{{Name: rf.Result, Amount: rf.ResultAmount, Fluid: rf.ResultFluid}},
		Ingredients:  ingredients,
		Category:     cat,
		CraftingTime: rational.New(rf.CraftingTime.Num, rf.CraftingTime.Den),
	}, nil
}
