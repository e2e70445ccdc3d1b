package prodplan

import (
	"errors"
	"fmt"

	"github.com/dshills/busforge/pkg/rational"
)

// ErrAmbiguousRecipe is returned when more than one recipe in the supplied
// set produces the same single output item, since Solve has no way to pick
// between them.
var ErrAmbiguousRecipe = errors.New("prodplan: more than one recipe produces the desired item")

func errUnsupportedCategory(c Category) error {
	return fmt.Errorf("prodplan: crafting speed not implemented for category %s", c)
}

// Solve is a direct port of the original implementation's recursive
// "kirkmcdonald" rate propagation, upgraded to exact Rational arithmetic
// throughout (the original used f64) so throughput never drifts across a
// deep ingredient tree. It finds the single recipe producing desired,
// computes how many concurrent buildings are needed to hit desiredPerSecond,
// and recurses into every ingredient at the rate that recipe demands.
//
// A desired item with no producing recipe becomes a leaf ProductionGraph
// with Building == nil: a raw/external input to the whole plan.
func Solve(recipes []Recipe, desired string, desiredPerSecond rational.Rational) (*ProductionGraph, error) {
	var found *Recipe
	for i := range recipes {
		r := &recipes[i]
		if len(r.Results) != 1 || r.Results[0].Name != desired {
			continue
		}
		if found != nil {
			return nil, ErrAmbiguousRecipe
		}
		found = r
	}

	if found == nil {
		return &ProductionGraph{
			Output:    desired,
			PerSecond: desiredPerSecond,
			HowMany:   rational.Zero,
			Building:  nil,
		}, nil
	}

	resultAmount := found.Results[0].Amount
	resultsPerSecond, err := rational.FromInt(resultAmount).Div(found.CraftingTime)
	if err != nil {
		return nil, fmt.Errorf("prodplan: recipe for %q has zero crafting time: %w", desired, err)
	}
	howManyConcurrents, err := desiredPerSecond.Div(resultsPerSecond)
	if err != nil {
		return nil, fmt.Errorf("prodplan: recipe for %q produces zero per second: %w", desired, err)
	}
	baseSpeed, err := found.Category.baseCraftingSpeed()
	if err != nil {
		return nil, err
	}
	howMany, err := howManyConcurrents.Div(baseSpeed)
	if err != nil {
		return nil, fmt.Errorf("prodplan: %q: %w", desired, err)
	}

	inputs := make([]*ProductionGraph, 0, len(found.Ingredients))
	for _, ing := range found.Ingredients {
		ingredientRate, err := desiredPerSecond.Mul(rational.FromInt(ing.Amount)).Div(rational.FromInt(resultAmount))
		if err != nil {
			return nil, fmt.Errorf("prodplan: recipe for %q has zero result amount: %w", desired, err)
		}
		child, err := Solve(recipes, ing.Name, ingredientRate)
		if err != nil {
			return nil, err
		}
		child.Fluid = ing.Fluid
		inputs = append(inputs, child)
	}

	category := found.Category
	return &ProductionGraph{
		Output:    desired,
		PerSecond: desiredPerSecond,
		HowMany:   howMany,
		Building:  &category,
		Inputs:    inputs,
	}, nil
}
