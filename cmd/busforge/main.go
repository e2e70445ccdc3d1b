// Command busforge compiles a production-graph recipe set into a routed
// factory-floor blueprint: solve the production graph, lay out the bus,
// route every wire the bus placer requested, and print the result. Ported
// from the original implementation's main.rs demo driver, generalized per
// spec §6's CLI contract.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dshills/busforge/pkg/busplacer"
	"github.com/dshills/busforge/pkg/pcb"
	"github.com/dshills/busforge/pkg/prodplan"
	"github.com/dshills/busforge/pkg/rational"
	"github.com/dshills/busforge/pkg/reciperepo"
	"github.com/dshills/busforge/pkg/render"
	"github.com/dshills/busforge/pkg/routecoord"
)

const (
	defaultRecipeDir = "recipe"
	desiredItem      = "automation-science-pack"
	masterSeed       = 1
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [recipe_dir]\n", os.Args[0])
	}
	flag.Parse()

	recipeDir := defaultRecipeDir
	if flag.NArg() > 0 {
		recipeDir = flag.Arg(0)
	}

	if err := run(recipeDir); err != nil {
		fmt.Fprintf(os.Stderr, "busforge: %v\n", err)
		os.Exit(1)
	}
}

func run(recipeDir string) error {
	recipes, err := reciperepo.Load(recipeDir)
	if err != nil {
		return fmt.Errorf("load recipes: %w", err)
	}

	tree, err := prodplan.Solve(recipes, desiredItem, rational.New(3, 4))
	if err != nil {
		return fmt.Errorf("solve production graph for %s: %w", desiredItem, err)
	}

	grid := pcb.NewSparsePcb()
	wires, err := busplacer.Place(grid, tree, busplacer.DefaultInserterBonus)
	if err != nil {
		return fmt.Errorf("place bus: %w", err)
	}

	winner, err := routecoord.Run(context.Background(), grid, wires, routecoord.Options{MasterSeed: masterSeed})
	if err != nil {
		return fmt.Errorf("route: %w", err)
	}

	fmt.Println(render.ASCII(winner))

	bp, err := render.Blueprint(winner)
	if err != nil {
		return fmt.Errorf("encode blueprint: %w", err)
	}
	fmt.Println(bp)

	return nil
}
