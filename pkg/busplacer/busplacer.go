// Package busplacer implements spec §4.3: the bus placer. It consumes a
// flattened production flow (pkg/prodflow) and lays out one column of
// assemblers per recipe along a fixed-stride bus, emitting the entity
// footprint for every column plus the NeededWire requests the router must
// later satisfy. Ported from the original implementation's
// placement/bus.rs, generalized from a single hardcoded Rust struct walk
// into Go types built on pkg/prodflow and pkg/ratetable.
package busplacer

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/dshills/busforge/pkg/pcb"
	"github.com/dshills/busforge/pkg/prodflow"
	"github.com/dshills/busforge/pkg/prodplan"
	"github.com/dshills/busforge/pkg/ratetable"
	"github.com/dshills/busforge/pkg/rational"
)

// DefaultInserterBonus is the capacity-bonus research level spec §8's
// end-to-end scenarios assume (inserter capacity bonus 7, the original's
// own `Constants::default()`). Callers that haven't researched inserter
// capacity bonuses yet can pass 0 or 2 directly to Place instead.
const DefaultInserterBonus = 7

// laneThroughput is the belt tier the bus runs on. Only NormalBelt is
// exercised by the supplied recipe set; ratetable.BeltTier makes upgrading
// the whole bus to Fast or Express a one-line change.
var laneThroughput = ratetable.NormalBelt.LaneThroughput()

var colVec = pcb.Vector{X: 12, Y: 0}
var tileVec = pcb.Vector{X: 0, Y: 4}

// kindOf reports the WireKind a given item should travel in: Pipe if any
// occurrence in the tree named a fluid, Belt otherwise.
func kindOf(item string, fluidByItem map[string]string) pcb.WireKind {
	if f, ok := fluidByItem[item]; ok && f != "" {
		return pcb.PipeWire(f)
	}
	return pcb.BeltWire
}

func collectFluids(node *prodplan.ProductionGraph, out map[string]string) {
	if node.Fluid != "" {
		out[node.Output] = node.Fluid
	} else if _, ok := out[node.Output]; !ok {
		out[node.Output] = ""
	}
	for _, in := range node.Inputs {
		collectFluids(in, out)
	}
}

func buildingFunction(item string, cat prodplan.Category) (pcb.Function, error) {
	switch cat {
	case prodplan.Assembler:
		return pcb.Assembler{Recipe: item}, nil
	case prodplan.Furnace:
		return pcb.Furnace{}, nil
	default:
		return nil, fmt.Errorf("busplacer: unsupported building category %s for %q", cat, item)
	}
}

// busNode is the per-recipe layout plan, ported from the original's
// BusNode.
type busNode struct {
	maxAssemblersPerUnit int
	numAssemblersTotal   rational.Rational
	itemsOutPerAssembler rational.Rational
	itemsInPerAssembler  map[string]rational.Rational
	inputOrder           []string // deterministic iteration order over itemsInPerAssembler
	pipeInput            string   // empty if none
	primaryInserter      pcb.InserterKind
	secondaryInserter    pcb.InserterKind
}

// units yields, in order, the assembler count for each sub-column this node
// must be split into when num_assemblers_total exceeds maxAssemblersPerUnit.
func (n busNode) units() []int {
	var out []int
	remaining := n.numAssemblersTotal
	mapu := rational.FromInt(int32(n.maxAssemblersPerUnit))
	for !remaining.IsZero() {
		var take rational.Rational
		if remaining.Cmp(mapu) < 0 {
			take = remaining
		} else {
			take = mapu
		}
		out = append(out, int(take.Ceil()))
		remaining = remaining.Sub(take)
	}
	return out
}

func (n busNode) numDistinctInputs() int {
	return len(n.inputOrder)
}

// Place runs the bus placer: it lays out every recipe node from tree onto
// pcb at the given inserter capacity bonus and returns the wiring requests
// the routing coordinator must satisfy to connect them.
func Place(p pcb.Pcb, tree *prodplan.ProductionGraph, bonus int) ([]pcb.NeededWire, error) {
	var neededWires []pcb.NeededWire

	flow, err := prodflow.Flatten(tree)
	if err != nil {
		return nil, err
	}
	fluidByItem := make(map[string]string)
	collectFluids(tree, fluidByItem)

	order, err := flow.TopoOrder()
	if err != nil {
		return nil, err
	}
	globalInputs := flow.GlobalInputs()
	globalInputSet := make(map[string]bool, len(globalInputs))
	for _, g := range globalInputs {
		globalInputSet[g] = true
	}
	// order, excluding global inputs and the synthetic sink, in topological
	// sequence — this is what actually gets a bus column.
	var recipeOrder []string
	for _, n := range order {
		if n == prodflow.Output || globalInputSet[n] {
			continue
		}
		recipeOrder = append(recipeOrder, n)
	}

	availableOutputs := make(map[string][]pcb.Point)

	const gapUpper = -10
	inputXOffset := 5
	for _, input := range globalInputs {
		kind := kindOf(input, fluidByItem)
		totalInstancesNeeded := 0
		for _, consumer := range flow.Successors(input) {
			e, _ := flow.Edge(input, consumer)
			lanes, err := e.ItemsPerSecond.Div(laneThroughput)
			if err != nil {
				return nil, err
			}
			totalInstancesNeeded += int(lanes.Ceil())
		}
		if totalInstancesNeeded == 0 {
			totalInstancesNeeded = 1
		}
		base := pcb.Vector{X: inputXOffset, Y: gapUpper}
		for i := 1; i < totalInstancesNeeded; i++ {
			for j := 0; j < totalInstancesNeeded-2; j++ {
				p.Add(pcb.Entity{Location: pcb.Point{X: j, Y: -i}.Add(base), Function: pcb.Belt{Dir: pcb.Down}})
			}
			p.Add(pcb.Entity{Location: pcb.Point{X: totalInstancesNeeded - 2, Y: -i - 1}.Add(base), Function: pcb.Splitter{Dir: pcb.Down}})
			p.Add(pcb.Entity{Location: pcb.Point{X: totalInstancesNeeded - 2, Y: -i}.Add(base), Function: pcb.Belt{Dir: pcb.Down}})
			p.Add(pcb.Entity{Location: pcb.Point{X: totalInstancesNeeded - 1, Y: -i}.Add(base), Function: pcb.Belt{Dir: pcb.Down}})
		}
		if totalInstancesNeeded == 1 {
			p.Add(pcb.Entity{Location: pcb.Point{X: 0, Y: -totalInstancesNeeded}.Add(base), Function: pcb.Belt{Dir: pcb.Down}})
		}
		inputName := input
		if kind.Pipe {
			inputName = input + "-barrel"
		}
		p.Add(pcb.Entity{Location: pcb.Point{X: 0, Y: -totalInstancesNeeded - 1}.Add(base), Function: pcb.InputMarker{Item: inputName}})
		p.Add(pcb.Entity{Location: pcb.Point{X: 0, Y: -totalInstancesNeeded - 2}.Add(base), Function: pcb.Belt{Dir: pcb.Down}})

		outs := make([]pcb.Point, 0, totalInstancesNeeded)
		for i := 0; i < totalInstancesNeeded; i++ {
			outs = append(outs, pcb.Point{X: i, Y: -1}.Add(base))
		}
		availableOutputs[input] = outs

		inputXOffset += totalInstancesNeeded + 2
	}

	globalOutputPoint := pcb.Point{X: 0, Y: -1}.Add(pcb.Vector{X: inputXOffset, Y: gapUpper})
	p.Add(pcb.Entity{Location: globalOutputPoint, Function: pcb.Belt{Dir: pcb.Up}})
	p.Add(pcb.Entity{Location: globalOutputPoint.Add(pcb.Vector{X: 0, Y: -1}), Function: pcb.Belt{Dir: pcb.Up}})
	p.Add(pcb.Entity{Location: globalOutputPoint.Add(pcb.Vector{X: 0, Y: -2}), Function: pcb.Belt{Dir: pcb.Up}})

	busNodes := make(map[string]busNode, len(recipeOrder)+1)
	functions := make(map[string]pcb.Function, len(recipeOrder))
	for _, recipe := range recipeOrder {
		cat, _ := flow.Building(recipe)
		fn, err := buildingFunction(recipe, cat)
		if err != nil {
			return nil, err
		}
		functions[recipe] = fn

		var beltInputs []string
		pipeInput := ""
		for _, in := range incomingOf(flow, order, recipe) {
			if kindOf(in, fluidByItem).Pipe {
				pipeInput = in
			} else {
				beltInputs = append(beltInputs, in)
			}
		}
		sort.Strings(beltInputs)

		howmanyExact := rational.Zero
		for _, out := range flow.Successors(recipe) {
			e, _ := flow.Edge(recipe, out)
			howmanyExact = howmanyExact.Add(rational.FromInt(e.NumAssemblers))
		}
		if howmanyExact.IsZero() {
			return nil, fmt.Errorf("busplacer: recipe %q has no downstream consumer", recipe)
		}

		itemsIn := make(map[string]rational.Rational, len(beltInputs))
		inMax := rational.Zero
		first := true
		for _, in := range beltInputs {
			e, _ := flow.Edge(in, recipe)
			rate, err := e.ItemsPerSecond.Div(howmanyExact)
			if err != nil {
				return nil, err
			}
			itemsIn[in] = rate
			if first || rate.Cmp(inMax) > 0 {
				inMax = rate
				first = false
			}
		}

		var outThroughput rational.Rational
		if succ := flow.Successors(recipe); len(succ) > 0 {
			e, _ := flow.Edge(recipe, succ[0])
			rate, err := e.ItemsPerSecond.Div(rational.FromInt(e.NumAssemblers))
			if err != nil {
				return nil, err
			}
			outThroughput = rate
		}

		ioMax := inMax
		if outThroughput.Cmp(ioMax) > 0 {
			ioMax = outThroughput
		}
		mapu, err := laneThroughput.Div(ioMax)
		if err != nil {
			return nil, err
		}
		if mapu.Cmp(rational.FromInt(1)) < 0 {
			return nil, fmt.Errorf("busplacer: one assembler of %q produces more than one lane can carry", recipe)
		}

		primaryInserter, err := ratetable.SelectInserter(ioMax, bonus)
		if err != nil {
			return nil, err
		}
		secondaryInserter := primaryInserter
		if pipeInput == "" && len(beltInputs) > 2 {
			secondaryInserter = pcb.InserterLongHanded
		}

		busNodes[recipe] = busNode{
			maxAssemblersPerUnit: int(mapu.Floor()),
			numAssemblersTotal:   howmanyExact,
			itemsOutPerAssembler: outThroughput,
			itemsInPerAssembler:  itemsIn,
			inputOrder:           beltInputs,
			pipeInput:            pipeInput,
			primaryInserter:      primaryInserter,
			secondaryInserter:    secondaryInserter,
		}
	}
	busNodes[prodflow.Output] = busNode{
		maxAssemblersPerUnit: 1,
		numAssemblersTotal:   rational.FromInt(1),
		itemsOutPerAssembler: rational.Zero,
		itemsInPerAssembler:  map[string]rational.Rational{tree.Output: rational.Zero},
		inputOrder:           []string{tree.Output},
		primaryInserter:      pcb.InserterNormal,
		secondaryInserter:    pcb.InserterNormal,
	}

	colsCounter := 0
	for _, recipe := range recipeOrder {
		node := busNodes[recipe]
		ox := 0
		if node.pipeInput != "" {
			ox = 1
		}

		// When a node has more than two distinct belt inputs, the extra ones
		// ride a single long-handed inserter on a secondary lane: pick which
		// inputs go there via the largest-summed-throughput combination that
		// inserter can still keep up with.
		orderedInputs := node.inputOrder
		if len(node.inputOrder) > 2 {
			rates := make([]rational.Rational, len(node.inputOrder))
			for i, in := range node.inputOrder {
				rates[i] = node.itemsInPerAssembler[in]
			}
			secondaryIdx, err := ratetable.PartitionInputs(rates, bonus)
			if err != nil {
				return nil, err
			}
			isSecondary := make(map[int]bool, len(secondaryIdx))
			for _, idx := range secondaryIdx {
				isSecondary[idx] = true
			}
			primary := lo.Filter(node.inputOrder, func(_ string, i int) bool { return !isSecondary[i] })
			secondary := lo.Filter(node.inputOrder, func(_ string, i int) bool { return isSecondary[i] })
			orderedInputs = append(primary, secondary...)
		}

		var consumers []rational.Rational
		for _, out := range flow.Successors(recipe) {
			consumerNode := busNodes[out]
			for _, units := range consumerNode.units() {
				if rate, ok := consumerNode.itemsInPerAssembler[recipe]; ok {
					consumers = append(consumers, rate.Mul(rational.FromInt(int32(units))))
				}
			}
		}
		sort.Slice(consumers, func(i, j int) bool { return consumers[i].Cmp(consumers[j]) < 0 })

		type outputCarry struct {
			end  pcb.Point
			flow rational.Rational
		}
		var carry *outputCarry

		for _, howmanyTotal := range node.units() {
			colStart := pcb.Point{}.Add(colVec.Scale(colsCounter))

			for i := 0; i < howmanyTotal; i++ {
				tileStart := colStart.Add(tileVec.Scale(i))
				if node.numDistinctInputs() > 2 {
					p.Add(pcb.Entity{Location: pcb.Point{X: 0, Y: 0}.Add(asVec(tileStart)), Function: pcb.Belt{Dir: pcb.Down}})
					p.Add(pcb.Entity{Location: pcb.Point{X: 0, Y: 1}.Add(asVec(tileStart)), Function: pcb.Belt{Dir: pcb.Down}})
					p.Add(pcb.Entity{Location: pcb.Point{X: 0, Y: 2}.Add(asVec(tileStart)), Function: pcb.Belt{Dir: pcb.Down}})
					p.Add(pcb.Entity{Location: pcb.Point{X: 0, Y: 3}.Add(asVec(tileStart)), Function: pcb.Belt{Dir: pcb.Down}})
					p.Add(pcb.Entity{Location: pcb.Point{X: 2, Y: 1}.Add(asVec(tileStart)), Function: pcb.Inserter{Orientation: pcb.Right, Kind: pcb.InserterLongHanded}})
				}
				p.Add(pcb.Entity{Location: pcb.Point{X: 1, Y: 0}.Add(asVec(tileStart)), Function: pcb.Belt{Dir: pcb.Down}})
				p.Add(pcb.Entity{Location: pcb.Point{X: 1, Y: 1}.Add(asVec(tileStart)), Function: pcb.Belt{Dir: pcb.Down}})
				p.Add(pcb.Entity{Location: pcb.Point{X: 1, Y: 2}.Add(asVec(tileStart)), Function: pcb.Belt{Dir: pcb.Down}})
				p.Add(pcb.Entity{Location: pcb.Point{X: 1, Y: 3}.Add(asVec(tileStart)), Function: pcb.Belt{Dir: pcb.Down}})
				p.Add(pcb.Entity{Location: pcb.Point{X: 7 + ox, Y: 0}.Add(asVec(tileStart)), Function: pcb.Belt{Dir: pcb.Up}})
				p.Add(pcb.Entity{Location: pcb.Point{X: 7 + ox, Y: 1}.Add(asVec(tileStart)), Function: pcb.Belt{Dir: pcb.Up}})
				p.Add(pcb.Entity{Location: pcb.Point{X: 7 + ox, Y: 2}.Add(asVec(tileStart)), Function: pcb.Belt{Dir: pcb.Up}})
				p.Add(pcb.Entity{Location: pcb.Point{X: 7 + ox, Y: 3}.Add(asVec(tileStart)), Function: pcb.Belt{Dir: pcb.Up}})

				secondaryKind := node.secondaryInserter
				if node.pipeInput != "" {
					secondaryKind = pcb.InserterLongHanded
				}
				p.Add(pcb.Entity{Location: pcb.Point{X: 2, Y: 2}.Add(asVec(tileStart)), Function: pcb.Inserter{Orientation: pcb.Right, Kind: node.primaryInserter}})
				p.Add(pcb.Entity{Location: pcb.Point{X: 6, Y: 2}.Add(asVec(tileStart)), Function: pcb.Inserter{Orientation: pcb.Right, Kind: secondaryKind}})
				p.Add(pcb.Entity{Location: pcb.Point{X: 3, Y: 0}.Add(asVec(tileStart)), Function: functions[recipe]})
				p.Add(pcb.Entity{Location: pcb.Point{X: 2, Y: 3}.Add(asVec(tileStart)), Function: pcb.ElectricPole{}})
				p.Add(pcb.Entity{Location: pcb.Point{X: 6, Y: 3}.Add(asVec(tileStart)), Function: pcb.ElectricPole{}})

				if node.pipeInput != "" {
					p.Add(pcb.Entity{Location: pcb.Point{X: 7, Y: 0}.Add(asVec(tileStart)), Function: pcb.Pipe{Fluid: node.pipeInput}})
					p.Add(pcb.Entity{Location: pcb.Point{X: 7, Y: 1}.Add(asVec(tileStart)), Function: pcb.Pipe{Fluid: node.pipeInput}})
					p.Add(pcb.Entity{Location: pcb.Point{X: 6, Y: 1}.Add(asVec(tileStart)), Function: pcb.Pipe{Fluid: node.pipeInput}})
					p.Add(pcb.Entity{Location: pcb.Point{X: 7, Y: 2}.Add(asVec(tileStart)), Function: pcb.Pipe{Fluid: node.pipeInput}})
					p.Add(pcb.Entity{Location: pcb.Point{X: 7, Y: 3}.Add(asVec(tileStart)), Function: pcb.Pipe{Fluid: node.pipeInput}})
				}
			}

			var inputPoints []pcb.Point
			if node.numDistinctInputs() > 1 {
				p.Replace(pcb.Entity{Location: pcb.Point{X: 0, Y: 0}.Add(asVec(colStart)), Function: pcb.Belt{Dir: pcb.Right}})
				p.Replace(pcb.Entity{Location: pcb.Point{X: 2, Y: 0}.Add(asVec(colStart)), Function: pcb.Belt{Dir: pcb.Left}})
				inputPoints = []pcb.Point{{X: 0, Y: 0}, {X: 2, Y: 0}}
				if node.numDistinctInputs() > 2 {
					lastTile := colStart.Add(tileVec.Scale(howmanyTotal - 1))
					p.Replace(pcb.Entity{Location: pcb.Point{X: 0, Y: 3}.Add(asVec(lastTile)), Function: pcb.Belt{Dir: pcb.Up}})
					if node.numDistinctInputs() > 3 {
						p.Replace(pcb.Entity{Location: pcb.Point{X: -1, Y: 0}.Add(asVec(colStart)), Function: pcb.Belt{Dir: pcb.Down}})
						p.Replace(pcb.Entity{Location: pcb.Point{X: -1, Y: 1}.Add(asVec(colStart)), Function: pcb.Belt{Dir: pcb.Right}})
						p.Replace(pcb.Entity{Location: pcb.Point{X: -1, Y: 2}.Add(asVec(colStart)), Function: pcb.Belt{Dir: pcb.Up}})
						inputPoints = append(inputPoints, pcb.Point{X: -1, Y: 0}, pcb.Point{X: -1, Y: 2})
					} else {
						inputPoints = append(inputPoints, pcb.Point{X: 0, Y: 1})
					}
				}
			} else {
				inputPoints = []pcb.Point{{X: 1, Y: 0}}
			}

			for i, inputName := range orderedInputs {
				if i >= len(inputPoints) {
					break
				}
				outs, ok := availableOutputs[inputName]
				if !ok || len(outs) == 0 {
					continue
				}
				from := outs[len(outs)-1]
				availableOutputs[inputName] = outs[:len(outs)-1]
				neededWires = append(neededWires, pcb.NeededWire{
					From: from,
					To:   inputPoints[i].Add(asVec(colStart)),
					Kind: kindOf(inputName, fluidByItem),
				})
			}
			if node.pipeInput != "" {
				if outs, ok := availableOutputs[node.pipeInput]; ok && len(outs) > 0 {
					from := outs[len(outs)-1]
					availableOutputs[node.pipeInput] = outs[:len(outs)-1]
					neededWires = append(neededWires, pcb.NeededWire{
						From: from,
						To:   pcb.Point{X: 7, Y: 0}.Add(asVec(colStart)),
						Kind: pcb.PipeWire(node.pipeInput),
					})
				}
			}

			lastTile := colStart.Add(tileVec.Scale(howmanyTotal - 1))
			p.Replace(pcb.Entity{Location: pcb.Point{X: 1, Y: 3}.Add(asVec(lastTile)), Function: pcb.Belt{Dir: pcb.Up}})

			flowOut := node.itemsOutPerAssembler.Mul(rational.FromInt(int32(howmanyTotal)))
			if carry != nil {
				to := pcb.Point{X: 9 + ox, Y: 0}.Add(asVec(colStart))
				neededWires = append(neededWires, pcb.NeededWire{From: carry.end, To: to, Kind: pcb.BeltWire})
				p.Add(pcb.Entity{Location: to, Function: pcb.Belt{Dir: pcb.Down}})
				flowOut = flowOut.Add(carry.flow)
			}

			numOutputPaths := 0
			for len(consumers) > 0 {
				last := consumers[len(consumers)-1]
				if last.Cmp(flowOut) <= 0 {
					consumers = consumers[:len(consumers)-1]
					flowOut = flowOut.Sub(last)
					numOutputPaths++
				} else {
					break
				}
			}
			if len(consumers) > 0 {
				numOutputPaths++
			}
			if numOutputPaths == 0 {
				numOutputPaths = 1
			}

			p.Replace(pcb.Entity{Location: pcb.Point{X: 7 + ox, Y: 0}.Add(asVec(colStart)), Function: pcb.Belt{Dir: pcb.Right}})
			p.Add(pcb.Entity{Location: pcb.Point{X: 8 + ox, Y: 0}.Add(asVec(colStart)), Function: pcb.Belt{Dir: pcb.Down}})

			var outputNodes []pcb.Point
			for i := 1; i < numOutputPaths; i++ {
				tileStart := colStart.Add(pcb.Vector{X: 8 + ox, Y: i*2 - 1})
				p.Add(pcb.Entity{Location: pcb.Point{X: 0, Y: 0}.Add(asVec(tileStart)), Function: pcb.Splitter{Dir: pcb.Down}})
				p.Add(pcb.Entity{Location: pcb.Point{X: 0, Y: 1}.Add(asVec(tileStart)), Function: pcb.Belt{Dir: pcb.Down}})
				p.Add(pcb.Entity{Location: pcb.Point{X: 1, Y: 1}.Add(asVec(tileStart)), Function: pcb.Belt{Dir: pcb.Right}})
				outputNodes = append(outputNodes, pcb.Point{X: 1, Y: 1}.Add(asVec(tileStart)))
			}
			p.Add(pcb.Entity{Location: pcb.Point{X: 8 + ox, Y: numOutputPaths*2 - 1}.Add(asVec(colStart)), Function: pcb.Belt{Dir: pcb.Right}})
			p.Add(pcb.Entity{Location: pcb.Point{X: 9 + ox, Y: numOutputPaths*2 - 1}.Add(asVec(colStart)), Function: pcb.Belt{Dir: pcb.Right}})
			defaultOutPoint := pcb.Point{X: 9 + ox, Y: numOutputPaths*2 - 1}.Add(asVec(colStart))

			if flowOut.Cmp(rational.Zero) > 0 && len(consumers) > 0 {
				carry = &outputCarry{end: defaultOutPoint, flow: flowOut}
			} else {
				outputNodes = append(outputNodes, defaultOutPoint)
				carry = nil
			}

			for i, j := 0, len(outputNodes)-1; i < j; i, j = i+1, j-1 {
				outputNodes[i], outputNodes[j] = outputNodes[j], outputNodes[i]
			}
			availableOutputs[recipe] = append(availableOutputs[recipe], outputNodes...)

			colsCounter++
		}
		if len(consumers) != 0 {
			return nil, fmt.Errorf("busplacer: recipe %q left %d consumer(s) unsatisfied", recipe, len(consumers))
		}
	}

	if outs, ok := availableOutputs[tree.Output]; ok && len(outs) > 0 {
		from := outs[len(outs)-1]
		neededWires = append(neededWires, pcb.NeededWire{From: from, To: globalOutputPoint, Kind: pcb.BeltWire})
	}

	return neededWires, nil
}

// asVec reinterprets a grid anchor as the displacement from the origin, so
// a column/tile anchor point can itself be used as the offset for a further
// Point.Add.
func asVec(p pcb.Point) pcb.Vector {
	return pcb.Vector{X: p.X, Y: p.Y}
}

// incomingOf returns the predecessors of node in topological order among
// order, filtered to those with an edge into node.
func incomingOf(flow *prodflow.FlowGraph, order []string, node string) []string {
	var out []string
	for _, candidate := range order {
		if candidate == node {
			continue
		}
		if _, ok := flow.Edge(candidate, node); ok {
			out = append(out, candidate)
		}
	}
	return out
}
