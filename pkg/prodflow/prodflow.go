// Package prodflow implements spec §4.2: flattening a recursive
// prodplan.ProductionGraph tree into a DAG of (item, recipe) nodes with
// accumulated per-edge throughput, a topological order, and the set of
// global (no-incoming-edge) inputs. Structurally grounded in the teacher's
// own graph package (pkg/graph/graph.go): a node/adjacency map built up
// through validating Add calls, walked afterward by a separate ordering
// pass — generalized here from rooms-and-connectors to items-and-recipes.
package prodflow

import (
	"fmt"
	"sort"

	"github.com/dshills/busforge/pkg/prodplan"
	"github.com/dshills/busforge/pkg/rational"
)

// Output is the synthetic sink node every terminal edge points to,
// representing the plan's external output belt.
const Output = "<output>"

// Edge accumulates every production requirement one (from, to) item pair
// carries: how many assemblers total and the resulting items/second, summed
// across every place the pair occurs in the original tree (the same recipe
// can be demanded by more than one downstream consumer).
type Edge struct {
	NumAssemblers int32
	ItemsPerSecond rational.Rational
}

// FlowGraph is the flattened DAG prodflow.Flatten builds.
type FlowGraph struct {
	nodes    map[string]bool
	building map[string]*prodplan.Category
	edges    map[string]map[string]*Edge // edges[from][to]
	order    []string                    // insertion order, for determinism
}

func newFlowGraph() *FlowGraph {
	return &FlowGraph{
		nodes:    make(map[string]bool),
		building: make(map[string]*prodplan.Category),
		edges:    make(map[string]map[string]*Edge),
	}
}

func (g *FlowGraph) addNode(name string, building *prodplan.Category) {
	if !g.nodes[name] {
		g.nodes[name] = true
		g.order = append(g.order, name)
	}
	if building != nil {
		g.building[name] = building
	}
}

func (g *FlowGraph) addEdge(from, to string, numAssemblers int32, rate rational.Rational) {
	if g.edges[from] == nil {
		g.edges[from] = make(map[string]*Edge)
	}
	e, ok := g.edges[from][to]
	if !ok {
		g.edges[from][to] = &Edge{NumAssemblers: numAssemblers, ItemsPerSecond: rate}
		return
	}
	e.NumAssemblers += numAssemblers
	e.ItemsPerSecond = e.ItemsPerSecond.Add(rate)
}

// Building returns the crafting category for item, if any.
func (g *FlowGraph) Building(item string) (prodplan.Category, bool) {
	c, ok := g.building[item]
	if !ok {
		return 0, false
	}
	return *c, true
}

// Edge returns the accumulated edge from -> to, if one exists.
func (g *FlowGraph) Edge(from, to string) (Edge, bool) {
	m, ok := g.edges[from]
	if !ok {
		return Edge{}, false
	}
	e, ok := m[to]
	if !ok {
		return Edge{}, false
	}
	return *e, true
}

// Successors returns the items that consume item's output, in deterministic
// order.
func (g *FlowGraph) Successors(item string) []string {
	m := g.edges[item]
	out := make([]string, 0, len(m))
	for to := range m {
		out = append(out, to)
	}
	sort.Strings(out)
	return out
}

// GlobalInputs returns every node with no incoming edge: raw materials
// supplied from outside the factory.
func (g *FlowGraph) GlobalInputs() []string {
	hasIncoming := make(map[string]bool)
	for _, m := range g.edges {
		for to := range m {
			hasIncoming[to] = true
		}
	}
	var out []string
	for _, n := range g.order {
		if n == Output {
			continue
		}
		if !hasIncoming[n] {
			out = append(out, n)
		}
	}
	return out
}

// TopoOrder returns nodes in topological order (producers before
// consumers), breaking ties by node name for determinism. It returns an error if the graph contains a cycle, which
// cannot happen for a tree flattened from a well-formed ProductionGraph but
// is checked defensively since the flattening walk is otherwise silent
// about malformed input.
func (g *FlowGraph) TopoOrder() ([]string, error) {
	indegree := make(map[string]int, len(g.nodes))
	for n := range g.nodes {
		indegree[n] = 0
	}
	for _, m := range g.edges {
		for to := range m {
			indegree[to]++
		}
	}
	var ready []string
	for _, n := range g.order {
		if indegree[n] == 0 {
			ready = append(ready, n)
		}
	}
	sort.Strings(ready)

	var out []string
	for len(ready) > 0 {
		n := ready[0]
		ready = ready[1:]
		out = append(out, n)
		var newlyReady []string
		for to := range g.edges[n] {
			indegree[to]--
			if indegree[to] == 0 {
				newlyReady = append(newlyReady, to)
			}
		}
		sort.Strings(newlyReady)
		ready = append(ready, newlyReady...)
		sort.Strings(ready)
	}
	if len(out) != len(g.nodes) {
		return nil, fmt.Errorf("prodflow: cycle detected among %d unresolved nodes", len(g.nodes)-len(out))
	}
	return out, nil
}

// Flatten walks a prodplan.ProductionGraph tree into a FlowGraph, merging
// repeated (item, recipe) demands into single accumulated edges and
// attaching a synthetic Output sink edge from the tree's root.
func Flatten(root *prodplan.ProductionGraph) (*FlowGraph, error) {
	if root == nil {
		return nil, fmt.Errorf("prodflow: nil production graph")
	}
	g := newFlowGraph()
	g.addNode(Output, nil)
	var walk func(node *prodplan.ProductionGraph)
	walk = func(node *prodplan.ProductionGraph) {
		g.addNode(node.Output, node.Building)
		for _, in := range node.Inputs {
			g.addNode(in.Output, in.Building)
			g.addEdge(in.Output, node.Output, int32(in.HowMany.Ceil()), in.PerSecond)
			walk(in)
		}
	}
	walk(root)
	g.addEdge(root.Output, Output, int32(root.HowMany.Ceil()), root.PerSecond)
	return g, nil
}
