package ratetable

import (
	"fmt"

	"github.com/dshills/busforge/pkg/pcb"
	"github.com/dshills/busforge/pkg/rational"
)

// PartitionInputs splits a bus node's distinct input lanes into a primary
// set (fed by the node's main inserter) and a secondary set (fed by a single
// long-handed inserter), per spec §4.3.3. It returns the index set chosen
// for the secondary lane: among all combinations of size len(rates)-2 whose
// summed throughput does not exceed the long-handed inserter's rated
// throughput at bonus, the one with the largest sum, breaking ties by
// lexicographic order. It returns an error when no such combination fits
// under the bound. rates must have at least 3 entries; callers with 2
// or fewer inputs never call this, since both fit on the primary lane
// directly.
func PartitionInputs(rates []rational.Rational, bonus int) ([]int, error) {
	longHanded, err := RatedThroughput(pcb.InserterLongHanded, bonus)
	if err != nil {
		return nil, err
	}
	n := len(rates)
	k := n - 2
	combo := make([]int, k)
	for i := range combo {
		combo[i] = i
	}

	var best []int
	var bestSum rational.Rational
	haveBest := false
	for {
		sum := rational.Zero
		for _, idx := range combo {
			sum = sum.Add(rates[idx])
		}
		if sum.Cmp(longHanded) <= 0 && (!haveBest || sum.Cmp(bestSum) > 0) {
			best = append([]int(nil), combo...)
			bestSum = sum
			haveBest = true
		}
		if !nextCombination(combo, n) {
			break
		}
	}
	if haveBest {
		return best, nil
	}
	// No combination fits: the secondary lane would be over-saturated,
	// which is an infeasible layout.
	return nil, fmt.Errorf("ratetable: no %d-input secondary lane fits the long-handed inserter's rated throughput %v at bonus %d", k, longHanded, bonus)
}

func nextCombination(combo []int, n int) bool {
	k := len(combo)
	i := k - 1
	for i >= 0 && combo[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	combo[i]++
	for j := i + 1; j < k; j++ {
		combo[j] = combo[j-1] + 1
	}
	return true
}
