package pokedex

import (
	"errors"
	"sort"

	"pokedex/internal/model"
)

var ErrSpeciesNotFound = errors.New("species not found")

// EvolutionNode is one stage of an evolution tree.
type EvolutionNode struct {
	Species   model.Species    `json:"species"`
	EvolvesTo []*EvolutionNode `json:"evolves_to"`
}

// Stage is a flattened tree node with its depth from the root (root = 0).
type Stage struct {
	Species model.Species `json:"species"`
	Depth   int           `json:"depth"`
}

// BuildEvolutionChain builds the evolution tree containing number.
//
// The root is reached by following EvolvesFrom links up from number inside the chain, so the tree
// always contains number. Broken links never loop: a reference outside the chain ends the walk, a
// cycle starts from its lowest national number, and each species is visited once.
func BuildEvolutionChain(species []model.Species, number int) (*EvolutionNode, error) {
	var target *model.Species
	for i := range species {
		if species[i].Number == number {
			target = &species[i]
			break
		}
	}
	if target == nil {
		return nil, ErrSpeciesNotFound
	}

	members := make(map[int]model.Species)
	for _, s := range species {
		if s.EvolutionChainID == target.EvolutionChainID {
			members[s.Number] = s
		}
	}
	// A species without a chain ID stands alone.
	if target.EvolutionChainID == 0 {
		members = map[int]model.Species{target.Number: *target}
	}

	children := make(map[int][]int)
	parent := make(map[int]int)
	for n, s := range members {
		if s.EvolvesFrom == nil {
			continue
		}
		if _, ok := members[*s.EvolvesFrom]; ok && *s.EvolvesFrom != n {
			children[*s.EvolvesFrom] = append(children[*s.EvolvesFrom], n)
			parent[n] = *s.EvolvesFrom
		}
	}
	root := findRoot(target.Number, parent)
	for k := range children {
		sort.Ints(children[k])
	}

	visited := make(map[int]bool, len(members))
	var build func(n int) *EvolutionNode
	build = func(n int) *EvolutionNode {
		visited[n] = true
		node := &EvolutionNode{Species: members[n], EvolvesTo: []*EvolutionNode{}}
		for _, c := range children[n] {
			if visited[c] {
				continue
			}
			node.EvolvesTo = append(node.EvolvesTo, build(c))
		}
		return node
	}
	return build(root), nil
}

// findRoot walks up from number through in-chain parents. When the walk enters a cycle the lowest
// number of that cycle becomes the root, so the tree built from it still reaches number.
func findRoot(number int, parent map[int]int) int {
	seen := map[int]int{}
	var path []int
	n := number
	for {
		if i, ok := seen[n]; ok {
			root := path[i]
			for _, m := range path[i:] {
				if m < root {
					root = m
				}
			}
			return root
		}
		seen[n] = len(path)
		path = append(path, n)
		p, ok := parent[n]
		if !ok {
			return n
		}
		n = p
	}
}

// Flatten walks the tree breadth-first.
func Flatten(root *EvolutionNode) []Stage {
	if root == nil {
		return nil
	}
	type item struct {
		node  *EvolutionNode
		depth int
	}
	var out []Stage
	queue := []item{{root, 0}}
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		out = append(out, Stage{Species: it.node.Species, Depth: it.depth})
		for _, c := range it.node.EvolvesTo {
			queue = append(queue, item{c, it.depth + 1})
		}
	}
	return out
}
