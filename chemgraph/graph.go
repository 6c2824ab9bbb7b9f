/*
 * graph.go, part of molcore.
 *
 *
 * Copyright 2025 The molcore Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package chemgraph

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	chem "github.com/rmera/molcore"
)

// Topology is the bond graph of a molecule. Each atom is a node with the atom's
// index as ID, and each bond a weighted, undirected edge.
type Topology struct {
	g      *simple.WeightedUndirectedGraph
	natoms int
}

// BondOrder is the default weight function. It weights each bond by its order.
func BondOrder(b chem.Bond) float64 { return float64(b.Order) }

// New builds the bond graph of mol. The weight of each bond is given by weightfunc,
// if given, and by BondOrder otherwise.
func New(mol *chem.Molecule, weightfunc ...func(chem.Bond) float64) *Topology {
	weight := BondOrder
	if len(weightfunc) > 0 && weightfunc[0] != nil {
		weight = weightfunc[0]
	}
	T := &Topology{g: simple.NewWeightedUndirectedGraph(0, math.Inf(1)), natoms: mol.Len()}
	for i := 0; i < mol.Len(); i++ {
		T.g.AddNode(simple.Node(i))
	}
	for _, b := range mol.Bonds() {
		T.g.SetWeightedEdge(T.g.NewWeightedEdge(simple.Node(b.Atom1), simple.Node(b.Atom2), weight(b)))
	}
	return T
}

// Graph returns the underlying gonum graph, to use with other gonum algorithms.
func (T *Topology) Graph() graph.WeightedUndirected {
	return T.g
}

func (T *Topology) check(i int) {
	if i < 0 || i >= T.natoms {
		panic(chem.ErrAtomOutOfRange)
	}
}

func ids(nodes []graph.Node) []int {
	ret := make([]int, 0, len(nodes))
	for _, n := range nodes {
		ret = append(ret, int(n.ID()))
	}
	return ret
}

// Fragments returns the indexes of the atoms in each connected part of the molecule,
// each sorted, and the fragments sorted by their first atom. Atoms without bonds are
// fragments of their own.
func (T *Topology) Fragments() [][]int {
	comps := topo.ConnectedComponents(T.g)
	ret := make([][]int, 0, len(comps))
	for _, c := range comps {
		f := ids(c)
		sort.Ints(f)
		ret = append(ret, f)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}

// Neighbors returns the sorted indexes of the atoms bonded to the atom i.
// It panics if i is out of range.
func (T *Topology) Neighbors(i int) []int {
	T.check(i)
	ret := ids(graph.NodesOf(T.g.From(int64(i))))
	sort.Ints(ret)
	return ret
}

// Weight returns the weight of the bond between atoms i and j. ok is false
// if they are not bonded.
func (T *Topology) Weight(i, j int) (w float64, ok bool) {
	T.check(i)
	T.check(j)
	e := T.g.WeightedEdge(int64(i), int64(j))
	if e == nil {
		return 0, false
	}
	return e.Weight(), true
}

// Path returns the indexes of the atoms in the path between atoms i and j with
// the smallest total weight, and that weight. If the atoms are not connected,
// it returns nil and +Inf. It panics if i or j are out of range.
func (T *Topology) Path(i, j int) ([]int, float64) {
	T.check(i)
	T.check(j)
	sp := path.DijkstraFrom(simple.Node(i), T.g)
	nodes, w := sp.To(int64(j))
	if len(nodes) == 0 {
		return nil, math.Inf(1)
	}
	return ids(nodes), w
}
