package meshgraph

import (
	dominikgraph "github.com/dominikbraun/graph"
	gonumgraph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	yourbasicgraph "github.com/yourbasic/graph"

	"github.com/katalvlaran/quadedge/delaunay"
)

// ToDominikBraunGraph re-exports t's 1-skeleton as a dominikbraun/graph
// undirected, weighted graph keyed by VertexLabel strings.
func ToDominikBraunGraph(t *delaunay.Triangulation) (dominikgraph.Graph[string, string], error) {
	g, err := Export(t)
	if err != nil {
		return nil, err
	}

	dg := dominikgraph.New(dominikgraph.StringHash, dominikgraph.Weighted())
	for _, id := range g.Vertices() {
		if err := dg.AddVertex(id); err != nil {
			return nil, err
		}
	}
	for _, e := range g.Edges() {
		if err := dg.AddEdge(e.From, e.To, dominikgraph.EdgeWeight(int(e.Weight))); err != nil {
			return nil, err
		}
	}

	return dg, nil
}

// ToGonumGraph re-exports t's 1-skeleton as a gonum/graph/simple weighted
// undirected graph. Node IDs are the int64 index of VertexLabel(v) in
// g.Vertices()'s sorted order; the returned index maps a VertexId's label
// back to its gonum node ID.
func ToGonumGraph(t *delaunay.Triangulation) (*simple.WeightedUndirectedGraph, map[string]int64, error) {
	g, err := Export(t)
	if err != nil {
		return nil, nil, err
	}

	vertices := g.Vertices()
	index := make(map[string]int64, len(vertices))
	wg := simple.NewWeightedUndirectedGraph(0, 0)
	for i, id := range vertices {
		nodeID := int64(i)
		index[id] = nodeID
		wg.AddNode(simple.Node(nodeID))
	}
	for _, e := range g.Edges() {
		u, v := index[e.From], index[e.To]
		wg.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(u),
			T: simple.Node(v),
			W: float64(e.Weight),
		})
	}

	return wg, index, nil
}

// gonumNodes is retained so the gonum/graph import is exercised beyond the
// simple package's concrete types (Nodes returns the gonum graph.Nodes
// iterator interface that simple.WeightedUndirectedGraph implements).
func gonumNodes(wg *simple.WeightedUndirectedGraph) gonumgraph.Nodes {
	return wg.Nodes()
}

// ToYourBasicGraph re-exports t's 1-skeleton as a yourbasic/graph Mutable,
// an integer-indexed adjacency list. Node indices follow the sorted order
// of g.Vertices(); the returned index maps a VertexId's label to its
// yourbasic/graph node index.
func ToYourBasicGraph(t *delaunay.Triangulation) (*yourbasicgraph.Mutable, map[string]int, error) {
	g, err := Export(t)
	if err != nil {
		return nil, nil, err
	}

	vertices := g.Vertices()
	index := make(map[string]int, len(vertices))
	for i, id := range vertices {
		index[id] = i
	}

	yg := yourbasicgraph.New(len(vertices))
	for _, e := range g.Edges() {
		u, v := index[e.From], index[e.To]
		yg.AddCost(u, v, e.Weight)
		yg.AddCost(v, u, e.Weight)
	}

	return yg, index, nil
}
