package export

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/smallworld/bfs"
	"github.com/katalvlaran/smallworld/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("export: graph is nil")

// Default DOT rendering attributes.
const (
	defaultName      = "smallworld"
	defaultHighlight = "red"
	defaultPenWidth  = "3"
)

// ToGonum copies g into a gonum simple.UndirectedGraph whose node IDs are the
// core vertex indices. Isolated vertices are kept.
// Complexity: O(V + E).
func ToGonum(g *core.Graph) (*simple.UndirectedGraph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ug := simple.NewUndirectedGraph()
	for u := 0; u < g.Order(); u++ {
		ug.AddNode(simple.Node(u))
	}
	for _, e := range g.Edges() {
		ug.SetEdge(simple.Edge{F: simple.Node(e.U), T: simple.Node(e.V)})
	}

	return ug, nil
}

// Option configures WriteDOT.
type Option func(*dotOptions)

type dotOptions struct {
	name      string
	color     string
	path      []int
	shortcuts map[core.Edge]struct{}
}

// WithName sets the DOT graph name (default "smallworld").
func WithName(name string) Option {
	return func(o *dotOptions) {
		if name != "" {
			o.name = name
		}
	}
}

// WithHighlight marks the vertices and edges of path.
func WithHighlight(path []int) Option {
	return func(o *dotOptions) {
		o.path = append([]int(nil), path...)
	}
}

// WithHighlightColor overrides the highlight color (default "red").
func WithHighlightColor(color string) Option {
	return func(o *dotOptions) {
		if color != "" {
			o.color = color
		}
	}
}

// WithShortcuts draws the given edges dashed, which is how rewired edges are
// told apart from lattice edges.
func WithShortcuts(edges []core.Edge) Option {
	return func(o *dotOptions) {
		for _, e := range edges {
			o.shortcuts[core.NewEdge(e.U, e.V)] = struct{}{}
		}
	}
}

// WriteDOT writes g to w as an undirected DOT graph.
func WriteDOT(w io.Writer, g *core.Graph, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	o := dotOptions{
		name:      defaultName,
		color:     defaultHighlight,
		shortcuts: make(map[core.Edge]struct{}),
	}
	for _, opt := range opts {
		opt(&o)
	}

	onPath := make(map[int]struct{}, len(o.path))
	for _, v := range o.path {
		onPath[v] = struct{}{}
	}
	pathEdges := make(map[core.Edge]struct{}, len(o.path))
	for _, e := range bfs.PathEdges(o.path) {
		pathEdges[e] = struct{}{}
	}

	ug := simple.NewUndirectedGraph()
	for u := 0; u < g.Order(); u++ {
		n := attrNode{id: int64(u)}
		if _, ok := onPath[u]; ok {
			n.attrs = []encoding.Attribute{{Key: "color", Value: o.color}}
		}
		ug.AddNode(n)
	}
	for _, e := range g.Edges() {
		var attrs []encoding.Attribute
		if _, ok := pathEdges[e]; ok {
			attrs = append(attrs,
				encoding.Attribute{Key: "color", Value: o.color},
				encoding.Attribute{Key: "penwidth", Value: defaultPenWidth})
		}
		if _, ok := o.shortcuts[e]; ok {
			attrs = append(attrs, encoding.Attribute{Key: "style", Value: "dashed"})
		}
		ug.SetEdge(attrEdge{
			from:  ug.Node(int64(e.U)),
			to:    ug.Node(int64(e.V)),
			attrs: attrs,
		})
	}

	b, err := dot.Marshal(ug, o.name, "", "  ")
	if err != nil {
		return fmt.Errorf("WriteDOT: %w", err)
	}
	if _, err = w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("WriteDOT: %w", err)
	}

	return nil
}

// attrNode is a gonum node carrying DOT attributes.
type attrNode struct {
	id    int64
	attrs []encoding.Attribute
}

func (n attrNode) ID() int64                        { return n.id }
func (n attrNode) Attributes() []encoding.Attribute { return n.attrs }

// attrEdge is a gonum edge carrying DOT attributes. ReversedEdge keeps the
// attributes so lookups in either direction render the same.
type attrEdge struct {
	from, to graph.Node
	attrs    []encoding.Attribute
}

func (e attrEdge) From() graph.Node                 { return e.from }
func (e attrEdge) To() graph.Node                   { return e.to }
func (e attrEdge) Attributes() []encoding.Attribute { return e.attrs }

func (e attrEdge) ReversedEdge() graph.Edge {
	return attrEdge{from: e.to, to: e.from, attrs: e.attrs}
}
