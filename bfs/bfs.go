// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/smallworld/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// noTarget disables the early stop of the walker.
const noTarget = -1

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	target  int
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied hook error.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	w, err := newWalker(g, start, noTarget, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.loop()
}

// ShortestPath returns one minimum-hop path from source to target.
//
//   - source == target → [source].
//   - target unreachable (or beyond MaxDepth) → empty, non-nil path, nil error.
//
// The search stops as soon as target is dequeued.
func ShortestPath(g *core.Graph, source, target int, opts ...Option) ([]int, error) {
	w, err := newWalker(g, source, target, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(target) {
		return nil, fmt.Errorf("%w: target %d", ErrVertexNotFound, target)
	}
	if err = w.loop(); err != nil {
		return nil, err
	}
	if !w.res.Reached(target) {
		return []int{}, nil
	}

	return w.res.PathTo(target)
}

// PathEdges returns the canonical edges traversed by path, in order.
// A path with fewer than two vertices has no edges.
func PathEdges(path []int) []core.Edge {
	if len(path) < 2 {
		return nil
	}
	out := make([]core.Edge, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		out = append(out, core.NewEdge(path[i-1], path[i]))
	}

	return out
}

// newWalker validates input, resolves options and seeds the queue.
func newWalker(g *core.Graph, start, target int, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: start %d", ErrVertexNotFound, start)
	}

	n := g.Order()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		target:  target,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unreached
		w.res.Parent[i] = Unreached
	}
	w.enqueue(start, 0, Unreached)

	return w, nil
}

// enqueue marks id visited at depth d, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, target reached, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if item.id == w.target {
			return nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors retrieves neighbors, applies filtering and MaxDepth,
// and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.id)
	}

	return nil
}
