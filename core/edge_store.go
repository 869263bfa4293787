package core

import (
	"encoding/binary"
	"fmt"
	"iter"

	"github.com/cespare/xxhash/v2"
)

// EdgeStore is the immutable edge list of one graph.
//
// Edges keep the order they were given in. All() enumerates them lazily and
// may be ranged over any number of times.
type EdgeStore struct {
	vertexCount int
	edges       []Edge
	fingerprint uint64
}

// NewEdgeStore validates and freezes a graph of vertexCount vertices.
//
// Preconditions:
//  1. vertexCount ≥ 1.
//  2. Every edge endpoint lies in [0, vertexCount).
//
// Violations return an error wrapping ErrInvalidGraph.
// The edges slice is copied; later changes by the caller are not observed.
//
// Complexity: O(E).
func NewEdgeStore(vertexCount int, edges []Edge) (*EdgeStore, error) {
	if vertexCount < 1 {
		return nil, fmt.Errorf("%w: vertex count %d, need at least 1", ErrInvalidGraph, vertexCount)
	}

	for i, e := range edges {
		if e.From < 0 || e.From >= vertexCount || e.To < 0 || e.To >= vertexCount {
			return nil, fmt.Errorf("%w: edge %d (%d→%d) outside [0, %d)", ErrInvalidGraph, i, e.From, e.To, vertexCount)
		}
	}

	s := &EdgeStore{
		vertexCount: vertexCount,
		edges:       append([]Edge(nil), edges...),
	}
	s.fingerprint = fingerprint(vertexCount, s.edges)

	return s, nil
}

// VertexCount returns V.
func (s *EdgeStore) VertexCount() int { return s.vertexCount }

// EdgeCount returns E.
func (s *EdgeStore) EdgeCount() int { return len(s.edges) }

// HasVertex reports whether id lies in [0, V).
func (s *EdgeStore) HasVertex(id int) bool { return id >= 0 && id < s.vertexCount }

// Edge returns the i-th edge in construction order. It panics if i is out of range.
func (s *EdgeStore) Edge(i int) Edge { return s.edges[i] }

// Edges returns a copy of the edge list in construction order.
func (s *EdgeStore) Edges() []Edge {
	return append([]Edge(nil), s.edges...)
}

// All yields (index, edge) pairs in construction order.
// Every call starts a fresh enumeration over the same sequence.
func (s *EdgeStore) All() iter.Seq2[int, Edge] {
	return func(yield func(int, Edge) bool) {
		for i, e := range s.edges {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Fingerprint is a 64-bit hash of V and the ordered edge list.
// Two stores with the same vertex count and the same edges in the same order
// have the same fingerprint.
func (s *EdgeStore) Fingerprint() uint64 { return s.fingerprint }

// fingerprint hashes V followed by every (From, To, Weight) triple.
func fingerprint(vertexCount int, edges []Edge) uint64 {
	d := xxhash.New()
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(vertexCount))
	_, _ = d.Write(buf[:8])
	for _, e := range edges {
		binary.LittleEndian.PutUint64(buf[0:8], uint64(e.From))
		binary.LittleEndian.PutUint64(buf[8:16], uint64(e.To))
		binary.LittleEndian.PutUint64(buf[16:24], uint64(e.Weight))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
