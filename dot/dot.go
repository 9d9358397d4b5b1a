// SPDX-License-Identifier: MIT
// Package dot serializes a bipartite.Graph to GraphViz DOT syntax.
//
// What:
//
//   - Write emits an undirected `graph` listing the nodes of each type
//     as distinct cluster subgraphs ("t1_<i>" and "t2_<j>") and every
//     edge as a `t1_i -- t2_j;` line, in ascending deterministic order.
//   - String is the convenience form returning the text directly.
//
// This is a pure read-only serialization for visualization; there is
// no parser and no round trip back into the structure.
//
// Errors:
//
//   - ErrGraphNil: nil graph.
//   - ErrBadOption: empty name or shape supplied via an option.
package dot

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/factorgraph/bipartite"
)

// Sentinel errors for DOT export.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dot: graph is nil")

	// ErrBadOption is returned when an invalid Option is supplied.
	ErrBadOption = errors.New("dot: invalid option supplied")
)

// defaults for the emitted attributes, matching the shapes
// conventionally used for variables (circles) and factors (boxes).
const (
	defaultName   = "bipgraph"
	defaultShape1 = "circle"
	defaultShape2 = "box"
)

// options holds export parameters; invalid values are recorded and
// surfaced as ErrBadOption when Write is invoked.
type options struct {
	name   string
	shape1 string
	shape2 string
	err    error
}

// Option configures DOT export via functional arguments.
type Option func(*options)

// WithName sets the graph identifier after the `graph` keyword.
// An empty name is rejected with ErrBadOption at Write time.
func WithName(name string) Option {
	return func(o *options) {
		if name == "" {
			o.err = fmt.Errorf("%w: empty graph name", ErrBadOption)
			return
		}
		o.name = name
	}
}

// WithShapes sets the node shape attribute per type. Empty shapes are
// rejected with ErrBadOption at Write time.
func WithShapes(type1, type2 string) Option {
	return func(o *options) {
		if type1 == "" || type2 == "" {
			o.err = fmt.Errorf("%w: empty node shape", ErrBadOption)
			return
		}
		o.shape1, o.shape2 = type1, type2
	}
}

// Write serializes g to w in GraphViz DOT syntax.
// Complexity: O(V + E log E) (edges are emitted in sorted order).
func Write(g *bipartite.Graph, w io.Writer, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	o := options{name: defaultName, shape1: defaultShape1, shape2: defaultShape2}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "graph %s {\n", o.name)

	fmt.Fprintf(&b, "  subgraph cluster_type1 {\n    node [shape=%s];\n", o.shape1)
	for i := 0; i < g.Nr1(); i++ {
		fmt.Fprintf(&b, "    t1_%d;\n", i)
	}
	b.WriteString("  }\n")

	fmt.Fprintf(&b, "  subgraph cluster_type2 {\n    node [shape=%s];\n", o.shape2)
	for j := 0; j < g.Nr2(); j++ {
		fmt.Fprintf(&b, "    t2_%d;\n", j)
	}
	b.WriteString("  }\n")

	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "  t1_%d -- t2_%d;\n", e.N1, e.N2)
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())

	return err
}

// String returns the DOT serialization of g as a string.
func String(g *bipartite.Graph, opts ...Option) (string, error) {
	var b strings.Builder
	if err := Write(g, &b, opts...); err != nil {
		return "", err
	}

	return b.String(), nil
}
