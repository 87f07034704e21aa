// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package typeutil holds the ordered typing context and its supporting
// operations: notes, well-formedness, context application, and fresh-name
// generation (type substitution lives in package types). It is the analogue of the teacher's
// internal/typeutil package, rebuilt for an ordered-context bidirectional
// checker instead of a levels-based unifier.
package typeutil

import "github.com/go-bicheck/bicheck/types"

// Note is a single entry in a typing context.
type Note interface {
	noteName() string
}

var (
	_ Note = NUVar{}
	_ Note = NEVar{}
	_ Note = NSolved{}
	_ Note = NMarker{}
	_ Note = NAssump{}
)

// NUVar records that a bound rigid type variable is in scope.
type NUVar struct{ Name string }

func (NUVar) noteName() string { return "UVar" }

// NEVar records that an unsolved existential is in scope.
type NEVar struct{ Name string }

func (NEVar) noteName() string { return "EVar" }

// NSolved records that existential Name has been solved to Type, a
// monotype. Solutions written by the Solve and Reach rules are well-formed
// under the portion of the context older than this note; the Fun solution
// written by InstLArr, InstRArr and InferApp's existential case names two
// sub-existentials that sit newer than this note.
type NSolved struct {
	Name string
	Type types.Type
}

func (NSolved) noteName() string { return "Solved" }

// NMarker is a scope marker (▶) delimiting a subderivation.
type NMarker struct{ Name string }

func (NMarker) noteName() string { return "Marker" }

// NAssump records that a term variable has the given type.
type NAssump struct {
	Var  string
	Type types.Type
}

func (NAssump) noteName() string { return "Assump" }

// sameEVar reports whether n is the EVar or Solved note for name.
func sameEVar(n Note, name string) bool {
	switch n := n.(type) {
	case NEVar:
		return n.Name == name
	case NSolved:
		return n.Name == name
	default:
		return false
	}
}

func sameUVar(n Note, name string) bool {
	u, ok := n.(NUVar)
	return ok && u.Name == name
}

func sameMarker(n Note, name string) bool {
	m, ok := n.(NMarker)
	return ok && m.Name == name
}
