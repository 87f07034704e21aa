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

package typeutil

import (
	"github.com/go-bicheck/bicheck/term"
	"github.com/go-bicheck/bicheck/types"
)

// Apply returns a with every existential variable replaced by its solution
// under c, recursively until fixed point. Forall and Fun are traversed;
// other cases are the identity.
func Apply(c Context, a types.Type) types.Type {
	switch a := a.(type) {
	case types.EVar:
		if solved, ok := c.Solution(a.Name); ok {
			return Apply(c, solved)
		}
		return a
	case *types.Forall:
		return &types.Forall{Name: a.Name, Body: Apply(c, a.Body)}
	case *types.Fun:
		return &types.Fun{Domain: Apply(c, a.Domain), Codomain: Apply(c, a.Codomain)}
	default:
		return a
	}
}

// ApplyExpr traverses e and applies Apply(c, ·) to every type slot,
// rebuilding each node rather than mutating the input (spec §9's note on
// removing the source's shared-mutable-slot elaboration style).
func ApplyExpr(c Context, e term.Term) term.Term {
	switch e := e.(type) {
	case term.Unit:
		return e
	case term.Var:
		return term.Var{Name: e.Name, Type: Apply(c, e.Type)}
	case *term.Abs:
		return &term.Abs{Arg: e.Arg, ArgType: Apply(c, e.ArgType), Body: ApplyExpr(c, e.Body)}
	case *term.App:
		return &term.App{Fn: ApplyExpr(c, e.Fn), Arg: ApplyExpr(c, e.Arg), Type: Apply(c, e.Type)}
	case *term.Ann:
		return &term.Ann{Body: ApplyExpr(c, e.Body), Declared: Apply(c, e.Declared)}
	case *term.Let:
		return &term.Let{Name: e.Name, Bound: ApplyExpr(c, e.Bound), Body: ApplyExpr(c, e.Body)}
	default:
		return e
	}
}
