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

package bicheck

import (
	"github.com/go-bicheck/bicheck/internal/typeutil"
	"github.com/go-bicheck/bicheck/types"
)

// Subtype derives A <: B under g, returning the output context. The
// dispatch order below is authoritative (spec §4.4's table): <:∀L must be
// tried before <:InstL/R when the left side is a universal, which the
// type switch gives us for free since Forall and EVar never match the
// same case.
func Subtype(g typeutil.Context, gen *typeutil.Generator, a, b types.Type) (typeutil.Context, error) {
	typeutil.Log("Subtype", a, b)

	switch a := a.(type) {
	case types.Unit:
		if _, ok := b.(types.Unit); ok {
			return g, nil // <:Unit
		}

	case types.UVar:
		if bv, ok := b.(types.UVar); ok && bv.Name == a.Name {
			if !g.HasUVar(a.Name) {
				return typeutil.Context{}, &SubtypeError{A: a, B: b}
			}
			return g, nil // <:Var
		}

	case types.EVar:
		if bv, ok := b.(types.EVar); ok && bv.Name == a.Name {
			if !g.HasEVar(a.Name) {
				return typeutil.Context{}, &SubtypeError{A: a, B: b}
			}
			return g, nil // <:Exvar
		}

	case *types.Forall:
		// <:∀L
		alpha := gen.Fresh("a")
		g2 := g.Push(typeutil.NMarker{Name: alpha}).Push(typeutil.NEVar{Name: alpha})
		body := types.Subst(types.EVar{Name: alpha}, types.UVar{Name: a.Name}, a.Body)
		theta, err := Subtype(g2, gen, body, b)
		if err != nil {
			return typeutil.Context{}, err
		}
		return theta.PeelMarker(alpha), nil

	case *types.Fun:
		if bf, ok := b.(*types.Fun); ok {
			// <:→
			theta, err := Subtype(g, gen, bf.Domain, a.Domain)
			if err != nil {
				return typeutil.Context{}, err
			}
			return Subtype(theta, gen, typeutil.Apply(theta, a.Codomain), typeutil.Apply(theta, bf.Codomain))
		}
	}

	// <:∀R: tried regardless of A's shape, since the pattern is (A, Forall).
	if bf, ok := b.(*types.Forall); ok {
		g2 := g.Push(typeutil.NUVar{Name: bf.Name})
		theta, err := Subtype(g2, gen, a, bf.Body)
		if err != nil {
			return typeutil.Context{}, err
		}
		return theta.PeelUVar(bf.Name), nil
	}

	// <:InstL
	if av, ok := a.(types.EVar); ok && g.HasEVar(av.Name) && !types.ContainsExistential(b, av.Name) {
		return InstantiateLeft(g, gen, av.Name, b)
	}
	// <:InstR
	if bv, ok := b.(types.EVar); ok && g.HasEVar(bv.Name) && !types.ContainsExistential(a, bv.Name) {
		return InstantiateRight(g, gen, a, bv.Name)
	}

	return typeutil.Context{}, &SubtypeError{A: a, B: b}
}
