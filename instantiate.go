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

// rebuild reassembles a context from a split: post (newest first) on top,
// then middle (newest first), then pre.
func rebuild(post []typeutil.Note, middle []typeutil.Note, pre typeutil.Context) typeutil.Context {
	c := pre.PushAll(middle...)
	return c.PushAll(post...)
}

// InstantiateLeft solves α̂ :≤ A: α̂ is instantiated to a subtype of A.
func InstantiateLeft(g typeutil.Context, gen *typeutil.Generator, alpha string, a types.Type) (typeutil.Context, error) {
	typeutil.Log("InstantiateLeft", alpha, a)

	post, pre, ok := g.SplitEVar(alpha)
	if !ok {
		// A precondition of instantiate_left is that alpha is already an
		// unsolved existential in g; a missing note here is the input's
		// fault, not this package's, so it's the same fatal instantiation
		// error as a structural mismatch further down (spec §4.3).
		return typeutil.Context{}, &InstantiationError{EVar: alpha, Type: a}
	}

	// InstLSolve
	if a.IsMonotype() && typeutil.WellFormed(pre, a) {
		return rebuild(post, []typeutil.Note{typeutil.NSolved{Name: alpha, Type: a}}, pre), nil
	}

	switch a := a.(type) {
	case types.EVar:
		// InstLReach
		return instReach(g, alpha, a.Name)

	case *types.Fun:
		// InstLArr
		a1, a2 := gen.Fresh("a"), gen.Fresh("a")
		middle := []typeutil.Note{
			typeutil.NEVar{Name: a2},
			typeutil.NEVar{Name: a1},
			typeutil.NSolved{Name: alpha, Type: &types.Fun{Domain: types.EVar{Name: a1}, Codomain: types.EVar{Name: a2}}},
		}
		theta := rebuild(post, middle, pre)
		theta, err := InstantiateRight(theta, gen, a.Domain, a1)
		if err != nil {
			return typeutil.Context{}, err
		}
		return InstantiateLeft(theta, gen, a2, typeutil.Apply(theta, a.Codomain))

	case *types.Forall:
		// InstLAllR
		g2 := g.Push(typeutil.NUVar{Name: a.Name})
		result, err := InstantiateLeft(g2, gen, alpha, a.Body)
		if err != nil {
			return typeutil.Context{}, err
		}
		return result.PeelUVar(a.Name), nil

	default:
		// Every remaining shape (Unit, UVar) is a monotype, so arriving here
		// means InstLSolve's well-formedness check, not its monotype check,
		// is what failed.
		if a.IsMonotype() {
			return typeutil.Context{}, &IllFormedTypeError{Type: a}
		}
		return typeutil.Context{}, &InstantiationError{EVar: alpha, Type: a}
	}
}

// InstantiateRight solves A :≤ α̂, the mirror image of InstantiateLeft.
func InstantiateRight(g typeutil.Context, gen *typeutil.Generator, a types.Type, alpha string) (typeutil.Context, error) {
	typeutil.Log("InstantiateRight", a, alpha)

	post, pre, ok := g.SplitEVar(alpha)
	if !ok {
		return typeutil.Context{}, &InstantiationError{EVar: alpha, Type: a}
	}

	// InstRSolve
	if a.IsMonotype() && typeutil.WellFormed(pre, a) {
		return rebuild(post, []typeutil.Note{typeutil.NSolved{Name: alpha, Type: a}}, pre), nil
	}

	switch a := a.(type) {
	case types.EVar:
		// InstRReach
		return instReach(g, alpha, a.Name)

	case *types.Fun:
		// InstRArr: contravariant, so the domain flips to instantiate_left.
		b1, b2 := gen.Fresh("a"), gen.Fresh("a")
		middle := []typeutil.Note{
			typeutil.NEVar{Name: b2},
			typeutil.NEVar{Name: b1},
			typeutil.NSolved{Name: alpha, Type: &types.Fun{Domain: types.EVar{Name: b1}, Codomain: types.EVar{Name: b2}}},
		}
		theta := rebuild(post, middle, pre)
		theta, err := InstantiateLeft(theta, gen, b1, a.Domain)
		if err != nil {
			return typeutil.Context{}, err
		}
		return InstantiateRight(theta, gen, typeutil.Apply(theta, a.Codomain), b2)

	case *types.Forall:
		// InstRAllL
		c := gen.Fresh("a")
		g2 := g.Push(typeutil.NMarker{Name: c}).Push(typeutil.NEVar{Name: c})
		body := types.Subst(types.EVar{Name: c}, types.UVar{Name: a.Name}, a.Body)
		result, err := InstantiateRight(g2, gen, body, alpha)
		if err != nil {
			return typeutil.Context{}, err
		}
		return result.PeelMarker(c), nil

	default:
		if a.IsMonotype() {
			return typeutil.Context{}, &IllFormedTypeError{Type: a}
		}
		return typeutil.Context{}, &InstantiationError{EVar: alpha, Type: a}
	}
}

// instReach handles InstLReach/InstRReach: if alpha is declared earlier
// than beta, solve beta := alpha. Shared between both directions, since
// the action taken (solving the later existential to the earlier one) is
// identical regardless of which side initiated instantiation.
func instReach(g typeutil.Context, alpha, beta string) (typeutil.Context, error) {
	post, pre, ok := g.SplitEVar(beta)
	if !ok {
		return typeutil.Context{}, &InstantiationError{EVar: alpha, Type: types.EVar{Name: beta}}
	}
	if !pre.HasEVar(alpha) {
		return typeutil.Context{}, &InstantiationError{EVar: alpha, Type: types.EVar{Name: beta}}
	}
	return rebuild(post, []typeutil.Note{typeutil.NSolved{Name: beta, Type: types.EVar{Name: alpha}}}, pre), nil
}
