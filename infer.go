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
	"github.com/go-bicheck/bicheck/term"
	"github.com/go-bicheck/bicheck/types"
)

// Check checks e against the expected type a under g, returning the
// annotated term and the output context.
func Check(g typeutil.Context, gen *typeutil.Generator, e term.Term, a types.Type) (term.Term, typeutil.Context, error) {
	typeutil.Log("Check", e, a)

	if _, isUnit := e.(term.Unit); isUnit {
		if _, ok := a.(types.Unit); ok {
			return term.Unit{}, g, nil
		}
	}

	if abs, isAbs := e.(*term.Abs); isAbs {
		if fn, isFun := a.(*types.Fun); isFun {
			g2 := g.Push(typeutil.NAssump{Var: abs.Arg, Type: fn.Domain})
			body, delta, err := Check(g2, gen, abs.Body, fn.Codomain)
			if err != nil {
				return nil, typeutil.Context{}, err
			}
			return &term.Abs{Arg: abs.Arg, ArgType: fn.Domain, Body: body}, delta.PeelAssump(abs.Arg), nil
		}
	}

	if forall, isForall := a.(*types.Forall); isForall {
		g2 := g.Push(typeutil.NUVar{Name: forall.Name})
		body, delta, err := Check(g2, gen, e, forall.Body)
		if err != nil {
			return nil, typeutil.Context{}, err
		}
		return body, delta.PeelUVar(forall.Name), nil
	}

	// Subsumption
	inferredType, inferredTerm, theta, err := Infer(g, gen, e)
	if err != nil {
		return nil, typeutil.Context{}, err
	}
	delta, err := Subtype(theta, gen, typeutil.Apply(theta, inferredType), typeutil.Apply(theta, a))
	if err != nil {
		return nil, typeutil.Context{}, err
	}
	return typeutil.ApplyExpr(delta, inferredTerm), delta, nil
}

// Infer synthesizes a type for e under g, returning the type, the
// annotated term, and the output context.
func Infer(g typeutil.Context, gen *typeutil.Generator, e term.Term) (types.Type, term.Term, typeutil.Context, error) {
	typeutil.Log("Infer", e)

	switch e := e.(type) {
	case term.Unit:
		return types.Unit{}, term.Unit{}, g, nil

	case term.Var:
		a, ok, err := g.Assump(e.Name)
		if err != nil {
			return nil, nil, typeutil.Context{}, err
		}
		if !ok {
			return nil, nil, typeutil.Context{}, &UnboundVariableError{Name: e.Name}
		}
		return a, term.Var{Name: e.Name, Type: a}, g, nil

	case *term.Ann:
		body, delta, err := Check(g, gen, e.Body, e.Declared)
		if err != nil {
			return nil, nil, typeutil.Context{}, err
		}
		return e.Declared, body, delta, nil

	case *term.Abs:
		alpha, c := gen.Fresh("a"), gen.Fresh("a")
		g2 := g.Push(typeutil.NEVar{Name: alpha}).Push(typeutil.NEVar{Name: c}).
			Push(typeutil.NAssump{Var: e.Arg, Type: types.EVar{Name: alpha}})
		body, delta, err := Check(g2, gen, e.Body, types.EVar{Name: c})
		if err != nil {
			return nil, nil, typeutil.Context{}, err
		}
		delta = delta.PeelAssump(e.Arg)
		fn := &types.Fun{Domain: types.EVar{Name: alpha}, Codomain: types.EVar{Name: c}}
		return fn, &term.Abs{Arg: e.Arg, ArgType: types.EVar{Name: alpha}, Body: body}, delta, nil

	case *term.App:
		fnType, fn, theta, err := Infer(g, gen, e.Fn)
		if err != nil {
			return nil, nil, typeutil.Context{}, err
		}
		resultType, arg, delta, err := InferApp(theta, gen, typeutil.Apply(theta, fnType), e.Arg)
		if err != nil {
			return nil, nil, typeutil.Context{}, err
		}
		return resultType, &term.App{Fn: fn, Arg: arg, Type: resultType}, delta, nil

	case *term.Let:
		rhsType, rhs, theta, err := Infer(g, gen, e.Bound)
		if err != nil {
			return nil, nil, typeutil.Context{}, err
		}
		c := gen.Fresh("a")
		theta = theta.Push(typeutil.NEVar{Name: c}).Push(typeutil.NAssump{Var: e.Name, Type: rhsType})
		body, delta, err := Check(theta, gen, e.Body, types.EVar{Name: c})
		if err != nil {
			return nil, nil, typeutil.Context{}, err
		}
		delta = delta.PeelAssump(e.Name)
		return types.EVar{Name: c}, &term.Let{Name: e.Name, Bound: rhs, Body: body}, delta, nil
	}

	return nil, nil, typeutil.Context{}, &typeutil.InvariantError{Detail: "unhandled term " + e.TermName()}
}

// InferApp synthesizes the result type of applying a function of type
// afn to arg under g.
func InferApp(g typeutil.Context, gen *typeutil.Generator, afn types.Type, arg term.Term) (types.Type, term.Term, typeutil.Context, error) {
	typeutil.Log("InferApp", afn, arg)

	switch afn := afn.(type) {
	case *types.Forall:
		alpha := gen.Fresh("a")
		g2 := g.Push(typeutil.NEVar{Name: alpha})
		body := types.Subst(types.EVar{Name: alpha}, types.UVar{Name: afn.Name}, afn.Body)
		return InferApp(g2, gen, body, arg)

	case types.EVar:
		post, pre, ok := g.SplitEVar(afn.Name)
		if !ok {
			return nil, nil, typeutil.Context{}, &UnboundExistentialError{Name: afn.Name}
		}
		a1, a2 := gen.Fresh("a"), gen.Fresh("a")
		middle := []typeutil.Note{
			typeutil.NEVar{Name: a2},
			typeutil.NEVar{Name: a1},
			typeutil.NSolved{Name: afn.Name, Type: &types.Fun{Domain: types.EVar{Name: a1}, Codomain: types.EVar{Name: a2}}},
		}
		g2 := rebuild(post, middle, pre)
		argTerm, delta, err := Check(g2, gen, arg, types.EVar{Name: a1})
		if err != nil {
			return nil, nil, typeutil.Context{}, err
		}
		return types.EVar{Name: a2}, argTerm, delta, nil

	case *types.Fun:
		argTerm, delta, err := Check(g, gen, arg, afn.Domain)
		if err != nil {
			return nil, nil, typeutil.Context{}, err
		}
		return afn.Codomain, argTerm, delta, nil
	}

	return nil, nil, typeutil.Context{}, &NotApplicableError{Type: afn, Arg: arg}
}
