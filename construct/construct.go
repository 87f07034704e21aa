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

// Package construct provides terse constructors for building types and
// terms by hand -- useful for tests and for callers that build terms
// programmatically rather than through a parser.
package construct

import (
	"github.com/go-bicheck/bicheck/term"
	"github.com/go-bicheck/bicheck/types"
)

// Types:

// TUnit is the unit type.
func TUnit() types.Unit { return types.Unit{} }

// TUVar is a rigid universal variable: `a`.
func TUVar(name string) types.UVar { return types.UVar{Name: name} }

// TEVar is an existential variable: `a^`.
func TEVar(name string) types.EVar { return types.EVar{Name: name} }

// TForall is universal quantification: `forall a. A`.
func TForall(name string, body types.Type) *types.Forall {
	return &types.Forall{Name: name, Body: body}
}

// TFun is a function type: `A -> B`.
func TFun(domain, codomain types.Type) *types.Fun {
	return &types.Fun{Domain: domain, Codomain: codomain}
}

// Terms:

// Unit is the unit value: `()`.
func Unit() term.Unit { return term.Unit{} }

// Var is a variable occurrence with an unset type slot.
func Var(name string) term.Var { return term.Var{Name: name, Type: types.Unset{}} }

// Abs is a lambda abstraction with an unset argument-type slot: `\x. body`.
func Abs(arg string, body term.Term) *term.Abs {
	return &term.Abs{Arg: arg, ArgType: types.Unset{}, Body: body}
}

// App is an application with an unset result-type slot: `fn arg`.
func App(fn, arg term.Term) *term.App {
	return &term.App{Fn: fn, Arg: arg, Type: types.Unset{}}
}

// Ann is an explicit annotation: `body : declared`.
func Ann(body term.Term, declared types.Type) *term.Ann {
	return &term.Ann{Body: body, Declared: declared}
}

// Let is a non-recursive let-binding: `let name = bound in body`.
func Let(name string, bound, body term.Term) *term.Let {
	return &term.Let{Name: name, Bound: bound, Body: body}
}
