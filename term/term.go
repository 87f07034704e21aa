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

// Package term defines the term representation consumed and produced by
// the bidirectional checker: unit, variables, abstraction, application,
// annotation, and let-binding. Terms arrive from an external collaborator
// (a parser, outside this module's scope) with type slots possibly unset,
// and are rebuilt with every slot filled in by inference -- the checker
// never mutates an input term in place.
package term

import "github.com/go-bicheck/bicheck/types"

// Term is the base interface for all terms.
type Term interface {
	// TermName is the name of the syntax-type of the term.
	TermName() string
}

var (
	_ Term = Unit{}
	_ Term = Var{}
	_ Term = (*Abs)(nil)
	_ Term = (*App)(nil)
	_ Term = (*Ann)(nil)
	_ Term = (*Let)(nil)
)

// Unit is the unit value.
type Unit struct{}

func (Unit) TermName() string { return "Unit" }

// Var is a variable occurrence, carrying the type it was looked up at.
type Var struct {
	Name string
	Type types.Type
}

func (Var) TermName() string { return "Var" }

// Abs is a lambda abstraction. ArgType is the type slot for the bound
// variable; Unset on input unless the caller already knows it.
type Abs struct {
	Arg     string
	ArgType types.Type
	Body    Term
}

func (*Abs) TermName() string { return "Abs" }

// App is an application. Type is the type slot for the application's
// result.
type App struct {
	Fn   Term
	Arg  Term
	Type types.Type
}

func (*App) TermName() string { return "App" }

// Ann is an explicit type annotation.
type Ann struct {
	Body     Term
	Declared types.Type
}

func (*Ann) TermName() string { return "Ann" }

// Let is a non-recursive let-binding.
type Let struct {
	Name  string
	Bound Term
	Body  Term
}

func (*Let) TermName() string { return "Let" }

// TypeOf returns the type carried by a term. For Abs it constructs
// Fun(ArgType, TypeOf(Body)); for Let it returns TypeOf(Body).
func TypeOf(t Term) types.Type {
	switch t := t.(type) {
	case Unit:
		return types.Unit{}
	case Var:
		return t.Type
	case *Abs:
		return &types.Fun{Domain: t.ArgType, Codomain: TypeOf(t.Body)}
	case *App:
		return t.Type
	case *Ann:
		return t.Declared
	case *Let:
		return TypeOf(t.Body)
	default:
		return types.Unset{}
	}
}
