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
	"fmt"

	"github.com/go-bicheck/bicheck/term"
	"github.com/go-bicheck/bicheck/types"
)

// UnboundVariableError is kind 1: Var(x) with no Assump(x, _) in context.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return "Variable " + e.Name + " not found"
}

// UnboundExistentialError is kind 2: reference to an existential with no
// corresponding note.
type UnboundExistentialError struct {
	Name string
}

func (e *UnboundExistentialError) Error() string {
	return "Existential " + e.Name + "^ not found"
}

// IllFormedTypeError is kind 3: a type fails well-formedness during
// instantiation.
type IllFormedTypeError struct {
	Type types.Type
}

func (e *IllFormedTypeError) Error() string {
	return "Type " + types.String(e.Type) + " is not well-formed"
}

// InstantiationError is kind 4: no instantiation rule applies.
type InstantiationError struct {
	EVar string
	Type types.Type
}

func (e *InstantiationError) Error() string {
	return fmt.Sprintf("Cannot instantiate %s^ to %s", e.EVar, types.String(e.Type))
}

// SubtypeError is kind 5: no subtyping rule applies.
type SubtypeError struct {
	A, B types.Type
}

func (e *SubtypeError) Error() string {
	return fmt.Sprintf("Type %s is not a subtype of %s", types.String(e.A), types.String(e.B))
}

// NotApplicableError is kind 6: infer_app encounters a type that is
// neither quantifier, existential, nor function.
type NotApplicableError struct {
	Type types.Type
	Arg  term.Term
}

func (e *NotApplicableError) Error() string {
	return "Cannot apply non-function type " + types.String(e.Type)
}

// Kind 7 -- a context-structure invariant violated (multiple notes
// matching a lookup) -- surfaces as *typeutil.InvariantError, raised
// directly by the context operations that detect it rather than re-wrapped
// here. A note absent from a split is reported by the caller instead, as
// *InstantiationError or *UnboundExistentialError.
