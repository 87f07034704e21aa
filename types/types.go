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

// Package types defines the type representation for the higher-rank
// polymorphic calculus: unit, rigid (universal) and existential variables,
// universal quantification, and functions.
package types

// Type is the base interface for all types.
type Type interface {
	// TypeName is the name of the syntax-type of the type.
	TypeName() string
	// IsMonotype is true iff the type contains no Forall node.
	IsMonotype() bool
	// Equal reports whether t is structurally identical to other.
	Equal(other Type) bool
}

var (
	_ Type = Unit{}
	_ Type = UVar{}
	_ Type = EVar{}
	_ Type = (*Forall)(nil)
	_ Type = (*Fun)(nil)
	_ Type = Unset{}
)

// Unset marks a type slot that has not yet been filled in by inference.
// Terms handed to InferExpression may carry Unset in any slot; the returned
// term never does.
type Unset struct{}

func (Unset) TypeName() string    { return "Unset" }
func (Unset) IsMonotype() bool    { return true }
func (Unset) Equal(o Type) bool   { _, ok := o.(Unset); return ok }

// Unit is the unit type.
type Unit struct{}

func (Unit) TypeName() string  { return "Unit" }
func (Unit) IsMonotype() bool  { return true }
func (Unit) Equal(o Type) bool { _, ok := o.(Unit); return ok }

// UVar is a rigid universal (quantified) type variable.
type UVar struct {
	Name string
}

func (UVar) TypeName() string { return "UVar" }
func (UVar) IsMonotype() bool { return true }
func (v UVar) Equal(o Type) bool {
	ov, ok := o.(UVar)
	return ok && ov.Name == v.Name
}

// EVar is an existential (unification) variable.
type EVar struct {
	Name string
}

func (EVar) TypeName() string { return "EVar" }
func (EVar) IsMonotype() bool { return true }
func (v EVar) Equal(o Type) bool {
	ov, ok := o.(EVar)
	return ok && ov.Name == v.Name
}

// Forall is universal quantification binding Name in Body.
type Forall struct {
	Name string
	Body Type
}

func (*Forall) TypeName() string { return "Forall" }
func (*Forall) IsMonotype() bool { return false }
func (f *Forall) Equal(o Type) bool {
	of, ok := o.(*Forall)
	return ok && of.Name == f.Name && of.Body.Equal(f.Body)
}

// Fun is a function type from Domain to Codomain.
type Fun struct {
	Domain   Type
	Codomain Type
}

func (*Fun) TypeName() string { return "Fun" }
func (f *Fun) IsMonotype() bool {
	return f.Domain.IsMonotype() && f.Codomain.IsMonotype()
}
func (f *Fun) Equal(o Type) bool {
	of, ok := o.(*Fun)
	return ok && of.Domain.Equal(f.Domain) && of.Codomain.Equal(f.Codomain)
}
