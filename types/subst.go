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

package types

// Subst returns a with every occurrence of u (compared structurally by
// Equal) replaced by t. Subst traverses into function and quantifier
// bodies; quantifier binders are not alpha-renamed, since binder names are
// unique by construction via the fresh-name generator (spec §4.1).
func Subst(t, u, a Type) Type {
	if a.Equal(u) {
		return t
	}
	switch a := a.(type) {
	case *Forall:
		return &Forall{Name: a.Name, Body: Subst(t, u, a.Body)}
	case *Fun:
		return &Fun{Domain: Subst(t, u, a.Domain), Codomain: Subst(t, u, a.Codomain)}
	default:
		return a
	}
}
