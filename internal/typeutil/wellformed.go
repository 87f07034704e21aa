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

import "github.com/go-bicheck/bicheck/types"

// WellFormed reports whether every UVar in a has a matching UVar note in c,
// and every EVar has either a matching EVar or Solved note.
func WellFormed(c Context, a types.Type) bool {
	switch a := a.(type) {
	case types.Unit, types.Unset:
		return true
	case types.UVar:
		return c.HasUVar(a.Name)
	case types.EVar:
		return c.HasEVar(a.Name)
	case *types.Forall:
		return WellFormed(c.Push(NUVar{Name: a.Name}), a.Body)
	case *types.Fun:
		// Both sides are checked, unlike the defect noted in spec §9's open
		// question about the original's malformedness traversal.
		return WellFormed(c, a.Domain) && WellFormed(c, a.Codomain)
	default:
		return false
	}
}
