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

import "github.com/samber/lo"

// FreeExistentials returns the set of free existential-variable names in t,
// as used by the <:InstL/<:InstR occurs-check in subtyping (spec: FV(T) is
// the set of free existential variables in T, not universals).
func FreeExistentials(t Type) []string {
	return lo.Uniq(collectExistentials(t, nil))
}

// ContainsExistential reports whether name occurs free in t.
func ContainsExistential(t Type, name string) bool {
	return lo.Contains(FreeExistentials(t), name)
}

func collectExistentials(t Type, acc []string) []string {
	switch t := t.(type) {
	case EVar:
		return append(acc, t.Name)
	case *Forall:
		return collectExistentials(t.Body, acc)
	case *Fun:
		acc = collectExistentials(t.Domain, acc)
		return collectExistentials(t.Codomain, acc)
	default:
		return acc
	}
}
