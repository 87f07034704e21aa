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

import "strconv"

// Generator is a monotonic counter yielding unique existential names
// seeded by a human-readable prefix (spec §4.2). It is the sole mutable
// state owned by a single top-level InferExpression invocation, playing
// the same role the teacher's VarTracker plays for type-variable ids
// (var_tracker.go) -- but here it hands out names instead of allocating
// *types.Var values, since existentials in this system are just names.
type Generator struct {
	counter int
}

// NewGenerator returns a Generator whose first allocated name ends in 1.
func NewGenerator() *Generator {
	return &Generator{counter: 1}
}

// Fresh returns prefix concatenated with the current counter value, then
// increments the counter.
func (g *Generator) Fresh(prefix string) string {
	name := prefix + strconv.Itoa(g.counter)
	g.counter++
	return name
}
