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

// Package bicheck implements complete and easy bidirectional typechecking
// for higher-rank polymorphism: a declarative context of ordered notes,
// mutually recursive Check/Infer/InferApp judgments, subtyping, and
// instantiation of existential type variables. Callers build terms with
// the construct package or by hand, then call InferExpression.
package bicheck

import (
	"github.com/go-bicheck/bicheck/internal/typeutil"
	"github.com/go-bicheck/bicheck/term"
)

// InferExpression infers and checks e in the empty context and returns
// the fully-annotated term, with every type slot resolved to its final
// solution. A fresh Generator is allocated per call, so calls share no
// counter state: each call's existential names start again at a1.
func InferExpression(e term.Term) (term.Term, error) {
	gen := typeutil.NewGenerator()
	_, annotated, delta, err := Infer(typeutil.Empty(), gen, e)
	if err != nil {
		return nil, err
	}
	return typeutil.ApplyExpr(delta, annotated), nil
}
