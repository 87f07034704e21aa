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

import (
	"fmt"
	"io"
	"os"

	"github.com/kr/pretty"
)

// Trace controls whether rule applications are logged. Trace messages are
// advisory only and must never affect behavior (spec §6).
var Trace = false

// TraceOut is where trace messages are written when Trace is enabled.
var TraceOut io.Writer = os.Stderr

// Log writes a trace message naming the rule and pretty-printing its
// arguments, using the same library the pack's smasher164-gflat tests use
// to diff expected/actual values (lexer/lexer_test.go's pretty.Ldiff).
func Log(rule string, args ...interface{}) {
	if !Trace {
		return
	}
	fmt.Fprintf(TraceOut, "%s: %s\n", rule, pretty.Sprint(args...))
}
