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
	"github.com/benbjohnson/immutable"
	"github.com/samber/lo"

	"github.com/go-bicheck/bicheck/types"
)

// Context is an ordered, persistent sequence of notes. Index 0 of the
// backing list is the newest note -- what the paper writes as Γ, α is here
// Push(Γ, α). Every operation below returns a new Context; none of them
// mutate the receiver, so a Context handed to a caller remains valid after
// further notes are pushed onto copies of it (spec §5).
type Context struct {
	notes *immutable.List
}

// Empty is the empty context.
func Empty() Context {
	return Context{notes: immutable.NewList()}
}

// Len returns the number of notes in c.
func (c Context) Len() int {
	if c.notes == nil {
		return 0
	}
	return c.notes.Len()
}

// Push returns a new context with n as the newest note.
func (c Context) Push(n Note) Context {
	base := c.notes
	if base == nil {
		base = immutable.NewList()
	}
	return Context{notes: base.Prepend(n)}
}

// PushAll pushes notes in the given order (notes[0] ends up newest),
// equivalent to calling Push once per element from last to first.
func (c Context) PushAll(notes ...Note) Context {
	for i := len(notes) - 1; i >= 0; i-- {
		c = c.Push(notes[i])
	}
	return c
}

// Notes returns the notes in the context, newest first.
func (c Context) Notes() []Note {
	if c.Len() == 0 {
		return nil
	}
	out := make([]Note, 0, c.Len())
	iter := c.notes.Iterator()
	for !iter.Done() {
		_, v := iter.Next()
		out = append(out, v.(Note))
	}
	return out
}

func (c Context) indexOf(pred func(Note) bool) (int, bool) {
	if c.Len() == 0 {
		return 0, false
	}
	iter := c.notes.Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if pred(v.(Note)) {
			return i, true
		}
	}
	return 0, false
}

// Peel returns the suffix of c strictly older than the note matched by
// pred. Returns the empty context if no note matches.
func (c Context) Peel(pred func(Note) bool) Context {
	idx, ok := c.indexOf(pred)
	if !ok {
		return Empty()
	}
	return Context{notes: c.notes.Slice(idx+1, c.notes.Len())}
}

// PeelUVar peels past the UVar note for name.
func (c Context) PeelUVar(name string) Context {
	return c.Peel(func(n Note) bool { return sameUVar(n, name) })
}

// PeelMarker peels past the Marker note for name.
func (c Context) PeelMarker(name string) Context {
	return c.Peel(func(n Note) bool { return sameMarker(n, name) })
}

// PeelAssump peels past the Assump note for varName.
func (c Context) PeelAssump(varName string) Context {
	return c.Peel(func(n Note) bool {
		a, ok := n.(NAssump)
		return ok && a.Var == varName
	})
}

// Split returns (post, pre) where post is the sequence of notes newer than
// the note matched by pred (newest-first, preserving order) and pre is the
// context of notes older than it. ok is false if no note matches; each
// caller reports that with its own error (the instantiation judgments as
// an instantiation error, InferApp as an unbound existential).
func (c Context) Split(pred func(Note) bool) (post []Note, pre Context, ok bool) {
	idx, found := c.indexOf(pred)
	if !found {
		return nil, Empty(), false
	}
	post = make([]Note, 0, idx)
	iter := c.notes.Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if i >= idx {
			break
		}
		post = append(post, v.(Note))
	}
	return post, Context{notes: c.notes.Slice(idx+1, c.notes.Len())}, true
}

// SplitEVar splits at the EVar or Solved note for name.
func (c Context) SplitEVar(name string) (post []Note, pre Context, ok bool) {
	return c.Split(func(n Note) bool { return sameEVar(n, name) })
}

// Assump returns the unique Assump note for varName in c, if present.
// Multiple matches are a structural bug (spec §4.1, invariant 1) and are
// reported as an *InvariantError rather than silently picking one.
func (c Context) Assump(varName string) (types.Type, bool, error) {
	matches := lo.Filter(c.Notes(), func(n Note, _ int) bool {
		a, ok := n.(NAssump)
		return ok && a.Var == varName
	})
	switch len(matches) {
	case 0:
		return nil, false, nil
	case 1:
		return matches[0].(NAssump).Type, true, nil
	default:
		return nil, false, &InvariantError{Detail: "multiple Assump notes for " + varName}
	}
}

// Solution returns the unique Solved note's type for name in c, if
// present. Apply (§4.1) has no error outcome of its own, so unlike
// Assump, multiple matches here panic with an *InvariantError rather than
// threading an error return through every Apply call -- this can only
// happen if some other operation broke invariant 1, which is always a
// bug in this package, never in caller input.
func (c Context) Solution(name string) (types.Type, bool) {
	matches := lo.Filter(c.Notes(), func(n Note, _ int) bool {
		s, ok := n.(NSolved)
		return ok && s.Name == name
	})
	switch len(matches) {
	case 0:
		return nil, false
	case 1:
		return matches[0].(NSolved).Type, true
	default:
		panic(&InvariantError{Detail: "multiple Solved notes for " + name})
	}
}

// HasUVar reports whether c contains a UVar note for name.
func (c Context) HasUVar(name string) bool {
	_, ok := c.indexOf(func(n Note) bool { return sameUVar(n, name) })
	return ok
}

// HasEVar reports whether c contains an EVar or Solved note for name.
func (c Context) HasEVar(name string) bool {
	_, ok := c.indexOf(func(n Note) bool { return sameEVar(n, name) })
	return ok
}

// IndexOfEVar returns the position (0 = newest) of the EVar or Solved note
// for name.
func (c Context) IndexOfEVar(name string) (int, bool) {
	return c.indexOf(func(n Note) bool { return sameEVar(n, name) })
}
