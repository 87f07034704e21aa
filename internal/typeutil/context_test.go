package typeutil

import (
	"testing"

	"github.com/kr/pretty"

	"github.com/go-bicheck/bicheck/types"
)

func TestPeelPastUVar(t *testing.T) {
	ctx := Empty().Push(NEVar{Name: "c"}).Push(NUVar{Name: "a"}).Push(NUVar{Name: "b"})

	got := ctx.PeelUVar("a").Notes()
	want := []Note{NEVar{Name: "c"}}

	if len(got) != len(want) || got[0] != want[0] {
		t.Errorf("PeelUVar(a) = %s, want %s", pretty.Sprint(got), pretty.Sprint(want))
	}
}

func TestPeelAbsentNoteIsEmpty(t *testing.T) {
	ctx := Empty().Push(NUVar{Name: "a"})
	got := ctx.PeelUVar("nope")
	if got.Len() != 0 {
		t.Errorf("PeelUVar on absent note = %d notes, want empty", got.Len())
	}
}

func TestSplitEVarFindsSolvedAndUnsolved(t *testing.T) {
	ctx := Empty().Push(NEVar{Name: "a"}).Push(NSolved{Name: "b", Type: types.Unit{}}).Push(NEVar{Name: "c"})

	post, pre, ok := ctx.SplitEVar("b")
	if !ok {
		t.Fatal("SplitEVar(b) not found")
	}
	if len(post) != 1 || post[0] != Note(NEVar{Name: "c"}) {
		t.Errorf("post = %s, want [EVar(c)]", pretty.Sprint(post))
	}
	if pre.Len() != 1 || pre.Notes()[0] != Note(NEVar{Name: "a"}) {
		t.Errorf("pre = %s, want [EVar(a)]", pretty.Sprint(pre.Notes()))
	}
}

func TestSplitAbsentNoteFails(t *testing.T) {
	ctx := Empty().Push(NUVar{Name: "a"})
	_, _, ok := ctx.SplitEVar("missing")
	if ok {
		t.Error("SplitEVar on absent note should fail")
	}
}

func TestAssumpFindsUniqueMatch(t *testing.T) {
	ctx := Empty().Push(NAssump{Var: "x", Type: types.Unit{}}).Push(NUVar{Name: "a"})
	typ, ok, err := ctx.Assump("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || !typ.Equal(types.Unit{}) {
		t.Errorf("Assump(x) = %v, %v, want Unit, true", typ, ok)
	}
}

func TestAssumpDuplicateIsInvariantError(t *testing.T) {
	ctx := Empty().Push(NAssump{Var: "x", Type: types.Unit{}}).Push(NAssump{Var: "x", Type: types.UVar{Name: "a"}})
	_, _, err := ctx.Assump("x")
	if err == nil {
		t.Fatal("expected InvariantError for duplicate Assump notes")
	}
	if _, ok := err.(*InvariantError); !ok {
		t.Errorf("err = %T, want *InvariantError", err)
	}
}

func TestHasUVarAndHasEVar(t *testing.T) {
	ctx := Empty().Push(NUVar{Name: "a"}).Push(NSolved{Name: "b", Type: types.Unit{}})
	if !ctx.HasUVar("a") {
		t.Error("HasUVar(a) = false, want true")
	}
	if !ctx.HasEVar("b") {
		t.Error("HasEVar(b) = false, want true (Solved counts as EVar)")
	}
	if ctx.HasEVar("a") {
		t.Error("HasEVar(a) = true, want false")
	}
}

func TestPushAllPreservesOrder(t *testing.T) {
	ctx := Empty().PushAll(NUVar{Name: "a"}, NUVar{Name: "b"}, NUVar{Name: "c"})
	notes := ctx.Notes()
	if len(notes) != 3 || notes[0] != Note(NUVar{Name: "a"}) || notes[2] != Note(NUVar{Name: "c"}) {
		t.Errorf("Notes() = %s, want [a, b, c] newest first", pretty.Sprint(notes))
	}
}
