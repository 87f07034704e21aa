package types

import "testing"

func TestSubstReplacesMatches(t *testing.T) {
	a := &Fun{Domain: EVar{Name: "a"}, Codomain: EVar{Name: "a"}}
	got := Subst(Unit{}, EVar{Name: "a"}, a)
	want := &Fun{Domain: Unit{}, Codomain: Unit{}}
	if !got.Equal(want) {
		t.Errorf("Subst = %s, want %s", String(got), String(want))
	}
}

func TestSubstIdentityWhenAbsent(t *testing.T) {
	a := &Fun{Domain: Unit{}, Codomain: Unit{}}
	got := Subst(UVar{Name: "x"}, EVar{Name: "a"}, a)
	if !got.Equal(a) {
		t.Errorf("Subst with absent target should be identity, got %s", String(got))
	}
}

func TestSubstSelfIsIdentity(t *testing.T) {
	got := Subst(Unit{}, EVar{Name: "a"}, EVar{Name: "a"})
	if !got.Equal(Unit{}) {
		t.Errorf("Subst(t, u, u) should equal t, got %s", String(got))
	}
}

func TestSubstIntoQuantifierBody(t *testing.T) {
	a := &Forall{Name: "b", Body: &Fun{Domain: UVar{Name: "b"}, Codomain: EVar{Name: "a"}}}
	got := Subst(Unit{}, EVar{Name: "a"}, a)
	want := &Forall{Name: "b", Body: &Fun{Domain: UVar{Name: "b"}, Codomain: Unit{}}}
	if !got.Equal(want) {
		t.Errorf("Subst = %s, want %s", String(got), String(want))
	}
}
