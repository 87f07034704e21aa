package types

import "testing"

func TestIsMonotype(t *testing.T) {
	cases := []struct {
		name string
		typ  Type
		want bool
	}{
		{"unit", Unit{}, true},
		{"uvar", UVar{Name: "a"}, true},
		{"evar", EVar{Name: "a"}, true},
		{"forall", &Forall{Name: "a", Body: UVar{Name: "a"}}, false},
		{"fun of monotypes", &Fun{Domain: Unit{}, Codomain: EVar{Name: "a"}}, true},
		{"fun with forall domain", &Fun{Domain: &Forall{Name: "a", Body: UVar{Name: "a"}}, Codomain: Unit{}}, false},
		{"fun with forall codomain", &Fun{Domain: Unit{}, Codomain: &Forall{Name: "a", Body: UVar{Name: "a"}}}, false},
	}
	for _, c := range cases {
		if got := c.typ.IsMonotype(); got != c.want {
			t.Errorf("%s: IsMonotype() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestEqual(t *testing.T) {
	a := &Fun{Domain: UVar{Name: "a"}, Codomain: UVar{Name: "a"}}
	b := &Fun{Domain: UVar{Name: "a"}, Codomain: UVar{Name: "a"}}
	c := &Fun{Domain: UVar{Name: "a"}, Codomain: UVar{Name: "b"}}

	if !a.Equal(b) {
		t.Error("structurally identical Fun types should be Equal")
	}
	if a.Equal(c) {
		t.Error("structurally different Fun types should not be Equal")
	}
	if a.Equal(EVar{Name: "a"}) {
		t.Error("different variants should never be Equal")
	}
}

func TestFreeExistentials(t *testing.T) {
	typ := &Fun{
		Domain:   EVar{Name: "a"},
		Codomain: &Forall{Name: "b", Body: &Fun{Domain: UVar{Name: "b"}, Codomain: EVar{Name: "c"}}},
	}
	got := FreeExistentials(typ)
	want := map[string]bool{"a": true, "c": true}
	if len(got) != len(want) {
		t.Fatalf("FreeExistentials = %v, want keys of %v", got, want)
	}
	for _, name := range got {
		if !want[name] {
			t.Errorf("unexpected free existential %q", name)
		}
	}
}

func TestContainsExistentialIgnoresUniversals(t *testing.T) {
	typ := &Forall{Name: "a", Body: UVar{Name: "a"}}
	if ContainsExistential(typ, "a") {
		t.Error("ContainsExistential should not count bound universal names")
	}
}
