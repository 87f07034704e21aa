package term

import (
	"testing"

	"github.com/go-bicheck/bicheck/types"
)

func TestTypeOfAbsConstructsFun(t *testing.T) {
	abs := &Abs{Arg: "x", ArgType: types.UVar{Name: "a"}, Body: Var{Name: "x", Type: types.UVar{Name: "a"}}}
	got := TypeOf(abs)
	want := &types.Fun{Domain: types.UVar{Name: "a"}, Codomain: types.UVar{Name: "a"}}
	if !got.Equal(want) {
		t.Errorf("TypeOf(abs) = %s, want %s", types.String(got), types.String(want))
	}
}

func TestTypeOfLetReturnsBodyType(t *testing.T) {
	let := &Let{Name: "x", Bound: Unit{}, Body: Var{Name: "x", Type: types.Unit{}}}
	if !TypeOf(let).Equal(types.Unit{}) {
		t.Errorf("TypeOf(let) = %s, want Unit", types.String(TypeOf(let)))
	}
}

func TestStringRendersLambda(t *testing.T) {
	abs := &Abs{Arg: "x", ArgType: types.Unset{}, Body: Var{Name: "x", Type: types.Unset{}}}
	got := String(abs)
	want := `\x. x`
	if got != want {
		t.Errorf("String(abs) = %q, want %q", got, want)
	}
}

func TestStringRendersAnnotation(t *testing.T) {
	ann := &Ann{Body: Unit{}, Declared: types.Unit{}}
	got := String(ann)
	want := "() : Unit"
	if got != want {
		t.Errorf("String(ann) = %q, want %q", got, want)
	}
}
