package bicheck

import (
	"testing"

	"github.com/kr/pretty"

	"github.com/go-bicheck/bicheck/construct"
	"github.com/go-bicheck/bicheck/internal/typeutil"
	"github.com/go-bicheck/bicheck/term"
	"github.com/go-bicheck/bicheck/types"
)

func identityType() *types.Forall {
	return construct.TForall("a", construct.TFun(construct.TUVar("a"), construct.TUVar("a")))
}

func identityTerm() *term.Ann {
	return construct.Ann(construct.Abs("x", construct.Var("x")), identityType())
}

// Scenario 1: (\x. x) : (forall a. a -> a). infer's Ann case returns the
// declared type alongside the stripped-down checked body (spec §4.5), so
// the quantifier only survives in the type half of the result, not as a
// wrapper node on the term.
func TestIdentityAnnotation(t *testing.T) {
	gen := typeutil.NewGenerator()
	typ, annotated, delta, err := Infer(typeutil.Empty(), gen, identityTerm())
	if err != nil {
		t.Fatalf("Infer: %v", err)
	}
	if !typ.Equal(identityType()) {
		t.Errorf("type = %s, want %s", types.String(typ), types.String(identityType()))
	}

	body := typeutil.ApplyExpr(delta, annotated)
	abs, ok := body.(*term.Abs)
	if !ok {
		t.Fatalf("body = %# v, want *term.Abs", pretty.Formatter(body))
	}
	inner, ok := abs.Body.(term.Var)
	if !ok {
		t.Fatalf("abs body = %# v, want term.Var", pretty.Formatter(abs.Body))
	}
	if !inner.Type.Equal(construct.TUVar("a")) {
		t.Errorf("inner x type = %s, want a", types.String(inner.Type))
	}
}

// Scenario 2: \x. x infers to a function from one existential to itself.
func TestIdentityInferred(t *testing.T) {
	result, err := InferExpression(construct.Abs("x", construct.Var("x")))
	if err != nil {
		t.Fatalf("InferExpression: %v", err)
	}
	abs := result.(*term.Abs)
	got := term.TypeOf(abs)
	want := construct.TFun(construct.TEVar("a1"), construct.TEVar("a1"))
	if !got.Equal(want) {
		t.Errorf("type = %s, want %s", types.String(got), types.String(want))
	}
}

// Scenario 3: applying an annotated identity function to unit.
func TestApplyIdentityToUnit(t *testing.T) {
	e := construct.App(identityTerm(), construct.Unit())
	result, err := InferExpression(e)
	if err != nil {
		t.Fatalf("InferExpression: %v", err)
	}
	app := result.(*term.App)
	if !app.Type.Equal(construct.TUnit()) {
		t.Errorf("App.Type = %s, want Unit", types.String(app.Type))
	}
	if !term.TypeOf(app).Equal(construct.TUnit()) {
		t.Errorf("TypeOf(result) = %s, want Unit", types.String(term.TypeOf(app)))
	}
}

// Scenario 4: let id = (\x. x) : (forall a. a -> a) in id ().
func TestLetBindingIdentity(t *testing.T) {
	e := construct.Let("id", identityTerm(), construct.App(construct.Var("id"), construct.Unit()))
	result, err := InferExpression(e)
	if err != nil {
		t.Fatalf("InferExpression: %v", err)
	}
	if !term.TypeOf(result).Equal(construct.TUnit()) {
		t.Errorf("TypeOf(result) = %s, want Unit", types.String(term.TypeOf(result)))
	}

	let := result.(*term.Let)
	app := let.Body.(*term.App)
	idVar := app.Fn.(term.Var)
	if !idVar.Type.Equal(identityType()) {
		t.Errorf("id's type in the body = %s, want forall a. a -> a", types.String(idVar.Type))
	}
}

// Scenario 5: a function expecting a polymorphic argument, applied to one.
// The parameter's own quantifier is bound as "b" rather than reusing "a" so
// that checking the identity argument against it doesn't nest two UVars of
// the same name in scope at once.
func TestHigherRankArgument(t *testing.T) {
	rankTwoParam := construct.TForall("b", construct.TFun(construct.TUVar("b"), construct.TUVar("b")))
	fn := construct.Ann(
		construct.Abs("f", construct.App(construct.Var("f"), construct.Unit())),
		construct.TFun(rankTwoParam, construct.TUnit()),
	)
	e := construct.App(fn, identityTerm())
	result, err := InferExpression(e)
	if err != nil {
		t.Fatalf("InferExpression: %v", err)
	}
	if !term.TypeOf(result).Equal(construct.TUnit()) {
		t.Errorf("TypeOf(result) = %s, want Unit", types.String(term.TypeOf(result)))
	}
}

// Scenario 6: (\x. x) : Unit is a subtype mismatch.
func TestAnnotationMismatch(t *testing.T) {
	e := construct.Ann(construct.Abs("x", construct.Var("x")), construct.TUnit())
	_, err := InferExpression(e)
	if err == nil {
		t.Fatal("expected a subtype mismatch error")
	}
	if _, ok := err.(*SubtypeError); !ok {
		t.Errorf("err = %T, want *SubtypeError", err)
	}
}

func TestEmptyContextUnit(t *testing.T) {
	result, err := InferExpression(construct.Unit())
	if err != nil {
		t.Fatalf("InferExpression: %v", err)
	}
	if !term.TypeOf(result).Equal(construct.TUnit()) {
		t.Errorf("TypeOf(result) = %s, want Unit", types.String(term.TypeOf(result)))
	}
}

func TestUnboundVariableError(t *testing.T) {
	_, err := InferExpression(construct.Var("nope"))
	if _, ok := err.(*UnboundVariableError); !ok {
		t.Errorf("err = %T, want *UnboundVariableError", err)
	}
}

// apply is idempotent once a context is fixed.
func TestApplyIdempotent(t *testing.T) {
	c := typeutil.Empty().Push(typeutil.NSolved{Name: "a", Type: types.Unit{}})
	typ := types.EVar{Name: "a"}
	once := typeutil.Apply(c, typ)
	twice := typeutil.Apply(c, once)
	if !once.Equal(twice) {
		t.Errorf("apply(c, apply(c, A)) = %s, want %s", types.String(twice), types.String(once))
	}
}
