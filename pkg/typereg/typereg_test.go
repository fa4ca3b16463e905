package typereg

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vango-dev/shellroute/pkg/element"
)

type settingsPage struct {
	element.Base
	Title string
}

type plainStruct struct {
	N int
}

const pkgPath = "github.com/vango-dev/shellroute/pkg/typereg"

func TestQualifiedName(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want string
	}{
		{"struct", reflect.TypeFor[settingsPage](), pkgPath + ".settingsPage"},
		{"pointer", reflect.TypeFor[*settingsPage](), pkgPath + ".settingsPage"},
		{"builtin", reflect.TypeFor[int](), "int"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QualifiedName(tt.typ); got != tt.want {
				t.Errorf("QualifiedName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConstruct(t *testing.T) {
	v := Construct(reflect.TypeFor[settingsPage]())
	p, ok := v.(*settingsPage)
	if !ok {
		t.Fatalf("Construct() = %T, want *settingsPage", v)
	}
	if p.Title != "" {
		t.Errorf("Title = %q, want zero value", p.Title)
	}

	v = Construct(reflect.TypeFor[*settingsPage]())
	if _, ok := v.(*settingsPage); !ok {
		t.Errorf("Construct(*T) = %T, want *settingsPage", v)
	}
}

func TestRegisterAndResolve(t *testing.T) {
	r := New()
	if err := Add[settingsPage](r); err != nil {
		t.Fatalf("Add: %v", err)
	}

	name := pkgPath + ".settingsPage"
	typ, ok := r.Lookup(name)
	if !ok {
		t.Fatalf("Lookup(%q) not found", name)
	}
	if typ != reflect.TypeFor[settingsPage]() {
		t.Errorf("Lookup() = %v", typ)
	}

	el, ok := r.ResolveAndConstruct(name)
	if !ok {
		t.Fatal("ResolveAndConstruct() failed")
	}
	if _, ok := el.(*settingsPage); !ok {
		t.Errorf("ResolveAndConstruct() = %T, want *settingsPage", el)
	}

	other, _ := r.ResolveAndConstruct(name)
	if other == el {
		t.Error("each call should construct a new instance")
	}
}

func TestResolveUnknownAndNonElement(t *testing.T) {
	r := New()
	if err := Add[plainStruct](r); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if el, ok := r.ResolveAndConstruct("Unregistered.Nonexistent.Type"); ok || el != nil {
		t.Errorf("unknown name resolved to %v", el)
	}

	name := pkgPath + ".plainStruct"
	if _, ok := r.New(name); !ok {
		t.Errorf("New(%q) should construct a non-element type", name)
	}
	if el, ok := r.ResolveAndConstruct(name); ok || el != nil {
		t.Errorf("non-element type resolved to %v", el)
	}
}

func TestRegisterErrors(t *testing.T) {
	r := New()

	if err := r.Register(nil); !errors.Is(err, ErrNilType) {
		t.Errorf("Register(nil) = %v, want ErrNilType", err)
	}
	if err := r.Register(reflect.TypeOf(struct{}{})); !errors.Is(err, ErrUnnamedType) {
		t.Errorf("Register(anonymous) = %v, want ErrUnnamedType", err)
	}
	if err := r.RegisterAs("", reflect.TypeFor[settingsPage]()); !errors.Is(err, ErrEmptyName) {
		t.Errorf("RegisterAs(\"\") = %v, want ErrEmptyName", err)
	}

	if err := r.RegisterAs("settings", reflect.TypeFor[settingsPage]()); err != nil {
		t.Fatalf("RegisterAs: %v", err)
	}
	if err := r.RegisterAs("settings", reflect.TypeFor[*settingsPage]()); err != nil {
		t.Errorf("re-registering the same type should be a no-op, got %v", err)
	}
	if err := r.RegisterAs("settings", reflect.TypeFor[plainStruct]()); !errors.Is(err, ErrConflictingRegistration) {
		t.Errorf("conflicting RegisterAs = %v, want ErrConflictingRegistration", err)
	}
}

func TestNames(t *testing.T) {
	r := New()
	_ = r.RegisterAs("b", reflect.TypeFor[settingsPage]())
	_ = r.RegisterAs("a", reflect.TypeFor[plainStruct]())

	got := r.Names()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Names() = %v, want [a b]", got)
	}
}
