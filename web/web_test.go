package web_test

import (
	"testing"

	"github.com/dex2c/dtcjit/web"
)

func TestNameRendersTypeCharAndRegister(t *testing.T) {
	cases := []struct {
		t    web.DataType
		want string
	}{
		{web.Unknown, "vx3"},
		{web.Boolean, "vz3"},
		{web.Int, "vi3"},
		{web.Long, "vl3"},
		{web.Float, "vf3"},
		{web.Double, "vd3"},
		{web.Object, "vo3"},
	}
	for _, c := range cases {
		w := web.New(3)
		w.SetDataType(c.t)
		if got := w.Name(); got != c.want {
			t.Errorf("DataType %v: Name() = %q, want %q", c.t, got, c.want)
		}
	}
}

func TestSetDataTypeRefusesLocalOverwrite(t *testing.T) {
	w := web.NewWithRole(0, web.RoleLocalVar)
	w.DataType = web.Long // seeded directly, bypassing the guard, as debuginfo.Resolve does

	w.SetDataType(web.Int)

	if w.DataType != web.Long {
		t.Fatalf("DataType = %v, want Long (local webs must not be overwritten)", w.DataType)
	}
}

func TestSetDataTypeAppliesToNonLocal(t *testing.T) {
	w := web.New(0)
	w.SetDataType(web.Double)
	if w.DataType != web.Double {
		t.Fatalf("DataType = %v, want Double", w.DataType)
	}
}

func TestRoleFlags(t *testing.T) {
	w := web.NewWithRole(1, web.RoleLocalVar|web.RoleFuncArg)
	if !w.IsLocal() {
		t.Fatal("IsLocal() = false, want true")
	}
	if !w.IsArgument() {
		t.Fatal("IsArgument() = false, want true")
	}

	plain := web.New(1)
	if plain.IsLocal() || plain.IsArgument() {
		t.Fatal("a fresh web should carry no role flags")
	}
}

func TestCName(t *testing.T) {
	if got := web.Int.CName(); got != "j_int" {
		t.Fatalf("CName() = %q, want j_int", got)
	}
	if got := web.DataType(999).CName(); got != "j_unknown" {
		t.Fatalf("CName() for out-of-range type = %q, want j_unknown", got)
	}
}
