package kdl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func pointNode() *Node {
	inner := NewNode("inner").Build()
	return NewNode("point").
		AddArgs(FromString("a"), FromString("b")).
		AddProp("x", FromInt(1)).
		AddProp("y", FromInt(2)).
		SetChild(NewDocument(inner)).
		Build()
}

func TestBuilderIsolation(t *testing.T) {
	b := NewNode("n").AddArg(FromInt(1)).AddProp("k", FromString("v"))
	first := b.Build()
	b.AddArg(FromInt(2)).AddProp("k", FromString("w"))
	second := b.Build()

	if first.NumArgs() != 1 {
		t.Fatalf("first node has %d args, want 1", first.NumArgs())
	}
	v, _ := first.Prop("k")
	if v.String != "v" {
		t.Errorf("first node prop k = %q, want %q", v.String, "v")
	}
	if second.NumArgs() != 2 {
		t.Errorf("second node has %d args, want 2", second.NumArgs())
	}
}

func TestAccessorsCopy(t *testing.T) {
	n := pointNode()
	args := n.Args()
	args[0] = FromString("z")
	props := n.Props()
	delete(props, "x")
	*props["y"].Int64 = 99

	if got := n.Arg(0).String; got != "a" {
		t.Errorf("arg 0 = %q after mutating copy", got)
	}
	y, ok := n.Prop("y")
	if !ok || *y.Int64 != 2 {
		t.Errorf("prop y = %v after mutating copy", y.GoString())
	}
	if _, ok := n.Prop("x"); !ok {
		t.Errorf("prop x removed by mutating copy")
	}
}

func TestToBuilder(t *testing.T) {
	n := NewNode("point").SetTag("shape").AddArg(FromInt(1)).SetChild(Empty()).Build()
	res := n.ToBuilder().Build()
	if res.Name() != "point" || res.Tag() != "shape" {
		t.Fatalf("got %s", res)
	}
	if res.NumArgs() != 0 || res.NumProps() != 0 || res.HasChild() {
		t.Errorf("ToBuilder carried over contents: %s", res)
	}
}

func TestProperties(t *testing.T) {
	n := pointNode()
	got := n.Properties()
	want := []Property{
		NewProperty("x", FromInt(1)),
		NewProperty("y", FromInt(2)),
	}
	if diff := cmp.Diff(want, got, cmp.Comparer(ValueEqual)); diff != "" {
		t.Errorf("Properties() mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyDocument(t *testing.T) {
	if Empty() != NewDocument() {
		t.Errorf("NewDocument() is not the canonical empty document")
	}
	if !Empty().IsEmpty() {
		t.Errorf("Empty() is not empty")
	}
	var none *Document
	if none.Len() != 0 || none.Nodes() != nil {
		t.Errorf("nil document has contents")
	}
}

func TestFromNumber(t *testing.T) {
	for _, tc := range []struct {
		in    string
		isInt bool
		isFlt bool
	}{
		{in: "10", isInt: true},
		{in: "0x1f", isInt: true},
		{in: "1.5", isFlt: true},
		{in: "1e3", isFlt: true},
		{in: "1_000", isInt: true},
	} {
		v := FromNumber(tc.in)
		if v.Type != NumberType {
			t.Errorf("%s: type %s", tc.in, v.Type)
		}
		if (v.Int64 != nil) != tc.isInt || (v.Float64 != nil) != tc.isFlt {
			t.Errorf("%s: int64 %v float64 %v", tc.in, v.Int64 != nil, v.Float64 != nil)
		}
		if v.Text() != tc.in {
			t.Errorf("%s: text %q", tc.in, v.Text())
		}
	}
}
