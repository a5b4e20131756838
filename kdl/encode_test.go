package kdl

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncode(t *testing.T) {
	for _, tc := range []struct {
		name string
		node *Node
		out  string
	}{
		{
			name: "bare",
			node: NewNode("node").Build(),
			out:  "node",
		},
		{
			name: "args and props",
			node: NewNode("point").
				AddArgs(FromString("a"), FromBool(true), Null()).
				AddProp("y", FromFloat(2.5)).
				AddProp("x", FromInt(1)).
				Build(),
			out: `point "a" true null x=1 y=2.5`,
		},
		{
			name: "tags and quoted names",
			node: NewNode("my node").
				SetTag("shape").
				AddArg(FromInt(10).WithTag("u8")).
				AddProp("a=b", FromString("c")).
				Build(),
			out: `(shape)"my node" (u8)10 "a=b"="c"`,
		},
		{
			name: "empty child",
			node: NewNode("parent").SetChild(Empty()).Build(),
			out:  "parent {}",
		},
		{
			name: "child",
			node: pointNode(),
			out:  "point \"a\" \"b\" x=1 y=2 {\n    inner\n}",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := MustString(tc.node); got != tc.out {
				t.Errorf("got\n%s\nwant\n%s", got, tc.out)
			}
		})
	}
}

func TestEncodeColors(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	c := &Colors{
		Default: colorDefault,
		Map: map[Colorable]func(string, ...any) string{
			{Type: StringType, Attr: ValueColor}: func(v string, _ ...any) string {
				return "<" + v + ">"
			},
		},
	}
	if err := Encode(pointNode(), buf, EncodeColors(c), EncodeIndent(2)); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.HasPrefix(got, `point <"a"> <"b"> x=1`) {
		t.Errorf("colors not applied: %q", got)
	}
	if !strings.Contains(got, "\n  inner\n") {
		t.Errorf("indent not applied: %q", got)
	}
}

func TestDocumentString(t *testing.T) {
	doc := NewDocument(NewNode("a").Build(), NewNode("b").AddArg(FromInt(1)).Build())
	if got, want := doc.String(), "a\nb 1"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
