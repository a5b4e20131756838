package kdl

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type EncState struct {
	depth, indent int

	Color func(ValueType, ColorAttr, string) string
}

type EncodeOption func(*EncState)

func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// Encode writes node in KDL text form to w, followed by a newline.
func Encode(node *Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	return encodeNode(node, w, es)
}

// EncodeDocument writes each node of doc to w.
func EncodeDocument(doc *Document, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	for _, n := range doc.Nodes() {
		if err := encodeNode(n, w, es); err != nil {
			return err
		}
	}
	return nil
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{indent: 4}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func encodeNode(node *Node, w io.Writer, es *EncState) error {
	ind := strings.Repeat(" ", es.indent*es.depth)
	if err := writeString(w, ind); err != nil {
		return err
	}
	if node.tag != "" {
		if err := writeString(w, applyColor(es, NullType, TagColor, "("+identifier(node.tag)+")")); err != nil {
			return err
		}
	}
	if err := writeString(w, applyColor(es, NullType, NameColor, identifier(node.name))); err != nil {
		return err
	}
	for _, arg := range node.args {
		if err := writeString(w, " "+valueString(arg, es)); err != nil {
			return err
		}
	}
	for _, p := range node.Properties() {
		key := applyColor(es, p.Value.Type, KeyColor, identifier(p.Key))
		sep := applyColor(es, p.Value.Type, SepColor, "=")
		if err := writeString(w, " "+key+sep+valueString(p.Value, es)); err != nil {
			return err
		}
	}
	if node.child == nil {
		return writeString(w, "\n")
	}
	if node.child.IsEmpty() {
		return writeString(w, " "+applyColor(es, NullType, SepColor, "{}")+"\n")
	}
	if err := writeString(w, " "+applyColor(es, NullType, SepColor, "{")+"\n"); err != nil {
		return err
	}
	es.depth++
	for _, c := range node.child.nodes {
		if err := encodeNode(c, w, es); err != nil {
			es.depth--
			return err
		}
	}
	es.depth--
	return writeString(w, ind+applyColor(es, NullType, SepColor, "}")+"\n")
}

func valueString(v Value, es *EncState) string {
	res := applyColor(es, v.Type, ValueColor, v.Text())
	if v.Tag == "" {
		return res
	}
	return applyColor(es, v.Type, TagColor, "("+identifier(v.Tag)+")") + res
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, t ValueType, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

// identifier returns s as a bare KDL identifier when it can be written
// as one, otherwise as a quoted string.
func identifier(s string) string {
	if needsQuote(s) {
		return strconv.Quote(s)
	}
	return s
}

func needsQuote(s string) bool {
	switch s {
	case "", "true", "false", "null":
		return true
	}
	if strings.ContainsAny(s, `\/(){}<>;[]=,"`) {
		return true
	}
	for i, r := range s {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return true
		}
		if i == 0 && unicode.IsDigit(r) {
			return true
		}
	}
	if len(s) > 1 && (s[0] == '-' || s[0] == '+') && unicode.IsDigit(rune(s[1])) {
		return true
	}
	return false
}

// MustString returns the KDL text of node without the trailing newline.
func MustString(node *Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

func (n *Node) String() string {
	return MustString(n)
}

func (d *Document) String() string {
	buf := bytes.NewBuffer(nil)
	if err := EncodeDocument(d, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

func (v Value) GoString() string {
	if v.Tag == "" {
		return v.Text()
	}
	return "(" + identifier(v.Tag) + ")" + v.Text()
}
