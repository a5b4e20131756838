package kdl

import (
	"strings"

	"github.com/fatih/color"
)

type Colorable struct {
	Type ValueType
	Attr ColorAttr
}

type ColorAttr int

const (
	NameColor ColorAttr = iota
	TagColor
	KeyColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ValueTypes() {
		able := Colorable{
			Type: t,
			Attr: TagColor,
		}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = KeyColor
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	}
	colors.Map[Colorable{Type: NullType, Attr: NameColor}] = color.RGB(196, 96, 16).SprintfFunc()

	able := Colorable{Attr: ValueColor}
	able.Type = NumberType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Type = NullType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	able.Type = BoolType
	colors.Map[able] = color.CyanString
	able.Type = StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ValueType, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ValueType, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
