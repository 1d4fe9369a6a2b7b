package encode

import (
	"strings"

	"github.com/signadot/praat-format/ir"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
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
	for _, t := range ir.Types() {
		colors.Map[Colorable{Type: t, Attr: FieldColor}] = color.RGB(196, 96, 16).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}
	able.Type = ir.IntType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Type = ir.FloatType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Type = ir.StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

// property returns the escape sequences surrounding a text colored as
// (t, a).
func (c *Colors) property(t ir.Type, a ColorAttr) printer.PrintFunc {
	pre, suf, _ := strings.Cut(c.Color(t, a, "\x00"), "\x00")
	return func() *printer.Property {
		return &printer.Property{Prefix: pre, Suffix: suf}
	}
}

// paint colors the keys and scalars of a YAML or JSON document.
func (c *Colors) paint(d []byte) string {
	p := &printer.Printer{
		MapKey: c.property(ir.StringType, FieldColor),
		String: c.property(ir.StringType, ValueColor),
		Number: c.property(ir.FloatType, ValueColor),
	}
	return p.PrintTokens(lexer.Tokenize(string(d)))
}
