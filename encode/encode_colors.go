package encode

import (
	"fmt"
	"strings"

	"github.com/attrtree/go-attrtree/ir"
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
	for _, t := range ir.Types() {
		able := Colorable{
			Type: t,
			Attr: SepColor,
		}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = ir.NumberType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	able.Attr = ValueColor

	able.Type = ir.NullType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Type = ir.BoolType
	colors.Map[able] = color.CyanString

	able.Type = ir.OpaqueType
	colors.Map[able] = color.BlueString

	able.Type = ir.NodeType
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Attr = SepColor
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()

	able.Type = ir.TupleType
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()

	able.Type = ir.StringType
	able.Attr = ValueColor
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
	res := c.Get(t, a)(s)
	return res
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

// colorYAML highlights YAML text token by token.
func colorYAML(src string) string {
	p := &printer.Printer{
		MapKey:  yamlProperty(color.FgHiCyan),
		Bool:    yamlProperty(color.FgHiMagenta),
		String:  yamlProperty(color.FgHiGreen),
		Number:  yamlProperty(color.FgHiYellow),
		Anchor:  yamlProperty(color.FgHiBlue),
		Alias:   yamlProperty(color.FgHiBlue),
		Comment: yamlProperty(color.FgBlue),
	}
	return p.PrintTokens(lexer.Tokenize(src))
}

func yamlProperty(attr color.Attribute) printer.PrintFunc {
	return func() *printer.Property {
		return &printer.Property{
			Prefix: fmt.Sprintf("\x1b[%dm", attr),
			Suffix: fmt.Sprintf("\x1b[%dm", color.Reset),
		}
	}
}
