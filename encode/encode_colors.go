package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/glinford/excel-formula-parser/token"
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[token.TokenType]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[token.TokenType]func(string, ...any) string{},
	}
	colors.Map[token.TFunction] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[token.TSubexpression] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[token.TOperand] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[token.TArgument] = color.CyanString
	colors.Map[token.TOperatorPrefix] = color.RGB(255, 0, 196).SprintfFunc()
	colors.Map[token.TOperatorInfix] = color.RGB(255, 0, 196).SprintfFunc()
	colors.Map[token.TOperatorPostfix] = color.RGB(255, 0, 196).SprintfFunc()
	colors.Map[token.TWhitespace] = color.RGB(96, 96, 96).SprintfFunc()
	colors.Map[token.TUnknown] = color.RedString
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Get(t token.TokenType) func(string, ...any) string {
	f := c.Map[t]
	if f == nil {
		return c.Default
	}
	return f
}
