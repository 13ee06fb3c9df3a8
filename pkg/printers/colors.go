package printers

import "github.com/fatih/color"

// notionColors maps the source system's color tokens onto terminal colors.
// The token is an opaque display hint; anything unknown gets the default.
var notionColors = map[string]color.Attribute{
	"default":    color.FgWhite,
	"gray":       color.FgHiBlack,
	"light_gray": color.FgHiBlack,
	"brown":      color.FgHiYellow,
	"orange":     color.FgHiRed,
	"yellow":     color.FgYellow,
	"green":      color.FgGreen,
	"blue":       color.FgBlue,
	"purple":     color.FgMagenta,
	"pink":       color.FgHiMagenta,
	"red":        color.FgRed,
}

// TypeColor returns the color used for a task's type chip.
func TypeColor(token string) *color.Color {
	attr, ok := notionColors[token]
	if !ok {
		attr = notionColors["default"]
	}
	return color.New(attr)
}
