package render

import (
	"strings"

	"github.com/fatih/color"
)

var attributes = map[string]color.Attribute{
	"black":     color.FgBlack,
	"red":       color.FgRed,
	"green":     color.FgGreen,
	"yellow":    color.FgYellow,
	"blue":      color.FgBlue,
	"magenta":   color.FgMagenta,
	"cyan":      color.FgCyan,
	"white":     color.FgWhite,
	"bold":      color.Bold,
	"italic":    color.Italic,
	"underline": color.Underline,
}

// Render expands {token} style markup into ANSI escapes. Style tokens
// accumulate until a {-} reset; unknown tokens pass through literally.
// When color.NoColor is set the tokens are simply stripped.
func Render(template string) string {
	var out strings.Builder
	var attrs []color.Attribute

	rest := template
	for {
		i := strings.IndexByte(rest, '{')
		if i < 0 {
			break
		}
		j := strings.IndexByte(rest[i:], '}')
		if j < 0 {
			break
		}

		writeStyled(&out, rest[:i], attrs)

		name := rest[i+1 : i+j]
		if name == "-" {
			attrs = nil
		} else if attr, ok := attributes[name]; ok {
			attrs = append(attrs, attr)
		} else {
			out.WriteString(rest[i : i+j+1])
		}

		rest = rest[i+j+1:]
	}
	writeStyled(&out, rest, attrs)

	return out.String()
}

func writeStyled(out *strings.Builder, text string, attrs []color.Attribute) {
	if text == "" {
		return
	}
	if len(attrs) == 0 {
		out.WriteString(text)
		return
	}
	out.WriteString(color.New(attrs...).Sprint(text))
}
