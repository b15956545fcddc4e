package idcase

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Style is a named output convention.
type Style uint8

const (
	StyleSnake Style = iota
	StyleConstant
	StyleCamel
	StylePascal
	StyleKebab
	StyleSpace
	StyleChain
	StylePath
	StyleUpper
	StyleLower
	StyleReverse

	styleCount
)

type styleRender uint8

const (
	renderJoin styleRender = iota
	renderCamel
	renderWhole
)

// styleParams parameterizes the renderers for one style.
type styleParams struct {
	name        string
	description string
	render      styleRender
	sep         string
	mode        CaseMode
	pascal      bool // forces an upper case first word for renderCamel
	preserve    bool
}

var styleTable = [styleCount]styleParams{
	StyleSnake:    {name: "snake", description: "lower case words joined by underscores (my_http_server)", render: renderJoin, sep: "_", mode: ModeLower},
	StyleConstant: {name: "constant", description: "upper case words joined by underscores (MY_HTTP_SERVER)", render: renderJoin, sep: "_", mode: ModeUpper},
	StyleCamel:    {name: "camel", description: "capitalized words concatenated, first word lower case unless camel-upper is set (myHttpServer)", render: renderCamel},
	StylePascal:   {name: "pascal", description: "capitalized words concatenated, acronyms kept (MyHTTPServer)", render: renderCamel, pascal: true, preserve: true},
	StyleKebab:    {name: "kebab", description: "lower case words joined by dashes (my-http-server)", render: renderJoin, sep: "-", mode: ModeLower},
	StyleSpace:    {name: "space", description: "lower case words joined by spaces (my http server)", render: renderJoin, sep: " ", mode: ModeLower},
	StyleChain:    {name: "chain", description: "lower case words joined by dots (my.http.server)", render: renderJoin, sep: ".", mode: ModeLower},
	StylePath:     {name: "path", description: "lower case words joined by slashes (my/http/server)", render: renderJoin, sep: "/", mode: ModeLower},
	StyleUpper:    {name: "upper", description: "the whole text upper cased", render: renderWhole, mode: ModeUpper},
	StyleLower:    {name: "lower", description: "the whole text lower cased", render: renderWhole, mode: ModeLower},
	StyleReverse:  {name: "reverse", description: "the whole text reversed", render: renderWhole, mode: ModeOriginal},
}

var stylesByName = func() map[string]Style {
	m := make(map[string]Style, styleCount)
	for s := Style(0); s < styleCount; s++ {
		m[styleTable[s].name] = s
	}
	return m
}()

func (s Style) String() string {
	if s < styleCount {
		return styleTable[s].name
	}
	return "unknown"
}

// Describe returns a one-line description of the style.
func (s Style) Describe() string {
	if s < styleCount {
		return styleTable[s].description
	}
	return ""
}

// AvailableStyles returns the names of all styles.
func AvailableStyles() []string {
	names := make([]string, 0, len(stylesByName))
	for name := range stylesByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StyleByName returns a style by name. An empty name selects snake.
func StyleByName(name string) (Style, bool) {
	if name == "" {
		return StyleSnake, true
	}
	style, ok := stylesByName[strings.ToLower(strings.TrimSpace(name))]
	return style, ok
}

// Convert renders src in style, with settings translated to a Config.
func Convert(src string, style Style, settings Settings) string {
	return ConvertWith(src, style, settings.Config(), settings.CamelUpper)
}

// ConvertWith renders src in style using cfg. camelUpper only affects
// StyleCamel.
func ConvertWith(src string, style Style, cfg *Config, camelUpper bool) string {
	if src == "" || style >= styleCount {
		return src
	}
	p := styleTable[style]
	switch p.render {
	case renderWhole:
		return wholeText(src, p.mode)
	case renderCamel:
		return CamelCase(src, cfg, camelUpper || p.pascal, p.preserve)
	default:
		if p.sep == "_" {
			return SnakeCase(src, cfg, p.mode == ModeUpper)
		}
		return DefaultCase(p.sep, src, cfg)
	}
}

// wholeText applies full Unicode casing to the entire text rather than per
// rune, so "straße" upper cases to "STRASSE".
func wholeText(src string, mode CaseMode) string {
	switch mode {
	case ModeUpper:
		return cases.Upper(language.Und).String(src)
	case ModeLower:
		return cases.Lower(language.Und).String(src)
	default:
		runes := []rune(src)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return string(runes)
	}
}
