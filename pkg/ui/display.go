package ui

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/Snider/quotegen/pkg/quotes"
)

// DefaultWidth is the column at which quote text is wrapped.
const DefaultWidth = 50

// bannerWidth is the width of the rules drawn by the fancy style.
const bannerWidth = 60

// Style is a way of rendering a quote.
type Style int

const (
	StyleSimple Style = iota
	StyleBoxed
	StyleFancy
)

var styleNames = [...]string{"simple", "boxed", "fancy"}

// Styles returns every available style.
func Styles() []Style {
	return []Style{StyleSimple, StyleBoxed, StyleFancy}
}

func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

// ParseStyle returns the style with the given name.
func ParseStyle(name string) (Style, error) {
	for i, n := range styleNames {
		if strings.EqualFold(n, name) {
			return Style(i), nil
		}
	}
	return StyleSimple, fmt.Errorf("unknown style %q (available: %s)", name, strings.Join(styleNames[:], ", "))
}

// RandomStyle picks a style uniformly using intn, e.g. rand.IntN.
func RandomStyle(intn func(int) int) Style {
	return Style(intn(len(styleNames)))
}

// Renderer writes quotes in one of the display styles.
type Renderer struct {
	// Width is the wrap column for quote text. Zero means DefaultWidth.
	Width int
}

func (r Renderer) width() int {
	if r.Width <= 0 {
		return DefaultWidth
	}
	return r.Width
}

// Render writes sel to w in the given style.
func (r Renderer) Render(w io.Writer, style Style, sel quotes.Selection) error {
	var out string
	switch style {
	case StyleBoxed:
		out = r.boxed(sel)
	case StyleFancy:
		out = r.fancy(sel)
	default:
		out = r.simple(sel)
	}
	_, err := io.WriteString(w, out)
	return err
}

var (
	quoteColor    = color.New(color.Bold)
	authorColor   = color.New(color.FgCyan)
	categoryColor = color.New(color.FgYellow)
	frameColor    = color.New(color.FgGreen)
)

func (r Renderer) simple(sel quotes.Selection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", quoteColor.Sprint(sel.Text))
	fmt.Fprintf(&b, "%s\n", authorColor.Sprint("— "+sel.Author))
	fmt.Fprintf(&b, "%s\n\n", categoryColor.Sprint("Category: "+sel.Category))
	return b.String()
}

func (r Renderer) boxed(sel quotes.Selection) string {
	lines := Wrap(sel.Text, r.width())
	author := "— " + sel.Author
	category := "Category: " + sel.Category

	inner := 0
	for _, l := range append(lines, author, category) {
		if n := utf8.RuneCountInString(l); n > inner {
			inner = n
		}
	}

	edge := strings.Repeat("─", inner+2)
	side := frameColor.Sprint("│")
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", frameColor.Sprint("╭"+edge+"╮"))
	for _, l := range lines {
		fmt.Fprintf(&b, "%s %s %s\n", side, quoteColor.Sprint(padRight(l, inner)), side)
	}
	fmt.Fprintf(&b, "%s %s %s\n", side, authorColor.Sprint(padRight(author, inner)), side)
	fmt.Fprintf(&b, "%s %s %s\n", side, categoryColor.Sprint(padRight(category, inner)), side)
	fmt.Fprintf(&b, "%s\n\n", frameColor.Sprint("╰"+edge+"╯"))
	return b.String()
}

func (r Renderer) fancy(sel quotes.Selection) string {
	heavy := frameColor.Sprint(strings.Repeat("═", bannerWidth))
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", heavy)
	b.WriteString("  💭  QUOTE OF THE MOMENT\n")
	fmt.Fprintf(&b, "%s\n", heavy)
	for _, l := range Wrap(`"`+sel.Text+`"`, r.width()) {
		fmt.Fprintf(&b, "  %s\n", quoteColor.Sprint(l))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s\n", authorColor.Sprint("— "+sel.Author))
	fmt.Fprintf(&b, "  📚 %s\n", categoryColor.Sprint("Category: "+sel.Category))
	fmt.Fprintf(&b, "%s\n\n", frameColor.Sprint(strings.Repeat("─", bannerWidth)))
	return b.String()
}
