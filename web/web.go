// Package web holds the HTML views and static assets, embedded at build time.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Template names rendered by the handlers
const (
	IndexTemplate    = "index.html"
	DetailsTemplate  = "details.html"
	NotFoundTemplate = "not_found.html"
	ErrorTemplate    = "error.html"
)

// Templates parses the embedded views. currency is the ISO code used to
// display net asset values.
func Templates(currency string) (*template.Template, error) {
	funcs := template.FuncMap{
		"nav": func(d decimal.Decimal) string { return FormatNAV(d, currency) },
	}
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

// Static returns the embedded static assets rooted at the static directory
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// the directory is embedded above, so this cannot happen
		panic(err)
	}
	return http.FS(sub)
}

// FormatNAV renders a net asset value in the given currency, e.g. "$100.50".
// Values are rounded to the currency's minor unit.
func FormatNAV(nav decimal.Decimal, currency string) string {
	// money.New never returns a nil currency, even for unknown codes
	cur := money.New(0, currency).Currency()
	minor := nav.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return cur.Formatter().Format(minor)
}
