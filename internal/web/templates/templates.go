// Package templates renders the DataZen pages. Markup lives in embedded
// html/template files and is exposed as templ components so handlers render
// every view the same way.
package templates

import (
	"context"
	"embed"
	"html/template"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/JonMunkholm/datazen/internal/i18n"
	"github.com/JonMunkholm/datazen/internal/profile"
	"github.com/JonMunkholm/datazen/internal/session"
)

//go:embed *.html
var files embed.FS

var pages = template.Must(template.ParseFS(files, "*.html"))

// Tab identifiers, in display order.
const (
	TabPreview = "preview"
	TabEDA     = "eda"
	TabClean   = "clean"
	TabChart   = "chart"
	TabExport  = "export"
)

var tabKeys = []struct {
	id  string
	key i18n.Key
}{
	{TabPreview, i18n.KeyTabPreview},
	{TabEDA, i18n.KeyTabEDA},
	{TabClean, i18n.KeyTabClean},
	{TabChart, i18n.KeyTabChart},
	{TabExport, i18n.KeyTabExport},
}

// ParseTab returns tab when it names a known tab, else TabPreview.
func ParseTab(tab string) string {
	for _, t := range tabKeys {
		if t.id == tab {
			return tab
		}
	}
	return TabPreview
}

// Option is one entry of a select box or button row.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Tab is a navigation link.
type Tab struct {
	ID     string
	Label  string
	Active bool
}

// StatsView is the describe output of the EDA tab.
type StatsView struct {
	Table    profile.Table
	TextOnly bool
}

// ChartView holds the chart tab state.
type ChartView struct {
	XOptions      []Option
	YOptions      []Option
	Kinds         []Option
	TooFewColumns bool
	NoNumeric     bool
	ImageURL      string
	Error         string
}

// PageParams is everything the main page needs.
type PageParams struct {
	Catalog   *i18n.Catalog
	Lang      i18n.Code
	AppName   string
	Icon      string
	Languages []Option
	Flashes   []session.Flash
	Accept    string // upload input accept attribute, e.g. ".csv,.xlsx"

	HasTable  bool
	FileName  string
	ActiveTab string

	Summary   profile.Summary
	Preview   profile.Table
	Columns   []profile.ColumnInfo
	ShowStats bool
	Stats     *StatsView
	Chart     ChartView
	Actions   []Option
	Downloads []Option
}

// T translates key in the page language. Templates call it as {{.T "key"}}.
func (p PageParams) T(key string, args ...any) string {
	return p.Catalog.T(p.Lang, i18n.Key(key), args...)
}

// Title is the localized page title.
func (p PageParams) Title() string {
	return p.Catalog.Title(p.Lang, p.AppName)
}

// Tabs returns the navigation with the active tab marked.
func (p PageParams) Tabs() []Tab {
	out := make([]Tab, len(tabKeys))
	for i, t := range tabKeys {
		out[i] = Tab{ID: t.id, Label: p.Catalog.T(p.Lang, t.key), Active: t.id == p.ActiveTab}
	}
	return out
}

// HTMLLang is the value of the html lang attribute.
func (p PageParams) HTMLLang() string {
	return strings.ToLower(string(p.Lang))
}

// Page renders the full application page.
func Page(p PageParams) templ.Component {
	return render("page", p)
}

// ErrorAlert renders a standalone error page.
func ErrorAlert(message, action, code string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		if err := pages.ExecuteTemplate(&b, "style", nil); err != nil {
			return err
		}
		style := b.String()

		b.Reset()
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>Error</title>`)
		b.WriteString(style)
		b.WriteString(`</head><body><main><div class="flash flash-error" role="alert"><strong>`)
		b.WriteString(templ.EscapeString(message))
		b.WriteString(`</strong>`)
		if action != "" {
			b.WriteString(`<p>`)
			b.WriteString(templ.EscapeString(action))
			b.WriteString(`</p>`)
		}
		b.WriteString(`<small>`)
		b.WriteString(templ.EscapeString(code))
		b.WriteString(`</small></div><p><a href="/">←</a></p></main></body></html>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func render(name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return pages.ExecuteTemplate(w, name, data)
	})
}
