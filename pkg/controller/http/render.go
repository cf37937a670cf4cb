package http

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/workboard/frontend"
	"github.com/secmon-lab/workboard/pkg/domain/model"
	"github.com/secmon-lab/workboard/pkg/domain/types"
)

var pageNames = []string{
	"home",
	"dashboard",
	"risks",
	"issues",
	"milestones",
	"activities",
	"error",
}

var templateFuncs = template.FuncMap{
	"pct": func(v float64) string {
		return strconv.FormatFloat(v, 'f', 1, 64)
	},
	"fraction": func(v float64) string {
		return strconv.FormatFloat(v*100, 'f', 0, 64)
	},
	"date": formatDate,
	"join": func(ids []types.RiskID, sep string) string {
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = id.String()
		}
		return strings.Join(parts, sep)
	},
}

func formatDate(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format("2006-01-02")
	case *time.Time:
		if t == nil {
			return "-"
		}
		return t.Format("2006-01-02")
	default:
		return "-"
	}
}

// pageData is passed to every page template
type pageData struct {
	Title          string
	Active         string
	RefreshSeconds int
	Data           any
	Error          string
	Flash          string
	Form           model.IssueInput
}

type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	fsys, err := frontend.PageTemplates()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open templates")
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(templateFuncs).ParseFS(fsys, "layout.html", "partials.html", name+".html")
		if err != nil {
			return nil, goerr.Wrap(err, "failed to parse template", goerr.V("page", name))
		}
		pages[name] = tmpl
	}

	return &renderer{pages: pages}, nil
}

// render executes the page into a buffer first so a template failure never sends a partial page
func (x *renderer) render(w http.ResponseWriter, r *http.Request, status int, name string, data *pageData) {
	tmpl, ok := x.pages[name]
	if !ok {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		ctxlog.From(r.Context()).Error("Failed to render page", "page", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write page", "page", name, "error", err)
	}
}
