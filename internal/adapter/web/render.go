package web

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates
var templateFS embed.FS

var funcs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"suggestionVals": func(s string) (string, error) {
		b, err := json.Marshal(map[string]string{"suggestion": s})
		return string(b), err
	},
}

// base holds the layout and the partials; every page is parsed into its
// own clone so pages can each define "content".
var base = template.Must(template.New("").Funcs(funcs).ParseFS(templateFS,
	"templates/layout.html", "templates/partials/*.html"))

var pages = map[string]*template.Template{
	"dashboard":      page("dashboard.html"),
	"form":           page("form.html"),
	"confirm_delete": page("confirm_delete.html"),
}

func page(name string) *template.Template {
	return template.Must(template.Must(base.Clone()).ParseFS(templateFS, "templates/pages/"+name))
}

// renderPage writes a full page. Output is buffered so a template error
// still produces a clean 500.
func (h *Handler) renderPage(w http.ResponseWriter, status int, name string, data any) {
	h.execute(w, status, pages[name], "layout", data)
}

// renderPartial writes a fragment for an htmx swap.
func (h *Handler) renderPartial(w http.ResponseWriter, name string, data any) {
	h.execute(w, http.StatusOK, base, name, data)
}

func (h *Handler) execute(w http.ResponseWriter, status int, t *template.Template, name string, data any) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("render template error", slog.String("template", name), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
