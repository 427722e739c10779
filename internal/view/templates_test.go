package view

import (
	"html/template"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRenderDashboard(t *testing.T) {
	engine, err := NewEngine()
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}

	rec := httptest.NewRecorder()
	err = engine.Render(rec, "pages/dashboard.html", TemplateData{
		Title:       "Inventory tracker",
		CurrentPath: "/",
		Data: map[string]any{
			"Items":            []any{},
			"StockValue":       (*float64)(nil),
			"BaselineJSON":     template.JS("[]"),
			"LowStock":         nil,
			"UnitsLeftChart":   template.HTML("<svg></svg>"),
			"BestSellersChart": template.HTML("<svg></svg>"),
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "<title>Inventory tracker</title>") {
		t.Fatalf("expected page title in output")
	}
	if !strings.Contains(body, "Commit changes") {
		t.Fatalf("expected commit button in output")
	}
	if !strings.Contains(body, "const baseline = [];") {
		t.Fatalf("expected baseline bootstrap in output, got:\n%s", body)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type %q", ct)
	}
}

func TestRenderNilEngine(t *testing.T) {
	var engine *Engine
	rec := httptest.NewRecorder()
	if err := engine.Render(rec, "pages/dashboard.html", TemplateData{}); err == nil {
		t.Fatalf("expected error from nil engine")
	}
}
