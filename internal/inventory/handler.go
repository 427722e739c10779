package inventory

import (
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/cornerstore/invtrack/internal/charts"
	"github.com/cornerstore/invtrack/internal/platform/httpx"
	"github.com/cornerstore/invtrack/internal/view"
)

// Handler serves the dashboard page and the JSON API.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	templates *view.Engine
}

// NewHandler constructs Handler.
func NewHandler(logger *slog.Logger, service *Service, templates *view.Engine) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		templates: templates,
	}
}

// Dashboard renders the single-page inventory tracker: the editable grid
// bootstrapped from the current snapshot, the low-stock alert and the two
// charts.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Load(r.Context())
	if err != nil {
		h.logger.Error("load inventory failed", slog.Any("error", err))
		http.Error(w, "Failed to load inventory", http.StatusInternalServerError)
		return
	}

	unitsChart, err := unitsLeftChart(snap)
	if err != nil {
		h.logger.Error("render units-left chart failed", slog.Any("error", err))
	}
	sellersChart, err := bestSellersChart(snap)
	if err != nil {
		h.logger.Error("render best-sellers chart failed", slog.Any("error", err))
	}

	baselineJSON, err := json.Marshal(snap)
	if err != nil {
		h.logger.Error("marshal baseline failed", slog.Any("error", err))
		http.Error(w, "Failed to load inventory", http.StatusInternalServerError)
		return
	}

	err = h.templates.Render(w, "pages/dashboard.html", view.TemplateData{
		Title:       "Inventory tracker",
		CurrentPath: r.URL.Path,
		Data: map[string]any{
			"Items":            snap,
			"StockValue":       stockValue(snap),
			"BaselineJSON":     template.JS(baselineJSON),
			"LowStock":         LowStock(snap),
			"UnitsLeftChart":   unitsChart,
			"BestSellersChart": sellersChart,
		},
	})
	if err != nil {
		h.logger.Error("render dashboard failed", slog.Any("error", err))
	}
}

// ListItems returns the current snapshot as JSON.
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Load(r.Context())
	if err != nil {
		h.logger.Error("load inventory failed", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Storage Unavailable", "inventory could not be read")
		return
	}
	httpx.JSON(w, http.StatusOK, ItemsResponse{Items: snap})
}

// Commit applies an edit session and returns the refreshed snapshot.
func (h *Handler) Commit(w http.ResponseWriter, r *http.Request) {
	var req CommitRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Request", "request body must be valid JSON")
		return
	}

	if err := h.service.Commit(r.Context(), req.Edits, req.Baseline); err != nil {
		h.respondCommitError(w, err)
		return
	}

	snap, err := h.service.Load(r.Context())
	if err != nil {
		h.logger.Error("reload after commit failed", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Storage Unavailable", "commit applied but inventory could not be reloaded")
		return
	}
	httpx.JSON(w, http.StatusOK, ItemsResponse{Items: snap})
}

func (h *Handler) respondCommitError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	case errors.Is(err, ErrInvalidRowReference):
		httpx.Problem(w, http.StatusConflict, "Stale Edit Session", err.Error())
	case errors.Is(err, ErrStorageWriteFailed):
		httpx.Problem(w, http.StatusInternalServerError, "Commit Failed", err.Error())
	default:
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}

func unitsLeftChart(snap Snapshot) (template.HTML, error) {
	if len(snap) == 0 {
		return "", nil
	}
	labels := make([]string, len(snap))
	values := make([]float64, len(snap))
	markers := make([]float64, len(snap))
	for i, it := range snap {
		labels[i] = displayName(it)
		if it.UnitsLeft != nil {
			values[i] = float64(*it.UnitsLeft)
		}
		if it.ReorderPoint != nil {
			markers[i] = float64(*it.ReorderPoint)
		}
	}
	return charts.HBars(720, chartHeight(len(snap)), values, markers, labels, charts.BarOpts{
		Title:       "Units left",
		Description: "Current stock per item with reorder point markers",
		BarLabel:    "Units left",
		MarkerLabel: "Reorder point",
	})
}

func bestSellersChart(snap Snapshot) (template.HTML, error) {
	if len(snap) == 0 {
		return "", nil
	}
	ranked := BestSellers(snap)
	labels := make([]string, len(ranked))
	values := make([]float64, len(ranked))
	for i, it := range ranked {
		labels[i] = displayName(it)
		if it.UnitsSold != nil {
			values[i] = float64(*it.UnitsSold)
		}
	}
	return charts.HBars(720, chartHeight(len(ranked)), values, nil, labels, charts.BarOpts{
		Title:       "Best sellers",
		Description: "Items ranked by units sold",
		BarLabel:    "Units sold",
	})
}

func chartHeight(rows int) int {
	return rows*26 + 70
}

// stockValue sums cost price times units left over rows that carry both.
func stockValue(snap Snapshot) *float64 {
	total := 0.0
	for _, it := range snap {
		if it.CostPrice != nil && it.UnitsLeft != nil {
			total += *it.CostPrice * float64(*it.UnitsLeft)
		}
	}
	return &total
}

func displayName(it Item) string {
	if it.Name == nil || *it.Name == "" {
		return "(unnamed)"
	}
	return *it.Name
}
