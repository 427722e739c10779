package inventory

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/cornerstore/invtrack/internal/view"
)

func newTestRouter(t *testing.T, repo Repository) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	templates, err := view.NewEngine()
	require.NoError(t, err)

	handler := NewHandler(logger, newTestService(repo), templates)
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r
}

func TestDashboardRendersGridAndCharts(t *testing.T) {
	router := newTestRouter(t, newMemoryRepo(testBaseline()...))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "Inventory tracker")
	require.Contains(t, body, "<svg")
	require.Contains(t, body, "Bisleri Water (500ml)")
	require.Contains(t, body, "Thums Up (300ml)", "low stock alert should name the item below its reorder point")
}

func TestListItemsReturnsSnapshot(t *testing.T) {
	router := newTestRouter(t, newMemoryRepo(testBaseline()...))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/items", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ItemsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 3)
	require.Equal(t, int64(11), resp.Items[0].ID)
}

func commitBody(t *testing.T, edits EditSet, baseline Snapshot) *bytes.Reader {
	t.Helper()
	payload, err := json.Marshal(CommitRequest{Edits: edits, Baseline: baseline})
	require.NoError(t, err)
	return bytes.NewReader(payload)
}

func TestCommitEndpointAppliesEditsAndReturnsFreshSnapshot(t *testing.T) {
	repo := newMemoryRepo(testBaseline()...)
	router := newTestRouter(t, repo)

	edits := EditSet{
		Updated: map[int]ItemFields{0: {UnitsLeft: i64ptr(7)}, 2: {Price: f64ptr(99)}},
		Removed: []int{2},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/items/commit", commitBody(t, edits, testBaseline()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	// Delete wins over the update on row 2: one update, one delete.
	require.Len(t, repo.lastPlan, 2)
	require.Equal(t, MutationUpdate, repo.lastPlan[0].Kind)
	require.Equal(t, MutationDelete, repo.lastPlan[1].Kind)
	require.Equal(t, int64(15), repo.lastPlan[1].ID)

	var resp ItemsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	require.Equal(t, int64(7), *resp.Items[0].UnitsLeft)
}

func TestCommitEndpointRejectsStaleSession(t *testing.T) {
	repo := newMemoryRepo(testBaseline()...)
	router := newTestRouter(t, repo)

	req := httptest.NewRequest(http.MethodPost, "/api/items/commit", commitBody(t, EditSet{Removed: []int{42}}, testBaseline()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	require.Zero(t, repo.applyCalls)
}

func TestCommitEndpointRejectsInvalidValues(t *testing.T) {
	repo := newMemoryRepo(testBaseline()...)
	router := newTestRouter(t, repo)

	edits := EditSet{Updated: map[int]ItemFields{0: {Price: f64ptr(-1)}}}
	req := httptest.NewRequest(http.MethodPost, "/api/items/commit", commitBody(t, edits, testBaseline()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Validation Failed")
}

func TestCommitEndpointRejectsMalformedBody(t *testing.T) {
	router := newTestRouter(t, newMemoryRepo(testBaseline()...))

	req := httptest.NewRequest(http.MethodPost, "/api/items/commit", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCommitEndpointEmptyEditSetChangesNothing(t *testing.T) {
	repo := newMemoryRepo(testBaseline()...)
	router := newTestRouter(t, repo)

	req := httptest.NewRequest(http.MethodPost, "/api/items/commit", commitBody(t, EditSet{}, testBaseline()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Zero(t, repo.applyCalls)

	var resp ItemsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 3)
}
