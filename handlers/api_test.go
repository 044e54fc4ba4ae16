package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/growthdesk/growthdesk/backend/go-services/internal/docstore"
	"github.com/stretchr/testify/require"
)

func newTestRouter() (*gin.Engine, *docstore.MemoryStore) {
	g := gin.New()
	store := docstore.NewMemoryStore()
	NewAPI(store).Register(g)
	return g, store
}

func doRequest(g *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestDesignerRoundTrip(t *testing.T) {
	g, _ := newTestRouter()

	w := doRequest(g, http.MethodPost, "/api/designers", `{"name":"Ada","email":"ada@x.com"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var cr map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cr))
	require.Len(t, cr["id"], 24)

	w = doRequest(g, http.MethodGet, "/api/designers", "")
	require.Equal(t, http.StatusOK, w.Code)
	items := decodeList(t, w)
	require.Len(t, items, 1)
	require.Equal(t, cr["id"], items[0]["_id"])
	require.Equal(t, "Ada", items[0]["name"])
	require.Equal(t, "ada@x.com", items[0]["email"])
	require.Equal(t, "Junior", items[0]["current_level"])
	require.Equal(t, []interface{}{}, items[0]["guilds"])
}

func TestDesignerMissingRequiredField(t *testing.T) {
	g, _ := newTestRouter()
	w := doRequest(g, http.MethodPost, "/api/designers", `{"name":"NoEmail"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "error")
}

func TestGoalDefaultsAndFilter(t *testing.T) {
	g, _ := newTestRouter()

	w := doRequest(g, http.MethodPost, "/api/goals", `{"designer_id":"d1","title":"improve critique"}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = doRequest(g, http.MethodPost, "/api/goals", `{"designer_id":"d2","title":"other goal"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(g, http.MethodGet, "/api/goals?designer_id=d1", "")
	require.Equal(t, http.StatusOK, w.Code)
	items := decodeList(t, w)
	require.Len(t, items, 1)
	require.Equal(t, "improve critique", items[0]["title"])
	require.Equal(t, "not_started", items[0]["status"])
	require.Equal(t, float64(0), items[0]["progress"])

	// unfiltered list returns both
	w = doRequest(g, http.MethodGet, "/api/goals", "")
	require.Len(t, decodeList(t, w), 2)

	// no match is an empty array, never an error
	w = doRequest(g, http.MethodGet, "/api/goals?designer_id=nobody", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, decodeList(t, w))
}

func TestGoalProgressValidation(t *testing.T) {
	g, _ := newTestRouter()
	w := doRequest(g, http.MethodPost, "/api/goals", `{"designer_id":"d1","title":"t","progress":150}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(g, http.MethodPost, "/api/goals", `{"designer_id":"d1","title":"t","progress":100}`)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestGoalBadTargetDateKeptAsString(t *testing.T) {
	g, _ := newTestRouter()
	w := doRequest(g, http.MethodPost, "/api/goals", `{"designer_id":"d1","title":"t","target_date":"next quarter"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(g, http.MethodGet, "/api/goals?designer_id=d1", "")
	items := decodeList(t, w)
	require.Len(t, items, 1)
	require.Equal(t, "next quarter", items[0]["target_date"])
}

func TestAssessmentClampingOverHTTP(t *testing.T) {
	g, _ := newTestRouter()

	w := doRequest(g, http.MethodPost, "/api/assessments", `{"designer_id":"d1","cycle":"2025-H1","ratings":{"craft_quality":9,"impact":0,"collaboration":3}}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(g, http.MethodGet, "/api/assessments?designer_id=d1", "")
	require.Equal(t, http.StatusOK, w.Code)
	items := decodeList(t, w)
	require.Len(t, items, 1)
	ratings := items[0]["ratings"].(map[string]interface{})
	require.Equal(t, float64(4), ratings["craft_quality"])
	require.Equal(t, float64(1), ratings["impact"])
	require.Equal(t, float64(3), ratings["collaboration"])
}

func TestAssessmentListRequiresDesignerID(t *testing.T) {
	g, _ := newTestRouter()
	w := doRequest(g, http.MethodGet, "/api/assessments", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNilStoreAnswers500(t *testing.T) {
	g := gin.New()
	NewAPI(nil).Register(g)

	w := doRequest(g, http.MethodPost, "/api/designers", `{"name":"Ada","email":"ada@x.com"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "database not available")

	w = doRequest(g, http.MethodGet, "/api/designers", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "database not available")
}
