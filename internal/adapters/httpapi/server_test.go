package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripweaver/tripweaver/pkg/domain"
)

// fakePlanner records requests and returns a canned result.
type fakePlanner struct {
	calls  int
	result *domain.PlanResult
	err    error
}

func (f *fakePlanner) PlanTrip(ctx context.Context, req domain.TripRequest) (*domain.PlanResult, error) {
	f.calls++
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return f.result, f.err
}

func parisPlanResult() *domain.PlanResult {
	return &domain.PlanResult{
		RawText: "{}",
		Parsed: &domain.TripPlan{
			CulturalSignificance: "Paris has shaped European art for centuries.",
			Weather:              "Clear, 18°C",
			BestTimeToVisit:      "Late spring",
			Flights:              []domain.FlightOption{{Airline: "Example Air", From: "Your city", To: "Paris", PriceUSD: 650}},
			Hotels:               []domain.HotelOption{{Name: "Paris Grand Plaza", Stars: 5, PricePerNightUSD: 260}},
			Itinerary:            []domain.ItineraryDay{{Day: 1, Title: "Arrival", Description: "Louvre at dusk."}},
		},
	}
}

func postForm(t *testing.T, handler http.Handler, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/plan", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestIndex_ShowsForm(t *testing.T) {
	handler := NewHandler(&fakePlanner{result: parisPlanResult()})

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `name="city"`)
	assert.Contains(t, body, `name="days"`)
	assert.Contains(t, body, `value="5"`, "days defaults to 5")
}

func TestPlanForm_RendersAllSections(t *testing.T) {
	planner := &fakePlanner{result: parisPlanResult()}
	handler := NewHandler(planner)

	w := postForm(t, handler, url.Values{"city": {"Paris"}, "days": {"3"}})

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Trip plan: Paris (3 days)")
	for _, title := range []string{
		"City overview",
		"Current weather",
		"Best time to visit",
		"Example flight options",
		"Example hotel options",
		"Day-wise itinerary",
	} {
		assert.Contains(t, body, title)
	}
	assert.Contains(t, body, "18")
	assert.Contains(t, body, "Example Air")
	assert.Equal(t, 1, planner.calls)
}

func TestPlanForm_ParseFailureShowsRawOutput(t *testing.T) {
	planner := &fakePlanner{result: &domain.PlanResult{
		RawText:    "Sure! Here is a lovely plan...",
		ParseError: "final answer is not valid JSON",
	}}
	handler := NewHandler(planner)

	w := postForm(t, handler, url.Values{"city": {"Paris"}})

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "could not be used")
	assert.Contains(t, body, "Sure! Here is a lovely plan...")
	assert.NotContains(t, body, "City overview", "a failed plan is never partially rendered")
}

func TestPlanForm_DaysOutOfRange(t *testing.T) {
	planner := &fakePlanner{result: parisPlanResult()}
	handler := NewHandler(planner)

	w := postForm(t, handler, url.Values{"city": {"Paris"}, "days": {"45"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, planner.calls, "planner must not run for an invalid form")
}

func TestPlanForm_BlankCity(t *testing.T) {
	planner := &fakePlanner{result: parisPlanResult()}
	handler := NewHandler(planner)

	w := postForm(t, handler, url.Values{"city": {"   "}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMissingCredential_BlocksWithoutPlanning(t *testing.T) {
	handler := NewHandler(nil)

	for _, tc := range []struct {
		method, path string
	}{
		{"GET", "/"},
		{"POST", "/plan"},
		{"POST", "/api/plan"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader("{}"))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code, "%s %s", tc.method, tc.path)
		assert.Contains(t, w.Body.String(), "TRIPWEAVER_MODEL_API_KEY")
	}
}

func TestPlanAPI_Success(t *testing.T) {
	handler := NewHandler(&fakePlanner{result: parisPlanResult()})

	payload, _ := json.Marshal(map[string]any{"city": "Paris", "days": 3})
	req := httptest.NewRequest("POST", "/api/plan", bytes.NewReader(payload))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp planResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "rendered", resp.Outcome)
	require.NotNil(t, resp.Plan)
	assert.Len(t, resp.Plan.Flights, 1)
	assert.Empty(t, resp.RawText)
}

func TestPlanAPI_ParseFailureCarriesRawText(t *testing.T) {
	handler := NewHandler(&fakePlanner{result: &domain.PlanResult{
		RawText:    "not json",
		ParseError: "final answer is not valid JSON",
	}})

	req := httptest.NewRequest("POST", "/api/plan", strings.NewReader(`{"city":"Paris"}`))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp planResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "parse_failed", resp.Outcome)
	assert.Equal(t, "not json", resp.RawText)
	assert.Nil(t, resp.Plan)
}

func TestGetHealth(t *testing.T) {
	handler := NewHandler(&fakePlanner{result: parisPlanResult()})

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok"`)
}

func TestSpec_EmbeddedDocumentIsValid(t *testing.T) {
	doc, err := Spec()
	require.NoError(t, err)
	require.NotNil(t, doc.Info)
	assert.Equal(t, "TripWeaver API", doc.Info.Title)
	require.NotNil(t, doc.Paths.Value("/api/plan"))
}
