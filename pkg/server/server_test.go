package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pythonzzgr/bazi-analysis/pkg/models/api"
	"github.com/pythonzzgr/bazi-analysis/pkg/models/domain"
)

type mockAnalyzer struct {
	mock.Mock
}

func (m *mockAnalyzer) Analyze(ctx context.Context, input domain.BirthInput) (*domain.Report, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

type mockOracle struct {
	mock.Mock
}

func (m *mockOracle) Chart(ctx context.Context, input domain.BirthInput) (*domain.Chart, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chart), args.Error(1)
}

func (m *mockOracle) DecadePlan(ctx context.Context, input domain.BirthInput) (*domain.DecadePlan, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DecadePlan), args.Error(1)
}

func (m *mockOracle) YearWindows(startYear, count int) []domain.Window {
	args := m.Called(startYear, count)
	return args.Get(0).([]domain.Window)
}

func (m *mockOracle) LeapMonth(year int) int {
	args := m.Called(year)
	return args.Int(0)
}

func sampleReport() *domain.Report {
	pillar := domain.Pillar{Stem: domain.StemJia, Branch: domain.BranchYin}
	return &domain.Report{
		Chart: domain.Chart{
			Gender: domain.Male,
			Year:   pillar, Month: pillar, Day: pillar, Time: pillar,
			SolarDate: "1994-02-15 10:30",
			LunarDate: "1994-01-05",
		},
		Selection: domain.Selection{
			Primary: domain.Metal,
			Ally:    domain.Fire,
			Harmful: domain.Water,
		},
	}
}

func setup(t *testing.T) (*mockAnalyzer, *mockOracle, http.Handler) {
	analyzer := &mockAnalyzer{}
	oracle := &mockOracle{}

	webAPI := NewWebAPI(zerolog.Nop(), Config{
		Addr:           "127.0.0.1:0",
		AllowedOrigins: []string{"*"},
		Dependencies: Dependencies{
			Analyzer: analyzer,
			Oracle:   oracle,
		},
	})

	t.Cleanup(func() {
		analyzer.AssertExpectations(t)
		oracle.AssertExpectations(t)
	})
	return analyzer, oracle, webAPI.Router()
}

func TestHealthEndpoint(t *testing.T) {
	_, _, router := setup(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestAnalyzeEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		analyzer, _, router := setup(t)
		analyzer.On("Analyze", mock.Anything, mock.MatchedBy(func(in domain.BirthInput) bool {
			return in.Year == 1994 && in.Gender == domain.Male
		})).Return(sampleReport(), nil)

		body := `{"gender":"male","year":1994,"month":2,"day":15,"hour":10,"minute":30}`
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(
			http.MethodPost, "/api/v1/analyze", strings.NewReader(body)))

		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.Report
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "甲寅", resp.Chart.Year.GanZhi)
		assert.Equal(t, "Metal", resp.Selection.Primary)
		assert.NotEmpty(t, resp.ReportText)
	})

	t.Run("malformed body", func(t *testing.T) {
		_, _, router := setup(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(
			http.MethodPost, "/api/v1/analyze", strings.NewReader("not json")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown gender", func(t *testing.T) {
		_, _, router := setup(t)

		body := `{"gender":"other","year":1994,"month":2,"day":15}`
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(
			http.MethodPost, "/api/v1/analyze", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("out-of-range date", func(t *testing.T) {
		_, _, router := setup(t)

		body := `{"gender":"male","year":1850,"month":2,"day":15}`
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(
			http.MethodPost, "/api/v1/analyze", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLeapMonthEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		_, oracle, router := setup(t)
		oracle.On("LeapMonth", 2023).Return(2)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/leap-month/2023", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.LeapMonthResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, 2, resp.LeapMonth)
		assert.True(t, resp.HasLeap)
	})

	t.Run("invalid year", func(t *testing.T) {
		_, _, router := setup(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/leap-month/abc", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
