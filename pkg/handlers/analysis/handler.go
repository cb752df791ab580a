package analysis

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/pythonzzgr/bazi-analysis/pkg/adapters"
	"github.com/pythonzzgr/bazi-analysis/pkg/models/api"
	"github.com/pythonzzgr/bazi-analysis/pkg/models/domain"
	"github.com/pythonzzgr/bazi-analysis/pkg/services/analysis"
	"github.com/pythonzzgr/bazi-analysis/pkg/services/calendar"
)

type Handler struct {
	analyzer analysis.Analyzer
	oracle   calendar.Oracle
}

func NewHandler(analyzer analysis.Analyzer, oracle calendar.Oracle) *Handler {
	return &Handler{
		analyzer: analyzer,
		oracle:   oracle,
	}
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, logger, http.StatusBadRequest, "invalid request body")
		return
	}

	input, err := adapters.MapAnalyzeRequestApiToDomain(req)
	if err != nil {
		writeError(w, logger, http.StatusBadRequest, err.Error())
		return
	}
	if err := input.Validate(); err != nil {
		writeError(w, logger, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.analyzer.Analyze(ctx, input)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrUnknownCharacter) {
			status = http.StatusUnprocessableEntity
		}
		logger.Error().Err(err).Msg("analysis failed")
		writeError(w, logger, status, err.Error())
		return
	}

	writeJSON(w, logger, http.StatusOK,
		adapters.MapReportDomainToApi(report, analysis.RenderText(report)))
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	writeJSON(w, logger, http.StatusOK, api.HealthResponse{
		Status:  "ok",
		Service: "bazi-analysis",
	})
}

func (h *Handler) LeapMonth(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1900 || year > 2100 {
		writeError(w, logger, http.StatusBadRequest, "year must be an integer in 1900..2100")
		return
	}

	leap := h.oracle.LeapMonth(year)
	writeJSON(w, logger, http.StatusOK, api.LeapMonthResponse{
		Year:      year,
		LeapMonth: leap,
		HasLeap:   leap > 0,
	})
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, logger *zerolog.Logger, status int, msg string) {
	writeJSON(w, logger, status, api.ErrorResponse{Error: msg})
}
