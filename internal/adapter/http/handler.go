package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"naira-rate-service/internal/domain/model"
	"naira-rate-service/internal/domain/ports"
	"naira-rate-service/internal/metrics"
	"naira-rate-service/internal/service"
	"naira-rate-service/pkg/logger"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type rateQuery struct {
	From string `validate:"required,alpha,len=3"`
	To   string `validate:"required,alpha,len=3"`
}

var validate = validator.New()

type Handler struct {
	service ports.QuoteService
	log     *logger.Logger
	metrics *metrics.Metrics
}

func NewHandler(service ports.QuoteService, log *logger.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		service: service,
		log:     log,
		metrics: metrics,
	}
}

func (h *Handler) GetRateHandler(w http.ResponseWriter, r *http.Request) {
	h.metrics.RateRequestsTotal.Inc()

	query := rateQuery{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}
	if err := validate.Struct(query); err != nil {
		h.sendErrorResponse(w, http.StatusBadRequest, "invalid parameters: from and to must be 3-letter currency codes")
		return
	}

	refresh := false
	if refreshStr := r.URL.Query().Get("refresh"); refreshStr != "" {
		var err error
		refresh, err = strconv.ParseBool(refreshStr)
		if err != nil {
			h.sendErrorResponse(w, http.StatusBadRequest, "invalid refresh parameter")
			return
		}
	}

	from := model.ParseCurrency(query.From)
	to := model.ParseCurrency(query.To)

	ctx := r.Context()
	quote, err := h.service.FetchRate(ctx, from, to, refresh)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.sendSuccessResponse(w, quote)
}

func (h *Handler) ConvertHandler(w http.ResponseWriter, r *http.Request) {
	h.metrics.ConversionRequestsTotal.Inc()

	query := rateQuery{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}
	if err := validate.Struct(query); err != nil {
		h.sendErrorResponse(w, http.StatusBadRequest, "invalid parameters: from and to must be 3-letter currency codes")
		return
	}

	amount := 1.0
	if amountStr := r.URL.Query().Get("amount"); amountStr != "" {
		var err error
		amount, err = strconv.ParseFloat(amountStr, 64)
		if err != nil {
			h.sendErrorResponse(w, http.StatusBadRequest, "invalid amount parameter")
			return
		}
	}

	request := model.ConversionRequest{
		From:   model.ParseCurrency(query.From),
		To:     model.ParseCurrency(query.To),
		Amount: amount,
	}

	ctx := r.Context()
	result, err := h.service.Convert(ctx, request)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.sendSuccessResponse(w, result)
}

func (h *Handler) sendSuccessResponse(w http.ResponseWriter, data interface{}) {
	response := Response{
		Success: true,
		Data:    data,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error("Failed to encode response", "error", err)
	}
}

func (h *Handler) sendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	response := Response{
		Success: false,
		Error:   message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error("Failed to encode error response", "error", err)
	}
}

func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	errorMessage := "internal server error"

	switch {
	case errors.Is(err, service.ErrInvalidCurrency):
		statusCode = http.StatusBadRequest
		errorMessage = "invalid currency"
	case errors.Is(err, service.ErrInvalidAmount):
		statusCode = http.StatusBadRequest
		errorMessage = "invalid amount"
	case errors.Is(err, service.ErrNoData):
		statusCode = http.StatusServiceUnavailable
		errorMessage = "no exchange rate data available"
		h.metrics.RateFailuresTotal.Inc()
	}

	h.log.Error("Service error", "error", err, "status_code", statusCode)
	h.sendErrorResponse(w, statusCode, errorMessage)
}
