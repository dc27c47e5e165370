package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aguskov/oilpulse/internal/domain/dto"
	"github.com/aguskov/oilpulse/internal/service"
	"github.com/aguskov/oilpulse/internal/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100
	// Dynamics defaults to the trailing month when no range is given.
	defaultDynamicsWindow = 30 * 24 * time.Hour
)

// Handler provides HTTP handlers over persisted trading results.
type Handler struct {
	svc service.TradingService
}

// NewHandler constructs a Handler backed by the given service.
func NewHandler(svc service.TradingService) *Handler {
	return &Handler{svc: svc}
}

// GetLastTradingDates handles GET /api/v1/dates requests.
//
// GetLastTradingDates godoc
// @Summary      Last trading dates
// @Description  Returns the most recent report dates with persisted results, newest first
// @Tags         results
// @Produce      json
// @Param        limit  query     int  false  "Number of dates (1-100)"  default(10)
// @Success      200    {object}  dto.DatesResponse      "Success"
// @Failure      400    {object}  dto.ErrorResponse      "Bad Request"
// @Failure      500    {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/dates [get]
func (h *Handler) GetLastTradingDates(c *gin.Context) {
	limit, err := parseLimit(c.Query("limit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid limit", err))
		return
	}

	dates, err := h.svc.LastTradingDates(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch trading dates", err))
		return
	}

	c.JSON(http.StatusOK, dto.NewDatesResponse(dates))
}

// GetDynamics handles GET /api/v1/dynamics requests.
//
// GetDynamics godoc
// @Summary      Trading dynamics over a period
// @Description  Returns results between start_date and end_date inclusive, oldest first
// @Tags         results
// @Produce      json
// @Param        oil_id             query     string  false  "Oil grade code"       example(A592)
// @Param        delivery_type_id   query     string  false  "Delivery type code"   example(F)
// @Param        delivery_basis_id  query     string  false  "Delivery basis code"  example(ECO)
// @Param        start_date         query     string  false  "Start date, YYYY-MM-DD"
// @Param        end_date           query     string  false  "End date, YYYY-MM-DD"
// @Success      200  {array}   dto.TradingResultResponse  "Success"
// @Failure      400  {object}  dto.ErrorResponse          "Bad Request"
// @Failure      500  {object}  dto.ErrorResponse          "Internal Error"
// @Router       /api/v1/dynamics [get]
func (h *Handler) GetDynamics(c *gin.Context) {
	end := time.Now().UTC().Truncate(24 * time.Hour)
	start := end.Add(-defaultDynamicsWindow)

	if s := c.Query("start_date"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid start_date format, expected YYYY-MM-DD", err))
			return
		}
		start = parsed
	}
	if s := c.Query("end_date"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid end_date format, expected YYYY-MM-DD", err))
			return
		}
		end = parsed
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("end_date is before start_date", nil))
		return
	}

	results, err := h.svc.Dynamics(c.Request.Context(), filterFromQuery(c), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch dynamics", err))
		return
	}

	c.JSON(http.StatusOK, dto.NewTradingResultResponses(results))
}

// GetTradingResults handles GET /api/v1/results requests.
//
// GetTradingResults godoc
// @Summary      Latest trading results
// @Description  Returns the most recently persisted results, newest first
// @Tags         results
// @Produce      json
// @Param        oil_id             query     string  false  "Oil grade code"       example(A592)
// @Param        delivery_type_id   query     string  false  "Delivery type code"   example(F)
// @Param        delivery_basis_id  query     string  false  "Delivery basis code"  example(ECO)
// @Param        limit              query     int     false  "Number of results (1-100)"  default(10)
// @Success      200  {array}   dto.TradingResultResponse  "Success"
// @Failure      400  {object}  dto.ErrorResponse          "Bad Request"
// @Failure      500  {object}  dto.ErrorResponse          "Internal Error"
// @Router       /api/v1/results [get]
func (h *Handler) GetTradingResults(c *gin.Context) {
	limit, err := parseLimit(c.Query("limit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid limit", err))
		return
	}

	results, err := h.svc.TradingResults(c.Request.Context(), filterFromQuery(c), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch trading results", err))
		return
	}

	c.JSON(http.StatusOK, dto.NewTradingResultResponses(results))
}

func filterFromQuery(c *gin.Context) storage.ResultsFilter {
	return storage.ResultsFilter{
		OilID:           strings.ToUpper(strings.TrimSpace(c.Query("oil_id"))),
		DeliveryTypeID:  strings.ToUpper(strings.TrimSpace(c.Query("delivery_type_id"))),
		DeliveryBasisID: strings.ToUpper(strings.TrimSpace(c.Query("delivery_basis_id"))),
	}
}

func parseLimit(s string) (int, error) {
	if s == "" {
		return defaultLimit, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		n = 1
	}
	if n > maxLimit {
		n = maxLimit
	}
	return n, nil
}
