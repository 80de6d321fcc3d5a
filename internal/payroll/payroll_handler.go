package payroll

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	payrollerrors "github.com/ShivaniDebbadwar/Nexografix-Srv/internal/payroll/errors"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/shared/apperror"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const calculationCacheTTL = 5 * time.Minute

type Handler struct {
	service Service
	cache   *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service, logger: zap.L().Named("payroll.handler")}
}

// NewHandlerWithCache caches on-demand calculations in Redis; results only
// change when attendance or leave records do, so a short TTL is enough.
func NewHandlerWithCache(service Service, cache *redis.Client) *Handler {
	return &Handler{service: service, cache: cache, logger: zap.L().Named("payroll.handler")}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Calculate(c *gin.Context) {
	userID := c.Param("userId")

	year, month, err := parsePeriod(c.Query("year"), c.Query("month"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	cacheKey := fmt.Sprintf("payroll:calc:%s:%04d-%02d", userID, year, month)
	if h.cache != nil {
		if cached, err := h.cache.Get(c.Request.Context(), cacheKey).Bytes(); err == nil {
			var result PayrollResult
			if err := json.Unmarshal(cached, &result); err == nil {
				response.Success(c, http.StatusOK, result, nil)
				return
			}
		}
	}

	result, err := h.service.Calculate(c.Request.Context(), userID, year, month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.cache != nil {
		if payload, err := json.Marshal(result); err == nil {
			if err := h.cache.Set(c.Request.Context(), cacheKey, payload, calculationCacheTTL).Err(); err != nil {
				h.logger.Warn("cache payroll result failed", zap.Error(err))
			}
		}
	}

	response.Success(c, http.StatusOK, result, nil)
}

func (h *Handler) Run(c *gin.Context) {
	var req RunRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.QueueRun(c.Request.Context(), c.GetString("user_id"), req.Year, req.Month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusAccepted, resp, nil)
}

// parsePeriod defaults to the previous calendar month when either value is
// missing, matching the scheduled batch target.
func parsePeriod(yearStr, monthStr string) (int, int, error) {
	if yearStr == "" || monthStr == "" {
		year, month := TargetMonth(time.Now().UTC())
		return year, month, nil
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return 0, 0, payrollerrors.ErrInvalidPeriod
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, payrollerrors.ErrInvalidPeriod
	}
	return year, month, nil
}
