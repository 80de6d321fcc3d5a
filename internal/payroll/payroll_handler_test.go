package payroll_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/payroll"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type calcCountingService struct {
	fakePayrollService
	calls  int
	result payroll.PayrollResult
}

func (s *calcCountingService) Calculate(ctx context.Context, userID string, year, month int) (payroll.PayrollResult, error) {
	s.calls++
	return s.result, nil
}

func newCalcRouter(h *payroll.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/payroll/:userId", h.Calculate)
	router.POST("/payroll/run", h.Run)
	return router
}

func TestCalculateCachesResult(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	result := sampleResult()
	svc := &calcCountingService{result: result}
	router := newCalcRouter(payroll.NewHandlerWithCache(svc, rdb))

	key := fmt.Sprintf("payroll:calc:%s:2025-09", result.UserID)
	payload, err := json.Marshal(result)
	assert.NoError(t, err)

	mock.ExpectGet(key).RedisNil()
	mock.ExpectSet(key, payload, 5*time.Minute).SetVal("OK")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payroll/"+result.UserID+"?year=2025&month=9", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCalculateServesFromCache(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	result := sampleResult()
	svc := &calcCountingService{result: result}
	router := newCalcRouter(payroll.NewHandlerWithCache(svc, rdb))

	key := fmt.Sprintf("payroll:calc:%s:2025-09", result.UserID)
	payload, err := json.Marshal(result)
	assert.NoError(t, err)

	mock.ExpectGet(key).SetVal(string(payload))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payroll/"+result.UserID+"?year=2025&month=9", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, svc.calls)
	assert.Contains(t, w.Body.String(), `"net_pay":19510`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCalculateWithoutCache(t *testing.T) {
	result := sampleResult()
	svc := &calcCountingService{result: result}
	router := newCalcRouter(payroll.NewHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payroll/"+result.UserID+"?year=2025&month=9", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.calls)
}

func TestCalculateRejectsBadPeriod(t *testing.T) {
	svc := &calcCountingService{}
	router := newCalcRouter(payroll.NewHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payroll/some-user?year=2025&month=13", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, svc.calls)
}

type queueCountingService struct {
	fakePayrollService
	gotYear, gotMonth int
}

func (s *queueCountingService) QueueRun(ctx context.Context, actorID string, year, month int) (payroll.RunResponse, error) {
	s.gotYear, s.gotMonth = year, month
	return payroll.RunResponse{Year: year, Month: month, Queued: 3}, nil
}

func TestRunAcceptsEmptyBody(t *testing.T) {
	svc := &queueCountingService{}
	router := newCalcRouter(payroll.NewHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payroll/run", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestRunWithExplicitPeriod(t *testing.T) {
	svc := &queueCountingService{}
	router := newCalcRouter(payroll.NewHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payroll/run", strings.NewReader(`{"year":2025,"month":8}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, 2025, svc.gotYear)
	assert.Equal(t, 8, svc.gotMonth)
	assert.Contains(t, w.Body.String(), `"queued":3`)
}
