//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hooklens/internal/handler/api"
	resdto "hooklens/internal/handler/dto/response"
	"hooklens/internal/pkg/config"
	"hooklens/internal/pkg/errs"
	"hooklens/internal/usecase/commands"
	"hooklens/tests/common/httptest"
	commandsmock "hooklens/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CaptureHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockCapture *commandsmock.MockCaptureCommands
	endpointID  uuid.UUID
	now         time.Time
}

func (s *CaptureHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCapture = commandsmock.NewMockCaptureCommands(s.mockCtrl)
	s.endpointID = uuid.New()
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	handler := api.NewCaptureHandler(s.mockCapture, config.NewTestConfig().Capture)
	s.router.Any("/hooks/:token", handler.Capture)
	s.router.Any("/hooks/:token/*path", handler.Capture)
}

func (s *CaptureHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCaptureHandlerSuite(t *testing.T) {
	suite.Run(t, new(CaptureHandlerTestSuite))
}

func (s *CaptureHandlerTestSuite) captureResult(count int32) *commands.CaptureResult {
	return &commands.CaptureResult{
		RequestID:    42,
		EndpointID:   s.endpointID,
		ReceivedAt:   s.now,
		RequestCount: count,
	}
}

func (s *CaptureHandlerTestSuite) TestCapture() {
	path := "/hooks/" + s.endpointID.String()

	s.Run("success: POST with JSON body returns ack", func() {
		s.mockCapture.EXPECT().
			Capture(gomock.Any(), s.endpointID, gomock.Any(), []byte(`{"event":"push"}`)).
			Return(s.captureResult(1), nil)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, path,
			[]byte(`{"event":"push"}`), map[string]string{"Content-Type": "application/json"})

		var body resdto.CaptureAckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("captured", body.Status)
		s.Equal(s.endpointID, body.EndpointID)
		s.Equal(int64(42), body.RequestID)
		s.Equal(int32(1), body.RequestCount)
	})

	s.Run("success: captures non-standard methods too", func() {
		s.mockCapture.EXPECT().
			Capture(gomock.Any(), s.endpointID, gomock.Any(), []byte{}).
			Return(s.captureResult(2), nil)

		rec := httptest.PerformRawRequest(s.T(), s.router, "PROPFIND", path, nil, nil)

		var body resdto.CaptureAckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int32(2), body.RequestCount)
	})

	s.Run("success: sub-path hits the same endpoint", func() {
		s.mockCapture.EXPECT().
			Capture(gomock.Any(), s.endpointID, gomock.Any(), gomock.Any()).
			Return(s.captureResult(3), nil)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodGet, path+"/github/events", nil, nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 404 on malformed token without touching the command", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/hooks/not-a-uuid",
			[]byte("x"), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Endpoint not found")
	})

	s.Run("error: 404 on unknown endpoint", func() {
		s.mockCapture.EXPECT().
			Capture(gomock.Any(), s.endpointID, gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrEndpointNotFound)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, path, []byte("x"), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Endpoint not found")
	})

	s.Run("error: 410 when endpoint is expired or over quota", func() {
		s.mockCapture.EXPECT().
			Capture(gomock.Any(), s.endpointID, gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrEndpointGone)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, path, []byte("x"), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusGone, "Endpoint expired or request limit reached")
	})

	s.Run("error: 503 when the store is unavailable", func() {
		s.mockCapture.EXPECT().
			Capture(gomock.Any(), s.endpointID, gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrDatabaseOperationFailed)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, path, []byte("x"), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Service temporarily unavailable")
	})
}

func (s *CaptureHandlerTestSuite) TestCapture_BodyLimit() {
	router := gin.New()
	handler := api.NewCaptureHandler(s.mockCapture, config.CaptureConfig{
		DefaultQuota:         500,
		MaxQuota:             10000,
		DefaultRetentionDays: 7,
		MaxRetentionDays:     365,
		DefaultExpiry:        time.Hour,
		MaxBodyBytes:         16,
	})
	router.Any("/hooks/:token", handler.Capture)

	s.Run("error: 413 when the body exceeds the limit", func() {
		oversized := make([]byte, 32)
		rec := httptest.PerformRawRequest(s.T(), router, http.MethodPost,
			"/hooks/"+s.endpointID.String(), oversized, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusRequestEntityTooLarge, "Request body too large")
	})

	s.Run("success: body exactly at the limit passes", func() {
		exact := make([]byte, 16)
		s.mockCapture.EXPECT().
			Capture(gomock.Any(), s.endpointID, gomock.Any(), exact).
			Return(s.captureResult(1), nil)

		rec := httptest.PerformRawRequest(s.T(), router, http.MethodPost,
			"/hooks/"+s.endpointID.String(), exact, nil)
		s.Equal(http.StatusOK, rec.Code)
	})
}
