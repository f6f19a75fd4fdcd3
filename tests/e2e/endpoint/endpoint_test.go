//go:build e2e

package endpoint_test

import (
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	resdto "hooklens/internal/handler/dto/response"
	"hooklens/tests/common/httptest"
	"hooklens/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	endpointsURL = "/api/endpoints"
	sweepURL     = "/api/admin/sweep"
)

type endpointSuite struct {
	e2e.SharedSuite
}

func TestEndpointSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(endpointSuite))
}

func (s *endpointSuite) createEndpoint(body map[string]any) resdto.EndpointResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, endpointsURL, body)
	require.Equal(s.T(), http.StatusCreated, rec.Code, "エンドポイント作成に失敗: %s", rec.Body.String())

	var created resdto.EndpointResponse
	httptest.DecodeResponseBody(s.T(), rec.Body, &created)
	return created
}

func (s *endpointSuite) capture(created resdto.EndpointResponse, body []byte) resdto.CaptureAckResponse {
	rec := httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost,
		"/hooks/"+created.ID.String(), body, nil)
	require.Equal(s.T(), http.StatusOK, rec.Code, "キャプチャに失敗: %s", rec.Body.String())

	var ack resdto.CaptureAckResponse
	httptest.DecodeResponseBody(s.T(), rec.Body, &ack)
	return ack
}

func (s *endpointSuite) TestCreateEndpoint() {
	s.Run("正常系: 省略した設定はデフォルト値で補完される", func() {
		created := s.createEndpoint(map[string]any{"name": "defaults"})

		s.Equal("active", created.Status)
		s.Equal(int32(500), created.MaxRequests)
		s.Equal(int32(7), created.RetentionDays)
		s.Equal(int32(500), created.RequestsRemaining)
		s.Contains(created.CaptureURL, "/hooks/"+created.ID.String())
		s.Require().NotNil(created.ExpiresAt)
		s.WithinDuration(created.CreatedAt.Add(60*time.Minute), *created.ExpiresAt, 5*time.Second)
	})

	s.Run("正常系: 明示した設定が保存される", func() {
		expiry := time.Now().Add(48 * time.Hour).UTC()
		created := s.createEndpoint(map[string]any{
			"name":           "custom",
			"description":    "CI からの webhook 置き場",
			"max_requests":   25,
			"retention_days": 30,
			"is_public":      true,
			"expires_at":     expiry,
		})

		s.Equal(int32(25), created.MaxRequests)
		s.Equal(int32(30), created.RetentionDays)
		s.True(created.IsPublic)
		s.Require().NotNil(created.ExpiresAt)
		s.WithinDuration(expiry, *created.ExpiresAt, time.Second)
	})

	s.Run("異常系: 上限を超えるクォータは400", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, endpointsURL,
			map[string]any{"name": "too big", "max_requests": 10001})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "max_requests")
	})

	s.Run("異常系: 過去の有効期限は400", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, endpointsURL,
			map[string]any{"name": "past", "expires_at": time.Now().Add(-time.Hour).UTC()})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "expires_at")
	})
}

func (s *endpointSuite) TestDisableEndpoint() {
	s.Run("正常系: 無効化するとキャプチャは410になる", func() {
		created := s.createEndpoint(map[string]any{"name": "to disable"})

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			endpointsURL+"/"+created.ID.String(), nil)
		s.Equal(http.StatusNoContent, rec.Code)

		detail := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			endpointsURL+"/"+created.ID.String(), nil)
		var view resdto.EndpointResponse
		httptest.AssertSuccessResponse(s.T(), detail, http.StatusOK, &view)
		s.Equal("disabled", view.Status)

		capture := httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost,
			"/hooks/"+created.ID.String(), []byte("x"), nil)
		httptest.AssertErrorResponse(s.T(), capture, http.StatusGone, "")
	})

	s.Run("異常系: 存在しないエンドポイントの無効化は404", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			endpointsURL+"/7b0f5e9e-0000-0000-0000-000000000000", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Endpoint not found")
	})
}

func (s *endpointSuite) TestEndpointHealth() {
	s.Run("正常系: 最新のキャプチャが含まれる", func() {
		created := s.createEndpoint(map[string]any{"name": "health"})
		ack := s.capture(created, []byte(`{"ping":true}`))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			endpointsURL+"/"+created.ID.String()+"/health", nil)

		var health resdto.EndpointHealthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &health)
		s.False(health.IsExpired)
		s.Equal(int32(1), health.Endpoint.CurrentRequestCount)
		s.Require().NotNil(health.LastRequest)
		s.Equal(ack.RequestID, health.LastRequest.ID)
	})
}

func (s *endpointSuite) TestSweep() {
	s.Run("正常系: 期限切れの昇格と保持期限切れの削除を報告する", func() {
		// 期限切れ対象
		windowed := s.createEndpoint(map[string]any{"name": "stale"})
		_, err := s.DB.Exec(s.T().Context(),
			"UPDATE endpoints SET expires_at = now() - interval '1 hour' WHERE id = $1", windowed.ID)
		require.NoError(s.T(), err)

		// 保持期限切れ対象: 無効化済みかつ作成日を保持日数より過去に
		doomed := s.createEndpoint(map[string]any{"name": "doomed", "retention_days": 1})
		s.capture(doomed, []byte("old payload"))
		_, err = s.DB.Exec(s.T().Context(),
			"UPDATE endpoints SET status = 'disabled', created_at = now() - interval '3 days' WHERE id = $1", doomed.ID)
		require.NoError(s.T(), err)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, sweepURL, nil)

		var result resdto.SweepResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &result)
		s.Equal(int64(1), result.ExpiredByWindow)
		s.Equal(int64(1), result.DeletedEndpoints)
		s.Equal(int64(1), result.DeletedRequests)

		// 削除されたエンドポイントは見えなくなる
		gone := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			endpointsURL+"/"+doomed.ID.String(), nil)
		httptest.AssertErrorResponse(s.T(), gone, http.StatusNotFound, "Endpoint not found")

		// 昇格されただけのエンドポイントは残る
		kept := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			endpointsURL+"/"+windowed.ID.String(), nil)
		var view resdto.EndpointResponse
		httptest.AssertSuccessResponse(s.T(), kept, http.StatusOK, &view)
		s.Equal("expired", view.Status)

		// 変化がなければ2回目の実行は何もしない
		again := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, sweepURL, nil)
		var second resdto.SweepResponse
		httptest.AssertSuccessResponse(s.T(), again, http.StatusOK, &second)
		s.Zero(second.ExpiredByWindow)
		s.Zero(second.ExpiredByQuota)
		s.Zero(second.DeletedEndpoints)
		s.Zero(second.DeletedRequests)
	})
}

func (s *endpointSuite) TestExport() {
	s.Run("正常系: 非同期エクスポートがファイルを書き出す", func() {
		created := s.createEndpoint(map[string]any{"name": "export"})
		s.capture(created, []byte(`{"n":1}`))
		s.capture(created, []byte(`{"n":2}`))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			endpointsURL+"/"+created.ID.String()+"/exports", map[string]string{"format": "json"})

		var ticket resdto.ExportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &ticket)
		s.Equal("json", ticket.Format)

		// ワーカーが書き終わるのを待つ
		require.Eventually(s.T(), func() bool {
			_, err := os.Stat(ticket.Path)
			return err == nil
		}, 5*time.Second, 100*time.Millisecond, "エクスポートファイルが書き出されない")

		raw, err := os.ReadFile(ticket.Path)
		require.NoError(s.T(), err)

		var exported []map[string]any
		require.NoError(s.T(), json.Unmarshal(raw, &exported))
		s.Len(exported, 2)
	})

	s.Run("異常系: 未対応フォーマットは400", func() {
		created := s.createEndpoint(map[string]any{"name": "bad format"})

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			endpointsURL+"/"+created.ID.String()+"/exports", map[string]string{"format": "yaml"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "format must be json or csv")
	})
}
