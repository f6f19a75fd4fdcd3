//go:build e2e

package capture_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	resdto "hooklens/internal/handler/dto/response"
	"hooklens/tests/common/httptest"
	"hooklens/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const endpointsURL = "/api/endpoints"

type captureSuite struct {
	e2e.SharedSuite
}

func TestCaptureSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(captureSuite))
}

func (s *captureSuite) createEndpoint(body map[string]any) resdto.EndpointResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, endpointsURL, body)
	require.Equal(s.T(), http.StatusCreated, rec.Code, "エンドポイント作成に失敗: %s", rec.Body.String())

	var created resdto.EndpointResponse
	httptest.DecodeResponseBody(s.T(), rec.Body, &created)
	return created
}

func (s *captureSuite) hooksPath(created resdto.EndpointResponse) string {
	return "/hooks/" + created.ID.String()
}

func (s *captureSuite) forceExpire(created resdto.EndpointResponse) {
	_, err := s.DB.Exec(s.T().Context(),
		"UPDATE endpoints SET expires_at = now() - interval '1 minute' WHERE id = $1", created.ID)
	require.NoError(s.T(), err)
}

func (s *captureSuite) TestCapture() {
	s.Run("正常系: POSTリクエストを記録して使用量を返す", func() {
		created := s.createEndpoint(map[string]any{"name": "github hooks"})

		rec := httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, s.hooksPath(created),
			[]byte(`{"event":"push","ref":"main"}`),
			map[string]string{"Content-Type": "application/json", "X-GitHub-Event": "push"})

		var ack resdto.CaptureAckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &ack)
		s.Equal("captured", ack.Status)
		s.Equal(created.ID, ack.EndpointID)
		s.Equal(int32(1), ack.RequestCount)
		s.NotZero(ack.RequestID)

		// 記録された内容を確認
		detail := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s/requests/%d", endpointsURL, created.ID, ack.RequestID), nil)

		var stored resdto.RequestResponse
		httptest.AssertSuccessResponse(s.T(), detail, http.StatusOK, &stored)
		s.Equal(http.MethodPost, stored.Method)
		s.Equal(`{"event":"push","ref":"main"}`, stored.Body)
		s.Equal("application/json", stored.ContentType)
		s.Equal("push", stored.Headers["X-Github-Event"])
	})

	s.Run("正常系: 非標準メソッドとサブパスも記録する", func() {
		created := s.createEndpoint(map[string]any{"name": "odd senders"})

		rec := httptest.PerformRawRequest(s.T(), s.Router, "PROPFIND",
			s.hooksPath(created)+"/deep/sub/path?source=ci", nil, nil)

		var ack resdto.CaptureAckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &ack)

		detail := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s/requests/%d", endpointsURL, created.ID, ack.RequestID), nil)

		var stored resdto.RequestResponse
		httptest.AssertSuccessResponse(s.T(), detail, http.StatusOK, &stored)
		s.Equal("PROPFIND", stored.Method)
		s.Equal("source=ci", stored.QueryString)
	})

	s.Run("異常系: 存在しないトークンは404", func() {
		rec := httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost,
			"/hooks/7b0f5e9e-0000-0000-0000-000000000000", []byte("x"), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Endpoint not found")
	})

	s.Run("異常系: 期限切れエンドポイントは410になり状態も更新される", func() {
		created := s.createEndpoint(map[string]any{"name": "short lived"})
		s.forceExpire(created)

		rec := httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, s.hooksPath(created),
			[]byte("late"), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusGone, "Endpoint expired")

		// 遅延失効で status が expired に倒れていること
		detail := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			endpointsURL+"/"+created.ID.String(), nil)

		var view resdto.EndpointResponse
		httptest.AssertSuccessResponse(s.T(), detail, http.StatusOK, &view)
		s.Equal("expired", view.Status)
	})
}

func (s *captureSuite) TestQuotaRace() {
	s.Run("正常系: 残り1枠への同時リクエストは片方だけ成功する", func() {
		created := s.createEndpoint(map[string]any{"name": "race", "max_requests": 1})

		const senders = 2
		codes := make(chan int, senders)
		var wg sync.WaitGroup
		for i := 0; i < senders; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				rec := httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost,
					s.hooksPath(created), []byte("payload"), nil)
				codes <- rec.Code
			}()
		}
		wg.Wait()
		close(codes)

		var ok, gone int
		for code := range codes {
			switch code {
			case http.StatusOK:
				ok++
			case http.StatusGone:
				gone++
			}
		}
		s.Equal(1, ok, "成功は1件だけのはず")
		s.Equal(1, gone, "もう1件は410のはず")

		// 最後の1枠を使い切った時点で expired に倒れる
		detail := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			endpointsURL+"/"+created.ID.String(), nil)

		var view resdto.EndpointResponse
		httptest.AssertSuccessResponse(s.T(), detail, http.StatusOK, &view)
		s.Equal("expired", view.Status)
		s.Equal(int32(0), view.RequestsRemaining)
	})
}

func (s *captureSuite) TestAnalytics() {
	s.Run("正常系: メソッドとコンテンツタイプごとの集計が返る", func() {
		created := s.createEndpoint(map[string]any{"name": "analytics"})
		path := s.hooksPath(created)

		jsonHeaders := map[string]string{"Content-Type": "application/json"}
		xmlHeaders := map[string]string{"Content-Type": "text/xml"}

		for i := 0; i < 2; i++ {
			rec := httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, path, []byte(`{"n":1}`), jsonHeaders)
			require.Equal(s.T(), http.StatusOK, rec.Code)
		}
		rec := httptest.PerformRawRequest(s.T(), s.Router, http.MethodGet, path, nil, nil)
		require.Equal(s.T(), http.StatusOK, rec.Code)
		rec = httptest.PerformRawRequest(s.T(), s.Router, http.MethodPut, path, []byte("<a/>"), xmlHeaders)
		require.Equal(s.T(), http.StatusOK, rec.Code)

		resp := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			endpointsURL+"/"+created.ID.String()+"/analytics", nil)

		var analytics resdto.AnalyticsResponse
		httptest.AssertSuccessResponse(s.T(), resp, http.StatusOK, &analytics)
		s.Equal(int64(4), analytics.TotalRequests)
		s.Equal(int64(4), analytics.SuccessfulRequests)
		s.Equal(int64(2), analytics.MethodCounts.Post)
		s.Equal(int64(1), analytics.MethodCounts.Get)
		s.Equal(int64(1), analytics.MethodCounts.Put)
		s.Equal(int64(2), analytics.ContentTypeCounts.JSON)
		s.Equal(int64(1), analytics.ContentTypeCounts.XML)
		s.Equal("POST", analytics.MostCommonMethod)
		s.Positive(analytics.TotalBytesReceived)
		// 平均サイズは累積バイト数から導出される
		s.InDelta(float64(analytics.TotalBytesReceived)/float64(analytics.TotalRequests),
			analytics.AverageRequestSize, 0.01)
		s.NotNil(analytics.LastRequestAt)
	})

	s.Run("正常系: リクエストゼロでも集計はゼロ値で返る", func() {
		created := s.createEndpoint(map[string]any{"name": "untouched"})

		resp := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			endpointsURL+"/"+created.ID.String()+"/analytics", nil)

		var analytics resdto.AnalyticsResponse
		httptest.AssertSuccessResponse(s.T(), resp, http.StatusOK, &analytics)
		s.Zero(analytics.TotalRequests)
		s.Zero(analytics.SuccessRate)
	})

	s.Run("異常系: 存在しないエンドポイントの集計は404", func() {
		resp := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			endpointsURL+"/7b0f5e9e-0000-0000-0000-000000000000/analytics", nil)
		httptest.AssertErrorResponse(s.T(), resp, http.StatusNotFound, "Endpoint not found")
	})
}

func (s *captureSuite) TestRequestListing() {
	s.Run("正常系: キーセットカーソルで新しい順にページングする", func() {
		created := s.createEndpoint(map[string]any{"name": "pages"})
		path := s.hooksPath(created)

		for i := 0; i < 3; i++ {
			rec := httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, path,
				[]byte(fmt.Sprintf(`{"seq":%d}`, i)), nil)
			require.Equal(s.T(), http.StatusOK, rec.Code)
			time.Sleep(5 * time.Millisecond) // received_at の順序を安定させる
		}

		listURL := endpointsURL + "/" + created.ID.String() + "/requests"
		first := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, listURL+"?limit=2", nil)

		var page1 resdto.RequestPageResponse
		httptest.AssertSuccessResponse(s.T(), first, http.StatusOK, &page1)
		s.Require().Len(page1.Items, 2)
		s.Greater(page1.Items[0].ID, page1.Items[1].ID, "新しい順のはず")
		s.Require().NotEmpty(page1.NextCursor)

		second := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			listURL+"?limit=2&cursor="+page1.NextCursor, nil)

		var page2 resdto.RequestPageResponse
		httptest.AssertSuccessResponse(s.T(), second, http.StatusOK, &page2)
		s.Require().Len(page2.Items, 1)
		s.Empty(page2.NextCursor)
		s.Greater(page1.Items[1].ID, page2.Items[0].ID)
	})

	s.Run("異常系: 存在しないエンドポイントの一覧は404", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			endpointsURL+"/7b0f5e9e-0000-0000-0000-000000000000/requests", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Endpoint not found")
	})

	s.Run("異常系: 壊れたカーソルは400", func() {
		created := s.createEndpoint(map[string]any{"name": "bad cursor"})

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			endpointsURL+"/"+created.ID.String()+"/requests?cursor=garbage", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}
