package response

import (
	"time"

	"hooklens/internal/usecase/queries"

	"github.com/google/uuid"
)

type AnalyticsResponse struct {
	EndpointID            uuid.UUID         `json:"endpoint_id"`
	TotalRequests         int64             `json:"total_requests"`
	SuccessfulRequests    int64             `json:"successful_requests"`
	FailedRequests        int64             `json:"failed_requests"`
	SuccessRate           float64           `json:"success_rate"`
	TotalBytesReceived    int64             `json:"total_bytes_received"`
	AverageRequestSize    float64           `json:"average_request_size"`
	MethodCounts          MethodCounts      `json:"method_counts"`
	ContentTypeCounts     ContentTypeCounts `json:"content_type_counts"`
	MostCommonMethod      string            `json:"most_common_method"`
	MostCommonContentType string            `json:"most_common_content_type"`
	LastRequestAt         *time.Time        `json:"last_request_at,omitempty"`
	UpdatedAt             time.Time         `json:"updated_at"`
}

type MethodCounts struct {
	Get    int64 `json:"get"`
	Post   int64 `json:"post"`
	Put    int64 `json:"put"`
	Patch  int64 `json:"patch"`
	Delete int64 `json:"delete"`
	Other  int64 `json:"other"`
}

type ContentTypeCounts struct {
	JSON  int64 `json:"json"`
	XML   int64 `json:"xml"`
	Form  int64 `json:"form"`
	Text  int64 `json:"text"`
	Other int64 `json:"other"`
}

func FromAnalyticsView(v *queries.AnalyticsView) *AnalyticsResponse {
	return &AnalyticsResponse{
		EndpointID:         v.EndpointID,
		TotalRequests:      v.TotalRequests,
		SuccessfulRequests: v.SuccessfulRequests,
		FailedRequests:     v.FailedRequests,
		SuccessRate:        v.SuccessRate(),
		TotalBytesReceived: v.TotalBytesReceived,
		AverageRequestSize: v.AverageRequestSize,
		MethodCounts: MethodCounts{
			Get:    v.GetRequests,
			Post:   v.PostRequests,
			Put:    v.PutRequests,
			Patch:  v.PatchRequests,
			Delete: v.DeleteRequests,
			Other:  v.OtherRequests,
		},
		ContentTypeCounts: ContentTypeCounts{
			JSON:  v.JSONRequests,
			XML:   v.XMLRequests,
			Form:  v.FormRequests,
			Text:  v.TextRequests,
			Other: v.OtherContentRequests,
		},
		MostCommonMethod:      v.MostCommonMethod(),
		MostCommonContentType: v.MostCommonContentType(),
		LastRequestAt:         v.LastRequestAt,
		UpdatedAt:             v.UpdatedAt,
	}
}
