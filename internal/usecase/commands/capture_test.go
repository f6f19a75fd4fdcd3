//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hooklens/internal/infra"
	"hooklens/internal/infra/repository"
	"hooklens/internal/pkg/clock"
	"hooklens/internal/pkg/errs"
	"hooklens/internal/usecase/commands"
	"hooklens/internal/usecase/shared"
	"hooklens/internal/usecase/tasks"
	"hooklens/tests/common/builder"
	sharedmock "hooklens/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CaptureCommandsTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	txEndpoints   *sharedmock.MockEndpointRepository
	txRequests    *sharedmock.MockRequestRepository
	poolEndpoints *sharedmock.MockEndpointRepository
	analytics     *sharedmock.MockAnalyticsRepository
	queue         *sharedmock.MockTaskQueue
	clock         *clock.MockClock

	captureCommands commands.CaptureCommands
	endpointID      uuid.UUID
	now             time.Time
}

func (s *CaptureCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.txEndpoints = sharedmock.NewMockEndpointRepository(s.ctrl)
	s.txRequests = sharedmock.NewMockRequestRepository(s.ctrl)
	s.poolEndpoints = sharedmock.NewMockEndpointRepository(s.ctrl)
	s.analytics = sharedmock.NewMockAnalyticsRepository(s.ctrl)
	s.queue = sharedmock.NewMockTaskQueue(s.ctrl)

	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.now)

	s.captureCommands = commands.NewCaptureCommands(s.uow, s.queue, s.clock)
	s.endpointID = uuid.New()
}

func (s *CaptureCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCaptureCommandsSuite(t *testing.T) {
	suite.Run(t, new(CaptureCommandsTestSuite))
}

func (s *CaptureCommandsTestSuite) newInboundRequest() *http.Request {
	body := []byte(`{"event":"push"}`)
	r := httptest.NewRequest(http.MethodPost, "/hooks/x", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func (s *CaptureCommandsTestSuite) expectWithinTx() {
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		})
}

func (s *CaptureCommandsTestSuite) TestCapture() {
	body := []byte(`{"event":"push"}`)

	s.Run("success: records request and applies analytics", func() {
		s.expectWithinTx()
		s.tx.EXPECT().Endpoints().Return(s.txEndpoints)
		s.txEndpoints.EXPECT().IncrementUsage(gomock.Any(), s.endpointID, s.now).
			Return(&repository.UsageResult{RequestCount: 1, Status: "active"}, nil)
		s.tx.EXPECT().Requests().Return(s.txRequests)
		s.txRequests.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(10), nil)

		s.uow.EXPECT().Analytics().Return(s.analytics)
		s.analytics.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(nil)
		s.queue.EXPECT().Enqueue(gomock.Any(), tasks.TaskProcessRequest, tasks.ProcessRequestPayload{RequestID: 10}).Return(nil)

		result, err := s.captureCommands.Capture(context.Background(), s.endpointID, s.newInboundRequest(), body)
		s.Require().NoError(err)
		s.Equal(int64(10), result.RequestID)
		s.Equal(s.endpointID, result.EndpointID)
		s.Equal(s.now, result.ReceivedAt)
		s.Equal(int32(1), result.RequestCount)
	})

	s.Run("success: analytics failure schedules retry without failing capture", func() {
		s.expectWithinTx()
		s.tx.EXPECT().Endpoints().Return(s.txEndpoints)
		s.txEndpoints.EXPECT().IncrementUsage(gomock.Any(), s.endpointID, s.now).
			Return(&repository.UsageResult{RequestCount: 2, Status: "active"}, nil)
		s.tx.EXPECT().Requests().Return(s.txRequests)
		s.txRequests.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(11), nil)

		s.uow.EXPECT().Analytics().Return(s.analytics)
		s.analytics.EXPECT().Apply(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("boom", errs.New("connection reset")))
		s.queue.EXPECT().Enqueue(gomock.Any(), tasks.TaskAnalyticsRetry, gomock.Any()).Return(nil)
		s.queue.EXPECT().Enqueue(gomock.Any(), tasks.TaskProcessRequest, gomock.Any()).Return(nil)

		result, err := s.captureCommands.Capture(context.Background(), s.endpointID, s.newInboundRequest(), body)
		s.Require().NoError(err)
		s.Equal(int64(11), result.RequestID)
	})

	s.Run("gone: unusable endpoint is lazily expired", func() {
		s.expectWithinTx()
		s.tx.EXPECT().Endpoints().Return(s.txEndpoints)
		s.txEndpoints.EXPECT().IncrementUsage(gomock.Any(), s.endpointID, s.now).
			Return(nil, infra.WrapRepoErr("endpoint not usable for capture", errs.New("no rows"), infra.KindUnavailable))

		// Stored status still says active: the window elapsed before any
		// sweep ran, so the capture path flips it on the way out.
		past := s.now.Add(-time.Minute)
		stale, err := builder.NewEndpointBuilder().
			With(func(b *builder.EndpointBuilder) {
				b.Now = s.now.Add(-2 * time.Hour)
				b.ExpiresAt = &past
			}).
			BuildDomain()
		s.Require().NoError(err)

		s.uow.EXPECT().Endpoints().Return(s.poolEndpoints).Times(2)
		s.poolEndpoints.EXPECT().FindByID(gomock.Any(), s.endpointID).Return(stale, nil)
		s.poolEndpoints.EXPECT().MarkExpired(gomock.Any(), s.endpointID, s.now).Return(nil)

		result, err := s.captureCommands.Capture(context.Background(), s.endpointID, s.newInboundRequest(), body)
		s.Nil(result)
		s.ErrorIs(err, errs.ErrEndpointGone)
	})

	s.Run("gone: already expired endpoint is not touched again", func() {
		s.expectWithinTx()
		s.tx.EXPECT().Endpoints().Return(s.txEndpoints)
		s.txEndpoints.EXPECT().IncrementUsage(gomock.Any(), s.endpointID, s.now).
			Return(nil, infra.WrapRepoErr("endpoint not usable for capture", errs.New("no rows"), infra.KindUnavailable))

		expired, err := builder.NewEndpointBuilder().BuildDomain()
		s.Require().NoError(err)
		expired.Expire(s.now)

		s.uow.EXPECT().Endpoints().Return(s.poolEndpoints)
		s.poolEndpoints.EXPECT().FindByID(gomock.Any(), s.endpointID).Return(expired, nil)

		result, err := s.captureCommands.Capture(context.Background(), s.endpointID, s.newInboundRequest(), body)
		s.Nil(result)
		s.ErrorIs(err, errs.ErrEndpointGone)
	})

	s.Run("not found: unknown endpoint", func() {
		s.expectWithinTx()
		s.tx.EXPECT().Endpoints().Return(s.txEndpoints)
		s.txEndpoints.EXPECT().IncrementUsage(gomock.Any(), s.endpointID, s.now).
			Return(nil, infra.WrapRepoErr("endpoint not usable for capture", errs.New("no rows"), infra.KindUnavailable))

		s.uow.EXPECT().Endpoints().Return(s.poolEndpoints)
		s.poolEndpoints.EXPECT().FindByID(gomock.Any(), s.endpointID).
			Return(nil, infra.WrapRepoErr("endpoint not found", errs.New("no rows"), infra.KindNotFound))

		result, err := s.captureCommands.Capture(context.Background(), s.endpointID, s.newInboundRequest(), body)
		s.Nil(result)
		s.ErrorIs(err, errs.ErrEndpointNotFound)
	})

	s.Run("store failure surfaces as database error", func() {
		s.expectWithinTx()
		s.tx.EXPECT().Endpoints().Return(s.txEndpoints)
		s.txEndpoints.EXPECT().IncrementUsage(gomock.Any(), s.endpointID, s.now).
			Return(nil, infra.WrapRepoErr("failed to increment endpoint usage", errs.New("connection refused")))

		result, err := s.captureCommands.Capture(context.Background(), s.endpointID, s.newInboundRequest(), body)
		s.Nil(result)
		s.ErrorIs(err, errs.ErrDatabaseOperationFailed)
	})
}
