//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hooklens/internal/infra"
	"hooklens/internal/pkg/clock"
	"hooklens/internal/pkg/errs"
	"hooklens/internal/usecase/commands"
	sharedmock "hooklens/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SweepCommandsTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	uow       *sharedmock.MockUnitOfWork
	endpoints *sharedmock.MockEndpointRepository
	now       time.Time

	sweepCommands commands.SweepCommands
}

func (s *SweepCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.endpoints = sharedmock.NewMockEndpointRepository(s.ctrl)
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	s.sweepCommands = commands.NewSweepCommands(s.uow, clock.NewMockClock(s.now))
}

func (s *SweepCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSweepCommandsSuite(t *testing.T) {
	suite.Run(t, new(SweepCommandsTestSuite))
}

func (s *SweepCommandsTestSuite) TestRun() {
	s.Run("success: reports all counters", func() {
		s.uow.EXPECT().Endpoints().Return(s.endpoints)
		s.endpoints.EXPECT().ExpirePastWindow(gomock.Any(), s.now).Return(int64(2), nil)
		s.endpoints.EXPECT().ExpireOverQuota(gomock.Any(), s.now).Return(int64(1), nil)
		s.endpoints.EXPECT().DeletePastRetention(gomock.Any(), s.now).Return(int64(3), int64(17), nil)

		result, err := s.sweepCommands.Run(context.Background())
		s.Require().NoError(err)
		s.Equal(int64(2), result.ExpiredByWindow)
		s.Equal(int64(1), result.ExpiredByQuota)
		s.Equal(int64(3), result.DeletedEndpoints)
		s.Equal(int64(17), result.DeletedRequests)
	})

	s.Run("success: idle pass reports zeroes", func() {
		s.uow.EXPECT().Endpoints().Return(s.endpoints)
		s.endpoints.EXPECT().ExpirePastWindow(gomock.Any(), s.now).Return(int64(0), nil)
		s.endpoints.EXPECT().ExpireOverQuota(gomock.Any(), s.now).Return(int64(0), nil)
		s.endpoints.EXPECT().DeletePastRetention(gomock.Any(), s.now).Return(int64(0), int64(0), nil)

		result, err := s.sweepCommands.Run(context.Background())
		s.Require().NoError(err)
		s.Equal(&commands.SweepResult{}, result)
	})

	s.Run("error: expiry step failure stops the pass", func() {
		s.uow.EXPECT().Endpoints().Return(s.endpoints)
		s.endpoints.EXPECT().ExpirePastWindow(gomock.Any(), s.now).
			Return(int64(0), infra.WrapRepoErr("boom", errs.New("connection refused")))

		result, err := s.sweepCommands.Run(context.Background())
		s.Nil(result)
		s.ErrorIs(err, errs.ErrDatabaseOperationFailed)
	})
}
