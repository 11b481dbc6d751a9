package contribution

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/evergrove/fulfillment-backend/internal/domain"
)

var _ mirrorEngine = &mirrorEngineMock{}

type mirrorEngineMock struct {
	ProjectContributionFunc   func(ctx context.Context, c domain.Contribution) (domain.ProjectionResult, error)
	OnContributionUpdatedFunc func(ctx context.Context, c domain.Contribution, changedFields []string) (domain.ProjectionResult, error)
	RetractContributionFunc   func(ctx context.Context, userID, contributionID uuid.UUID) (domain.RetractionResult, error)

	calls struct {
		ProjectContribution []struct {
			Ctx context.Context
			C   domain.Contribution
		}
		OnContributionUpdated []struct {
			Ctx           context.Context
			C             domain.Contribution
			ChangedFields []string
		}
		RetractContribution []struct {
			Ctx            context.Context
			UserID         uuid.UUID
			ContributionID uuid.UUID
		}
	}
	lockProjectContribution   sync.RWMutex
	lockOnContributionUpdated sync.RWMutex
	lockRetractContribution   sync.RWMutex
}

func (mock *mirrorEngineMock) ProjectContribution(ctx context.Context, c domain.Contribution) (domain.ProjectionResult, error) {
	if mock.ProjectContributionFunc == nil {
		panic("mirrorEngineMock.ProjectContributionFunc: method is nil but mirrorEngine.ProjectContribution was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Contribution
	}{Ctx: ctx, C: c}
	mock.lockProjectContribution.Lock()
	mock.calls.ProjectContribution = append(mock.calls.ProjectContribution, callInfo)
	mock.lockProjectContribution.Unlock()
	return mock.ProjectContributionFunc(ctx, c)
}

func (mock *mirrorEngineMock) ProjectContributionCalls() []struct {
	Ctx context.Context
	C   domain.Contribution
} {
	mock.lockProjectContribution.RLock()
	calls := mock.calls.ProjectContribution
	mock.lockProjectContribution.RUnlock()
	return calls
}

func (mock *mirrorEngineMock) OnContributionUpdated(ctx context.Context, c domain.Contribution, changedFields []string) (domain.ProjectionResult, error) {
	if mock.OnContributionUpdatedFunc == nil {
		panic("mirrorEngineMock.OnContributionUpdatedFunc: method is nil but mirrorEngine.OnContributionUpdated was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		C             domain.Contribution
		ChangedFields []string
	}{Ctx: ctx, C: c, ChangedFields: changedFields}
	mock.lockOnContributionUpdated.Lock()
	mock.calls.OnContributionUpdated = append(mock.calls.OnContributionUpdated, callInfo)
	mock.lockOnContributionUpdated.Unlock()
	return mock.OnContributionUpdatedFunc(ctx, c, changedFields)
}

func (mock *mirrorEngineMock) OnContributionUpdatedCalls() []struct {
	Ctx           context.Context
	C             domain.Contribution
	ChangedFields []string
} {
	mock.lockOnContributionUpdated.RLock()
	calls := mock.calls.OnContributionUpdated
	mock.lockOnContributionUpdated.RUnlock()
	return calls
}

func (mock *mirrorEngineMock) RetractContribution(ctx context.Context, userID, contributionID uuid.UUID) (domain.RetractionResult, error) {
	if mock.RetractContributionFunc == nil {
		panic("mirrorEngineMock.RetractContributionFunc: method is nil but mirrorEngine.RetractContribution was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		UserID         uuid.UUID
		ContributionID uuid.UUID
	}{Ctx: ctx, UserID: userID, ContributionID: contributionID}
	mock.lockRetractContribution.Lock()
	mock.calls.RetractContribution = append(mock.calls.RetractContribution, callInfo)
	mock.lockRetractContribution.Unlock()
	return mock.RetractContributionFunc(ctx, userID, contributionID)
}

func (mock *mirrorEngineMock) RetractContributionCalls() []struct {
	Ctx            context.Context
	UserID         uuid.UUID
	ContributionID uuid.UUID
} {
	mock.lockRetractContribution.RLock()
	calls := mock.calls.RetractContribution
	mock.lockRetractContribution.RUnlock()
	return calls
}
