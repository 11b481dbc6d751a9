package mirror

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/evergrove/fulfillment-backend/internal/domain"
)

var _ contributionRepo = &contributionRepoMock{}

type contributionRepoMock struct {
	ListPageFunc func(ctx context.Context, userID *uuid.UUID, limit, offset int) ([]domain.Contribution, error)

	calls struct {
		ListPage []struct {
			Ctx    context.Context
			UserID *uuid.UUID
			Limit  int
			Offset int
		}
	}
	lockListPage sync.RWMutex
}

func (mock *contributionRepoMock) ListPage(ctx context.Context, userID *uuid.UUID, limit, offset int) ([]domain.Contribution, error) {
	if mock.ListPageFunc == nil {
		panic("contributionRepoMock.ListPageFunc: method is nil but contributionRepo.ListPage was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID *uuid.UUID
		Limit  int
		Offset int
	}{Ctx: ctx, UserID: userID, Limit: limit, Offset: offset}
	mock.lockListPage.Lock()
	mock.calls.ListPage = append(mock.calls.ListPage, callInfo)
	mock.lockListPage.Unlock()
	return mock.ListPageFunc(ctx, userID, limit, offset)
}

func (mock *contributionRepoMock) ListPageCalls() []struct {
	Ctx    context.Context
	UserID *uuid.UUID
	Limit  int
	Offset int
} {
	mock.lockListPage.RLock()
	calls := mock.calls.ListPage
	mock.lockListPage.RUnlock()
	return calls
}
