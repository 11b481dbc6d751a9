package contribution

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/evergrove/fulfillment-backend/internal/domain"
)

var _ contributionRepo = &contributionRepoMock{}

type contributionRepoMock struct {
	CreateFunc   func(ctx context.Context, c domain.Contribution) (*domain.Contribution, error)
	GetByIDFunc  func(ctx context.Context, userID, id uuid.UUID) (*domain.Contribution, error)
	UpdateFunc   func(ctx context.Context, userID, id uuid.UUID, params domain.ContributionUpdateParams) (*domain.Contribution, error)
	DeleteFunc   func(ctx context.Context, userID, id uuid.UUID) error
	ListPageFunc func(ctx context.Context, userID *uuid.UUID, limit, offset int) ([]domain.Contribution, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   domain.Contribution
		}
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		Update []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
			Params domain.ContributionUpdateParams
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		ListPage []struct {
			Ctx    context.Context
			UserID *uuid.UUID
			Limit  int
			Offset int
		}
	}
	lockCreate   sync.RWMutex
	lockGetByID  sync.RWMutex
	lockUpdate   sync.RWMutex
	lockDelete   sync.RWMutex
	lockListPage sync.RWMutex
}

func (mock *contributionRepoMock) Create(ctx context.Context, c domain.Contribution) (*domain.Contribution, error) {
	if mock.CreateFunc == nil {
		panic("contributionRepoMock.CreateFunc: method is nil but contributionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Contribution
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *contributionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   domain.Contribution
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *contributionRepoMock) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Contribution, error) {
	if mock.GetByIDFunc == nil {
		panic("contributionRepoMock.GetByIDFunc: method is nil but contributionRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *contributionRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *contributionRepoMock) Update(ctx context.Context, userID, id uuid.UUID, params domain.ContributionUpdateParams) (*domain.Contribution, error) {
	if mock.UpdateFunc == nil {
		panic("contributionRepoMock.UpdateFunc: method is nil but contributionRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
		Params domain.ContributionUpdateParams
	}{Ctx: ctx, UserID: userID, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, id, params)
}

func (mock *contributionRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
	Params domain.ContributionUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *contributionRepoMock) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("contributionRepoMock.DeleteFunc: method is nil but contributionRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *contributionRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
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
