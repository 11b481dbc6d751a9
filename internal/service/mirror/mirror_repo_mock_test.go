package mirror

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/evergrove/fulfillment-backend/internal/domain"
)

var _ mirrorRepo = &mirrorRepoMock{}

type mirrorRepoMock struct {
	UpsertFunc         func(ctx context.Context, m domain.FulfillmentMirror) (*domain.FulfillmentMirror, bool, error)
	DeleteBySourceFunc func(ctx context.Context, userID uuid.UUID, sourceType domain.SourceType, sourceID uuid.UUID) (int, error)
	ListFunc           func(ctx context.Context, userID uuid.UUID, filter domain.MirrorFilter) ([]domain.FulfillmentMirror, error)

	calls struct {
		Upsert []struct {
			Ctx context.Context
			M   domain.FulfillmentMirror
		}
		DeleteBySource []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			SourceType domain.SourceType
			SourceID   uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.MirrorFilter
		}
	}
	lockUpsert         sync.RWMutex
	lockDeleteBySource sync.RWMutex
	lockList           sync.RWMutex
}

func (mock *mirrorRepoMock) Upsert(ctx context.Context, m domain.FulfillmentMirror) (*domain.FulfillmentMirror, bool, error) {
	if mock.UpsertFunc == nil {
		panic("mirrorRepoMock.UpsertFunc: method is nil but mirrorRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   domain.FulfillmentMirror
	}{Ctx: ctx, M: m}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, m)
}

func (mock *mirrorRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	M   domain.FulfillmentMirror
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *mirrorRepoMock) DeleteBySource(ctx context.Context, userID uuid.UUID, sourceType domain.SourceType, sourceID uuid.UUID) (int, error) {
	if mock.DeleteBySourceFunc == nil {
		panic("mirrorRepoMock.DeleteBySourceFunc: method is nil but mirrorRepo.DeleteBySource was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		SourceType domain.SourceType
		SourceID   uuid.UUID
	}{Ctx: ctx, UserID: userID, SourceType: sourceType, SourceID: sourceID}
	mock.lockDeleteBySource.Lock()
	mock.calls.DeleteBySource = append(mock.calls.DeleteBySource, callInfo)
	mock.lockDeleteBySource.Unlock()
	return mock.DeleteBySourceFunc(ctx, userID, sourceType, sourceID)
}

func (mock *mirrorRepoMock) DeleteBySourceCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	SourceType domain.SourceType
	SourceID   uuid.UUID
} {
	mock.lockDeleteBySource.RLock()
	calls := mock.calls.DeleteBySource
	mock.lockDeleteBySource.RUnlock()
	return calls
}

func (mock *mirrorRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.MirrorFilter) ([]domain.FulfillmentMirror, error) {
	if mock.ListFunc == nil {
		panic("mirrorRepoMock.ListFunc: method is nil but mirrorRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.MirrorFilter
	}{Ctx: ctx, UserID: userID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *mirrorRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Filter domain.MirrorFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
