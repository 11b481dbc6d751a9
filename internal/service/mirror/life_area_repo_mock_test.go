package mirror

import (
	"context"
	"sync"

	"github.com/evergrove/fulfillment-backend/internal/domain"
)

var _ lifeAreaRepo = &lifeAreaRepoMock{}

type lifeAreaRepoMock struct {
	GetBySlugFunc func(ctx context.Context, slug string) (*domain.LifeArea, error)

	calls struct {
		GetBySlug []struct {
			Ctx  context.Context
			Slug string
		}
	}
	lockGetBySlug sync.RWMutex
}

func (mock *lifeAreaRepoMock) GetBySlug(ctx context.Context, slug string) (*domain.LifeArea, error) {
	if mock.GetBySlugFunc == nil {
		panic("lifeAreaRepoMock.GetBySlugFunc: method is nil but lifeAreaRepo.GetBySlug was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{Ctx: ctx, Slug: slug}
	mock.lockGetBySlug.Lock()
	mock.calls.GetBySlug = append(mock.calls.GetBySlug, callInfo)
	mock.lockGetBySlug.Unlock()
	return mock.GetBySlugFunc(ctx, slug)
}

func (mock *lifeAreaRepoMock) GetBySlugCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockGetBySlug.RLock()
	calls := mock.calls.GetBySlug
	mock.lockGetBySlug.RUnlock()
	return calls
}
