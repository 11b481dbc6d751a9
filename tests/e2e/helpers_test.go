//go:build e2e

package e2e_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/evergrove/fulfillment-backend/internal/adapter/postgres"
	auditrepo "github.com/evergrove/fulfillment-backend/internal/adapter/postgres/audit"
	contribrepo "github.com/evergrove/fulfillment-backend/internal/adapter/postgres/contribution"
	"github.com/evergrove/fulfillment-backend/internal/adapter/postgres/lifearea"
	mirrorrepo "github.com/evergrove/fulfillment-backend/internal/adapter/postgres/mirror"
	"github.com/evergrove/fulfillment-backend/internal/adapter/postgres/testhelper"
	"github.com/evergrove/fulfillment-backend/internal/domain"
	contribsvc "github.com/evergrove/fulfillment-backend/internal/service/contribution"
	mirrorsvc "github.com/evergrove/fulfillment-backend/internal/service/mirror"
	"github.com/evergrove/fulfillment-backend/pkg/ctxutil"
)

// testEnv wires the full service stack against a migrated test database,
// the same way cmd binaries wire it in production.
type testEnv struct {
	Pool          *pgxpool.Pool
	Areas         map[string]domain.LifeArea
	LifeAreas     *lifearea.Repo
	Mirrors       *mirrorrepo.Repo
	Contributions *contribrepo.Repo
	Audit         *auditrepo.Repo
	Engine        *mirrorsvc.Service
	Service       *contribsvc.Service
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	areas := testhelper.SeedLifeAreas(t, pool)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	lifeAreas := lifearea.New(pool)
	mirrors := mirrorrepo.New(pool)
	contributions := contribrepo.New(pool)
	audit := auditrepo.New(pool)

	engine := mirrorsvc.NewService(logger, lifeAreas, mirrors, contributions, audit)
	service := contribsvc.NewService(logger, contributions, engine, postgres.NewTxManager(pool))

	return &testEnv{
		Pool:          pool,
		Areas:         areas,
		LifeAreas:     lifeAreas,
		Mirrors:       mirrors,
		Contributions: contributions,
		Audit:         audit,
		Engine:        engine,
		Service:       service,
	}
}

// newUserCtx seeds a user and returns a context authenticated as them.
func newUserCtx(t *testing.T, env *testEnv) (context.Context, domain.User) {
	t.Helper()
	user := testhelper.SeedUser(t, env.Pool)
	return ctxutil.WithUserID(context.Background(), user.ID), user
}

// mirrorSlugs maps the user's mirrors for one contribution to life-area slugs.
func mirrorSlugs(t *testing.T, env *testEnv, userID, contributionID uuid.UUID) []string {
	t.Helper()

	mirrors, err := env.Mirrors.GetBySource(context.Background(), userID, domain.SourceTypeContribution, contributionID)
	require.NoError(t, err)

	idToSlug := make(map[uuid.UUID]string, len(env.Areas))
	for slug, area := range env.Areas {
		idToSlug[area.ID] = slug
	}

	slugs := make([]string, 0, len(mirrors))
	for _, m := range mirrors {
		slugs = append(slugs, idToSlug[m.LifeAreaID])
	}
	return slugs
}

func ptrStr(s string) *string { return &s }

func newDoingInput(title string) contribsvc.CreateContributionInput {
	return contribsvc.CreateContributionInput{
		Category: domain.CategoryDoing,
		Title:    title,
	}
}
