package database_test

import (
	"context"
	"testing"

	"github.com/Shivanand-hulikatti/webinar-booking/internal/database"
	"github.com/Shivanand-hulikatti/webinar-booking/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestMigrate_IsIdempotent(t *testing.T) {
	req := require.New(t)
	pool := testutil.NewTestPool(t)
	ctx := context.Background()

	var count int
	req.NoError(pool.QueryRow(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&count))
	req.GreaterOrEqual(count, 1)

	req.NoError(database.Migrate(ctx, pool))

	var again int
	req.NoError(pool.QueryRow(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&again))
	req.Equal(count, again)
}
