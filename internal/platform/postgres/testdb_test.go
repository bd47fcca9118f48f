package postgres

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/phrazzld/todo-api/migrations"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

// testDBEnvVar names the environment variable carrying the DSN of a
// disposable test database. Store integration tests are skipped when it is
// unset.
const testDBEnvVar = "TODO_TEST_DATABASE_URL"

// openTestDB connects to the test database, applies migrations, and wipes
// the tables so each test starts from a clean slate.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv(testDBEnvVar)
	if dsn == "" {
		t.Skipf("skipping database test: %s not set", testDBEnvVar)
	}

	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	goose.SetBaseFS(migrations.Files)
	require.NoError(t, goose.SetDialect("pgx"))
	require.NoError(t, goose.UpContext(context.Background(), db, "."))

	_, err = db.ExecContext(context.Background(), "TRUNCATE todos, users RESTART IDENTITY CASCADE")
	require.NoError(t, err)

	return db
}
