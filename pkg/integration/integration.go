package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/QuangTung97/promo-pricing/config"
	"github.com/QuangTung97/promo-pricing/pkg/migration"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	// migrate drivers, only the test binaries and cmd/migrate need them
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// TestCase is shared by every integration test of a package
type TestCase struct {
	DB   *sqlx.DB
	Conf config.Config
}

var (
	setupOnce sync.Once
	shared    *TestCase
)

// NewTestCase connects to the database of config.test.yml, migrations run once per test binary
func NewTestCase() *TestCase {
	setupOnce.Do(func() {
		rootDir, err := moduleRoot()
		if err != nil {
			panic(err)
		}

		conf := config.LoadTestConfig(rootDir)
		migration.MigrateUpForTesting(rootDir, conf.MySQL.DSN())

		shared = &TestCase{
			DB:   conf.MySQL.MustConnect(zap.NewNop()),
			Conf: conf,
		}
	})
	return shared
}

// Truncate empties the tables on a single connection with foreign key checks off
func (tc *TestCase) Truncate(tables ...string) {
	ctx := context.Background()

	conn, err := tc.DB.Connx(ctx)
	if err != nil {
		panic(err)
	}
	defer func() { _ = conn.Close() }()

	sqlx.MustExecContext(ctx, conn, "SET FOREIGN_KEY_CHECKS = 0")
	for _, table := range tables {
		sqlx.MustExecContext(ctx, conn, fmt.Sprintf("TRUNCATE TABLE `%s`", table))
	}
	sqlx.MustExecContext(ctx, conn, "SET FOREIGN_KEY_CHECKS = 1")
}

// TruncateAll empties every table except the migration bookkeeping
func (tc *TestCase) TruncateAll() {
	query := `
SELECT table_name FROM information_schema.tables
WHERE table_schema = DATABASE() AND table_name <> 'schema_migrations'
`
	var tables []string
	if err := tc.DB.Select(&tables, query); err != nil {
		panic(err)
	}
	tc.Truncate(tables...)
}

// moduleRoot walks up from the working directory to the directory holding go.mod
func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("integration: go.mod not found above %s", dir)
		}
		dir = parent
	}
}
