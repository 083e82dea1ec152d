package storage

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"time"

	"github.com/go-sql-driver/mysql"

	"wavesplit/internal/domain"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,63}$`)

// MySQLStorage records wave assignments in a MySQL table, one row per suite
type MySQLStorage struct {
	config *mysql.Config
	table  string
}

// NewMySQLStorage validates dsn and table without connecting
func NewMySQLStorage(dsn, table string) (*MySQLStorage, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid mysql dsn: %w", err)
	}
	if cfg.DBName == "" {
		return nil, fmt.Errorf("mysql dsn must name a database")
	}
	if !isValidTableName(table) {
		return nil, fmt.Errorf("invalid table name: %s", table)
	}
	cfg.ParseTime = true

	return &MySQLStorage{config: cfg, table: table}, nil
}

// Save inserts every suite of the plan under the plan's run id
func (s *MySQLStorage) Save(ctx context.Context, plan *domain.Plan) error {
	connector, err := mysql.NewConnector(s.config)
	if err != nil {
		return fmt.Errorf("failed to configure mysql connector: %w", err)
	}
	db := sql.OpenDB(connector)
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database server: %w", err)
	}

	if _, err := db.ExecContext(ctx, createTableSQL(s.table)); err != nil {
		return fmt.Errorf("failed to create table %s: %w", s.table, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, insertSQL(s.table))
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	createdAt := time.Now().UTC()
	for i, suite := range plan.Suites {
		if _, err := stmt.ExecContext(ctx,
			plan.Meta.RunID, i, suite.Name, suite.Tests, suite.Runtime, suite.Wave, suite.Source, createdAt,
		); err != nil {
			return fmt.Errorf("insert suite %s: %w", suite.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// isValidTableName only allows plain identifiers, since the table name is
// interpolated into DDL.
func isValidTableName(name string) bool {
	return tableNamePattern.MatchString(name)
}

func createTableSQL(table string) string {
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS `%s` ("+
		"`run_id` VARCHAR(64) NOT NULL, "+
		"`position` INT NOT NULL, "+
		"`suite` VARCHAR(512) NOT NULL, "+
		"`tests` VARCHAR(64) NOT NULL, "+
		"`runtime` DOUBLE NOT NULL, "+
		"`wave` VARCHAR(32) NOT NULL, "+
		"`source` VARCHAR(1024) NOT NULL, "+
		"`created_at` DATETIME NOT NULL, "+
		"PRIMARY KEY (`run_id`, `position`))", table)
}

func insertSQL(table string) string {
	return fmt.Sprintf("INSERT INTO `%s` "+
		"(`run_id`, `position`, `suite`, `tests`, `runtime`, `wave`, `source`, `created_at`) "+
		"VALUES (?, ?, ?, ?, ?, ?, ?, ?)", table)
}
