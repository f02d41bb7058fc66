package services

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Scripted sql/driver fake: tests declare the statements they expect, in
// order, and the rows or results each returns. Args are only checked when a
// step lists them, since timestamps make exact matching impossible for most
// writes.

type scriptStep struct {
	query   *regexp.Regexp
	exec    bool
	args    []driver.Value
	columns []string
	rows    [][]driver.Value
	err     error
	result  driver.Result
}

type sqlScript struct {
	mu    sync.Mutex
	steps []*scriptStep
}

func (s *sqlScript) next(exec bool, query string, args []driver.NamedValue) (*scriptStep, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.steps) == 0 {
		return nil, fmt.Errorf("unexpected statement: %s", query)
	}
	step := s.steps[0]
	if step.exec != exec {
		return nil, fmt.Errorf("unexpected statement kind for: %s", query)
	}
	if !step.query.MatchString(query) {
		return nil, fmt.Errorf("statement %q does not match %q", query, step.query)
	}
	if step.args != nil {
		if len(step.args) != len(args) {
			return nil, fmt.Errorf("arg count for %s: got %d want %d", query, len(args), len(step.args))
		}
		for i := range args {
			if args[i].Value != step.args[i] {
				return nil, fmt.Errorf("arg %d for %s: got %v want %v", i, query, args[i].Value, step.args[i])
			}
		}
	}
	s.steps = s.steps[1:]
	return step, nil
}

func (s *sqlScript) verifyComplete() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.steps) != 0 {
		return fmt.Errorf("unmet expectations: %d", len(s.steps))
	}
	return nil
}

type scriptDriver struct {
	script *sqlScript
}

func (d *scriptDriver) Open(string) (driver.Conn, error) {
	return &scriptConn{script: d.script}, nil
}

type scriptConn struct {
	script *sqlScript
}

func (c *scriptConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}

func (c *scriptConn) Close() error { return nil }

// Begin satisfies GORM's default per-write transaction; commit and rollback
// are invisible to the script.
func (c *scriptConn) Begin() (driver.Tx, error) { return scriptTx{}, nil }

type scriptTx struct{}

func (scriptTx) Commit() error   { return nil }
func (scriptTx) Rollback() error { return nil }

func (c *scriptConn) QueryContext(_ context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	step, err := c.script.next(false, query, args)
	if err != nil {
		return nil, err
	}
	if step.err != nil {
		return nil, step.err
	}
	return &scriptRows{columns: step.columns, rows: step.rows}, nil
}

func (c *scriptConn) Query(query string, args []driver.Value) (driver.Rows, error) {
	named := make([]driver.NamedValue, len(args))
	for i, v := range args {
		named[i] = driver.NamedValue{Ordinal: i + 1, Value: v}
	}
	return c.QueryContext(context.Background(), query, named)
}

func (c *scriptConn) ExecContext(_ context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	step, err := c.script.next(true, query, args)
	if err != nil {
		return nil, err
	}
	if step.err != nil {
		return nil, step.err
	}
	if step.result != nil {
		return step.result, nil
	}
	return driver.RowsAffected(0), nil
}

func (c *scriptConn) Exec(query string, args []driver.Value) (driver.Result, error) {
	named := make([]driver.NamedValue, len(args))
	for i, v := range args {
		named[i] = driver.NamedValue{Ordinal: i + 1, Value: v}
	}
	return c.ExecContext(context.Background(), query, named)
}

type scriptRows struct {
	columns []string
	rows    [][]driver.Value
	idx     int
}

func (r *scriptRows) Columns() []string { return r.columns }

func (r *scriptRows) Close() error { return nil }

func (r *scriptRows) Next(dest []driver.Value) error {
	if r.idx >= len(r.rows) {
		return io.EOF
	}
	row := r.rows[r.idx]
	for i := range dest {
		dest[i] = nil
	}
	for i := range row {
		dest[i] = row[i]
	}
	r.idx++
	return nil
}

func newScriptedDB(t *testing.T, steps []*scriptStep) (*gorm.DB, *sqlScript, func()) {
	t.Helper()
	script := &sqlScript{steps: steps}
	driverName := fmt.Sprintf("script_%d", time.Now().UnixNano())
	sql.Register(driverName, &scriptDriver{script: script})

	sqlDB, err := sql.Open(driverName, "")
	if err != nil {
		t.Fatalf("failed to open sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to create gorm db: %v", err)
	}

	cleanup := func() {
		_ = sqlDB.Close()
	}
	return gormDB, script, cleanup
}
