package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
)

// A minimal database/sql driver for tests: it records every exec and
// replays canned rows in order, so the SQL the repositories emit can
// be checked without a MySQL server.

type capturedExec struct {
	query string
	args  []driver.NamedValue
}

type stubRows struct {
	cols []string
	vals [][]driver.Value
	i    int
}

func (r *stubRows) Columns() []string { return r.cols }
func (r *stubRows) Close() error { return nil }

func (r *stubRows) Next(dest []driver.Value) error {
	if r.i >= len(r.vals) {
		return io.EOF
	}
	copy(dest, r.vals[r.i])
	r.i++
	return nil
}

type stubResult struct{ lastID int64 }

func (r stubResult) LastInsertId() (int64, error) { return r.lastID, nil }
func (r stubResult) RowsAffected() (int64, error) { return 1, nil }

type stubConn struct {
	execs  []capturedExec
	rows   []*stubRows
	lastID int64
}

func (c *stubConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}
func (c *stubConn) Close() error { return nil }
func (c *stubConn) Begin() (driver.Tx, error) { return nil, errors.New("transactions not supported") }

func (c *stubConn) ExecContext(_ context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	c.execs = append(c.execs, capturedExec{query: query, args: args})
	return stubResult{lastID: c.lastID}, nil
}

func (c *stubConn) QueryContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Rows, error) {
	if len(c.rows) == 0 {
		return &stubRows{}, nil
	}
	r := c.rows[0]
	c.rows = c.rows[1:]
	return r, nil
}

type stubDriver struct{}

func (stubDriver) Open(string) (driver.Conn, error) { return nil, errors.New("open via sql.OpenDB") }

type stubConnector struct{ conn *stubConn }

func (s stubConnector) Connect(context.Context) (driver.Conn, error) { return s.conn, nil }
func (s stubConnector) Driver() driver.Driver { return stubDriver{} }

func stubDB(conn *stubConn) *sql.DB {
	db := sql.OpenDB(stubConnector{conn: conn})
	db.SetMaxOpenConns(1)
	return db
}
