package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

type nopDriver struct{}

func (d nopDriver) Open(name string) (driver.Conn, error) {
	if name == "fail-ping" {
		return failConn{}, nil
	}
	return nopConn{}, nil
}

type nopConn struct{}

func (nopConn) Prepare(query string) (driver.Stmt, error) { return nil, errors.New("not supported") }
func (nopConn) Close() error                              { return nil }
func (nopConn) Begin() (driver.Tx, error)                 { return nil, errors.New("not supported") }
func (nopConn) Ping(ctx context.Context) error            { return nil }

type failConn struct{ nopConn }

func (failConn) Ping(ctx context.Context) error { return errors.New("refused") }

var registerTestDriverOnce sync.Once

func withTestDriver(t *testing.T) {
	t.Helper()
	registerTestDriverOnce.Do(func() {
		sql.Register("dbtest", nopDriver{})
	})
	prev := openDB
	openDB = func(name, dsn string) (*sql.DB, error) {
		return sql.Open("dbtest", dsn)
	}
	t.Cleanup(func() { openDB = prev })
}

func TestConnectAppliesOptions(t *testing.T) {
	withTestDriver(t)

	db, err := Connect(context.Background(), "ok", Options{MaxOpenConns: 3})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer db.Close()
	if got := db.Stats().MaxOpenConnections; got != 3 {
		t.Fatalf("expected max open 3, got %d", got)
	}
}

func TestConnectRejectsEmptyURL(t *testing.T) {
	if _, err := Connect(context.Background(), "  ", DefaultServerOptions()); err == nil {
		t.Fatal("expected error for empty url")
	}
}

func TestConnectPingFailure(t *testing.T) {
	withTestDriver(t)

	_, err := Connect(context.Background(), "fail-ping", DefaultServerOptions())
	if err == nil || !strings.Contains(err.Error(), "ping database") {
		t.Fatalf("expected ping error, got %v", err)
	}
}

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "7")
	t.Setenv("DB_PING_TIMEOUT", "2s")
	t.Setenv("DB_MAX_IDLE_CONNS", "bad")

	opts := OptionsFromEnv(DefaultServerOptions())
	if opts.MaxOpenConns != 7 {
		t.Fatalf("unexpected max open: %d", opts.MaxOpenConns)
	}
	if opts.PingTimeout != 2*time.Second {
		t.Fatalf("unexpected ping timeout: %s", opts.PingTimeout)
	}
	if opts.MaxIdleConns != DefaultServerOptions().MaxIdleConns {
		t.Fatalf("expected invalid idle conns to keep default, got %d", opts.MaxIdleConns)
	}
}
