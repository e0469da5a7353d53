package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
)

// fakeDB satisfies DB for repository tests that only need QueryRow.
type fakeDB struct {
	queryRow func(sql string, args ...any) Row
}

type fakeRow struct {
	scan func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error { return r.scan(dest...) }

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return f.queryRow(sql, args...)
}

func (f *fakeDB) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDB) Begin(ctx context.Context) (Tx, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDB) Close() {}

func TestCartLoadMissingRow(t *testing.T) {
	db := &fakeDB{queryRow: func(sql string, args ...any) Row {
		return fakeRow{scan: func(dest ...any) error { return pgx.ErrNoRows }}
	}}

	data, err := NewCartRepository(db).Load(context.Background(), "cart-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data != nil {
		t.Fatalf("expected nil snapshot for a fresh cart, got %q", data)
	}
}

func TestCartLoadReturnsSnapshot(t *testing.T) {
	stored := []byte(`{"lines":[{"item_id":1,"quantity":2}]}`)
	db := &fakeDB{queryRow: func(sql string, args ...any) Row {
		return fakeRow{scan: func(dest ...any) error {
			*dest[0].(*[]byte) = stored
			return nil
		}}
	}}

	data, err := NewCartRepository(db).Load(context.Background(), "cart-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != string(stored) {
		t.Fatalf("expected stored snapshot back, got %q", data)
	}
}

// A query failure is not a fresh cart. If it were, a transient outage during
// load-modify-save would overwrite the customer's stored lines.
func TestCartLoadQueryFailurePropagates(t *testing.T) {
	dbErr := errors.New("connection refused")
	db := &fakeDB{queryRow: func(sql string, args ...any) Row {
		return fakeRow{scan: func(dest ...any) error { return dbErr }}
	}}

	data, err := NewCartRepository(db).Load(context.Background(), "cart-1")
	if err == nil {
		t.Fatal("expected the query error to propagate")
	}
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped query error, got %v", err)
	}
	if data != nil {
		t.Fatalf("expected no snapshot on failure, got %q", data)
	}
}
