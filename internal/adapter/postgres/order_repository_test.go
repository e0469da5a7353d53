package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestGenerateOrderNumber(t *testing.T) {
	db := &fakeDB{queryRow: func(sql string, args ...any) Row {
		return fakeRow{scan: func(dest ...any) error {
			*dest[0].(*int) = 7
			return nil
		}}
	}}

	number, err := NewOrderRepository(db).GenerateOrderNumber(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := fmt.Sprintf("ORD_%s_007", time.Now().UTC().Format("20060102"))
	if number != want {
		t.Fatalf("expected %s, got %s", want, number)
	}
}

func TestGenerateOrderNumberCounterFailure(t *testing.T) {
	dbErr := errors.New("connection refused")
	db := &fakeDB{queryRow: func(sql string, args ...any) Row {
		return fakeRow{scan: func(dest ...any) error { return dbErr }}
	}}

	_, err := NewOrderRepository(db).GenerateOrderNumber(context.Background())
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped counter error, got %v", err)
	}
}
