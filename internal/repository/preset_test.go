package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestNewPresetRepository(t *testing.T) {
	repo := NewPresetRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil PresetRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestSentinelErrors(t *testing.T) {
	if ErrPresetNotFound.Error() != "preset not found" {
		t.Fatalf("unexpected error message: %s", ErrPresetNotFound.Error())
	}
	if ErrDuplicatePreset.Error() != "preset name already exists" {
		t.Fatalf("unexpected error message: %s", ErrDuplicatePreset.Error())
	}
}

func TestIsDuplicateEntryError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "sentinel", err: ErrPresetNotFound, want: false},
		{name: "duplicate", err: &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, want: true},
		{name: "wrapped duplicate", err: fmt.Errorf("insert: %w", &mysql.MySQLError{Number: 1062}), want: true},
		{name: "other mysql error", err: &mysql.MySQLError{Number: 1146, Message: "Table doesn't exist"}, want: false},
		{name: "plain error", err: errors.New("Duplicate entry"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDuplicateEntryError(tt.err); got != tt.want {
				t.Errorf("isDuplicateEntryError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestNewDB_InvalidDSN(t *testing.T) {
	if _, err := NewDB("not a dsn"); err == nil {
		t.Fatal("expected error for malformed dsn")
	}
}
