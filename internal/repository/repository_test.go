package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	wrapped := fmt.Errorf("userRepo.Create: %w", unique)

	if !IsUniqueViolation(wrapped, "users_email_key") {
		t.Error("wrapped unique violation not detected")
	}
	if !IsUniqueViolation(wrapped, "") {
		t.Error("empty constraint name should match any unique violation")
	}
	if IsUniqueViolation(wrapped, "profiles_group_user_key") {
		t.Error("matched a different constraint name")
	}
	if IsUniqueViolation(errors.New("plain error"), "users_email_key") {
		t.Error("matched a non-pg error")
	}
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "messages_chat_id_fkey"}
	if IsUniqueViolation(fk, "") {
		t.Error("matched a foreign key violation")
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "messages_chat_id_fkey"}
	if !IsForeignKeyViolation(fmt.Errorf("messageRepo.Create: %w", fk)) {
		t.Error("wrapped foreign key violation not detected")
	}
	if IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}) {
		t.Error("matched a unique violation")
	}
	if IsForeignKeyViolation(errors.New("plain error")) {
		t.Error("matched a non-pg error")
	}
}
