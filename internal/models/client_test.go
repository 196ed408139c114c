package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClientPatchApplyIsIdempotent(t *testing.T) {
	email := "old@example.com"
	base := Client{
		ID:         5,
		FullName:   "Ivan Petrov",
		Phone:      "+77010000001",
		Email:      &email,
		ClientType: "buyer",
		CreatedAt:  time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	}

	name := "Renamed"
	patch := ClientPatch{FullName: &name}

	once := base
	patch.Apply(&once)
	twice := once
	patch.Apply(&twice)

	assert.Equal(t, once, twice)
	assert.Equal(t, "Renamed", twice.FullName)
	assert.Equal(t, "+77010000001", twice.Phone)
}

func TestDealPatchApplyIsIdempotent(t *testing.T) {
	status := "active"
	base := Deal{
		ID:       7,
		DealType: "sale",
		DealDate: NewDate(2026, time.March, 14),
		Amount:   "100000",
		Status:   &status,
	}

	amount := Amount("120000")
	patch := DealPatch{Amount: &amount}

	once := base
	patch.Apply(&once)
	twice := once
	patch.Apply(&twice)

	assert.Equal(t, once, twice)
	assert.Equal(t, Amount("120000"), twice.Amount)
}
