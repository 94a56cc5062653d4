package controllers

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"
)

func TestIsSlotTaken(t *testing.T) {
	if !isSlotTaken(gorm.ErrDuplicatedKey) {
		t.Fatal("duplicate key error must count as a taken slot")
	}
	if !isSlotTaken(fmt.Errorf("insert appointment: %w", gorm.ErrDuplicatedKey)) {
		t.Fatal("wrapped duplicate key error must count as a taken slot")
	}
	if isSlotTaken(errors.New("connection reset")) {
		t.Fatal("other insert failures must not be reported as conflicts")
	}
	if isSlotTaken(nil) {
		t.Fatal("nil error must not be reported as a conflict")
	}
}
