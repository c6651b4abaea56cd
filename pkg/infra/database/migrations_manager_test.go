package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func noop(*gorm.DB) error { return nil }

func TestRegisterMigration_OrderAndPending(t *testing.T) {
	RegisterMigration(Migration{ID: "99990002_b", Name: "b", Up: noop})
	RegisterMigration(Migration{ID: "99990001_a", Name: "a", Up: noop})

	var ids []string
	for _, m := range registered() {
		if m.ID >= "9999" {
			ids = append(ids, m.ID)
		}
	}
	assert.Equal(t, []string{"99990001_a", "99990002_b"}, ids)

	left := pending(registered(), map[string]struct{}{"99990001_a": {}})
	var leftIDs []string
	for _, m := range left {
		if m.ID >= "9999" {
			leftIDs = append(leftIDs, m.ID)
		}
	}
	assert.Equal(t, []string{"99990002_b"}, leftIDs)
}

func TestRegisterMigration_DuplicatePanics(t *testing.T) {
	RegisterMigration(Migration{ID: "99990003_dup", Name: "dup", Up: noop})
	assert.Panics(t, func() {
		RegisterMigration(Migration{ID: "99990003_dup", Name: "dup", Up: noop})
	})
}
