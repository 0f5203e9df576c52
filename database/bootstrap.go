package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"plantlog/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	// Run the position backfill BEFORE AutoMigrate: older databases ordered
	// history by (start, event_id) and have no position column to migrate.
	if err := migrateEventsAddPosition(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Plant{},
		&entities.StageEvent{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// migrateEventsAddPosition adds stage_events.position and backfills it so
// that 0 is the newest event per plant, matching the most-recent-first
// history invariant.
func migrateEventsAddPosition(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='stage_events'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	type colInfo struct {
		Cid       int
		Name      string
		Type      string
		NotNull   int
		DfltValue sql.NullString
		Pk        int
	}
	var cols []colInfo
	if err := db.Raw(`PRAGMA table_info(stage_events)`).Scan(&cols).Error; err != nil {
		return fmt.Errorf("table_info: %w", err)
	}
	for _, c := range cols {
		if strings.ToLower(c.Name) == "position" {
			// already good
			return nil
		}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`ALTER TABLE stage_events ADD COLUMN position INTEGER NOT NULL DEFAULT 0`).Error; err != nil {
			return err
		}
		// position = how many sibling events are strictly newer
		backfill := `
UPDATE stage_events SET position = (
    SELECT COUNT(*) FROM stage_events newer
    WHERE newer.plant_id = stage_events.plant_id
      AND (newer.start > stage_events.start
           OR (newer.start = stage_events.start AND newer.event_id > stage_events.event_id))
);`
		return tx.Exec(backfill).Error
	})
}
