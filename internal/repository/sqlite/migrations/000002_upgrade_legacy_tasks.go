package migrations

import (
	"database/sql"
	"fmt"
	"time"
)

func init() {
	RegisterGoMigration(2, Up_000002_upgrade_legacy_tasks, Down_000002_upgrade_legacy_tasks)
}

// Up_000002_upgrade_legacy_tasks rebuilds task tables created by older
// releases, which stored tasks(task_name, task_finished) with no row
// identifier and, in one variant, no creation timestamp. Rows are copied
// into the current schema, with time_added backfilled to the migration
// time where the column is absent. Databases already on the current
// schema pass through untouched.
func Up_000002_upgrade_legacy_tasks(tx *sql.Tx) error {
	hasID, err := tableHasColumn(tx, "tasks", "id")
	if err != nil {
		return err
	}
	hasTimeAdded, err := tableHasColumn(tx, "tasks", "time_added")
	if err != nil {
		return err
	}

	if hasID && hasTimeAdded {
		return nil
	}

	if _, err := tx.Exec(`
	CREATE TABLE tasks_upgraded (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		task_name TEXT NOT NULL,
		task_finished INTEGER NOT NULL DEFAULT 0,
		time_added TEXT NOT NULL
	)`); err != nil {
		return fmt.Errorf("failed to create upgraded tasks table: %w", err)
	}

	var copyErr error
	if hasTimeAdded {
		_, copyErr = tx.Exec(`
		INSERT INTO tasks_upgraded (task_name, task_finished, time_added)
		SELECT task_name, task_finished, time_added FROM tasks`)
	} else {
		backfill := time.Now().Format(time.RFC3339)
		_, copyErr = tx.Exec(`
		INSERT INTO tasks_upgraded (task_name, task_finished, time_added)
		SELECT task_name, task_finished, ? FROM tasks`, backfill)
	}
	if copyErr != nil {
		return fmt.Errorf("failed to copy legacy tasks: %w", copyErr)
	}

	if _, err := tx.Exec(`DROP TABLE tasks`); err != nil {
		return fmt.Errorf("failed to drop legacy tasks table: %w", err)
	}
	if _, err := tx.Exec(`ALTER TABLE tasks_upgraded RENAME TO tasks`); err != nil {
		return fmt.Errorf("failed to rename upgraded tasks table: %w", err)
	}

	return nil
}

// Down_000002_upgrade_legacy_tasks drops the synthetic columns again,
// restoring the older two-column layout.
func Down_000002_upgrade_legacy_tasks(tx *sql.Tx) error {
	if _, err := tx.Exec(`
	CREATE TABLE tasks_legacy (
		task_name TEXT NOT NULL,
		task_finished INTEGER NOT NULL
	)`); err != nil {
		return err
	}
	if _, err := tx.Exec(`
	INSERT INTO tasks_legacy (task_name, task_finished)
	SELECT task_name, task_finished FROM tasks`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DROP TABLE tasks`); err != nil {
		return err
	}
	if _, err := tx.Exec(`ALTER TABLE tasks_legacy RENAME TO tasks`); err != nil {
		return err
	}
	return nil
}

func tableHasColumn(tx *sql.Tx, table, column string) (bool, error) {
	rows, err := tx.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, fmt.Errorf("failed to inspect %s schema: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid        int
			name, typ  string
			notNull    int
			dflt       sql.NullString
			primaryKey int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &primaryKey); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}
