package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"weekendly/internal/model"
)

// SaveCurrent replaces the working-plan snapshot. The stored envelope
// round-trips losslessly: items and active days are kept as JSON.
func (s *SQLiteStore) SaveCurrent(ctx context.Context, snap model.PlanSnapshot) error {
	items, days, err := marshalSnapshot(snap)
	if err != nil {
		return err
	}

	updated := snap.LastUpdated
	if updated == 0 {
		updated = time.Now().UnixMilli()
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO current_plan (id, items, theme, active_days, updated_at)
		VALUES (1, ?, ?, ?, ?)`,
		items, string(snap.Theme), days, updated,
	)
	if err != nil {
		return fmt.Errorf("saving current plan: %w", err)
	}

	return nil
}

// LoadCurrent retrieves the working-plan snapshot. A fresh database
// yields an empty snapshot rather than an error.
func (s *SQLiteStore) LoadCurrent(ctx context.Context) (model.PlanSnapshot, error) {
	row := s.db.QueryRowxContext(ctx,
		"SELECT items, theme, active_days, updated_at FROM current_plan WHERE id = 1",
	)

	var (
		items   string
		theme   string
		days    string
		updated int64
	)
	if err := row.Scan(&items, &theme, &days, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.PlanSnapshot{
				ScheduleItems: []model.ScheduleItem{},
				ActiveDays:    []model.Day{},
			}, nil
		}
		return model.PlanSnapshot{}, fmt.Errorf("loading current plan: %w", err)
	}

	snap, err := unmarshalSnapshot(items, theme, days)
	if err != nil {
		return model.PlanSnapshot{}, err
	}
	snap.LastUpdated = updated
	return snap, nil
}

// SavePlan stores a named copy of the snapshot in the plan library and
// returns the stored record.
func (s *SQLiteStore) SavePlan(ctx context.Context, name string, snap model.PlanSnapshot) (model.SavedPlan, error) {
	items, days, err := marshalSnapshot(snap)
	if err != nil {
		return model.SavedPlan{}, err
	}

	now := time.Now().UTC()
	plan := model.SavedPlan{
		ID:        uuid.New().String(),
		Name:      name,
		Snapshot:  snap,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO saved_plans (id, name, items, theme, active_days, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		plan.ID, plan.Name, items, string(snap.Theme), days, now, now,
	)
	if err != nil {
		return model.SavedPlan{}, fmt.Errorf("saving plan %q: %w", name, err)
	}

	return plan, nil
}

// GetPlans retrieves the plan library ordered by most recently updated.
func (s *SQLiteStore) GetPlans(ctx context.Context) ([]model.SavedPlan, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT id, name, items, theme, active_days, created_at, updated_at FROM saved_plans ORDER BY updated_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("querying saved plans: %w", err)
	}
	defer rows.Close()

	var plans []model.SavedPlan
	for rows.Next() {
		plan, err := scanSavedPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	return plans, rows.Err()
}

// GetPlanByID retrieves a single saved plan.
func (s *SQLiteStore) GetPlanByID(ctx context.Context, id string) (*model.SavedPlan, error) {
	row := s.db.QueryRowxContext(ctx,
		"SELECT id, name, items, theme, active_days, created_at, updated_at FROM saved_plans WHERE id = ?",
		id,
	)

	plan, err := scanSavedPlanRow(row)
	if err != nil {
		return nil, fmt.Errorf("getting plan %s: %w", id, err)
	}

	return &plan, nil
}

// DeletePlan removes a saved plan. Deleting an unknown id is a no-op.
func (s *SQLiteStore) DeletePlan(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM saved_plans WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting plan %s: %w", id, err)
	}
	return nil
}

// RenamePlan updates a saved plan's display name.
func (s *SQLiteStore) RenamePlan(ctx context.Context, id, name string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE saved_plans SET name = ?, updated_at = ? WHERE id = ?",
		name, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("renaming plan %s: %w", id, err)
	}
	return nil
}

// marshalSnapshot encodes the items and active days of a snapshot as
// JSON for storage.
func marshalSnapshot(snap model.PlanSnapshot) (items, days string, err error) {
	scheduleItems := snap.ScheduleItems
	if scheduleItems == nil {
		scheduleItems = []model.ScheduleItem{}
	}
	itemsJSON, err := json.Marshal(scheduleItems)
	if err != nil {
		return "", "", fmt.Errorf("marshaling schedule items: %w", err)
	}

	activeDays := snap.ActiveDays
	if activeDays == nil {
		activeDays = []model.Day{}
	}
	daysJSON, err := json.Marshal(activeDays)
	if err != nil {
		return "", "", fmt.Errorf("marshaling active days: %w", err)
	}

	return string(itemsJSON), string(daysJSON), nil
}

// unmarshalSnapshot decodes the stored JSON columns back into a snapshot.
func unmarshalSnapshot(items, theme, days string) (model.PlanSnapshot, error) {
	snap := model.PlanSnapshot{Theme: model.Theme(theme)}

	if err := json.Unmarshal([]byte(items), &snap.ScheduleItems); err != nil {
		return model.PlanSnapshot{}, fmt.Errorf("unmarshaling schedule items: %w", err)
	}
	if err := json.Unmarshal([]byte(days), &snap.ActiveDays); err != nil {
		return model.PlanSnapshot{}, fmt.Errorf("unmarshaling active days: %w", err)
	}

	if snap.ScheduleItems == nil {
		snap.ScheduleItems = []model.ScheduleItem{}
	}
	if snap.ActiveDays == nil {
		snap.ActiveDays = []model.Day{}
	}

	return snap, nil
}

// scanSavedPlan scans a saved plan row from a sqlx.Rows result set.
func scanSavedPlan(rows *sqlx.Rows) (model.SavedPlan, error) {
	var (
		plan      model.SavedPlan
		items     string
		theme     string
		days      string
		createdAt time.Time
		updatedAt time.Time
	)

	err := rows.Scan(&plan.ID, &plan.Name, &items, &theme, &days, &createdAt, &updatedAt)
	if err != nil {
		return model.SavedPlan{}, fmt.Errorf("scanning saved plan row: %w", err)
	}

	snap, err := unmarshalSnapshot(items, theme, days)
	if err != nil {
		return model.SavedPlan{}, err
	}

	plan.Snapshot = snap
	plan.CreatedAt = createdAt
	plan.UpdatedAt = updatedAt
	return plan, nil
}

// scanSavedPlanRow scans a single saved plan from a sqlx.Row.
func scanSavedPlanRow(row *sqlx.Row) (model.SavedPlan, error) {
	var (
		plan      model.SavedPlan
		items     string
		theme     string
		days      string
		createdAt time.Time
		updatedAt time.Time
	)

	err := row.Scan(&plan.ID, &plan.Name, &items, &theme, &days, &createdAt, &updatedAt)
	if err != nil {
		return model.SavedPlan{}, fmt.Errorf("scanning saved plan row: %w", err)
	}

	snap, err := unmarshalSnapshot(items, theme, days)
	if err != nil {
		return model.SavedPlan{}, err
	}

	plan.Snapshot = snap
	plan.CreatedAt = createdAt
	plan.UpdatedAt = updatedAt
	return plan, nil
}
