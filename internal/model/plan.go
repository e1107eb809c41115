package model

import "time"

// PlanSnapshot is the JSON envelope exchanged with the persistence and
// export collaborators. It must round-trip losslessly through JSON.
type PlanSnapshot struct {
	ScheduleItems []ScheduleItem `json:"scheduleItems"`
	Theme         Theme          `json:"theme"`
	ActiveDays    []Day          `json:"activeDays"`

	// LastUpdated is a unix millisecond timestamp, zero when never saved.
	LastUpdated int64 `json:"lastUpdated,omitempty"`
}

// NewPlanSnapshot builds an envelope with non-nil slices so the JSON
// output always contains arrays rather than null.
func NewPlanSnapshot(items []ScheduleItem, theme Theme, activeDays []Day) PlanSnapshot {
	if items == nil {
		items = []ScheduleItem{}
	}
	if activeDays == nil {
		activeDays = []Day{}
	}
	return PlanSnapshot{
		ScheduleItems: items,
		Theme:         theme,
		ActiveDays:    activeDays,
		LastUpdated:   time.Now().UnixMilli(),
	}
}

// SavedPlan is a named snapshot kept in the plan library.
type SavedPlan struct {
	ID        string       `json:"id" db:"id"`
	Name      string       `json:"name" db:"name"`
	Snapshot  PlanSnapshot `json:"snapshot" db:"-"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" db:"updated_at"`
}
