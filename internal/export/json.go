package export

import (
	"encoding/json"
	"fmt"
	"io"

	"weekendly/internal/model"
)

// WriteJSON writes the snapshot as the indented JSON interchange
// envelope consumed by other tools.
func WriteJSON(w io.Writer, snap model.PlanSnapshot) error {
	if snap.ScheduleItems == nil {
		snap.ScheduleItems = []model.ScheduleItem{}
	}
	if snap.ActiveDays == nil {
		snap.ActiveDays = []model.Day{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encoding plan snapshot: %w", err)
	}
	return nil
}
