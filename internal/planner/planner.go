// Package planner auto-generates weekend plans from a pool of candidate
// activities. Generation is pure computation over an injected random
// source so tests can pin a seed.
package planner

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"weekendly/internal/model"
	"weekendly/internal/timeutil"
)

// Options describes one generation request.
type Options struct {
	Theme       model.Theme
	ActiveDays  []model.Day
	Preferences model.GenerationPreferences
}

// Generator produces schedule items from an activity catalog. It is
// stateless across calls; each GenerateRandomPlan consumes its own copy
// of the candidate pool.
type Generator struct {
	catalog []model.Activity
	rng     *rand.Rand
}

// New creates a generator over the given catalog. A nil rng selects a
// time-seeded source; tests pass rand.New(rand.NewSource(seed)) for
// deterministic output.
func New(catalog []model.Activity, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{
		catalog: append([]model.Activity(nil), catalog...),
		rng:     rng,
	}
}

// GenerateRandomPlan builds a full plan for the active days. Each day
// receives 1..MaxActivitiesPerDay items in distinct random slots, drawn
// without replacement from the theme- and preference-filtered pool.
// Empty pools skip slots silently; the call never fails, and empty
// inputs yield an empty plan.
func (g *Generator) GenerateRandomPlan(opts Options) []model.ScheduleItem {
	pool := g.filterPool(opts)

	maxPerDay := opts.Preferences.MaxActivitiesPerDay
	if maxPerDay <= 0 {
		maxPerDay = model.DefaultMaxActivitiesPerDay
	}

	items := []model.ScheduleItem{}
	for _, day := range model.CanonicalDays(opts.ActiveDays) {
		count := g.rng.Intn(maxPerDay) + 1
		if count > len(model.SlotOrder) {
			count = len(model.SlotOrder)
		}

		slots := append([]model.TimeSlot(nil), model.SlotOrder...)
		g.rng.Shuffle(len(slots), func(i, j int) {
			slots[i], slots[j] = slots[j], slots[i]
		})

		for _, slot := range slots[:count] {
			candidates := slotCandidates(pool, slot)
			if len(candidates) == 0 {
				// Catalog exhausted for this theme; skip the slot.
				continue
			}

			picked := candidates[g.rng.Intn(len(candidates))]

			items = append(items, model.ScheduleItem{
				ID:        generatedID(),
				Activity:  picked,
				Day:       day,
				TimeSlot:  slot,
				StartTime: g.randomStartTime(slot),
				Mood:      picked.Mood,
				Notes:     g.randomNote(picked, opts.Theme),
			})

			// Consume without replacement so one generation call never
			// repeats an activity across slots or days.
			pool = removeActivity(pool, picked.ID)
		}
	}

	return items
}

// ThemeSuggestions returns up to n randomly ordered activities eligible
// for the theme, for browse-time inspiration.
func (g *Generator) ThemeSuggestions(theme model.Theme, n int) []model.Activity {
	var eligible []model.Activity
	for _, a := range g.catalog {
		if a.HasTheme(theme) {
			eligible = append(eligible, a)
		}
	}

	g.rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})

	if n < len(eligible) {
		eligible = eligible[:n]
	}
	return eligible
}

// filterPool applies the theme, category, and indoor/outdoor filters.
// The indoor filter only kicks in when exactly one preference is set;
// a conflicting or absent preference imposes no restriction.
func (g *Generator) filterPool(opts Options) []model.Activity {
	avoid := make(map[model.Category]bool, len(opts.Preferences.AvoidCategories))
	for _, c := range opts.Preferences.AvoidCategories {
		avoid[c] = true
	}

	indoorFilter := opts.Preferences.PreferIndoor != opts.Preferences.PreferOutdoor

	var pool []model.Activity
	for _, a := range g.catalog {
		if !a.HasTheme(opts.Theme) || avoid[a.Category] {
			continue
		}
		if indoorFilter && a.IsIndoor != opts.Preferences.PreferIndoor {
			continue
		}
		pool = append(pool, a)
	}
	return pool
}

// slotCandidates narrows the pool by slot affinity, falling back to the
// whole pool when the affinity filter empties it: a slot is never
// starved solely by mood mismatch.
func slotCandidates(pool []model.Activity, slot model.TimeSlot) []model.Activity {
	var suited []model.Activity
	for _, a := range pool {
		if slotSuits(a, slot) {
			suited = append(suited, a)
		}
	}
	if len(suited) == 0 {
		return pool
	}
	return suited
}

// slotSuits encodes the mood/category affinity heuristics: mornings lean
// calm and nourishing, afternoons active and social, evenings wind down.
func slotSuits(a model.Activity, slot model.TimeSlot) bool {
	switch slot {
	case model.SlotMorning:
		return a.Mood == model.MoodRelaxed ||
			a.Category == model.CategoryWellness ||
			a.Category == model.CategoryFood
	case model.SlotAfternoon:
		return a.Mood == model.MoodEnergized ||
			a.Category == model.CategoryOutdoor ||
			a.Category == model.CategorySocial
	case model.SlotEvening:
		return a.Mood == model.MoodRelaxed ||
			a.Category == model.CategoryEntertainment ||
			a.Category == model.CategoryFood
	default:
		return false
	}
}

// startWindows are the "typical" hour ranges used for auto-placed start
// times, inclusive of the end hour. They are deliberately narrower than
// the slot boundary table used for validation and the two must not be
// unified: one keeps generated plans realistic, the other judges
// membership.
var startWindows = map[model.TimeSlot]struct{ first, last int }{
	model.SlotMorning:   {8, 11},
	model.SlotAfternoon: {13, 17},
	model.SlotEvening:   {18, 21},
}

// randomStartTime picks a uniform hour within the slot's typical window
// and a minute of :00 or :30 with equal probability.
func (g *Generator) randomStartTime(slot model.TimeSlot) string {
	w, ok := startWindows[slot]
	if !ok {
		return "12:00"
	}

	hour := w.first + g.rng.Intn(w.last-w.first+1)
	minute := 0
	if g.rng.Float64() < 0.5 {
		minute = 30
	}
	return timeutil.FormatTime(hour*60 + minute)
}

// generatedID produces a random-looking unique id distinguishable from
// manually placed items.
func generatedID() string {
	return fmt.Sprintf("auto-%s", uuid.New().String())
}

func removeActivity(pool []model.Activity, id string) []model.Activity {
	out := pool[:0]
	for _, a := range pool {
		if a.ID != id {
			out = append(out, a)
		}
	}
	return out
}
