package model

// Category classifies an activity for filtering and generation heuristics.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryOutdoor       Category = "outdoor"
	CategoryIndoor        Category = "indoor"
	CategoryWellness      Category = "wellness"
	CategorySocial        Category = "social"
	CategoryCreative      Category = "creative"
	CategoryFitness       Category = "fitness"
	CategoryEntertainment Category = "entertainment"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryFood,
	CategoryOutdoor,
	CategoryIndoor,
	CategoryWellness,
	CategorySocial,
	CategoryCreative,
	CategoryFitness,
	CategoryEntertainment,
}

// Mood describes the vibe of an activity or a scheduled item.
type Mood string

const (
	MoodHappy     Mood = "happy"
	MoodRelaxed   Mood = "relaxed"
	MoodEnergized Mood = "energized"
)

// Theme is a weekend style tag used to filter eligible activities
// and bias generated notes.
type Theme string

const (
	ThemeLazy        Theme = "lazy"
	ThemeAdventurous Theme = "adventurous"
	ThemeFamily      Theme = "family"
)

// Themes lists every theme in display order.
var Themes = []Theme{ThemeLazy, ThemeAdventurous, ThemeFamily}

// Activity is an immutable catalog template. The scheduler copies it into
// a ScheduleItem when placed and never mutates the catalog entry.
type Activity struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"category"`

	// Icon is a display glyph, opaque to the scheduling core.
	Icon string `json:"icon"`

	// EstimatedTime is the typical duration in minutes.
	EstimatedTime int `json:"estimatedTime"`

	Mood     Mood    `json:"mood"`
	Themes   []Theme `json:"themes"`
	IsIndoor bool    `json:"isIndoor"`
}

// HasTheme reports whether the activity is eligible for the given theme.
func (a Activity) HasTheme(t Theme) bool {
	for _, th := range a.Themes {
		if th == t {
			return true
		}
	}
	return false
}
