package planner

import "weekendly/internal/model"

// themeNotes flavor generated items by weekend theme.
var themeNotes = map[model.Theme][]string{
	model.ThemeLazy: {
		"Perfect for a relaxing day",
		"Take your time and enjoy",
		"No rush, just pure comfort",
		"Cozy vibes all the way",
	},
	model.ThemeAdventurous: {
		"Ready for an adventure!",
		"Let's explore something new",
		"Adventure awaits!",
		"Time to push boundaries",
	},
	model.ThemeFamily: {
		"Great bonding time",
		"Fun for everyone",
		"Making memories together",
		"Quality family time",
	},
}

// categoryNotes flavor generated items by activity category.
var categoryNotes = map[model.Category][]string{
	model.CategoryFood:          {"Don't forget to check reviews", "Make a reservation if needed"},
	model.CategoryOutdoor:       {"Check the weather first", "Bring sunscreen"},
	model.CategoryIndoor:        {"Perfect for any weather", "Comfortable environment"},
	model.CategoryWellness:      {"Focus on relaxation", "Stay hydrated"},
	model.CategorySocial:        {"Invite friends to join", "Great conversation starter"},
	model.CategoryEntertainment: {"Check showtimes", "Arrive a bit early"},
	model.CategoryCreative:      {"Bring your own supplies", "Let creativity flow"},
	model.CategoryFitness:       {"Warm up properly", "Bring a water bottle"},
}

// randomNote picks a flavor note uniformly from the concatenated theme
// and category pools, or "" when both pools are empty.
func (g *Generator) randomNote(a model.Activity, theme model.Theme) string {
	pool := append([]string(nil), themeNotes[theme]...)
	pool = append(pool, categoryNotes[a.Category]...)

	if len(pool) == 0 {
		return ""
	}
	return pool[g.rng.Intn(len(pool))]
}
