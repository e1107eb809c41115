// Package catalog ships the static activity templates the planner draws
// from. The scheduling core never mutates these entries; placed items
// carry their own copies.
package catalog

import "weekendly/internal/model"

var activities = []model.Activity{
	{
		ID:            "lazy-brunch",
		Name:          "Long Brunch",
		Description:   "Pancakes, coffee refills, and nowhere to be.",
		Category:      model.CategoryFood,
		Icon:          "🥞",
		EstimatedTime: 90,
		Mood:          model.MoodRelaxed,
		Themes:        []model.Theme{model.ThemeLazy, model.ThemeFamily},
		IsIndoor:      true,
	},
	{
		ID:            "farmers-market",
		Name:          "Farmers Market Run",
		Description:   "Browse the stalls and pick up fresh produce.",
		Category:      model.CategoryFood,
		Icon:          "🧺",
		EstimatedTime: 75,
		Mood:          model.MoodHappy,
		Themes:        []model.Theme{model.ThemeFamily, model.ThemeAdventurous},
		IsIndoor:      false,
	},
	{
		ID:            "street-food-tour",
		Name:          "Street Food Tour",
		Description:   "Hunt down the best food trucks in town.",
		Category:      model.CategoryFood,
		Icon:          "🌮",
		EstimatedTime: 120,
		Mood:          model.MoodEnergized,
		Themes:        []model.Theme{model.ThemeAdventurous},
		IsIndoor:      false,
	},
	{
		ID:            "home-bakery",
		Name:          "Bake Something New",
		Description:   "Try that recipe you bookmarked months ago.",
		Category:      model.CategoryFood,
		Icon:          "🍞",
		EstimatedTime: 120,
		Mood:          model.MoodRelaxed,
		Themes:        []model.Theme{model.ThemeLazy, model.ThemeFamily},
		IsIndoor:      true,
	},
	{
		ID:            "sunrise-hike",
		Name:          "Sunrise Hike",
		Description:   "Catch first light from the ridge trail.",
		Category:      model.CategoryOutdoor,
		Icon:          "🌄",
		EstimatedTime: 180,
		Mood:          model.MoodEnergized,
		Themes:        []model.Theme{model.ThemeAdventurous},
		IsIndoor:      false,
	},
	{
		ID:            "park-picnic",
		Name:          "Picnic in the Park",
		Description:   "Blanket, snacks, and people-watching.",
		Category:      model.CategoryOutdoor,
		Icon:          "🧺",
		EstimatedTime: 120,
		Mood:          model.MoodHappy,
		Themes:        []model.Theme{model.ThemeLazy, model.ThemeFamily},
		IsIndoor:      false,
	},
	{
		ID:            "bike-loop",
		Name:          "City Bike Loop",
		Description:   "An easy ride along the waterfront path.",
		Category:      model.CategoryOutdoor,
		Icon:          "🚲",
		EstimatedTime: 90,
		Mood:          model.MoodEnergized,
		Themes:        []model.Theme{model.ThemeAdventurous, model.ThemeFamily},
		IsIndoor:      false,
	},
	{
		ID:            "kayak-rental",
		Name:          "Kayak the River",
		Description:   "Rent a kayak and paddle the calm stretch.",
		Category:      model.CategoryOutdoor,
		Icon:          "🛶",
		EstimatedTime: 150,
		Mood:          model.MoodEnergized,
		Themes:        []model.Theme{model.ThemeAdventurous},
		IsIndoor:      false,
	},
	{
		ID:            "board-game-marathon",
		Name:          "Board Game Marathon",
		Description:   "Dust off the shelf of unplayed games.",
		Category:      model.CategoryIndoor,
		Icon:          "🎲",
		EstimatedTime: 180,
		Mood:          model.MoodHappy,
		Themes:        []model.Theme{model.ThemeLazy, model.ThemeFamily},
		IsIndoor:      true,
	},
	{
		ID:            "reading-nook",
		Name:          "Reading Afternoon",
		Description:   "A couch, a blanket, and the next chapter.",
		Category:      model.CategoryIndoor,
		Icon:          "📚",
		EstimatedTime: 120,
		Mood:          model.MoodRelaxed,
		Themes:        []model.Theme{model.ThemeLazy},
		IsIndoor:      true,
	},
	{
		ID:            "escape-room",
		Name:          "Escape Room",
		Description:   "Sixty minutes, one locked door, your team.",
		Category:      model.CategoryIndoor,
		Icon:          "🔐",
		EstimatedTime: 90,
		Mood:          model.MoodEnergized,
		Themes:        []model.Theme{model.ThemeAdventurous, model.ThemeFamily},
		IsIndoor:      true,
	},
	{
		ID:            "spa-morning",
		Name:          "Spa Morning",
		Description:   "Sauna, steam, and absolutely no hurry.",
		Category:      model.CategoryWellness,
		Icon:          "🧖",
		EstimatedTime: 150,
		Mood:          model.MoodRelaxed,
		Themes:        []model.Theme{model.ThemeLazy},
		IsIndoor:      true,
	},
	{
		ID:            "morning-yoga",
		Name:          "Morning Yoga",
		Description:   "A slow flow to start the day loose.",
		Category:      model.CategoryWellness,
		Icon:          "🧘",
		EstimatedTime: 60,
		Mood:          model.MoodRelaxed,
		Themes:        []model.Theme{model.ThemeLazy, model.ThemeFamily},
		IsIndoor:      true,
	},
	{
		ID:            "forest-bathing",
		Name:          "Forest Walk",
		Description:   "A quiet wander under the canopy.",
		Category:      model.CategoryWellness,
		Icon:          "🌲",
		EstimatedTime: 90,
		Mood:          model.MoodRelaxed,
		Themes:        []model.Theme{model.ThemeLazy, model.ThemeAdventurous},
		IsIndoor:      false,
	},
	{
		ID:            "coffee-catchup",
		Name:          "Coffee Catch-up",
		Description:   "That friend you keep meaning to call.",
		Category:      model.CategorySocial,
		Icon:          "☕",
		EstimatedTime: 90,
		Mood:          model.MoodHappy,
		Themes:        []model.Theme{model.ThemeLazy, model.ThemeFamily},
		IsIndoor:      true,
	},
	{
		ID:            "backyard-bbq",
		Name:          "Backyard BBQ",
		Description:   "Fire up the grill and invite the neighbours.",
		Category:      model.CategorySocial,
		Icon:          "🍔",
		EstimatedTime: 180,
		Mood:          model.MoodHappy,
		Themes:        []model.Theme{model.ThemeFamily, model.ThemeAdventurous},
		IsIndoor:      false,
	},
	{
		ID:            "trivia-night",
		Name:          "Trivia Night",
		Description:   "Claim the pub quiz crown with your crew.",
		Category:      model.CategorySocial,
		Icon:          "🧠",
		EstimatedTime: 120,
		Mood:          model.MoodEnergized,
		Themes:        []model.Theme{model.ThemeAdventurous},
		IsIndoor:      true,
	},
	{
		ID:            "pottery-class",
		Name:          "Pottery Class",
		Description:   "Get your hands muddy at the wheel.",
		Category:      model.CategoryCreative,
		Icon:          "🏺",
		EstimatedTime: 120,
		Mood:          model.MoodHappy,
		Themes:        []model.Theme{model.ThemeAdventurous, model.ThemeFamily},
		IsIndoor:      true,
	},
	{
		ID:            "sketch-walk",
		Name:          "Sketchbook Walk",
		Description:   "Slow loop through town, pencil in hand.",
		Category:      model.CategoryCreative,
		Icon:          "✏️",
		EstimatedTime: 90,
		Mood:          model.MoodRelaxed,
		Themes:        []model.Theme{model.ThemeLazy, model.ThemeAdventurous},
		IsIndoor:      false,
	},
	{
		ID:            "family-craft-table",
		Name:          "Craft Table",
		Description:   "Glue, glitter, and zero cleanup promises.",
		Category:      model.CategoryCreative,
		Icon:          "🎨",
		EstimatedTime: 90,
		Mood:          model.MoodHappy,
		Themes:        []model.Theme{model.ThemeFamily},
		IsIndoor:      true,
	},
	{
		ID:            "climbing-gym",
		Name:          "Climbing Gym",
		Description:   "Boulder problems and chalk dust.",
		Category:      model.CategoryFitness,
		Icon:          "🧗",
		EstimatedTime: 120,
		Mood:          model.MoodEnergized,
		Themes:        []model.Theme{model.ThemeAdventurous},
		IsIndoor:      true,
	},
	{
		ID:            "family-swim",
		Name:          "Pool Session",
		Description:   "Laps for some, cannonballs for others.",
		Category:      model.CategoryFitness,
		Icon:          "🏊",
		EstimatedTime: 90,
		Mood:          model.MoodEnergized,
		Themes:        []model.Theme{model.ThemeFamily},
		IsIndoor:      true,
	},
	{
		ID:            "slow-stretch",
		Name:          "Stretch & Roll",
		Description:   "Foam roller therapy in the living room.",
		Category:      model.CategoryFitness,
		Icon:          "🤸",
		EstimatedTime: 45,
		Mood:          model.MoodRelaxed,
		Themes:        []model.Theme{model.ThemeLazy},
		IsIndoor:      true,
	},
	{
		ID:            "movie-night",
		Name:          "Movie Night",
		Description:   "Popcorn, pyjamas, and a double feature.",
		Category:      model.CategoryEntertainment,
		Icon:          "🎬",
		EstimatedTime: 150,
		Mood:          model.MoodRelaxed,
		Themes:        []model.Theme{model.ThemeLazy, model.ThemeFamily},
		IsIndoor:      true,
	},
	{
		ID:            "live-music",
		Name:          "Live Music",
		Description:   "Catch whoever is playing the small stage.",
		Category:      model.CategoryEntertainment,
		Icon:          "🎸",
		EstimatedTime: 150,
		Mood:          model.MoodEnergized,
		Themes:        []model.Theme{model.ThemeAdventurous},
		IsIndoor:      true,
	},
	{
		ID:            "arcade-evening",
		Name:          "Retro Arcade",
		Description:   "A pocket full of tokens and old rivalries.",
		Category:      model.CategoryEntertainment,
		Icon:          "🕹️",
		EstimatedTime: 120,
		Mood:          model.MoodHappy,
		Themes:        []model.Theme{model.ThemeFamily, model.ThemeAdventurous},
		IsIndoor:      true,
	},
	{
		ID:            "open-air-cinema",
		Name:          "Open-Air Cinema",
		Description:   "A classic on the big screen under the stars.",
		Category:      model.CategoryEntertainment,
		Icon:          "🌙",
		EstimatedTime: 150,
		Mood:          model.MoodRelaxed,
		Themes:        []model.Theme{model.ThemeLazy, model.ThemeFamily, model.ThemeAdventurous},
		IsIndoor:      false,
	},
}

// All returns a copy of the full activity catalog.
func All() []model.Activity {
	return append([]model.Activity(nil), activities...)
}

// ByID looks up a single activity template.
func ByID(id string) (model.Activity, bool) {
	for _, a := range activities {
		if a.ID == id {
			return a, true
		}
	}
	return model.Activity{}, false
}

// ForTheme returns the activities eligible for the given theme, in
// catalog order.
func ForTheme(theme model.Theme) []model.Activity {
	var out []model.Activity
	for _, a := range activities {
		if a.HasTheme(theme) {
			out = append(out, a)
		}
	}
	return out
}
