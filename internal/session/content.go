package session

// Stat is a dashboard label/value pair.
type Stat struct {
	Label string
	Value string
}

// DashboardStats returns the sample figures shown on the dashboard.
// They are constants and do not depend on session state.
func DashboardStats() []Stat {
	return []Stat{
		{Label: "EI Score", Value: "82"},
		{Label: "Journals", Value: "14"},
		{Label: "Day Streak", Value: "7"},
		{Label: "Avg Mood", Value: "4.5"},
	}
}

// Asset identifies a static illustration. Loading it is up to the renderer.
type Asset string

const (
	AssetNone    Asset = ""
	AssetHero    Asset = "hero"
	AssetMood    Asset = "mood"
	AssetJournal Asset = "journal"
)

func AssetFor(s Screen) Asset {
	switch s {
	case Home:
		return AssetHero
	case MoodTracker:
		return AssetMood
	case Journal:
		return AssetJournal
	default:
		return AssetNone
	}
}
