package models

// InsightCard is a card plus its section-specific display label:
// an ease value for challenging cards, an interval name for well-known
// cards, a days-overdue tag for cards needing review.
type InsightCard struct {
	Card  Card   `json:"card"`
	Label string `json:"label"`
}

// Insights holds the three classification sections. Sections are computed
// independently from the full card set, so one card may appear in several.
// Empty reports an empty input collection, which is distinct from three
// independently empty sections.
type Insights struct {
	Challenging  []InsightCard `json:"challenging"`
	WellKnown    []InsightCard `json:"well_known"`
	NeedsReview  []InsightCard `json:"needs_review"`
	AllCaughtUp  bool          `json:"all_caught_up"`
	HasWeakCards bool          `json:"has_weak_cards"`
	Empty        bool          `json:"empty"`
}
