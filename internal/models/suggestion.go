package models

// Output schemas for the generation service. Each flow expects the model to
// answer with exactly one of these shapes as JSON.

// DynamicSuggestion is a single contextual game suggestion.
type DynamicSuggestion struct {
	GameName  string `json:"gameName"`
	Reasoning string `json:"reasoning"`
}

// PanicSuggestion is a single decisive suggestion with a 5-20 minute
// micro-task meant to remove decision fatigue.
type PanicSuggestion struct {
	GameName  string `json:"gameName"`
	MicroTask string `json:"microTask"`
}

// RecommendationList is the batch of titles produced by the personalized
// recommendations flow.
type RecommendationList struct {
	Recommendations []string `json:"recommendations"`
}

// GenreShare is one entry of a gamer DNA genre breakdown.
type GenreShare struct {
	Genre      string `json:"genre"`
	Percentage int    `json:"percentage"`
}

// GamerDNA is the profile analysis built from a user's four curated lists.
type GamerDNA struct {
	Summary         string       `json:"summary"`
	TopGenres       []GenreShare `json:"topGenres"`
	CommonMechanics []string     `json:"commonMechanics"`
	ArtisticStyles  []string     `json:"artisticStyles"`
}

// GamerDuel compares two gamer DNA profiles.
type GamerDuel struct {
	Title               string   `json:"title"`
	Similarities        []string `json:"similarities"`
	Differences         []string `json:"differences"`
	CoopRecommendations []string `json:"coopRecommendations"`
}

// PlaytimePrediction is a one-sentence personalized completion estimate.
type PlaytimePrediction struct {
	Prediction string `json:"prediction"`
}

// DifficultyAnalysis relates a game's difficulty to the user's history.
type DifficultyAnalysis struct {
	Analysis string `json:"analysis"`
}

// DroppedAnalysis looks for patterns in the games a user abandons.
type DroppedAnalysis struct {
	Summary        string   `json:"summary"`
	CommonPatterns []string `json:"commonPatterns"`
}

// ResolvedSuggestion pairs a suggestion with the full catalog record it was
// resolved to.
type ResolvedSuggestion struct {
	Game      Game   `json:"game"`
	Reasoning string `json:"reasoning"`
}

// ResolvedPanicSuggestion is the panic flow's resolved result.
type ResolvedPanicSuggestion struct {
	Game      Game   `json:"game"`
	MicroTask string `json:"microTask"`
}
