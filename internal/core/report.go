package core

// RunReport summarises one finished session for the records.
type RunReport struct {
	RunID        string
	GameID       string
	Variant      string // e.g. the recipe pack played
	Seed         int64
	Score        int
	Served       int
	WrongOrder   int
	Unmatched    int
	Trashed      int
	DurationSecs int
}

// Reporter is implemented by games that can describe the session they just
// played. The platform stores the report next to the high score.
type Reporter interface {
	Report() RunReport
}
