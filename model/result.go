package model

type Summary struct {
	Total      int                   `json:"total"`
	BySeverity map[Severity]int      `json:"bySeverity"`
	ByType     map[ViolationType]int `json:"byType"`
	Score      int                   `json:"score"`
	IsValid    bool                  `json:"isValid"`
}

// AnalysisResult is a fresh value per analysis; it keeps no references
// into caller state. Config echoes the effective merged configuration.
type AnalysisResult struct {
	ID         string         `json:"id"`
	Violations []Violation    `json:"violations"`
	Summary    Summary        `json:"summary"`
	AnalyzedAt string         `json:"analyzedAt"`
	Config     AnalyzerConfig `json:"config"`
}
