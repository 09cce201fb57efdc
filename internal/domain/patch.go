package domain

// ProgressPatch is a typed partial update for Progress. Nil fields are left
// untouched; present fields replace the current value wholesale (a provided
// QuizScores map replaces the whole existing map, so callers reconstruct it
// including unchanged entries). Level is intentionally absent: it is always
// derived from Score.
type ProgressPatch struct {
	CurrentStep         *int
	CompletedSteps      []int
	CompletedQuizzes    []int
	QuizScores          map[int]QuizRecord
	Score               *int
	Achievements        []string
	ChallengesCompleted *int
	BestTimes           map[string]int
	HintsUsed           *int
	APIsCreated         *int
	TotalPlayTime       *int
	FundamentalsRead    []string
}

// IsZero reports whether the patch carries no fields at all. An empty patch
// is still a valid update: it touches LastActive and nothing else.
func (p ProgressPatch) IsZero() bool {
	return p.CurrentStep == nil &&
		p.CompletedSteps == nil &&
		p.CompletedQuizzes == nil &&
		p.QuizScores == nil &&
		p.Score == nil &&
		p.Achievements == nil &&
		p.ChallengesCompleted == nil &&
		p.BestTimes == nil &&
		p.HintsUsed == nil &&
		p.APIsCreated == nil &&
		p.TotalPlayTime == nil &&
		p.FundamentalsRead == nil
}

// IntPtr returns a pointer to v, for building patches inline.
func IntPtr(v int) *int { return &v }

// StrPtr returns a pointer to v.
func StrPtr(v string) *string { return &v }

// BoolPtr returns a pointer to v.
func BoolPtr(v bool) *bool { return &v }
