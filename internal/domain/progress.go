package domain

import "time"

// QuizRecord is the latest recorded result for one mission's quiz.
// Score is the correct-answer count, TotalQuestions the fixed size of that
// quiz, and Attempts a monotonically incrementing submission counter.
type QuizRecord struct {
	Score          int
	TotalQuestions int
	Attempts       int
}

// Progress is the authoritative record of one player's progression.
// It is owned by the progress store; nothing outside the store mutates it.
type Progress struct {
	CurrentStep         int
	CompletedSteps      []int
	CompletedQuizzes    []int
	QuizScores          map[int]QuizRecord
	Score               int
	Level               int
	Achievements        []string
	ChallengesCompleted int
	BestTimes           map[string]int
	HintsUsed           int
	APIsCreated         int
	TotalPlayTime       int
	LastActive          time.Time
	FundamentalsRead    []string
}

// XPPerLevel is the score span of one level: Level = Score/XPPerLevel + 1.
const XPPerLevel = 200

// LevelForScore derives the level for a cumulative score.
func LevelForScore(score int) int {
	if score < 0 {
		return 1
	}
	return score/XPPerLevel + 1
}

// DefaultProgress returns the first-run state: nothing completed, level 1.
func DefaultProgress() Progress {
	return Progress{
		CurrentStep:      0,
		CompletedSteps:   []int{},
		CompletedQuizzes: []int{},
		QuizScores:       map[int]QuizRecord{},
		Score:            0,
		Level:            1,
		Achievements:     []string{},
		BestTimes:        map[string]int{},
		LastActive:       time.Now().UTC(),
		FundamentalsRead: []string{},
	}
}

// Clone returns a deep copy. The store hands these out so callers can never
// alias its internal state.
func (p Progress) Clone() Progress {
	c := p
	c.CompletedSteps = append([]int{}, p.CompletedSteps...)
	c.CompletedQuizzes = append([]int{}, p.CompletedQuizzes...)
	c.Achievements = append([]string{}, p.Achievements...)
	c.FundamentalsRead = append([]string{}, p.FundamentalsRead...)
	c.QuizScores = make(map[int]QuizRecord, len(p.QuizScores))
	for k, v := range p.QuizScores {
		c.QuizScores[k] = v
	}
	c.BestTimes = make(map[string]int, len(p.BestTimes))
	for k, v := range p.BestTimes {
		c.BestTimes[k] = v
	}
	return c
}

// HasCompletedStep reports whether the mission index is in CompletedSteps.
func (p Progress) HasCompletedStep(index int) bool {
	return containsInt(p.CompletedSteps, index)
}

// HasCompletedQuiz reports whether the mission's quiz has a recorded final
// submission, regardless of score.
func (p Progress) HasCompletedQuiz(index int) bool {
	return containsInt(p.CompletedQuizzes, index)
}

// HasAchievement reports whether the achievement id is already unlocked.
func (p Progress) HasAchievement(id string) bool {
	return containsStr(p.Achievements, id)
}

// HasReadFundamental reports whether the topic id is already marked read.
func (p Progress) HasReadFundamental(id string) bool {
	return containsStr(p.FundamentalsRead, id)
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func containsStr(xs []string, v string) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
