package catalog

import "github.com/lucasferreira/webquest/internal/domain"

// RequirementType selects which progress counter a requirement is measured
// against.
type RequirementType string

const (
	ReqMissions     RequirementType = "missions"
	ReqQuizzes      RequirementType = "quizzes"
	ReqScore        RequirementType = "score"
	ReqChallenges   RequirementType = "challenges"
	ReqAPIs         RequirementType = "apis"
	ReqFundamentals RequirementType = "fundamentals"
)

// Requirement is a threshold predicate over progress counters.
type Requirement struct {
	Type   RequirementType
	Target int
}

// Reward is what unlocking an achievement grants.
type Reward struct {
	XP    int
	Title string
}

// Achievement is one definition from the achievement table.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Requirement Requirement
	Reward      Reward
	Rarity      string
}

// achievementDefs is the single authoritative achievement table. Keep IDs
// stable: persisted progress stores them.
var achievementDefs = []Achievement{
	{
		ID:          "first-steps",
		Title:       "First Steps",
		Description: "Complete your first mission",
		Requirement: Requirement{Type: ReqMissions, Target: 1},
		Reward:      Reward{XP: 50, Title: "Beginner"},
		Rarity:      "common",
	},
	{
		ID:          "web-explorer",
		Title:       "Web Explorer",
		Description: "Complete 3 missions",
		Requirement: Requirement{Type: ReqMissions, Target: 3},
		Reward:      Reward{XP: 100, Title: "Explorer"},
		Rarity:      "common",
	},
	{
		ID:          "http-master",
		Title:       "HTTP Master",
		Description: "Complete 5 missions of the request lifecycle",
		Requirement: Requirement{Type: ReqMissions, Target: 5},
		Reward:      Reward{XP: 200, Title: "HTTP Master"},
		Rarity:      "rare",
	},
	{
		ID:          "quiz-champion",
		Title:       "Quiz Champion",
		Description: "Complete 5 quizzes",
		Requirement: Requirement{Type: ReqQuizzes, Target: 5},
		Reward:      Reward{XP: 150, Title: "Champion"},
		Rarity:      "rare",
	},
	{
		ID:          "point-collector",
		Title:       "Point Collector",
		Description: "Reach 2000 XP",
		Requirement: Requirement{Type: ReqScore, Target: 2000},
		Reward:      Reward{XP: 250, Title: "Collector"},
		Rarity:      "epic",
	},
	{
		ID:          "speed-runner",
		Title:       "Speed Runner",
		Description: "Finish 3 timed challenges",
		Requirement: Requirement{Type: ReqChallenges, Target: 3},
		Reward:      Reward{XP: 150, Title: "Runner"},
		Rarity:      "rare",
	},
	{
		ID:          "api-architect",
		Title:       "API Architect",
		Description: "Create 5 mock API routes",
		Requirement: Requirement{Type: ReqAPIs, Target: 5},
		Reward:      Reward{XP: 100, Title: "Architect"},
		Rarity:      "common",
	},
	{
		ID:          "bookworm",
		Title:       "Bookworm",
		Description: "Read 5 fundamentals topics",
		Requirement: Requirement{Type: ReqFundamentals, Target: 5},
		Reward:      Reward{XP: 100, Title: "Scholar"},
		Rarity:      "common",
	},
}

// Achievements returns the achievement table.
func Achievements() []Achievement {
	out := make([]Achievement, len(achievementDefs))
	copy(out, achievementDefs)
	return out
}

// AchievementByID looks up one definition.
func AchievementByID(id string) (Achievement, bool) {
	for _, a := range achievementDefs {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// CounterFor returns the progress counter a requirement type measures.
func (r Requirement) CounterFor(p domain.Progress) int {
	switch r.Type {
	case ReqMissions:
		return len(p.CompletedSteps)
	case ReqQuizzes:
		return len(p.CompletedQuizzes)
	case ReqScore:
		return p.Score
	case ReqChallenges:
		return p.ChallengesCompleted
	case ReqAPIs:
		return p.APIsCreated
	case ReqFundamentals:
		return len(p.FundamentalsRead)
	default:
		return 0
	}
}

// Satisfied reports whether the requirement's threshold is met.
func (r Requirement) Satisfied(p domain.Progress) bool {
	return r.CounterFor(p) >= r.Target
}
