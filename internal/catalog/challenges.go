package catalog

import "github.com/lucasferreira/webquest/internal/domain"

// Challenge is a timed, scored quiz-like mode independent of the mission
// flow. TimeLimit is in seconds.
type Challenge struct {
	ID         string
	Title      string
	TimeLimit  int
	Difficulty domain.Difficulty
	Questions  []Question
}

var challengeDefs = []Challenge{
	{
		ID:         "speed-basic",
		Title:      "Basic Speed Run",
		TimeLimit:  120,
		Difficulty: domain.DifficultyEasy,
		Questions: []Question{
			{
				Prompt:        "Which protocol resolves names to addresses?",
				Options:       []string{"HTTP", "DNS", "FTP", "SMTP"},
				CorrectAnswer: 1,
			},
			{
				Prompt:        "Default port for HTTP?",
				Options:       []string{"21", "25", "80", "443"},
				CorrectAnswer: 2,
			},
			{
				Prompt:        "Default port for HTTPS?",
				Options:       []string{"80", "443", "8080", "53"},
				CorrectAnswer: 1,
			},
		},
	},
	{
		ID:         "speed-intermediate",
		Title:      "Intermediate Gauntlet",
		TimeLimit:  180,
		Difficulty: domain.DifficultyMedium,
		Questions: []Question{
			{
				Prompt:        "Which status code means Not Found?",
				Options:       []string{"400", "401", "404", "410"},
				CorrectAnswer: 2,
			},
			{
				Prompt:        "Which method is idempotent?",
				Options:       []string{"POST", "PUT", "PATCH", "CONNECT"},
				CorrectAnswer: 1,
			},
			{
				Prompt:        "TLS operates above which protocol?",
				Options:       []string{"IP", "UDP", "TCP", "ICMP"},
				CorrectAnswer: 2,
			},
			{
				Prompt:        "What does a CDN primarily reduce?",
				Options:       []string{"Cookies", "Latency", "Encryption", "Headers"},
				CorrectAnswer: 1,
			},
		},
	},
	{
		ID:         "speed-expert",
		Title:      "Master of Time",
		TimeLimit:  90,
		Difficulty: domain.DifficultyHard,
		Questions: []Question{
			{
				Prompt:        "Which header enables HTTP caching revalidation?",
				Options:       []string{"ETag", "Host", "Accept", "Origin"},
				CorrectAnswer: 0,
			},
			{
				Prompt:        "HTTP/2 multiplexes streams over how many TCP connections?",
				Options:       []string{"One", "Two per stream", "One per stream", "Four"},
				CorrectAnswer: 0,
			},
			{
				Prompt:        "Which DNS record delegates a zone?",
				Options:       []string{"A", "NS", "MX", "SOA"},
				CorrectAnswer: 1,
			},
		},
	},
}

// Challenges returns the challenge table.
func Challenges() []Challenge {
	out := make([]Challenge, len(challengeDefs))
	copy(out, challengeDefs)
	return out
}

// ChallengeByID looks up one challenge definition.
func ChallengeByID(id string) (Challenge, bool) {
	for _, c := range challengeDefs {
		if c.ID == id {
			return c, true
		}
	}
	return Challenge{}, false
}
