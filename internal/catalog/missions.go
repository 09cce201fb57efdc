// Package catalog holds the static teaching content: missions, quiz banks,
// achievement definitions, challenges, and fundamentals topics. The progress
// engine consumes these tables read-only; IDs and indices must stay stable
// because persisted progress references them.
package catalog

// Mission is one step of the HTTP request lifecycle.
type Mission struct {
	ID          int
	Title       string
	Description string
	HasQuiz     bool
}

var missions = []Mission{
	{ID: 0, Title: "Type the URL", Description: "The user types a URL into the browser", HasQuiz: false},
	{ID: 1, Title: "DNS Resolution", Description: "DNS resolves the domain name to an IP address", HasQuiz: false},
	{ID: 2, Title: "TCP Connection", Description: "A TCP connection to the server is established (3-way handshake)", HasQuiz: true},
	{ID: 3, Title: "HTTP Request", Description: "The HTTP request is sent to the server", HasQuiz: true},
	{ID: 4, Title: "Server Processing", Description: "The server processes the request and prepares a response", HasQuiz: true},
	{ID: 5, Title: "HTTP Response", Description: "The server sends the response back to the browser", HasQuiz: true},
	{ID: 6, Title: "Rendering", Description: "The browser renders the page content", HasQuiz: true},
}

// Missions returns the ordered mission list.
func Missions() []Mission {
	out := make([]Mission, len(missions))
	copy(out, missions)
	return out
}

// MissionCount returns the number of missions in the catalog.
func MissionCount() int { return len(missions) }

// MissionByIndex returns the mission at the given index, or false when the
// index is outside the catalog.
func MissionByIndex(index int) (Mission, bool) {
	if index < 0 || index >= len(missions) {
		return Mission{}, false
	}
	return missions[index], true
}
