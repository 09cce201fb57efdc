package catalog

// Question is a single multiple-choice quiz question. CorrectAnswer indexes
// into Options.
type Question struct {
	Prompt        string
	Options       []string
	CorrectAnswer int
	Explanation   string
}

var quizBanks = map[int][]Question{
	0: {
		{
			Prompt: "What happens when you type a URL into the browser?",
			Options: []string{
				"The browser connects straight to the server",
				"The browser first needs to resolve the name via DNS",
				"The page is always loaded from cache",
				"The browser downloads every file on the site",
			},
			CorrectAnswer: 1,
			Explanation:   "Before connecting, the browser resolves the domain name to an IP address through DNS.",
		},
		{
			Prompt:        "Which protocol is involved first when accessing a URL?",
			Options:       []string{"HTTP", "TCP", "DNS", "IP"},
			CorrectAnswer: 2,
			Explanation:   "DNS resolves the domain name to an IP address before anything else can happen.",
		},
		{
			Prompt: "What does URL stand for?",
			Options: []string{
				"Universal Resource Locator",
				"Uniform Resource Locator",
				"Universal Reference Link",
				"Uniform Reference Locator",
			},
			CorrectAnswer: 1,
			Explanation:   "URL stands for Uniform Resource Locator, the standard address of a web resource.",
		},
	},
	1: {
		{
			Prompt:        "What does a DNS server return for a domain name?",
			Options:       []string{"A web page", "An IP address", "A TCP port", "A TLS certificate"},
			CorrectAnswer: 1,
			Explanation:   "DNS maps human-readable names to IP addresses.",
		},
		{
			Prompt:        "Which record type maps a hostname to an IPv4 address?",
			Options:       []string{"MX", "CNAME", "A", "TXT"},
			CorrectAnswer: 2,
			Explanation:   "An A record holds the IPv4 address for a hostname.",
		},
		{
			Prompt:        "Where does the browser look first when resolving a name?",
			Options:       []string{"The root servers", "Its local cache", "The authoritative server", "The registrar"},
			CorrectAnswer: 1,
			Explanation:   "Resolution starts with local caches before recursive lookup.",
		},
	},
	2: {
		{
			Prompt:        "How many steps does the TCP handshake have?",
			Options:       []string{"One", "Two", "Three", "Four"},
			CorrectAnswer: 2,
			Explanation:   "SYN, SYN-ACK, ACK: the 3-way handshake.",
		},
		{
			Prompt:        "Which flag opens a TCP connection?",
			Options:       []string{"ACK", "SYN", "FIN", "RST"},
			CorrectAnswer: 1,
			Explanation:   "The client sends a SYN segment to start the handshake.",
		},
		{
			Prompt:        "What does TCP guarantee that UDP does not?",
			Options:       []string{"Lower latency", "Ordered, reliable delivery", "Encryption", "Smaller headers"},
			CorrectAnswer: 1,
			Explanation:   "TCP retransmits lost segments and delivers bytes in order.",
		},
	},
	3: {
		{
			Prompt:        "Which HTTP method requests a resource without side effects?",
			Options:       []string{"POST", "GET", "PUT", "DELETE"},
			CorrectAnswer: 1,
			Explanation:   "GET is the safe, read-only method.",
		},
		{
			Prompt:        "Where do request headers travel?",
			Options:       []string{"After the body", "Before the body", "In a separate connection", "Only in HTTPS"},
			CorrectAnswer: 1,
			Explanation:   "Headers precede the optional message body.",
		},
		{
			Prompt:        "Which header names the host being addressed?",
			Options:       []string{"Server", "Origin", "Host", "Location"},
			CorrectAnswer: 2,
			Explanation:   "The Host header selects the virtual host on the server.",
		},
	},
	4: {
		{
			Prompt:        "What does a server typically do before answering a request?",
			Options:       []string{"Renders the page", "Routes, authenticates and queries data", "Resolves DNS", "Opens a new TCP connection to the client"},
			CorrectAnswer: 1,
			Explanation:   "The server routes the request, applies middleware, and gathers data for the response.",
		},
		{
			Prompt:        "Which status class signals a server-side failure?",
			Options:       []string{"2xx", "3xx", "4xx", "5xx"},
			CorrectAnswer: 3,
			Explanation:   "5xx codes mean the server failed to fulfil a valid request.",
		},
		{
			Prompt:        "What is a reverse proxy used for?",
			Options:       []string{"Resolving names", "Fronting and load-balancing backend servers", "Rendering HTML", "Storing cookies"},
			CorrectAnswer: 1,
			Explanation:   "Reverse proxies sit in front of origin servers to balance and shield them.",
		},
	},
	5: {
		{
			Prompt:        "Which status code means the resource was found and returned?",
			Options:       []string{"301", "200", "404", "500"},
			CorrectAnswer: 1,
			Explanation:   "200 OK is the standard success response.",
		},
		{
			Prompt:        "Which header tells the browser the body's media type?",
			Options:       []string{"Accept", "Content-Type", "Content-Length", "ETag"},
			CorrectAnswer: 1,
			Explanation:   "Content-Type declares the MIME type of the response body.",
		},
		{
			Prompt:        "What does a 301 response instruct the client to do?",
			Options:       []string{"Retry later", "Follow a new permanent location", "Authenticate", "Use a different method"},
			CorrectAnswer: 1,
			Explanation:   "301 Moved Permanently redirects to the Location header's URL.",
		},
	},
	6: {
		{
			Prompt:        "What does the browser build from the received HTML?",
			Options:       []string{"The DOM tree", "A TCP segment", "A DNS zone", "A TLS session"},
			CorrectAnswer: 0,
			Explanation:   "HTML is parsed into the Document Object Model.",
		},
		{
			Prompt:        "Which resource blocks rendering while it loads by default?",
			Options:       []string{"Images", "Synchronous scripts", "Favicons", "Fonts"},
			CorrectAnswer: 1,
			Explanation:   "Classic script tags pause parsing until they execute.",
		},
		{
			Prompt:        "What combines the DOM and CSSOM?",
			Options:       []string{"The render tree", "The network stack", "The event loop", "The cache"},
			CorrectAnswer: 0,
			Explanation:   "The render tree drives layout and paint.",
		},
	},
}

// QuizBank returns the question list for a mission index. An empty slice
// means no quiz content exists for that mission.
func QuizBank(missionIndex int) []Question {
	bank, ok := quizBanks[missionIndex]
	if !ok {
		return nil
	}
	out := make([]Question, len(bank))
	copy(out, bank)
	return out
}
