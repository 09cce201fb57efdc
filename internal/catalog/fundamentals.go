package catalog

// Topic is one fundamentals reading unit.
type Topic struct {
	ID      string
	Title   string
	Summary string
}

var fundamentalsTopics = []Topic{
	{ID: "osi-model", Title: "The OSI Model", Summary: "The seven-layer reference model for network communication."},
	{ID: "tcp-ip-model", Title: "The TCP/IP Model", Summary: "The four-layer model the Internet actually runs on."},
	{ID: "networking-basics", Title: "Networking Basics", Summary: "Hosts, addresses, routers, and how packets move."},
	{ID: "http-https", Title: "HTTP and HTTPS", Summary: "The web's request/response protocol, and its encrypted form."},
	{ID: "tcp-udp", Title: "TCP vs UDP", Summary: "Reliable streams against fast datagrams."},
	{ID: "dns-system", Title: "The DNS System", Summary: "How names become addresses, from root to authoritative."},
	{ID: "ethernet", Title: "Ethernet", Summary: "The dominant wired link-layer technology."},
	{ID: "wifi-wireless", Title: "Wi-Fi and Wireless", Summary: "Radio links, access points, and their trade-offs."},
	{ID: "network-security", Title: "Network Security", Summary: "Threats on the wire and the defenses against them."},
}

// Fundamentals returns the ordered topic list.
func Fundamentals() []Topic {
	out := make([]Topic, len(fundamentalsTopics))
	copy(out, fundamentalsTopics)
	return out
}

// TopicByID looks up one topic.
func TopicByID(id string) (Topic, bool) {
	for _, t := range fundamentalsTopics {
		if t.ID == id {
			return t, true
		}
	}
	return Topic{}, false
}
