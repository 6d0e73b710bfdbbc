package report

import "net/url"

// ResaleURL builds a resale marketplace search for a named event.
func ResaleURL(eventName string) string {
	if eventName == "" {
		return ""
	}
	return "https://www.vividseats.com/search?searchTerm=" + url.QueryEscape(eventName)
}

// OfficialURL builds a web search for the act's official page. Shows
// get a tickets-oriented query.
func OfficialURL(eventName, eventType string) string {
	if eventName == "" {
		return ""
	}
	q := url.QueryEscape(eventName)
	switch eventType {
	case "artist", "comedian", "team":
		return "https://www.google.com/search?q=" + q + "+official+site"
	case "show":
		return "https://www.google.com/search?q=" + q + "+broadway+tickets"
	default:
		return "https://www.google.com/search?q=" + q
	}
}
