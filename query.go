package trendscout

import "strings"

// DefaultLocation is the locale assumed when a query does not name one.
const DefaultLocation = "Moscow, Russia"

// Query is a normalized request: the industry or sphere the user asks about,
// where they operate, and any free-text constraints.
type Query struct {
	Domain   string `json:"domain"`
	Location string `json:"location"`
	Details  string `json:"details"`
}

// Normalize applies the pre-validation defaults: a blank domain becomes
// "general", a blank location becomes DefaultLocation.
func (q Query) Normalize() Query {
	if strings.TrimSpace(q.Domain) == "" {
		q.Domain = "general"
	}
	if strings.TrimSpace(q.Location) == "" {
		q.Location = DefaultLocation
	}
	return q
}
