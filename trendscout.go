// Package trendscout answers business/startup questions with structured,
// evidence-grounded recommendations. It maintains a local corpus of scraped
// articles, retrieves the subset relevant to a query's domain, refuses to
// answer when the evidence base is too thin, and coerces whatever the
// generation step produced into a fixed answer schema.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, openrouter/, goquery/).
package trendscout
