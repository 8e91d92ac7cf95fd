package agent

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/avoronin/trendscout"
)

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Repairer normalizes arbitrary generation output into the fixed answer
// schema. Repair is total: any input string, including empty or non-JSON
// garbage, yields a well-formed Answer.
type Repairer struct {
	// Now overrides the clock used when rewriting invalid source dates.
	Now func() time.Time
}

// Repair parses raw as JSON, falling back to the largest brace-delimited
// substring, then to a deterministic local answer built from the query and
// evidence. Either way the result passes through the per-field coercion
// pipeline so every required key has its documented shape.
func (r *Repairer) Repair(raw string, q trendscout.Query, snippets []Snippet) trendscout.Answer {
	obj := parseObject(raw)
	if obj == nil {
		obj = r.localFallback(q, snippets)
	}
	return r.coerce(obj)
}

// parseObject attempts a direct parse, then the largest {...} substring.
// Returns nil when no dictionary-shaped value can be recovered.
func parseObject(raw string) map[string]any {
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err == nil {
		return obj
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return nil
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &obj); err != nil {
		return nil
	}
	return obj
}

// localFallback deterministically builds an answer from the query and the
// retrieved evidence. Used when the generator's output is unrecoverable;
// it must always survive coercion unchanged.
func (r *Repairer) localFallback(q trendscout.Query, snippets []Snippet) map[string]any {
	domain := q.Domain
	if domain == "" {
		domain = "general"
	}

	sources := make([]any, 0, 5)
	evidence := make([]any, 0, 5)
	for _, sn := range snippets {
		if len(sources) >= 5 {
			break
		}
		title := sn.Title
		if runes := []rune(title); len(runes) > 80 {
			title = string(runes[:80])
		}
		sources = append(sources, map[string]any{"url": sn.URL, "title": title, "date": sn.Date})
		evidence = append(evidence, fmt.Sprintf("%s: %s", sn.Domain(), title))
	}

	return map[string]any{
		"idea": fmt.Sprintf("%s: an MVP for %s grounded in the retrieved sources.",
			capitalize(domain), q.Location),
		"local_niches": []any{
			map[string]any{"name": "B2B subscriptions", "why_now": "Offices want predictable spend"},
			map[string]any{"name": "QR loyalty programs", "why_now": "Retention is cheaper than acquisition"},
		},
		"90_day_plan": []any{
			map[string]any{"week": 1, "tasks": []any{"Competitor map", "Survey 30 respondents", "MVP offer"}},
			map[string]any{"week": 2, "tasks": []any{"Subscription pilot with 20-30 clients", "A/B price and volume"}},
			map[string]any{"week": 3, "tasks": []any{"Unit economics report", "Scale or stop decision"}},
		},
		"risks": []any{
			map[string]any{"risk": "Weak subscription conversion", "mitigation": "A/B tests plus B2B partnerships"},
			map[string]any{"risk": "High rent", "mitigation": "Coworking spaces or revenue share"},
		},
		"unit_economics_notes": []any{"CAC<=20% ARPU", "GM>=65-70%", "Payback<=12 months", "LTV/CAC>3"},
		"sources":              sources,
		"evidence":             evidence,
	}
}

// coerce is the ordered per-field normalization pipeline: each step is
// total and fills its field with the documented default when the source
// value is missing or the wrong shape.
func (r *Repairer) coerce(obj map[string]any) trendscout.Answer {
	a := trendscout.EmptyAnswer()
	a.Idea = asString(obj["idea"])
	a.LocalNiches = coerceNiches(obj["local_niches"])
	a.NinetyDayPlan = coercePlan(obj["90_day_plan"])
	a.Risks = coerceRisks(obj["risks"])
	a.UnitEconomicsNotes = asStringList(obj["unit_economics_notes"])
	a.Sources = r.coerceSources(obj["sources"])
	a.Evidence = asStringList(obj["evidence"])
	return a
}

func coerceNiches(v any) []trendscout.Niche {
	niches := []trendscout.Niche{}
	for _, item := range asList(v) {
		switch t := item.(type) {
		case map[string]any:
			niches = append(niches, trendscout.Niche{
				Name:   asString(t["name"]),
				WhyNow: asString(t["why_now"]),
			})
		case string:
			niches = append(niches, trendscout.Niche{Name: t})
		}
	}
	return niches
}

func coercePlan(v any) []trendscout.PlanWeek {
	plan := []trendscout.PlanWeek{}
	for i, item := range asList(v) {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		week := asInt(m["week"])
		if week <= 0 {
			week = i + 1
		}
		plan = append(plan, trendscout.PlanWeek{
			Week:  week,
			Tasks: asStringList(m["tasks"]),
		})
	}
	return plan
}

func coerceRisks(v any) []trendscout.Risk {
	risks := []trendscout.Risk{}
	for _, item := range asList(v) {
		switch t := item.(type) {
		case map[string]any:
			risks = append(risks, trendscout.Risk{
				Risk:       asString(t["risk"]),
				Mitigation: asString(t["mitigation"]),
			})
		case string:
			risks = append(risks, trendscout.Risk{Risk: t})
		}
	}
	return risks
}

// coerceSources normalizes the citation list and enforces the date format:
// any sources[i].date not matching YYYY-MM-DD is rewritten to today.
func (r *Repairer) coerceSources(v any) []trendscout.Source {
	sources := []trendscout.Source{}
	for _, item := range asList(v) {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		date := asString(m["date"])
		if !isoDateRe.MatchString(date) {
			date = r.today()
		}
		sources = append(sources, trendscout.Source{
			URL:   asString(m["url"]),
			Title: asString(m["title"]),
			Date:  date,
		})
	}
	return sources
}

func (r *Repairer) today() string {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	return now().UTC().Format(dateLayout)
}

// asList normalizes a value into a list: lists pass through, a bare scalar
// becomes a one-element list, anything else is empty.
func asList(v any) []any {
	switch t := v.(type) {
	case []any:
		return t
	case nil:
		return nil
	default:
		return []any{t}
	}
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func asStringList(v any) []string {
	out := []string{}
	for _, item := range asList(v) {
		if s := asString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func asInt(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
