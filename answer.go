package trendscout

// Answer is the fixed-shape output of a query. Every field is required in
// the final payload; the repair stage guarantees the shape regardless of
// what the generation step produced. The plan key is literally "90_day_plan"
// in the wire format.
type Answer struct {
	Idea               string     `json:"idea"`
	LocalNiches        []Niche    `json:"local_niches"`
	NinetyDayPlan      []PlanWeek `json:"90_day_plan"`
	Risks              []Risk     `json:"risks"`
	UnitEconomicsNotes []string   `json:"unit_economics_notes"`
	Sources            []Source   `json:"sources"`
	Evidence           []string   `json:"evidence"`
}

// Niche is a local market opportunity and the reason it is timely.
type Niche struct {
	Name   string `json:"name"`
	WhyNow string `json:"why_now"`
}

// PlanWeek is one week of the execution plan. Weeks start at 1.
type PlanWeek struct {
	Week  int      `json:"week"`
	Tasks []string `json:"tasks"`
}

// Risk pairs a risk with its mitigation.
type Risk struct {
	Risk       string `json:"risk"`
	Mitigation string `json:"mitigation"`
}

// Source cites a corpus document backing the answer.
// Date is always formatted YYYY-MM-DD.
type Source struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Date  string `json:"date"`
}

// RefusalNotice is the fixed advisory returned when the evidence gate fails.
const RefusalNotice = "the corpus has no information on this question; " +
	"want a best-effort recommendation anyway? (not backed by data)"

// TimeoutNotice is the fixed advisory returned when the query budget expires.
const TimeoutNotice = "pipeline budget exhausted; insufficient data to produce a validated answer"

// EmptyAnswer returns an Answer with every field at its documented default.
// All list fields are non-nil so they marshal as [] rather than null.
func EmptyAnswer() Answer {
	return Answer{
		LocalNiches:        []Niche{},
		NinetyDayPlan:      []PlanWeek{},
		Risks:              []Risk{},
		UnitEconomicsNotes: []string{},
		Sources:            []Source{},
		Evidence:           []string{},
	}
}

// Refusal returns the fixed payload emitted when synthesis is refused for
// lack of independent evidence.
func Refusal() Answer {
	a := EmptyAnswer()
	a.Evidence = []string{RefusalNotice}
	return a
}

// TimeoutFallback returns the fixed payload emitted when the wall-clock
// budget around a query is exhausted.
func TimeoutFallback() Answer {
	a := EmptyAnswer()
	a.Evidence = []string{TimeoutNotice}
	return a
}
