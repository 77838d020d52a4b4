package extraction

// Task is one action item extracted from meeting notes.
// Title is always set; the other fields are empty when nothing was inferred.
type Task struct {
	Title    string `json:"title"`
	Assignee string `json:"assignee,omitempty"`
	Due      string `json:"due,omitempty"`
	Priority string `json:"priority,omitempty"`
}

// Result is what every extraction strategy returns.
type Result struct {
	Tasks    []Task `json:"tasks"`
	FollowUp string `json:"followUp"`
}

// Strategy names an extraction implementation.
type Strategy string

const (
	StrategyAuto      Strategy = "auto"
	StrategyHeuristic Strategy = "heuristic"
	StrategyModel     Strategy = "model"
)

// ParseStrategy maps a config or flag value to a Strategy. Empty means auto.
func ParseStrategy(s string) (Strategy, bool) {
	switch Strategy(s) {
	case "", StrategyAuto:
		return StrategyAuto, true
	case StrategyHeuristic:
		return StrategyHeuristic, true
	case StrategyModel:
		return StrategyModel, true
	default:
		return "", false
	}
}

// --- UseCase Inputs ---

type ExtractInput struct {
	Text string
}
