package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Starship:
		o.printStarship(v)
	case StarshipList:
		o.printStarshipList(v)
	case Comparison:
		o.printComparison(v)
	case RollResult:
		o.printRolls(v.Rolls)
	case RollList:
		o.printRolls(v.Rolls)
	case HealthResult:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Starship response type (matches API)
type Starship struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Prefix   *string `json:"prefix"`
	FullName string  `json:"full_name"`
}

// StarshipList response type
type StarshipList struct {
	Starships []Starship `json:"starships"`
}

// Comparison response type
type Comparison struct {
	Equal         bool   `json:"equal"`
	LeftFullName  string `json:"left_full_name"`
	RightFullName string `json:"right_full_name"`
}

// Roll response type
type Roll struct {
	ID    string `json:"id"`
	Sides int    `json:"sides"`
	Value int    `json:"value"`
}

// RollResult response type
type RollResult struct {
	Sides int    `json:"sides"`
	Rolls []Roll `json:"rolls"`
}

// RollList response type
type RollList struct {
	Rolls []Roll `json:"rolls"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printStarship(s Starship) {
	fmt.Fprintf(o.w, "%s (%s)\n", s.FullName, s.ID)
}

func (o *Output) printStarshipList(l StarshipList) {
	if len(l.Starships) == 0 {
		fmt.Fprintln(o.w, "No starships registered")
		return
	}
	for _, s := range l.Starships {
		o.printStarship(s)
	}
}

func (o *Output) printComparison(c Comparison) {
	if c.Equal {
		fmt.Fprintf(o.w, "Same Starship! (%s)\n", c.LeftFullName)
		return
	}
	fmt.Fprintf(o.w, "Different starships: %s / %s\n", c.LeftFullName, c.RightFullName)
}

func (o *Output) printRolls(rolls []Roll) {
	if len(rolls) == 0 {
		fmt.Fprintln(o.w, "No rolls")
		return
	}
	for _, r := range rolls {
		fmt.Fprintf(o.w, "d%d: %d\n", r.Sides, r.Value)
	}
}
