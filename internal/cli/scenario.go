package cli

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/algokit/intervals"
)

// Scenario is the optional YAML input for demo commands. Each command reads
// only the field it needs; absent fields fall back to built-in demo data.
//
// Example:
//
//	records: [1, 3, 4, 2, 5, 2]
//	meetings:
//	  - {start: 9, end: 11}
//	  - {start: 10, end: 12}
//	activity: "abcabcbb"
//	source: '{"key": ["v1", "v2"]}'
type Scenario struct {
	Records  []int      `yaml:"records"`
	Meetings []timeSlot `yaml:"meetings"`
	Activity string     `yaml:"activity"`
	Source   string     `yaml:"source"`
}

// timeSlot is the YAML shape of one meeting interval.
type timeSlot struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// Intervals converts the scenario's meetings to the library's interval type.
func (s *Scenario) Intervals() []intervals.Interval {
	if len(s.Meetings) == 0 {
		return nil
	}
	ivs := make([]intervals.Interval, len(s.Meetings))
	for i, m := range s.Meetings {
		ivs[i] = intervals.Interval{Start: m.Start, End: m.End}
	}
	return ivs
}

// loadScenario parses the YAML file at path. An empty path yields an empty
// scenario, which makes every command use its built-in data.
func loadScenario(path string) (*Scenario, error) {
	if path == "" {
		return &Scenario{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return &sc, nil
}
