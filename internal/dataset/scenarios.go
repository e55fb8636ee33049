package dataset

import (
	"fmt"

	"github.com/mountainpath/nifty-dashboard/pkg/constants"
)

// Scenario defines one forward valuation path: earnings growth and P/E
// multiple assumptions for each projected fiscal year, with the probability
// the house view assigns to it.
type Scenario struct {
	Name           string                          `json:"name" validate:"required"`
	Description    string                          `json:"description" validate:"required"`
	Probability    float64                         `json:"probability" validate:"gt=0,lte=1"`
	EarningsGrowth [constants.ForwardYears]float64 `json:"earnings_growth" validate:"dive,gt=-100,lt=100"`
	PERatio        [constants.ForwardYears]float64 `json:"pe_ratio" validate:"dive,gt=0"`
	Color          string                          `json:"color" validate:"required,hexcolor"`
}

// Label renders the scenario name with its probability, e.g. "Base Case (50%)".
func (s Scenario) Label() string {
	return fmt.Sprintf("%s (%.0f%%)", s.Name, s.Probability*100)
}

var scenarioSet = []Scenario{
	{
		Name:           "Base Case",
		Description:    "Margin Resilience, Slow Revenue",
		Probability:    0.50,
		EarningsGrowth: [constants.ForwardYears]float64{5.5, 11.0, 12.5},
		PERatio:        [constants.ForwardYears]float64{25.0, 24.5, 24.0},
		Color:          "#FFA500",
	},
	{
		Name:           "Bear Case",
		Description:    "Margin Compression, Input Cost Spike",
		Probability:    0.25,
		EarningsGrowth: [constants.ForwardYears]float64{2.0, 5.0, 7.5},
		PERatio:        [constants.ForwardYears]float64{23.0, 22.0, 21.5},
		Color:          "#FF0000",
	},
	{
		Name:           "Bull Case",
		Description:    "Revenue Recovery + Margin Stability",
		Probability:    0.25,
		EarningsGrowth: [constants.ForwardYears]float64{9.0, 14.0, 15.5},
		PERatio:        [constants.ForwardYears]float64{25.5, 26.0, 26.5},
		Color:          "#00AA00",
	},
}

// Scenarios returns the scenario set. Callers receive a copy.
func Scenarios() []Scenario {
	return append([]Scenario(nil), scenarioSet...)
}

// FindScenario locates a scenario by name, accepting either the bare name or
// the probability-qualified label.
func FindScenario(scenarios []Scenario, name string) *Scenario {
	for i := range scenarios {
		if scenarios[i].Name == name || scenarios[i].Label() == name {
			return &scenarios[i]
		}
	}
	return nil
}
