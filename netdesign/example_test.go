package netdesign_test

import (
	"fmt"

	"github.com/katalvlaran/cityflow/netdesign"
)

// ExampleDesign plans two new roads under a budget, favouring the road to
// the hospital, then closes the remaining gap with an existing street.
func ExampleDesign() {
	cands := []netdesign.CandidateRoad{
		{From: "Maadi", To: "Hospital", BaseCost: 120, ConnectsFacility: true},
		{From: "Maadi", To: "Giza", BaseCost: 90},
		{From: "Giza", To: "Airport", BaseCost: 300},
	}
	existing := []netdesign.ExistingRoad{
		{From: "Giza", To: "Airport"},
	}

	res, err := netdesign.Design(cands, existing,
		netdesign.WithPriority(0.7, 0.8),
		netdesign.WithBudget(250),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range res.Edges() {
		fmt.Printf("%s-%s new=%v cost=%g\n", e.From, e.To, e.IsNew, e.Cost)
	}
	fmt.Println("total:", res.TotalNewCost, "completions:", res.CompletionCount)
	// Output:
	// Maadi-Hospital new=true cost=120
	// Maadi-Giza new=true cost=90
	// Giza-Airport new=false cost=1
	// total: 210 completions: 1
}
