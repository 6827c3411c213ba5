package signals_test

import (
	"fmt"

	"github.com/katalvlaran/cityflow/core"
	"github.com/katalvlaran/cityflow/signals"
	"github.com/katalvlaran/cityflow/traffic"
)

// ExampleCompute shows an ambulance from the south pre-empting the busier
// eastbound approach during the morning peak.
func ExampleCompute() {
	coords := map[string]core.Point{
		"Tahrir": {X: 31.235, Y: 30.044},
		"Garden": {X: 31.235, Y: 30.030}, // south of Tahrir
		"Opera":  {X: 31.224, Y: 30.044}, // west of Tahrir
	}
	flows := []signals.Flow{
		{From: "Garden", To: "Tahrir", Volumes: map[traffic.Period]float64{traffic.Morning: 10, traffic.Night: 5}},
		{From: "Opera", To: "Tahrir", Volumes: map[traffic.Period]float64{traffic.Morning: 40, traffic.Night: 2}},
	}
	emergencies := []signals.EmergencyRecord{{From: "Garden", To: "Tahrir", Period: traffic.Morning}}

	out, err := signals.Compute(flows, coords, emergencies)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, ph := range out[0].Phases {
		fmt.Println(out[0].Intersection, ph.Period, ph.Priority, ph.Emergency)
	}
	// Output:
	// Tahrir morning north true
	// Tahrir afternoon unknown false
	// Tahrir evening unknown false
	// Tahrir night north false
}
