// ABOUTME: Medication adherence calculation over a scoped record set.
// ABOUTME: Percent is defined as 0.0 when no records exist, never an error.
package insights

import "github.com/avakker/carelog/internal/models"

// Adherence summarizes taken/total medications as a percentage.
type Adherence struct {
	Taken   int
	Total   int
	Percent float64 // always within [0,100]
}

// ComputeAdherence counts taken medications in the given set.
// An empty set yields Percent 0.0 exactly; the recommendation rules
// rely on that to branch into "no schedule found" instead of reading
// an empty schedule as perfect adherence.
func ComputeAdherence(meds []*models.Medication) Adherence {
	a := Adherence{Total: len(meds)}
	for _, m := range meds {
		if m.Taken {
			a.Taken++
		}
	}
	if a.Total > 0 {
		a.Percent = float64(a.Taken) / float64(a.Total) * 100
	}
	return a
}
