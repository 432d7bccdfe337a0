// ABOUTME: Rule-based recommendation engine over aggregates and adherence.
// ABOUTME: Fixed rule order and fixed thresholds; output is advice strings.
package insights

import (
	"fmt"
	"time"

	"github.com/avakker/carelog/internal/models"
)

// Policy thresholds. Fixed by design; changing them changes advice for
// existing data, so they are deliberately not end-user configuration.
const (
	// Steps rule fires when the 7-day average is strictly below this
	// fraction of the daily share of the weekly target.
	stepShortfallFactor = 0.8
	// Calories rule fires when the 7-day average is strictly above
	// this multiple of the daily target.
	calorieExcessFactor = 1.1
	// Adherence at or above this percentage counts as good.
	goodAdherencePct = 80.0
)

// Recommendations produces advice strings for one person, in fixed rule
// order: steps, calories, medication, then a fallback when nothing else
// applied. The steps and calories rules are skipped entirely when the
// person has no metric records.
func Recommendations(person string, metrics []*models.Metric, meds []*models.Medication, goals models.Goals, today time.Time) []string {
	var recs []string

	if len(metrics) > 0 {
		avg := Rolling7Day(metrics, today)

		dailyShare := float64(goals.WeeklyStepsTarget) / 7
		if avg.Steps < dailyShare*stepShortfallFactor {
			recs = append(recs, fmt.Sprintf(
				"Average daily steps for %s are below the weekly target. Consider adding a short walk or light activity to the routine.",
				person))
		} else {
			recs = append(recs, fmt.Sprintf(
				"%s is close to or meeting the step goal. Maintain regular activity to keep this trend.",
				person))
		}

		if avg.Calories > float64(goals.DailyCaloriesTarget)*calorieExcessFactor {
			recs = append(recs, fmt.Sprintf(
				"Average daily calories for %s exceed the target. Review diet, reduce sugary drinks and high-fat snacks.",
				person))
		} else {
			recs = append(recs, fmt.Sprintf(
				"Calorie intake for %s is within the expected range. Continue balanced meals.",
				person))
		}
	}

	adh := ComputeAdherence(meds)
	switch {
	case adh.Total == 0:
		recs = append(recs, fmt.Sprintf(
			"No medication schedule found for %s. If medications are prescribed, please add them to the tracker.",
			person))
	case adh.Percent < goodAdherencePct:
		recs = append(recs, fmt.Sprintf(
			"Medication adherence for %s is around %.1f%%. Set reminders and keep medicines in a visible place to avoid missing doses.",
			person, adh.Percent))
	default:
		recs = append(recs, fmt.Sprintf(
			"%s has good medication adherence (~%.1f%%). Continue the current reminder strategy.",
			person, adh.Percent))
	}

	if len(recs) == 0 {
		recs = append(recs, "Not enough data yet. Please add health metrics and medications.")
	}
	return recs
}
