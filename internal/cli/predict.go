package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/terraincognita07/gloww/internal/services"
)

// PrintForecast writes the next-period prediction and the current phase in a
// human readable form. Missing history is reported, not returned as an error.
func PrintForecast(wellness *services.WellnessService, now time.Time, out io.Writer) error {
	prediction, err := wellness.Prediction(now)
	switch {
	case err == nil:
		fmt.Fprintf(out, "Next period:     %s (in %d days)\n", services.FormatISODate(prediction.NextPeriodDate), prediction.DaysUntilPeriod)
		fmt.Fprintf(out, "Next ovulation:  %s (in %d days)\n", services.FormatISODate(prediction.NextOvulationDate), prediction.DaysUntilOvulation)
		fmt.Fprintf(out, "Average cycle:   %d days, period %d days\n", prediction.AverageCycleLength, prediction.AverageDuration)
		fmt.Fprintf(out, "Confidence:      %d%% (%s)\n", prediction.Confidence, regularityLabel(prediction.IsRegular))
	case errors.Is(err, services.ErrInsufficientData):
		fmt.Fprintln(out, "Next period:     log at least two periods to get a prediction")
	default:
		return err
	}

	phase, err := wellness.CurrentPhase(now)
	switch {
	case err == nil:
		fmt.Fprintf(out, "Current phase:   %s, day %d of %d\n", phase.Name, phase.CycleDay, phase.CycleLength)
		if len(phase.Recommendations) > 0 {
			fmt.Fprintf(out, "Try:             %s\n", strings.Join(phase.Recommendations, "; "))
		}
	case errors.Is(err, services.ErrNoPeriodHistory):
		fmt.Fprintln(out, "Current phase:   no period logged yet")
	default:
		return err
	}
	return nil
}

func regularityLabel(regular bool) string {
	if regular {
		return "regular"
	}
	return "irregular"
}
