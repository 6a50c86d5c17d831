package nutrition

import "github.com/2beens/fitplan/internal/bmi"

const TotalGlasses = 8

// WaterIntake tracks filled glasses for a single view, it is never persisted.
type WaterIntake struct {
	filled int
}

// Toggle fills glasses up to and including index i,
// or empties glass i when it is the last filled one.
func (w *WaterIntake) Toggle(i int) {
	if i < 0 || i >= TotalGlasses {
		return
	}
	if i+1 == w.filled {
		w.filled = i
	} else {
		w.filled = i + 1
	}
}

func (w *WaterIntake) Filled() int {
	return w.filled
}

func (w *WaterIntake) Percentage() int {
	return bmi.Round(float64(w.filled) / TotalGlasses * 100)
}

func (w *WaterIntake) GoalReached() bool {
	return w.Percentage() == 100
}
