package fitness

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/2beens/fitplan/internal/bmi"
	"github.com/2beens/fitplan/internal/nutrition"
	"github.com/2beens/fitplan/internal/plans"

	"github.com/dustin/go-humanize"
)

const youtubeEmbedBaseURL = "https://www.youtube.com/embed/"

type CaloriesDisplay struct {
	Sedentary string `json:"sedentary"`
	Moderate  string `json:"moderate"`
	Active    string `json:"active"`
}

type BmiResponse struct {
	BMI             float64         `json:"bmi"`
	BMIDisplay      string          `json:"bmiDisplay"`
	Category        bmi.Category    `json:"category"`
	Tip             string          `json:"tip"`
	Calories        bmi.Calories    `json:"calories"`
	CaloriesDisplay CaloriesDisplay `json:"caloriesDisplay"`
	GaugePercentage float64         `json:"gaugePercentage"`
}

func NewBmiResponse(res bmi.Result) BmiResponse {
	return BmiResponse{
		BMI:             res.BMI,
		BMIDisplay:      res.Display(),
		Category:        res.Category,
		Tip:             res.Tip,
		Calories:        res.Calories,
		CaloriesDisplay: NewCaloriesDisplay(res.Calories),
		GaugePercentage: bmi.GaugePercentage(res.BMI),
	}
}

// NewCaloriesDisplay formats each estimate with thousands separators, e.g. "2,594".
func NewCaloriesDisplay(c bmi.Calories) CaloriesDisplay {
	return CaloriesDisplay{
		Sedentary: humanize.Comma(int64(c.Sedentary)),
		Moderate:  humanize.Comma(int64(c.Moderate)),
		Active:    humanize.Comma(int64(c.Active)),
	}
}

type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

type PlanResponse struct {
	Goal plans.GoalInfo `json:"goal"`
	Plan plans.GoalPlan `json:"plan"`
}

type NutritionResponse struct {
	Goal               plans.GoalInfo                `json:"goal"`
	Macros             nutrition.DailyMacros         `json:"macros"`
	Shares             nutrition.Shares              `json:"shares"`
	Breakdown          nutrition.MealBreakdownResult `json:"breakdown"`
	DailyTargetDisplay string                        `json:"dailyTargetDisplay"`
	TotalDisplay       string                        `json:"totalDisplay"`
}

func NewNutritionResponse(plan plans.GoalPlan) NutritionResponse {
	breakdown := nutrition.MealBreakdown(plan.Meals, plan.Macros.Calories)
	return NutritionResponse{
		Goal:               plan.Goal.Info(),
		Macros:             plan.Macros,
		Shares:             nutrition.SharesFromMacros(plan.Macros),
		Breakdown:          breakdown,
		DailyTargetDisplay: humanize.Comma(int64(breakdown.DailyTarget)),
		TotalDisplay:       humanize.Comma(int64(breakdown.Total)),
	}
}

type GuideResponse struct {
	plans.ExerciseGuide
	EmbedURL string `json:"embedUrl"`
}

func NewGuideResponse(g plans.ExerciseGuide) GuideResponse {
	return GuideResponse{
		ExerciseGuide: g,
		EmbedURL:      youtubeEmbedBaseURL + g.YoutubeID,
	}
}

// bmiRequest accepts height and weight as JSON numbers or numeric strings.
type bmiRequest struct {
	Height flexValue `json:"height"`
	Weight flexValue `json:"weight"`
}

type flexValue string

func (v *flexValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*v = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			return err
		}
		*v = flexValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*v = flexValue(n.String())
	return nil
}
