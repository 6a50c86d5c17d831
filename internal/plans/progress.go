package plans

type Stat struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Icon   string `json:"icon"`
}

type DayProgress struct {
	Day       string `json:"day"`
	Completed bool   `json:"completed"`
	Intensity int    `json:"intensity"`
}

type ProgressStats struct {
	Stats []Stat        `json:"stats"`
	Week  []DayProgress `json:"week"`
}

// Progress returns the showcase statistics, they are static and not tied to any user.
func Progress() ProgressStats {
	return ProgressStats{
		Stats: []Stat{
			{Label: "Workouts Completed", Value: "24", Change: "+8 this week", Icon: "target"},
			{Label: "Calories Burned", Value: "12,450", Change: "+2,100 this week", Icon: "trending-up"},
			{Label: "Current Streak", Value: "7 days", Change: "Personal best!", Icon: "award"},
			{Label: "Plan Adherence", Value: "94%", Change: "+5% from last week", Icon: "calendar"},
		},
		Week: []DayProgress{
			{Day: "Mon", Completed: true, Intensity: 85},
			{Day: "Tue", Completed: true, Intensity: 70},
			{Day: "Wed", Completed: true, Intensity: 40},
			{Day: "Thu", Completed: true, Intensity: 90},
			{Day: "Fri", Completed: true, Intensity: 75},
			{Day: "Sat", Completed: true, Intensity: 60},
			{Day: "Sun", Completed: true, Intensity: 55},
		},
	}
}
