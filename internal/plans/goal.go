package plans

type Goal string

const (
	WeightLoss  Goal = "weight-loss"
	MuscleGain  Goal = "muscle-gain"
	Endurance   Goal = "endurance"
	Maintenance Goal = "maintenance"

	DefaultGoal = Maintenance
)

// AllGoals is in display order.
var AllGoals = []Goal{WeightLoss, MuscleGain, Endurance, Maintenance}

type GoalInfo struct {
	ID          Goal   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var goalInfos = map[Goal]GoalInfo{
	WeightLoss:  {ID: WeightLoss, Title: "Weight Loss", Description: "Burn fat and get lean"},
	MuscleGain:  {ID: MuscleGain, Title: "Muscle Gain", Description: "Build strength and mass"},
	Endurance:   {ID: Endurance, Title: "Endurance", Description: "Boost stamina and cardio"},
	Maintenance: {ID: Maintenance, Title: "Maintenance", Description: "Stay fit and healthy"},
}

// ParseGoal falls back to the maintenance plan for empty or unknown ids.
func ParseGoal(id string) Goal {
	g := Goal(id)
	if _, ok := goalInfos[g]; ok {
		return g
	}
	return DefaultGoal
}

func (g Goal) Info() GoalInfo {
	return goalInfos[g]
}
