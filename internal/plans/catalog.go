package plans

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitplan/internal/nutrition"
)

var (
	//go:embed plans.toml
	plansToml string
	//go:embed guides.toml
	guidesToml string
)

var ErrGoalPlanMissing = errors.New("goal plan missing")

type Exercise struct {
	Name   string `json:"name" toml:"name"`
	Sets   string `json:"sets" toml:"sets"`
	Muscle string `json:"muscle" toml:"muscle"`
}

type WorkoutDay struct {
	Day       string     `json:"day" toml:"day"`
	Name      string     `json:"name" toml:"name"`
	Duration  string     `json:"duration" toml:"duration"`
	Calories  string     `json:"calories" toml:"calories"`
	Exercises []Exercise `json:"exercises" toml:"exercises"`
}

type GoalPlan struct {
	Goal     Goal                  `json:"goal" toml:"goal"`
	Workouts []WorkoutDay          `json:"workouts" toml:"workouts"`
	Meals    []nutrition.MealTime  `json:"meals" toml:"meals"`
	Macros   nutrition.DailyMacros `json:"macros" toml:"macros"`
}

type ExerciseGuide struct {
	Name        string   `json:"name" toml:"name"`
	YoutubeID   string   `json:"youtubeId" toml:"youtube_id"`
	Description string   `json:"description" toml:"description"`
	Tips        []string `json:"tips" toml:"tips"`
}

type Catalog struct {
	plans  map[Goal]GoalPlan
	guides map[string]ExerciseGuide
}

// LoadCatalog decodes the embedded plan and guide tables.
func LoadCatalog() (*Catalog, error) {
	return NewCatalog(plansToml, guidesToml)
}

func NewCatalog(plansData, guidesData string) (*Catalog, error) {
	var plansFile struct {
		Plans []GoalPlan `toml:"plans"`
	}
	if _, err := toml.Decode(plansData, &plansFile); err != nil {
		return nil, fmt.Errorf("decode plans: %w", err)
	}

	var guidesFile struct {
		Guides []ExerciseGuide `toml:"guides"`
	}
	if _, err := toml.Decode(guidesData, &guidesFile); err != nil {
		return nil, fmt.Errorf("decode guides: %w", err)
	}

	c := &Catalog{
		plans:  make(map[Goal]GoalPlan, len(plansFile.Plans)),
		guides: make(map[string]ExerciseGuide, len(guidesFile.Guides)),
	}
	for _, p := range plansFile.Plans {
		c.plans[p.Goal] = p
	}
	for _, g := range guidesFile.Guides {
		c.guides[guideKey(g.Name)] = g
	}

	for _, g := range AllGoals {
		if _, ok := c.plans[g]; !ok {
			return nil, fmt.Errorf("%s: %w", g, ErrGoalPlanMissing)
		}
	}

	log.Debugf("plans catalog loaded: %d plans, %d exercise guides", len(c.plans), len(c.guides))

	return c, nil
}

// Plan returns the plan for the goal, or the default plan for an unknown goal.
func (c *Catalog) Plan(goal Goal) GoalPlan {
	if p, ok := c.plans[goal]; ok {
		return p
	}
	return c.plans[DefaultGoal]
}

func (c *Catalog) Goals() []GoalInfo {
	infos := make([]GoalInfo, 0, len(AllGoals))
	for _, g := range AllGoals {
		infos = append(infos, g.Info())
	}
	return infos
}

// Guide lookup ignores case and surrounding whitespace.
func (c *Catalog) Guide(exerciseName string) (ExerciseGuide, bool) {
	g, ok := c.guides[guideKey(exerciseName)]
	return g, ok
}

func guideKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
