package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/2beens/fitplan/internal/bmi"
	"github.com/2beens/fitplan/internal/nutrition"
	"github.com/2beens/fitplan/internal/plans"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
)

const usage = `usage:
  fitcli bmi   -height 175 -weight 70
  fitcli plan  -goal muscle-gain [-done 0:1,0:2] [-sets 0:1=4x8] [-i]
  fitcli water -toggle 0,1,2`

var errUsage = errors.New("usage")

func run(args []string, in io.Reader, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "bmi":
		return runBmi(args[1:], out)
	case "plan":
		return runPlan(args[1:], in, out)
	case "water":
		return runWater(args[1:], out)
	default:
		return errUsage
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func runBmi(args []string, out io.Writer) error {
	fs := newFlagSet("bmi")
	height := fs.String("height", "", "height in cm")
	weight := fs.String("weight", "", "weight in kg")
	verbose := fs.Bool("v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s", errUsage, err)
	}
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	heightCm, weightKg, err := bmi.ParseInput(*height, *weight)
	if err != nil {
		return err
	}
	res, err := bmi.Classify(heightCm, weightKg)
	if err != nil {
		return err
	}
	log.Debugf("bmi for %vcm / %vkg: %v", heightCm, weightKg, res.BMI)

	fmt.Fprintf(out, "BMI:       %s (%s)\n", res.Display(), res.Category)
	fmt.Fprintf(out, "Gauge:     %d%%\n", bmi.Round(bmi.GaugePercentage(res.BMI)))
	fmt.Fprintf(out, "Tip:       %s\n", res.Tip)
	fmt.Fprintf(out, "Calories:  sedentary %s | moderate %s | active %s\n",
		humanize.Comma(int64(res.Calories.Sedentary)),
		humanize.Comma(int64(res.Calories.Moderate)),
		humanize.Comma(int64(res.Calories.Active)),
	)
	return nil
}

// planView is the CLI counterpart of the plan screen: one selected goal
// and the workout tracker that belongs to it.
type planView struct {
	catalog *plans.Catalog
	goal    plans.Goal
	tracker *plans.Tracker
}

func newPlanView(catalog *plans.Catalog) *planView {
	return &planView{
		catalog: catalog,
		goal:    plans.DefaultGoal,
		tracker: plans.NewTracker(),
	}
}

// SelectGoal switches the plan and drops tracked progress when the goal changes.
func (v *planView) SelectGoal(id string) plans.Goal {
	goal := plans.ParseGoal(id)
	if goal != v.goal {
		v.tracker.Reset()
		v.goal = goal
	}
	return goal
}

func (v *planView) Plan() plans.GoalPlan {
	return v.catalog.Plan(v.goal)
}

// checkPair rejects day:exercise pairs that do not exist in the selected plan.
func (v *planView) checkPair(p [2]int) error {
	workouts := v.Plan().Workouts
	day, ex := p[0], p[1]
	if day < 0 || day >= len(workouts) {
		return fmt.Errorf("%w: day %d out of range, %s has %d days", errUsage, day, v.goal, len(workouts))
	}
	if ex < 0 || ex >= len(workouts[day].Exercises) {
		return fmt.Errorf("%w: exercise %d out of range, day %d has %d exercises", errUsage, ex, day, len(workouts[day].Exercises))
	}
	return nil
}

func (v *planView) markDone(raw string) error {
	pairs, err := parseDayExercisePairs(raw)
	if err != nil {
		return err
	}
	for _, p := range pairs {
		if err := v.checkPair(p); err != nil {
			return err
		}
	}
	for _, p := range pairs {
		v.tracker.Toggle(p[0], p[1])
	}
	return nil
}

func (v *planView) recordSets(raw string) error {
	actualSets, err := parseActualSets(raw)
	if err != nil {
		return err
	}
	for p := range actualSets {
		if err := v.checkPair(p); err != nil {
			return err
		}
	}
	for p, value := range actualSets {
		v.tracker.SetActualSets(p[0], p[1], value)
	}
	return nil
}

func (v *planView) selectGoalLogged(id string) {
	if goal := v.SelectGoal(id); string(goal) != id {
		log.Warnf("unknown goal [%s], showing [%s]", id, goal)
	}
}

func (v *planView) print(out io.Writer) {
	printPlan(out, v.goal.Info(), v.Plan(), v.tracker)
}

func runPlan(args []string, in io.Reader, out io.Writer) error {
	fs := newFlagSet("plan")
	goalID := fs.String("goal", string(plans.DefaultGoal), "goal id")
	done := fs.String("done", "", "completed exercises, as day:exercise pairs separated by commas")
	sets := fs.String("sets", "", "actual sets, as day:exercise=value pairs separated by commas")
	interactive := fs.Bool("i", false, "read goal/done/sets/show/quit commands from stdin")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s", errUsage, err)
	}

	catalog, err := plans.LoadCatalog()
	if err != nil {
		return fmt.Errorf("load plans catalog: %w", err)
	}

	view := newPlanView(catalog)
	view.selectGoalLogged(*goalID)
	if err := view.markDone(*done); err != nil {
		return err
	}
	if err := view.recordSets(*sets); err != nil {
		return err
	}

	view.print(out)
	if !*interactive || in == nil {
		return nil
	}
	return view.interact(in, out)
}

// interact runs one command per line until quit or end of input.
// Bad commands are reported and skipped.
func (v *planView) interact(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		cmd, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		arg = strings.TrimSpace(arg)

		var err error
		switch cmd {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "show":
			v.print(out)
		case "goal":
			v.selectGoalLogged(arg)
			v.print(out)
		case "done":
			err = v.markDone(arg)
		case "sets":
			err = v.recordSets(arg)
		default:
			err = fmt.Errorf("unknown command [%s], use goal, done, sets, show or quit", cmd)
		}

		if err != nil {
			fmt.Fprintf(out, "error: %s\n", strings.TrimPrefix(err.Error(), errUsage.Error()+": "))
		}
	}
	return scanner.Err()
}

func printPlan(out io.Writer, info plans.GoalInfo, plan plans.GoalPlan, tracker *plans.Tracker) {
	fmt.Fprintf(out, "%s: %s\n\n", info.Title, info.Description)

	for d, day := range plan.Workouts {
		fmt.Fprintf(out, "%s - %s (%s, %s kcal) [%d/%d done]\n",
			day.Day, day.Name, day.Duration, day.Calories,
			tracker.CompletedCount(d), len(day.Exercises),
		)
		for e, ex := range day.Exercises {
			state := tracker.State(d, e)
			mark := " "
			if state.Completed {
				mark = "x"
			}
			line := fmt.Sprintf("  [%s] %-20s %-8s %s", mark, ex.Name, ex.Sets, ex.Muscle)
			if state.ActualSets != "" {
				line += fmt.Sprintf(" (did %s)", state.ActualSets)
			}
			fmt.Fprintln(out, strings.TrimRight(line, " "))
		}
	}

	shares := nutrition.SharesFromMacros(plan.Macros)
	fmt.Fprintf(out, "\nDaily target: %s kcal | protein %s (%d%%) | carbs %s (%d%%) | fat %s (%d%%)\n",
		humanize.Comma(int64(plan.Macros.Calories)),
		plan.Macros.Protein, shares.ProteinPct,
		plan.Macros.Carbs, shares.CarbsPct,
		plan.Macros.Fat, shares.FatPct,
	)

	breakdown := nutrition.MealBreakdown(plan.Meals, plan.Macros.Calories)
	for _, b := range breakdown.Buckets {
		fmt.Fprintf(out, "  %-10s %6s kcal %3d%%\n", b.Label, humanize.Comma(int64(b.Calories)), bmi.Round(b.WidthPct))
	}
	fmt.Fprintf(out, "  %-10s %6s kcal\n", "Total", humanize.Comma(int64(breakdown.Total)))
}

func parseDayExercisePairs(raw string) ([][2]int, error) {
	var pairs [][2]int
	for _, item := range splitList(raw) {
		p, err := parseDayExercise(item)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

func parseActualSets(raw string) (map[[2]int]string, error) {
	res := map[[2]int]string{}
	for _, item := range splitList(raw) {
		key, value, ok := strings.Cut(item, "=")
		if !ok {
			return nil, fmt.Errorf("%w: sets entry [%s] must look like day:exercise=value", errUsage, item)
		}
		p, err := parseDayExercise(key)
		if err != nil {
			return nil, err
		}
		res[p] = strings.TrimSpace(value)
	}
	return res, nil
}

func parseDayExercise(raw string) ([2]int, error) {
	dayRaw, exRaw, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok {
		return [2]int{}, fmt.Errorf("%w: [%s] must look like day:exercise", errUsage, raw)
	}
	day, err := strconv.Atoi(dayRaw)
	if err != nil {
		return [2]int{}, fmt.Errorf("%w: day [%s]: %s", errUsage, dayRaw, err)
	}
	ex, err := strconv.Atoi(exRaw)
	if err != nil {
		return [2]int{}, fmt.Errorf("%w: exercise [%s]: %s", errUsage, exRaw, err)
	}
	return [2]int{day, ex}, nil
}

func runWater(args []string, out io.Writer) error {
	fs := newFlagSet("water")
	toggles := fs.String("toggle", "", "glass indexes to toggle, in order, separated by commas")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s", errUsage, err)
	}

	var water nutrition.WaterIntake
	for _, item := range splitList(*toggles) {
		i, err := strconv.Atoi(item)
		if err != nil {
			return fmt.Errorf("%w: glass [%s]: %s", errUsage, item, err)
		}
		water.Toggle(i)
	}

	glasses := make([]string, 0, nutrition.TotalGlasses)
	for i := 0; i < nutrition.TotalGlasses; i++ {
		if i < water.Filled() {
			glasses = append(glasses, "[x]")
		} else {
			glasses = append(glasses, "[ ]")
		}
	}
	fmt.Fprintf(out, "%s %d/%d (%d%%)\n", strings.Join(glasses, ""), water.Filled(), nutrition.TotalGlasses, water.Percentage())
	if water.GoalReached() {
		fmt.Fprintln(out, "Daily water goal reached!")
	}
	return nil
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
