package plans

type ExerciseState struct {
	Completed  bool   `json:"completed"`
	ActualSets string `json:"actualSets"`
}

type exerciseKey struct {
	day      int
	exercise int
}

// Tracker holds workout completion for one view of a plan.
// It is not safe for concurrent use and is never persisted.
type Tracker struct {
	states map[exerciseKey]ExerciseState
}

func NewTracker() *Tracker {
	return &Tracker{
		states: make(map[exerciseKey]ExerciseState),
	}
}

func (t *Tracker) State(day, exercise int) ExerciseState {
	return t.states[exerciseKey{day, exercise}]
}

func (t *Tracker) Toggle(day, exercise int) {
	k := exerciseKey{day, exercise}
	s := t.states[k]
	s.Completed = !s.Completed
	t.states[k] = s
}

func (t *Tracker) SetActualSets(day, exercise int, value string) {
	k := exerciseKey{day, exercise}
	s := t.states[k]
	s.ActualSets = value
	t.states[k] = s
}

func (t *Tracker) CompletedCount(day int) int {
	count := 0
	for k, s := range t.states {
		if k.day == day && s.Completed {
			count++
		}
	}
	return count
}

// Reset is called when the selected goal changes.
func (t *Tracker) Reset() {
	t.states = make(map[exerciseKey]ExerciseState)
}
