package fluid

import "github.com/simukka/fluid-sketch/common"

// ChangeAction names what a click or a scheduled change does.
type ChangeAction string

const (
	ActionNone       ChangeAction = ""
	ActionRegenerate ChangeAction = "regenerate"
	ActionReset      ChangeAction = "reset"
	ActionAddNew     ChangeAction = "addnew"
)

// ClickActions are the values the onClick control offers.
var ClickActions = []string{string(ActionNone), string(ActionRegenerate), string(ActionReset), string(ActionAddNew)}

// ChangeActions are the values the onChange control offers.
var ChangeActions = []string{string(ActionNone), string(ActionRegenerate), string(ActionReset)}

// Scheduler spends the maxChanges budget: after a random delay it changes
// one view, then reschedules while budget remains.
type Scheduler struct {
	state  *State
	engine Engine
	synth  *Synthesizer
	rng    common.Random

	// Remaining is the number of changes still to run.
	Remaining int
	started   bool
}

// NewScheduler creates an idle scheduler.
func NewScheduler(state *State, engine Engine, synth *Synthesizer, rng common.Random) *Scheduler {
	return &Scheduler{state: state, engine: engine, synth: synth, rng: rng}
}

// Start arms the first change. It does nothing when maxChanges is absent or
// not positive, or when already started.
func (s *Scheduler) Start() {
	opts := s.state.Options
	if s.started || !opts.Has(FieldMaxChanges) || opts.MaxChanges <= 0 {
		return
	}
	s.started = true
	s.Remaining = opts.MaxChanges
	s.next()
}

func (s *Scheduler) next() {
	delay := s.rng.Uniform(ChangeDelayMin, ChangeDelayMax)
	s.engine.AfterFunc(delay, s.fire)
}

func (s *Scheduler) fire() {
	if s.Remaining <= 0 {
		return
	}
	s.Remaining--

	action := ActionRegenerate
	if s.state.Options.Has(FieldOnChange) {
		action = ChangeAction(s.state.Options.OnChange)
	}
	switch action {
	case ActionRegenerate:
		if n := len(s.state.Views); n > 0 {
			i := s.rng.Intn(n)
			sub := s.synth.InitView(s.state, i, s.state.Views[i])
			s.engine.UpdateView(i, s.state.Views[i])
			Debug("scheduled change: view", i, "now", string(sub))
		}
	case ActionReset:
		s.engine.ResetLayers()
	}

	if s.Remaining > 0 {
		s.next()
	}
}
