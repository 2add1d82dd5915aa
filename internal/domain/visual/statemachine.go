package visual

import (
	"encoding/json"

	apperr "github.com/antaresengine/antares/internal/errors"
)

// equalEpsilon is the tolerance for Equal transition conditions.
const equalEpsilon = 1e-3

// ConditionKind discriminates transition conditions.
type ConditionKind string

const (
	CondAlways      ConditionKind = "always"
	CondGreaterThan ConditionKind = "greater_than"
	CondLessThan    ConditionKind = "less_than"
	CondEqual       ConditionKind = "equal"
	CondInRange     ConditionKind = "in_range"
	CondAnd         ConditionKind = "and"
	CondOr          ConditionKind = "or"
	CondNot         ConditionKind = "not"
)

// ThresholdCondition compares one parameter against a threshold or value.
type ThresholdCondition struct {
	Parameter string  `json:"parameter"`
	Value     float32 `json:"value"`
}

// RangeCondition requires a parameter inside [Min, Max] inclusive.
type RangeCondition struct {
	Parameter string  `json:"parameter"`
	Min       float32 `json:"min"`
	Max       float32 `json:"max"`
}

// TransitionCondition gates a state transition on runtime parameters.
// Exactly one payload field matches Kind; And/Or/Not nest arbitrarily.
type TransitionCondition struct {
	Kind ConditionKind `json:"-"`

	Threshold *ThresholdCondition `json:"-"`
	Range     *RangeCondition     `json:"-"`

	// Children holds the operands of And/Or.
	Children []TransitionCondition `json:"-"`

	// Negated holds the operand of Not.
	Negated *TransitionCondition `json:"-"`
}

// Always returns a condition that always fires.
func Always() TransitionCondition {
	return TransitionCondition{Kind: CondAlways}
}

// GreaterThan fires when the parameter exceeds the threshold.
func GreaterThan(parameter string, threshold float32) TransitionCondition {
	return TransitionCondition{Kind: CondGreaterThan, Threshold: &ThresholdCondition{Parameter: parameter, Value: threshold}}
}

// LessThan fires when the parameter is below the threshold.
func LessThan(parameter string, threshold float32) TransitionCondition {
	return TransitionCondition{Kind: CondLessThan, Threshold: &ThresholdCondition{Parameter: parameter, Value: threshold}}
}

// Equal fires when the parameter matches the value within a small epsilon.
func Equal(parameter string, value float32) TransitionCondition {
	return TransitionCondition{Kind: CondEqual, Threshold: &ThresholdCondition{Parameter: parameter, Value: value}}
}

// InRange fires when the parameter lies in [min, max].
func InRange(parameter string, min, max float32) TransitionCondition {
	return TransitionCondition{Kind: CondInRange, Range: &RangeCondition{Parameter: parameter, Min: min, Max: max}}
}

// And fires when every child fires.
func And(children ...TransitionCondition) TransitionCondition {
	return TransitionCondition{Kind: CondAnd, Children: children}
}

// Or fires when any child fires.
func Or(children ...TransitionCondition) TransitionCondition {
	return TransitionCondition{Kind: CondOr, Children: children}
}

// Not inverts a condition.
func Not(condition TransitionCondition) TransitionCondition {
	return TransitionCondition{Kind: CondNot, Negated: &condition}
}

// Evaluate tests the condition against parameter values. Evaluation is
// total: a missing parameter fails every comparison.
func (c TransitionCondition) Evaluate(parameters map[string]float32) bool {
	switch c.Kind {
	case CondAlways:
		return true
	case CondGreaterThan:
		value, ok := parameters[c.Threshold.Parameter]
		return ok && value > c.Threshold.Value
	case CondLessThan:
		value, ok := parameters[c.Threshold.Parameter]
		return ok && value < c.Threshold.Value
	case CondEqual:
		value, ok := parameters[c.Threshold.Parameter]
		if !ok {
			return false
		}
		diff := value - c.Threshold.Value
		if diff < 0 {
			diff = -diff
		}
		return diff < equalEpsilon
	case CondInRange:
		value, ok := parameters[c.Range.Parameter]
		return ok && value >= c.Range.Min && value <= c.Range.Max
	case CondAnd:
		for _, child := range c.Children {
			if !child.Evaluate(parameters) {
				return false
			}
		}
		return true
	case CondOr:
		for _, child := range c.Children {
			if child.Evaluate(parameters) {
				return true
			}
		}
		return false
	case CondNot:
		return !c.Negated.Evaluate(parameters)
	}
	return false
}

type conditionEnvelope struct {
	Type ConditionKind   `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// MarshalJSON emits the type/data envelope.
func (c TransitionCondition) MarshalJSON() ([]byte, error) {
	var payload any
	switch c.Kind {
	case CondAlways:
		return json.Marshal(conditionEnvelope{Type: c.Kind})
	case CondGreaterThan, CondLessThan, CondEqual:
		payload = c.Threshold
	case CondInRange:
		payload = c.Range
	case CondAnd, CondOr:
		payload = c.Children
	case CondNot:
		payload = c.Negated
	default:
		return nil, apperr.Validationf("unknown condition kind %q", c.Kind)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(conditionEnvelope{Type: c.Kind, Data: data})
}

// UnmarshalJSON parses the type/data envelope into the matching payload.
func (c *TransitionCondition) UnmarshalJSON(data []byte) error {
	var env conditionEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	*c = TransitionCondition{Kind: env.Type}
	switch env.Type {
	case CondAlways:
		return nil
	case CondGreaterThan, CondLessThan, CondEqual:
		c.Threshold = &ThresholdCondition{}
		return json.Unmarshal(env.Data, c.Threshold)
	case CondInRange:
		c.Range = &RangeCondition{}
		return json.Unmarshal(env.Data, c.Range)
	case CondAnd, CondOr:
		return json.Unmarshal(env.Data, &c.Children)
	case CondNot:
		c.Negated = &TransitionCondition{}
		return json.Unmarshal(env.Data, c.Negated)
	default:
		return apperr.ParseErrorf("unknown condition kind %q", env.Type)
	}
}

// Transition moves the state machine from one state to another when its
// condition holds. Duration is the crossfade time in seconds.
type Transition struct {
	From      string              `json:"from"`
	To        string              `json:"to"`
	Condition TransitionCondition `json:"condition"`
	Duration  float32             `json:"duration"`
}

// AnimationState pairs a state name with the blend tree that drives it.
type AnimationState struct {
	Name      string    `json:"name"`
	BlendTree BlendNode `json:"blend_tree"`
}

// AnimationStateMachine drives state selection for one animated entity.
// Transitions are evaluated in declared order; the first whose source
// matches the current state and whose condition holds fires.
type AnimationStateMachine struct {
	Name         string                    `json:"name"`
	States       map[string]AnimationState `json:"states"`
	Transitions  []Transition              `json:"transitions"`
	CurrentState string                    `json:"current_state"`
	Parameters   map[string]float32        `json:"parameters,omitempty"`
}

// NewStateMachine creates an empty state machine.
func NewStateMachine(name string) *AnimationStateMachine {
	return &AnimationStateMachine{
		Name:       name,
		States:     make(map[string]AnimationState),
		Parameters: make(map[string]float32),
	}
}

// AddState registers a state, keyed by its name.
func (sm *AnimationStateMachine) AddState(state AnimationState) {
	if sm.States == nil {
		sm.States = make(map[string]AnimationState)
	}
	sm.States[state.Name] = state
}

// AddTransition appends a transition. Declared order is evaluation order.
func (sm *AnimationStateMachine) AddTransition(transition Transition) {
	sm.Transitions = append(sm.Transitions, transition)
}

// SetParameter sets a runtime parameter for condition evaluation.
func (sm *AnimationStateMachine) SetParameter(name string, value float32) {
	if sm.Parameters == nil {
		sm.Parameters = make(map[string]float32)
	}
	sm.Parameters[name] = value
}

// SetCurrentState forces the active state.
func (sm *AnimationStateMachine) SetCurrentState(name string) {
	sm.CurrentState = name
}

// Update fires the first matching transition from the current state and
// returns a copy of it, or nil when no transition matches.
func (sm *AnimationStateMachine) Update() *Transition {
	for i := range sm.Transitions {
		transition := &sm.Transitions[i]
		if transition.From == sm.CurrentState && transition.Condition.Evaluate(sm.Parameters) {
			sm.CurrentState = transition.To
			fired := *transition
			return &fired
		}
	}
	return nil
}

// Validate checks the machine has states, the current state exists when
// set, and every transition endpoint resolves.
func (sm *AnimationStateMachine) Validate() error {
	if len(sm.States) == 0 {
		return apperr.Validation("state machine has no states")
	}
	if sm.CurrentState != "" {
		if _, ok := sm.States[sm.CurrentState]; !ok {
			return apperr.Validationf("current state %q does not exist", sm.CurrentState)
		}
	}
	for _, transition := range sm.Transitions {
		if _, ok := sm.States[transition.From]; !ok {
			return apperr.Validationf("transition references missing state %q", transition.From)
		}
		if _, ok := sm.States[transition.To]; !ok {
			return apperr.Validationf("transition references missing state %q", transition.To)
		}
	}
	return nil
}
