package visual_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antaresengine/antares/internal/domain/visual"
)

func TestTransitionCondition_Evaluate(t *testing.T) {
	params := map[string]float32{
		"speed":  3.5,
		"health": 0.0,
	}

	tests := []struct {
		name      string
		condition visual.TransitionCondition
		want      bool
	}{
		{"always fires", visual.Always(), true},
		{"greater than below", visual.GreaterThan("speed", 5), false},
		{"greater than above", visual.GreaterThan("speed", 2), true},
		{"greater than missing parameter", visual.GreaterThan("stamina", 0), false},
		{"less than", visual.LessThan("speed", 5), true},
		{"less than missing parameter", visual.LessThan("stamina", 100), false},
		{"equal exact", visual.Equal("health", 0), true},
		{"equal within epsilon", visual.Equal("speed", 3.5005), true},
		{"equal outside epsilon", visual.Equal("speed", 3.6), false},
		{"equal missing parameter", visual.Equal("stamina", 0), false},
		{"in range inclusive bounds", visual.InRange("speed", 3.5, 10), true},
		{"in range outside", visual.InRange("speed", 4, 10), false},
		{"in range missing parameter", visual.InRange("stamina", 0, 1), false},
		{"and all hold", visual.And(visual.GreaterThan("speed", 2), visual.Equal("health", 0)), true},
		{"and one fails", visual.And(visual.GreaterThan("speed", 2), visual.GreaterThan("health", 1)), false},
		{"or one holds", visual.Or(visual.GreaterThan("speed", 100), visual.Equal("health", 0)), true},
		{"or none hold", visual.Or(visual.GreaterThan("speed", 100), visual.GreaterThan("health", 1)), false},
		{"not inverts", visual.Not(visual.GreaterThan("speed", 100)), true},
		{"nested not over and", visual.Not(visual.And(visual.Always(), visual.LessThan("speed", 1))), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.condition.Evaluate(params))
		})
	}
}

func TestTransitionCondition_JSONRoundTrip(t *testing.T) {
	conditions := []visual.TransitionCondition{
		visual.Always(),
		visual.GreaterThan("speed", 0.5),
		visual.LessThan("speed", 0.1),
		visual.Equal("grounded", 1),
		visual.InRange("speed", 0.5, 3),
		visual.And(visual.GreaterThan("speed", 1), visual.Not(visual.Equal("falling", 1))),
		visual.Or(visual.Always(), visual.InRange("health", 0, 0.25)),
	}

	for _, original := range conditions {
		t.Run(string(original.Kind), func(t *testing.T) {
			data, err := json.Marshal(original)
			require.NoError(t, err)

			var decoded visual.TransitionCondition
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, original, decoded)
		})
	}
}

func TestTransitionCondition_UnmarshalUnknownKind(t *testing.T) {
	var decoded visual.TransitionCondition
	err := json.Unmarshal([]byte(`{"type":"sometimes"}`), &decoded)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown condition kind")
}

func locomotionMachine() *visual.AnimationStateMachine {
	sm := visual.NewStateMachine("locomotion")
	sm.AddState(visual.AnimationState{Name: "idle", BlendTree: visual.ClipNode("idle", 1)})
	sm.AddState(visual.AnimationState{Name: "walk", BlendTree: visual.ClipNode("walk", 1)})
	sm.AddState(visual.AnimationState{Name: "run", BlendTree: visual.ClipNode("run", 1)})
	sm.AddTransition(visual.Transition{
		From: "idle", To: "walk",
		Condition: visual.GreaterThan("speed", 0.1), Duration: 0.2,
	})
	sm.AddTransition(visual.Transition{
		From: "walk", To: "run",
		Condition: visual.GreaterThan("speed", 3), Duration: 0.15,
	})
	sm.AddTransition(visual.Transition{
		From: "walk", To: "idle",
		Condition: visual.LessThan("speed", 0.1), Duration: 0.3,
	})
	sm.SetCurrentState("idle")
	return sm
}

func TestAnimationStateMachine_Update(t *testing.T) {
	t.Run("no transition without parameters", func(t *testing.T) {
		sm := locomotionMachine()
		assert.Nil(t, sm.Update())
		assert.Equal(t, "idle", sm.CurrentState)
	})

	t.Run("fires matching transition", func(t *testing.T) {
		sm := locomotionMachine()
		sm.SetParameter("speed", 2)

		fired := sm.Update()
		require.NotNil(t, fired)
		assert.Equal(t, "walk", fired.To)
		assert.InDelta(t, 0.2, fired.Duration, 1e-6)
		assert.Equal(t, "walk", sm.CurrentState)
	})

	t.Run("one transition per update", func(t *testing.T) {
		sm := locomotionMachine()
		sm.SetParameter("speed", 5)

		first := sm.Update()
		require.NotNil(t, first)
		assert.Equal(t, "walk", first.To)

		second := sm.Update()
		require.NotNil(t, second)
		assert.Equal(t, "run", second.To)

		assert.Nil(t, sm.Update())
	})

	t.Run("first declared match wins", func(t *testing.T) {
		sm := visual.NewStateMachine("contested")
		sm.AddState(visual.AnimationState{Name: "a", BlendTree: visual.ClipNode("a", 1)})
		sm.AddState(visual.AnimationState{Name: "b", BlendTree: visual.ClipNode("b", 1)})
		sm.AddState(visual.AnimationState{Name: "c", BlendTree: visual.ClipNode("c", 1)})
		sm.AddTransition(visual.Transition{From: "a", To: "b", Condition: visual.Always()})
		sm.AddTransition(visual.Transition{From: "a", To: "c", Condition: visual.Always()})
		sm.SetCurrentState("a")

		fired := sm.Update()
		require.NotNil(t, fired)
		assert.Equal(t, "b", fired.To)
	})

	t.Run("same inputs give the same result", func(t *testing.T) {
		run := func() string {
			sm := locomotionMachine()
			sm.SetParameter("speed", 5)
			sm.Update()
			sm.Update()
			return sm.CurrentState
		}

		first := run()
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, run())
		}
	})
}

func TestAnimationStateMachine_Validate(t *testing.T) {
	t.Run("valid machine", func(t *testing.T) {
		assert.NoError(t, locomotionMachine().Validate())
	})

	t.Run("no states", func(t *testing.T) {
		sm := visual.NewStateMachine("empty")
		err := sm.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no states")
	})

	t.Run("unknown current state", func(t *testing.T) {
		sm := locomotionMachine()
		sm.SetCurrentState("swim")
		err := sm.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"swim"`)
	})

	t.Run("transition to missing state", func(t *testing.T) {
		sm := locomotionMachine()
		sm.AddTransition(visual.Transition{From: "run", To: "fly", Condition: visual.Always()})
		err := sm.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `missing state "fly"`)
	})
}
