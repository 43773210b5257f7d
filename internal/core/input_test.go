package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionUp) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Has(ActionUp) = false after Set")
	}

	f.Clear()
	if f.Has(ActionUp) {
		t.Error("Has(ActionUp) = true after Clear")
	}
}

func TestInputFrameFirstDirection(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.Set(ActionLeft)
	f.Set(ActionUp)
	f.Set(ActionLeft) // repeated key does not move it forward

	a, ok := f.First(IsDirection)
	if !ok || a != ActionLeft {
		t.Errorf("First(IsDirection) = %v, %v, want Left, true", a, ok)
	}

	clone := f.Clone()
	f.Clear()
	if a, _ := clone.First(IsDirection); a != ActionLeft {
		t.Errorf("clone lost its order, got %v", a)
	}
	if _, ok := f.First(IsDirection); ok {
		t.Error("cleared frame should have no direction")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionDown) {
		t.Error("zero frame should report no actions")
	}
	f.Set(ActionDown)
	if !f.Has(ActionDown) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionRestart, "Restart"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, want %q", tc.a, got, tc.want)
		}
	}
}
