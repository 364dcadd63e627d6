package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionShuffle)
	if !f.Has(ActionShuffle) || f.Has(ActionPeek) {
		t.Errorf("got %v, expected only Shuffle", f.Actions)
	}

	var zero InputFrame
	if zero.Has(ActionConfirm) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionConfirm)
	if !zero.Has(ActionConfirm) {
		t.Error("Set should initialize a zero frame")
	}
}

func TestInputFrameClicks(t *testing.T) {
	f := NewInputFrame()
	f.AddClick(4, 2)
	f.AddClick(9, 7)

	if len(f.Clicks) != 2 || f.Clicks[1] != (Click{X: 9, Y: 7}) {
		t.Fatalf("got %v, expected two clicks in order", f.Clicks)
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Errorf("Clear left %v %v", f.Actions, f.Clicks)
	}
	if len(clone.Clicks) != 2 {
		t.Errorf("clone should keep its clicks, got %v", clone.Clicks)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionPeek, "Peek"},
		{ActionCycleTheme, "CycleTheme"},
		{ActionFocusSlot, "FocusSlot"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}
