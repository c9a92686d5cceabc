package model

import "testing"

func TestGoalFraction(t *testing.T) {
	if got := (GoalState{Progress: 70}).Fraction(); got != 0.70 {
		t.Fatalf("expected 0.70, got %v", got)
	}
	if got := (GoalState{Progress: 100}).Fraction(); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
	if got := (GoalState{Progress: -5}).Fraction(); got != 0 {
		t.Fatalf("expected clamp to 0, got %v", got)
	}
	if got := (GoalState{Progress: 250}).Fraction(); got != 1 {
		t.Fatalf("expected clamp to 1, got %v", got)
	}
}
