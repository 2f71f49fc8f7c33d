package xgbtrees

import "testing"

func TestPredicateAddCondition(t *testing.T) {
	p := NewPredicate().
		AddCondition("x", LessThan, 1.0).
		AddCondition("x", GreaterThanOrEqual, -1.0).
		AddCondition("y", LessThan, 5.0)

	xConds := p.Conditions("x")
	if len(xConds) != 2 {
		t.Fatalf("len(Conditions(x)) = %d; want 2", len(xConds))
	}
	if xConds[0].Kind != LessThan || xConds[0].Value != 1.0 {
		t.Errorf("unexpected first x condition: %+v", xConds[0])
	}

	if len(p.Conditions("y")) != 1 {
		t.Fatalf("len(Conditions(y)) = %d; want 1", len(p.Conditions("y")))
	}
	if len(p.Conditions("z")) != 0 {
		t.Errorf("expected no conditions for unknown feature, got %v", p.Conditions("z"))
	}
}
