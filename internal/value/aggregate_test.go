package value

import "testing"

func TestReduceSumAllIntegerStaysInteger(t *testing.T) {
	got, err := Reduce(AggSum, []Primitive{Integer(1), Integer(2), Integer(3)})
	if err != nil || got.Kind() != KindInteger || got.IntValue() != 6 {
		t.Fatalf("Reduce(sum) = %v (%v), %v, want Integer(6)", got.Display(), got.Kind(), err)
	}
}

func TestReduceSumWithFloatPromotes(t *testing.T) {
	got, err := Reduce(AggSum, []Primitive{Integer(1), Float(2.5)})
	if err != nil || got.Kind() != KindFloat {
		t.Fatalf("Reduce(sum) = %v, %v, want Float", got.Display(), err)
	}
	if got.FloatValue() != 3.5 {
		t.Errorf("sum = %v, want 3.5", got.FloatValue())
	}
}

func TestReduceMeanAlwaysFloat(t *testing.T) {
	got, err := Reduce(AggMean, []Primitive{Integer(2), Integer(4)})
	if err != nil || got.Kind() != KindFloat || got.FloatValue() != 3 {
		t.Fatalf("Reduce(mean) = %v (%v), %v, want Float(3)", got.Display(), got.Kind(), err)
	}
}

func TestReduceMaxMinPreserveIntegerKind(t *testing.T) {
	max, err := Reduce(AggMax, []Primitive{Integer(3), Integer(9), Integer(1)})
	if err != nil || max.Kind() != KindInteger || max.IntValue() != 9 {
		t.Fatalf("Reduce(max) = %v (%v), %v, want Integer(9)", max.Display(), max.Kind(), err)
	}

	min, err := Reduce(AggMin, []Primitive{Integer(3), Integer(9), Integer(1)})
	if err != nil || min.Kind() != KindInteger || min.IntValue() != 1 {
		t.Fatalf("Reduce(min) = %v (%v), %v, want Integer(1)", min.Display(), min.Kind(), err)
	}
}

func TestReduceMaxWithAnyFloatMemberIsFloat(t *testing.T) {
	got, err := Reduce(AggMax, []Primitive{Integer(3), Float(3.0)})
	if err != nil || got.Kind() != KindFloat {
		t.Fatalf("Reduce(max) = %v, %v, want Float (tie includes a float member)", got.Display(), err)
	}
}

func TestReduceEmptyRangeFails(t *testing.T) {
	_, err := Reduce(AggSum, nil)
	if err == nil || err.Error() != "empty range" {
		t.Errorf("Reduce(nil) error = %v, want \"empty range\"", err)
	}
}

func TestReduceNonNumericMemberFails(t *testing.T) {
	_, err := Reduce(AggSum, []Primitive{Integer(1), String("x")})
	if err == nil || err.Error() != "non-numeric cell in aggregate" {
		t.Errorf("Reduce() error = %v, want \"non-numeric cell in aggregate\"", err)
	}
}
