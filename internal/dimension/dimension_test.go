package dimension

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAddSubIdentity(t *testing.T) {
	d := New(1, 0, -2, 0, 0, 0, 0)
	if diff := cmp.Diff(d, Add(d, Zero)); diff != "" {
		t.Errorf("Add(d, Zero) mismatch (-want +got):\n%s", diff)
	}
	if Sub(d, d) != Zero {
		t.Errorf("Sub(d, d) = %v, want Zero", Sub(d, d))
	}
}

func TestAddCommutative(t *testing.T) {
	a := New(1, 2, 0, 0, 0, 0, 0)
	b := New(0, -1, 3, 0, 0, 0, 0)
	if Add(a, b) != Add(b, a) {
		t.Errorf("Add is not commutative: %v != %v", Add(a, b), Add(b, a))
	}
}

func TestPow(t *testing.T) {
	velocity := Sub(Basis(Length), Basis(Time))
	accel := Pow(velocity, 1)
	if accel != velocity {
		t.Errorf("Pow(_, 1) changed the dimension: %v", accel)
	}
	area := Pow(Basis(Length), 2)
	if area != New(2, 0, 0, 0, 0, 0, 0) {
		t.Errorf("Pow(length, 2) = %v, want L^2", area)
	}
}

func TestPowFloat(t *testing.T) {
	area := Pow(Basis(Length), 2)
	got, err := PowFloat(area, 0.5)
	if err != nil {
		t.Fatalf("PowFloat(area, 0.5) error: %v", err)
	}
	if got != Basis(Length) {
		t.Errorf("PowFloat(area, 0.5) = %v, want L", got)
	}

	if _, err := PowFloat(Basis(Length), 0.5); err == nil {
		t.Errorf("PowFloat(length, 0.5) should fail with ErrNonIntegerDim")
	}
}

func TestComplexity(t *testing.T) {
	if Complexity(Zero) != 0 {
		t.Errorf("Complexity(Zero) = %d, want 0", Complexity(Zero))
	}
	d := New(1, 1, -2, 0, 0, 0, 0)
	if Complexity(d) != 4 {
		t.Errorf("Complexity(%v) = %d, want 4", d, Complexity(d))
	}
}
