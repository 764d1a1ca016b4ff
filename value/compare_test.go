package value

import (
	"testing"
	"time"
)

func TestLessNumericCrossKind(t *testing.T) {
	lt, ok := Int(3).Less(Uint(5))
	if !ok || !lt {
		t.Errorf("Less(3, 5u) = (%v, %v), want (true, true)", lt, ok)
	}
	lt, ok = Uint(5).Less(Int(3))
	if !ok || lt {
		t.Errorf("Less(5u, 3) = (%v, %v), want (false, true)", lt, ok)
	}
	lt, ok = Int(-1).Less(Uint(0))
	if !ok || !lt {
		t.Errorf("Less(-1, 0u) = (%v, %v), want (true, true)", lt, ok)
	}
}

func TestLessIntDoubleBoundary(t *testing.T) {
	lt, ok := Int(2).Less(Double(2.5))
	if !ok || !lt {
		t.Errorf("Less(2, 2.5) = (%v, %v), want (true, true)", lt, ok)
	}
	lt, ok = Int(3).Less(Double(2.5))
	if !ok || lt {
		t.Errorf("Less(3, 2.5) = (%v, %v), want (false, true)", lt, ok)
	}
}

func TestLessNaNIsUnordered(t *testing.T) {
	_, ok := Double(nan()).Less(Int(1))
	if ok {
		t.Error("Less with NaN operand should report ok=false")
	}
}

func TestLessStringsBytesDurationTimestamp(t *testing.T) {
	if lt, ok := String("a").Less(String("b")); !ok || !lt {
		t.Errorf("Less(a, b) = (%v, %v)", lt, ok)
	}
	if lt, ok := Bytes([]byte{1}).Less(Bytes([]byte{2})); !ok || !lt {
		t.Errorf("Less(bytes) = (%v, %v)", lt, ok)
	}
	d1 := Duration(0)
	d2 := Duration(5 * time.Nanosecond)
	if lt, ok := d1.Less(d2); !ok || !lt {
		t.Errorf("Less(0s, 5ns) = (%v, %v)", lt, ok)
	}
}

func TestLessMismatchedKindsUnordered(t *testing.T) {
	_, ok := String("a").Less(Bool(true))
	if ok {
		t.Error("comparing string to bool should report ok=false")
	}
}
