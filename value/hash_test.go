package value

import "testing"

func TestContentHashCrossKindNumericCollide(t *testing.T) {
	if Int(5).ContentHash() != Uint(5).ContentHash() {
		t.Error("Int(5) and Uint(5) should hash identically")
	}
	if Int(5).ContentHash() != Double(5.0).ContentHash() {
		t.Error("Int(5) and Double(5.0) should hash identically")
	}
}

func TestContentHashDistinguishesDifferentValues(t *testing.T) {
	if Int(5).ContentHash() == Int(6).ContentHash() {
		t.Error("Int(5) and Int(6) should hash differently")
	}
	if String("a").ContentHash() == String("b").ContentHash() {
		t.Error("distinct strings should hash differently")
	}
	if Int(5).ContentHash() == String("5").ContentHash() {
		t.Error("Int(5) and String(\"5\") should hash differently")
	}
}

func TestContentHashListOrderSensitive(t *testing.T) {
	a := List([]Value{Int(1), Int(2)})
	b := List([]Value{Int(2), Int(1)})
	if a.ContentHash() == b.ContentHash() {
		t.Error("lists in different order should hash differently")
	}
}

func TestContentHashMapDeterministic(t *testing.T) {
	a := Map([]MapEntry{{Key: String("x"), Value: Int(1)}, {Key: String("y"), Value: Int(2)}})
	b := Map([]MapEntry{{Key: String("x"), Value: Int(1)}, {Key: String("y"), Value: Int(2)}})
	if a.ContentHash() != b.ContentHash() {
		t.Error("identically constructed maps should hash identically")
	}
}
