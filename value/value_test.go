package value

import "testing"

func TestPrimitiveConstructors(t *testing.T) {
	if got := Int(42).AsInt(); got != 42 {
		t.Errorf("AsInt() = %d, want 42", got)
	}
	if got := Uint(7).AsUint(); got != 7 {
		t.Errorf("AsUint() = %d, want 7", got)
	}
	if got := Double(3.5).AsDouble(); got != 3.5 {
		t.Errorf("AsDouble() = %v, want 3.5", got)
	}
	if got := String("hi").AsString(); got != "hi" {
		t.Errorf("AsString() = %q, want %q", got, "hi")
	}
	if got := Bytes([]byte("hi")).AsBytes(); string(got) != "hi" {
		t.Errorf("AsBytes() = %q, want %q", got, "hi")
	}
}

func TestBoolSingletons(t *testing.T) {
	if !Bool(true).AsBool() {
		t.Error("Bool(true).AsBool() = false")
	}
	if Bool(false).AsBool() {
		t.Error("Bool(false).AsBool() = true")
	}
}

func TestStringRejectsInvalidUTF8(t *testing.T) {
	v := String(string([]byte{0xff, 0xfe}))
	if !v.IsError() {
		t.Fatalf("expected error for invalid UTF-8, got kind %s", v.Kind())
	}
	if !v.Is(ErrInvalidUTF8) {
		t.Errorf("expected ErrInvalidUTF8, got %s", v.AsError().Code)
	}
}

func TestBytesIsCopied(t *testing.T) {
	src := []byte("abc")
	v := Bytes(src)
	src[0] = 'z'
	if string(v.AsBytes()) != "abc" {
		t.Errorf("Bytes() retained alias to caller's slice: got %q", v.AsBytes())
	}
}

func TestMustKindPanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic accessing wrong-kind accessor")
		}
	}()
	Int(1).AsString()
}
