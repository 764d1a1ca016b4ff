package value

type opaquePayload struct {
	tag     string
	payload any
}

// Opaque constructs a Kind == KindOpaque value: an evaluator-private
// tag and payload used for internal optimizations (spec §3.1). Opaque
// values are never visible to callers — the trace listener filters them
// out (spec §4.5, §C.5) and no builtin comparison or conversion
// function accepts them.
func Opaque(tag string, payload any) Value {
	return Value{kind: KindOpaque, opq: &opaquePayload{tag: tag, payload: payload}}
}

func (v Value) OpaqueTag() string {
	mustKind(v, KindOpaque)
	return v.opq.tag
}

func (v Value) OpaquePayload() any {
	mustKind(v, KindOpaque)
	return v.opq.payload
}
