package value

import (
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/crypto/blake2b"
)

// ContentHash returns a 256-bit content hash of v, used by the
// planner's plan hash to fold in each constant step's value without
// relying on Go's built-in equality over payload pointers. Map values
// do not use it; they key entries through canonicalMapKey. Numeric
// values that compare equal under CEL equality (e.g. Int(5) and
// Uint(5)) hash to the same digest.
func (v Value) ContentHash() [32]byte {
	sum, err := blake2b.New256(nil)
	if err != nil {
		panic(fmt.Sprintf("value: blake2b.New256: %v", err))
	}
	hw := &hashWriter{w: sum}
	hashInto(hw, v)
	var out [32]byte
	copy(out[:], sum.Sum(nil))
	return out
}

func hashInto(h *hashWriter, v Value) {
	switch v.kind {
	case KindNull:
		h.writeTag('n')
	case KindBool:
		h.writeTag('b')
		if v.b {
			h.writeByte(1)
		} else {
			h.writeByte(0)
		}
	case KindInt:
		h.writeNumeric(v.i)
	case KindUint:
		if v.u < 1<<63 {
			h.writeNumeric(int64(v.u))
		} else {
			h.writeTag('N')
			h.writeUint64(v.u)
		}
	case KindDouble:
		// Integral doubles within int64 range hash identically to the
		// equal Int/Uint, per the cross-kind equality rule in compare.go.
		if v.d >= minInt64AsFloat && v.d < maxInt64AsFloat {
			if id := int64(v.d); float64(id) == v.d {
				h.writeNumeric(id)
				return
			}
		}
		if v.d >= maxInt64AsFloat && v.d < maxInt64AsFloat*2 {
			h.writeTag('N')
			h.writeUint64(uint64(v.d))
			return
		}
		h.writeTag('d')
		h.writeUint64(math.Float64bits(v.d))
	case KindString:
		h.writeTag('s')
		h.writeBytes([]byte(v.s))
	case KindBytes:
		h.writeTag('y')
		h.writeBytes(v.raw)
	case KindDuration:
		h.writeTag('D')
		h.writeUint64(uint64(v.dur))
	case KindTimestamp:
		h.writeTag('T')
		h.writeUint64(uint64(v.ts.UnixNano()))
	case KindList:
		h.writeTag('l')
		for _, e := range v.list.elems {
			hashInto(h, e)
		}
	case KindMap:
		h.writeTag('m')
		for _, e := range v.mp.entries {
			hashInto(h, e.Key)
			hashInto(h, e.Value)
		}
	case KindType:
		h.writeTag('t')
		h.writeBytes([]byte(v.typ.name))
	case KindOptional:
		if v.opt.present {
			h.writeTag('O')
			hashInto(h, v.opt.value)
		} else {
			h.writeTag('o')
		}
	default:
		h.writeTag('?')
	}
}

// writeNumeric hashes an int64 the same way regardless of whether it
// originated as Int, Uint, or an integral Double, so CEL-equal numerics
// always collide under ContentHash.
func (h *hashWriter) writeNumeric(i int64) {
	h.writeTag('#')
	h.writeUint64(uint64(i))
}

type hashWriter struct {
	w interface {
		Write([]byte) (int, error)
	}
}

func (h *hashWriter) writeTag(b byte) { h.writeByte(b) }

func (h *hashWriter) writeByte(b byte) {
	_, _ = h.w.Write([]byte{b})
}

func (h *hashWriter) writeBytes(b []byte) {
	var lenBuf [8]byte
	binary.BigEndian.PutUint64(lenBuf[:], uint64(len(b)))
	_, _ = h.w.Write(lenBuf[:])
	_, _ = h.w.Write(b)
}

func (h *hashWriter) writeUint64(u uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], u)
	_, _ = h.w.Write(buf[:])
}
