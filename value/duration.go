package value

import "time"

// MaxDuration and MinDuration bound CEL's duration range to ±10,000
// years (spec §3.1), matching the bound enforced by the upstream
// protobuf Duration/well-known-type range this engine's Duration kind
// mirrors.
const yearsBound = 10000

var (
	MaxDuration = time.Duration(yearsBound) * 365 * 24 * time.Hour
	MinDuration = -MaxDuration
)

// Duration constructs a Kind == KindDuration value, signed nanoseconds
// bounded to ±10,000 years. Out-of-range durations become an Error
// value rather than silently clamping, since construction is the only
// place the bound can be enforced once-and-for-all.
func Duration(d time.Duration) Value {
	if d > MaxDuration || d < MinDuration {
		return NewError(0, ErrDurationRange, "duration %s out of range", d)
	}
	return Value{kind: KindDuration, dur: d}
}

func (v Value) AsDuration() time.Duration {
	mustKind(v, KindDuration)
	return v.dur
}
