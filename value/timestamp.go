package value

import "time"

// MinTimestamp and MaxTimestamp bound CEL's timestamp range to the
// RFC 3339 representable range (spec §3.1: "bounded to RFC 3339 range"),
// years 0001 through 9999.
var (
	MinTimestamp = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	MaxTimestamp = time.Date(9999, time.December, 31, 23, 59, 59, 999999999, time.UTC)
)

// Timestamp constructs a Kind == KindTimestamp value: nanoseconds since
// the Unix epoch, bounded to the RFC 3339 representable range.
func Timestamp(t time.Time) Value {
	ut := t.UTC()
	if ut.Before(MinTimestamp) || ut.After(MaxTimestamp) {
		return NewError(0, ErrTimestampRange, "timestamp %s out of range", ut.Format(time.RFC3339Nano))
	}
	return Value{kind: KindTimestamp, ts: ut}
}

func (v Value) AsTimestamp() time.Time {
	mustKind(v, KindTimestamp)
	return v.ts
}
