package builtins

import (
	"github.com/aledsdavies/celrt/functions"
	"github.com/aledsdavies/celrt/value"
)

const (
	fnGetFullYear     = "getFullYear"
	fnGetMonth        = "getMonth"
	fnGetDayOfMonth   = "getDayOfMonth"
	fnGetDayOfWeek    = "getDayOfWeek"
	fnGetDayOfYear    = "getDayOfYear"
	fnGetHours        = "getHours"
	fnGetMinutes      = "getMinutes"
	fnGetSeconds      = "getSeconds"
	fnGetMilliseconds = "getMilliseconds"
)

// registerTime installs the timestamp accessor functions (all called as
// `t.getHours()` etc., receiver-only, UTC-only — CEL's timezone-string
// overloads of these accessors are out of scope here) and the duration
// accessors, matching the set cel-go's time extension registers.
func registerTime(r *functions.Registry) {
	tsAccessor := func(id, fn string, f func(ts value.Value) value.Value) {
		r.Register(&functions.Overload{
			ID: id, Function: fn, Arity: functions.Unary,
			ArgKinds:  []value.Kind{value.KindTimestamp},
			UnaryImpl: f,
		})
	}
	tsAccessor("ts_get_full_year", fnGetFullYear, func(t value.Value) value.Value {
		return value.Int(int64(t.AsTimestamp().Year()))
	})
	tsAccessor("ts_get_month", fnGetMonth, func(t value.Value) value.Value {
		return value.Int(int64(t.AsTimestamp().Month()) - 1) // CEL months are 0-based
	})
	tsAccessor("ts_get_day_of_month", fnGetDayOfMonth, func(t value.Value) value.Value {
		return value.Int(int64(t.AsTimestamp().Day()) - 1) // CEL days-of-month are 0-based
	})
	tsAccessor("ts_get_day_of_week", fnGetDayOfWeek, func(t value.Value) value.Value {
		return value.Int(int64(t.AsTimestamp().Weekday()))
	})
	tsAccessor("ts_get_day_of_year", fnGetDayOfYear, func(t value.Value) value.Value {
		return value.Int(int64(t.AsTimestamp().YearDay()) - 1)
	})
	tsAccessor("ts_get_hours", fnGetHours, func(t value.Value) value.Value {
		return value.Int(int64(t.AsTimestamp().Hour()))
	})
	tsAccessor("ts_get_minutes", fnGetMinutes, func(t value.Value) value.Value {
		return value.Int(int64(t.AsTimestamp().Minute()))
	})
	tsAccessor("ts_get_seconds", fnGetSeconds, func(t value.Value) value.Value {
		return value.Int(int64(t.AsTimestamp().Second()))
	})
	tsAccessor("ts_get_milliseconds", fnGetMilliseconds, func(t value.Value) value.Value {
		return value.Int(int64(t.AsTimestamp().Nanosecond() / 1e6))
	})

	durAccessor := func(id, fn string, f func(d value.Value) value.Value) {
		r.Register(&functions.Overload{
			ID: id, Function: fn, Arity: functions.Unary,
			ArgKinds:  []value.Kind{value.KindDuration},
			UnaryImpl: f,
		})
	}
	durAccessor("dur_get_hours", fnGetHours, func(d value.Value) value.Value {
		return value.Int(int64(d.AsDuration().Hours()))
	})
	durAccessor("dur_get_minutes", fnGetMinutes, func(d value.Value) value.Value {
		return value.Int(int64(d.AsDuration().Minutes()))
	})
	durAccessor("dur_get_seconds", fnGetSeconds, func(d value.Value) value.Value {
		return value.Int(int64(d.AsDuration().Seconds()))
	})
	durAccessor("dur_get_milliseconds", fnGetMilliseconds, func(d value.Value) value.Value {
		return value.Int(d.AsDuration().Milliseconds())
	})
}
