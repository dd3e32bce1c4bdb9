package builtin

import (
	"time"

	"github.com/akashmaji946/tully/value"
)

// clock returns wall-clock seconds since the Unix epoch as a Float
// (spec §4.4). Contract grounded on original_source's clock builtin: zero
// arity, fractional seconds, no dependence on any particular clock
// resolution.
func clock(args []value.Value) (value.Value, error) {
	return value.Float{Value: float64(time.Now().UnixNano()) / 1e9}, nil
}
