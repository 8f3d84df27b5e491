package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// DaysOfSupply is how long current inventory lasts at the observed sales
// velocity. A SKU with zero velocity has no urgency at all, which is
// represented as an explicit infinite value rather than an IEEE Inf float
// so that sorting and serialization stay well defined.
type DaysOfSupply struct {
	days     float64
	infinite bool
}

// FiniteDays returns a finite days-of-supply value.
func FiniteDays(days float64) DaysOfSupply {
	return DaysOfSupply{days: days}
}

// InfiniteDays returns the no-urgency sentinel.
func InfiniteDays() DaysOfSupply {
	return DaysOfSupply{infinite: true}
}

// Infinite reports whether this is the no-urgency sentinel.
func (d DaysOfSupply) Infinite() bool {
	return d.infinite
}

// Days returns the numeric value, +Inf for the sentinel.
func (d DaysOfSupply) Days() float64 {
	if d.infinite {
		return math.Inf(1)
	}
	return d.days
}

// Less orders finite values numerically and sorts the sentinel after every
// finite value. Two infinite values compare equal.
func (d DaysOfSupply) Less(other DaysOfSupply) bool {
	if d.infinite {
		return false
	}
	if other.infinite {
		return true
	}
	return d.days < other.days
}

// Equal reports whether two values compare as equal for ranking purposes.
func (d DaysOfSupply) Equal(other DaysOfSupply) bool {
	if d.infinite || other.infinite {
		return d.infinite == other.infinite
	}
	return d.days == other.days
}

// Rounded returns the value rounded to the given number of decimal places.
// The sentinel is unaffected.
func (d DaysOfSupply) Rounded(decimals int) DaysOfSupply {
	if d.infinite {
		return d
	}
	factor := math.Pow(10, float64(decimals))
	return DaysOfSupply{days: math.Round(d.days*factor) / factor}
}

// String formats finite values with 2 decimals and the sentinel as "inf",
// matching the CSV sink representation.
func (d DaysOfSupply) String() string {
	if d.infinite {
		return "inf"
	}
	return strconv.FormatFloat(d.days, 'f', 2, 64)
}

// MarshalJSON emits finite values as numbers and the sentinel as "inf".
func (d DaysOfSupply) MarshalJSON() ([]byte, error) {
	if d.infinite {
		return json.Marshal("inf")
	}
	return json.Marshal(d.days)
}

// UnmarshalJSON accepts a number or the string "inf".
func (d *DaysOfSupply) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*d = FiniteDays(num)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("days_of_supply must be a number or \"inf\": %w", err)
	}
	if s != "inf" {
		return fmt.Errorf("invalid days_of_supply value %q", s)
	}
	*d = InfiniteDays()
	return nil
}
