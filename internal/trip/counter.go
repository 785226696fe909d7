// Package trip holds the booking state for a trip search: the guest
// count stepper and the persistable destination text fields.
package trip

// MaxGuests is the largest bookable party size.
const MaxGuests = 10

// Validity classifies a guest count against the stepper's maximum.
type Validity int

const (
	// Valid means the count is within the bookable range.
	Valid Validity = iota
	// Invalid means the count exceeds the maximum.
	Invalid
)

// String returns a human-readable validity label.
func (v Validity) String() string {
	if v == Invalid {
		return "invalid"
	}
	return "valid"
}

// Counter is the guest count stepper. Increment cycles the count through
// 1..max+1 and back to 1, so the out-of-range value is visited for exactly
// one step before wrapping. Validity is derived from the count on every
// read, so it can never drift out of sync with it.
type Counter struct {
	count int
	max   int
}

// NewCounter returns a counter starting at 1. A max below 1 falls back to
// MaxGuests.
func NewCounter(max int) *Counter {
	if max < 1 {
		max = MaxGuests
	}
	return &Counter{count: 1, max: max}
}

// Count returns the current count.
func (c *Counter) Count() int {
	return c.count
}

// Max returns the highest valid count.
func (c *Counter) Max() int {
	return c.max
}

// Increment advances the count by one, wrapping back to 1 after max+1.
func (c *Counter) Increment() {
	c.count = (c.count % (c.max + 1)) + 1
}

// Validity reports whether the current count is bookable.
func (c *Counter) Validity() Validity {
	if c.count > c.max {
		return Invalid
	}
	return Valid
}

// IsValid is shorthand for Validity() == Valid.
func (c *Counter) IsValid() bool {
	return c.Validity() == Valid
}
