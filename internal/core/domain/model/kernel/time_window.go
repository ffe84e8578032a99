package kernel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// minutesPerDay bounds a window end: 23:59 is the last representable minute.
	minutesPerDay = 24 * 60
	clockLayout   = "15:04"
)

// ErrTimeWindowIsNotConstructed is returned when a zero-value TimeWindow is used.
var ErrTimeWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"time window must be created via NewTimeWindow or ParseTimeWindow")

// TimeWindow is a closed time-of-day interval [start, end] with minute granularity.
// Couriers publish working hours as windows; orders list acceptable delivery windows.
//
// Example:
//
//	w, err := kernel.ParseTimeWindow("09:00-18:00")
//	if err != nil {
//	    // malformed input
//	}
//	fmt.Println(w) // 09:00-18:00
type TimeWindow struct { //nolint:recvcheck // value object
	start int
	end   int
	guard guard.ConstructorGuard
}

// NewTimeWindow builds a window from minute-of-day bounds.
// Both bounds must lie in [0, 1439] and start must not be after end.
func NewTimeWindow(start, end int) (TimeWindow, error) {
	if err := errors.Join(
		validateMinute("window start", start),
		validateMinute("window end", end),
	); err != nil {
		return TimeWindow{}, err
	}
	if start > end {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause(
			"time window",
			fmt.Errorf("start %s is after end %s", formatMinute(start), formatMinute(end)),
		)
	}

	return TimeWindow{start: start, end: end, guard: guard.NewConstructorGuard()}, nil
}

// ParseTimeWindow parses the "HH:MM-HH:MM" form.
func ParseTimeWindow(s string) (TimeWindow, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause(
			"time window", fmt.Errorf("%q is not in HH:MM-HH:MM format", s))
	}

	start, startErr := parseClock(parts[0])
	end, endErr := parseClock(parts[1])
	if err := errors.Join(startErr, endErr); err != nil {
		return TimeWindow{}, err
	}

	return NewTimeWindow(start, end)
}

// ParseTimeWindows parses every entry and reports all malformed ones at once.
// An empty input yields an empty, non-nil slice.
func ParseTimeWindows(values []string) ([]TimeWindow, error) {
	windows := make([]TimeWindow, 0, len(values))
	var parseErrs []error
	for _, v := range values {
		w, err := ParseTimeWindow(v)
		if err != nil {
			parseErrs = append(parseErrs, err)
			continue
		}
		windows = append(windows, w)
	}
	if err := errors.Join(parseErrs...); err != nil {
		return nil, err
	}
	return windows, nil
}

// Validate reports whether the window was built through a constructor.
func (w TimeWindow) Validate() error {
	return w.guard.Validate(ErrTimeWindowIsNotConstructed)
}

// Start returns the first minute of the window.
func (w TimeWindow) Start() int {
	return w.start
}

// End returns the last minute of the window.
func (w TimeWindow) End() int {
	return w.end
}

// Intersects reports whether two closed windows share at least one minute.
// Touching endpoints count: 09:00-12:00 intersects 12:00-14:00.
func (w TimeWindow) Intersects(other TimeWindow) bool {
	return w.start <= other.end && w.end >= other.start
}

// String formats the window back to "HH:MM-HH:MM".
func (w TimeWindow) String() string {
	return formatMinute(w.start) + "-" + formatMinute(w.end)
}

// HoursMatch reports whether any delivery window intersects any working window.
func HoursMatch(delivery, working []TimeWindow) bool {
	for _, d := range delivery {
		for _, w := range working {
			if d.Intersects(w) {
				return true
			}
		}
	}
	return false
}

// FormatTimeWindows renders windows in their wire form.
func FormatTimeWindows(windows []TimeWindow) []string {
	out := make([]string, len(windows))
	for i, w := range windows {
		out[i] = w.String()
	}
	return out
}

func parseClock(s string) (int, error) {
	if len(s) != len(clockLayout) {
		return 0, errs.NewValueIsInvalidErrorWithCause("time", fmt.Errorf("%q is not in HH:MM format", s))
	}
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("time", err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func validateMinute(name string, minute int) error {
	if minute < 0 || minute >= minutesPerDay {
		return errs.NewValueIsOutOfRangeError(name, minute, 0, minutesPerDay-1)
	}
	return nil
}

func formatMinute(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
