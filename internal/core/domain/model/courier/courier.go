package courier

import (
	"errors"
	"fmt"
	"slices"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
	// ErrEmptyProfilePatch is returned when a profile update carries no fields.
	ErrEmptyProfilePatch = errs.NewValueIsRequiredError("at least one of type, regions, working_hours")
)

// Courier represents a delivery courier in the system.
// It is an aggregate root that owns the courier profile (type, regions, working hours)
// and the earnings accumulator. Assigned orders are not held here: they reference the
// courier by id and are found through the order repository.
//
// Business rules:
//   - Courier id is a positive integer
//   - Type is one of foot, bike, car and fixes capacity and pay rate
//   - Regions are positive integers; duplicates are collapsed
//   - Earnings never decrease and only grow through CreditCompletedOrder
//
// Example usage:
//
//	hours, _ := kernel.ParseTimeWindows([]string{"09:00-18:00"})
//	c, err := courier.NewCourier(1, courier.Foot, []int{1, 2}, hours)
//	if err != nil {
//	    // Handle construction error
//	}
//	fmt.Println(c.Capacity()) // 10.00kg
type Courier struct {
	id           int
	courierType  Type
	regions      []int
	workingHours []kernel.TimeWindow
	earnings     int64
	guard        guard.ConstructorGuard
}

// ProfilePatch describes a partial profile update. A nil field is left unchanged;
// an empty non-nil slice clears the corresponding list.
type ProfilePatch struct {
	Type         *Type
	Regions      []int
	WorkingHours []kernel.TimeWindow
}

// IsEmpty reports whether the patch changes nothing.
func (p ProfilePatch) IsEmpty() bool {
	return p.Type == nil && p.Regions == nil && p.WorkingHours == nil
}

// NewCourier creates a courier with zero earnings.
// All parameter errors are aggregated into a single joined error.
func NewCourier(id int, courierType Type, regions []int, workingHours []kernel.TimeWindow) (*Courier, error) {
	return RestoreCourier(id, courierType, regions, workingHours, 0)
}

// RestoreCourier reconstructs a Courier from persistent storage, earnings included.
func RestoreCourier(
	id int,
	courierType Type,
	regions []int,
	workingHours []kernel.TimeWindow,
	earnings int64,
) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setType(courierType),
		c.setRegions(regions),
		c.setWorkingHours(workingHours),
		c.setEarnings(earnings),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks that the courier was built through a constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the courier id.
func (c *Courier) ID() int {
	return c.id
}

// Type returns the courier transport type.
func (c *Courier) Type() Type {
	return c.courierType
}

// Regions returns a sorted copy of the served regions.
func (c *Courier) Regions() []int {
	return slices.Clone(c.regions)
}

// WorkingHours returns a copy of the working windows.
func (c *Courier) WorkingHours() []kernel.TimeWindow {
	return slices.Clone(c.workingHours)
}

// Earnings returns the accumulated earnings.
func (c *Courier) Earnings() int64 {
	return c.earnings
}

// Capacity is the maximum undone load the courier may carry.
func (c *Courier) Capacity() kernel.Weight {
	return c.courierType.Capacity()
}

// ServesRegion reports whether region is one of the courier's regions.
func (c *Courier) ServesRegion(region int) bool {
	_, found := slices.BinarySearch(c.regions, region)
	return found
}

// CanDeliver reports whether an order in region with the given delivery windows is
// eligible for this courier: the region is served and some delivery window
// intersects some working window.
func (c *Courier) CanDeliver(region int, deliveryWindows []kernel.TimeWindow) bool {
	return c.ServesRegion(region) && kernel.HoursMatch(deliveryWindows, c.workingHours)
}

// ApplyProfile updates type, regions and working hours from patch.
// The courier is left untouched when any patched field is invalid.
func (c *Courier) ApplyProfile(patch ProfilePatch) error {
	if patch.IsEmpty() {
		return ErrEmptyProfilePatch
	}

	updated := *c
	var setErrs []error
	if patch.Type != nil {
		setErrs = append(setErrs, updated.setType(*patch.Type))
	}
	if patch.Regions != nil {
		setErrs = append(setErrs, updated.setRegions(patch.Regions))
	}
	if patch.WorkingHours != nil {
		setErrs = append(setErrs, updated.setWorkingHours(patch.WorkingHours))
	}
	if err := errors.Join(setErrs...); err != nil {
		return err
	}

	*c = updated
	return nil
}

// CreditCompletedOrder adds the pay for one completed order at the current type rate.
// It returns the credited amount.
func (c *Courier) CreditCompletedOrder() int64 {
	amount := c.courierType.EarningsPerOrder()
	c.earnings += amount
	return amount
}

func (c *Courier) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("courier id", fmt.Errorf("%d is not greater than 0", id))
	}
	c.id = id
	return nil
}

func (c *Courier) setType(courierType Type) error {
	if err := courierType.Validate(); err != nil {
		return err
	}
	c.courierType = courierType
	return nil
}

func (c *Courier) setRegions(regions []int) error {
	normalized := make([]int, 0, len(regions))
	for _, r := range regions {
		if r <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("region", fmt.Errorf("%d is not greater than 0", r))
		}
		normalized = append(normalized, r)
	}
	slices.Sort(normalized)
	c.regions = slices.Compact(normalized)
	return nil
}

func (c *Courier) setWorkingHours(workingHours []kernel.TimeWindow) error {
	for i, w := range workingHours {
		if err := w.Validate(); err != nil {
			return err
		}
		for _, prev := range workingHours[:i] {
			if w.Intersects(prev) {
				return errs.NewValueIsInvalidErrorWithCause("working hours", fmt.Errorf("%s overlaps %s", w, prev))
			}
		}
	}
	c.workingHours = slices.Clone(workingHours)
	if c.workingHours == nil {
		c.workingHours = []kernel.TimeWindow{}
	}
	return nil
}

func (c *Courier) setEarnings(earnings int64) error {
	if earnings < 0 {
		return errs.NewValueIsInvalidErrorWithCause("earnings", fmt.Errorf("%d is negative", earnings))
	}
	c.earnings = earnings
	return nil
}
