// Package courier provides the Courier aggregate and the capacity model.
//
// The package includes:
//   - Courier: identity, transport type, served regions, working hours and earnings
//   - Type: the closed foot/bike/car enumeration with capacity and pay multiplier
//
// Key business rules:
//   - Capacity and per-order pay are fixed by type (foot 10kg/x2, bike 15kg/x5, car 50kg/x9)
//   - An order is eligible for a courier when its region is served and one of its
//     delivery windows intersects one of the working windows
//   - Earnings only grow, by 500 x multiplier per completed order
package courier
