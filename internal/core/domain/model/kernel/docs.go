// Package kernel provides core domain primitives shared by the courier and order aggregates.
//
// The package includes:
//   - TimeWindow: a closed "HH:MM-HH:MM" interval with intersection tests (HoursMatch)
//   - Weight: a mass in hundredths of a kilogram, so capacity sums stay exact
//
// The primitives are immutable values and safe for concurrent use.
package kernel
