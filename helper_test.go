package pricetracker

import "github.com/etnz/pricetracker/date"

// obs is a helper for test to create an observation with a valid price.
func obs(commodity, unit, on string, price float64) Observation {
	return Observation{Commodity: commodity, Unit: unit, On: date.MustParse(on), Price: P(price)}
}

// null is a helper for test to create an observation with a null price.
func null(commodity, unit, on string) Observation {
	return Observation{Commodity: commodity, Unit: unit, On: date.MustParse(on)}
}

// quote is a helper for test to create a quote with a valid price.
func quote(commodity, unit string, price float64) Quote {
	return Quote{Commodity: commodity, Unit: unit, Price: P(price)}
}
