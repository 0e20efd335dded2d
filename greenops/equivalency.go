// Package greenops converts a GHG total into relatable equivalencies such as
// miles driven or smartphones charged, using EPA conversion factors.
package greenops

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// EPA Greenhouse Gas Equivalencies Calculator factors, kg CO2e per unit.
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
const (
	// EPAMilesDrivenFactor is kg CO2e per mile for an average passenger vehicle.
	EPAMilesDrivenFactor = 0.192

	// EPASmartphoneChargeFactor is kg CO2e per full smartphone charge.
	EPASmartphoneChargeFactor = 0.00822
)

// MinEquivalencyKg is the smallest total for which equivalencies are shown.
// Below it the figures become meaninglessly small.
const MinEquivalencyKg = 1.0

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

const (
	// ErrNegativeValue indicates a negative carbon value.
	ErrNegativeValue = constError("negative carbon value")

	// ErrInvalidValue indicates an infinite or NaN carbon value.
	ErrInvalidValue = constError("invalid carbon value")
)

//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// Equivalency is the result of converting a kg CO2e total.
type Equivalency struct {
	InputKg      float64 `json:"input_kg"`
	MilesDriven  float64 `json:"miles_driven"`
	PhoneCharges float64 `json:"phone_charges"`
	Text         string  `json:"text"`
	IsEmpty      bool    `json:"is_empty"`
}

// Calculate converts kg CO2e into miles driven and smartphone charges.
// Totals below MinEquivalencyKg return an empty result without error.
func Calculate(kg float64) (Equivalency, error) {
	if math.IsInf(kg, 0) || math.IsNaN(kg) {
		return Equivalency{IsEmpty: true}, ErrInvalidValue
	}
	if kg < 0 {
		return Equivalency{IsEmpty: true}, ErrNegativeValue
	}
	if kg < MinEquivalencyKg {
		return Equivalency{InputKg: kg, IsEmpty: true}, nil
	}

	miles := kg / EPAMilesDrivenFactor
	phones := kg / EPASmartphoneChargeFactor

	return Equivalency{
		InputKg:      kg,
		MilesDriven:  miles,
		PhoneCharges: phones,
		Text: fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones",
			FormatNumber(miles), FormatNumber(phones)),
	}, nil
}

// FormatNumber rounds f to an integer and adds thousand separators.
// Example: FormatNumber(18248.18) returns "18,248".
func FormatNumber(f float64) string {
	return printer.Sprintf("%d", int64(math.Round(f)))
}
