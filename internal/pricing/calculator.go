// Package pricing computes the charge for a fare plus the selected add-ons.
// Everything here is pure so the same numbers come out at booking time and
// when the confirmation is rendered.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

type MealTier string

const (
	MealStandard MealTier = "standard"
	MealDietary  MealTier = "dietary"
	MealPremium  MealTier = "premium"
)

type BaggageTier string

const (
	BaggageStandard BaggageTier = "standard"
	BaggageExtra    BaggageTier = "extra"
	BaggagePremium  BaggageTier = "premium"
)

var (
	mealSurcharges = map[MealTier]decimal.Decimal{
		MealDietary: decimal.NewFromInt(35),
		MealPremium: decimal.NewFromInt(45),
	}
	baggageSurcharges = map[BaggageTier]decimal.Decimal{
		BaggageExtra:   decimal.NewFromInt(80),
		BaggagePremium: decimal.NewFromInt(150),
	}
	insuranceSurcharge = decimal.NewFromInt(75)
)

// ParseMeal maps a form value to a meal tier. Unknown values are standard.
func ParseMeal(s string) MealTier {
	switch t := MealTier(strings.ToLower(strings.TrimSpace(s))); t {
	case MealDietary, MealPremium:
		return t
	default:
		return MealStandard
	}
}

// ParseBaggage maps a form value to a baggage tier. Unknown values are standard.
func ParseBaggage(s string) BaggageTier {
	switch t := BaggageTier(strings.ToLower(strings.TrimSpace(s))); t {
	case BaggageExtra, BaggagePremium:
		return t
	default:
		return BaggageStandard
	}
}

func (t MealTier) Label() string {
	switch t {
	case MealDietary:
		return "Special Dietary Meal"
	case MealPremium:
		return "Premium Gourmet Meal"
	default:
		return "Standard"
	}
}

func (t BaggageTier) Label() string {
	switch t {
	case BaggageExtra:
		return "Extra Baggage"
	case BaggagePremium:
		return "Premium Baggage"
	default:
		return "Standard (23kg)"
	}
}

func MealSurcharge(t MealTier) decimal.Decimal {
	if v, ok := mealSurcharges[t]; ok {
		return v
	}
	return decimal.Zero
}

func BaggageSurcharge(t BaggageTier) decimal.Decimal {
	if v, ok := baggageSurcharges[t]; ok {
		return v
	}
	return decimal.Zero
}

func InsuranceSurcharge(insured bool) decimal.Decimal {
	if insured {
		return insuranceSurcharge
	}
	return decimal.Zero
}

// Selection is the set of add-ons chosen for a booking.
type Selection struct {
	Meal      MealTier
	Baggage   BaggageTier
	Insurance bool
}

// Quote is a fully priced selection.
type Quote struct {
	BaseFare  decimal.Decimal
	Meal      decimal.Decimal
	Baggage   decimal.Decimal
	Insurance decimal.Decimal
	Total     decimal.Decimal
}

// Calculate prices a base fare plus add-ons. The base fare is assumed to be in
// the display currency already.
func Calculate(baseFare decimal.Decimal, sel Selection) Quote {
	q := Quote{
		BaseFare:  baseFare,
		Meal:      MealSurcharge(sel.Meal),
		Baggage:   BaggageSurcharge(sel.Baggage),
		Insurance: InsuranceSurcharge(sel.Insurance),
	}
	q.Total = q.BaseFare.Add(q.Meal).Add(q.Baggage).Add(q.Insurance)
	return q
}
