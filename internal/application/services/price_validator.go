package services

import "github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/entities"

// PriceVerdict is the outcome of checking a charged price against a
// catalog entry's government-mandated range.
type PriceVerdict struct {
	IsValid    bool
	Overcharge float64
}

// ValidatePrice checks a charged price against an entry's price range.
// Both bounds are inclusive. Overcharge is the positive excess over the
// maximum; undercharging below the minimum fails IsValid but is never
// reported as an overcharge.
func ValidatePrice(entry *entities.CatalogEntry, charged float64) PriceVerdict {
	verdict := PriceVerdict{
		IsValid: charged >= entry.GovtMinPrice && charged <= entry.GovtMaxPrice,
	}
	if excess := charged - entry.GovtMaxPrice; excess > 0 {
		verdict.Overcharge = excess
	}
	return verdict
}
