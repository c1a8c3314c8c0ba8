package model

// Money is a monetary amount in minor currency units (cents).
type Money struct {
	Currency    string `json:"currency"`
	AmountMinor int64  `json:"amount_minor"`
}

// FactSet holds the structured facts extracted from one side of an aligned
// pair. It is recomputed fresh per pair per side and never mutated afterwards.
type FactSet struct {
	Money   []Money  `json:"money"`
	Dates   []string `json:"dates"`   // normalized YYYY-MM-DD
	Numbers []string `json:"numbers"` // normalized numeric strings, not parsed
}

// HasMoney reports whether any money facts were extracted.
func (f FactSet) HasMoney() bool { return len(f.Money) > 0 }

// HasDates reports whether any date facts were extracted.
func (f FactSet) HasDates() bool { return len(f.Dates) > 0 }

// MoneySum returns the sum of all money amounts in minor units. The boolean
// is false when no money facts exist; an absent sum is not the same as zero.
func (f FactSet) MoneySum() (int64, bool) {
	if len(f.Money) == 0 {
		return 0, false
	}
	var sum int64
	for _, m := range f.Money {
		sum += m.AmountMinor
	}
	return sum, true
}
