package animation

// Float64Source is satisfied by *math/rand/v2.Rand
type Float64Source interface {
	Float64() float64
}

// initialRateSpread bounds random startup rates to (-0.006, 0.006)
const initialRateSpread = 0.012

// RandomRates returns small random rates for a lively first impression
func RandomRates(src Float64Source) Rates {
	var r Rates
	for i := range r {
		r[i] = (src.Float64() - 0.5) * initialRateSpread
	}
	return r
}
