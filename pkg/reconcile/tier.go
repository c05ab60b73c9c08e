package reconcile

// Tier is a report pricing bucket.
type Tier struct {
	Code    string
	Price   int     // euros
	MaxGain float64 // inclusive upper bound on the annual gain, 0 for the last tier
}

// Tiers are ordered by bound. A gain equal to a bound belongs to that tier.
var Tiers = []Tier{
	{Code: "A", Price: 19, MaxGain: 250},
	{Code: "B", Price: 39, MaxGain: 500},
	{Code: "C", Price: 89, MaxGain: 1000},
	{Code: "D", Price: 149},
}

// TierFor prices a report from the recomputed annual gain.
func TierFor(annualGain float64) Tier {
	for _, t := range Tiers[:len(Tiers)-1] {
		if annualGain <= t.MaxGain {
			return t
		}
	}
	return Tiers[len(Tiers)-1]
}
