package refdata

import "time"

// DateLayout is the only accepted date format. Values are zero-padded and
// fixed-width so that lexical order is chronological order.
const DateLayout = "2006-01-02"

// DateOf formats t as a reference date.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// Period is an effective date range. An empty End is open-ended (currently
// active). An empty Start is open below.
type Period struct {
	Start string `json:"date_debut"`
	End   string `json:"date_fin,omitempty"`
}

// Covers reports whether date falls inside the period, bounds included.
func (p Period) Covers(date string) bool {
	if p.Start != "" && date < p.Start {
		return false
	}
	return p.End == "" || date <= p.End
}

// Overlaps reports whether the two periods share at least one day.
func (p Period) Overlaps(o Period) bool {
	startsBeforeOtherEnds := p.Start == "" || o.End == "" || p.Start <= o.End
	otherStartsBeforeEnd := o.Start == "" || p.End == "" || o.Start <= p.End
	return startsBeforeOtherEnds && otherStartsBeforeEnd
}

// clip narrows p to the bounds of o. Callers check Overlaps first.
func (p Period) clip(o Period) Period {
	out := p
	if out.Start == "" || (o.Start != "" && o.Start > out.Start) {
		out.Start = o.Start
	}
	if out.End == "" || (o.End != "" && o.End < out.End) {
		out.End = o.End
	}
	return out
}

func (p Period) endLabel() string {
	if p.End == "" {
		return "present"
	}
	return p.End
}

// MinimumWage is one SMIC revision.
type MinimumWage struct {
	Period
	HourlyGross     float64 `json:"horaire_brut"`
	MonthlyGross35h float64 `json:"mensuel_brut_35h"`
	AnnualGross35h  float64 `json:"annuel_brut_35h"`
	Decree          string  `json:"decret,omitempty"`
}

// SocialSecurityCeiling is the plafond de la Securite sociale for a year.
type SocialSecurityCeiling struct {
	Year    int `json:"annee"`
	Monthly int `json:"mensuel"`
	Annual  int `json:"annuel"`
	Daily   int `json:"journalier"`
	Hourly  int `json:"horaire"`
}

// ContributionLine is one social contribution applicable in a given year,
// restricted to the sub-range of that year during which its rates held.
type ContributionLine struct {
	Code         string  `json:"code"`
	Label        string  `json:"libelle"`
	Base         string  `json:"base"`
	EmployeeRate float64 `json:"taux_salarie"`
	EmployerRate float64 `json:"taux_employeur"`
	Conditions   string  `json:"conditions,omitempty"`
	Year         int     `json:"annee"`
	Period
}

// GridEntry is a collective-bargaining minimum for one position/coefficient.
type GridEntry struct {
	AgreementID         int     `json:"idcc"`
	AgreementName       string  `json:"nom_ccn"`
	Category            string  `json:"categorie"`
	Position            string  `json:"position"`
	Coefficient         int     `json:"coefficient"`
	MinimumMonthlyGross float64 `json:"minimum_brut_mensuel"`
	Source              string  `json:"accord_source,omitempty"`
	Period
}

// TransportSubsidy is the public transport pass price and the mandatory
// employer share.
type TransportSubsidy struct {
	Kind                string  `json:"type"`
	MonthlyPrice        float64 `json:"montant_mensuel"`
	ReimbursementPct    float64 `json:"remboursement_pct"`
	ReimbursementAmount float64 `json:"remboursement_montant"`
	Period
}

// OvertimeRule is a statutory overtime majoration band.
type OvertimeRule struct {
	Band           string `json:"rang"`
	WeeklyHoursMin int    `json:"heures_hebdo_min"`
	WeeklyHoursMax int    `json:"heures_hebdo_max,omitempty"` // 0 = unbounded
	MajorationPct  int    `json:"majoration_pct"`
	LegalReference string `json:"reference_legale"`
}

// Severity classes for control rules, C1 being the most serious.
const (
	SeverityC1 = "C1"
	SeverityC2 = "C2"
	SeverityC3 = "C3"
	SeverityC4 = "C4"
)

// ControlRule is a check the oracle must apply to the payslip.
type ControlRule struct {
	Code     string `json:"code"`
	Category string `json:"categorie"`
	Name     string `json:"nom"`
	Rule     string `json:"regle"`
	Severity string `json:"severite"`
}

// ratePeriod is one segment of a contribution line's rate history.
type ratePeriod struct {
	Period
	EmployeeRate float64
	EmployerRate float64
	Label        string // overrides the line label when set
	Conditions   string // overrides the line conditions when set
}

// contributionSpec is a catalog line together with its rate history.
type contributionSpec struct {
	Code       string
	Label      string
	Base       string
	Conditions string
	Rates      []ratePeriod
}
