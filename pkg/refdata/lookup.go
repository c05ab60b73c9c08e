package refdata

import (
	"sort"
	"strconv"
)

// MinimumWageAt returns the SMIC revision in force on date. A date outside
// every range resolves to the nearest revision: the latest one that started
// before date, or the oldest one when date precedes the whole series.
func (t *Table) MinimumWageAt(date string) MinimumWage {
	return nearest(t.minimumWages, date, func(m MinimumWage) Period { return m.Period })
}

// SocialSecurityCeilingFor returns the ceiling for year, or the ceiling of
// DefaultCeilingYear when year is not curated.
func (t *Table) SocialSecurityCeilingFor(year int) SocialSecurityCeiling {
	var fallback SocialSecurityCeiling
	for _, c := range t.ceilings {
		if c.Year == year {
			return c
		}
		if c.Year == t.defaultYear {
			fallback = c
		}
	}
	return fallback
}

// ContributionRates returns the contribution lines applicable in year. A line
// whose rate changed during the year appears once per sub-range.
func (t *Table) ContributionRates(year int) []ContributionLine {
	y := strconv.Itoa(year)
	yearPeriod := Period{Start: y + "-01-01", End: y + "-12-31"}

	lines := make([]ContributionLine, 0, len(t.contributions)+1)
	for _, spec := range t.contributions {
		for _, rate := range spec.Rates {
			if !rate.Overlaps(yearPeriod) {
				continue
			}
			line := ContributionLine{
				Code:         spec.Code,
				Label:        spec.Label,
				Base:         spec.Base,
				EmployeeRate: rate.EmployeeRate,
				EmployerRate: rate.EmployerRate,
				Conditions:   spec.Conditions,
				Year:         year,
				Period:       rate.clip(yearPeriod),
			}
			if rate.Label != "" {
				line.Label = rate.Label
			}
			if rate.Conditions != "" {
				line.Conditions = rate.Conditions
			}
			lines = append(lines, line)
		}
	}
	return lines
}

// BargainingMinimum looks up the conventional minimum for an exact
// agreement/category/position/coefficient on date. The boolean is false when
// no minimum is known, which is not an error.
func (t *Table) BargainingMinimum(agreementID int, category, position string, coefficient int, date string) (GridEntry, bool) {
	for _, g := range t.grids {
		if g.AgreementID == agreementID &&
			g.Category == category &&
			g.Position == position &&
			g.Coefficient == coefficient &&
			g.Covers(date) {
			return g, true
		}
	}
	return GridEntry{}, false
}

// BargainingGrid returns every grid entry of a category active on date,
// ordered by coefficient.
func (t *Table) BargainingGrid(agreementID int, category, date string) []GridEntry {
	var out []GridEntry
	for _, g := range t.grids {
		if g.AgreementID == agreementID && g.Category == category && g.Covers(date) {
			out = append(out, g)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Coefficient < out[j].Coefficient
	})
	return out
}

// TransportSubsidyAt resolves a transport pass the same way as the minimum
// wage. It reports false only when kind has no series at all.
func (t *Table) TransportSubsidyAt(kind, date string) (TransportSubsidy, bool) {
	var series []TransportSubsidy
	for _, s := range t.transport {
		if s.Kind == kind {
			series = append(series, s)
		}
	}
	if len(series) == 0 {
		return TransportSubsidy{}, false
	}
	return nearest(series, date, func(s TransportSubsidy) Period { return s.Period }), true
}

// OvertimeRules returns the statutory overtime bands.
func (t *Table) OvertimeRules() []OvertimeRule {
	return append([]OvertimeRule(nil), t.overtime...)
}

// ControlRules returns the checks the oracle applies to every payslip.
func (t *Table) ControlRules() []ControlRule {
	return append([]ControlRule(nil), t.controls...)
}

// nearest picks the record covering date. Without one it falls back to the
// record with the latest start not after date, then to the oldest record.
// series must not be empty.
func nearest[T any](series []T, date string, period func(T) Period) T {
	var (
		before, oldest       T
		beforeStart, oldStart string
		hasBefore            bool
	)
	for i, rec := range series {
		p := period(rec)
		if p.Covers(date) {
			return rec
		}
		if i == 0 || p.Start < oldStart {
			oldest, oldStart = rec, p.Start
		}
		if p.Start <= date && (!hasBefore || p.Start > beforeStart) {
			before, beforeStart, hasBefore = rec, p.Start, true
		}
	}
	if hasBefore {
		return before
	}
	return oldest
}
