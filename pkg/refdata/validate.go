package refdata

import (
	"errors"
	"fmt"
)

// Validate checks that no two records of the same series cover a common date
// and that every period is well formed. All violations are reported.
func (t *Table) Validate() error {
	var errs []error

	wages := make([]Period, 0, len(t.minimumWages))
	for _, m := range t.minimumWages {
		wages = append(wages, m.Period)
	}
	errs = append(errs, checkSeries("smic", wages)...)

	years := make(map[int]bool, len(t.ceilings))
	for _, c := range t.ceilings {
		if years[c.Year] {
			errs = append(errs, fmt.Errorf("plafond_ss: year %d defined twice", c.Year))
		}
		years[c.Year] = true
	}
	if !years[t.defaultYear] {
		errs = append(errs, fmt.Errorf("plafond_ss: default year %d not curated", t.defaultYear))
	}

	for _, spec := range t.contributions {
		periods := make([]Period, 0, len(spec.Rates))
		for _, r := range spec.Rates {
			periods = append(periods, r.Period)
		}
		errs = append(errs, checkSeries("cotisation "+spec.Code, periods)...)
	}

	grids := make(map[string][]Period)
	var gridKeys []string
	for _, g := range t.grids {
		key := fmt.Sprintf("grille %d/%s/%s/%d", g.AgreementID, g.Category, g.Position, g.Coefficient)
		if _, ok := grids[key]; !ok {
			gridKeys = append(gridKeys, key)
		}
		grids[key] = append(grids[key], g.Period)
	}
	for _, key := range gridKeys {
		errs = append(errs, checkSeries(key, grids[key])...)
	}

	transport := make(map[string][]Period)
	var kinds []string
	for _, s := range t.transport {
		if _, ok := transport[s.Kind]; !ok {
			kinds = append(kinds, s.Kind)
		}
		transport[s.Kind] = append(transport[s.Kind], s.Period)
	}
	for _, kind := range kinds {
		errs = append(errs, checkSeries("transport "+kind, transport[kind])...)
	}

	return errors.Join(errs...)
}

func checkSeries(name string, periods []Period) []error {
	var errs []error
	for i, p := range periods {
		if p.Start != "" && p.End != "" && p.End < p.Start {
			errs = append(errs, fmt.Errorf("%s: period %s..%s ends before it starts", name, p.Start, p.End))
		}
		for _, o := range periods[i+1:] {
			if p.Overlaps(o) {
				errs = append(errs, fmt.Errorf("%s: period %s..%s overlaps %s..%s",
					name, p.Start, p.endLabel(), o.Start, o.endLabel()))
			}
		}
	}
	return errs
}
