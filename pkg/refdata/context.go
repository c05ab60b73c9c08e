package refdata

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Curated bounds of the contribution catalog. Exhaustive rendering clamps the
// document year into this range and uses contributionFallbackYear outside it.
const (
	firstCuratedYear         = 2022
	lastCuratedYear          = 2026
	contributionFallbackYear = 2025
)

// ContextOptions selects what RenderContext emits.
type ContextOptions struct {
	// IncludeAll emits every historical period so the reader can pick the one
	// matching the document.
	IncludeAll bool
	// Date is the reference date (YYYY-MM-DD). Empty means today.
	Date        string
	AgreementID int
	// Category defaults to "cadres".
	Category    string
	Position    string
	Coefficient int
	// Region gates the transport section in point-in-time mode ("idf").
	Region string
}

// RenderContext produces the reference bundle handed to the oracle along with
// the payslip.
func (t *Table) RenderContext(opts ContextOptions) string {
	date := opts.Date
	if date == "" {
		date = DateOf(time.Now())
	}
	year, _ := strconv.Atoi(date[:min(4, len(date))])
	category := opts.Category
	if category == "" {
		category = "cadres"
	}

	var parts []string
	if opts.IncludeAll {
		parts = t.renderHistory(year)
	} else {
		parts = t.renderPointInTime(date, year, category, opts)
	}

	overtime := make([]string, 0, len(t.overtime))
	for _, o := range t.overtime {
		overtime = append(overtime, fmt.Sprintf("- %s: majoration %d%%", o.Band, o.MajorationPct))
	}
	parts = append(parts, "\n## Heures supplementaires (legal)\n"+strings.Join(overtime, "\n"))

	controls := make([]string, 0, len(t.controls))
	for _, r := range t.controls {
		controls = append(controls, fmt.Sprintf("- [%s] %s: %s (severite: %s)", r.Code, r.Name, r.Rule, r.Severity))
	}
	parts = append(parts, "\n## Regles de controle applicables\n"+strings.Join(controls, "\n"))

	return strings.Join(parts, "\n\n")
}

func (t *Table) renderHistory(year int) []string {
	parts := []string{fmt.Sprintf("## SMIC historique (%d-%d)", firstCuratedYear, lastCuratedYear)}
	for _, s := range t.minimumWages {
		parts = append(parts, fmt.Sprintf("- Du %s au %s : horaire %s EUR, mensuel 35h %s EUR%s",
			s.Start, s.endLabel(), num(s.HourlyGross), num(s.MonthlyGross35h), parenthesized(s.Decree)))
	}

	parts = append(parts, fmt.Sprintf("\n## Plafond Securite Sociale (%d-%d)", firstCuratedYear, lastCuratedYear))
	for _, p := range t.ceilings {
		parts = append(parts, fmt.Sprintf("- %d : PMSS %d EUR, PASS %d EUR", p.Year, p.Monthly, p.Annual))
	}

	contributionYear := year
	if contributionYear < firstCuratedYear || contributionYear > lastCuratedYear {
		contributionYear = contributionFallbackYear
	}
	parts = append(parts, fmt.Sprintf("\n## Cotisations URSSAF %d\n%s",
		contributionYear, renderContributions(t.ContributionRates(contributionYear))))

	parts = append(parts, "\n## Grilles SYNTEC cadres (toutes periodes)")
	for _, p := range t.gridPeriods(AgreementSyntec, "cadres") {
		grid := t.BargainingGrid(AgreementSyntec, "cadres", p.Start)
		if len(grid) == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("\n### Periode %s (%s)", periodLabel(p), grid[0].Source))
		for _, g := range grid {
			parts = append(parts, gridLine(g))
		}
	}

	parts = append(parts, "\n## Transport -- Pass Navigo (historique)")
	for _, s := range t.transport {
		if s.Kind != TransportNavigo {
			continue
		}
		parts = append(parts, fmt.Sprintf("- Du %s au %s : abonnement %s EUR, remboursement %s%% = %s EUR",
			s.Start, s.endLabel(), num(s.MonthlyPrice), num(s.ReimbursementPct), num(s.ReimbursementAmount)))
	}
	return parts
}

func (t *Table) renderPointInTime(date string, year int, category string, opts ContextOptions) []string {
	var parts []string

	if len(t.minimumWages) > 0 {
		smic := t.MinimumWageAt(date)
		decree := smic.Decree
		if decree == "" {
			decree = "N/A"
		}
		parts = append(parts, fmt.Sprintf("## SMIC en vigueur au %s\n- Horaire brut : %s EUR\n- Mensuel brut (35h) : %s EUR\n- Decret : %s",
			date, num(smic.HourlyGross), num(smic.MonthlyGross35h), decree))
	}

	pss := t.SocialSecurityCeilingFor(year)
	parts = append(parts, fmt.Sprintf("## Plafond Securite Sociale %d\n- PMSS (mensuel) : %d EUR\n- PASS (annuel) : %d EUR",
		pss.Year, pss.Monthly, pss.Annual))

	parts = append(parts, fmt.Sprintf("## Cotisations URSSAF %d\n%s", year, renderContributions(t.ContributionRates(year))))

	if opts.AgreementID != 0 {
		if opts.Position != "" && opts.Coefficient != 0 {
			if m, ok := t.BargainingMinimum(opts.AgreementID, category, opts.Position, opts.Coefficient, date); ok {
				source := m.Source
				if source == "" {
					source = "N/A"
				}
				parts = append(parts, fmt.Sprintf("## Minimum conventionnel (IDCC %d)\n- CCN : %s\n- Position %s -- Coefficient %d\n- Minimum brut mensuel : %s EUR\n- Accord : %s",
					opts.AgreementID, m.AgreementName, m.Position, m.Coefficient, num(m.MinimumMonthlyGross), source))
			}
		}
		if grid := t.BargainingGrid(opts.AgreementID, category, date); len(grid) > 0 {
			lines := make([]string, 0, len(grid))
			for _, g := range grid {
				lines = append(lines, gridLine(g))
			}
			parts = append(parts, fmt.Sprintf("## Grille complete %s -- %s\n%s", grid[0].AgreementName, category, strings.Join(lines, "\n")))
		}
	}

	if isIleDeFrance(opts.Region) {
		if nav, ok := t.TransportSubsidyAt(TransportNavigo, date); ok {
			parts = append(parts, fmt.Sprintf("## Transport -- Pass Navigo\n- Abonnement mensuel : %s EUR\n- Remboursement employeur obligatoire (%s%%) : %s EUR",
				num(nav.MonthlyPrice), num(nav.ReimbursementPct), num(nav.ReimbursementAmount)))
		}
	}
	return parts
}

// gridPeriods lists the distinct grid periods of a category, newest first.
func (t *Table) gridPeriods(agreementID int, category string) []Period {
	var out []Period
	seen := make(map[Period]bool)
	for _, g := range t.grids {
		if g.AgreementID != agreementID || g.Category != category || seen[g.Period] {
			continue
		}
		seen[g.Period] = true
		out = append(out, g.Period)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start > out[j].Start })
	return out
}

func renderContributions(lines []ContributionLine) string {
	out := make([]string, 0, len(lines))
	for _, c := range lines {
		line := fmt.Sprintf("- %s (%s): salarie %s%% / employeur %s%% -- base: %s",
			c.Label, c.Code, num(c.EmployeeRate), num(c.EmployerRate), c.Base)
		if c.Conditions != "" {
			line += " -- " + c.Conditions
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func gridLine(g GridEntry) string {
	return fmt.Sprintf("- Position %s coeff %d: %s EUR", g.Position, g.Coefficient, num(g.MinimumMonthlyGross))
}

// periodLabel renders "2025+", "2023-2024" or "2022".
func periodLabel(p Period) string {
	start := p.Start[:min(4, len(p.Start))]
	switch {
	case p.End == "":
		return start + "+"
	case p.End[:min(4, len(p.End))] == start:
		return start
	default:
		return start + "-" + p.End[:min(4, len(p.End))]
	}
}

func isIleDeFrance(region string) bool {
	r := strings.ToLower(strings.TrimSpace(region))
	return r == "idf" || r == "ile-de-france"
}

func parenthesized(s string) string {
	if s == "" {
		return ""
	}
	return " (" + s + ")"
}

// num prints the shortest decimal form: 88.8, 7, 1823.03.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
