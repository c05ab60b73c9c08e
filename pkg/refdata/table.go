package refdata

// Table is an immutable set of French payroll reference series. Methods never
// mutate it, so a single Table can be shared by every request.
type Table struct {
	minimumWages  []MinimumWage
	ceilings      []SocialSecurityCeiling
	contributions []contributionSpec
	grids         []GridEntry
	transport     []TransportSubsidy
	overtime      []OvertimeRule
	controls      []ControlRule
	defaultYear   int
}

// DefaultCeilingYear is used when a ceiling is requested for a year that is
// not curated.
const DefaultCeilingYear = 2026

// SYNTEC (bureaux d'etudes techniques) is the only agreement curated so far.
const AgreementSyntec = 1486

// TransportNavigo is the Ile-de-France monthly pass.
const TransportNavigo = "navigo"

var defaultTable = &Table{
	minimumWages:  minimumWages,
	ceilings:      ceilings,
	contributions: contributionCatalog,
	grids:         syntecGrids,
	transport:     transportSubsidies,
	overtime:      overtimeRules,
	controls:      controlRules,
	defaultYear:   DefaultCeilingYear,
}

// Default returns the curated reference table.
func Default() *Table {
	return defaultTable
}

var minimumWages = []MinimumWage{
	{Period: Period{"2026-01-01", ""}, HourlyGross: 12.02, MonthlyGross35h: 1823.03, AnnualGross35h: 21876.36, Decree: "Decret 2025-1228 du 17/12/2025"},
	{Period: Period{"2024-11-01", "2025-12-31"}, HourlyGross: 11.88, MonthlyGross35h: 1801.80, AnnualGross35h: 21621.60, Decree: "Decret 2024-951 du 23/10/2024"},
	{Period: Period{"2024-01-01", "2024-10-31"}, HourlyGross: 11.65, MonthlyGross35h: 1766.92, AnnualGross35h: 21203.04, Decree: "Decret 2023-1216 du 20/12/2023"},
	{Period: Period{"2023-05-01", "2023-12-31"}, HourlyGross: 11.52, MonthlyGross35h: 1747.20, AnnualGross35h: 20966.40},
	{Period: Period{"2023-01-01", "2023-04-30"}, HourlyGross: 11.27, MonthlyGross35h: 1709.28, AnnualGross35h: 20511.36},
	{Period: Period{"2022-08-01", "2022-12-31"}, HourlyGross: 11.07, MonthlyGross35h: 1678.95, AnnualGross35h: 20147.40},
	{Period: Period{"2022-05-01", "2022-07-31"}, HourlyGross: 10.85, MonthlyGross35h: 1645.58, AnnualGross35h: 19746.96},
	{Period: Period{"2022-01-01", "2022-04-30"}, HourlyGross: 10.57, MonthlyGross35h: 1603.12, AnnualGross35h: 19237.44},
}

var ceilings = []SocialSecurityCeiling{
	{Year: 2026, Monthly: 4005, Annual: 48060, Daily: 220, Hourly: 29},
	{Year: 2025, Monthly: 3925, Annual: 47100, Daily: 216, Hourly: 29},
	{Year: 2024, Monthly: 3864, Annual: 46368, Daily: 213, Hourly: 29},
	{Year: 2023, Monthly: 3666, Annual: 43992, Daily: 202, Hourly: 27},
	{Year: 2022, Monthly: 3428, Annual: 41136, Daily: 189, Hourly: 26},
}

// flat is a rate that never changed over the curated range.
func flat(employee, employer float64) []ratePeriod {
	return []ratePeriod{{EmployeeRate: employee, EmployerRate: employer}}
}

var contributionCatalog = []contributionSpec{
	{Code: "MALADIE_REDUIT", Label: "Maladie maternite (taux reduit)", Base: "totalite", Conditions: "Remuneration <= 2.5 SMIC", Rates: flat(0, 7.00)},
	{Code: "MALADIE_PLEIN", Label: "Maladie maternite (taux plein)", Base: "totalite", Conditions: "Remuneration > 2.5 SMIC", Rates: flat(0, 13.00)},
	{Code: "VIEILLESSE_DEPL", Label: "Vieillesse deplafonnee", Base: "totalite", Rates: []ratePeriod{
		{Period: Period{"", "2023-12-31"}, EmployeeRate: 0.40, EmployerRate: 1.60},
		{Period: Period{"2024-01-01", "2025-12-31"}, EmployeeRate: 0.40, EmployerRate: 2.02},
		{Period: Period{"2026-01-01", ""}, EmployeeRate: 0.40, EmployerRate: 2.11},
	}},
	{Code: "VIEILLESSE_PLAF", Label: "Vieillesse plafonnee", Base: "tranche 1 (PMSS)", Rates: flat(6.90, 8.55)},
	{Code: "AF_REDUIT", Label: "Allocations familiales (taux reduit)", Base: "totalite", Conditions: "Remuneration <= 3.5 SMIC", Rates: flat(0, 3.45)},
	{Code: "AF_PLEIN", Label: "Allocations familiales (taux plein)", Base: "totalite", Conditions: "Remuneration > 3.5 SMIC", Rates: flat(0, 5.25)},
	{Code: "CSA", Label: "Contribution solidarite autonomie", Base: "totalite", Rates: flat(0, 0.30)},
	{Code: "FNAL_PETIT", Label: "FNAL (< 50 salaries)", Base: "tranche 1 (PMSS)", Conditions: "Entreprise < 50 salaries", Rates: flat(0, 0.10)},
	{Code: "FNAL_GRAND", Label: "FNAL (>= 50 salaries)", Base: "totalite", Conditions: "Entreprise >= 50 salaries", Rates: flat(0, 0.50)},
	{Code: "CSG_DED", Label: "CSG deductible", Base: "98.25% du brut", Conditions: "Abattement 1.75% sur brut", Rates: flat(6.80, 0)},
	{Code: "CSG_NDED", Label: "CSG non deductible", Base: "98.25% du brut", Rates: flat(2.40, 0)},
	{Code: "CRDS", Label: "CRDS", Base: "98.25% du brut", Rates: flat(0.50, 0)},
	{Code: "RC_T1", Label: "Retraite complementaire T1", Base: "tranche 1 (PMSS)", Rates: flat(3.15, 4.72)},
	{Code: "RC_T2", Label: "Retraite complementaire T2", Base: "tranche 2 (1-8 PMSS)", Rates: flat(8.64, 12.95)},
	{Code: "CEG_T1", Label: "CEG tranche 1", Base: "tranche 1 (PMSS)", Rates: flat(0.86, 1.29)},
	{Code: "CEG_T2", Label: "CEG tranche 2", Base: "tranche 2 (1-8 PMSS)", Rates: flat(1.08, 1.62)},
	{Code: "CET", Label: "Contribution equilibre technique", Base: "totalite (des 1er euro)", Conditions: "Remuneration > 1 PMSS", Rates: flat(0.14, 0.21)},
	{Code: "CHOMAGE", Label: "Assurance chomage", Base: "tranche A (4 PMSS)", Rates: []ratePeriod{
		{Period: Period{"", "2024-12-31"}, EmployerRate: 4.05},
		{Period: Period{"2025-01-01", "2025-04-30"}, EmployerRate: 4.05, Label: "Assurance chomage (avant mai 2025)", Conditions: "Avant 1er mai 2025"},
		{Period: Period{"2025-05-01", "2025-12-31"}, EmployerRate: 4.00, Label: "Assurance chomage (apres mai 2025)", Conditions: "Apres 1er mai 2025"},
		{Period: Period{"2026-01-01", ""}, EmployerRate: 4.05},
	}},
	{Code: "AGS", Label: "AGS", Base: "tranche A (4 PMSS)", Rates: []ratePeriod{
		{Period: Period{"", "2023-12-31"}, EmployerRate: 0.15},
		{Period: Period{"2024-01-01", "2024-12-31"}, EmployerRate: 0.20},
		{Period: Period{"2025-01-01", ""}, EmployerRate: 0.25},
	}},
}

func syntecEntry(position string, coefficient int, minimum float64, period Period, source string) GridEntry {
	return GridEntry{
		AgreementID:         AgreementSyntec,
		AgreementName:       "SYNTEC (BETIC)",
		Category:            "cadres",
		Position:            position,
		Coefficient:         coefficient,
		MinimumMonthlyGross: minimum,
		Source:              source,
		Period:              period,
	}
}

var (
	syntec2025 = Period{"2025-01-01", ""}
	syntec2023 = Period{"2023-01-01", "2024-12-31"}
	syntec2022 = Period{"2022-01-01", "2022-12-31"}
)

var syntecGrids = []GridEntry{
	syntecEntry("1.1", 95, 2135, syntec2025, "Accord du 26 juin 2024"),
	syntecEntry("1.2", 100, 2240, syntec2025, "Accord du 26 juin 2024"),
	syntecEntry("2.1", 105, 2315, syntec2025, "Accord du 26 juin 2024"),
	syntecEntry("2.1", 115, 2530, syntec2025, "Accord du 26 juin 2024"),
	syntecEntry("2.2", 130, 2850, syntec2025, "Accord du 26 juin 2024"),
	syntecEntry("2.3", 150, 3275, syntec2025, "Accord du 26 juin 2024"),
	syntecEntry("3.1", 170, 3650, syntec2025, "Accord du 26 juin 2024"),
	syntecEntry("3.2", 210, 4495, syntec2025, "Accord du 26 juin 2024"),
	syntecEntry("3.3", 270, 5755, syntec2025, "Accord du 26 juin 2024"),

	syntecEntry("1.1", 95, 2035, syntec2023, "Avenant 47 du 31 mars 2022"),
	syntecEntry("1.2", 100, 2140, syntec2023, "Avenant 47 du 31 mars 2022"),
	syntecEntry("2.1", 105, 2240, syntec2023, "Avenant 47 du 31 mars 2022"),
	syntecEntry("2.1", 115, 2455, syntec2023, "Avenant 47 du 31 mars 2022"),
	syntecEntry("2.2", 130, 2775, syntec2023, "Avenant 47 du 31 mars 2022"),
	syntecEntry("2.3", 150, 3200, syntec2023, "Avenant 47 du 31 mars 2022"),
	syntecEntry("3.1", 170, 3575, syntec2023, "Avenant 47 du 31 mars 2022"),
	syntecEntry("3.2", 210, 4420, syntec2023, "Avenant 47 du 31 mars 2022"),
	syntecEntry("3.3", 270, 5680, syntec2023, "Avenant 47 du 31 mars 2022"),

	syntecEntry("1.1", 95, 1900, syntec2022, "Avenant 46"),
	syntecEntry("1.2", 100, 2000, syntec2022, "Avenant 46"),
	syntecEntry("2.1", 105, 2100, syntec2022, "Avenant 46"),
	syntecEntry("2.1", 115, 2300, syntec2022, "Avenant 46"),
	syntecEntry("2.2", 130, 2600, syntec2022, "Avenant 46"),
	syntecEntry("2.3", 150, 3000, syntec2022, "Avenant 46"),
	syntecEntry("3.1", 170, 3400, syntec2022, "Avenant 46"),
	syntecEntry("3.2", 210, 4200, syntec2022, "Avenant 46"),
	syntecEntry("3.3", 270, 5400, syntec2022, "Avenant 46"),
}

var transportSubsidies = []TransportSubsidy{
	{Kind: TransportNavigo, Period: Period{"2025-01-01", ""}, MonthlyPrice: 88.80, ReimbursementPct: 50, ReimbursementAmount: 44.40},
	{Kind: TransportNavigo, Period: Period{"2024-01-01", "2024-12-31"}, MonthlyPrice: 86.40, ReimbursementPct: 50, ReimbursementAmount: 43.20},
	{Kind: TransportNavigo, Period: Period{"2023-01-01", "2023-12-31"}, MonthlyPrice: 84.10, ReimbursementPct: 50, ReimbursementAmount: 42.05},
	{Kind: TransportNavigo, Period: Period{"2022-01-01", "2022-12-31"}, MonthlyPrice: 75.20, ReimbursementPct: 50, ReimbursementAmount: 37.60},
}

var overtimeRules = []OvertimeRule{
	{Band: "36e a 43e heure (8 premieres HS)", WeeklyHoursMin: 36, WeeklyHoursMax: 43, MajorationPct: 25, LegalReference: "Art. L3121-36 Code du travail"},
	{Band: "A partir de la 44e heure", WeeklyHoursMin: 44, MajorationPct: 50, LegalReference: "Art. L3121-36 Code du travail"},
}

var controlRules = []ControlRule{
	{Code: "ARITH_01", Category: "arithmetique", Name: "Salaire de base", Rule: "salaire_base == heures x taux_horaire", Severity: SeverityC1},
	{Code: "ARITH_02", Category: "arithmetique", Name: "Heures supplementaires", Rule: "montant_HS == nb_HS x taux x (1 + majoration/100)", Severity: SeverityC1},
	{Code: "ARITH_03", Category: "arithmetique", Name: "Brut total", Rule: "brut == base + HS + primes + avantages", Severity: SeverityC1},
	{Code: "ARITH_04", Category: "arithmetique", Name: "Cotisations", Rule: "montant_cotis == assiette x taux", Severity: SeverityC2},
	{Code: "ARITH_05", Category: "arithmetique", Name: "Net a payer", Rule: "net == brut - cotisations_salariales + remboursements", Severity: SeverityC2},
	{Code: "LEGAL_01", Category: "legal", Name: "SMIC", Rule: "taux_horaire >= smic_horaire", Severity: SeverityC1},
	{Code: "LEGAL_02", Category: "legal", Name: "Majoration HS", Rule: "majoration >= 25% (8 premieres) ou 50% (suivantes)", Severity: SeverityC1},
	{Code: "LEGAL_03", Category: "legal", Name: "Transport 50%", Rule: "remboursement >= 50% x abonnement", Severity: SeverityC1},
	{Code: "LEGAL_04", Category: "legal", Name: "Assiette CSG/CRDS", Rule: "assiette == 98.25% du brut", Severity: SeverityC2},
	{Code: "LEGAL_05", Category: "legal", Name: "Taux CSG/CRDS total", Rule: "CSG 9.20% + CRDS 0.50% = 9.70%", Severity: SeverityC2},
	{Code: "CCN_01", Category: "conventionnel", Name: "Minimum conventionnel", Rule: "brut >= minimum_grille[position][coefficient]", Severity: SeverityC1},
	{Code: "CCN_02", Category: "conventionnel", Name: "Classification sur bulletin", Rule: "position et coefficient sur le bulletin", Severity: SeverityC3},
	{Code: "CCN_03", Category: "conventionnel", Name: "Prime de vacances", Rule: "10% masse CP (verif collective)", Severity: SeverityC4},
	{Code: "CCN_04", Category: "conventionnel", Name: "Modalite 2 SYNTEC", Rule: "salaire >= 115% minimum conventionnel", Severity: SeverityC1},
	{Code: "CCN_05", Category: "conventionnel", Name: "Modalite 3 SYNTEC", Rule: "salaire >= 120% minimum conventionnel", Severity: SeverityC1},
}
