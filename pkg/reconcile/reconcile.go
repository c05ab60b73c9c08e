// Package reconcile turns an untrusted payslip analysis produced by the oracle
// into the canonical record that is persisted and billed.
package reconcile

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// MaxClaimableMonths is the statutory limitation period for salary claims.
const MaxClaimableMonths = 36

// MaxMonthlyGain bounds the monthly gain so every derived figure stays finite.
const MaxMonthlyGain = 1_000_000

const (
	StatusConformant        = "conforme"
	StatusAnomaliesDetected = "anomalies_detectees"
)

// Candidate is an oracle answer as decoded from JSON. Nothing in it is
// trusted: fields may be missing, mistyped or inconsistent with each other.
type Candidate map[string]any

// AnomalySummary is the teaser view of one detected anomaly.
type AnomalySummary struct {
	Category      string  `json:"categorie"`
	Description   string  `json:"description_vague"`
	MonthlyImpact float64 `json:"impact_mensuel"`
	Certainty     string  `json:"certitude"`
}

// Record is the canonical analysis. Every derived figure is computed here and
// never copied from the candidate.
type Record struct {
	Status             string           `json:"status"`
	Conformant         bool             `json:"bulletin_conforme"`
	AnomalyCount       int              `json:"nombre_anomalies"`
	MonthlyGain        float64          `json:"gain_mensuel"`
	AnnualGain         float64          `json:"gain_annuel"`
	TotalPotentialGain float64          `json:"gain_total_potentiel"`
	TenureMonths       int              `json:"anciennete_mois"`
	ClaimableMonths    int              `json:"periode_reclamable_mois"`
	NetMonthlySalary   float64          `json:"salaire_net_mensuel"`
	AnnualSalaryPct    float64          `json:"pourcentage_salaire_annuel"`
	TotalSalaryPct     float64          `json:"pourcentage_salaire_total"`
	Tier               string           `json:"tier"`
	ReportPrice        int              `json:"prix_rapport"`
	PayslipPeriod      string           `json:"periode_bulletin"`
	Anomalies          []AnomalySummary `json:"anomalies_resume"`
	TeaserMessage      string           `json:"message_teaser"`
	AttentionPoints    []string         `json:"points_attention"`
	Reasoning          string           `json:"raisonnement"`
}

// MarshalJSON also emits the nb_anomalies alias so that both names the
// oracle uses carry the same value.
func (r Record) MarshalJSON() ([]byte, error) {
	type plain Record
	return json.Marshal(struct {
		plain
		AnomalyCountAlias int `json:"nb_anomalies"`
	}{plain(r), r.AnomalyCount})
}

// Normalize reconciles a candidate. It never fails: absent or unparseable
// fields read as zero, and contradictions are resolved deterministically.
// Normalize(r.Candidate()) == r for any record it returns.
func Normalize(c Candidate) Record {
	r := Record{
		TenureMonths:     c.months("anciennete_mois"),
		NetMonthlySalary: c.number("salaire_net_mensuel"),
		PayslipPeriod:    c.text("periode_bulletin"),
		TeaserMessage:    c.text("message_teaser"),
		AttentionPoints:  c.texts("points_attention"),
		Reasoning:        c.text("raisonnement"),
		Anomalies:        c.anomalies("anomalies_resume"),
	}

	r.AnomalyCount = c.months("nb_anomalies")
	if r.AnomalyCount == 0 {
		r.AnomalyCount = c.months("nombre_anomalies")
	}

	r.ClaimableMonths = c.months("periode_reclamable_mois")
	if r.ClaimableMonths > MaxClaimableMonths {
		tenure := r.TenureMonths
		if tenure <= 0 {
			tenure = MaxClaimableMonths
		}
		r.ClaimableMonths = min(tenure, MaxClaimableMonths)
	}

	r.MonthlyGain = min(max(c.number("gain_mensuel"), 0), MaxMonthlyGain)
	r.AnnualGain = Round2(r.MonthlyGain * 12)
	r.TotalPotentialGain = Round2(r.MonthlyGain * float64(r.ClaimableMonths))

	if c.flag("bulletin_conforme") || r.AnomalyCount == 0 {
		r.Status = StatusConformant
		r.Conformant = true
		r.AnomalyCount = 0
		r.MonthlyGain = 0
		r.AnnualGain = 0
		r.TotalPotentialGain = 0
		r.Anomalies = []AnomalySummary{}
	} else {
		r.Status = StatusAnomaliesDetected
		r.Conformant = false
	}

	tier := TierFor(r.AnnualGain)
	r.Tier = tier.Code
	r.ReportPrice = tier.Price

	if annualNet := r.NetMonthlySalary * 12; annualNet > 0 {
		r.AnnualSalaryPct = finite(Round2(r.AnnualGain / annualNet * 100))
		r.TotalSalaryPct = finite(Round2(r.TotalPotentialGain / annualNet * 100))
	}

	return r
}

// Candidate converts the record back into the oracle's shape.
func (r Record) Candidate() Candidate {
	anomalies := make([]any, 0, len(r.Anomalies))
	for _, a := range r.Anomalies {
		anomalies = append(anomalies, map[string]any{
			"categorie":         a.Category,
			"description_vague": a.Description,
			"impact_mensuel":    a.MonthlyImpact,
			"certitude":         a.Certainty,
		})
	}
	points := make([]any, 0, len(r.AttentionPoints))
	for _, p := range r.AttentionPoints {
		points = append(points, p)
	}

	return Candidate{
		"status":                     r.Status,
		"bulletin_conforme":          r.Conformant,
		"nb_anomalies":               r.AnomalyCount,
		"nombre_anomalies":           r.AnomalyCount,
		"gain_mensuel":               r.MonthlyGain,
		"gain_annuel":                r.AnnualGain,
		"gain_total_potentiel":       r.TotalPotentialGain,
		"anciennete_mois":            r.TenureMonths,
		"periode_reclamable_mois":    r.ClaimableMonths,
		"salaire_net_mensuel":        r.NetMonthlySalary,
		"pourcentage_salaire_annuel": r.AnnualSalaryPct,
		"pourcentage_salaire_total":  r.TotalSalaryPct,
		"prix_rapport":               r.ReportPrice,
		"periode_bulletin":           r.PayslipPeriod,
		"anomalies_resume":           anomalies,
		"message_teaser":             r.TeaserMessage,
		"points_attention":           points,
		"raisonnement":               r.Reasoning,
	}
}

// Round2 rounds half away from zero at the cent.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// finite maps overflowed results to zero.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func (c Candidate) number(key string) float64 {
	return toNumber(c[key])
}

func toNumber(v any) float64 {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// months reads a non-negative whole count.
func (c Candidate) months(key string) int {
	f := math.Trunc(c.number(key))
	if f <= 0 || f > math.MaxInt32 {
		return 0
	}
	return int(f)
}

func (c Candidate) text(key string) string {
	return toText(c[key])
}

func toText(v any) string {
	if v == nil {
		return ""
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(raw)
}

func (c Candidate) flag(key string) bool {
	b, err := cast.ToBoolE(c[key])
	return err == nil && b
}

func (c Candidate) texts(key string) []string {
	items, _ := c[key].([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := toText(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (c Candidate) anomalies(key string) []AnomalySummary {
	items, _ := c[key].([]any)
	out := make([]AnomalySummary, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, AnomalySummary{
			Category:      toText(m["categorie"]),
			Description:   toText(m["description_vague"]),
			MonthlyImpact: toNumber(m["impact_mensuel"]),
			Certainty:     toText(m["certitude"]),
		})
	}
	return out
}
