package dto

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/spf13/cast"
)

type SendReportRequest struct {
	AnalysisId string `json:"analysis_id" validate:"required,uuid"`
	FirstName  string `json:"prenom" validate:"required"`
	Email      string `json:"email" validate:"required"`
}

type SendReportResponse struct {
	AlreadySent bool `json:"already_sent"`
}

// DetailedReport is the full report requested from the text model once a
// visitor leaves their contact details.
type DetailedReport struct {
	Summary         ReportSummary    `json:"resume_executif"`
	Anomalies       []ReportAnomaly  `json:"anomalies_detaillees"`
	KeyAmounts      ReportKeyAmounts `json:"montants_cles"`
	ClaimProcedure  ClaimProcedure   `json:"procedure_reclamation"`
	ClaimLetter     Text             `json:"lettre_reclamation"`
	LegalReferences []Text           `json:"references_legales"`
}

type ReportSummary struct {
	AnomalyCount  Amount `json:"nombre_anomalies"`
	MonthlyGain   Amount `json:"gain_mensuel"`
	AnnualGain    Amount `json:"gain_annuel"`
	TotalGain     Amount `json:"gain_total"`
	SalaryPercent Amount `json:"pourcentage_salaire"`
}

type ReportAnomaly struct {
	Title          Text   `json:"titre"`
	PayslipLine    Text   `json:"ligne_concernee"`
	ObservedValue  Text   `json:"valeur_constatee"`
	ExpectedValue  Text   `json:"valeur_attendue"`
	GapComputation Text   `json:"calcul_ecart"`
	MonthlyGap     Amount `json:"ecart_mensuel"`
	AnnualImpact   Amount `json:"impact_annuel"`
	TotalImpact    Amount `json:"impact_total"`
	LegalReference Text   `json:"reference_legale"`
	Explanation    Text   `json:"explication"`
}

type ReportKeyAmounts struct {
	GrossSalary Amount `json:"salaire_brut"`
	NetSalary   Amount `json:"salaire_net"`
	HoursWorked Amount `json:"heures_travaillees"`
	HourlyRate  Amount `json:"taux_horaire"`
}

type ClaimProcedure struct {
	Steps            []Text `json:"etapes"`
	LimitationPeriod Text   `json:"delai_prescription"`
	Attachments      []Text `json:"documents_joindre"`
	Advice           []Text `json:"conseils"`
}

// Amount accepts a JSON number or a numeric string. Anything else decodes to 0.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if s, ok := raw.(string); ok {
		raw = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	}
	f, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		f = 0
	}
	*a = Amount(f)
	return nil
}

// Text accepts any JSON scalar and keeps its string form.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*t = ""
		return nil
	}
	s, err := cast.ToStringE(raw)
	if err != nil {
		s = string(data)
	}
	*t = Text(s)
	return nil
}
