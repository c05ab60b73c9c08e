package oracle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantParsed bool
		wantStatus any
	}{
		{name: "bare object", text: `{"status":"conforme"}`, wantParsed: true, wantStatus: "conforme"},
		{name: "surrounded by prose", text: "Voici l'analyse :\n```json\n{\"status\":\"anomalies_detectees\",\"nb_anomalies\":2}\n```\nBonne journee.", wantParsed: true, wantStatus: "anomalies_detectees"},
		{name: "nested objects", text: `resultat {"status":"conforme","anomalies_resume":[{"categorie":"C1"}]} fin`, wantParsed: true, wantStatus: "conforme"},
		{name: "empty object", text: "{}", wantParsed: true},
		{name: "no braces", text: "Je ne peux pas lire ce document.", wantParsed: false},
		{name: "empty answer", text: "", wantParsed: false},
		{name: "reversed braces", text: "} rien {", wantParsed: false},
		{name: "truncated json", text: `{"status":"conforme", "gain_mensuel": }`, wantParsed: false},
		{name: "two objects", text: `{"a":1} puis {"b":2}`, wantParsed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Parse(tt.text)
			switch o := out.(type) {
			case ParsedCandidate:
				require.True(t, tt.wantParsed, "unexpected success")
				require.NotNil(t, o.Candidate)
				assert.Equal(t, tt.wantStatus, o.Candidate["status"])
			case ExtractionFailed:
				require.False(t, tt.wantParsed, "unexpected failure: %s", o.Reason)
				assert.Equal(t, tt.text, o.RawText)
				assert.NotEmpty(t, o.Reason)
			default:
				t.Fatalf("unknown outcome %T", out)
			}
		})
	}
}

func TestExtractionFailedErr(t *testing.T) {
	out := Parse("pas de json")
	failed, ok := out.(ExtractionFailed)
	require.True(t, ok)

	err := failed.Err()
	assert.True(t, errors.Is(err, ErrOracleFormat))

	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "pas de json", fe.RawText)
	assert.Contains(t, err.Error(), "no JSON object found")
}

func TestParseInto(t *testing.T) {
	var report struct {
		Summary string   `json:"resume"`
		Refs    []string `json:"references_legales"`
	}

	err := ParseInto("Rapport:\n{\"resume\":\"ok\",\"references_legales\":[\"L3121-36\"]}", &report)
	require.NoError(t, err)
	assert.Equal(t, "ok", report.Summary)
	assert.Equal(t, []string{"L3121-36"}, report.Refs)

	err = ParseInto(`{"resume": 12}`, &report)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOracleFormat)
}
