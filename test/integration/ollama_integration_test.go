package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"paie-detect-be/pkg/llm"
	"paie-detect-be/pkg/llm/ollama"
	"paie-detect-be/pkg/oracle"
	"paie-detect-be/pkg/reconcile"

	"github.com/stretchr/testify/require"
)

// Needs a local Ollama server: OLLAMA_INTEGRATION_MODEL=gemma:2b go test ./test/integration
func TestOllamaAnswerReconciles(t *testing.T) {
	model := os.Getenv("OLLAMA_INTEGRATION_MODEL")
	if model == "" {
		t.Skip("Skipping integration test: OLLAMA_INTEGRATION_MODEL not set")
	}
	baseURL := os.Getenv("OLLAMA_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	provider := ollama.NewOllamaProvider(baseURL, model)
	answer, err := provider.Generate(ctx,
		`Réponds uniquement avec ce JSON, sans rien ajouter : {"nombre_anomalies": 1, "gain_mensuel": 40, "anciennete_mois": 24, "periode_reclamable_mois": 24}`,
		llm.WithTemperature(0),
	)
	require.NoError(t, err)

	outcome, ok := oracle.Parse(answer).(oracle.ParsedCandidate)
	require.True(t, ok, "answer: %s", answer)

	record := reconcile.Normalize(outcome.Candidate)
	require.Equal(t, reconcile.Round2(record.MonthlyGain*12), record.AnnualGain)
}
