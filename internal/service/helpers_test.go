package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"paie-detect-be/internal/dto"
	"paie-detect-be/internal/entity"
	"paie-detect-be/internal/model"
	"paie-detect-be/internal/pkg/blobstore"
	"paie-detect-be/internal/pkg/mailer"
	"paie-detect-be/internal/repository/unitofwork"
	"paie-detect-be/pkg/database"
	"paie-detect-be/pkg/llm"
	"paie-detect-be/pkg/reconcile"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

type mockLLM struct {
	mock.Mock
}

func (m *mockLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	args := m.Called(ctx, history)
	return args.String(0), args.Error(1)
}

func (m *mockLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type fakeMailer struct {
	mu       sync.Mutex
	reports  []mailer.ReportMail
	contacts []mailer.ContactMail
	err      error
}

func (f *fakeMailer) SendReport(mail mailer.ReportMail) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.reports = append(f.reports, mail)
	return nil
}

func (f *fakeMailer) SendContact(mail mailer.ContactMail) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.contacts = append(f.contacts, mail)
	return nil
}

type fakePublisher struct {
	leads []dto.LeadCapturedMessage
	err   error
}

func (f *fakePublisher) PublishLeadCaptured(ctx context.Context, msg dto.LeadCapturedMessage) error {
	if f.err != nil {
		return f.err
	}
	f.leads = append(f.leads, msg)
	return nil
}

func setupFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()
	db, err := database.NewSQLiteDB(":memory:", gormlogger.Silent)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))
	return unitofwork.NewRepositoryFactory(db)
}

func setupBlobs(t *testing.T) *blobstore.LocalStore {
	t.Helper()
	store, err := blobstore.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func anomalousRecord() reconcile.Record {
	return reconcile.Normalize(reconcile.Candidate{
		"nb_anomalies":            2,
		"gain_mensuel":            50,
		"anciennete_mois":         40,
		"periode_reclamable_mois": 36,
		"salaire_net_mensuel":     2000,
		"periode_bulletin":        "Janvier 2025",
		"raisonnement":            "Taux horaire inférieur au minimum conventionnel.",
		"anomalies_resume": []any{
			map[string]any{"categorie": "salaire_minimum", "description_vague": "Écart sur le taux", "impact_mensuel": 35, "certitude": "haute"},
			map[string]any{"categorie": "transport", "description_vague": "Remboursement partiel", "impact_mensuel": 15, "certitude": "moyenne"},
		},
	})
}

func storeAnalysis(t *testing.T, factory unitofwork.RepositoryFactory, record reconcile.Record) *entity.Analysis {
	t.Helper()
	ctx := context.Background()
	analysis := &entity.Analysis{Id: uuid.New(), Record: record, AnalyzedAt: time.Now()}
	require.NoError(t, factory.NewUnitOfWork(ctx).AnalysisRepository().Create(ctx, analysis))
	return analysis
}
