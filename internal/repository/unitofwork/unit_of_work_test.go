package unitofwork

import (
	"context"
	"testing"
	"time"

	"paie-detect-be/internal/dto"
	"paie-detect-be/internal/entity"
	"paie-detect-be/internal/model"
	"paie-detect-be/internal/repository/specification"
	"paie-detect-be/pkg/database"
	"paie-detect-be/pkg/reconcile"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewSQLiteDB(":memory:", logger.Silent)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

func sampleRecord() reconcile.Record {
	return reconcile.Normalize(reconcile.Candidate{
		"nb_anomalies":        2,
		"gain_mensuel":        "41.67",
		"anciennete_mois":     48,
		"salaire_net_mensuel": 2500,
		"periode_bulletin":    "Mars 2025",
		"message_teaser":      "Des écarts ont été détectés.",
		"points_attention":    []any{"Vérifier la mutuelle"},
		"anomalies_resume": []any{
			map[string]any{"categorie": "heures_sup", "description_vague": "Majoration", "impact_mensuel": 30, "certitude": "haute"},
			map[string]any{"categorie": "transport", "description_vague": "Navigo", "impact_mensuel": 11.67, "certitude": "moyenne"},
		},
	})
}

func TestUnitOfWork_AnalysisLifecycle(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	uow := NewRepositoryFactory(db).NewUnitOfWork(ctx)

	expires := time.Now().Add(entity.FileRetention)
	file := &entity.File{Id: uuid.New(), BlobKey: "1-bulletin.pdf", FileName: "bulletin.pdf", FileType: "application/pdf", FileSize: 1024, ExpiresAt: &expires}
	require.NoError(t, uow.FileRepository().Create(ctx, file))

	record := sampleRecord()
	analysis := &entity.Analysis{Id: uuid.New(), FileId: &file.Id, Record: record}
	require.NoError(t, uow.AnalysisRepository().Create(ctx, analysis))

	got, err := uow.AnalysisRepository().FindOne(ctx, specification.ByID{ID: analysis.Id})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, record, got.Record)
	assert.Equal(t, file.Id, *got.FileId)
	assert.False(t, got.ReportSent)
	assert.Nil(t, got.DetailedReport)

	missing, err := uow.AnalysisRepository().FindOne(ctx, specification.ByID{ID: uuid.New()})
	require.NoError(t, err)
	assert.Nil(t, missing)

	report := &dto.DetailedReport{ClaimLetter: "Madame, Monsieur,"}
	updated, err := uow.AnalysisRepository().MarkReportSent(ctx, analysis.Id, "Camille", "camille@example.fr", report, time.Now())
	require.NoError(t, err)
	assert.True(t, updated)

	again, err := uow.AnalysisRepository().MarkReportSent(ctx, analysis.Id, "Other", "other@example.fr", report, time.Now())
	require.NoError(t, err)
	assert.False(t, again)

	got, err = uow.AnalysisRepository().FindOne(ctx, specification.ByID{ID: analysis.Id})
	require.NoError(t, err)
	assert.True(t, got.ReportSent)
	assert.Equal(t, "camille@example.fr", *got.Email)
	assert.Equal(t, dto.Text("Madame, Monsieur,"), got.DetailedReport.ClaimLetter)
	assert.Equal(t, record, got.Record)

	count, err := uow.AnalysisRepository().Count(ctx, specification.WithRecipient{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUnitOfWork_LeadIsIdempotent(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	uow := NewRepositoryFactory(db).NewUnitOfWork(ctx)

	analysisID := uuid.New()
	lead := func() *entity.Lead {
		return &entity.Lead{Id: uuid.New(), FirstName: "Camille", Email: "camille@example.fr", AnalysisId: analysisID, TotalPotentialGain: 1500, ReportPrice: 39, Source: entity.LeadSourceLaunchOffer}
	}

	created, err := uow.LeadRepository().CreateIfAbsent(ctx, lead())
	require.NoError(t, err)
	assert.True(t, created)

	created, err = uow.LeadRepository().CreateIfAbsent(ctx, lead())
	require.NoError(t, err)
	assert.False(t, created)

	count, err := uow.LeadRepository().Count(ctx, specification.ByAnalysis{AnalysisID: analysisID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUnitOfWork_Rollback(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	uow := NewRepositoryFactory(db).NewUnitOfWork(ctx)

	require.NoError(t, uow.Begin(ctx))
	msg := &entity.ContactMessage{Id: uuid.New(), Name: "Sam", Email: "sam@example.fr", Subject: "Question", Message: "Bonjour"}
	require.NoError(t, uow.ContactMessageRepository().Create(ctx, msg))
	require.NoError(t, uow.Rollback())

	all, err := uow.ContactMessageRepository().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	assert.Error(t, uow.Commit())
	require.NoError(t, uow.Begin(ctx))
	assert.Error(t, uow.Begin(ctx))
	require.NoError(t, uow.Commit())
}

func TestFile_Available(t *testing.T) {
	now := time.Now()
	past, future := now.Add(-time.Hour), now.Add(time.Hour)

	assert.True(t, (&entity.File{}).Available(now))
	assert.True(t, (&entity.File{ExpiresAt: &future}).Available(now))
	assert.False(t, (&entity.File{ExpiresAt: &past}).Available(now))
	assert.False(t, (&entity.File{ExpiresAt: &future, PurgedAt: &past}).Available(now))
}
