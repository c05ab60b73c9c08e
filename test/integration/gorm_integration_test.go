package integration

import (
	"context"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"paie-detect-be/internal/dto"
	"paie-detect-be/internal/entity"
	"paie-detect-be/internal/model"
	"paie-detect-be/internal/repository/specification"
	"paie-detect-be/internal/repository/unitofwork"
	"paie-detect-be/pkg/database"
	"paie-detect-be/pkg/reconcile"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(model.All()...))

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(ctx)

	sqlDB, _ := gormDB.DB()
	require.NoError(t, sqlDB.Ping())

	record := reconcile.Normalize(reconcile.Candidate{
		"nb_anomalies":            1,
		"gain_mensuel":            20,
		"anciennete_mois":         12,
		"periode_reclamable_mois": 12,
		"anomalies_resume":        []any{map[string]any{"categorie": "transport", "impact_mensuel": 20}},
	})
	analysis := &entity.Analysis{Id: uuid.New(), Record: record, AnalyzedAt: time.Now()}
	require.NoError(t, uow.AnalysisRepository().Create(ctx, analysis))
	defer gormDB.Where("id = ?", analysis.Id).Delete(&model.Analysis{})

	t.Run("Only one report dispatch wins", func(t *testing.T) {
		var wins atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := uowFactory.NewUnitOfWork(ctx).AnalysisRepository().
					MarkReportSent(ctx, analysis.Id, "Camille", "camille@example.fr", &dto.DetailedReport{}, time.Now())
				assert.NoError(t, err)
				if ok {
					wins.Add(1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), wins.Load())
	})

	t.Run("Canonical figures survive the round trip", func(t *testing.T) {
		got, err := uow.AnalysisRepository().FindOne(ctx, specification.ByID{ID: analysis.Id})
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, record, got.Record)
		assert.True(t, got.ReportSent)
	})
}
