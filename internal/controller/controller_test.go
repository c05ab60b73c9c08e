package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"paie-detect-be/internal/dto"
	"paie-detect-be/internal/pkg/logger"
	"paie-detect-be/internal/pkg/ratelimit"
	"paie-detect-be/internal/pkg/serverutils"
	"paie-detect-be/internal/service"
	"paie-detect-be/pkg/oracle"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploadService struct {
	gotName, gotType string
	gotData          []byte
}

func (f *fakeUploadService) Upload(ctx context.Context, fileName, declaredType string, data []byte) (*dto.UploadResponse, error) {
	f.gotName, f.gotType, f.gotData = fileName, declaredType, data
	return &dto.UploadResponse{FileId: uuid.NewString(), FileName: fileName, FileSize: int64(len(data))}, nil
}

type fakeAnalysisService struct {
	err error
}

func (f *fakeAnalysisService) Analyze(ctx context.Context, fileId uuid.UUID) (*dto.AnalysisTeaserResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.AnalysisTeaserResponse{AnalysisId: uuid.NewString(), Status: "anomalies_detectees", AnomalyCount: 2}, nil
}

func (f *fakeAnalysisService) Show(ctx context.Context, id uuid.UUID) (*dto.AnalysisTeaserResponse, error) {
	return nil, service.ErrNotFound
}

type fakeReportService struct {
	err error
}

func (f *fakeReportService) SendReport(ctx context.Context, req *dto.SendReportRequest) (*dto.SendReportResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.SendReportResponse{}, nil
}

type fakeContactService struct{}

func (fakeContactService) Submit(ctx context.Context, req *dto.ContactRequest, ip string) (*dto.ContactResponse, error) {
	return &dto.ContactResponse{Id: "c1"}, nil
}

type fakeAdminService struct {
	downloadErr error
}

func (f *fakeAdminService) ListAnalyses(ctx context.Context, offset int) (*dto.AdminAnalysesResponse, error) {
	return &dto.AdminAnalysesResponse{Analyses: []dto.AdminAnalysisItem{}, Offset: offset}, nil
}

func (f *fakeAdminService) DownloadFile(ctx context.Context, fileId uuid.UUID) (*service.FileDownload, error) {
	if f.downloadErr != nil {
		return nil, f.downloadErr
	}
	return &service.FileDownload{FileName: "bulletin.pdf", FileType: "application/pdf", Data: []byte("%PDF-1.4")}, nil
}

func (f *fakeAdminService) GetLogs(level string, limit, offset int) (*dto.AdminLogsResponse, error) {
	return &dto.AdminLogsResponse{Logs: []string{level}, Limit: limit, Offset: offset}, nil
}

func pass(ctx *fiber.Ctx) error { return ctx.Next() }

func newApp(register ...func(r fiber.Router)) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(logger.NewNop()))
	api := app.Group("/api")
	for _, fn := range register {
		fn(api)
	}
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return send(t, app, req)
}

func send(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var out map[string]any
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &out)
	return resp, out
}

func TestUploadController(t *testing.T) {
	svc := &fakeUploadService{}
	app := newApp(NewUploadController(svc, pass).RegisterRoutes)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", "bulletin.pdf")
	require.NoError(t, err)
	_, _ = part.Write([]byte("%PDF-1.4 test"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	resp, out := send(t, app, req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "bulletin.pdf", svc.gotName)
	assert.Equal(t, []byte("%PDF-1.4 test"), svc.gotData)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/upload", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnalysisController(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		body       any
		wantStatus int
	}{
		{"ok", nil, map[string]string{"file_id": uuid.NewString()}, http.StatusOK},
		{"missing file id", nil, map[string]string{}, http.StatusBadRequest},
		{"file id not a uuid", nil, map[string]string{"file_id": "abc"}, http.StatusBadRequest},
		{"unknown file", service.ErrNotFound, map[string]string{"file_id": uuid.NewString()}, http.StatusNotFound},
		{"prose answer", &oracle.FormatError{RawText: "hello", Reason: "no JSON object found"}, map[string]string{"file_id": uuid.NewString()}, http.StatusBadGateway},
		{"model down", fmt.Errorf("%w: timeout", service.ErrOracleUnavailable), map[string]string{"file_id": uuid.NewString()}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(NewAnalysisController(&fakeAnalysisService{err: tt.serviceErr}, pass).RegisterRoutes)
			resp, out := doJSON(t, app, http.MethodPost, "/api/analyze", tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantStatus == http.StatusBadGateway {
				assert.Equal(t, serverutils.MsgOracleFormat, out["message"])
			}
		})
	}

	app := newApp(NewAnalysisController(&fakeAnalysisService{}, pass).RegisterRoutes)
	resp, _ := doJSON(t, app, http.MethodGet, "/api/analysis/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReportController(t *testing.T) {
	body := map[string]string{"analysis_id": uuid.NewString(), "prenom": "Camille", "email": "camille@example.fr"}

	tests := []struct {
		name        string
		serviceErr  error
		wantStatus  int
		wantAlready bool
	}{
		{"sent", nil, http.StatusOK, false},
		{"already sent", service.ErrReportAlreadySent, http.StatusOK, true},
		{"conformant payslip", service.ErrNothingToReport, http.StatusBadRequest, false},
		{"invalid first name", fmt.Errorf("%w: prénom invalide", service.ErrInvalidInput), http.StatusBadRequest, false},
		{"mail failure", fmt.Errorf("%w: smtp", service.ErrDeliveryFailed), http.StatusBadGateway, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(NewReportController(&fakeReportService{err: tt.serviceErr}).RegisterRoutes)
			resp, out := doJSON(t, app, http.MethodPost, "/api/report/send", body)
			require.Equal(t, tt.wantStatus, resp.StatusCode)
			if resp.StatusCode == http.StatusOK {
				data := out["data"].(map[string]any)
				assert.Equal(t, tt.wantAlready, data["already_sent"])
			}
		})
	}
}

func TestContactController_RateLimited(t *testing.T) {
	limit := serverutils.RateLimitMiddleware(ratelimit.NewMemoryLimiter(), "contact", 3, time.Hour, "Trop de messages", logger.NewNop())
	app := newApp(NewContactController(fakeContactService{}, limit).RegisterRoutes)
	body := map[string]any{"name": "Alex", "email": "alex@example.fr", "subject": "Question", "message": "Bonjour", "consent": true}

	for i := 0; i < 3; i++ {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/contact", body)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, out := doJSON(t, app, http.MethodPost, "/api/contact", body)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "0", resp.Header.Get("X-RateLimit-Remaining"))
	assert.Equal(t, "Trop de messages", out["message"])
}

func TestAdminController(t *testing.T) {
	const secret = "admin-secret"
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "ops",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	authed := func(path string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		return req
	}

	app := newApp(NewAdminController(&fakeAdminService{}, secret).RegisterRoutes)

	resp, _ := send(t, app, httptest.NewRequest(http.MethodGet, "/api/admin/analyses", nil))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, out := send(t, app, authed("/api/admin/analyses?offset=50"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(50), out["data"].(map[string]any)["offset"])

	resp, err = app.Test(authed("/api/admin/files/"+uuid.NewString()+"/download"), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="bulletin.pdf"`, resp.Header.Get(fiber.HeaderContentDisposition))
	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "%PDF-1.4", string(raw))

	resp, out = send(t, app, authed("/api/admin/logs?level=warn&limit=5"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := out["data"].(map[string]any)
	assert.Equal(t, []any{"WARN"}, data["logs"])
	assert.Equal(t, float64(5), data["limit"])

	expired := newApp(NewAdminController(&fakeAdminService{downloadErr: service.ErrFileExpired}, secret).RegisterRoutes)
	resp, _ = send(t, expired, authed("/api/admin/files/"+uuid.NewString()+"/download"))
	assert.Equal(t, http.StatusGone, resp.StatusCode)
}

func TestHealthController(t *testing.T) {
	app := newApp(NewHealthController().RegisterRoutes)
	resp, out := doJSON(t, app, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", out["data"].(map[string]any)["status"])
}
