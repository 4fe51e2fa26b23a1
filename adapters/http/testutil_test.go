package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/minhvu/portfolio-cms/adapters/media_storage"
	"github.com/minhvu/portfolio-cms/adapters/persistence"
	authUC "github.com/minhvu/portfolio-cms/internal/application/usecase/auth"
	"github.com/minhvu/portfolio-cms/internal/application/usecase/content"
	"github.com/minhvu/portfolio-cms/internal/domain/portfolio"
	"github.com/minhvu/portfolio-cms/pkg/auth"
	"github.com/minhvu/portfolio-cms/pkg/logger"
)

type nopPublisher struct{}

func (nopPublisher) Publish(ctx context.Context, entity, action string, id int) {}
func (nopPublisher) Close()                                                     {}

type testEnv struct {
	Router *gin.Engine
	Store  portfolio.Store
	JWTSvc *auth.JWTService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNopLogger()
	store := persistence.NewFileStore(filepath.Join(t.TempDir(), "portfolio.json"), log)
	jwtSvc := auth.NewJWTService("test_secret", time.Hour)
	events := nopPublisher{}

	uploader, err := media_storage.NewLocalAdapter(t.TempDir())
	require.NoError(t, err)

	handlers := Handlers{
		Auth:           NewAuthHandler(authUC.NewLoginUseCase(store, jwtSvc, log), jwtSvc, false),
		Profile:        NewProfileHandler(content.NewProfileUseCase(store, events)),
		Experiences:    NewCollectionHandler(content.NewExperienceUseCase(store, events), "Experience"),
		Projects:       NewProjectHandler(content.NewProjectUseCase(store, events)),
		Education:      NewCollectionHandler(content.NewEducationUseCase(store, events), "Education"),
		Certifications: NewCollectionHandler(content.NewCertificationUseCase(store, events), "Certification"),
		Skills:         NewCollectionHandler(content.NewSkillGroupUseCase(store, events), "Skill group"),
		Upload:         NewUploadHandler(uploader),
	}

	router := NewRouter(handlers, jwtSvc, log, "")
	return &testEnv{Router: router, Store: store, JWTSvc: jwtSvc}
}

func (e *testEnv) request(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	e.Router.ServeHTTP(rr, req)
	return rr
}

func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	// Reading once guarantees the seed (and its credentials) exists.
	_, err := e.Store.Read(context.Background())
	require.NoError(t, err)

	token, err := e.JWTSvc.GenerateToken("admin")
	require.NoError(t, err)
	return token
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

func dataAs[T any](t *testing.T, env Envelope) T {
	t.Helper()
	raw, err := json.Marshal(env.Data)
	require.NoError(t, err)

	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}
