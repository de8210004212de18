package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/MTahaFarrukh/PortBuilder/internal/application/render"
	"github.com/MTahaFarrukh/PortBuilder/internal/application/store"
	"github.com/MTahaFarrukh/PortBuilder/internal/domain/portfolio"
	"github.com/MTahaFarrukh/PortBuilder/internal/domain/template"
	"github.com/MTahaFarrukh/PortBuilder/pkg/auth"
	"github.com/MTahaFarrukh/PortBuilder/pkg/logger"
)

type memoryRepo struct {
	mu   sync.Mutex
	docs map[string]*portfolio.UserProfile
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{docs: make(map[string]*portfolio.UserProfile)}
}

func (m *memoryRepo) Get(_ context.Context, userID string) (*portfolio.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[userID]
	if !ok {
		return nil, portfolio.ErrProfileNotFound
	}
	return doc.Clone(), nil
}

func (m *memoryRepo) Put(_ context.Context, userID string, p *portfolio.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[userID] = p.Clone()
	return nil
}

type seqGenerator struct {
	mu sync.Mutex
	n  int
}

func (g *seqGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

type PortfolioAPITestSuite struct {
	suite.Suite
	router *gin.Engine
	repo   *memoryRepo
	jwtSvc *auth.JWTService
	token  string
}

func (s *PortfolioAPITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	appLogger := logger.NewNop()
	s.repo = newMemoryRepo()
	s.jwtSvc = auth.NewJWTService("test-secret", time.Hour)

	token, err := s.jwtSvc.GenerateToken("user-1")
	s.Require().NoError(err)
	s.token = token

	catalog := template.DefaultCatalog()
	renderer := render.NewRenderer(catalog)
	stores := store.NewManager(s.repo, &seqGenerator{}, appLogger)

	s.router = NewRouter(RouterDeps{
		Portfolio: NewPortfolioHandler(stores, appLogger),
		Templates: NewTemplateHandler(catalog),
		Render:    NewRenderHandler(stores, s.repo, renderer, nil, appLogger),
		AuthMW:    AuthMiddleware(s.jwtSvc),
		Logger:    appLogger,
	})
}

func (s *PortfolioAPITestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *PortfolioAPITestSuite) decodeProfile(w *httptest.ResponseRecorder) ProfileResponse {
	var resp ProfileResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().NotNil(resp.Profile)
	return resp
}

func (s *PortfolioAPITestSuite) TestRequiresAuthorization() {
	req := httptest.NewRequest(http.MethodGet, "/api/portfolio", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/portfolio", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *PortfolioAPITestSuite) TestGetProfileCreatesDefaultDocument() {
	w := s.do(http.MethodGet, "/api/portfolio", nil)
	s.Equal(http.StatusOK, w.Code)

	resp := s.decodeProfile(w)
	s.Equal("user-1", resp.Profile.ID)
	s.Equal("template1", resp.Profile.TemplateID)
	s.Empty(resp.State.Err)

	// First access persisted the fresh default document.
	stored, err := s.repo.Get(context.Background(), "user-1")
	s.Require().NoError(err)
	s.Equal("user-1", stored.ID)
}

func (s *PortfolioAPITestSuite) TestUpdateProfile() {
	w := s.do(http.MethodPatch, "/api/portfolio", gin.H{
		"name":  "Ada",
		"title": "Engineer",
		"socialLinks": gin.H{
			"github": "https://github.com/ada",
		},
	})
	s.Equal(http.StatusOK, w.Code)

	resp := s.decodeProfile(w)
	s.Equal("Ada", resp.Profile.Name)
	s.Equal("Engineer", resp.Profile.Title)
	s.Equal("https://github.com/ada", resp.Profile.SocialLinks.GitHub)
}

func (s *PortfolioAPITestSuite) TestAddSecondSkillRetainsFirst() {
	w := s.do(http.MethodPost, "/api/portfolio/skills", gin.H{"name": "Go", "level": 5})
	s.Equal(http.StatusCreated, w.Code)

	w = s.do(http.MethodPost, "/api/portfolio/skills", gin.H{"name": "SQL", "level": 3})
	s.Equal(http.StatusCreated, w.Code)

	var resp EntityCreatedResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().Len(resp.Profile.Skills, 2)
	s.Equal("Go", resp.Profile.Skills[0].Name)
	s.Equal("SQL", resp.Profile.Skills[1].Name)
	s.NotEqual(resp.Profile.Skills[0].ID, resp.Profile.Skills[1].ID)
}

func (s *PortfolioAPITestSuite) TestSkillLifecycle() {
	w := s.do(http.MethodPost, "/api/portfolio/skills", gin.H{"name": "Go", "level": 3})
	var created EntityCreatedResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))

	w = s.do(http.MethodPatch, "/api/portfolio/skills/"+created.ID, gin.H{"level": 5})
	s.Equal(http.StatusOK, w.Code)
	resp := s.decodeProfile(w)
	s.Equal(5, resp.Profile.Skills[0].Level)
	s.Equal("Go", resp.Profile.Skills[0].Name)

	w = s.do(http.MethodDelete, "/api/portfolio/skills/"+created.ID, nil)
	s.Equal(http.StatusOK, w.Code)
	resp = s.decodeProfile(w)
	s.Empty(resp.Profile.Skills)

	// A second delete of the same id is a silent no-op.
	w = s.do(http.MethodDelete, "/api/portfolio/skills/"+created.ID, nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *PortfolioAPITestSuite) TestExperienceLifecycle() {
	w := s.do(http.MethodPost, "/api/portfolio/experiences", gin.H{
		"company":   "Acme",
		"position":  "Engineer",
		"startDate": "2020-01",
		"endDate":   "2022-06",
	})
	s.Equal(http.StatusCreated, w.Code)
	var created EntityCreatedResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))

	w = s.do(http.MethodPatch, "/api/portfolio/experiences/"+created.ID, gin.H{"current": true})
	s.Equal(http.StatusOK, w.Code)
	resp := s.decodeProfile(w)
	s.True(resp.Profile.Experiences[0].Current)

	// The rendered preview now shows "Present" regardless of the stored end.
	w = s.do(http.MethodGet, "/api/portfolio/preview", nil)
	s.Equal(http.StatusOK, w.Code)
	var doc render.Document
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &doc))
	found := false
	for _, sec := range doc.Sections {
		if sec.Kind == render.KindExperience {
			s.Require().NotEmpty(sec.Timeline)
			s.Equal("January 2020 – Present", sec.Timeline[0].DateRange)
			found = true
		}
	}
	s.True(found, "preview must contain the experience section")
}

func (s *PortfolioAPITestSuite) TestSaveProfile() {
	s.do(http.MethodPatch, "/api/portfolio", gin.H{"name": "Ada"})

	w := s.do(http.MethodPost, "/api/portfolio/save", nil)
	s.Equal(http.StatusOK, w.Code)
	resp := s.decodeProfile(w)
	s.False(resp.State.IsSaving)
	s.Empty(resp.State.Err)

	stored, err := s.repo.Get(context.Background(), "user-1")
	s.Require().NoError(err)
	s.Equal("Ada", stored.Name)
}

func (s *PortfolioAPITestSuite) TestResetProfile() {
	s.do(http.MethodPatch, "/api/portfolio", gin.H{"name": "Ada"})

	w := s.do(http.MethodPost, "/api/portfolio/reset", nil)
	s.Equal(http.StatusOK, w.Code)
	resp := s.decodeProfile(w)
	s.Empty(resp.Profile.ID)
	s.Empty(resp.Profile.Name)
}

func (s *PortfolioAPITestSuite) TestSelectTemplate() {
	w := s.do(http.MethodPut, "/api/portfolio/template", gin.H{"templateId": "template3"})
	s.Equal(http.StatusOK, w.Code)
	resp := s.decodeProfile(w)
	s.Equal("template3", resp.Profile.TemplateID)
}

func (s *PortfolioAPITestSuite) TestPreviewFallsBackOnUnknownTemplate() {
	w := s.do(http.MethodGet, "/api/portfolio/preview?template=nonexistent", nil)
	s.Equal(http.StatusOK, w.Code)

	var doc render.Document
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &doc))
	s.Equal("template1", doc.TemplateID)
}

func (s *PortfolioAPITestSuite) TestPublicView() {
	s.do(http.MethodPatch, "/api/portfolio", gin.H{"name": "Ada"})
	s.do(http.MethodPost, "/api/portfolio/save", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/user-1/view", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusOK, w.Code)

	var doc render.Document
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &doc))
	s.Equal("Ada", doc.Header.Name)

	req = httptest.NewRequest(http.MethodGet, "/api/portfolio/nobody/view", nil)
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *PortfolioAPITestSuite) TestInvalidJSONBodyRejected() {
	req := httptest.NewRequest(http.MethodPatch, "/api/portfolio", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusBadRequest, w.Code)
}

func TestPortfolioAPITestSuite(t *testing.T) {
	suite.Run(t, new(PortfolioAPITestSuite))
}

func TestListTemplates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	catalog := template.DefaultCatalog()
	appLogger := logger.NewNop()
	repo := newMemoryRepo()
	stores := store.NewManager(repo, &seqGenerator{}, appLogger)
	router := NewRouter(RouterDeps{
		Portfolio: NewPortfolioHandler(stores, appLogger),
		Templates: NewTemplateHandler(catalog),
		Render:    NewRenderHandler(stores, repo, render.NewRenderer(catalog), nil, appLogger),
		AuthMW:    AuthMiddleware(auth.NewJWTService("test-secret", time.Hour)),
		Logger:    appLogger,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/templates", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Templates []template.Template `json:"templates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Templates, 3)
	assert.Equal(t, "template1", resp.Templates[0].ID)

	req = httptest.NewRequest(http.MethodGet, "/api/templates/template9", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
