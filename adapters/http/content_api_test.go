package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvu/portfolio-cms/internal/domain/portfolio"
)

func TestListExperiences_Public(t *testing.T) {
	env := newTestEnv(t)

	rr := env.request(t, http.MethodGet, "/api/experiences", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	items := dataAs[[]portfolio.Experience](t, decodeEnvelope(t, rr))
	assert.Len(t, items, 3)
}

func TestCreateExperience_RequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	rr := env.request(t, http.MethodPost, "/api/experiences",
		gin.H{"title": "New Role"}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCreateExperience_ReturnsAssignedID(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	payload := gin.H{
		"title":       "Staff Engineer",
		"company":     "Acme",
		"period":      "2023 - Present",
		"description": "Platform work.",
		"skills":      []string{"Go"},
	}
	rr := env.request(t, http.MethodPost, "/api/experiences", payload, token)
	require.Equal(t, http.StatusCreated, rr.Code)

	body := dataAs[map[string]int](t, decodeEnvelope(t, rr))
	assert.Equal(t, 4, body["id"])

	rrGet := env.request(t, http.MethodGet, "/api/experiences/4", nil, "")
	require.Equal(t, http.StatusOK, rrGet.Code)
	got := dataAs[portfolio.Experience](t, decodeEnvelope(t, rrGet))
	assert.Equal(t, "Staff Engineer", got.Title)
}

func TestGetEntity_UnknownID_NotFound(t *testing.T) {
	env := newTestEnv(t)

	rr := env.request(t, http.MethodGet, "/api/projects/999", nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	envlp := decodeEnvelope(t, rr)
	assert.False(t, envlp.Success)
	assert.NotEmpty(t, envlp.Message)
}

func TestGetEntity_MalformedID_BadRequest(t *testing.T) {
	env := newTestEnv(t)

	rr := env.request(t, http.MethodGet, "/api/education/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateProject_PathIDWins(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	payload := gin.H{"id": 999, "title": "Renamed", "featured": false}
	rr := env.request(t, http.MethodPut, "/api/projects/1", payload, token)
	require.Equal(t, http.StatusOK, rr.Code)

	rrGet := env.request(t, http.MethodGet, "/api/projects/1", nil, "")
	got := dataAs[portfolio.Project](t, decodeEnvelope(t, rrGet))
	assert.Equal(t, 1, got.ID)
	assert.Equal(t, "Renamed", got.Title)
}

func TestDeleteCertification_ThenRepeat_NotFound(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	rr := env.request(t, http.MethodDelete, "/api/certifications/1", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)

	rrAgain := env.request(t, http.MethodDelete, "/api/certifications/1", nil, token)
	assert.Equal(t, http.StatusNotFound, rrAgain.Code)

	// Other entities untouched.
	rrList := env.request(t, http.MethodGet, "/api/certifications", nil, "")
	items := dataAs[[]portfolio.Certification](t, decodeEnvelope(t, rrList))
	assert.Len(t, items, 2)
}

func TestListProjects_FeaturedFilter(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	// Un-feature one seeded project.
	payload := gin.H{"title": "E-commerce Platform", "featured": false}
	rr := env.request(t, http.MethodPut, "/api/projects/1", payload, token)
	require.Equal(t, http.StatusOK, rr.Code)

	rrAll := env.request(t, http.MethodGet, "/api/projects", nil, "")
	all := dataAs[[]portfolio.Project](t, decodeEnvelope(t, rrAll))
	require.Len(t, all, 3)

	rrFeatured := env.request(t, http.MethodGet, "/api/projects?featured=true", nil, "")
	featured := dataAs[[]portfolio.Project](t, decodeEnvelope(t, rrFeatured))
	require.Len(t, featured, 2)
	assert.Equal(t, 2, featured[0].ID)
	assert.Equal(t, 3, featured[1].ID)
	for _, p := range featured {
		assert.True(t, p.Featured)
	}
}

func TestProfile_GetAndPut(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	rr := env.request(t, http.MethodGet, "/api/profile", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	p := dataAs[portfolio.Profile](t, decodeEnvelope(t, rr))
	assert.Equal(t, "John Doe", p.Name)

	p.Name = "Jane Doe"
	p.Title = "Platform Engineer"
	rrPut := env.request(t, http.MethodPut, "/api/profile", p, token)
	require.Equal(t, http.StatusOK, rrPut.Code)

	rrGet := env.request(t, http.MethodGet, "/api/profile", nil, "")
	updated := dataAs[portfolio.Profile](t, decodeEnvelope(t, rrGet))
	assert.Equal(t, "Jane Doe", updated.Name)
	assert.Equal(t, "Platform Engineer", updated.Title)
}

func TestSkillGroups_CRUD(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	payload := gin.H{"category": "Messaging", "items": []string{"Kafka", "NATS"}}
	rr := env.request(t, http.MethodPost, "/api/skills", payload, token)
	require.Equal(t, http.StatusCreated, rr.Code)

	body := dataAs[map[string]int](t, decodeEnvelope(t, rr))
	id := body["id"]
	assert.Equal(t, 5, id)

	rrGet := env.request(t, http.MethodGet, "/api/skills/5", nil, "")
	got := dataAs[portfolio.SkillGroup](t, decodeEnvelope(t, rrGet))
	assert.Equal(t, "Messaging", got.Category)
	assert.Equal(t, []string{"Kafka", "NATS"}, got.Items)
}
