package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minhvu/portfolio-cms/internal/domain/portfolio"
	"github.com/minhvu/portfolio-cms/pkg/auth"
	"github.com/minhvu/portfolio-cms/pkg/logger"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth           *AuthHandler
	Profile        *ProfileHandler
	Experiences    *CollectionHandler[portfolio.Experience]
	Projects       *ProjectHandler
	Education      *CollectionHandler[portfolio.Education]
	Certifications *CollectionHandler[portfolio.Certification]
	Skills         *CollectionHandler[portfolio.SkillGroup]
	Upload         *UploadHandler
}

type collectionRoutes interface {
	List(*gin.Context)
	Get(*gin.Context)
	Create(*gin.Context)
	Update(*gin.Context)
	Delete(*gin.Context)
}

// NewRouter wires all endpoints. Reads are public; mutations sit behind the
// auth middleware. When uploadsDir is non-empty the directory is served
// statically under /uploads.
func NewRouter(h Handlers, jwtSvc *auth.JWTService, log logger.Logger, uploadsDir string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ErrorMiddleware(log))

	authRequired := AuthMiddleware(jwtSvc)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "UP"})
		})

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", h.Auth.Login)
			authGroup.GET("/verify", h.Auth.Verify)
			authGroup.POST("/logout", authRequired, h.Auth.Logout)
		}

		api.GET("/profile", h.Profile.GetProfile)
		api.PUT("/profile", authRequired, h.Profile.UpdateProfile)

		registerCollection(api, "/experiences", h.Experiences, authRequired)
		registerCollection(api, "/projects", h.Projects, authRequired)
		registerCollection(api, "/education", h.Education, authRequired)
		registerCollection(api, "/certifications", h.Certifications, authRequired)
		registerCollection(api, "/skills", h.Skills, authRequired)

		api.POST("/upload", authRequired, h.Upload.Upload)
	}

	if uploadsDir != "" {
		router.Static("/uploads", uploadsDir)
	}

	return router
}

func registerCollection(g *gin.RouterGroup, path string, h collectionRoutes, authRequired gin.HandlerFunc) {
	g.GET(path, h.List)
	g.POST(path, authRequired, h.Create)
	g.GET(path+"/:id", h.Get)
	g.PUT(path+"/:id", authRequired, h.Update)
	g.DELETE(path+"/:id", authRequired, h.Delete)
}
