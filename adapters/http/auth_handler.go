package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/minhvu/portfolio-cms/internal/application/usecase/auth"
	"github.com/minhvu/portfolio-cms/pkg/apperror"
	"github.com/minhvu/portfolio-cms/pkg/auth"
)

type AuthHandler struct {
	loginUseCase *authUC.LoginUseCase
	jwtSvc       *auth.JWTService
	secureCookie bool
}

func NewAuthHandler(loginUC *authUC.LoginUseCase, jwtSvc *auth.JWTService, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		loginUseCase: loginUC,
		jwtSvc:       jwtSvc,
		secureCookie: secureCookie,
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login sets the session cookie and also returns the token in the body, so
// both cookie-based and header-based clients work off one endpoint.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("username and password are required", err))
		return
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), authUC.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	h.setSessionCookie(c, output.Token, int(h.jwtSvc.TokenLifespan().Seconds()))
	respondDataMessage(c, http.StatusOK, gin.H{"token": output.Token}, "Login successful")
}

// Verify reports whether the request carries a valid session. It never
// returns 401; the answer is in the body.
func (h *AuthHandler) Verify(c *gin.Context) {
	_, authenticated := sessionClaims(c, h.jwtSvc)
	respondData(c, http.StatusOK, gin.H{"authenticated": authenticated})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	respondMessage(c, http.StatusOK, "Logged out")
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, token, maxAge, "/", "", h.secureCookie, true)
}
