package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lezit/transports-server/internal/helpers"
	"github.com/lezit/transports-server/internal/models"
	"github.com/lezit/transports-server/internal/services"
)

const oauthStateCookie = "oauth_state"

// OAuthBegin redirects the browser to the provider's consent screen, or
// responds 400 when the provider credentials are not configured.
func OAuthBegin(os *services.OAuthService, provider string, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		conf, err := os.ProviderConfig(provider)
		if err != nil {
			helpers.Fail(c, logger, err)
			return
		}

		state := uuid.New().String()
		c.SetCookie(oauthStateCookie, state, 600, "/", "", false, true)
		c.Redirect(http.StatusTemporaryRedirect, conf.AuthCodeURL(state))
	}
}

// OAuthCallback completes the provider flow: exchange the code, link or
// create the local account, then hand the token to the front-end via a
// redirect.
func OAuthCallback(os *services.OAuthService, provider, frontendURL string, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := os.ProviderConfig(provider); err != nil {
			helpers.Fail(c, logger, err)
			return
		}

		state, err := c.Cookie(oauthStateCookie)
		if err != nil || state == "" || state != c.Query("state") {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("invalid OAuth state"))
			return
		}
		c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

		code := c.Query("code")
		if code == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("missing authorization code"))
			return
		}

		profile, err := os.FetchProfile(c.Request.Context(), provider, code)
		if err != nil {
			helpers.Fail(c, logger, err)
			return
		}

		token, err := os.HandleCallbackProfile(c.Request.Context(), provider, profile)
		if err != nil {
			helpers.Fail(c, logger, err)
			return
		}

		redirectURL := fmt.Sprintf("%s/oauth-callback?token=%s&provider=%s",
			frontendURL, url.QueryEscape(token), provider)
		c.Redirect(http.StatusFound, redirectURL)
	}
}
