package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"team-scheduler/core/config"
	"team-scheduler/core/constants"
	"team-scheduler/core/controller"
	"team-scheduler/core/errors"
	"team-scheduler/core/logger"
	"team-scheduler/core/utils"

	"github.com/labstack/echo/v4"
)

type Middleware struct {
	verifier   *utils.TokenVerifier
	cookieName string
	loginURL   string
	appURL     string
}

func NewMiddleware(cfg config.AuthConfig) *Middleware {
	cookieName := cfg.CookieName
	if cookieName == "" {
		cookieName = constants.AuthCookieName
	}
	return &Middleware{
		verifier:   utils.NewTokenVerifier(cfg.JWTSecret),
		cookieName: cookieName,
		loginURL:   strings.TrimRight(cfg.LoginURL, "/"),
		appURL:     cfg.AppURL,
	}
}

// AuthMiddleware resolves the request's principal from the auth cookie or a
// Bearer header and stores the claims under constants.ContextTokenData.
// Browser navigations without a valid token are sent to the login page;
// everything else gets a 401 envelope.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := m.extractToken(c.Request())
			claims, err := m.verifier.ValidateAndParseToken(token)
			if err != nil {
				logger.Debug("Middleware:AuthMiddleware", "path", c.Request().URL.Path, "error", err)
				if wantsHTML(c.Request()) && m.loginURL != "" {
					return c.Redirect(http.StatusFound, m.loginRedirect(c.Request()))
				}
				return unauthorized(err)
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}

func (m *Middleware) extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return utils.GetTokenFromHeader(r.Header.Get(echo.HeaderAuthorization))
}

func unauthorized(err error) *echo.HTTPError {
	switch err {
	case utils.ErrMissingToken:
		return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrMissingAuthorizationHeader, "Missing authentication token")
	case utils.ErrExpiredToken:
		return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrTokenExpired, "Token has expired")
	default:
		return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "Invalid authentication token")
	}
}

func wantsHTML(r *http.Request) bool {
	if r.Method != http.MethodGet {
		return false
	}
	return strings.Contains(r.Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}

func (m *Middleware) loginRedirect(r *http.Request) string {
	return m.loginURL + "/?return_to=" + url.QueryEscape(m.returnTo(r))
}

// returnTo rebuilds the absolute URL of r. APP_URL wins, then a non-local
// X-Forwarded-Host, then a non-local Host, then the raw request URL.
func (m *Middleware) returnTo(r *http.Request) string {
	path := r.URL.RequestURI()

	if base := strings.TrimSpace(m.appURL); base != "" {
		if !strings.HasPrefix(base, "http") {
			base = "https://" + base
		}
		return strings.TrimSuffix(base, "/") + path
	}

	proto := r.Header.Get(echo.HeaderXForwardedProto)
	if proto == "" {
		proto = "https"
	}
	if host := r.Header.Get("X-Forwarded-Host"); host != "" && !strings.Contains(host, "localhost") {
		return proto + "://" + host + path
	}
	if host := r.Host; host != "" && !strings.Contains(host, "localhost") {
		return proto + "://" + host + path
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + path
}
