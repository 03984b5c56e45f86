package handler

import (
	"mime/multipart"
	"net/http"
	"time"

	"github.com/Abhithakur7080/your-video/config"
	"github.com/Abhithakur7080/your-video/internal/delivery/api/middleware"
	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	domainerrors "github.com/Abhithakur7080/your-video/internal/domain/errors"
	"github.com/Abhithakur7080/your-video/internal/domain/view"
	"github.com/Abhithakur7080/your-video/internal/errors"
	"github.com/Abhithakur7080/your-video/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pathID parses the uuid path parameter name.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.Validation("Invalid "+name, name+" must be a valid id")
	}

	return id, nil
}

// pageRequest reads page and limit query values, capped by pagination.maxLimit.
func pageRequest(c echo.Context, cfg *config.Config) view.PageRequest {
	maxLimit := 0
	if cfg.Pagination != nil {
		maxLimit = cfg.Pagination.MaxLimit
	}

	return view.ParsePageRequest(c.QueryParam("page"), c.QueryParam("limit"), maxLimit)
}

// formUpload opens the multipart file field. A missing field yields a nil upload.
// The returned closer must be called once the upload has been consumed.
func formUpload(c echo.Context, field string) (*usecase.Upload, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, func() {}, nil
		}

		return nil, func() {}, domainerrors.Validation("Invalid "+field+" upload", err.Error())
	}

	file, err := header.Open()
	if err != nil {
		return nil, func() {}, errors.Wrapf(err, "failed to open %s upload", field)
	}

	return &usecase.Upload{Filename: header.Filename, Content: file}, closeFile(file), nil
}

func closeFile(f multipart.File) func() {
	return func() { _ = f.Close() }
}

// bind decodes the request into req and validates it.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
			if msg, ok := httpErr.Message.(string); ok {
				return domainerrors.Validation("Invalid request body", msg)
			}
		}

		return domainerrors.Validation("Invalid request body")
	}

	return c.Validate(req)
}

// sessionCookies writes the access and refresh tokens as http-only cookies.
func sessionCookies(c echo.Context, cfg *config.Config, pair *entity.TokenPair) {
	c.SetCookie(sessionCookie(cfg, middleware.AccessTokenCookie, pair.AccessToken, pair.AccessTokenExpiresAt))
	c.SetCookie(sessionCookie(cfg, middleware.RefreshTokenCookie, pair.RefreshToken, pair.RefreshTokenExpiresAt))
}

// clearSessionCookies expires both session cookies.
func clearSessionCookies(c echo.Context, cfg *config.Config) {
	for _, name := range []string{middleware.AccessTokenCookie, middleware.RefreshTokenCookie} {
		cookie := sessionCookie(cfg, name, "", time.Unix(0, 0))
		cookie.MaxAge = -1
		c.SetCookie(cookie)
	}
}

func sessionCookie(cfg *config.Config, name, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}
}
