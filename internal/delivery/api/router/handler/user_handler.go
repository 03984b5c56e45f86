// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/Abhithakur7080/your-video/config"
	"github.com/Abhithakur7080/your-video/internal/delivery/api/middleware"
	"github.com/Abhithakur7080/your-video/internal/delivery/api/response"
	"github.com/Abhithakur7080/your-video/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Config *config.Config
	Logger *slog.Logger
}

// UserHandler holds dependencies for account and channel handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		cfg:    params.Config,
		logger: params.Logger,
	}
}

// RegisterRequest is the multipart form of a registration. The avatar and
// coverImage files travel as separate parts.
type RegisterRequest struct {
	FullName string `form:"fullName"`
	Email    string `form:"email" validate:"omitempty,email"`
	Username string `form:"username"`
	Password string `form:"password"`
}

// LoginRequest accepts either a username or an email.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshTokenRequest is used when the refresh token is not sent as a cookie.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ChangePasswordRequest represents the request body for changing the password.
type ChangePasswordRequest struct {
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// UpdateAccountRequest represents the request body for updating account details.
type UpdateAccountRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// Register creates an account from a multipart form.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	avatar, closeAvatar, err := formUpload(c, "avatar")
	if err != nil {
		return err
	}
	defer closeAvatar()
	cover, closeCover, err := formUpload(c, "coverImage")
	if err != nil {
		return err
	}
	defer closeCover()

	user, err := h.userUC.Register(c.Request().Context(), usecase.RegisterInput{
		FullName:   req.FullName,
		Email:      req.Email,
		Username:   req.Username,
		Password:   req.Password,
		Avatar:     avatar,
		CoverImage: cover,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, newUserResponse(user), "User registered successfully")
}

// Login authenticates by username or email and sets the session cookies.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	sessionCookies(c, h.cfg, output.Tokens)

	return response.Success(c, http.StatusOK, LoginResponse{
		User:           newUserResponse(output.User),
		TokensResponse: newTokensResponse(output.Tokens),
	}, "User logged in successfully")
}

// Logout revokes the refresh token and clears the session cookies.
func (h *UserHandler) Logout(c echo.Context) error {
	if err := h.userUC.Logout(c.Request().Context(), middleware.GetIdentity(c)); err != nil {
		return err
	}
	clearSessionCookies(c, h.cfg)

	return response.Success(c, http.StatusOK, nil, "User logged out successfully")
}

// RefreshToken rotates the session. The refresh token comes from the cookie or the body.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	token := ""
	if cookie, err := c.Cookie(middleware.RefreshTokenCookie); err == nil {
		token = cookie.Value
	}
	if token == "" {
		var req RefreshTokenRequest
		if err := bind(c, &req); err != nil {
			return err
		}
		token = req.RefreshToken
	}

	pair, err := h.userUC.RefreshTokens(c.Request().Context(), token)
	if err != nil {
		return err
	}
	sessionCookies(c, h.cfg, pair)

	return response.Success(c, http.StatusOK, newTokensResponse(pair), "Access token refreshed")
}

// ChangePassword replaces the caller's password.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	var req ChangePasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	err := h.userUC.ChangePassword(c.Request().Context(), middleware.GetIdentity(c), usecase.ChangePasswordInput{
		OldPassword:     req.OldPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}

// CurrentUser returns the caller's account.
func (h *UserHandler) CurrentUser(c echo.Context) error {
	user, err := h.userUC.CurrentUser(c.Request().Context(), middleware.GetIdentity(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "Current user fetched successfully")
}

// UpdateAccount changes the caller's full name and email.
func (h *UserHandler) UpdateAccount(c echo.Context) error {
	var req UpdateAccountRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.UpdateAccount(c.Request().Context(), middleware.GetIdentity(c), usecase.UpdateAccountInput{
		FullName: req.FullName,
		Email:    req.Email,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "Account details updated successfully")
}

// UpdateAvatar replaces the caller's avatar with the uploaded "avatar" file.
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	file, closeFile, err := formUpload(c, "avatar")
	if err != nil {
		return err
	}
	defer closeFile()

	user, err := h.userUC.UpdateAvatar(c.Request().Context(), middleware.GetIdentity(c), file)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "Avatar updated successfully")
}

// UpdateCoverImage replaces the caller's cover image with the uploaded "coverImage" file.
func (h *UserHandler) UpdateCoverImage(c echo.Context) error {
	file, closeFile, err := formUpload(c, "coverImage")
	if err != nil {
		return err
	}
	defer closeFile()

	user, err := h.userUC.UpdateCoverImage(c.Request().Context(), middleware.GetIdentity(c), file)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "Cover image updated successfully")
}

// ChannelProfile returns the public channel page of :username.
func (h *UserHandler) ChannelProfile(c echo.Context) error {
	profile, err := h.userUC.ChannelProfile(c.Request().Context(), middleware.GetIdentity(c), c.Param("username"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, profile, "User channel fetched successfully")
}

// WatchHistory returns the caller's watch history.
func (h *UserHandler) WatchHistory(c echo.Context) error {
	history, err := h.userUC.WatchHistory(c.Request().Context(), middleware.GetIdentity(c), pageRequest(c, h.cfg))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, history, "Watch history fetched successfully")
}
