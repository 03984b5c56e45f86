package api

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Abhithakur7080/your-video/config"
	"github.com/Abhithakur7080/your-video/internal/delivery/api/middleware"
	"github.com/Abhithakur7080/your-video/internal/delivery/api/router"
	"github.com/Abhithakur7080/your-video/internal/delivery/api/router/handler"
	"github.com/Abhithakur7080/your-video/internal/infra/auth"
	"github.com/Abhithakur7080/your-video/internal/infra/persistence/postgres"
	"github.com/Abhithakur7080/your-video/internal/infra/storage"
	"github.com/Abhithakur7080/your-video/internal/testutil"
	"github.com/Abhithakur7080/your-video/internal/usecase"
	"github.com/Abhithakur7080/your-video/internal/usecase/impl"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00"), make([]byte, 128)...)
	mp4Bytes = append([]byte("\x00\x00\x00\x18ftypmp42\x00\x00\x00\x00mp42isom"), make([]byte, 128)...)
)

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Success    bool            `json:"success"`
	Code       string          `json:"code"`
	Errors     []string        `json:"errors"`
}

type idPage struct {
	Docs []struct {
		ID uuid.UUID `json:"id"`
	} `json:"docs"`
	TotalDocs int64 `json:"totalDocs"`
}

type apiTestEnv struct {
	e           *echo.Echo
	db          *gorm.DB
	credentials usecase.CredentialManager
}

func newAPITestEnv(t *testing.T, configure ...func(*config.Config)) *apiTestEnv {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:      bcrypt.MinCost,
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 240 * time.Hour,
		},
		Storage: &config.StorageConfig{
			PublicBaseURL: "http://media.test/",
			Breaker:       config.BreakerConfig{MaxRequests: 1, Timeout: time.Minute, FailureThreshold: 5},
		},
		Pagination: &config.PaginationConfig{MaxLimit: 50},
		Metrics:    &config.MetricsConfig{Path: "/metrics"},
		RateLimit:  &config.RateLimitConfig{},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"
	for _, fn := range configure {
		fn(cfg)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := testutil.NewDB(t)
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	hasher, err := auth.NewBcryptHasher(cfg)
	require.NoError(t, err)
	blobs := storage.NewBucketStore(bucket, cfg.Storage, logger)

	userRepo := postgres.NewUserRepository(db)
	videoRepo := postgres.NewVideoRepository(db)
	commentRepo := postgres.NewCommentRepository(db)
	tweetRepo := postgres.NewTweetRepository(db)
	likeRepo := postgres.NewLikeRepository(db)
	subRepo := postgres.NewSubscriptionRepository(db)
	playlistRepo := postgres.NewPlaylistRepository(db)
	viewRepo := postgres.NewViewRepository(db)

	credentials := impl.NewCredentialService(impl.CredentialServiceParams{
		UserRepo: userRepo, TokenService: tokens, Config: cfg, Logger: logger,
	})
	cascade := impl.NewCascadeService(impl.CascadeServiceParams{
		UserRepo: userRepo, CommentRepo: commentRepo, LikeRepo: likeRepo, PlaylistRepo: playlistRepo, Logger: logger,
	})

	params := router.RouterParams{
		HealthHandler: handler.NewHealthHandler(handler.HealthHandlerParams{DB: db}),
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{
			UserUC: impl.NewUserService(impl.UserServiceParams{
				UserRepo: userRepo, ViewRepo: viewRepo, Hasher: hasher,
				Credentials: credentials, BlobStore: blobs, Logger: logger,
			}),
			Config: cfg, Logger: logger,
		}),
		VideoHandler: handler.NewVideoHandler(handler.VideoHandlerParams{
			VideoUC: impl.NewVideoService(impl.VideoServiceParams{
				VideoRepo: videoRepo, UserRepo: userRepo, ViewRepo: viewRepo,
				BlobStore: blobs, Cascade: cascade, Logger: logger,
			}),
			Config: cfg, Logger: logger,
		}),
		CommentHandler: handler.NewCommentHandler(handler.CommentHandlerParams{
			CommentUC: impl.NewCommentService(impl.CommentServiceParams{
				CommentRepo: commentRepo, VideoRepo: videoRepo, TweetRepo: tweetRepo,
				ViewRepo: viewRepo, Cascade: cascade, Logger: logger,
			}),
			Config: cfg, Logger: logger,
		}),
		TweetHandler: handler.NewTweetHandler(handler.TweetHandlerParams{
			TweetUC: impl.NewTweetService(impl.TweetServiceParams{
				TweetRepo: tweetRepo, ViewRepo: viewRepo, Cascade: cascade, Logger: logger,
			}),
			Config: cfg, Logger: logger,
		}),
		LikeHandler: handler.NewLikeHandler(handler.LikeHandlerParams{
			LikeUC: impl.NewLikeService(impl.LikeServiceParams{
				LikeRepo: likeRepo, VideoRepo: videoRepo, CommentRepo: commentRepo,
				TweetRepo: tweetRepo, ViewRepo: viewRepo, Logger: logger,
			}),
			Config: cfg, Logger: logger,
		}),
		SubscriptionHandler: handler.NewSubscriptionHandler(handler.SubscriptionHandlerParams{
			SubscriptionUC: impl.NewSubscriptionService(impl.SubscriptionServiceParams{
				SubscriptionRepo: subRepo, UserRepo: userRepo, ViewRepo: viewRepo, Config: cfg, Logger: logger,
			}),
			Config: cfg, Logger: logger,
		}),
		PlaylistHandler: handler.NewPlaylistHandler(handler.PlaylistHandlerParams{
			PlaylistUC: impl.NewPlaylistService(impl.PlaylistServiceParams{
				TxManager: postgres.NewTransactionManager(db), PlaylistRepo: playlistRepo,
				VideoRepo: videoRepo, ViewRepo: viewRepo, Logger: logger,
			}),
			Config: cfg, Logger: logger,
		}),
		DashboardHandler: handler.NewDashboardHandler(handler.DashboardHandlerParams{
			DashboardUC: impl.NewDashboardService(viewRepo),
			Config:      cfg, Logger: logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(credentials),
		Config:         cfg,
	}

	return &apiTestEnv{
		e:           newEcho(cfg, logger, params),
		db:          db,
		credentials: credentials,
	}
}

// login seeds a user and returns a valid access token for it.
func (env *apiTestEnv) login(t *testing.T, username string) (uuid.UUID, string) {
	t.Helper()

	user := testutil.SeedUser(t, env.db, username)
	pair, err := env.credentials.Issue(context.Background(), user.ID)
	require.NoError(t, err)

	return user.ID, pair.AccessToken
}

type requestOption func(*http.Request)

func bearer(token string) requestOption {
	return func(r *http.Request) { r.Header.Set(echo.HeaderAuthorization, "Bearer "+token) }
}

func withCookie(c *http.Cookie) requestOption {
	return func(r *http.Request) { r.AddCookie(c) }
}

func (env *apiTestEnv) do(t *testing.T, method, target string, body io.Reader, contentType string, opts ...requestOption) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	for _, opt := range opts {
		opt(req)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)

	var out envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}

	return rec, out
}

func (env *apiTestEnv) doJSON(t *testing.T, method, target, body string, opts ...requestOption) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	return env.do(t, method, target, reader, echo.MIMEApplicationJSON, opts...)
}

type formFile struct {
	field, name string
	content     []byte
}

func multipartBody(t *testing.T, fields map[string]string, files ...formFile) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))

	return out
}

func TestHealthcheck(t *testing.T) {
	env := newAPITestEnv(t)

	rec, body := env.doJSON(t, http.MethodGet, "/api/v1/healthcheck", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
	assert.Equal(t, "ok", decodeData[handler.HealthStatus](t, body).Status)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestRequestIDIsEchoed(t *testing.T) {
	env := newAPITestEnv(t)

	rec, _ := env.doJSON(t, http.MethodGet, "/api/v1/healthcheck", "", func(r *http.Request) {
		r.Header.Set(echo.HeaderXRequestID, "client-trace-42")
	})

	assert.Equal(t, "client-trace-42", rec.Header().Get(echo.HeaderXRequestID))
}

func TestRegisterLoginAndCurrentUser(t *testing.T) {
	env := newAPITestEnv(t)

	body, contentType := multipartBody(t, map[string]string{
		"fullName": "Alice Doe",
		"email":    "Alice@Example.com",
		"username": "Alice",
		"password": "s3cret-pass",
	}, formFile{field: "avatar", name: "me.png", content: pngBytes})
	rec, registered := env.do(t, http.MethodPost, "/api/v1/users/register", body, contentType)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	user := decodeData[handler.UserResponse](t, registered)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.True(t, strings.HasPrefix(user.Avatar, "http://media.test/"))
	assert.Empty(t, user.CoverImage)
	assert.NotContains(t, rec.Body.String(), "password")

	rec, loggedIn := env.doJSON(t, http.MethodPost, "/api/v1/users/login", `{"email":"alice@example.com","password":"s3cret-pass"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	login := decodeData[handler.LoginResponse](t, loggedIn)
	assert.Equal(t, user.ID, login.User.ID)
	assert.NotEmpty(t, login.AccessToken)
	assert.NotEmpty(t, login.RefreshToken)

	var accessCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.AccessTokenCookie {
			accessCookie = c
		}
	}
	require.NotNil(t, accessCookie)
	assert.True(t, accessCookie.HttpOnly)

	rec, current := env.doJSON(t, http.MethodGet, "/api/v1/users/current-user", "", withCookie(accessCookie))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", decodeData[handler.UserResponse](t, current).Username)

	rec, _ = env.doJSON(t, http.MethodGet, "/api/v1/users/current-user", "", bearer(login.AccessToken))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterRejectsDuplicateAndMissingFields(t *testing.T) {
	env := newAPITestEnv(t)
	testutil.SeedUser(t, env.db, "bob")

	body, contentType := multipartBody(t, map[string]string{
		"fullName": "Bob",
		"email":    "someone@example.com",
		"username": "bob",
		"password": "pw",
	}, formFile{field: "avatar", name: "me.png", content: pngBytes})
	rec, conflict := env.do(t, http.MethodPost, "/api/v1/users/register", body, contentType)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", conflict.Code)

	body, contentType = multipartBody(t, map[string]string{"username": "carol"})
	rec, invalid := env.do(t, http.MethodPost, "/api/v1/users/register", body, contentType)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, invalid.Success)
	assert.Equal(t, "VALIDATION_FAILED", invalid.Code)
	assert.Contains(t, invalid.Errors, "fullName is required")
	assert.Contains(t, invalid.Errors, "password is required")
}

func TestUnauthenticatedEnvelope(t *testing.T) {
	env := newAPITestEnv(t)

	tests := []struct {
		name string
		opts []requestOption
	}{
		{name: "no token"},
		{name: "garbage bearer", opts: []requestOption{bearer("not-a-jwt")}},
		{name: "garbage cookie", opts: []requestOption{withCookie(&http.Cookie{Name: middleware.AccessTokenCookie, Value: "nope"})}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := env.doJSON(t, http.MethodGet, "/api/v1/dashboard/stats", "", tt.opts...)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, body.Success)
			assert.Equal(t, http.StatusUnauthorized, body.StatusCode)
			assert.Equal(t, "UNAUTHENTICATED", body.Code)
			assert.Empty(t, body.Errors)
		})
	}
}

func TestInvalidPathIDIsBadRequest(t *testing.T) {
	env := newAPITestEnv(t)
	_, token := env.login(t, "alice")

	rec, body := env.doJSON(t, http.MethodGet, "/api/v1/videos/not-a-uuid", "", bearer(token))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"videoId must be a valid id"}, body.Errors)
}

func TestUnknownRouteUsesErrorEnvelope(t *testing.T) {
	env := newAPITestEnv(t)

	rec, body := env.doJSON(t, http.MethodGet, "/api/v1/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "HTTP_ERROR", body.Code)
}

func TestVideoLifecycle(t *testing.T) {
	env := newAPITestEnv(t)
	_, aliceToken := env.login(t, "alice")
	_, bobToken := env.login(t, "bob")

	body, contentType := multipartBody(t, map[string]string{
		"title":       "Cats",
		"description": "A video about cats",
		"duration":    "12.5",
	},
		formFile{field: "videoFile", name: "cats.mp4", content: mp4Bytes},
		formFile{field: "thumbnail", name: "cats.png", content: pngBytes},
	)
	rec, published := env.do(t, http.MethodPost, "/api/v1/videos", body, contentType, bearer(aliceToken))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	video := decodeData[handler.VideoResponse](t, published)
	assert.Equal(t, "Cats", video.Title)
	assert.True(t, video.IsPublished)
	videoPath := "/api/v1/videos/" + video.ID.String()

	// Anonymous callers see the public feed.
	rec, feed := env.doJSON(t, http.MethodGet, "/api/v1/videos?query=cat&sortBy=createdAt&sortType=desc", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	page := decodeData[idPage](t, feed)
	require.Len(t, page.Docs, 1)
	assert.Equal(t, video.ID, page.Docs[0].ID)

	rec, _ = env.doJSON(t, http.MethodGet, "/api/v1/videos?sortType=sideways", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = env.doJSON(t, http.MethodPatch, "/api/v1/videos/toggle/publish/"+video.ID.String(), "", bearer(bobToken))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, toggled := env.doJSON(t, http.MethodPatch, "/api/v1/videos/toggle/publish/"+video.ID.String(), "", bearer(aliceToken))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decodeData[handler.VideoResponse](t, toggled).IsPublished)

	// Drafts are hidden from everyone but the owner.
	rec, _ = env.doJSON(t, http.MethodGet, videoPath, "", bearer(bobToken))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec, _ = env.doJSON(t, http.MethodGet, videoPath, "", bearer(aliceToken))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = env.doJSON(t, http.MethodDelete, videoPath, "", bearer(aliceToken))
	require.Equal(t, http.StatusOK, rec.Code)

	rec, gone := env.doJSON(t, http.MethodGet, videoPath, "", bearer(aliceToken))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "VIDEO_NOT_FOUND", gone.Code)
}

func TestToggleLikeAndSubscription(t *testing.T) {
	env := newAPITestEnv(t)
	aliceID, _ := env.login(t, "alice")
	_, bobToken := env.login(t, "bob")
	video := testutil.SeedVideo(t, env.db, aliceID, "Cats")

	likePath := "/api/v1/likes/toggle/v/" + video.ID.String()
	_, liked := env.doJSON(t, http.MethodPost, likePath, "", bearer(bobToken))
	assert.True(t, decodeData[handler.LikeStatusResponse](t, liked).IsLiked)
	_, unliked := env.doJSON(t, http.MethodPost, likePath, "", bearer(bobToken))
	assert.False(t, decodeData[handler.LikeStatusResponse](t, unliked).IsLiked)

	subPath := "/api/v1/subscriptions/c/" + aliceID.String()
	rec, subscribed := env.doJSON(t, http.MethodPost, subPath, "", bearer(bobToken))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeData[handler.SubscriptionStatusResponse](t, subscribed).Subscribed)
	assert.EqualValues(t, 1, testutil.Count(t, env.db, "subscriptions", "channel_id = ?", aliceID))
}

func TestCommentAndTweetRoutes(t *testing.T) {
	env := newAPITestEnv(t)
	aliceID, aliceToken := env.login(t, "alice")
	video := testutil.SeedVideo(t, env.db, aliceID, "Cats")

	rec, added := env.doJSON(t, http.MethodPost, "/api/v1/comments/"+video.ID.String(), `{"content":"nice"}`, bearer(aliceToken))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	comment := decodeData[handler.CommentResponse](t, added)

	rec, _ = env.doJSON(t, http.MethodPatch, "/api/v1/comments/c/"+comment.ID.String(), `{"content":"very nice"}`, bearer(aliceToken))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = env.doJSON(t, http.MethodPost, "/api/v1/tweets", `{"content":"hello"}`, bearer(aliceToken))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, tweets := env.doJSON(t, http.MethodGet, "/api/v1/tweets/user/"+aliceID.String(), "", bearer(aliceToken))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(tweets.Data), `"totalDocs":1`)

	rec, _ = env.doJSON(t, http.MethodPost, "/api/v1/tweets", `{"content":`, bearer(aliceToken))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRateLimitedUserRoutes(t *testing.T) {
	env := newAPITestEnv(t, func(cfg *config.Config) {
		cfg.RateLimit = &config.RateLimitConfig{Enabled: true, RequestsPerSecond: 0.001, Burst: 1, ExpiresIn: time.Minute}
	})

	rec, _ := env.doJSON(t, http.MethodPost, "/api/v1/users/login", `{"username":"ghost","password":"x"}`)
	assert.NotEqual(t, http.StatusTooManyRequests, rec.Code)

	rec, body := env.doJSON(t, http.MethodPost, "/api/v1/users/login", `{"username":"ghost","password":"x"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", body.Code)

	// Other groups are not throttled.
	rec, _ = env.doJSON(t, http.MethodGet, "/api/v1/healthcheck", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	env := newAPITestEnv(t, func(cfg *config.Config) { cfg.Metrics.Enabled = true })

	env.doJSON(t, http.MethodGet, "/api/v1/healthcheck", "")
	rec, _ := env.doJSON(t, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestMetricsEndpointDisabled(t *testing.T) {
	env := newAPITestEnv(t)

	rec, _ := env.doJSON(t, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
