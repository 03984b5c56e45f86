package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Abhithakur7080/your-video/config"
	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	"github.com/Abhithakur7080/your-video/internal/domain/repository"
	"github.com/Abhithakur7080/your-video/internal/domain/service"
	"github.com/Abhithakur7080/your-video/internal/infra/auth"
	"github.com/Abhithakur7080/your-video/internal/infra/persistence/model"
	"github.com/Abhithakur7080/your-video/internal/infra/persistence/postgres"
	"github.com/Abhithakur7080/your-video/internal/infra/storage"
	"github.com/Abhithakur7080/your-video/internal/testutil"
	"github.com/Abhithakur7080/your-video/internal/usecase"

	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	mp4Header = []byte("\x00\x00\x00\x18ftypmp42\x00\x00\x00\x00mp42isom")
)

// testEnv wires every service against an in-memory database and bucket.
type testEnv struct {
	db     *gorm.DB
	cfg    *config.Config
	bucket *blob.Bucket
	logger *slog.Logger

	blobs  service.BlobStore
	tokens service.TokenService
	hasher service.PasswordHasher

	userRepo     repository.UserRepository
	videoRepo    repository.VideoRepository
	commentRepo  repository.CommentRepository
	tweetRepo    repository.TweetRepository
	likeRepo     repository.LikeRepository
	subRepo      repository.SubscriptionRepository
	playlistRepo repository.PlaylistRepository
	viewRepo     repository.ViewRepository

	credentials   usecase.CredentialManager
	cascade       usecase.CascadeManager
	users         usecase.UserUsecase
	videos        usecase.VideoUsecase
	comments      usecase.CommentUsecase
	tweets        usecase.TweetUsecase
	likes         usecase.LikeUsecase
	subscriptions usecase.SubscriptionUsecase
	playlists     usecase.PlaylistUsecase
	dashboard     usecase.DashboardUsecase
}

func newTestConfig() *config.Config {
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
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func newTestEnv(t *testing.T, configure ...func(*config.Config)) *testEnv {
	t.Helper()

	cfg := newTestConfig()
	for _, fn := range configure {
		fn(cfg)
	}

	env := &testEnv{
		db:     testutil.NewDB(t),
		cfg:    cfg,
		bucket: memblob.OpenBucket(nil),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	t.Cleanup(func() { _ = env.bucket.Close() })

	var err error
	env.tokens, err = auth.NewJWTService(cfg)
	require.NoError(t, err)
	env.hasher, err = auth.NewBcryptHasher(cfg)
	require.NoError(t, err)
	env.blobs = storage.NewBucketStore(env.bucket, cfg.Storage, env.logger)

	env.userRepo = postgres.NewUserRepository(env.db)
	env.videoRepo = postgres.NewVideoRepository(env.db)
	env.commentRepo = postgres.NewCommentRepository(env.db)
	env.tweetRepo = postgres.NewTweetRepository(env.db)
	env.likeRepo = postgres.NewLikeRepository(env.db)
	env.subRepo = postgres.NewSubscriptionRepository(env.db)
	env.playlistRepo = postgres.NewPlaylistRepository(env.db)
	env.viewRepo = postgres.NewViewRepository(env.db)

	env.credentials = NewCredentialService(CredentialServiceParams{
		UserRepo: env.userRepo, TokenService: env.tokens, Config: cfg, Logger: env.logger,
	})
	env.cascade = NewCascadeService(CascadeServiceParams{
		UserRepo: env.userRepo, CommentRepo: env.commentRepo, LikeRepo: env.likeRepo,
		PlaylistRepo: env.playlistRepo, Logger: env.logger,
	})
	env.users = NewUserService(UserServiceParams{
		UserRepo: env.userRepo, ViewRepo: env.viewRepo, Hasher: env.hasher,
		Credentials: env.credentials, BlobStore: env.blobs, Logger: env.logger,
	})
	env.videos = env.newVideoService(env.cascade)
	env.comments = NewCommentService(CommentServiceParams{
		CommentRepo: env.commentRepo, VideoRepo: env.videoRepo, TweetRepo: env.tweetRepo,
		ViewRepo: env.viewRepo, Cascade: env.cascade, Logger: env.logger,
	})
	env.tweets = NewTweetService(TweetServiceParams{
		TweetRepo: env.tweetRepo, ViewRepo: env.viewRepo, Cascade: env.cascade, Logger: env.logger,
	})
	env.likes = NewLikeService(LikeServiceParams{
		LikeRepo: env.likeRepo, VideoRepo: env.videoRepo, CommentRepo: env.commentRepo,
		TweetRepo: env.tweetRepo, ViewRepo: env.viewRepo, Logger: env.logger,
	})
	env.subscriptions = NewSubscriptionService(SubscriptionServiceParams{
		SubscriptionRepo: env.subRepo, UserRepo: env.userRepo, ViewRepo: env.viewRepo,
		Config: cfg, Logger: env.logger,
	})
	env.playlists = NewPlaylistService(PlaylistServiceParams{
		TxManager: postgres.NewTransactionManager(env.db), PlaylistRepo: env.playlistRepo,
		VideoRepo: env.videoRepo, ViewRepo: env.viewRepo, Logger: env.logger,
	})
	env.dashboard = NewDashboardService(env.viewRepo)

	return env
}

func (env *testEnv) newVideoService(cascade usecase.CascadeManager) usecase.VideoUsecase {
	return NewVideoService(VideoServiceParams{
		VideoRepo: env.videoRepo, UserRepo: env.userRepo, ViewRepo: env.viewRepo,
		BlobStore: env.blobs, Cascade: cascade, Logger: env.logger,
	})
}

// seedUser inserts a user and returns it as an authenticated caller.
func (env *testEnv) seedUser(t *testing.T, username string) *entity.Identity {
	t.Helper()

	m := testutil.SeedUser(t, env.db, username)

	return identityOf(m)
}

// blobKeys lists every key in the bucket.
func (env *testEnv) blobKeys(t *testing.T) []string {
	t.Helper()

	var keys []string
	iter := env.bucket.List(nil)
	for {
		obj, err := iter.Next(context.Background())
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		keys = append(keys, obj.Key)
	}

	return keys
}

func identityOf(m *model.UserModel) *entity.Identity {
	return &entity.Identity{UserID: m.ID, Username: m.Username, Email: m.Email}
}

func pngUpload(name string) *usecase.Upload {
	return &usecase.Upload{Filename: name, Content: bytes.NewReader(append(append([]byte{}, pngHeader...), make([]byte, 256)...))}
}

func mp4Upload(name string) *usecase.Upload {
	return &usecase.Upload{Filename: name, Content: bytes.NewReader(append(append([]byte{}, mp4Header...), make([]byte, 256)...))}
}

func textUpload(name string) *usecase.Upload {
	return &usecase.Upload{Filename: name, Content: bytes.NewReader([]byte("just some plain text, not media"))}
}
