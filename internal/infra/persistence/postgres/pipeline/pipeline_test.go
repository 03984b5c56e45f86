package pipeline

import (
	"context"
	"testing"
	"time"

	domainerrors "github.com/Abhithakur7080/your-video/internal/domain/errors"
	"github.com/Abhithakur7080/your-video/internal/domain/view"
	"github.com/Abhithakur7080/your-video/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type titleRow struct {
	Title      string
	Views      int64
	LikesCount int64
	IsLiked    bool
}

func TestPipeline_TextMatchIsCaseInsensitiveAndEscaped(t *testing.T) {
	db := testutil.NewDB(t)
	owner := testutil.SeedUser(t, db, "alice")
	testutil.SeedVideo(t, db, owner.ID, "Learning GO")
	testutil.SeedVideo(t, db, owner.ID, "100% coverage")
	testutil.SeedVideo(t, db, owner.ID, "cooking", testutil.WithDescription("a go-to recipe"))
	testutil.SeedVideo(t, db, owner.ID, "1000 tips")

	search := func(term string) []string {
		p := From(context.Background(), db, "videos AS v", "v.id").
			Filter(TextMatch(term, "v.title", "v.description")).
			Project("v.title AS title").
			Sort(view.Sort{Field: "title"}, SortFields{"title": "v.title"}, "v.created_at")
		rows, err := All[titleRow](p)
		require.NoError(t, err)

		titles := make([]string, 0, len(rows))
		for _, r := range rows {
			titles = append(titles, r.Title)
		}

		return titles
	}

	assert.Equal(t, []string{"Learning GO", "cooking"}, search("go"))
	assert.Equal(t, []string{"100% coverage"}, search("100%"))
	assert.Len(t, search(""), 4)
	assert.Empty(t, search("_"))
}

func TestPipeline_PageComputesNavigation(t *testing.T) {
	db := testutil.NewDB(t)
	owner := testutil.SeedUser(t, db, "alice")
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		testutil.SeedVideo(t, db, owner.ID, string(rune('a'+i)), testutil.CreatedAt(base.Add(time.Duration(i)*time.Minute)))
	}

	p := From(context.Background(), db, "videos AS v", "v.id").
		Project("v.title AS title").
		Sort(view.Sort{Desc: true}, nil, "v.created_at")
	page, err := Page[titleRow](p, view.NewPageRequest(2, 2, 0))
	require.NoError(t, err)

	assert.EqualValues(t, 5, page.TotalDocs)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 3, page.PagingCounter)
	require.Len(t, page.Docs, 2)
	assert.Equal(t, "c", page.Docs[0].Title)
	assert.Equal(t, "b", page.Docs[1].Title)
	require.NotNil(t, page.PrevPage)
	require.NotNil(t, page.NextPage)
	assert.Equal(t, 1, *page.PrevPage)
	assert.Equal(t, 3, *page.NextPage)
}

func TestPipeline_PageBeyondEndIsEmpty(t *testing.T) {
	db := testutil.NewDB(t)
	owner := testutil.SeedUser(t, db, "alice")
	testutil.SeedVideo(t, db, owner.ID, "only")

	p := From(context.Background(), db, "videos AS v", "v.id").Project("v.title AS title")
	page, err := Page[titleRow](p, view.NewPageRequest(4, 10, 0))
	require.NoError(t, err)

	assert.EqualValues(t, 1, page.TotalDocs)
	assert.Empty(t, page.Docs)
	assert.NotNil(t, page.Docs)
	assert.False(t, page.HasNextPage)
}

func TestPipeline_HugePageNumberIsEmpty(t *testing.T) {
	db := testutil.NewDB(t)
	owner := testutil.SeedUser(t, db, "alice")
	for _, title := range []string{"one", "two", "three"} {
		testutil.SeedVideo(t, db, owner.ID, title)
	}

	req := view.ParsePageRequest("9223372036854775807", "10", 100)
	p := From(context.Background(), db, "videos AS v", "v.id").Project("v.title AS title")
	page, err := Page[titleRow](p, req)
	require.NoError(t, err)

	assert.EqualValues(t, 3, page.TotalDocs)
	assert.Empty(t, page.Docs)
	assert.Equal(t, req.Page, page.Page)
	assert.Positive(t, page.PagingCounter)
	assert.False(t, page.HasNextPage)
}

func TestPipeline_DerivedFields(t *testing.T) {
	db := testutil.NewDB(t)
	alice := testutil.SeedUser(t, db, "alice")
	bob := testutil.SeedUser(t, db, "bob")
	video := testutil.SeedVideo(t, db, alice.ID, "liked")
	testutil.SeedLike(t, db, alice.ID, "video", video.ID)
	testutil.SeedLike(t, db, bob.ID, "video", video.ID)

	build := func(viewer *uuid.UUID) *Pipeline {
		return From(context.Background(), db, "videos AS v", "v.id").
			Filter(Eq("v.id", video.ID)).
			Project("v.title AS title").
			Derive(
				Count("likes_count", "likes l", "l.kind = 'video' AND l.target_id = v.id"),
				ViewerFlag("is_liked", viewer, "likes l", "l.liked_by = ? AND l.target_id = v.id"),
			)
	}

	row, err := First[titleRow](build(&bob.ID))
	require.NoError(t, err)
	assert.EqualValues(t, 2, row.LikesCount)
	assert.True(t, row.IsLiked)

	stranger := uuid.New()
	row, err = First[titleRow](build(&stranger))
	require.NoError(t, err)
	assert.False(t, row.IsLiked)

	row, err = First[titleRow](build(nil))
	require.NoError(t, err)
	assert.False(t, row.IsLiked)
}

func TestPipeline_SumDefaultsToZero(t *testing.T) {
	db := testutil.NewDB(t)
	alice := testutil.SeedUser(t, db, "alice")

	p := From(context.Background(), db, "users AS u", "u.id").
		Filter(Eq("u.id", alice.ID)).
		Derive(Sum("views", "v.views", "videos v", "v.owner_id = u.id"))
	row, err := First[titleRow](p)
	require.NoError(t, err)
	assert.Zero(t, row.Views)
}

func TestPipeline_FirstWithoutRows(t *testing.T) {
	db := testutil.NewDB(t)

	p := From(context.Background(), db, "videos AS v", "v.id").
		Filter(Eq("v.id", uuid.New())).
		Project("v.title AS title")
	_, err := First[titleRow](p)
	assert.ErrorIs(t, err, ErrNoRows)
}

func TestPipeline_RejectsCredentialColumns(t *testing.T) {
	db := testutil.NewDB(t)

	p := From(context.Background(), db, "users AS u", "u.id").Project("u.password_hash AS title")
	_, err := All[titleRow](p)
	assert.ErrorIs(t, err, ErrCredentialColumn)

	p = From(context.Background(), db, "users AS u", "u.id").
		Derive(Expr("title", "LOWER(u.refresh_token_hash)"))
	_, err = All[titleRow](p)
	assert.ErrorIs(t, err, ErrCredentialColumn)
}

func TestPipeline_UnknownSortField(t *testing.T) {
	db := testutil.NewDB(t)

	p := From(context.Background(), db, "videos AS v", "v.id").
		Project("v.title AS title").
		Sort(view.Sort{Field: "password"}, SortFields{"title": "v.title"}, "v.created_at")
	_, err := Page[titleRow](p, view.NewPageRequest(1, 10, 0))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPipeline_EmptyProjection(t *testing.T) {
	db := testutil.NewDB(t)

	_, err := All[titleRow](From(context.Background(), db, "videos AS v", "v.id"))
	assert.Error(t, err)
}

func TestPipeline_WhenSkipsStage(t *testing.T) {
	db := testutil.NewDB(t)
	owner := testutil.SeedUser(t, db, "alice")
	testutil.SeedVideo(t, db, owner.ID, "public")
	testutil.SeedVideo(t, db, owner.ID, "draft", testutil.Unpublished())

	count := func(onlyPublished bool) int {
		p := From(context.Background(), db, "videos AS v", "v.id").
			Filter(When(onlyPublished, Eq("v.is_published", true))).
			Project("v.title AS title")
		rows, err := All[titleRow](p)
		require.NoError(t, err)

		return len(rows)
	}

	assert.Equal(t, 1, count(true))
	assert.Equal(t, 2, count(false))
}
