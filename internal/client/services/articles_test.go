package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/client"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/listing"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/models"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/common"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

func TestArticleService_List(t *testing.T) {
	fc := &fakeClient{ArticlePage: models.ArticlePage{Items: []models.Article{{ID: "a1"}}, Total: 11}}
	svc := NewArticleService(fc)

	res, err := svc.List(context.Background(), listing.Query{Page: 2, Limit: 5, Search: "go", Status: "draft"})
	require.NoError(t, err)
	assert.Equal(t, client.ListParams{Page: 2, Limit: 5, Search: "go", Status: "draft"}, fc.LastList)
	assert.Equal(t, listing.Result[models.Article]{Items: []models.Article{{ID: "a1"}}, Total: 11, TotalKnown: true}, res)
}

func TestArticleService_List_Error(t *testing.T) {
	fc := &fakeClient{ArticleErr: common.ErrUnavailable}
	_, err := NewArticleService(fc).List(context.Background(), listing.Query{Page: 1, Limit: 10})
	require.ErrorIs(t, err, common.ErrUnavailable)
}

func TestArticleService_Get_NotFound(t *testing.T) {
	fc := &fakeClient{ArticleErr: common.ErrNotFound}
	_, err := NewArticleService(fc).Get(context.Background(), "zz")
	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, "zz", fc.LastID)
}

func TestArticleService_Create(t *testing.T) {
	t.Run("defaults to draft", func(t *testing.T) {
		fc := &fakeClient{ArticleRet: models.Article{ID: "new"}}
		a, err := NewArticleService(fc).Create(context.Background(), models.ArticleInput{Title: " Hello ", Content: "Body"})
		require.NoError(t, err)
		assert.Equal(t, "new", a.ID)
		assert.Equal(t, models.ArticleInput{Title: "Hello", Content: "Body", Status: models.ArticleDraft}, fc.LastArticle)
	})

	t.Run("with image", func(t *testing.T) {
		img := writeFile(t, "cover.png", pngHeader)
		fc := &fakeClient{}
		_, err := NewArticleService(fc).Create(context.Background(), models.ArticleInput{
			Title: "T", Content: "C", Status: models.ArticlePublished, ImagePath: img,
		})
		require.NoError(t, err)
		assert.Equal(t, img, fc.LastArticle.ImagePath)
		assert.Equal(t, models.ArticlePublished, fc.LastArticle.Status)
	})

	t.Run("rejects bad upload", func(t *testing.T) {
		txt := writeFile(t, "notes.txt", []byte("just text"))
		fc := &fakeClient{}
		_, err := NewArticleService(fc).Create(context.Background(), models.ArticleInput{Title: "T", Content: "C", ImagePath: txt})
		assert.Equal(t, "Only JPG, PNG or PDF allowed", fieldErrors(t, err)["imageFile"])
		assert.Empty(t, fc.Calls)
	})

	t.Run("required fields", func(t *testing.T) {
		fc := &fakeClient{}
		_, err := NewArticleService(fc).Create(context.Background(), models.ArticleInput{Title: "  "})
		fields := fieldErrors(t, err)
		assert.Equal(t, "Title is required", fields["title"])
		assert.Equal(t, "Content is required", fields["content"])
		assert.Empty(t, fc.Calls)
	})
}

func TestArticleService_Update_RemoveImageSkipsFileCheck(t *testing.T) {
	fc := &fakeClient{ArticleRet: models.Article{ID: "a1"}}
	_, err := NewArticleService(fc).Update(context.Background(), "a1", models.ArticleInput{
		Title: "T", Content: "C", Status: models.ArticleDraft,
		ImagePath: "/does/not/exist.png", ImageAction: models.ImageRemove,
	})
	require.NoError(t, err)
	assert.Equal(t, "a1", fc.LastID)
	assert.Equal(t, models.ImageRemove, fc.LastArticle.ImageAction)
}

func TestArticleService_Publish(t *testing.T) {
	fc := &fakeClient{ArticleRet: models.Article{ID: "d1", Status: models.ArticlePublished}}
	a, err := NewArticleService(fc).Publish(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, models.ArticlePublished, a.Status)
	assert.Equal(t, []string{"UpdateArticle"}, fc.Calls)
	assert.Equal(t, models.ArticleInput{Status: models.ArticlePublished}, fc.LastArticle)
}

func TestArticleService_Delete(t *testing.T) {
	fc := &fakeClient{}
	require.NoError(t, NewArticleService(fc).Delete(context.Background(), "a9"))
	assert.Equal(t, "a9", fc.LastID)

	fc.ArticleErr = common.ErrForbidden
	require.ErrorIs(t, NewArticleService(fc).Delete(context.Background(), "a9"), common.ErrForbidden)
}
