package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/access"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/models"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/router"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/validation"
)

var (
	articleFields = []formField{
		{Name: "title", Label: "Title"},
		{Name: "content", Label: "Content (markdown)", Kind: multilineField},
		{Name: "status", Label: "Status (draft/published)"},
	}
	imageField = formField{Name: "imageFile", Label: "Image file path (jpg, png or pdf; empty for none)"}
)

func articlePath(id string) string     { return router.PathArticles + "/" + id }
func editArticlePath(id string) string { return articlePath(id) + "/edit" }

// NewArticle creates an article, saved as a draft unless published right
// away.
func (a *App) NewArticle(ctx context.Context) error {
	if !access.CanCreateArticle(a.session(ctx)) {
		a.toast.Error("You must be logged in to create articles")
		return nil
	}
	initial := a.kept(router.NewArticle)
	if initial == nil {
		initial = validation.Values{"status": string(models.ArticleDraft)}
	}
	fields := append(append([]formField{}, articleFields...), imageField)
	v, err := a.fill("New article", validation.ArticleSchema, fields, initial)
	if err != nil {
		a.report(ctx, err, "")
		return err
	}

	in := models.ArticleInput{
		Title:     v["title"],
		Content:   v["content"],
		Status:    models.ArticleStatus(v["status"]),
		ImagePath: v["imageFile"],
	}
	if in.ImagePath != "" {
		in.ImageAction = models.ImageReplace
	}
	art, err := a.articles.Create(ctx, in)
	if err != nil {
		a.keep(router.NewArticle, v)
		a.report(ctx, err, "Failed to create article")
		return err
	}
	a.forget(router.NewArticle)
	a.log.Info(ctx, "article created", "id", art.ID, "status", art.Status)
	a.toast.Success("Article created successfully")

	if art.Status == models.ArticlePublished {
		return a.open(ctx, router.PathArticles, false)
	}
	return a.open(ctx, router.PathDrafts, false)
}

// EditArticle loads an article for editing. Only its author may edit it.
// When interactive is false the article is shown with a hint instead of the
// form.
func (a *App) EditArticle(ctx context.Context, id string, interactive bool) error {
	art, err := a.articles.Get(ctx, id)
	if err != nil {
		return a.articleLoadFailed(ctx, err)
	}
	s := a.session(ctx)
	if !access.CanEditArticle(s, art) {
		a.toast.Error("You can only edit your own articles")
		return a.open(ctx, articlePath(art.ID), false)
	}
	if !interactive {
		a.println(a.st.Title.Render("Edit: "+art.Title), a.st.Muted.Render("(type 'edit "+art.ID+"')"))
		return nil
	}

	initial := a.kept(editArticlePath(art.ID))
	if initial == nil {
		initial = validation.Values{
			"title":   art.Title,
			"content": art.Content,
			"status":  string(art.Status),
		}
	}
	v, err := a.fill("Edit article", validation.ArticleSchema, articleFields, initial)
	if err != nil {
		a.report(ctx, err, "")
		return err
	}
	action, path, err := a.askImage(art)
	if err != nil {
		a.report(ctx, err, "")
		return err
	}

	updated, err := a.articles.Update(ctx, art.ID, models.ArticleInput{
		Title:       v["title"],
		Content:     v["content"],
		Status:      models.ArticleStatus(v["status"]),
		ImagePath:   path,
		ImageAction: action,
	})
	if err != nil {
		a.keep(editArticlePath(art.ID), v)
		a.report(ctx, err, "Failed to update article")
		return err
	}
	a.forget(editArticlePath(art.ID))
	a.toast.Success("Article updated successfully")
	return a.open(ctx, articlePath(orDefault(updated.ID, art.ID)), false)
}

// askImage asks what to do with the stored image and, for a replacement,
// for a file that passes the upload type check.
func (a *App) askImage(art models.Article) (models.ImageAction, string, error) {
	prompt := "Image: (k)eep, (r)eplace [k]"
	if art.ImageURL != "" {
		prompt = "Image: (k)eep, (r)eplace or (x) remove [k]"
	}
	for {
		answer, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return models.ImageKeep, "", err
		}
		switch strings.ToLower(answer) {
		case "", "k", "keep":
			return models.ImageKeep, "", nil
		case "x", "remove":
			if art.ImageURL != "" {
				return models.ImageRemove, "", nil
			}
		case "r", "replace":
			path, err := a.askImageFile()
			return models.ImageReplace, path, err
		case cancelWord:
			return models.ImageKeep, "", errFormCanceled
		}
		a.println(a.st.Error.Render("  Please answer k, r or x"))
	}
}

func (a *App) askImageFile() (string, error) {
	for {
		path, err := getSimpleText(a.reader, "New image file path (jpg, png or pdf)", a.out)
		if err != nil {
			return "", err
		}
		if path == cancelWord {
			return "", errFormCanceled
		}
		if path == "" {
			a.println(a.st.Error.Render("  Image file is required"))
			continue
		}
		if msg, ok := validation.ArticleSchema.ValidateField("imageFile", validation.Values{"imageFile": path}); !ok {
			a.println(a.st.Error.Render("  " + msg))
			continue
		}
		return path, nil
	}
}

// findArticle prefers the copy in the mounted list and falls back to the
// backend.
func (a *App) findArticle(ctx context.Context, id string) (models.Article, error) {
	if lv, ok := a.mounted().(*listView[models.Article]); ok {
		if art, found := lv.lookup(id); found {
			return art, nil
		}
	}
	return a.articles.Get(ctx, id)
}

// Publish moves a draft to published. The article leaves the drafts list at
// once.
func (a *App) Publish(ctx context.Context, id string) error {
	art, err := a.findArticle(ctx, id)
	if err != nil {
		return a.articleLoadFailed(ctx, err)
	}
	if !access.CanManageArticle(a.session(ctx), art) {
		a.toast.Error("You can only publish your own articles")
		return nil
	}
	if art.Status == models.ArticlePublished {
		a.toast.Info("Article is already published")
		return nil
	}

	updated, err := a.articles.Publish(ctx, art.ID)
	if err != nil {
		a.report(ctx, err, "Failed to publish article")
		return err
	}
	a.toast.Success("Article published successfully")

	if lv, ok := a.mounted().(*listView[models.Article]); ok {
		if a.nav.Current() == router.PathDrafts {
			lv.remove(art.ID)
		} else {
			if updated.ID == "" {
				updated = art
				updated.Status = models.ArticlePublished
			}
			lv.replace(updated)
		}
		a.println(lv.await(ctx))
		return nil
	}
	if a.nav.Current() == articlePath(art.ID) {
		return a.open(ctx, articlePath(art.ID), false)
	}
	return nil
}

// DeleteArticle asks for confirmation and deletes. Declining sends nothing.
func (a *App) DeleteArticle(ctx context.Context, id string) error {
	art, err := a.findArticle(ctx, id)
	if err != nil {
		return a.articleLoadFailed(ctx, err)
	}
	if !access.CanManageArticle(a.session(ctx), art) {
		a.toast.Error("You can only delete your own articles")
		return nil
	}
	ok, err := a.confirm("Delete article", fmt.Sprintf("Are you sure you want to delete %q? This cannot be undone.", art.Title))
	if err != nil {
		return err
	}
	if !ok {
		a.println(a.st.Muted.Render("Canceled."))
		return nil
	}

	if err := a.articles.Delete(ctx, art.ID); err != nil {
		a.report(ctx, err, "Failed to delete article")
		return err
	}
	a.toast.Success("Article deleted successfully")

	if lv, ok := a.mounted().(*listView[models.Article]); ok {
		lv.remove(art.ID)
		a.println(lv.await(ctx))
		return nil
	}
	if cur := a.nav.Current(); strings.HasPrefix(cur, articlePath(art.ID)) {
		return a.open(ctx, router.PathArticles, false)
	}
	return nil
}
