package client

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/models"
	"github.com/gabriel-vasile/mimetype"
)

const (
	fieldImageFile   = "imageFile"
	fieldImageAction = "imageAction"
	imageActionDrop  = "remove"
)

// articleForm encodes an article as multipart/form-data. With partial set,
// empty text fields are left out so the backend keeps them.
func articleForm(in models.ArticleInput, partial bool) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := []struct{ name, value string }{
		{"title", in.Title},
		{"content", in.Content},
		{"status", string(in.Status)},
	}
	for _, f := range fields {
		if partial && f.value == "" {
			continue
		}
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", err
		}
	}

	switch {
	case in.ImageAction == models.ImageRemove:
		if err := w.WriteField(fieldImageAction, imageActionDrop); err != nil {
			return nil, "", err
		}
	case in.ImagePath != "" && (in.ImageAction == models.ImageReplace || !partial):
		if err := attachFile(w, fieldImageFile, in.ImagePath); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

func attachFile(w *multipart.Writer, field, path string) error {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return fmt.Errorf("detect file type: %w", err)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filepath.Base(path)))
	h.Set("Content-Type", mt.String())
	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("copy upload: %w", err)
	}
	return nil
}
