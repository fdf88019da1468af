package helper

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeaders(t *testing.T, names ...string) []*multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, n := range names {
		part, err := w.CreateFormFile("files", n)
		require.NoError(t, err)
		_, _ = part.Write([]byte("data-" + n))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["files"]
}

type recordingUploader struct {
	names []string
}

func (r *recordingUploader) Upload(_ context.Context, folder string, fh *multipart.FileHeader) (string, error) {
	if err := CheckImage(fh.Filename); err != nil {
		return "", err
	}
	r.names = append(r.names, fh.Filename)
	return "/" + folder + "/" + fh.Filename, nil
}

func TestUploadAllSkipsDuplicateNames(t *testing.T) {
	up := &recordingUploader{}
	paths, err := UploadAll(context.Background(), up, FolderFilm, fileHeaders(t, "a.png", "b.jpg", "a.png"))
	require.NoError(t, err)
	assert.Equal(t, []string{"/Film/a.png", "/Film/b.jpg"}, paths)
	assert.Equal(t, []string{"a.png", "b.jpg"}, up.names)
}

func TestUploadAllRejectsNonImages(t *testing.T) {
	_, err := UploadAll(context.Background(), &recordingUploader{}, FolderPoster, fileHeaders(t, "notes.txt"))
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestCheckImage(t *testing.T) {
	for _, ok := range []string{"a.png", "b.JPG", "c.jpeg", "d.webp"} {
		assert.NoError(t, CheckImage(ok), ok)
	}
	for _, bad := range []string{"a.gif", "b", "c.png.exe"} {
		assert.ErrorIs(t, CheckImage(bad), ErrUnsupportedImage, bad)
	}
}

func TestPublicID(t *testing.T) {
	now := time.Unix(1700000000, 0)
	assert.Equal(t, "film/dune-part-two-1700000000", PublicID("Film", "Dune Part Two.png", now))
	assert.Equal(t, "poster/image-1700000000", PublicID("Poster", "???.jpg", now))
}

func TestExtractPublicID(t *testing.T) {
	assert.Equal(t, "film/dune-1", ExtractPublicID("https://res.cloudinary.com/demo/image/upload/film/dune-1.png"))
	assert.Empty(t, ExtractPublicID("x/y"))
}
