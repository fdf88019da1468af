package helper

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"cinema_console/client"
	"cinema_console/constants"
)

const (
	FolderFilm     = "Film"
	FolderPoster   = "Poster"
	FolderCinema   = "Cinema"
	FolderEmployee = "Employee"
)

var ErrUnsupportedImage = errors.New(constants.UNSUPPORTED_IMAGE)

var imageExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".webp": true}

type Uploader interface {
	Upload(ctx context.Context, folder string, fh *multipart.FileHeader) (string, error)
}

func CheckImage(filename string) error {
	if !imageExts[strings.ToLower(filepath.Ext(filename))] {
		return ErrUnsupportedImage
	}
	return nil
}

// APIUploader posts files to the API's /upload endpoint.
type APIUploader struct {
	api *client.Client
}

func NewAPIUploader(api *client.Client) *APIUploader {
	return &APIUploader{api: api}
}

func (u *APIUploader) Upload(ctx context.Context, folder string, fh *multipart.FileHeader) (string, error) {
	if err := CheckImage(fh.Filename); err != nil {
		return "", err
	}
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer f.Close()
	return u.api.Upload(ctx, folder, fh.Filename, f)
}

// UniqueFiles drops files whose name was already seen.
func UniqueFiles(files []*multipart.FileHeader) []*multipart.FileHeader {
	seen := map[string]bool{}
	out := make([]*multipart.FileHeader, 0, len(files))
	for _, f := range files {
		if f == nil || seen[f.Filename] {
			continue
		}
		seen[f.Filename] = true
		out = append(out, f)
	}
	return out
}

// UploadAll uploads each distinct file in order and returns the stored paths.
func UploadAll(ctx context.Context, up Uploader, folder string, files []*multipart.FileHeader) ([]string, error) {
	files = UniqueFiles(files)
	paths := make([]string, 0, len(files))
	for _, f := range files {
		p, err := up.Upload(ctx, folder, f)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}
