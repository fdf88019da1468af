package helper

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

func InitCloudinary(cloudName, apiKey, apiSecret string) (*cloudinary.Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return cld, nil
}

// CloudinaryUploader stores images on Cloudinary instead of the API.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
	now func() time.Time
}

func NewCloudinaryUploader(cld *cloudinary.Cloudinary) *CloudinaryUploader {
	return &CloudinaryUploader{cld: cld, now: time.Now}
}

func (u *CloudinaryUploader) Upload(ctx context.Context, folder string, fh *multipart.FileHeader) (string, error) {
	if err := CheckImage(fh.Filename); err != nil {
		return "", err
	}
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer f.Close()

	res, err := u.cld.Upload.Upload(ctx, f, uploader.UploadParams{
		PublicID:     PublicID(folder, fh.Filename, u.now()),
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload %s: %w", fh.Filename, err)
	}
	return res.SecureURL, nil
}

// Remove destroys a previously uploaded image. URLs that are not on
// Cloudinary are ignored.
func (u *CloudinaryUploader) Remove(ctx context.Context, url string) error {
	if !strings.Contains(url, "res.cloudinary.com") {
		return nil
	}
	id := ExtractPublicID(url)
	if id == "" {
		return nil
	}
	_, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: id})
	return err
}

// ExtractPublicID takes https://res.cloudinary.com/<cloud>/image/upload/<folder>/<id>.<ext>
// and returns <folder>/<id>.
func ExtractPublicID(url string) string {
	parts := strings.Split(url, "/")
	n := len(parts)
	if n < 4 {
		return ""
	}
	publicID := strings.Join(parts[n-2:n], "/")
	return strings.TrimSuffix(publicID, filepath.Ext(publicID))
}
