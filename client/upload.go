package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// Upload stores a file under folder on the API and returns its path.
func (c *Client) Upload(ctx context.Context, folder, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("filePath", folder); err != nil {
		return "", err
	}
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("copy %s: %w", filename, err)
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	raw, err := c.do(ctx, http.MethodPost, c.baseURL, "/upload", nil, buf.Bytes(), w.FormDataContentType())
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", filename, err)
	}
	var res struct {
		Data struct {
			FilePath string `json:"filePath"`
		} `json:"data"`
	}
	if err := decode(raw, &res); err != nil {
		return "", err
	}
	return res.Data.FilePath, nil
}
