package helper

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
)

// PublicID names an uploaded image: <folder>/<slug of the file name>-<unix>.
func PublicID(folder, filename string, now time.Time) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	s := slug.Make(base)
	if s == "" {
		s = "image"
	}
	return fmt.Sprintf("%s/%s-%d", strings.ToLower(folder), s, now.Unix())
}
