package handler

import (
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artfoliopro/portfolio-api/internal/core/ports"
)

// formFile wraps a multipart upload as a ports.MediaUpload plus the handle to
// release once the media store has consumed it.
type formFile struct {
	ports.MediaUpload
	src multipart.File
}

func (f *formFile) close() {
	_ = f.src.Close()
}

// formUpload pulls the named file out of a multipart form. A missing file is
// a 400: every route accepting uploads requires one.
func formUpload(c echo.Context, field string) (*formFile, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s file is required", field))
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}

	return &formFile{
		MediaUpload: ports.MediaUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Content:     src,
		},
		src: src,
	}, nil
}
