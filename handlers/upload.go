package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/prajwal000/Egharbari-sub001/apperr"
	"github.com/prajwal000/Egharbari-sub001/media"
)

type UploadController struct {
	uploader media.Uploader
}

// NewUploadController accepts a nil uploader when no media host is configured.
func NewUploadController(uploader media.Uploader) *UploadController {
	return &UploadController{uploader: uploader}
}

type uploadRequest struct {
	Image string `json:"image"`
}

func mediaErr(err error) error {
	switch {
	case errors.Is(err, media.ErrTooLarge), errors.Is(err, media.ErrNotAnImage), errors.Is(err, media.ErrEmptyUpload):
		return apperr.Validation(err.Error())
	case errors.Is(err, media.ErrNotFound):
		return apperr.NotFound("Image not found")
	default:
		return apperr.Internal("Image upload failed", err)
	}
}

// readUpload takes a multipart "file" field or a JSON body holding a base64
// data URI.
func readUpload(c echo.Context) ([]byte, error) {
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		fh, err := c.FormFile("file")
		if err != nil {
			return nil, media.ErrEmptyUpload
		}
		if fh.Size > media.MaxUploadSize {
			return nil, media.ErrTooLarge
		}
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(io.LimitReader(f, media.MaxUploadSize+1))
	}

	var req uploadRequest
	if err := c.Bind(&req); err != nil {
		return nil, media.ErrEmptyUpload
	}
	if req.Image == "" {
		return nil, media.ErrEmptyUpload
	}
	data, err := media.DecodeDataURI(req.Image)
	if err != nil {
		if errors.Is(err, media.ErrTooLarge) {
			return nil, err
		}
		return nil, media.ErrNotAnImage
	}
	return data, nil
}

func (uc *UploadController) Upload(c echo.Context) error {
	if uc.uploader == nil {
		return respondError(c, apperr.Internal("Image uploads are not configured", nil))
	}
	data, err := readUpload(c)
	if err != nil {
		return respondError(c, mediaErr(err))
	}
	asset, err := uc.uploader.Upload(c.Request().Context(), data)
	if err != nil {
		return respondError(c, mediaErr(err))
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":  "Image uploaded successfully",
		"url":      asset.URL,
		"publicId": asset.PublicID,
	})
}

func (uc *UploadController) Delete(c echo.Context) error {
	if uc.uploader == nil {
		return respondError(c, apperr.Internal("Image uploads are not configured", nil))
	}
	publicID := c.QueryParam("publicId")
	if publicID == "" {
		return respondError(c, apperr.Validation("publicId is required"))
	}
	if err := uc.uploader.Destroy(c.Request().Context(), publicID); err != nil {
		return respondError(c, mediaErr(err))
	}
	return c.JSON(http.StatusOK, message("Image deleted successfully"))
}
