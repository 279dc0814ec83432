// Package handler contains the HTTP handlers for the application.
package handler

import (
	"mime/multipart"
	"net/http"

	"clipstream/internal/delivery/http/response"
	"clipstream/internal/domain/pagination"
	"clipstream/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}

	return id, nil
}

// pageParams binds the page/limit query parameters; anything unusable falls
// back to the defaults.
func pageParams(c echo.Context) pagination.Params {
	var params pagination.Params
	if err := c.Bind(&params); err != nil {
		return pagination.Params{}
	}

	return params.Normalize()
}

// formFile opens one uploaded file from the multipart form. The returned
// closer must run after the usecase has consumed the reader.
func formFile(c echo.Context, field string) (*usecase.FileUpload, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, nil, err
	}

	return openFormFile(header)
}

func openFormFile(header *multipart.FileHeader) (*usecase.FileUpload, func(), error) {
	file, err := header.Open()
	if err != nil {
		return nil, nil, err
	}

	upload := &usecase.FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Reader:      file,
	}

	return upload, func() { file.Close() }, nil
}
