package handlers

import (
	"errors"
	"fmt"

	"rhea-backend/domain"
	"rhea-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// formImage reads the "file" part. A form without that part yields a nil
// upload, which the services reject after their own checks. A body that is
// not a readable multipart form is invalid input.
func formImage(c *fiber.Ctx) (*utils.Upload, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, fasthttp.ErrMissingFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	if fh == nil {
		return nil, nil
	}
	return utils.ReadUpload(fh)
}
