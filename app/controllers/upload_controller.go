package controllers

import (
	"github.com/bargaoui/rideaux/pkg/ctx"
)

// UploadController stores catalog images and returns their public URL.
type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

// Upload accepts a multipart "image" file, writes it to the configured disk
// (local or S3) and responds with {"imageUrl": ...}.
func (u *UploadController) Upload(c *ctx.Context) {
	if err := c.R.ParseMultipartForm(maxUploadBytes); err != nil {
		c.Error(400, "Invalid form data")
		return
	}

	file, header, err := c.FormFile("image")
	if err != nil {
		c.Error(400, "No image file provided")
		return
	}
	defer file.Close()

	url, err := storeImage(file, header.Filename, "products")
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(map[string]string{"imageUrl": url})
}
