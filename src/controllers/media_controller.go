package controllers

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/campusbridge/placement-portal/src/lib"
)

// storeUpload pushes a multipart file into the media bucket and returns its
// serving URL.
func storeUpload(file *multipart.FileHeader) (string, error) {
	source, err := file.Open()
	if err != nil {
		return "", err
	}
	defer source.Close()

	return lib.UploadMedia(file.Filename, source)
}

// UploadMedia stores an uploaded image and returns the URL it is served from
func UploadMedia(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "No file provided"))
	}

	url, err := storeUpload(file)
	if err != nil {
		lib.Log.WithError(err).Error("failed to store upload")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Failed to store file"))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"url":     url,
	})
}

// GetMedia serves a stored blob by its id
func GetMedia(c *fiber.Ctx) error {
	data, err := lib.FetchMedia(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse(false, "File not found"))
	}

	return c.Send(data)
}
