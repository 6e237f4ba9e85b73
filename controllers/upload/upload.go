package uploadController

import (
	"log"
	"path/filepath"
	"strings"

	"spotapi/middleware"
	"spotapi/utils"

	"github.com/gofiber/fiber/v2"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// UploadImage stores a course image or logo and returns its public URL.
func UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "No file uploaded")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Unsupported file type")
	}

	filename, err := utils.SaveUploadedFile(file, "./public/uploads")
	if err != nil {
		log.Printf("Error saving uploaded file: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"url": utils.GetFileURL(filename),
	})
}
