package controller

import (
	"errors"
	"io"

	"milktrack-be/internal/dto"
	"milktrack-be/internal/pkg/serverutils"
	"milktrack-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IImportController interface {
	RegisterRoutes(r fiber.Router)
	Preview(ctx *fiber.Ctx) error
	Commit(ctx *fiber.Ctx) error
}

type importController struct {
	service service.IImportService
}

func NewImportController(service service.IImportService) IImportController {
	return &importController{service: service}
}

func (c *importController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/import/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/preview", c.Preview)
	h.Post("/commit", c.Commit)
}

func (c *importController) Preview(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "No file provided")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unable to read file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unable to read file")
	}

	res, err := c.service.Preview(ctx.Context(), fileHeader.Filename, data)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success parse import file", res))
}

func (c *importController) Commit(ctx *fiber.Ctx) error {
	var req dto.ImportCommitRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Commit(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUploadNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success commit import", res))
}
