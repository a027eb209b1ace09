package controller

import (
	"matcha-match-be/internal/dto"
	"matcha-match-be/internal/pkg/serverutils"
	"matcha-match-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPlacesController interface {
	RegisterRoutes(r fiber.Router)
	GetPlaces(ctx *fiber.Ctx) error
}

type placesController struct {
	placesService service.IPlacesService
}

func NewPlacesController(placesService service.IPlacesService) IPlacesController {
	return &placesController{
		placesService: placesService,
	}
}

func (c *placesController) RegisterRoutes(r fiber.Router) {
	r.Get("/places", c.GetPlaces)
}

func (c *placesController) GetPlaces(ctx *fiber.Ctx) error {
	var query dto.PlacesQuery
	if err := ctx.QueryParser(&query); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid query parameters"))
	}

	res, err := c.placesService.GetPlaces(ctx.Context(), &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list places", res))
}
