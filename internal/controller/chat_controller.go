package controller

import (
	"strconv"

	"matcha-match-be/internal/dto"
	"matcha-match-be/internal/pkg/serverutils"
	"matcha-match-be/internal/service"
	"matcha-match-be/pkg/imaging"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendChat(ctx *fiber.Ctx) error
	GetConversation(ctx *fiber.Ctx) error
	GetPreferences(ctx *fiber.Ctx) error
	GetPlaceholder(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ai")
	h.Post("/chat", c.SendChat)
	h.Get("/conversation/:session_id", c.GetConversation)
	h.Get("/preferences/:session_id", c.GetPreferences)
	h.Get("/placeholder/:width/:height", c.GetPlaceholder)
}

func (c *chatController) SendChat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SendChat(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}

func (c *chatController) GetConversation(ctx *fiber.Ctx) error {
	sessionToken := ctx.Params("session_id")
	if sessionToken == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "session_id is required"))
	}

	res, err := c.chatService.GetConversation(ctx.Context(), sessionToken)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show conversation", res))
}

func (c *chatController) GetPreferences(ctx *fiber.Ctx) error {
	sessionToken := ctx.Params("session_id")
	if sessionToken == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "session_id is required"))
	}

	res, err := c.chatService.GetPreferences(ctx.Context(), sessionToken)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show preferences", res))
}

func (c *chatController) GetPlaceholder(ctx *fiber.Ctx) error {
	width, _ := strconv.Atoi(ctx.Params("width"))
	height, _ := strconv.Atoi(ctx.Params("height"))

	png := imaging.Placeholder(width, height)

	ctx.Set(fiber.HeaderContentType, "image/png")
	return ctx.Send(png)
}
