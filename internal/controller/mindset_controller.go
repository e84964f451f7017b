package controller

import (
	"op-mental-be/internal/dto"
	"op-mental-be/internal/pkg/serverutils"
	"op-mental-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMindsetController interface {
	RegisterRoutes(r fiber.Router)
	Send(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type mindsetController struct {
	mindsetService service.IMindsetService
}

func NewMindsetController(mindsetService service.IMindsetService) IMindsetController {
	return &mindsetController{
		mindsetService: mindsetService,
	}
}

func (c *mindsetController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/mindset/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Send)
	h.Get(":id/history", c.History)
}

func (c *mindsetController) Send(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	var req dto.MindsetChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.mindsetService.Send(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process mindset message", res))
}

func (c *mindsetController) History(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	sessionId := ctx.Params("id")

	res, err := c.mindsetService.History(ctx.Context(), userId, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get mindset history", res))
}
