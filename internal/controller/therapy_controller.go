package controller

import (
	"op-mental-be/internal/dto"
	"op-mental-be/internal/pkg/serverutils"
	"op-mental-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITherapyController interface {
	RegisterRoutes(r fiber.Router)
	Send(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type therapyController struct {
	therapyService service.ITherapyService
}

func NewTherapyController(therapyService service.ITherapyService) ITherapyController {
	return &therapyController{
		therapyService: therapyService,
	}
}

func (c *therapyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/challenge/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Send)
	h.Get(":id/history", c.History)
}

func (c *therapyController) Send(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	var req dto.TherapyChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.therapyService.Send(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process challenge message", res))
}

func (c *therapyController) History(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	sessionId := ctx.Params("id")

	res, err := c.therapyService.History(ctx.Context(), userId, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get challenge history", res))
}
