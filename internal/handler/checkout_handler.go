package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/premium-checkout/internal/controller"
	"github.com/sefazor/premium-checkout/internal/models"
)

type CheckoutHandler struct {
	checkoutController *controller.CheckoutController
}

func NewCheckoutHandler(checkoutController *controller.CheckoutController) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutController: checkoutController,
	}
}

// CreateCheckoutSession reads the plan from the body first, then the query
// string. A body that does not parse is ignored.
func (h *CheckoutHandler) CreateCheckoutSession(c *fiber.Ctx) error {
	var req models.CreateCheckoutSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			req = models.CreateCheckoutSessionRequest{}
		}
	}
	if req.Plan == "" {
		req.Plan = c.Query("plan")
	}

	session, err := h.checkoutController.CreateCheckoutSession(c.UserContext(), req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.NewErrorResponse(err.Error()))
	}

	return c.JSON(session)
}
