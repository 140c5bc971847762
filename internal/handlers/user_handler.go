package handlers

import (
	"errors"

	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	service services.UserService
	logger  *logrus.Logger
}

func NewUserHandler(service services.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// Register godoc
// @Summary Register a user
// @Description Create a user. The password is stored as a bcrypt hash and never returned.
// @Tags users
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "User"
// @Success 200 {object} models.User "Inserted row"
// @Failure 400 {object} utils.ErrorBody "Invalid request"
// @Failure 500 {object} utils.ErrorBody "Database error"
// @Router /register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	user, err := h.service.Register(c.Context(), req.input())
	if errors.Is(err, services.ErrPasswordTooLong) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to register user")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.JSONResponse(c, fiber.StatusOK, user)
}
