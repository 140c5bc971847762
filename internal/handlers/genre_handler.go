package handlers

import (
	"movie-catalog/internal/repository"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type GenreHandler struct {
	repo   repository.GenreRepository
	logger *logrus.Logger
}

func NewGenreHandler(repo repository.GenreRepository, logger *logrus.Logger) *GenreHandler {
	return &GenreHandler{
		repo:   repo,
		logger: logger,
	}
}

// CreateGenre godoc
// @Summary Create a genre
// @Tags genres
// @Accept json
// @Produce json
// @Param genre body GenreRequest true "Genre"
// @Success 200 {object} models.Genre "Inserted row"
// @Failure 400 {object} utils.ErrorBody "Invalid request body"
// @Failure 500 {object} utils.ErrorBody "Database error"
// @Router /genre [post]
func (h *GenreHandler) CreateGenre(c *fiber.Ctx) error {
	var req GenreRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	genre, err := h.repo.Create(c.Context(), req.Name)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create genre")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.JSONResponse(c, fiber.StatusOK, genre)
}
