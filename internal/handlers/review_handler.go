package handlers

import (
	"movie-catalog/internal/repository"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ReviewHandler struct {
	repo   repository.ReviewRepository
	logger *logrus.Logger
}

func NewReviewHandler(repo repository.ReviewRepository, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{
		repo:   repo,
		logger: logger,
	}
}

// CreateReview godoc
// @Summary Review a movie
// @Description Insert a review. The database rejects ratings outside 1..5.
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body ReviewRequest true "Review"
// @Success 200 {object} models.Review "Inserted row"
// @Failure 400 {object} utils.ErrorBody "Invalid request body"
// @Failure 500 {object} utils.ErrorBody "Database error"
// @Router /review [post]
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	review, err := h.repo.Create(c.Context(), req.fields())
	if err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"movie_id": req.MovieID,
			"user_id":  req.UserID,
		}).Error("Failed to create review")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.JSONResponse(c, fiber.StatusOK, review)
}
