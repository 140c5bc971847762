package handlers

import (
	"movie-catalog/internal/repository"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type FavouriteHandler struct {
	repo   repository.FavouriteRepository
	logger *logrus.Logger
}

func NewFavouriteHandler(repo repository.FavouriteRepository, logger *logrus.Logger) *FavouriteHandler {
	return &FavouriteHandler{
		repo:   repo,
		logger: logger,
	}
}

// CreateFavourite godoc
// @Summary Favourite a movie
// @Description Insert a favourite. A user can favourite a movie only once.
// @Tags favourites
// @Accept json
// @Produce json
// @Param favourite body FavouriteRequest true "Favourite"
// @Success 200 {object} models.Favourite "Inserted row"
// @Failure 400 {object} utils.ErrorBody "Invalid request body"
// @Failure 500 {object} utils.ErrorBody "Database error"
// @Router /favourite [post]
func (h *FavouriteHandler) CreateFavourite(c *fiber.Ctx) error {
	var req FavouriteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	favourite, err := h.repo.Create(c.Context(), req.UserID, req.MovieID)
	if err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"user_id":  req.UserID,
			"movie_id": req.MovieID,
		}).Error("Failed to create favourite")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.JSONResponse(c, fiber.StatusOK, favourite)
}

// GetFavourites godoc
// @Summary List a user's favourite movies
// @Tags favourites
// @Produce json
// @Param user_id query int false "User ID"
// @Success 200 {array} models.Movie "Favourite movies"
// @Failure 400 {object} utils.ErrorBody "Invalid user ID"
// @Failure 500 {object} utils.ErrorBody "Database error"
// @Router /favourites [get]
func (h *FavouriteHandler) GetFavourites(c *fiber.Ctx) error {
	userID, err := parseOptionalInt(c.Query("user_id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	movies, err := h.repo.ListMoviesByUser(c.Context(), userID)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", userID).Error("Failed to get favourites")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.JSONResponse(c, fiber.StatusOK, movies)
}
