package handlers

import (
	"errors"
	"strconv"

	"movie-catalog/internal/repository"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	msgMovieNotFound = "Movie not found"
	msgInvalidID     = "Invalid movie ID"
	msgInvalidBody   = "Invalid request body"
)

type MovieHandler struct {
	repo   repository.MovieRepository
	logger *logrus.Logger
}

func NewMovieHandler(repo repository.MovieRepository, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		repo:   repo,
		logger: logger,
	}
}

// CreateMovie godoc
// @Summary Create a new movie
// @Description Insert a movie. Fields left out are stored as NULL.
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body MovieRequest true "Movie fields"
// @Success 200 {object} models.Movie "Inserted row"
// @Failure 400 {object} utils.ErrorBody "Invalid request body"
// @Failure 500 {object} utils.ErrorBody "Database error"
// @Router /movie [post]
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	var req MovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	movie, err := h.repo.Create(c.Context(), req.fields())
	if err != nil {
		h.logger.WithError(err).Error("Failed to create movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.JSONResponse(c, fiber.StatusOK, movie)
}

// GetAllMovies godoc
// @Summary List movies
// @Description List every movie with its genre name
// @Tags movies
// @Produce json
// @Success 200 {array} models.MovieWithGenre "Movies"
// @Failure 500 {object} utils.ErrorBody "Database error"
// @Router /movies [get]
func (h *MovieHandler) GetAllMovies(c *fiber.Ctx) error {
	movies, err := h.repo.FindAll(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get movies")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.JSONResponse(c, fiber.StatusOK, movies)
}

// GetMovieByID godoc
// @Summary Get movie by ID
// @Description Get a single movie with its genre name
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} models.MovieWithGenre "Movie"
// @Failure 400 {object} utils.ErrorBody "Invalid movie ID"
// @Failure 404 {object} utils.MessageBody "Movie not found"
// @Failure 500 {object} utils.ErrorBody "Database error"
// @Router /movie/{id} [get]
func (h *MovieHandler) GetMovieByID(c *fiber.Ctx) error {
	id, err := movieID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, msgInvalidID)
	}

	movie, err := h.repo.FindByID(c.Context(), id)
	if errors.Is(err, repository.ErrMovieNotFound) {
		return utils.MessageResponse(c, fiber.StatusNotFound, msgMovieNotFound)
	}
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to get movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.JSONResponse(c, fiber.StatusOK, movie)
}

// UpdateMovie godoc
// @Summary Update a movie
// @Description Overwrite all four movie fields. Fields left out become NULL.
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body MovieRequest true "Movie fields"
// @Success 200 {object} models.Movie "Updated row"
// @Failure 400 {object} utils.ErrorBody "Invalid request"
// @Failure 404 {object} utils.MessageBody "Movie not found"
// @Failure 500 {object} utils.ErrorBody "Database error"
// @Router /movie/{id} [put]
func (h *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	id, err := movieID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, msgInvalidID)
	}

	var req MovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	movie, err := h.repo.Update(c.Context(), id, req.fields())
	if errors.Is(err, repository.ErrMovieNotFound) {
		return utils.MessageResponse(c, fiber.StatusNotFound, msgMovieNotFound)
	}
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to update movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.JSONResponse(c, fiber.StatusOK, movie)
}

// DeleteMovie godoc
// @Summary Delete a movie
// @Description Delete a movie by ID. Succeeds whether or not the movie existed.
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.MessageBody "Movie deleted successfully"
// @Failure 400 {object} utils.ErrorBody "Invalid movie ID"
// @Failure 500 {object} utils.ErrorBody "Database error"
// @Router /movie/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	id, err := movieID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, msgInvalidID)
	}

	if err := h.repo.Delete(c.Context(), id); err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.MessageResponse(c, fiber.StatusOK, "Movie deleted successfully")
}

// SearchMovies godoc
// @Summary Search movies by title
// @Description Case-insensitive substring match on the title
// @Tags movies
// @Produce json
// @Param keyword query string false "Part of the title"
// @Success 200 {array} models.MovieWithGenre "Matching movies"
// @Failure 500 {object} utils.ErrorBody "Database error"
// @Router /movie [get]
func (h *MovieHandler) SearchMovies(c *fiber.Ctx) error {
	keyword := c.Query("keyword")

	movies, err := h.repo.SearchByTitle(c.Context(), keyword)
	if err != nil {
		h.logger.WithError(err).WithField("keyword", keyword).Error("Failed to search movies")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.JSONResponse(c, fiber.StatusOK, movies)
}

// movieID reads the :id path parameter. Ids are SERIAL, so they fit in 32 bits.
func movieID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 32)
}
