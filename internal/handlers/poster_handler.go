package handlers

import (
	"errors"

	"movie-catalog/internal/repository"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PosterHandler struct {
	posters services.PosterService
	movies  repository.MovieRepository
	logger  *logrus.Logger
}

// NewPosterHandler builds the handler. posters may be nil when object storage is not configured.
func NewPosterHandler(posters services.PosterService, movies repository.MovieRepository, logger *logrus.Logger) *PosterHandler {
	return &PosterHandler{
		posters: posters,
		movies:  movies,
		logger:  logger,
	}
}

// GetPosterUploadURL godoc
// @Summary Get presigned URL for a poster upload
// @Description Generate a presigned PUT URL for uploading a movie poster to object storage
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Param filename query string true "Filename"
// @Param contentType query string false "Content Type" default(image/jpeg)
// @Success 200 {object} services.PosterUpload
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.MessageBody
// @Failure 500 {object} utils.ErrorBody
// @Failure 503 {object} utils.ErrorBody
// @Router /movie/{id}/poster [get]
func (h *PosterHandler) GetPosterUploadURL(c *fiber.Ctx) error {
	if h.posters == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Poster storage is not configured")
	}

	id, err := movieID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, msgInvalidID)
	}

	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}
	contentType := c.Query("contentType", "image/jpeg")

	if _, err := h.movies.FindByID(c.Context(), id); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return utils.MessageResponse(c, fiber.StatusNotFound, msgMovieNotFound)
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to get movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	upload, err := h.posters.PresignUpload(c.Context(), id, filename, contentType)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to generate presigned URL")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate presigned URL")
	}

	return utils.JSONResponse(c, fiber.StatusOK, upload)
}
