package routes

import (
	"movie-catalog/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Genre     *handlers.GenreHandler
	Movie     *handlers.MovieHandler
	User      *handlers.UserHandler
	Review    *handlers.ReviewHandler
	Favourite *handlers.FavouriteHandler
	Poster    *handlers.PosterHandler
}

func Setup(app *fiber.App, h Handlers) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Movie API is running!")
	})

	// Genre routes
	app.Post("/genre", h.Genre.CreateGenre)

	// Movie routes
	app.Post("/movie", h.Movie.CreateMovie)
	app.Get("/movies", h.Movie.GetAllMovies)
	app.Get("/movie", h.Movie.SearchMovies)
	app.Get("/movie/:id", h.Movie.GetMovieByID)
	app.Put("/movie/:id", h.Movie.UpdateMovie)
	app.Delete("/movie/:id", h.Movie.DeleteMovie)
	app.Get("/movie/:id/poster", h.Poster.GetPosterUploadURL)

	// User routes
	app.Post("/register", h.User.Register)

	// Review routes
	app.Post("/review", h.Review.CreateReview)

	// Favourite routes
	app.Post("/favourite", h.Favourite.CreateFavourite)
	app.Get("/favourites", h.Favourite.GetFavourites)
}
