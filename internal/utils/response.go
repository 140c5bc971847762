package utils

import "github.com/gofiber/fiber/v2"

// ErrorBody is returned for failed requests. Database errors are passed through verbatim.
type ErrorBody struct {
	Error string `json:"error" example:"duplicate key value violates unique constraint \"favourites_user_id_movie_id_key\""`
}

// MessageBody carries a plain status message.
type MessageBody struct {
	Message string `json:"message" example:"Movie not found"`
}

// JSONResponse sends data as the response body.
func JSONResponse(c *fiber.Ctx, code int, data interface{}) error {
	return c.Status(code).JSON(data)
}

// ErrorResponse sends an error response
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(ErrorBody{Error: message})
}

// MessageResponse sends a message response
func MessageResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(MessageBody{Message: message})
}
