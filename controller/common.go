package controller

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mandilinkybl-pixel/madirate/customerrors"
	"github.com/mandilinkybl-pixel/madirate/model"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondError maps a service error to its HTTP status and writes the
// common JSON envelope. Untyped errors never leak their message.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case customerrors.IsValidation(err):
		status = http.StatusBadRequest
		message = err.Error()
	case customerrors.IsNotFound(err):
		status = http.StatusNotFound
		message = err.Error()
	case customerrors.IsConflict(err):
		status = http.StatusConflict
		message = err.Error()
	default:
		log.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("request failed")
	}

	c.JSON(status, model.Response{Success: false, Message: message})
}

// flashMessage is the user-facing text carried on a redirect. Typed
// errors surface as-is; anything else becomes a generic line.
func flashMessage(err error) string {
	if customerrors.IsValidation(err) || customerrors.IsNotFound(err) || customerrors.IsConflict(err) {
		return err.Error()
	}
	log.Error().Err(err).Msg("request failed")
	return "Something went wrong, please try again"
}

// redirectWithFlash sends the browser back to path with message/error
// query params for the admin pages to display.
func redirectWithFlash(c *gin.Context, path, message, errMsg string) {
	v := url.Values{}
	if message != "" {
		v.Set("message", message)
	}
	if errMsg != "" {
		v.Set("error", errMsg)
	}
	if enc := v.Encode(); enc != "" {
		path = path + "?" + enc
	}
	c.Redirect(http.StatusFound, path)
}

// parsePositiveInt parses a query parameter that must be a positive
// integer.
func parsePositiveInt(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("value must be positive")
	}
	return n, nil
}

// wantsJSON reports whether the client sent or expects JSON; form posts
// from the admin pages get redirects instead.
func wantsJSON(c *gin.Context) bool {
	if strings.Contains(c.ContentType(), "application/json") {
		return true
	}
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}
