// Package server provides the HTTP JSON API for review submissions.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/labstack/echo/v4"

	"github.com/quizkeep/quizkeep/internal/review"
	"github.com/quizkeep/quizkeep/internal/srs"
)

//go:generate mockgen -source=review_handler.go -destination=../mocks/server/mock_reviewer.go -package=mock_server Reviewer

// Reviewer is the review engine behind the HTTP surface. Implemented by
// review.Service.
type Reviewer interface {
	SubmitReview(ctx context.Context, ref, userID string, rating srs.Rating) (*review.Result, error)
	UndoLastReview(ctx context.Context, ref, userID string) (*srs.ScheduleState, error)
}

// ReviewHandler handles the /review endpoints.
type ReviewHandler struct {
	reviewer Reviewer
	validate *validator.Validate
	trans    ut.Translator
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(reviewer Reviewer) (*ReviewHandler, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &ReviewHandler{
		reviewer: reviewer,
		validate: validate,
		trans:    trans,
	}, nil
}

type submitReviewRequest struct {
	ItemRef string `json:"itemRef" validate:"required"`
	UserID  string `json:"userId" validate:"required"`
	Rating  *int   `json:"rating" validate:"required,min=1,max=4"`
}

type submitReviewResponse struct {
	Success         bool              `json:"success"`
	PreviousState   srs.ScheduleState `json:"previousState"`
	UpdatedState    srs.ScheduleState `json:"updatedState"`
	OverrideCleared bool              `json:"overrideCleared"`
}

type undoReviewRequest struct {
	ItemRef string `json:"itemRef" validate:"required"`
	UserID  string `json:"userId" validate:"required"`
}

type undoReviewResponse struct {
	Success       bool              `json:"success"`
	RestoredState srs.ScheduleState `json:"restoredState"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SubmitReview handles POST /review.
func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	var req submitReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed request body"})
	}
	if message, ok := h.validationMessage(&req); !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: message})
	}

	result, err := h.reviewer.SubmitReview(
		c.Request().Context(), req.ItemRef, req.UserID, srs.Rating(*req.Rating))
	if err != nil {
		return h.errorJSON(c, err, "failed to apply review")
	}

	return c.JSON(http.StatusOK, submitReviewResponse{
		Success:         true,
		PreviousState:   result.Previous,
		UpdatedState:    result.Updated,
		OverrideCleared: result.OverrideCleared,
	})
}

// UndoReview handles POST /review/undo.
func (h *ReviewHandler) UndoReview(c echo.Context) error {
	var req undoReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed request body"})
	}
	if message, ok := h.validationMessage(&req); !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: message})
	}

	restored, err := h.reviewer.UndoLastReview(c.Request().Context(), req.ItemRef, req.UserID)
	if err != nil {
		return h.errorJSON(c, err, "failed to undo review")
	}

	return c.JSON(http.StatusOK, undoReviewResponse{
		Success:       true,
		RestoredState: *restored,
	})
}

// validationMessage validates a request DTO and renders every violation
// into one message for the 400 response.
func (h *ReviewHandler) validationMessage(req any) (string, bool) {
	err := h.validate.Struct(req)
	if err == nil {
		return "", true
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "invalid request", false
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, fieldError.Translate(h.trans))
	}
	return strings.Join(messages, "; "), false
}

// errorJSON maps engine errors onto the response taxonomy: validation 400,
// not found 404, nothing-to-undo 409, everything else 500.
func (h *ReviewHandler) errorJSON(c echo.Context, err error, internalMessage string) error {
	switch {
	case errors.Is(err, review.ErrInvalidRating):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, review.ErrItemNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: review.ErrItemNotFound.Error()})
	case errors.Is(err, review.ErrNothingToUndo):
		return c.JSON(http.StatusConflict, errorResponse{Error: review.ErrNothingToUndo.Error()})
	default:
		slog.Default().Error("review request failed",
			slog.String("path", c.Path()),
			slog.Any("error", err),
		)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: internalMessage})
	}
}
