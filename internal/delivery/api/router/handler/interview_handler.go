package handler

import (
	"context"

	"jobtrack/internal/delivery/api/response"
	"jobtrack/internal/domain/entity"
	"jobtrack/internal/errors"
	"jobtrack/internal/usecase"

	"github.com/labstack/echo/v4"
)

type interviewLister func(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[entity.InterviewRound], error)

// InterviewHandler serves /api/v1/interviews.
type InterviewHandler struct {
	uc usecase.InterviewUsecase
}

func NewInterviewHandler(uc usecase.InterviewUsecase) *InterviewHandler {
	return &InterviewHandler{uc: uc}
}

func (h *InterviewHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	input := new(usecase.CreateInterviewInput)
	if err := bindBody(c, input); err != nil {
		return err
	}
	input.UserID = userID

	round, err := h.uc.CreateInterview(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, round, "Interview Round Details have been added successfully !!")
}

func (h *InterviewHandler) Get(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	round, err := h.uc.GetInterview(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, round, "Interview Round Details have been fetched successfully !!")
}

func (h *InterviewHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	input := new(usecase.UpdateInterviewInput)
	fields, err := bindPatch(c, input)
	if err != nil {
		return err
	}
	input.ID = c.Param("id")
	input.UserID = userID
	input.Fields = fields

	round, err := h.uc.UpdateInterview(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, round, "Interview Round Details have been updated successfully !!")
}

func (h *InterviewHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	round, err := h.uc.DeleteInterview(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, round, "Interview Round Details have been deleted successfully !!")
}

// List returns rounds scheduled from now on.
func (h *InterviewHandler) List(c echo.Context) error {
	return h.list(c, h.uc.ListInterviews)
}

// ListArchived returns rounds that already took place.
func (h *InterviewHandler) ListArchived(c echo.Context) error {
	return h.list(c, h.uc.ListArchivedInterviews)
}

func (h *InterviewHandler) list(c echo.Context, fetch interviewLister) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	page, err := pageRequest(c)
	if err != nil {
		return err
	}

	result, err := fetch(c.Request().Context(), userID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.List("interviewRounds", result), "Interview Round Details have been fetched successfully !!")
}
