package handler

import (
	"jobtrack/internal/delivery/api/response"
	"jobtrack/internal/errors"
	"jobtrack/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ApplicationHandler serves /api/v1/applications.
type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	input := new(usecase.CreateApplicationInput)
	if err := bindBody(c, input); err != nil {
		return err
	}
	input.UserID = userID

	app, err := h.uc.CreateApplication(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, app, "Job application has been added successfully !!")
}

func (h *ApplicationHandler) Get(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	app, err := h.uc.GetApplication(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, app, "Job Application Details have been fetched successfully !!")
}

func (h *ApplicationHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	input := new(usecase.UpdateApplicationInput)
	fields, err := bindPatch(c, input)
	if err != nil {
		return err
	}
	input.ID = c.Param("id")
	input.UserID = userID
	input.Fields = fields

	app, err := h.uc.UpdateApplication(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, app, "Job Application Details have been updated successfully !!")
}

func (h *ApplicationHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	app, err := h.uc.DeleteApplication(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, app, "Job Application Details have been deleted successfully !!")
}

// List returns the caller's applications, narrowed by the optional status query parameter.
func (h *ApplicationHandler) List(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	page, err := pageRequest(c)
	if err != nil {
		return err
	}

	result, err := h.uc.ListApplications(c.Request().Context(), &usecase.ListApplicationsInput{
		UserID: userID,
		Status: c.QueryParam("status"),
		Page:   page,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.List("applications", result), "Job applications fetched successfully")
}

func (h *ApplicationHandler) ListArchived(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	page, err := pageRequest(c)
	if err != nil {
		return err
	}

	result, err := h.uc.ListArchivedApplications(c.Request().Context(), userID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.List("applications", result), "Archived job applications fetched successfully")
}

func (h *ApplicationHandler) CountArchived(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	count, err := h.uc.CountArchivedApplications(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]int64{"count": count}, "Archived job applications counted successfully")
}
