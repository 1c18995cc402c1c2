package handler

import (
	"jobtrack/internal/delivery/api/response"
	"jobtrack/internal/errors"
	"jobtrack/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ContactHandler serves /api/v1/contacts.
type ContactHandler struct {
	uc usecase.ContactUsecase
}

func NewContactHandler(uc usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

func (h *ContactHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	input := new(usecase.CreateContactInput)
	if err := bindBody(c, input); err != nil {
		return err
	}
	input.UserID = userID

	contact, err := h.uc.CreateContact(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, contact, "Contact Details have been added successfully !!")
}

func (h *ContactHandler) Get(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	contact, err := h.uc.GetContact(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, contact, "Contact Details have been fetched successfully !!")
}

func (h *ContactHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	input := new(usecase.UpdateContactInput)
	fields, err := bindPatch(c, input)
	if err != nil {
		return err
	}
	input.ID = c.Param("id")
	input.UserID = userID
	input.Fields = fields

	contact, err := h.uc.UpdateContact(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, contact, "Contact Details have been updated successfully !!")
}

func (h *ContactHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	contact, err := h.uc.DeleteContact(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, contact, "Contact Details have been deleted successfully !!")
}

func (h *ContactHandler) List(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	page, err := pageRequest(c)
	if err != nil {
		return err
	}

	result, err := h.uc.ListContacts(c.Request().Context(), userID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.List("contacts", result), "Contacts fetched successfully")
}
