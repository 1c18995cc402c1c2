package handler

import (
	"net/http"

	"jobtrack/internal/delivery/api/response"
	domainerrors "jobtrack/internal/domain/errors"
	"jobtrack/internal/errors"
	"jobtrack/internal/usecase"
	"jobtrack/internal/util"

	"github.com/labstack/echo/v4"
)

// resumeField is the multipart field carrying the file.
const resumeField = "resume"

type ResumeHandler struct {
	uc usecase.ResumeUsecase
}

func NewResumeHandler(uc usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

// Upload accepts a multipart form with a single resume file plus targetPosition and skills.
func (h *ResumeHandler) Upload(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile(resumeField)
	if errors.Is(err, http.ErrMissingFile) {
		return errors.WithStack(domainerrors.ErrResumeFileMissing)
	}
	if err != nil {
		return domainerrors.ErrResumeFileMissing.WithDetails("request must be multipart/form-data").Wrap(err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domainerrors.ErrResumeUploadFailed.Wrap(err)
	}
	defer file.Close()

	form, err := c.FormParams()
	if err != nil {
		return domainerrors.ErrValidationFailed.Wrap(err)
	}

	resume, err := h.uc.UploadResume(c.Request().Context(), &usecase.UploadResumeInput{
		UserID:         userID,
		TargetPosition: form.Get("targetPosition"),
		Skills:         util.SplitList(form["skills"]),
		OriginalName:   fileHeader.Filename,
		Size:           fileHeader.Size,
		Content:        file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, resume, "Resume uploaded successfully")
}

func (h *ResumeHandler) List(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	page, err := pageRequest(c)
	if err != nil {
		return err
	}

	result, err := h.uc.ListResumes(c.Request().Context(), userID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.List("resumes", result), "Resumes fetched successfully")
}
