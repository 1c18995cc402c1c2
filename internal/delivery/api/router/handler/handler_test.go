package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jobtrack/config"
	"jobtrack/internal/delivery/api/cookies"
	"jobtrack/internal/delivery/api/response"
	deliverycontext "jobtrack/internal/delivery/context"
	"jobtrack/internal/domain/entity"
	domainerrors "jobtrack/internal/domain/errors"
	"jobtrack/internal/errors"
	mockUsecase "jobtrack/internal/mocks/usecase"
	"jobtrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testUserID = "665f1c2b9a1e4b0012345678"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newContext builds an echo context for method and target with an optional
// JSON body. When authenticated, the test user's identity is attached.
func newContext(method, target, body string, authenticated bool) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if authenticated {
		deliverycontext.SetCaller(c, &entity.Identity{UserID: testUserID, Email: "ada@example.com"})
	}

	return c, rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestApplicationHandler_Create(t *testing.T) {
	uc := mockUsecase.NewMockApplicationUsecase(t)
	h := NewApplicationHandler(uc)

	uc.EXPECT().
		CreateApplication(mock.Anything, mock.MatchedBy(func(in *usecase.CreateApplicationInput) bool {
			return in.UserID == testUserID && in.CompanyName == "Acme" && in.AppliedOn == "2024-05-01"
		})).
		Return(&entity.Application{ID: "app-1", UserID: testUserID, CompanyName: "Acme"}, nil)

	c, rec := newContext(http.MethodPost, "/api/v1/applications",
		`{"companyName":"Acme","position":"Engineer","resumeUploaded":"r.pdf","appliedOn":"2024-05-01","userId":"someone-else"}`, true)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	body := decodeEnvelope(t, rec)
	assert.Equal(t, float64(http.StatusCreated), body["statusCode"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "app-1", data["_id"])
	assert.Equal(t, testUserID, data["userId"])
}

func TestApplicationHandler_RequiresIdentity(t *testing.T) {
	h := NewApplicationHandler(mockUsecase.NewMockApplicationUsecase(t))
	c, _ := newContext(http.MethodGet, "/api/v1/applications", "", false)

	err := h.List(c)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestApplicationHandler_CreateRejectsMalformedBody(t *testing.T) {
	h := NewApplicationHandler(mockUsecase.NewMockApplicationUsecase(t))
	c, _ := newContext(http.MethodPost, "/api/v1/applications", `{"companyName":`, true)

	err := h.Create(c)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestApplicationHandler_UpdateCollectsSubmittedFields(t *testing.T) {
	uc := mockUsecase.NewMockApplicationUsecase(t)
	h := NewApplicationHandler(uc)

	var got *usecase.UpdateApplicationInput
	uc.EXPECT().
		UpdateApplication(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, in *usecase.UpdateApplicationInput) (*entity.Application, error) {
			got = in
			return nil, errors.WithStack(domainerrors.ErrFieldNotAllowed.WithDetails("not updatable: userId"))
		})

	c, _ := newContext(http.MethodPatch, "/api/v1/applications/app-1", `{"notes":"follow up","userId":"x"}`, true)
	c.SetParamNames("id")
	c.SetParamValues("app-1")

	err := h.Update(c)
	assert.ErrorIs(t, err, domainerrors.ErrFieldNotAllowed)

	require.NotNil(t, got)
	assert.Equal(t, "app-1", got.ID)
	assert.Equal(t, testUserID, got.UserID)
	assert.ElementsMatch(t, []string{"notes", "userId"}, got.Fields)
	require.NotNil(t, got.Notes)
	assert.Equal(t, "follow up", *got.Notes)
}

func TestApplicationHandler_UpdateEmptyPayload(t *testing.T) {
	for _, body := range []string{`{}`, `null`} {
		t.Run(body, func(t *testing.T) {
			uc := mockUsecase.NewMockApplicationUsecase(t)
			h := NewApplicationHandler(uc)

			uc.EXPECT().
				UpdateApplication(mock.Anything, mock.MatchedBy(func(in *usecase.UpdateApplicationInput) bool {
					return in.ID == "app-1" && len(in.Fields) == 0
				})).
				Return(&entity.Application{ID: "app-1", UserID: testUserID, CompanyName: "Acme"}, nil)

			c, rec := newContext(http.MethodPatch, "/api/v1/applications/app-1", body, true)
			c.SetParamNames("id")
			c.SetParamValues("app-1")

			require.NoError(t, h.Update(c))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestApplicationHandler_ListPassesStatusAndPage(t *testing.T) {
	uc := mockUsecase.NewMockApplicationUsecase(t)
	h := NewApplicationHandler(uc)

	uc.EXPECT().
		ListApplications(mock.Anything, &usecase.ListApplicationsInput{
			UserID: testUserID,
			Status: "Interviewing",
			Page:   entity.PageRequest{Page: 2, Limit: 5},
		}).
		Return(&entity.Page[entity.Application]{
			Items:      []entity.Application{{ID: "a"}, {ID: "b"}},
			Pagination: entity.NewPagination(12, entity.PageRequest{Page: 2, Limit: 5}),
		}, nil)

	c, rec := newContext(http.MethodGet, "/api/v1/applications?status=Interviewing&page=2&limit=5", "", true)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	assert.Len(t, data["applications"], 2)
	pagination := data["pagination"].(map[string]any)
	assert.Equal(t, float64(12), pagination["totalDocs"])
	assert.Equal(t, float64(3), pagination["totalPages"])
	assert.Equal(t, float64(2), pagination["currentPage"])
}

func TestApplicationHandler_ListRejectsNonNumericPage(t *testing.T) {
	h := NewApplicationHandler(mockUsecase.NewMockApplicationUsecase(t))
	c, _ := newContext(http.MethodGet, "/api/v1/applications?page=two", "", true)

	err := h.List(c)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestApplicationHandler_CountArchived(t *testing.T) {
	uc := mockUsecase.NewMockApplicationUsecase(t)
	h := NewApplicationHandler(uc)

	uc.EXPECT().CountArchivedApplications(mock.Anything, testUserID).Return(int64(4), nil)

	c, rec := newContext(http.MethodGet, "/api/v1/applications/archived/count", "", true)

	require.NoError(t, h.CountArchived(c))
	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	assert.Equal(t, float64(4), data["count"])
}

func TestContactHandler_GetPropagatesOwnership(t *testing.T) {
	uc := mockUsecase.NewMockContactUsecase(t)
	h := NewContactHandler(uc)

	uc.EXPECT().GetContact(mock.Anything, "c-1", testUserID).Return(nil, errors.WithStack(domainerrors.ErrNotOwner))

	c, _ := newContext(http.MethodGet, "/api/v1/contacts/c-1", "", true)
	c.SetParamNames("id")
	c.SetParamValues("c-1")

	err := h.Get(c)
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestContactHandler_ListEmptyPage(t *testing.T) {
	uc := mockUsecase.NewMockContactUsecase(t)
	h := NewContactHandler(uc)

	uc.EXPECT().
		ListContacts(mock.Anything, testUserID, entity.NewPageRequest(0, 0)).
		Return(&entity.Page[entity.Contact]{Pagination: entity.NewPagination(0, entity.NewPageRequest(0, 0))}, nil)

	c, rec := newContext(http.MethodGet, "/api/v1/contacts", "", true)

	require.NoError(t, h.List(c))
	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	assert.Equal(t, []any{}, data["contacts"])
}

func TestContactHandler_Delete(t *testing.T) {
	uc := mockUsecase.NewMockContactUsecase(t)
	h := NewContactHandler(uc)

	uc.EXPECT().DeleteContact(mock.Anything, "c-1", testUserID).Return(&entity.Contact{ID: "c-1"}, nil)

	c, rec := newContext(http.MethodDelete, "/api/v1/contacts/c-1", "", true)
	c.SetParamNames("id")
	c.SetParamValues("c-1")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInterviewHandler_ListArchived(t *testing.T) {
	uc := mockUsecase.NewMockInterviewUsecase(t)
	h := NewInterviewHandler(uc)

	uc.EXPECT().
		ListArchivedInterviews(mock.Anything, testUserID, entity.PageRequest{Page: 1, Limit: 20}).
		Return(&entity.Page[entity.InterviewRound]{
			Items:      []entity.InterviewRound{{ID: "r-1"}},
			Pagination: entity.NewPagination(1, entity.PageRequest{Page: 1, Limit: 20}),
		}, nil)

	c, rec := newContext(http.MethodGet, "/api/v1/interviews/archived?limit=20", "", true)

	require.NoError(t, h.ListArchived(c))
	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	assert.Len(t, data["interviewRounds"], 1)
}

func TestInterviewHandler_Create(t *testing.T) {
	uc := mockUsecase.NewMockInterviewUsecase(t)
	h := NewInterviewHandler(uc)

	uc.EXPECT().
		CreateInterview(mock.Anything, mock.MatchedBy(func(in *usecase.CreateInterviewInput) bool {
			return in.UserID == testUserID && in.InterviewRound == "Technical"
		})).
		Return(&entity.InterviewRound{ID: "r-1"}, nil)

	c, rec := newContext(http.MethodPost, "/api/v1/interviews",
		`{"position":"Engineer","companyName":"Acme","interviewRound":"Technical","scheduledOn":"2024-07-01T10:00:00Z"}`, true)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUserHandler_LoginSetsCookies(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, cookies.NewWriter(&config.Config{}), newDiscardLogger())

	uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "ada@example.com", Password: "secret"}).
		Return(&usecase.LoginOutput{
			TokenPair: usecase.TokenPair{AccessToken: "access", RefreshToken: "refresh"},
			User:      &entity.User{ID: testUserID, Email: "ada@example.com"},
		}, nil)

	c, rec := newContext(http.MethodPost, "/api/v1/users/login", `{"email":"ada@example.com","password":"secret"}`, false)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	names := map[string]string{}
	for _, cookie := range rec.Result().Cookies() {
		names[cookie.Name] = cookie.Value
	}
	assert.Equal(t, "access", names["accessToken"])
	assert.Equal(t, "refresh", names["refreshToken"])

	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	assert.Equal(t, "access", data["accessToken"])
	assert.Equal(t, "refresh", data["refreshToken"])
}

func TestUserHandler_LoginFailureSetsNoCookies(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, cookies.NewWriter(&config.Config{}), newDiscardLogger())

	uc.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials))

	c, rec := newContext(http.MethodPost, "/api/v1/users/login", `{"email":"ada@example.com","password":"wrong"}`, false)

	err := h.Login(c)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Empty(t, rec.Result().Cookies())
}

func TestUserHandler_RefreshTokenPrefersCookie(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, cookies.NewWriter(&config.Config{}), newDiscardLogger())

	uc.EXPECT().RefreshToken(mock.Anything, "from-cookie").
		Return(&usecase.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil)

	c, rec := newContext(http.MethodPost, "/api/v1/users/refresh-token", `{"refreshToken":"from-body"}`, false)
	c.Request().AddCookie(&http.Cookie{Name: "refreshToken", Value: "from-cookie"})

	require.NoError(t, h.RefreshToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_RefreshTokenFromBody(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, cookies.NewWriter(&config.Config{}), newDiscardLogger())

	uc.EXPECT().RefreshToken(mock.Anything, "from-body").
		Return(nil, errors.WithStack(domainerrors.ErrRefreshTokenReused))

	c, _ := newContext(http.MethodPost, "/api/v1/users/refresh-token", `{"refreshToken":"from-body"}`, false)

	err := h.RefreshToken(c)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenReused)
}

func TestUserHandler_LogoutClearsCookies(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, cookies.NewWriter(&config.Config{}), newDiscardLogger())

	uc.EXPECT().Logout(mock.Anything, testUserID).Return(nil)

	c, rec := newContext(http.MethodPost, "/api/v1/users/logout", "", true)

	require.NoError(t, h.Logout(c))
	for _, cookie := range rec.Result().Cookies() {
		assert.Equal(t, -1, cookie.MaxAge, cookie.Name)
	}
	assert.Len(t, rec.Result().Cookies(), 2)
}

func TestResumeHandler_UploadMissingFile(t *testing.T) {
	h := NewResumeHandler(mockUsecase.NewMockResumeUsecase(t))

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("targetPosition", "Engineer"))
	require.NoError(t, writer.Close())

	c, _ := newContext(http.MethodPost, "/api/v1/users/resume", "", true)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/resume", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	c.SetRequest(req.WithContext(c.Request().Context()))

	err := h.Upload(c)
	assert.ErrorIs(t, err, domainerrors.ErrResumeFileMissing)
}

func TestResumeHandler_Upload(t *testing.T) {
	uc := mockUsecase.NewMockResumeUsecase(t)
	h := NewResumeHandler(uc)

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("targetPosition", "Engineer"))
	require.NoError(t, writer.WriteField("skills", "go, mongo"))
	part, err := writer.CreateFormFile("resume", "cv.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.7\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	uc.EXPECT().
		UploadResume(mock.Anything, mock.MatchedBy(func(in *usecase.UploadResumeInput) bool {
			return in.UserID == testUserID &&
				in.TargetPosition == "Engineer" &&
				assert.ObjectsAreEqual([]string{"go", "mongo"}, in.Skills) &&
				in.OriginalName == "cv.pdf" &&
				in.Size == 9
		})).
		Return(&entity.Resume{ID: "res-1"}, nil)

	c, rec := newContext(http.MethodPost, "/api/v1/users/resume", "", true)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/resume", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	c.SetRequest(req.WithContext(c.Request().Context()))

	require.NoError(t, h.Upload(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthHandler_Ready(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/health/ready", "", false)
	require.NoError(t, NewHealthHandler(stubPinger{}).Ready(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, _ = newContext(http.MethodGet, "/health/ready", "", false)
	err := NewHealthHandler(stubPinger{err: errors.New("no reachable servers")}).Ready(c)
	assert.ErrorIs(t, err, domainerrors.ErrServiceUnavailable)
}

func TestHealthHandler_Live(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/health", "", false)
	require.NoError(t, NewHealthHandler(stubPinger{}).Live(c))

	var body response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
}
