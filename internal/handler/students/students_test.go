package students

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fatima3985/InternLinkt/internal/api"
	"github.com/fatima3985/InternLinkt/internal/apperrors"
	"github.com/fatima3985/InternLinkt/internal/database"
	"github.com/fatima3985/InternLinkt/internal/model"
	"github.com/fatima3985/InternLinkt/internal/service"
	"github.com/fatima3985/InternLinkt/internal/storage"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = api.NewValidator()
	return e
}

func newFormCtx(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newParamCtx(e *echo.Echo, method, id, body string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newFormCtx(e, method, body)
	c.SetPath("/api/students/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func restore() {
	registerStudent = service.RegisterStudent
	authenticateStudent = service.AuthenticateStudent
	getStudent = service.GetStudent
	updateStudent = service.UpdateStudent
	listStudentApplications = service.ListStudentApplications
	apply = service.Apply
}

func TestSignupHandler(t *testing.T) {
	e := newEcho()

	t.Run("missing fields", func(t *testing.T) {
		t.Cleanup(restore)
		c, rec := newFormCtx(e, http.MethodPost, "name=Alice&email=a@b.com")
		require.NoError(t, SignupHandler(nil)(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"success":false,"error":"All fields are required."}`, rec.Body.String())
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Cleanup(restore)
		registerStudent = func(context.Context, database.DB, api.StudentSignupRequest) (int, error) {
			return 0, apperrors.Conflict("Email already registered.")
		}
		c, rec := newFormCtx(e, http.MethodPost, "name=Alice&email=a@b.com&password=p&university=MIT&major=CS&graduation_year=2026")
		require.NoError(t, SignupHandler(nil)(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Email already registered.")
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		registerStudent = func(_ context.Context, _ database.DB, req api.StudentSignupRequest) (int, error) {
			require.Equal(t, 2026, req.GraduationYear)
			require.Equal(t, "MIT", req.University)
			return 3, nil
		}
		c, rec := newFormCtx(e, http.MethodPost, "name=Alice&email=a@b.com&password=p&university=MIT&major=CS&graduation_year=2026")
		require.NoError(t, SignupHandler(nil)(c))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.JSONEq(t, `{"success":true,"message":"Student registered successfully","id":3}`, rec.Body.String())
	})
}

func TestLoginHandler(t *testing.T) {
	e := newEcho()

	t.Run("invalid credentials", func(t *testing.T) {
		t.Cleanup(restore)
		authenticateStudent = func(context.Context, database.DB, string, string) (*model.Student, error) {
			return nil, apperrors.New(apperrors.ErrInvalidCredentials, "Invalid email or password.")
		}
		c, rec := newFormCtx(e, http.MethodPost, "email=a@b.com&password=x")
		require.NoError(t, LoginHandler(nil)(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Invalid email or password.")
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		authenticateStudent = func(_ context.Context, _ database.DB, email, password string) (*model.Student, error) {
			require.Equal(t, "a@b.com", email)
			require.Equal(t, "pw", password)
			return &model.Student{ID: 3, Name: "Alice", Email: email}, nil
		}
		c, rec := newFormCtx(e, http.MethodPost, "email=a@b.com&password=pw")
		require.NoError(t, LoginHandler(nil)(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"success":true`)
		require.Contains(t, rec.Body.String(), `"student":{`)
		require.Contains(t, rec.Body.String(), `"name":"Alice"`)
	})
}

func TestGetHandler(t *testing.T) {
	e := newEcho()

	t.Run("bad id", func(t *testing.T) {
		t.Cleanup(restore)
		c, rec := newParamCtx(e, http.MethodGet, "x", "")
		require.NoError(t, GetHandler(nil)(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		getStudent = func(context.Context, database.DB, int) (*model.Student, error) {
			return nil, apperrors.NotFound("Student not found.")
		}
		c, rec := newParamCtx(e, http.MethodGet, "9", "")
		require.NoError(t, GetHandler(nil)(c))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		t.Cleanup(restore)
		getStudent = func(context.Context, database.DB, int) (*model.Student, error) { return nil, errors.New("db") }
		c, rec := newParamCtx(e, http.MethodGet, "9", "")
		require.NoError(t, GetHandler(nil)(c))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "Server error.")
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		getStudent = func(_ context.Context, _ database.DB, id int) (*model.Student, error) {
			return &model.Student{ID: id, Name: "Alice"}, nil
		}
		c, rec := newParamCtx(e, http.MethodGet, "9", "")
		require.NoError(t, GetHandler(nil)(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"id":9`)
	})
}

func TestUpdateHandler(t *testing.T) {
	e := newEcho()

	t.Run("missing required", func(t *testing.T) {
		t.Cleanup(restore)
		c, rec := newParamCtx(e, http.MethodPut, "1", "name=Alice")
		require.NoError(t, UpdateHandler(nil)(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Name, university, major and graduation year are required.")
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		updateStudent = func(_ context.Context, _ database.DB, id int, req api.StudentUpdateRequest) error {
			require.Equal(t, 1, id)
			require.Equal(t, "Go", req.Skills)
			return nil
		}
		c, rec := newParamCtx(e, http.MethodPut, "1", "name=Alice&university=MIT&major=CS&graduation_year=2026&skills=Go")
		require.NoError(t, UpdateHandler(nil)(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"success":true,"message":"Profile updated successfully"}`, rec.Body.String())
	})
}

func TestListApplicationsHandler(t *testing.T) {
	t.Cleanup(restore)
	e := newEcho()
	listStudentApplications = func(_ context.Context, _ database.DB, id int) ([]model.StudentApplication, error) {
		require.Equal(t, 4, id)
		return []model.StudentApplication{}, nil
	}
	c, rec := newParamCtx(e, http.MethodGet, "4", "")
	require.NoError(t, ListApplicationsHandler(nil)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestApplyHandler(t *testing.T) {
	t.Cleanup(restore)
	e := newEcho()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("student_id", "1"))
	require.NoError(t, w.WriteField("internship_id", "2"))
	require.NoError(t, w.WriteField("cover_letter", "hi"))
	part, err := w.CreateFormFile("resume", "cv.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/students/apply", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	blobs := &storage.FakeStore{SaveFn: func(*multipart.FileHeader) (string, error) { return "/resumes/a.pdf", nil }}
	apply = func(_ context.Context, _ database.DB, r api.ApplyRequest, resume string) (int, error) {
		require.Equal(t, api.ApplyRequest{StudentID: 1, InternshipID: 2, CoverLetter: "hi"}, r)
		require.Equal(t, "/resumes/a.pdf", resume)
		return 11, nil
	}
	require.NoError(t, ApplyHandler(nil, blobs)(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"success":true,"message":"Application submitted successfully","id":11}`, rec.Body.String())
}
