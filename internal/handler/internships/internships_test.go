package internships

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fatima3985/InternLinkt/internal/api"
	"github.com/fatima3985/InternLinkt/internal/apperrors"
	"github.com/fatima3985/InternLinkt/internal/cache"
	"github.com/fatima3985/InternLinkt/internal/database"
	"github.com/fatima3985/InternLinkt/internal/model"
	"github.com/fatima3985/InternLinkt/internal/service"
	"github.com/fatima3985/InternLinkt/internal/storage"
	"github.com/fatima3985/InternLinkt/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// inlinePool 直接在呼叫端執行工作
type inlinePool struct{ submitted int }

func (p *inlinePool) Submit(t worker.Task) { p.submitted++; t() }
func (p *inlinePool) Stop()                {}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = api.NewValidator()
	return e
}

func newCtx(e *echo.Echo, method, target, id, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c, rec
}

func restore() {
	createInternship = service.CreateInternship
	listInternships = service.ListInternships
	getInternship = service.GetInternship
	updateInternship = service.UpdateInternship
	deleteInternship = service.DeleteInternship
	apply = service.Apply
}

func TestCreateHandler(t *testing.T) {
	e := newEcho()

	t.Run("missing company", func(t *testing.T) {
		t.Cleanup(restore)
		c, rec := newCtx(e, http.MethodPost, "/api/internships", "", `{"title":"Intern","location":"Boston","type":"Remote","skills":"Go"}`)
		require.NoError(t, CreateHandler(nil)(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Missing required fields.")
	})

	t.Run("unknown company", func(t *testing.T) {
		t.Cleanup(restore)
		createInternship = func(context.Context, database.DB, int, api.InternshipRequest) (int, error) {
			return 0, apperrors.NotFound("Company not found.")
		}
		c, rec := newCtx(e, http.MethodPost, "/api/internships", "", `{"company_id":9,"title":"Intern","location":"Boston","type":"Remote","skills":"Go"}`)
		require.NoError(t, CreateHandler(nil)(c))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		createInternship = func(_ context.Context, _ database.DB, companyID int, req api.InternshipRequest) (int, error) {
			require.Equal(t, 9, companyID)
			require.Equal(t, "Intern", req.Title)
			return 4, nil
		}
		c, rec := newCtx(e, http.MethodPost, "/api/internships", "", `{"company_id":9,"title":"Intern","location":"Boston","type":"Remote","skills":"Go"}`)
		require.NoError(t, CreateHandler(nil)(c))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.JSONEq(t, `{"success":true,"message":"Internship created successfully","id":4}`, rec.Body.String())
	})
}

func TestListHandler(t *testing.T) {
	e := newEcho()

	t.Run("query binding", func(t *testing.T) {
		t.Cleanup(restore)
		listInternships = func(_ context.Context, _ database.DB, q api.InternshipQuery) ([]model.Internship, error) {
			require.Equal(t, api.InternshipQuery{Location: "boston", Type: "Remote", SalaryMin: "1000", SalaryMax: "3000", Skills: "go"}, q)
			return []model.Internship{}, nil
		}
		c, rec := newCtx(e, http.MethodGet, "/api/internships?location=boston&type=Remote&salaryMin=1000&salaryMax=3000&skills=go", "", "")
		require.NoError(t, ListHandler(nil)(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("bad salary", func(t *testing.T) {
		t.Cleanup(restore)
		listInternships = func(context.Context, database.DB, api.InternshipQuery) ([]model.Internship, error) {
			return nil, apperrors.Validation("salaryMin must be an integer.")
		}
		c, rec := newCtx(e, http.MethodGet, "/api/internships?salaryMin=abc", "", "")
		require.NoError(t, ListHandler(nil)(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetHandler(t *testing.T) {
	t.Cleanup(restore)
	e := newEcho()
	fc := &cache.FakeCache{}

	getInternship = func(_ context.Context, _ database.DB, c cache.Cache, id int) (*model.Internship, error) {
		require.Same(t, fc, c)
		if id == 404 {
			return nil, apperrors.NotFound("Internship not found.")
		}
		return &model.Internship{ID: id, Title: "Intern", CompanyName: "Acme"}, nil
	}

	c, rec := newCtx(e, http.MethodGet, "/", "404", "")
	require.NoError(t, GetHandler(nil, fc)(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Internship not found.")

	c, rec = newCtx(e, http.MethodGet, "/", "1", "")
	require.NoError(t, GetHandler(nil, fc)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"company_name":"Acme"`)
}

func TestUpdateHandler(t *testing.T) {
	e := newEcho()

	t.Run("bad deadline", func(t *testing.T) {
		t.Cleanup(restore)
		c, rec := newCtx(e, http.MethodPut, "/", "1", `{"title":"Intern","location":"Boston","type":"Remote","skills":"Go","deadline":"tomorrow"}`)
		require.NoError(t, UpdateHandler(nil, nil)(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Invalid deadline.")
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		updateInternship = func(_ context.Context, _ database.DB, _ cache.Cache, id int, req api.InternshipRequest) error {
			require.Equal(t, 1, id)
			require.Equal(t, "2025-06-30", req.Deadline)
			return nil
		}
		c, rec := newCtx(e, http.MethodPut, "/", "1", `{"title":"Intern","location":"Boston","type":"Remote","skills":"Go","deadline":"2025-06-30"}`)
		require.NoError(t, UpdateHandler(nil, nil)(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"success":true,"message":"Internship updated successfully"}`, rec.Body.String())
	})
}

func TestDeleteHandler(t *testing.T) {
	e := newEcho()

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		deleteInternship = func(context.Context, database.DB, cache.Cache, int) ([]string, error) {
			return nil, apperrors.NotFound("Internship not found.")
		}
		wp := &inlinePool{}
		c, rec := newCtx(e, http.MethodDelete, "/", "3", "")
		require.NoError(t, DeleteHandler(nil, nil, wp, &storage.FakeStore{})(c))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Zero(t, wp.submitted)
	})

	t.Run("no resumes", func(t *testing.T) {
		t.Cleanup(restore)
		deleteInternship = func(context.Context, database.DB, cache.Cache, int) ([]string, error) { return nil, nil }
		wp := &inlinePool{}
		c, rec := newCtx(e, http.MethodDelete, "/", "3", "")
		require.NoError(t, DeleteHandler(nil, nil, wp, &storage.FakeStore{})(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Zero(t, wp.submitted)
	})

	t.Run("removes resumes in background", func(t *testing.T) {
		t.Cleanup(restore)
		deleteInternship = func(context.Context, database.DB, cache.Cache, int) ([]string, error) {
			return []string{"/resumes/a.pdf", "/resumes/b.pdf"}, nil
		}
		var removed []string
		blobs := &storage.FakeStore{RemoveFn: func(ref string) error {
			removed = append(removed, ref)
			if ref == "/resumes/a.pdf" {
				return errors.New("gone")
			}
			return nil
		}}
		wp := &inlinePool{}
		c, rec := newCtx(e, http.MethodDelete, "/", "3", "")
		require.NoError(t, DeleteHandler(nil, nil, wp, blobs)(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"success":true,"message":"Internship deleted successfully"}`, rec.Body.String())
		require.Equal(t, 1, wp.submitted)
		require.Equal(t, []string{"/resumes/a.pdf", "/resumes/b.pdf"}, removed)
	})
}

func TestApplyHandler(t *testing.T) {
	e := newEcho()

	t.Run("internship id from path", func(t *testing.T) {
		t.Cleanup(restore)
		apply = func(_ context.Context, _ database.DB, req api.ApplyRequest, resume string) (int, error) {
			require.Equal(t, 6, req.InternshipID)
			require.Equal(t, 1, req.StudentID)
			require.Empty(t, resume)
			return 12, nil
		}
		c, rec := newCtx(e, http.MethodPost, "/", "6", `{"student_id":1,"internship_id":99}`)
		require.NoError(t, ApplyHandler(nil, &storage.FakeStore{})(c))
		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("missing student", func(t *testing.T) {
		t.Cleanup(restore)
		c, rec := newCtx(e, http.MethodPost, "/", "6", `{}`)
		require.NoError(t, ApplyHandler(nil, &storage.FakeStore{})(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Student ID and Internship ID are required.")
	})
}
