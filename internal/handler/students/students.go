package students

import (
	"context"
	"net/http"

	"github.com/fatima3985/InternLinkt/internal/api"
	"github.com/fatima3985/InternLinkt/internal/database"
	"github.com/fatima3985/InternLinkt/internal/dto"
	"github.com/fatima3985/InternLinkt/internal/handler"
	"github.com/fatima3985/InternLinkt/internal/service"
	"github.com/fatima3985/InternLinkt/internal/storage"

	"github.com/labstack/echo/v4"
)

var (
	registerStudent         = service.RegisterStudent
	authenticateStudent     = service.AuthenticateStudent
	getStudent              = service.GetStudent
	updateStudent           = service.UpdateStudent
	listStudentApplications = service.ListStudentApplications
	apply                   = service.Apply
)

// SignupHandler 學生註冊
// @Summary     Student signup
// @Description 建立學生帳號與個人檔案
// @Tags        students
// @Accept      json
// @Produce     json
// @Param       body body api.StudentSignupRequest true "註冊資料"
// @Success     201 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /students/signup [post]
func SignupHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.StudentSignupRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.Respond(c, err)
		}
		id, err := registerStudent(c.Request().Context(), db, req)
		if err != nil {
			return handler.Respond(c, err)
		}
		return handler.Created(c, "Student registered successfully", id)
	}
}

// LoginHandler 學生登入，成功時回傳學生檔案
// @Summary     Student login
// @Tags        students
// @Accept      json
// @Produce     json
// @Param       body body api.LoginRequest true "登入資料"
// @Success     200 {object} dto.StudentLoginResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /students/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.Respond(c, err)
		}
		st, err := authenticateStudent(c.Request().Context(), db, req.Email, req.Password)
		if err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusOK, dto.StudentLoginResponse{Success: true, Student: st})
	}
}

// GetHandler 取得學生檔案
// @Summary     Get student
// @Tags        students
// @Produce     json
// @Param       id path int true "學生 ID"
// @Success     200 {object} model.Student
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /students/{id} [get]
func GetHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return handler.Respond(c, err)
		}
		st, err := getStudent(c.Request().Context(), db, id)
		if err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusOK, st)
	}
}

// UpdateHandler 覆寫學生檔案
// @Summary     Update student
// @Description 以請求內容整筆覆寫檔案；空字串欄位清為 null
// @Tags        students
// @Accept      json
// @Produce     json
// @Param       id   path int                      true "學生 ID"
// @Param       body body api.StudentUpdateRequest true "檔案內容"
// @Success     200 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /students/{id} [put]
func UpdateHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return handler.Respond(c, err)
		}
		var req api.StudentUpdateRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.Respond(c, err)
		}
		if err := updateStudent(c.Request().Context(), db, id, req); err != nil {
			return handler.Respond(c, err)
		}
		return handler.OK(c, "Profile updated successfully")
	}
}

// ListApplicationsHandler 學生的應徵紀錄（含職缺與公司資訊）
// @Summary     List student applications
// @Tags        students
// @Produce     json
// @Param       id path int true "學生 ID"
// @Success     200 {array}  model.StudentApplication
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /students/{id}/applications [get]
func ListApplicationsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return handler.Respond(c, err)
		}
		apps, err := listStudentApplications(c.Request().Context(), db, id)
		if err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusOK, apps)
	}
}

// ApplyHandler 應徵職缺，可附 resume 檔案
// @Summary     Apply to internship
// @Tags        students
// @Accept      multipart/form-data
// @Produce     json
// @Param       student_id    formData int    true  "學生 ID"
// @Param       internship_id formData int    true  "職缺 ID"
// @Param       cover_letter  formData string false "求職信"
// @Param       resume        formData file   false "履歷（pdf、doc、docx）"
// @Success     201 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /students/apply [post]
func ApplyHandler(db database.DB, blobs storage.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ApplyRequest
		if err := handler.BindBody(c, &req); err != nil {
			return handler.Respond(c, err)
		}
		return handler.SubmitApplication(c, blobs, req, func(ctx context.Context, req api.ApplyRequest, resume string) (int, error) {
			return apply(ctx, db, req, resume)
		})
	}
}
