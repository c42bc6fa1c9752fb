package companies

import (
	"net/http"

	"github.com/fatima3985/InternLinkt/internal/api"
	"github.com/fatima3985/InternLinkt/internal/cache"
	"github.com/fatima3985/InternLinkt/internal/database"
	"github.com/fatima3985/InternLinkt/internal/dto"
	"github.com/fatima3985/InternLinkt/internal/handler"
	"github.com/fatima3985/InternLinkt/internal/service"

	"github.com/labstack/echo/v4"
)

var (
	registerCompany            = service.RegisterCompany
	authenticateCompany        = service.AuthenticateCompany
	getCompany                 = service.GetCompany
	updateCompany              = service.UpdateCompany
	createInternship           = service.CreateInternship
	listCompanyInternships     = service.ListCompanyInternships
	listInternshipApplications = service.ListInternshipApplications
	setApplicationStatus       = service.SetApplicationStatus
)

// SignupHandler 公司註冊
// @Summary     Company signup
// @Tags        companies
// @Accept      json
// @Produce     json
// @Param       body body api.CompanySignupRequest true "註冊資料"
// @Success     201 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /companies/signup [post]
func SignupHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CompanySignupRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.Respond(c, err)
		}
		id, err := registerCompany(c.Request().Context(), db, req)
		if err != nil {
			return handler.Respond(c, err)
		}
		return handler.Created(c, "Company registered successfully", id)
	}
}

// LoginHandler 公司登入
// @Summary     Company login
// @Tags        companies
// @Accept      json
// @Produce     json
// @Param       body body api.LoginRequest true "登入資料"
// @Success     200 {object} dto.CompanyLoginResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /companies/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.Respond(c, err)
		}
		co, err := authenticateCompany(c.Request().Context(), db, req.Email, req.Password)
		if err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusOK, dto.CompanyLoginResponse{Success: true, Company: co})
	}
}

// GetHandler 取得公司檔案
// @Summary     Get company
// @Tags        companies
// @Produce     json
// @Param       id path int true "公司 ID"
// @Success     200 {object} model.Company
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /companies/{id} [get]
func GetHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return handler.Respond(c, err)
		}
		co, err := getCompany(c.Request().Context(), db, id)
		if err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusOK, co)
	}
}

// UpdateHandler 覆寫公司檔案
// @Summary     Update company
// @Tags        companies
// @Accept      json
// @Produce     json
// @Param       id   path int                      true "公司 ID"
// @Param       body body api.CompanyUpdateRequest true "檔案內容"
// @Success     200 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /companies/{id} [put]
func UpdateHandler(db database.DB, rc cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return handler.Respond(c, err)
		}
		var req api.CompanyUpdateRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.Respond(c, err)
		}
		if err := updateCompany(c.Request().Context(), db, rc, id, req); err != nil {
			return handler.Respond(c, err)
		}
		return handler.OK(c, "Company profile updated successfully")
	}
}

// CreateInternshipHandler 公司刊登職缺
// @Summary     Create internship for company
// @Tags        companies
// @Accept      json
// @Produce     json
// @Param       id   path int                   true "公司 ID"
// @Param       body body api.InternshipRequest true "職缺內容"
// @Success     201 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /companies/{id}/internships [post]
func CreateInternshipHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return handler.Respond(c, err)
		}
		var req api.InternshipRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.Respond(c, err)
		}
		internshipID, err := createInternship(c.Request().Context(), db, id, req)
		if err != nil {
			return handler.Respond(c, err)
		}
		return handler.Created(c, "Internship created successfully", internshipID)
	}
}

// ListInternshipsHandler 公司自己的職缺
// @Summary     List company internships
// @Tags        companies
// @Produce     json
// @Param       id path int true "公司 ID"
// @Success     200 {array}  model.Internship
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /companies/{id}/internships [get]
func ListInternshipsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return handler.Respond(c, err)
		}
		list, err := listCompanyInternships(c.Request().Context(), db, id)
		if err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusOK, list)
	}
}

// ListApplicantsHandler 某職缺的應徵者
// @Summary     List applicants of internship
// @Tags        companies
// @Produce     json
// @Param       id path int true "職缺 ID"
// @Success     200 {array}  model.Applicant
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /companies/internship/{id}/applications [get]
func ListApplicantsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return handler.Respond(c, err)
		}
		list, err := listInternshipApplications(c.Request().Context(), db, id)
		if err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusOK, list)
	}
}

// SetStatusHandler 更新應徵狀態
// @Summary     Update application status
// @Description 狀態只能往後推進：Pending → Shortlisted → Accepted 或 Rejected
// @Tags        companies
// @Accept      json
// @Produce     json
// @Param       id   path int               true "應徵 ID"
// @Param       body body api.StatusRequest true "新狀態"
// @Success     200 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /companies/application/{id}/status [put]
func SetStatusHandler(db database.DB, rc cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return handler.Respond(c, err)
		}
		var req api.StatusRequest
		if err := handler.BindBody(c, &req); err != nil {
			return handler.Respond(c, err)
		}
		if err := setApplicationStatus(c.Request().Context(), db, rc, id, req.Status); err != nil {
			return handler.Respond(c, err)
		}
		return handler.OK(c, "Application status updated successfully")
	}
}
