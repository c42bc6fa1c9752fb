package internships

import (
	"context"
	"net/http"

	"github.com/fatima3985/InternLinkt/internal/api"
	"github.com/fatima3985/InternLinkt/internal/cache"
	"github.com/fatima3985/InternLinkt/internal/database"
	"github.com/fatima3985/InternLinkt/internal/handler"
	"github.com/fatima3985/InternLinkt/internal/logger"
	"github.com/fatima3985/InternLinkt/internal/service"
	"github.com/fatima3985/InternLinkt/internal/storage"
	"github.com/fatima3985/InternLinkt/internal/worker"

	"github.com/labstack/echo/v4"
)

var (
	createInternship = service.CreateInternship
	listInternships  = service.ListInternships
	getInternship    = service.GetInternship
	updateInternship = service.UpdateInternship
	deleteInternship = service.DeleteInternship
	apply            = service.Apply
)

// CreateHandler 建立職缺，company_id 放在 body
// @Summary     Create internship
// @Tags        internships
// @Accept      json
// @Produce     json
// @Param       body body api.CreateInternshipRequest true "職缺內容"
// @Success     201 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /internships [post]
func CreateHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateInternshipRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.Respond(c, err)
		}
		id, err := createInternship(c.Request().Context(), db, req.CompanyID, req.InternshipRequest)
		if err != nil {
			return handler.Respond(c, err)
		}
		return handler.Created(c, "Internship created successfully", id)
	}
}

// ListHandler 搜尋職缺
// @Summary     List internships
// @Description 所有條件皆可省略；location 與 skills 為不分大小寫的部分比對
// @Tags        internships
// @Produce     json
// @Param       location  query string false "地點"
// @Param       type      query string false "類型"
// @Param       salaryMin query int    false "最低薪資"
// @Param       salaryMax query int    false "最高薪資"
// @Param       skills    query string false "技能"
// @Success     200 {array}  model.Internship
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /internships [get]
func ListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var q api.InternshipQuery
		if err := handler.BindBody(c, &q); err != nil {
			return handler.Respond(c, err)
		}
		list, err := listInternships(c.Request().Context(), db, q)
		if err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusOK, list)
	}
}

// GetHandler 取得單一職缺（含公司資訊）
// @Summary     Get internship
// @Tags        internships
// @Produce     json
// @Param       id path int true "職缺 ID"
// @Success     200 {object} model.Internship
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /internships/{id} [get]
func GetHandler(db database.DB, rc cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return handler.Respond(c, err)
		}
		in, err := getInternship(c.Request().Context(), db, rc, id)
		if err != nil {
			return handler.Respond(c, err)
		}
		return c.JSON(http.StatusOK, in)
	}
}

// UpdateHandler 覆寫職缺
// @Summary     Update internship
// @Tags        internships
// @Accept      json
// @Produce     json
// @Param       id   path int                   true "職缺 ID"
// @Param       body body api.InternshipRequest true "職缺內容"
// @Success     200 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /internships/{id} [put]
func UpdateHandler(db database.DB, rc cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return handler.Respond(c, err)
		}
		var req api.InternshipRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.Respond(c, err)
		}
		if err := updateInternship(c.Request().Context(), db, rc, id, req); err != nil {
			return handler.Respond(c, err)
		}
		return handler.OK(c, "Internship updated successfully")
	}
}

// DeleteHandler 刪除職缺及其應徵紀錄，履歷檔於背景移除
// @Summary     Delete internship
// @Tags        internships
// @Produce     json
// @Param       id path int true "職缺 ID"
// @Success     200 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /internships/{id} [delete]
func DeleteHandler(db database.DB, rc cache.Cache, wp worker.Pool, blobs storage.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return handler.Respond(c, err)
		}
		resumes, err := deleteInternship(c.Request().Context(), db, rc, id)
		if err != nil {
			return handler.Respond(c, err)
		}
		if len(resumes) > 0 {
			wp.Submit(func() {
				for _, ref := range resumes {
					if err := blobs.Remove(ref); err != nil {
						logger.Warn().Err(err).Str("resume", ref).Int("internship_id", id).Msg("刪除履歷檔失敗")
					}
				}
			})
		}
		return handler.OK(c, "Internship deleted successfully")
	}
}

// ApplyHandler 應徵路徑上的職缺
// @Summary     Apply to internship
// @Tags        internships
// @Accept      multipart/form-data
// @Produce     json
// @Param       id           path     int    true  "職缺 ID"
// @Param       student_id   formData int    true  "學生 ID"
// @Param       cover_letter formData string false "求職信"
// @Param       resume       formData file   false "履歷（pdf、doc、docx）"
// @Success     201 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /internships/{id}/apply [post]
func ApplyHandler(db database.DB, blobs storage.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return handler.Respond(c, err)
		}
		var req api.ApplyRequest
		if err := handler.BindBody(c, &req); err != nil {
			return handler.Respond(c, err)
		}
		req.InternshipID = id
		return handler.SubmitApplication(c, blobs, req, func(ctx context.Context, req api.ApplyRequest, resume string) (int, error) {
			return apply(ctx, db, req, resume)
		})
	}
}
