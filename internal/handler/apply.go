package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/fatima3985/InternLinkt/internal/api"
	"github.com/fatima3985/InternLinkt/internal/logger"
	"github.com/fatima3985/InternLinkt/internal/storage"

	"github.com/labstack/echo/v4"
)

// ApplyFunc 建立應徵紀錄，resume 為空代表沒有履歷
type ApplyFunc func(ctx context.Context, req api.ApplyRequest, resume string) (int, error)

// SubmitApplication 儲存可選的履歷檔後建立應徵；建立失敗時刪除剛存的檔案
func SubmitApplication(c echo.Context, blobs storage.Store, req api.ApplyRequest, apply ApplyFunc) error {
	if err := c.Validate(&req); err != nil {
		return Respond(c, err)
	}

	var resume string
	fh, err := c.FormFile("resume")
	switch {
	case err == nil:
		if resume, err = blobs.Save(fh); err != nil {
			return Respond(c, err)
		}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		// 履歷為選填
	default:
		return Respond(c, err)
	}

	id, err := apply(c.Request().Context(), req, resume)
	if err != nil {
		if resume != "" {
			if rmErr := blobs.Remove(resume); rmErr != nil {
				logger.Warn().Err(rmErr).Str("resume", resume).Msg("刪除未使用的履歷失敗")
			}
		}
		return Respond(c, err)
	}
	return Created(c, "Application submitted successfully", id)
}
