package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fatima3985/InternLinkt/internal/apperrors"
	"github.com/fatima3985/InternLinkt/internal/dto"
	"github.com/fatima3985/InternLinkt/internal/logger"

	"github.com/labstack/echo/v4"
)

const msgServerError = "Server error."

// Respond 將服務層錯誤轉為 HTTP 回應；非預期錯誤只記錄在伺服器端
func Respond(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return c.JSON(http.StatusNotFound, dto.HTTPError{Error: err.Error()})
	case apperrors.IsClientError(err):
		return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: err.Error()})
	}
	logger.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("處理請求失敗")
	return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: msgServerError})
}

// OK 回傳 {"success":true,"message":...}
func OK(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: message})
}

// Created 同 OK 但帶新資源 id
func Created(c echo.Context, message string, id int) error {
	return c.JSON(http.StatusCreated, dto.MessageResponse{Success: true, Message: message, ID: id})
}

// Bind 綁定並驗證請求；驗證錯誤已是 apperrors.ErrValidation
func Bind(c echo.Context, req any) error {
	if err := BindBody(c, req); err != nil {
		return err
	}
	return c.Validate(req)
}

// BindBody 只綁定不驗證
func BindBody(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return apperrors.Validation("Invalid request body.")
	}
	return nil
}

// ParamID 解析路徑上的正整數 id
func ParamID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, apperrors.Validation("Invalid " + name + ".")
	}
	return id, nil
}
