package api

import (
	"errors"
	"reflect"
	"strings"

	"github.com/fatima3985/InternLinkt/internal/apperrors"

	"github.com/go-playground/validator/v10"
)

// RequiredMessager 由請求型別實作，提供缺少必填欄位時的對外訊息
type RequiredMessager interface {
	RequiredMessage() string
}

// CustomValidator 包裝 go-playground/validator 供 echo 使用，
// 驗證失敗一律回傳 apperrors.ErrValidation
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	// 錯誤訊息使用 json 欄位名稱
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate 實作 echo.Validator
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.Validation(err.Error())
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			if m, ok := i.(RequiredMessager); ok {
				return apperrors.Validation(m.RequiredMessage())
			}
			return apperrors.Validation(fe.Field() + " is required.")
		}
	}
	return apperrors.Validation("Invalid " + verrs[0].Field() + ".")
}
