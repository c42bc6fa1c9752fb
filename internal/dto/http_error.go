package dto

// HTTPError 全域錯誤響應模型
// swagger:model dto.HTTPError
type HTTPError struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Server error."`
}
