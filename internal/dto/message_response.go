package dto

// MessageResponse 寫入類操作的成功回應；建立時帶 id
// swagger:model dto.MessageResponse
type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Internship created successfully"`
	ID      int    `json:"id,omitempty" example:"1"`
}
