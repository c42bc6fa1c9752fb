package api

// swagger:model api.StudentSignupRequest
type StudentSignupRequest struct {
	Name           string `json:"name" form:"name" validate:"required" example:"Alice"`
	Email          string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Password       string `json:"password" form:"password" validate:"required" example:"Secret123!"`
	University     string `json:"university" form:"university" validate:"required" example:"MIT"`
	Major          string `json:"major" form:"major" validate:"required" example:"Computer Science"`
	GraduationYear int    `json:"graduation_year" form:"graduation_year" validate:"required,gt=0" example:"2026"`
}

func (StudentSignupRequest) RequiredMessage() string { return "All fields are required." }

// StudentUpdateRequest 整份覆寫；未提供的選填欄位會被清空。
// Email 留空代表不變更。
// swagger:model api.StudentUpdateRequest
type StudentUpdateRequest struct {
	Name           string `json:"name" form:"name" validate:"required" example:"Alice"`
	Email          string `json:"email" form:"email" validate:"omitempty,email" example:"alice@example.com"`
	University     string `json:"university" form:"university" validate:"required" example:"MIT"`
	Major          string `json:"major" form:"major" validate:"required" example:"Computer Science"`
	GraduationYear int    `json:"graduation_year" form:"graduation_year" validate:"required,gt=0" example:"2026"`
	Bio            string `json:"bio" form:"bio"`
	Skills         string `json:"skills" form:"skills" example:"Go, SQL"`
	Experience     string `json:"experience" form:"experience"`
	Phone          string `json:"phone" form:"phone"`
	Location       string `json:"location" form:"location" example:"Boston"`
}

func (StudentUpdateRequest) RequiredMessage() string {
	return "Name, university, major and graduation year are required."
}
