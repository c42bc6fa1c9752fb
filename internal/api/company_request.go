package api

// swagger:model api.CompanySignupRequest
type CompanySignupRequest struct {
	Name     string `json:"name" form:"name" validate:"required" example:"Acme"`
	Email    string `json:"email" form:"email" validate:"required,email" example:"hr@acme.io"`
	Password string `json:"password" form:"password" validate:"required" example:"Secret123!"`
}

func (CompanySignupRequest) RequiredMessage() string { return "All fields are required." }

// CompanyUpdateRequest 整份覆寫；Email 留空代表不變更
// swagger:model api.CompanyUpdateRequest
type CompanyUpdateRequest struct {
	Name        string `json:"name" form:"name" validate:"required" example:"Acme"`
	Email       string `json:"email" form:"email" validate:"omitempty,email" example:"hr@acme.io"`
	Description string `json:"description" form:"description"`
	Logo        string `json:"logo" form:"logo"`
	Website     string `json:"website" form:"website" example:"https://acme.io"`
	Location    string `json:"location" form:"location" example:"Boston"`
}

func (CompanyUpdateRequest) RequiredMessage() string { return "Company name is required." }
