package dto

import "github.com/fatima3985/InternLinkt/internal/model"

// swagger:model dto.StudentLoginResponse
type StudentLoginResponse struct {
	Success bool           `json:"success" example:"true"`
	Student *model.Student `json:"student"`
}

// swagger:model dto.CompanyLoginResponse
type CompanyLoginResponse struct {
	Success bool           `json:"success" example:"true"`
	Company *model.Company `json:"company"`
}
