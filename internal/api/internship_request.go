package api

// InternshipRequest 建立與更新職缺共用；更新時整份覆寫
// swagger:model api.InternshipRequest
type InternshipRequest struct {
	Title       string `json:"title" form:"title" validate:"required" example:"Backend Intern"`
	Location    string `json:"location" form:"location" validate:"required" example:"Greater Boston Area"`
	Type        string `json:"type" form:"type" validate:"required" example:"Remote"`
	Salary      *int   `json:"salary" form:"salary" validate:"omitempty,gte=0" example:"2000"`
	Duration    string `json:"duration" form:"duration" example:"3 months"`
	Deadline    string `json:"deadline" form:"deadline" validate:"omitempty,datetime=2006-01-02" example:"2025-06-30"`
	Skills      string `json:"skills" form:"skills" validate:"required" example:"Go, PostgreSQL"`
	Description string `json:"description" form:"description"`
}

func (InternshipRequest) RequiredMessage() string {
	return "Title, location, type, and skills are required."
}

// CreateInternshipRequest 用於 POST /internships，公司 id 放在 body
// swagger:model api.CreateInternshipRequest
type CreateInternshipRequest struct {
	CompanyID int `json:"company_id" form:"company_id" validate:"required,gt=0" example:"1"`
	InternshipRequest
}

func (CreateInternshipRequest) RequiredMessage() string { return "Missing required fields." }

// InternshipQuery 瀏覽職缺的 query string；薪資範圍由 service 解析
type InternshipQuery struct {
	Location  string `query:"location"`
	Type      string `query:"type"`
	SalaryMin string `query:"salaryMin"`
	SalaryMax string `query:"salaryMax"`
	Skills    string `query:"skills"`
}
