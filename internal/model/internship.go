package model

import "time"

// Internship 職缺。Deadline 以 YYYY-MM-DD 字串表示。
// CompanyName/CompanyLogo 僅在 join 查詢時帶值，CompanyDescription 僅單筆查詢帶值。
type Internship struct {
	ID          int       `db:"id" json:"id"`
	CompanyID   int       `db:"company_id" json:"company_id"`
	Title       string    `db:"title" json:"title"`
	Location    string    `db:"location" json:"location"`
	Type        string    `db:"type" json:"type"`
	Salary      *int      `db:"salary" json:"salary"`
	Duration    *string   `db:"duration" json:"duration"`
	Deadline    *string   `db:"deadline" json:"deadline"`
	Skills      string    `db:"skills" json:"skills"`
	Description *string   `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`

	CompanyName        string  `db:"company_name" json:"company_name,omitempty"`
	CompanyLogo        *string `db:"logo" json:"logo,omitempty"`
	CompanyDescription *string `db:"company_description" json:"company_description,omitempty"`
}

// InternshipFilter 瀏覽職缺的篩選條件，零值代表不限制
type InternshipFilter struct {
	Location  string
	Type      string
	SalaryMin *int
	SalaryMax *int
	Skills    string
}
