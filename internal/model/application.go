package model

import (
	"time"

	"github.com/fatima3985/InternLinkt/internal/status"
)

type Application struct {
	ID           int           `db:"id" json:"id"`
	StudentID    int           `db:"student_id" json:"student_id"`
	InternshipID int           `db:"internship_id" json:"internship_id"`
	Resume       *string       `db:"resume" json:"resume"`
	CoverLetter  string        `db:"cover_letter" json:"cover_letter"`
	Status       status.Status `db:"status" json:"status"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
}

// Applicant 公司端看到的應徵者列表項目
type Applicant struct {
	Application
	Name           string  `db:"name" json:"name"`
	University     string  `db:"university" json:"university"`
	Major          string  `db:"major" json:"major"`
	GraduationYear int     `db:"graduation_year" json:"graduation_year"`
	Skills         *string `db:"skills" json:"skills"`
	Experience     *string `db:"experience" json:"experience"`
}

// StudentApplication 學生端看到的應徵紀錄
type StudentApplication struct {
	Application
	Title       string  `db:"title" json:"title"`
	Location    string  `db:"location" json:"location"`
	Type        string  `db:"type" json:"type"`
	Salary      *int    `db:"salary" json:"salary"`
	Duration    *string `db:"duration" json:"duration"`
	CompanyName string  `db:"company_name" json:"company_name"`
}

// StatusChangedEvent 狀態變更後發佈到 Redis 的事件
type StatusChangedEvent struct {
	ApplicationID int           `json:"application_id"`
	From          status.Status `json:"from"`
	To            status.Status `json:"to"`
	At            time.Time     `json:"at"`
}
