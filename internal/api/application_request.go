package api

// ApplyRequest multipart 表單欄位；履歷檔案另以 resume 欄位上傳
// swagger:model api.ApplyRequest
type ApplyRequest struct {
	StudentID    int    `json:"student_id" form:"student_id" validate:"required,gt=0" example:"1"`
	InternshipID int    `json:"internship_id" form:"internship_id" validate:"required,gt=0" example:"1"`
	CoverLetter  string `json:"cover_letter" form:"cover_letter"`
}

func (ApplyRequest) RequiredMessage() string { return "Student ID and Internship ID are required." }

// swagger:model api.StatusRequest
type StatusRequest struct {
	Status string `json:"status" form:"status" example:"Shortlisted"`
}
