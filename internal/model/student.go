package model

// Student 學生個人檔案；Email 來自 users 表
type Student struct {
	ID             int     `db:"id" json:"id"`
	UserID         int     `db:"user_id" json:"user_id"`
	Name           string  `db:"name" json:"name"`
	Email          string  `db:"email" json:"email"`
	University     string  `db:"university" json:"university"`
	Major          string  `db:"major" json:"major"`
	GraduationYear int     `db:"graduation_year" json:"graduation_year"`
	Bio            *string `db:"bio" json:"bio"`
	Skills         *string `db:"skills" json:"skills"`
	Experience     *string `db:"experience" json:"experience"`
	Phone          *string `db:"phone" json:"phone"`
	Location       *string `db:"location" json:"location"`
	ProfilePhoto   *string `db:"profile_photo" json:"profile_photo"`
}
