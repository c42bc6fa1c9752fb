package model

// Company 公司檔案；Email 來自 users 表
type Company struct {
	ID          int     `db:"id" json:"id"`
	UserID      int     `db:"user_id" json:"user_id"`
	CompanyName string  `db:"company_name" json:"company_name"`
	Email       string  `db:"email" json:"email"`
	Description string  `db:"description" json:"description"`
	Logo        *string `db:"logo" json:"logo"`
	Website     *string `db:"website" json:"website"`
	Location    *string `db:"location" json:"location"`
}
