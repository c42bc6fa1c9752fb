package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatima3985/InternLinkt/internal/database"
	"github.com/fatima3985/InternLinkt/internal/model"
)

const internshipColumns = `i.id, i.company_id, i.title, i.location, i.type, i.salary, i.duration,
	        to_char(i.deadline, 'YYYY-MM-DD'), i.skills, i.description, i.created_at`

func internshipDest(in *model.Internship) []any {
	return []any{
		&in.ID,
		&in.CompanyID,
		&in.Title,
		&in.Location,
		&in.Type,
		&in.Salary,
		&in.Duration,
		&in.Deadline,
		&in.Skills,
		&in.Description,
		&in.CreatedAt,
	}
}

func InsertInternship(ctx context.Context, db database.Querier, in *model.Internship) (int, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO internships (company_id, title, location, type, salary, duration, deadline, skills, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7::date, $8, $9)
		 RETURNING id, created_at`,
		in.CompanyID,
		in.Title,
		in.Location,
		in.Type,
		in.Salary,
		in.Duration,
		in.Deadline,
		in.Skills,
		in.Description,
	)
	if err := row.Scan(&in.ID, &in.CreatedAt); err != nil {
		return 0, fmt.Errorf("InsertInternship: %w", err)
	}
	return in.ID, nil
}

// ListInternships 依篩選條件列出職缺（含公司名稱與 logo），新到舊排序
func ListInternships(ctx context.Context, db database.Querier, f model.InternshipFilter) ([]model.Internship, error) {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(`SELECT ` + internshipColumns + `, c.company_name, c.logo
	 FROM internships i JOIN companies c ON c.id = i.company_id
	 WHERE TRUE`)
	where := func(cond string, v any) {
		args = append(args, v)
		fmt.Fprintf(&sb, " AND "+cond, len(args))
	}
	if f.Location != "" {
		where("i.location ILIKE $%d", "%"+escapeLike(f.Location)+"%")
	}
	if f.Type != "" {
		where("i.type = $%d", f.Type)
	}
	if f.SalaryMin != nil {
		where("i.salary >= $%d", *f.SalaryMin)
	}
	if f.SalaryMax != nil {
		where("i.salary <= $%d", *f.SalaryMax)
	}
	if f.Skills != "" {
		where("i.skills ILIKE $%d", "%"+escapeLike(f.Skills)+"%")
	}
	sb.WriteString(" ORDER BY i.created_at DESC, i.id DESC")

	rows, err := db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("ListInternships: %w", err)
	}
	defer rows.Close()

	list := []model.Internship{}
	for rows.Next() {
		var in model.Internship
		if err := rows.Scan(append(internshipDest(&in), &in.CompanyName, &in.CompanyLogo)...); err != nil {
			return nil, fmt.Errorf("ListInternships: %w", err)
		}
		list = append(list, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListInternships: %w", err)
	}
	return list, nil
}

func ListCompanyInternships(ctx context.Context, db database.Querier, companyID int) ([]model.Internship, error) {
	rows, err := db.Query(ctx,
		`SELECT `+internshipColumns+`
		 FROM internships i
		 WHERE i.company_id = $1
		 ORDER BY i.created_at DESC, i.id DESC`,
		companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListCompanyInternships: %w", err)
	}
	defer rows.Close()

	list := []model.Internship{}
	for rows.Next() {
		var in model.Internship
		if err := rows.Scan(internshipDest(&in)...); err != nil {
			return nil, fmt.Errorf("ListCompanyInternships: %w", err)
		}
		list = append(list, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCompanyInternships: %w", err)
	}
	return list, nil
}

// CompanyInternshipIDs 公司名下所有職缺 id
func CompanyInternshipIDs(ctx context.Context, db database.Querier, companyID int) ([]int, error) {
	rows, err := db.Query(ctx, `SELECT id FROM internships WHERE company_id = $1`, companyID)
	if err != nil {
		return nil, fmt.Errorf("CompanyInternshipIDs: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("CompanyInternshipIDs: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("CompanyInternshipIDs: %w", err)
	}
	return ids, nil
}

func GetInternship(ctx context.Context, db database.Querier, id int) (*model.Internship, error) {
	in := &model.Internship{}
	row := db.QueryRow(ctx,
		`SELECT `+internshipColumns+`, c.company_name, c.logo, c.description
		 FROM internships i JOIN companies c ON c.id = i.company_id
		 WHERE i.id = $1`,
		id,
	)
	if err := row.Scan(append(internshipDest(in), &in.CompanyName, &in.CompanyLogo, &in.CompanyDescription)...); err != nil {
		return nil, fmt.Errorf("GetInternship: %w", err)
	}
	return in, nil
}

// UpdateInternship 覆寫所有可變欄位，回傳受影響列數
func UpdateInternship(ctx context.Context, db database.Querier, in *model.Internship) (int64, error) {
	tag, err := db.Exec(ctx,
		`UPDATE internships
		 SET title = $1, location = $2, type = $3, salary = $4, duration = $5,
		     deadline = $6::date, skills = $7, description = $8
		 WHERE id = $9`,
		in.Title,
		in.Location,
		in.Type,
		in.Salary,
		in.Duration,
		in.Deadline,
		in.Skills,
		in.Description,
		in.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("UpdateInternship: %w", err)
	}
	return tag.RowsAffected(), nil
}

func DeleteInternship(ctx context.Context, db database.Querier, id int) (int64, error) {
	tag, err := db.Exec(ctx, `DELETE FROM internships WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("DeleteInternship: %w", err)
	}
	return tag.RowsAffected(), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike 讓使用者輸入的 % 與 _ 以字面比對
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
