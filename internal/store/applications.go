package store

import (
	"context"
	"fmt"

	"github.com/fatima3985/InternLinkt/internal/database"
	"github.com/fatima3985/InternLinkt/internal/model"
	"github.com/fatima3985/InternLinkt/internal/status"
)

// InsertApplication 新增應徵；同一學生對同一職缺已有紀錄時不寫入，並回傳包裝後的 pgx.ErrNoRows
func InsertApplication(ctx context.Context, db database.Querier, a *model.Application) (int, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO applications (student_id, internship_id, resume, cover_letter, status)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (student_id, internship_id) DO NOTHING
		 RETURNING id, created_at`,
		a.StudentID,
		a.InternshipID,
		a.Resume,
		a.CoverLetter,
		a.Status,
	)
	if err := row.Scan(&a.ID, &a.CreatedAt); err != nil {
		return 0, fmt.Errorf("InsertApplication: %w", err)
	}
	return a.ID, nil
}

// LockApplicationStatus 以 FOR UPDATE 讀取目前狀態，須在交易內呼叫
func LockApplicationStatus(ctx context.Context, db database.Querier, id int) (status.Status, error) {
	var st status.Status
	if err := db.QueryRow(ctx,
		`SELECT status FROM applications WHERE id = $1 FOR UPDATE`, id,
	).Scan(&st); err != nil {
		return "", fmt.Errorf("LockApplicationStatus: %w", err)
	}
	return st, nil
}

func UpdateApplicationStatus(ctx context.Context, db database.Querier, id int, st status.Status) error {
	_, err := db.Exec(ctx,
		`UPDATE applications SET status = $1 WHERE id = $2`,
		st,
		id,
	)
	if err != nil {
		return fmt.Errorf("UpdateApplicationStatus: %w", err)
	}
	return nil
}

// DeleteInternshipApplications 刪除職缺下所有應徵，回傳非空的履歷參照
func DeleteInternshipApplications(ctx context.Context, db database.Querier, internshipID int) ([]string, error) {
	rows, err := db.Query(ctx,
		`DELETE FROM applications WHERE internship_id = $1 RETURNING resume`,
		internshipID,
	)
	if err != nil {
		return nil, fmt.Errorf("DeleteInternshipApplications: %w", err)
	}
	defer rows.Close()

	var resumes []string
	for rows.Next() {
		var resume *string
		if err := rows.Scan(&resume); err != nil {
			return nil, fmt.Errorf("DeleteInternshipApplications: %w", err)
		}
		if resume != nil && *resume != "" {
			resumes = append(resumes, *resume)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("DeleteInternshipApplications: %w", err)
	}
	return resumes, nil
}

const applicationColumns = `a.id, a.student_id, a.internship_id, a.resume, a.cover_letter, a.status, a.created_at`

func applicationDest(a *model.Application) []any {
	return []any{
		&a.ID,
		&a.StudentID,
		&a.InternshipID,
		&a.Resume,
		&a.CoverLetter,
		&a.Status,
		&a.CreatedAt,
	}
}

func ListInternshipApplications(ctx context.Context, db database.Querier, internshipID int) ([]model.Applicant, error) {
	rows, err := db.Query(ctx,
		`SELECT `+applicationColumns+`,
		        s.name, s.university, s.major, s.graduation_year, s.skills, s.experience
		 FROM applications a JOIN students s ON s.id = a.student_id
		 WHERE a.internship_id = $1
		 ORDER BY a.created_at, a.id`,
		internshipID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListInternshipApplications: %w", err)
	}
	defer rows.Close()

	list := []model.Applicant{}
	for rows.Next() {
		var ap model.Applicant
		dest := append(applicationDest(&ap.Application),
			&ap.Name, &ap.University, &ap.Major, &ap.GraduationYear, &ap.Skills, &ap.Experience)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("ListInternshipApplications: %w", err)
		}
		list = append(list, ap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListInternshipApplications: %w", err)
	}
	return list, nil
}

func ListStudentApplications(ctx context.Context, db database.Querier, studentID int) ([]model.StudentApplication, error) {
	rows, err := db.Query(ctx,
		`SELECT `+applicationColumns+`,
		        i.title, i.location, i.type, i.salary, i.duration, c.company_name
		 FROM applications a
		 JOIN internships i ON i.id = a.internship_id
		 JOIN companies c ON c.id = i.company_id
		 WHERE a.student_id = $1
		 ORDER BY a.created_at DESC, a.id DESC`,
		studentID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListStudentApplications: %w", err)
	}
	defer rows.Close()

	list := []model.StudentApplication{}
	for rows.Next() {
		var sa model.StudentApplication
		dest := append(applicationDest(&sa.Application),
			&sa.Title, &sa.Location, &sa.Type, &sa.Salary, &sa.Duration, &sa.CompanyName)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("ListStudentApplications: %w", err)
		}
		list = append(list, sa)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListStudentApplications: %w", err)
	}
	return list, nil
}
