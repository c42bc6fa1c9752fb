package store

import (
	"context"
	"fmt"

	"github.com/fatima3985/InternLinkt/internal/database"
	"github.com/fatima3985/InternLinkt/internal/model"
)

const selectStudent = `SELECT s.id, s.user_id, s.name, u.email, s.university, s.major,
	        s.graduation_year, s.bio, s.skills, s.experience, s.phone, s.location, s.profile_photo
	 FROM students s JOIN users u ON u.id = s.user_id`

func scanStudent(row interface{ Scan(...any) error }) (*model.Student, error) {
	s := &model.Student{}
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.Name,
		&s.Email,
		&s.University,
		&s.Major,
		&s.GraduationYear,
		&s.Bio,
		&s.Skills,
		&s.Experience,
		&s.Phone,
		&s.Location,
		&s.ProfilePhoto,
	)
	return s, err
}

func InsertStudent(ctx context.Context, db database.Querier, s *model.Student) (int, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO students (user_id, name, university, major, graduation_year)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		s.UserID,
		s.Name,
		s.University,
		s.Major,
		s.GraduationYear,
	)
	if err := row.Scan(&s.ID); err != nil {
		return 0, fmt.Errorf("InsertStudent: %w", err)
	}
	return s.ID, nil
}

func GetStudent(ctx context.Context, db database.Querier, id int) (*model.Student, error) {
	s, err := scanStudent(db.QueryRow(ctx, selectStudent+` WHERE s.id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("GetStudent: %w", err)
	}
	return s, nil
}

func GetStudentByUserID(ctx context.Context, db database.Querier, userID int) (*model.Student, error) {
	s, err := scanStudent(db.QueryRow(ctx, selectStudent+` WHERE s.user_id = $1`, userID))
	if err != nil {
		return nil, fmt.Errorf("GetStudentByUserID: %w", err)
	}
	return s, nil
}

// LockStudent 鎖定學生列並回傳其 user_id，須在交易內呼叫
func LockStudent(ctx context.Context, db database.Querier, id int) (int, error) {
	var userID int
	if err := db.QueryRow(ctx,
		`SELECT user_id FROM students WHERE id = $1 FOR UPDATE`, id,
	).Scan(&userID); err != nil {
		return 0, fmt.Errorf("LockStudent: %w", err)
	}
	return userID, nil
}

// UpdateStudent 覆寫所有可變欄位
func UpdateStudent(ctx context.Context, db database.Querier, s *model.Student) error {
	_, err := db.Exec(ctx,
		`UPDATE students
		 SET name = $1, university = $2, major = $3, graduation_year = $4,
		     bio = $5, skills = $6, experience = $7, phone = $8, location = $9
		 WHERE id = $10`,
		s.Name,
		s.University,
		s.Major,
		s.GraduationYear,
		s.Bio,
		s.Skills,
		s.Experience,
		s.Phone,
		s.Location,
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateStudent: %w", err)
	}
	return nil
}
