package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatima3985/InternLinkt/internal/api"
	"github.com/fatima3985/InternLinkt/internal/apperrors"
	"github.com/fatima3985/InternLinkt/internal/cache"
	"github.com/fatima3985/InternLinkt/internal/database"
	"github.com/fatima3985/InternLinkt/internal/model"
	"github.com/fatima3985/InternLinkt/internal/store"

	"github.com/jackc/pgx/v5"
)

const (
	emailConstraint = "users_email_key"

	msgEmailTaken         = "Email already registered."
	msgInvalidCredentials = "Invalid email or password."
	msgStudentNotFound    = "Student not found."
	msgCompanyNotFound    = "Company not found."
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// optional 將空字串轉為 NULL
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// RegisterStudent 在同一交易內建立帳號與學生檔案，回傳學生 id
func RegisterStudent(ctx context.Context, db database.DB, req api.StudentSignupRequest) (int, error) {
	hash, err := HashPassword(req.Password)
	if err != nil {
		return 0, fmt.Errorf("RegisterStudent: %w", err)
	}

	var id int
	err = database.WithTx(ctx, db, func(tx pgx.Tx) error {
		userID, err := insertUser(ctx, tx, req.Email, hash, model.RoleStudent)
		if err != nil {
			return err
		}
		id, err = store.InsertStudent(ctx, tx, &model.Student{
			UserID:         userID,
			Name:           req.Name,
			University:     req.University,
			Major:          req.Major,
			GraduationYear: req.GraduationYear,
		})
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// RegisterCompany 在同一交易內建立帳號與公司檔案，回傳公司 id
func RegisterCompany(ctx context.Context, db database.DB, req api.CompanySignupRequest) (int, error) {
	hash, err := HashPassword(req.Password)
	if err != nil {
		return 0, fmt.Errorf("RegisterCompany: %w", err)
	}

	var id int
	err = database.WithTx(ctx, db, func(tx pgx.Tx) error {
		userID, err := insertUser(ctx, tx, req.Email, hash, model.RoleCompany)
		if err != nil {
			return err
		}
		id, err = store.InsertCompany(ctx, tx, &model.Company{
			UserID:      userID,
			CompanyName: req.Name,
		})
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// insertUser email 已被任何角色使用時回傳 Conflict
func insertUser(ctx context.Context, q database.Querier, email, hash string, role model.Role) (int, error) {
	id, err := store.InsertUser(ctx, q, &model.User{
		Email:        normalizeEmail(email),
		PasswordHash: hash,
		Role:         role,
	})
	if errors.Is(err, pgx.ErrNoRows) || database.IsUniqueViolation(err, emailConstraint) {
		return 0, apperrors.Conflict(msgEmailTaken)
	}
	return id, err
}

// AuthenticateStudent 驗證帳密並回傳學生檔案
func AuthenticateStudent(ctx context.Context, db database.DB, email, password string) (*model.Student, error) {
	userID, err := checkCredentials(ctx, db, email, password, model.RoleStudent)
	if err != nil {
		return nil, err
	}
	s, err := store.GetStudentByUserID(ctx, db, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.New(apperrors.ErrProfileMissing, "Student profile not found.")
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// AuthenticateCompany 驗證帳密並回傳公司檔案
func AuthenticateCompany(ctx context.Context, db database.DB, email, password string) (*model.Company, error) {
	userID, err := checkCredentials(ctx, db, email, password, model.RoleCompany)
	if err != nil {
		return nil, err
	}
	c, err := store.GetCompanyByUserID(ctx, db, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.New(apperrors.ErrProfileMissing, "Company profile not found.")
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// checkCredentials 帳號不存在與密碼錯誤回傳相同錯誤
func checkCredentials(ctx context.Context, db database.Querier, email, password string, role model.Role) (int, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return 0, apperrors.Validation("Email and password required.")
	}
	u, err := store.GetUserByEmail(ctx, db, email, role)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, apperrors.New(apperrors.ErrInvalidCredentials, msgInvalidCredentials)
	}
	if err != nil {
		return 0, err
	}
	if err := ComparePassword(u.PasswordHash, password); err != nil {
		return 0, apperrors.New(apperrors.ErrInvalidCredentials, msgInvalidCredentials)
	}
	return u.ID, nil
}

func GetStudent(ctx context.Context, db database.DB, id int) (*model.Student, error) {
	s, err := store.GetStudent(ctx, db, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound(msgStudentNotFound)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func GetCompany(ctx context.Context, db database.DB, id int) (*model.Company, error) {
	c, err := store.GetCompany(ctx, db, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound(msgCompanyNotFound)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateStudent 整份覆寫學生檔案；Email 非空時一併更新帳號
func UpdateStudent(ctx context.Context, db database.DB, id int, req api.StudentUpdateRequest) error {
	return database.WithTx(ctx, db, func(tx pgx.Tx) error {
		userID, err := store.LockStudent(ctx, tx, id)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NotFound(msgStudentNotFound)
		}
		if err != nil {
			return err
		}
		if err := updateEmail(ctx, tx, userID, req.Email); err != nil {
			return err
		}
		return store.UpdateStudent(ctx, tx, &model.Student{
			ID:             id,
			Name:           req.Name,
			University:     req.University,
			Major:          req.Major,
			GraduationYear: req.GraduationYear,
			Bio:            optional(req.Bio),
			Skills:         optional(req.Skills),
			Experience:     optional(req.Experience),
			Phone:          optional(req.Phone),
			Location:       optional(req.Location),
		})
	})
}

// UpdateCompany 整份覆寫公司檔案；Email 非空時一併更新帳號。
// 提交後讓該公司所有職缺的快取失效
func UpdateCompany(ctx context.Context, db database.DB, c cache.Cache, id int, req api.CompanyUpdateRequest) error {
	var internshipIDs []int
	err := database.WithTx(ctx, db, func(tx pgx.Tx) error {
		userID, err := store.LockCompany(ctx, tx, id)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NotFound(msgCompanyNotFound)
		}
		if err != nil {
			return err
		}
		if err := updateEmail(ctx, tx, userID, req.Email); err != nil {
			return err
		}
		if err := store.UpdateCompany(ctx, tx, &model.Company{
			ID:          id,
			CompanyName: req.Name,
			Description: req.Description,
			Logo:        optional(req.Logo),
			Website:     optional(req.Website),
			Location:    optional(req.Location),
		}); err != nil {
			return err
		}
		internshipIDs, err = store.CompanyInternshipIDs(ctx, tx, id)
		return err
	})
	if err != nil {
		return err
	}
	invalidateInternships(ctx, c, internshipIDs...)
	return nil
}

func updateEmail(ctx context.Context, q database.Querier, userID int, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return nil
	}
	err := store.UpdateUserEmail(ctx, q, userID, email)
	if database.IsUniqueViolation(err, emailConstraint) {
		return apperrors.Conflict(msgEmailTaken)
	}
	return err
}
