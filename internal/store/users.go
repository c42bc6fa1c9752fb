package store

import (
	"context"
	"fmt"

	"github.com/fatima3985/InternLinkt/internal/database"
	"github.com/fatima3985/InternLinkt/internal/model"
)

// InsertUser 新增帳號；email 已存在時不寫入並回傳包裝後的 pgx.ErrNoRows
func InsertUser(ctx context.Context, db database.Querier, u *model.User) (int, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, role)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (email) DO NOTHING
		 RETURNING id, created_at`,
		u.Email,
		u.PasswordHash,
		u.Role,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		return 0, fmt.Errorf("InsertUser: %w", err)
	}
	return u.ID, nil
}

func GetUserByEmail(ctx context.Context, db database.Querier, email string, role model.Role) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, email, password_hash, role, created_at
		 FROM users WHERE email = $1 AND role = $2`,
		email,
		role,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

func UpdateUserEmail(ctx context.Context, db database.Querier, userID int, email string) error {
	_, err := db.Exec(ctx,
		`UPDATE users SET email = $1 WHERE id = $2`,
		email,
		userID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUserEmail: %w", err)
	}
	return nil
}
