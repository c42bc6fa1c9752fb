package store

import (
	"context"
	"fmt"

	"github.com/fatima3985/InternLinkt/internal/database"
	"github.com/fatima3985/InternLinkt/internal/model"
)

const selectCompany = `SELECT c.id, c.user_id, c.company_name, u.email, c.description, c.logo, c.website, c.location
	 FROM companies c JOIN users u ON u.id = c.user_id`

func scanCompany(row interface{ Scan(...any) error }) (*model.Company, error) {
	c := &model.Company{}
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.CompanyName,
		&c.Email,
		&c.Description,
		&c.Logo,
		&c.Website,
		&c.Location,
	)
	return c, err
}

func InsertCompany(ctx context.Context, db database.Querier, c *model.Company) (int, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO companies (user_id, company_name, description)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		c.UserID,
		c.CompanyName,
		c.Description,
	)
	if err := row.Scan(&c.ID); err != nil {
		return 0, fmt.Errorf("InsertCompany: %w", err)
	}
	return c.ID, nil
}

func GetCompany(ctx context.Context, db database.Querier, id int) (*model.Company, error) {
	c, err := scanCompany(db.QueryRow(ctx, selectCompany+` WHERE c.id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("GetCompany: %w", err)
	}
	return c, nil
}

func GetCompanyByUserID(ctx context.Context, db database.Querier, userID int) (*model.Company, error) {
	c, err := scanCompany(db.QueryRow(ctx, selectCompany+` WHERE c.user_id = $1`, userID))
	if err != nil {
		return nil, fmt.Errorf("GetCompanyByUserID: %w", err)
	}
	return c, nil
}

// LockCompany 鎖定公司列並回傳其 user_id，須在交易內呼叫
func LockCompany(ctx context.Context, db database.Querier, id int) (int, error) {
	var userID int
	if err := db.QueryRow(ctx,
		`SELECT user_id FROM companies WHERE id = $1 FOR UPDATE`, id,
	).Scan(&userID); err != nil {
		return 0, fmt.Errorf("LockCompany: %w", err)
	}
	return userID, nil
}

func UpdateCompany(ctx context.Context, db database.Querier, c *model.Company) error {
	_, err := db.Exec(ctx,
		`UPDATE companies
		 SET company_name = $1, description = $2, logo = $3, website = $4, location = $5
		 WHERE id = $6`,
		c.CompanyName,
		c.Description,
		c.Logo,
		c.Website,
		c.Location,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateCompany: %w", err)
	}
	return nil
}
