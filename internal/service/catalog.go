package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/fatima3985/InternLinkt/internal/api"
	"github.com/fatima3985/InternLinkt/internal/apperrors"
	"github.com/fatima3985/InternLinkt/internal/cache"
	"github.com/fatima3985/InternLinkt/internal/database"
	"github.com/fatima3985/InternLinkt/internal/logger"
	"github.com/fatima3985/InternLinkt/internal/model"
	"github.com/fatima3985/InternLinkt/internal/store"

	"github.com/jackc/pgx/v5"
)

const msgInternshipNotFound = "Internship not found."

// InternshipCacheTTL 單筆職缺快取時間，<= 0 代表不使用快取
var InternshipCacheTTL = 5 * time.Minute

// invalidationHold 失效後 tombstone 保留時間，需長於一次資料庫讀取
const invalidationHold = 10 * time.Second

func internshipKey(id int) string {
	return "internship:" + strconv.Itoa(id)
}

func internshipFromRequest(req api.InternshipRequest) *model.Internship {
	return &model.Internship{
		Title:       req.Title,
		Location:    req.Location,
		Type:        req.Type,
		Salary:      req.Salary,
		Duration:    optional(req.Duration),
		Deadline:    optional(req.Deadline),
		Skills:      req.Skills,
		Description: optional(req.Description),
	}
}

// CreateInternship 新增職缺；公司不存在時回傳 NotFound
func CreateInternship(ctx context.Context, db database.DB, companyID int, req api.InternshipRequest) (int, error) {
	in := internshipFromRequest(req)
	in.CompanyID = companyID
	id, err := store.InsertInternship(ctx, db, in)
	if database.IsForeignKeyViolation(err, "") {
		return 0, apperrors.NotFound(msgCompanyNotFound)
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListInternships 篩選條件皆可省略且可任意組合
func ListInternships(ctx context.Context, db database.DB, q api.InternshipQuery) ([]model.Internship, error) {
	f := model.InternshipFilter{
		Location: q.Location,
		Type:     q.Type,
		Skills:   q.Skills,
	}
	var err error
	if f.SalaryMin, err = parseSalaryBound("salaryMin", q.SalaryMin); err != nil {
		return nil, err
	}
	if f.SalaryMax, err = parseSalaryBound("salaryMax", q.SalaryMax); err != nil {
		return nil, err
	}
	return store.ListInternships(ctx, db, f)
}

func parseSalaryBound(name, raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperrors.Validation(name + " must be an integer.")
	}
	return &n, nil
}

func ListCompanyInternships(ctx context.Context, db database.DB, companyID int) ([]model.Internship, error) {
	return store.ListCompanyInternships(ctx, db, companyID)
}

// GetInternship 先讀 Redis，未命中再查資料庫並回填；快取錯誤只記錄不回傳
func GetInternship(ctx context.Context, db database.DB, c cache.Cache, id int) (*model.Internship, error) {
	key := internshipKey(id)
	if InternshipCacheTTL > 0 {
		var cached model.Internship
		hit, err := cache.GetJSON(ctx, c, key, &cached)
		if err != nil {
			logger.Warn().Err(err).Str("key", key).Msg("讀取職缺快取失敗")
		}
		if hit {
			return &cached, nil
		}
	}

	in, err := store.GetInternship(ctx, db, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound(msgInternshipNotFound)
	}
	if err != nil {
		return nil, err
	}

	if InternshipCacheTTL > 0 {
		if _, err := cache.FillJSON(ctx, c, key, in, InternshipCacheTTL); err != nil {
			logger.Warn().Err(err).Str("key", key).Msg("寫入職缺快取失敗")
		}
	}
	return in, nil
}

// UpdateInternship 整份覆寫職缺並清除快取
func UpdateInternship(ctx context.Context, db database.DB, c cache.Cache, id int, req api.InternshipRequest) error {
	in := internshipFromRequest(req)
	in.ID = id
	n, err := store.UpdateInternship(ctx, db, in)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.NotFound(msgInternshipNotFound)
	}
	invalidateInternships(ctx, c, id)
	return nil
}

// DeleteInternship 在同一交易內先刪應徵再刪職缺，回傳被刪應徵的履歷參照供後續清理
func DeleteInternship(ctx context.Context, db database.DB, c cache.Cache, id int) ([]string, error) {
	var resumes []string
	err := database.WithTx(ctx, db, func(tx pgx.Tx) error {
		var err error
		resumes, err = store.DeleteInternshipApplications(ctx, tx, id)
		if err != nil {
			return err
		}
		n, err := store.DeleteInternship(ctx, tx, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return apperrors.NotFound(msgInternshipNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	invalidateInternships(ctx, c, id)
	return resumes, nil
}

// invalidateInternships 讓職缺快取失效；快取內含公司欄位，公司異動時也需呼叫
func invalidateInternships(ctx context.Context, c cache.Cache, ids ...int) {
	if InternshipCacheTTL <= 0 || len(ids) == 0 {
		return
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = internshipKey(id)
	}
	if err := cache.Invalidate(ctx, c, invalidationHold, keys...); err != nil {
		logger.Warn().Err(err).Strs("keys", keys).Msg("清除職缺快取失敗")
	}
}
