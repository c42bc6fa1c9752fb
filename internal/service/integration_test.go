//go:build integration

package service

import (
	"context"
	"os"
	"testing"

	"github.com/fatima3985/InternLinkt/internal/api"
	"github.com/fatima3985/InternLinkt/internal/apperrors"
	"github.com/fatima3985/InternLinkt/internal/cache"
	"github.com/fatima3985/InternLinkt/internal/database"
	"github.com/fatima3985/InternLinkt/internal/status"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// 需要獨立的測試資料庫：測試開始前會清空所有資料表
func TestIntegrationPostgres(t *testing.T) {
	_ = godotenv.Load("../../.env")
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping Postgres integration")
	}

	ctx := context.Background()
	require.NoError(t, database.RollbackAll(dsn))
	require.NoError(t, database.RunMigrations(dsn))

	db, err := database.NewPgxPool(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	t.Cleanup(restoreGlobals)
	fastHash(t)
	events := 0
	c, _ := memCache()
	c.PublishFn = func(context.Context, string, any) *redis.IntCmd {
		events++
		return redis.NewIntResult(1, nil)
	}

	// 註冊後可用相同帳密登入
	studentID, err := RegisterStudent(ctx, db, api.StudentSignupRequest{
		Name: "Ann", Email: "ann@example.com", Password: "pw", University: "MIT", Major: "CS", GraduationYear: 2026,
	})
	require.NoError(t, err)
	s, err := AuthenticateStudent(ctx, db, "Ann@Example.com", "pw")
	require.NoError(t, err)
	require.Equal(t, studentID, s.ID)
	require.Equal(t, "ann@example.com", s.Email)

	// 同一 email 不論角色都不能重複註冊
	_, err = RegisterCompany(ctx, db, api.CompanySignupRequest{Name: "Dup", Email: "ann@example.com", Password: "pw"})
	require.ErrorIs(t, err, apperrors.ErrConflict)

	companyID, err := RegisterCompany(ctx, db, api.CompanySignupRequest{Name: "Acme", Email: "hr@acme.io", Password: "pw"})
	require.NoError(t, err)

	remoteID, err := CreateInternship(ctx, db, companyID, api.InternshipRequest{
		Title: "Backend", Location: "Greater Boston Area", Type: "Remote", Skills: "Go", Deadline: "2025-06-30",
	})
	require.NoError(t, err)
	_, err = CreateInternship(ctx, db, companyID, api.InternshipRequest{
		Title: "Frontend", Location: "New York", Type: "Onsite", Skills: "TypeScript",
	})
	require.NoError(t, err)

	remote, err := ListInternships(ctx, db, api.InternshipQuery{Type: "Remote"})
	require.NoError(t, err)
	require.Len(t, remote, 1)
	require.Equal(t, remoteID, remote[0].ID)

	boston, err := ListInternships(ctx, db, api.InternshipQuery{Location: "Boston"})
	require.NoError(t, err)
	require.Len(t, boston, 1)
	require.Equal(t, "Greater Boston Area", boston[0].Location)

	all, err := ListInternships(ctx, db, api.InternshipQuery{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	in, err := GetInternship(ctx, db, c, remoteID)
	require.NoError(t, err)
	require.Equal(t, "2025-06-30", *in.Deadline)
	require.Equal(t, "Acme", in.CompanyName)

	// 公司改名後單筆職缺立即反映
	require.NoError(t, UpdateCompany(ctx, db, c, companyID, api.CompanyUpdateRequest{Name: "Acme Labs"}))
	in, err = GetInternship(ctx, db, c, remoteID)
	require.NoError(t, err)
	require.Equal(t, "Acme Labs", in.CompanyName)

	// 應徵後公司端看到一筆 Pending
	appID, err := Apply(ctx, db, api.ApplyRequest{StudentID: studentID, InternshipID: remoteID, CoverLetter: "hello"}, "")
	require.NoError(t, err)
	applicants, err := ListInternshipApplications(ctx, db, remoteID)
	require.NoError(t, err)
	require.Len(t, applicants, 1)
	require.Equal(t, status.Pending, applicants[0].Status)
	require.Equal(t, "Ann", applicants[0].Name)

	_, err = Apply(ctx, db, api.ApplyRequest{StudentID: studentID, InternshipID: remoteID}, "")
	require.ErrorIs(t, err, apperrors.ErrConflict)

	// 無效狀態不寫入
	err = SetApplicationStatus(ctx, db, c, appID, "Hired")
	require.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	applicants, err = ListInternshipApplications(ctx, db, remoteID)
	require.NoError(t, err)
	require.Equal(t, status.Pending, applicants[0].Status)

	require.NoError(t, SetApplicationStatus(ctx, db, c, appID, "Accepted"))
	require.Equal(t, 1, events)
	err = SetApplicationStatus(ctx, db, c, appID, "Pending")
	require.ErrorIs(t, err, apperrors.ErrTransitionNotAllowed)

	mine, err := ListStudentApplications(ctx, db, studentID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, status.Accepted, mine[0].Status)
	require.Equal(t, "Acme Labs", mine[0].CompanyName)

	// 刪除職缺會先刪應徵
	_, err = DeleteInternship(ctx, db, c, remoteID)
	require.NoError(t, err)
	applicants, err = ListInternshipApplications(ctx, db, remoteID)
	require.NoError(t, err)
	require.Empty(t, applicants)
	_, err = GetInternship(ctx, db, c, remoteID)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	// 整份覆寫檔案
	require.NoError(t, UpdateStudent(ctx, db, studentID, api.StudentUpdateRequest{
		Name: "Ann B", Email: "ann.b@example.com", University: "MIT", Major: "EE", GraduationYear: 2027,
	}))
	s, err = GetStudent(ctx, db, studentID)
	require.NoError(t, err)
	require.Equal(t, "ann.b@example.com", s.Email)
	require.Nil(t, s.Skills)
}
