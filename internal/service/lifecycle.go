package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fatima3985/InternLinkt/internal/api"
	"github.com/fatima3985/InternLinkt/internal/apperrors"
	"github.com/fatima3985/InternLinkt/internal/cache"
	"github.com/fatima3985/InternLinkt/internal/database"
	"github.com/fatima3985/InternLinkt/internal/logger"
	"github.com/fatima3985/InternLinkt/internal/model"
	"github.com/fatima3985/InternLinkt/internal/status"
	"github.com/fatima3985/InternLinkt/internal/store"

	"github.com/jackc/pgx/v5"
)

// StatusChangedChannel 應徵狀態變更事件的 Redis channel
const StatusChangedChannel = "applications.status_changed"

const studentFKConstraint = "applications_student_id_fkey"

var (
	timeNow     = time.Now
	jsonMarshal = json.Marshal
)

// Apply 建立應徵，初始狀態為 Pending。resume 為空代表未上傳履歷。
func Apply(ctx context.Context, db database.DB, req api.ApplyRequest, resume string) (int, error) {
	if req.StudentID <= 0 || req.InternshipID <= 0 {
		return 0, apperrors.Validation(api.ApplyRequest{}.RequiredMessage())
	}
	id, err := store.InsertApplication(ctx, db, &model.Application{
		StudentID:    req.StudentID,
		InternshipID: req.InternshipID,
		Resume:       optional(resume),
		CoverLetter:  req.CoverLetter,
		Status:       status.Pending,
	})
	switch {
	case err == nil:
		return id, nil
	case errors.Is(err, pgx.ErrNoRows):
		return 0, apperrors.Conflict("Already applied to this internship.")
	case database.IsForeignKeyViolation(err, studentFKConstraint):
		return 0, apperrors.NotFound(msgStudentNotFound)
	case database.IsForeignKeyViolation(err, ""):
		return 0, apperrors.NotFound(msgInternshipNotFound)
	}
	return 0, err
}

// SetApplicationStatus 依轉換表更新狀態；成功變更後發佈事件
func SetApplicationStatus(ctx context.Context, db database.DB, c cache.Cache, id int, raw string) error {
	to, err := status.Parse(raw)
	if err != nil {
		return apperrors.New(apperrors.ErrInvalidStatus, "Invalid status.")
	}

	var from status.Status
	err = database.WithTx(ctx, db, func(tx pgx.Tx) error {
		var err error
		from, err = store.LockApplicationStatus(ctx, tx, id)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NotFound("Application not found.")
		}
		if err != nil {
			return err
		}
		if !status.CanTransition(from, to) {
			logger.Warn().
				Int("application_id", id).
				Str("from", string(from)).
				Str("to", string(to)).
				Bool("terminal", status.IsTerminal(from)).
				Msg("拒絕不允許的狀態轉換")
			return apperrors.New(apperrors.ErrTransitionNotAllowed,
				fmt.Sprintf("Cannot change status from %s to %s.", from, to))
		}
		if from == to {
			return nil
		}
		return store.UpdateApplicationStatus(ctx, tx, id, to)
	})
	if err != nil {
		return err
	}

	if from != to {
		publishStatusChanged(ctx, c, model.StatusChangedEvent{
			ApplicationID: id,
			From:          from,
			To:            to,
			At:            timeNow().UTC(),
		})
	}
	return nil
}

// publishStatusChanged 發佈失敗只記錄，狀態已寫入不回滾
func publishStatusChanged(ctx context.Context, c cache.Cache, ev model.StatusChangedEvent) {
	payload, err := jsonMarshal(ev)
	if err != nil {
		logger.Warn().Err(err).Int("application_id", ev.ApplicationID).Msg("序列化狀態事件失敗")
		return
	}
	if err := c.Publish(ctx, StatusChangedChannel, payload).Err(); err != nil {
		logger.Warn().Err(err).Int("application_id", ev.ApplicationID).Msg("發佈狀態事件失敗")
	}
}

func ListInternshipApplications(ctx context.Context, db database.DB, internshipID int) ([]model.Applicant, error) {
	return store.ListInternshipApplications(ctx, db, internshipID)
}

func ListStudentApplications(ctx context.Context, db database.DB, studentID int) ([]model.StudentApplication, error) {
	return store.ListStudentApplications(ctx, db, studentID)
}
