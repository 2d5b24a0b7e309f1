package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lshigami/devprep/internal/apperr"
	"github.com/lshigami/devprep/internal/model"
	"gorm.io/gorm"
)

type SessionRepository interface {
	CreateWithAnswers(ctx context.Context, session *model.Session) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Session, error)
	FindAllByUser(ctx context.Context, userID string) ([]model.Session, error)
	StatsByUser(ctx context.Context, userID string) (count int64, average float64, err error)
	DeleteByIDForUser(ctx context.Context, id uuid.UUID, userID string) (int64, error)
	DeleteAllByUser(ctx context.Context, userID string) (int64, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// CreateWithAnswers inserts the session row and then one row per answer in a
// single transaction. A write that returns no rows is treated as a failure.
func (r *sessionRepository) CreateWithAnswers(ctx context.Context, session *model.Session) error {
	const op = "SessionRepository.CreateWithAnswers"
	if r.db == nil {
		return unavailable(op)
	}

	answers := session.Answers
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Omit("Answers").Create(session)
		if res.Error != nil {
			return fmt.Errorf("insert session: %w", res.Error)
		}
		if res.RowsAffected == 0 || session.ID == uuid.Nil {
			return fmt.Errorf("insert session returned no rows")
		}

		if len(answers) == 0 {
			return nil
		}
		for i := range answers {
			answers[i].SessionID = session.ID
		}
		res = tx.Create(&answers)
		if res.Error != nil {
			return fmt.Errorf("insert answers: %w", res.Error)
		}
		if res.RowsAffected != int64(len(answers)) {
			return fmt.Errorf("insert answers: %d of %d rows returned", res.RowsAffected, len(answers))
		}
		return nil
	})
	if err != nil {
		return apperr.Persistence(op, err)
	}
	session.Answers = answers
	return nil
}

func (r *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	const op = "SessionRepository.FindByID"
	if r.db == nil {
		return nil, unavailable(op)
	}
	var session model.Session
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&session).Error; err != nil {
		return nil, translate(op, err, "Session not found")
	}
	return &session, nil
}

func (r *sessionRepository) FindAllByUser(ctx context.Context, userID string) ([]model.Session, error) {
	const op = "SessionRepository.FindAllByUser"
	if r.db == nil {
		return nil, unavailable(op)
	}
	var sessions []model.Session
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, translate(op, err, "")
	}
	return sessions, nil
}

func (r *sessionRepository) StatsByUser(ctx context.Context, userID string) (int64, float64, error) {
	const op = "SessionRepository.StatsByUser"
	if r.db == nil {
		return 0, 0, unavailable(op)
	}
	var row struct {
		SessionCount int64
		AverageScore float64
	}
	err := r.db.WithContext(ctx).
		Model(&model.Session{}).
		Select("COUNT(*) AS session_count, COALESCE(AVG(final_score), 0) AS average_score").
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return 0, 0, translate(op, err, "")
	}
	return row.SessionCount, row.AverageScore, nil
}

// DeleteByIDForUser removes one session owned by userID together with its
// answers. Deleting nothing is not an error.
func (r *sessionRepository) DeleteByIDForUser(ctx context.Context, id uuid.UUID, userID string) (int64, error) {
	const op = "SessionRepository.DeleteByIDForUser"
	if r.db == nil {
		return 0, unavailable(op)
	}
	return r.deleteWhere(ctx, op, "id = ? AND user_id = ?", id, userID)
}

func (r *sessionRepository) DeleteAllByUser(ctx context.Context, userID string) (int64, error) {
	const op = "SessionRepository.DeleteAllByUser"
	if r.db == nil {
		return 0, unavailable(op)
	}
	return r.deleteWhere(ctx, op, "user_id = ?", userID)
}

// deleteWhere removes answers explicitly so the result does not depend on
// the store enforcing ON DELETE CASCADE.
func (r *sessionRepository) deleteWhere(ctx context.Context, op, query string, args ...interface{}) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := tx.Model(&model.Session{}).Select("id").Where(query, args...)
		if err := tx.Where("session_id IN (?)", owned).Delete(&model.Answer{}).Error; err != nil {
			return fmt.Errorf("delete answers: %w", err)
		}
		res := tx.Where(query, args...).Delete(&model.Session{})
		if res.Error != nil {
			return fmt.Errorf("delete sessions: %w", res.Error)
		}
		deleted = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, apperr.Persistence(op, err)
	}
	return deleted, nil
}
