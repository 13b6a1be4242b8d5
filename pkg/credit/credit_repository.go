package credit

import (
	"context"
	"database/sql"
	"errors"

	"rhea-backend/domain"
	"rhea-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CreditRepository interface {
		GetUserBalance(ctx context.Context, userID string) (int, error)
		// Debit atomically subtracts amount when the balance covers it and appends
		// a ledger row. It returns the balance after the debit.
		Debit(ctx context.Context, userID string, amount int, mode, description string) (int, error)
		GetUserCreditTransactions(ctx context.Context, userID string, page, limit int) ([]*entities.CreditTransaction, int64, error)
	}

	creditRepository struct {
		db *gorm.DB
	}
)

func NewCreditRepository(db *gorm.DB) CreditRepository {
	return &creditRepository{
		db: db,
	}
}

func (r *creditRepository) GetUserBalance(ctx context.Context, userID string) (int, error) {
	return balanceOf(r.db.WithContext(ctx), userID)
}

func balanceOf(db *gorm.DB, userID string) (int, error) {
	var credits int
	err := db.Model(&entities.StyleProfile{}).
		Where("user_id = ?", userID).
		Select("pro_credits").
		Row().
		Scan(&credits)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil // No profile yet
		}
		return 0, err
	}
	return credits, nil
}

func (r *creditRepository) Debit(ctx context.Context, userID string, amount int, mode, description string) (int, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return 0, domain.ErrParseUUID
	}

	var balance int
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.StyleProfile{}).
			Where("user_id = ? AND pro_credits >= ?", userID, amount).
			Update("pro_credits", gorm.Expr("pro_credits - ?", amount))
		if res.Error != nil {
			return res.Error
		}

		current, err := balanceOf(tx, userID)
		if err != nil {
			return err
		}
		if res.RowsAffected == 0 {
			return &domain.InsufficientCreditsError{Current: current, Required: amount}
		}
		balance = current

		return tx.Create(&entities.CreditTransaction{
			UserID:      uid,
			Amount:      -amount,
			Type:        domain.CreditTypeGeneration,
			Mode:        mode,
			Description: description,
			Balance:     balance,
		}).Error
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (r *creditRepository) GetUserCreditTransactions(ctx context.Context, userID string, page, limit int) ([]*entities.CreditTransaction, int64, error) {
	var transactions []*entities.CreditTransaction
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.CreditTransaction{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, 0, err
	}

	return transactions, count, nil
}
