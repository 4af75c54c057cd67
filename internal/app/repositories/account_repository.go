package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oguzk/mentorlink/internal/app/models"
	"github.com/oguzk/mentorlink/internal/pkg/apperrors"
	"github.com/oguzk/mentorlink/internal/pkg/dberrors"
	"github.com/oguzk/mentorlink/internal/pkg/logger"
)

// AccountRepository handles local password accounts in the primary store.
// These back self-issued sessions for users the provider does not manage.
type AccountRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var accountColumns = []string{
	"user_id", "email", "name", "password_hash", "user_type", "is_hod", "labels",
}

// GetByEmail retrieves an account by email
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	sql, args, err := r.sb.Select(accountColumns...).
		From("accounts").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get account by email SQL")
		return nil, fmt.Errorf("failed to build get account query: %w", err)
	}

	var account models.Account
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&account.UserID, &account.Email, &account.Name, &account.PasswordHash,
		&account.Type, &account.IsHOD, &account.Labels)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, ErrAccountNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error retrieving account by email")
		return nil, fmt.Errorf("%w: retrieving account: %v", apperrors.ErrStoreUnavailable, err)
	}

	return &account, nil
}

// Create inserts a new account
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	sql, args, err := r.sb.Insert("accounts").
		Columns(accountColumns...).
		Values(account.UserID, account.Email, account.Name, account.PasswordHash,
			account.Type, account.IsHOD, account.Labels).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create account SQL")
		return fmt.Errorf("failed to build create account query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "accounts_email_key") {
			logger.Warn().Str("email", account.Email).Msg("Attempted to create account with duplicate email")
			return ErrAccountExists
		}
		logger.Error().Err(err).Str("email", account.Email).Msg("Error executing create account query")
		return fmt.Errorf("error creating account: %w", err)
	}

	logger.Info().Str("userID", account.UserID).Str("email", account.Email).Msg("Account created")
	return nil
}
