package accountrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/zinlatt/betmart/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)
	return repo, mockDB
}

const accountColumns = "id, external_id, username, is_reseller, commission_pct, balance, created_at"

func TestRepository_FindByExternalID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name       string
		externalID int64
		mockSetup  func()
		expectErr  bool
		result     *domain.Account
	}{
		{
			name:       "account exists",
			externalID: 42,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "external_id", "username", "is_reseller", "commission_pct", "balance", "created_at"}).
					AddRow(7, int64(42), "maung", false, 0, int64(25000), now)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT " + accountColumns)).
					WithArgs(int64(42)).
					WillReturnRows(rows)
			},
			result: &domain.Account{ID: 7, ExternalID: 42, Username: "maung", Balance: 25000, CreatedAt: now},
		},
		{
			name:       "account does not exist",
			externalID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT " + accountColumns)).
					WithArgs(int64(99)).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:       "database error",
			externalID: 42,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT " + accountColumns)).
					WithArgs(int64(42)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			account, err := repo.FindByExternalID(context.Background(), tt.externalID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, account)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "external_id", "username", "is_reseller", "commission_pct", "balance", "created_at"}).
		AddRow(7, int64(42), "maung", false, 0, int64(0), now)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO accounts")).
		WithArgs(int64(42), "maung").
		WillReturnRows(rows)

	account, err := repo.Upsert(context.Background(), 42, "maung")
	assert.NoError(t, err)
	assert.Equal(t, 7, account.ID)
	assert.Equal(t, "maung", account.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Debit(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expected  int64
		expectErr error
	}{
		{
			name: "sufficient balance",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE accounts")).
					WithArgs(7, int64(1500)).
					WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(int64(23500)))
			},
			expected: 23500,
		},
		{
			name: "insufficient balance",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE accounts")).
					WithArgs(7, int64(1500)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: domain.ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			balance, err := repo.Debit(context.Background(), 7, 1500)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, balance)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Credit(t *testing.T) {
	t.Run("credits and returns the new balance", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE accounts")).
			WithArgs(7, int64(40000)).
			WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(int64(65000)))

		balance, err := repo.Credit(context.Background(), 7, 40000)
		assert.NoError(t, err)
		assert.Equal(t, int64(65000), balance)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown account", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE accounts")).
			WithArgs(99, int64(40000)).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.Credit(context.Background(), 99, 40000)
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
