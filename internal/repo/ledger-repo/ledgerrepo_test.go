package ledgerrepo

import (
	"context"
	"regexp"
	"testing"
	"time"

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

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tx := &domain.LedgerTransaction{
		AccountID:   7,
		Category:    domain.CategoryWager,
		Amount:      -1500,
		Description: "2D MORNING wager, 2 numbers, face 1500",
		CreatedAt:   now,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO ledger_transactions")).
		WithArgs(7, domain.CategoryWager, int64(-1500), tx.Description, now).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(21))

	err := repo.Create(context.Background(), tx)
	assert.NoError(t, err)
	assert.Equal(t, 21, tx.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByAccountID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "account_id", "category", "amount", "description", "created_at"}).
		AddRow(2, 7, domain.CategoryPayout, int64(40000), "2D MORNING winning number 48", now).
		AddRow(1, 7, domain.CategoryWager, int64(-1500), "", now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM ledger_transactions")).
		WithArgs(7, 50).
		WillReturnRows(rows)

	txs, err := repo.FindByAccountID(context.Background(), 7, 50)
	assert.NoError(t, err)
	assert.Len(t, txs, 2)
	assert.Equal(t, domain.CategoryPayout, txs[0].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}
