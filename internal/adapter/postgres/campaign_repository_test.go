package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-admin/internal/core/domain"
	"campaign-admin/internal/core/port"
)

const (
	qLockSeller     = "SELECT id, name, emerald_balance_cents FROM sellers WHERE id = $1 FOR UPDATE"
	qSetBalance     = "UPDATE sellers SET emerald_balance_cents = $1 WHERE id = $2"
	qInsert         = "INSERT INTO campaigns"
	qLockCampaign   = "SELECT campaign_fund_cents, seller_id FROM campaigns WHERE id = $1 FOR UPDATE"
	qUpdateCampaign = "UPDATE campaigns SET"
	qDelete         = "DELETE FROM campaigns WHERE id = $1 RETURNING campaign_fund_cents, seller_id"
	qRefund         = "UPDATE sellers SET emerald_balance_cents = emerald_balance_cents + $1 WHERE id = $2"
)

func newMockRepo(t *testing.T) (*CampaignRepository, pgxmock.PgxPoolIface) {
	db, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, db.ExpectationsWereMet())
		db.Close()
	})
	return NewCampaignRepository(db), db
}

func q(sql string) string {
	return regexp.QuoteMeta(sql)
}

func sellerRow(id int64, name string, balance int64) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name", "emerald_balance_cents"}).AddRow(id, name, balance)
}

func beginSerializable(db pgxmock.PgxPoolIface) {
	db.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.Serializable})
}

func newCampaign(fund int64) *domain.Campaign {
	return &domain.Campaign{
		Name:         "Spring Sale",
		Keywords:     "sale,spring",
		BidAmount:    250,
		CampaignFund: fund,
		Status:       domain.StatusOn,
		Town:         "Kraków",
		Radius:       5,
		SellerID:     1,
	}
}

// TestCreateCampaignDebitsSellerToZero ensures a fund equal to the balance
// is accepted and leaves the seller at exactly zero.
func TestCreateCampaignDebitsSellerToZero(t *testing.T) {
	repo, db := newMockRepo(t)

	beginSerializable(db)
	db.ExpectQuery(q(qLockSeller)).WithArgs(int64(1)).WillReturnRows(sellerRow(1, "Acme", 10000))
	db.ExpectExec(q(qSetBalance)).WithArgs(int64(0), int64(1)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	db.ExpectQuery(q(qInsert)).
		WithArgs("Spring Sale", "sale,spring", int64(250), int64(10000), pgxmock.AnyArg(), "Kraków", 5, int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))
	db.ExpectCommit()

	c := newCampaign(10000)
	require.NoError(t, repo.CreateCampaignAndDebit(context.Background(), c))
	assert.Equal(t, int64(7), c.ID)
	assert.Equal(t, "Acme", c.SellerName)
	assert.Equal(t, int64(0), c.SellerBalance)
}

func TestCreateCampaignInsufficientFundsRollsBack(t *testing.T) {
	repo, db := newMockRepo(t)

	beginSerializable(db)
	db.ExpectQuery(q(qLockSeller)).WithArgs(int64(1)).WillReturnRows(sellerRow(1, "Acme", 9999))
	db.ExpectRollback()

	err := repo.CreateCampaignAndDebit(context.Background(), newCampaign(10000))
	assert.ErrorIs(t, err, port.ErrInsufficientFunds)
}

func TestCreateCampaignUnknownSeller(t *testing.T) {
	repo, db := newMockRepo(t)

	beginSerializable(db)
	db.ExpectQuery(q(qLockSeller)).WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "emerald_balance_cents"}))
	db.ExpectRollback()

	err := repo.CreateCampaignAndDebit(context.Background(), newCampaign(100))
	assert.ErrorIs(t, err, port.ErrSellerNotFound)
}

// TestUpdateCampaignMovesFundDifference raises a fund from 50.00 to 60.00
// against a balance of 10.00, which leaves the seller at zero.
func TestUpdateCampaignMovesFundDifference(t *testing.T) {
	repo, db := newMockRepo(t)

	beginSerializable(db)
	db.ExpectQuery(q(qLockCampaign)).WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"campaign_fund_cents", "seller_id"}).AddRow(int64(5000), int64(1)))
	db.ExpectQuery(q(qLockSeller)).WithArgs(int64(1)).WillReturnRows(sellerRow(1, "Acme", 1000))
	db.ExpectExec(q(qSetBalance)).WithArgs(int64(0), int64(1)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	db.ExpectExec(q(qUpdateCampaign)).
		WithArgs("Spring Sale", "sale,spring", int64(250), int64(6000), pgxmock.AnyArg(), "Kraków", 5, int64(3)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	db.ExpectCommit()

	c := newCampaign(6000)
	c.ID = 3
	require.NoError(t, repo.UpdateCampaignAndAdjust(context.Background(), c))
	assert.Equal(t, int64(0), c.SellerBalance)
	assert.Equal(t, "Acme", c.SellerName)
}

func TestUpdateCampaignOverdraftRollsBack(t *testing.T) {
	repo, db := newMockRepo(t)

	beginSerializable(db)
	db.ExpectQuery(q(qLockCampaign)).WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"campaign_fund_cents", "seller_id"}).AddRow(int64(5000), int64(1)))
	db.ExpectQuery(q(qLockSeller)).WithArgs(int64(1)).WillReturnRows(sellerRow(1, "Acme", 1000))
	db.ExpectRollback()

	c := newCampaign(6001)
	c.ID = 3
	assert.ErrorIs(t, repo.UpdateCampaignAndAdjust(context.Background(), c), port.ErrInsufficientFunds)
}

func TestUpdateCampaignNotFoundRollsBack(t *testing.T) {
	repo, db := newMockRepo(t)

	beginSerializable(db)
	db.ExpectQuery(q(qLockCampaign)).WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"campaign_fund_cents", "seller_id"}))
	db.ExpectRollback()

	c := newCampaign(100)
	c.ID = 3
	assert.ErrorIs(t, repo.UpdateCampaignAndAdjust(context.Background(), c), port.ErrCampaignNotFound)
}

func TestDeleteCampaignRefundsSeller(t *testing.T) {
	repo, db := newMockRepo(t)

	beginSerializable(db)
	db.ExpectQuery(q(qDelete)).WithArgs(int64(4)).
		WillReturnRows(pgxmock.NewRows([]string{"campaign_fund_cents", "seller_id"}).AddRow(int64(5000), int64(2)))
	db.ExpectExec(q(qRefund)).WithArgs(int64(5000), int64(2)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	db.ExpectCommit()

	require.NoError(t, repo.DeleteCampaignAndRefund(context.Background(), 4))
}

func TestDeleteCampaignNotFoundRollsBack(t *testing.T) {
	repo, db := newMockRepo(t)

	beginSerializable(db)
	db.ExpectQuery(q(qDelete)).WithArgs(int64(4)).
		WillReturnRows(pgxmock.NewRows([]string{"campaign_fund_cents", "seller_id"}))
	db.ExpectRollback()

	assert.ErrorIs(t, repo.DeleteCampaignAndRefund(context.Background(), 4), port.ErrCampaignNotFound)
}

// TestGetCampaignReadsSellerBalance ensures reads carry the seller's
// current balance, zero included.
func TestGetCampaignReadsSellerBalance(t *testing.T) {
	repo, db := newMockRepo(t)

	db.ExpectQuery(q("WHERE c.id = $1")).WithArgs(int64(3)).WillReturnRows(pgxmock.NewRows([]string{
		"id", "campaign_name", "keywords", "bid_amount_cents", "campaign_fund_cents", "status",
		"town", "radius", "seller_id", "name", "emerald_balance_cents",
	}).AddRow(int64(3), "Spring Sale", "sale,spring", int64(250), int64(10000), domain.StatusOn,
		"Kraków", 5, int64(1), "Acme", int64(0)))

	c, err := repo.GetCampaign(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Acme", c.SellerName)
	assert.Equal(t, int64(0), c.SellerBalance)
	assert.Equal(t, domain.StatusOn, c.Status)
}

func TestGetSellerNotFound(t *testing.T) {
	repo, db := newMockRepo(t)

	db.ExpectQuery(q("FROM sellers WHERE id = $1")).WithArgs(int64(9)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "emerald_balance_cents"}))

	_, err := repo.GetSeller(context.Background(), 9)
	assert.ErrorIs(t, err, port.ErrSellerNotFound)
}
