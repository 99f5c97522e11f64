package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-admin/internal/core/domain"
	"campaign-admin/internal/core/port"
)

// DB is the subset of *pgxpool.Pool the repository uses.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

var _ DB = (*pgxpool.Pool)(nil)

// CampaignRepository implements port.CampaignRepository on PostgreSQL.
type CampaignRepository struct {
	pool DB
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool DB) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const selectCampaign = `
        SELECT
            c.id,
            c.campaign_name,
            c.keywords,
            c.bid_amount_cents,
            c.campaign_fund_cents,
            c.status,
            c.town,
            c.radius,
            c.seller_id,
            s.name,
            s.emerald_balance_cents
        FROM campaigns c
        JOIN sellers s ON s.id = c.seller_id`

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Keywords,
		&c.BidAmount,
		&c.CampaignFund,
		&c.Status,
		&c.Town,
		&c.Radius,
		&c.SellerID,
		&c.SellerName,
		&c.SellerBalance,
	)
	return c, err
}

// ListCampaigns returns all campaigns ordered by id.
func (r *CampaignRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, selectCampaign+` ORDER BY c.id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, selectCampaign+` WHERE c.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// inTx runs fn in a serializable transaction, committing when fn succeeds.
func (r *CampaignRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()
	return fn(tx)
}

// lockSeller reads a seller row FOR UPDATE.
func lockSeller(ctx context.Context, tx pgx.Tx, id int64) (domain.Seller, error) {
	var s domain.Seller
	err := tx.QueryRow(ctx, `SELECT id, name, emerald_balance_cents FROM sellers WHERE id = $1 FOR UPDATE`, id).
		Scan(&s.ID, &s.Name, &s.EmeraldBalance)
	if errors.Is(err, pgx.ErrNoRows) {
		return s, port.ErrSellerNotFound
	}
	return s, err
}

func setBalance(ctx context.Context, tx pgx.Tx, sellerID, balance int64) error {
	_, err := tx.Exec(ctx, `UPDATE sellers SET emerald_balance_cents = $1 WHERE id = $2`, balance, sellerID)
	return err
}

// CreateCampaignAndDebit locks the seller, checks its balance covers the
// campaign fund, debits it and inserts the campaign.
func (r *CampaignRepository) CreateCampaignAndDebit(ctx context.Context, c *domain.Campaign) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		seller, err := lockSeller(ctx, tx, c.SellerID)
		if err != nil {
			return err
		}
		if seller.EmeraldBalance < c.CampaignFund {
			return port.ErrInsufficientFunds
		}
		balance := seller.EmeraldBalance - c.CampaignFund
		if err = setBalance(ctx, tx, seller.ID, balance); err != nil {
			return err
		}
		err = tx.QueryRow(ctx, `INSERT INTO campaigns
    (campaign_name, keywords, bid_amount_cents, campaign_fund_cents, status, town, radius, seller_id)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id`,
			c.Name, c.Keywords, c.BidAmount, c.CampaignFund, c.Status, c.Town, c.Radius, c.SellerID).Scan(&c.ID)
		if err != nil {
			return err
		}
		c.SellerName = seller.Name
		c.SellerBalance = balance
		return nil
	})
}

// UpdateCampaignAndAdjust locks the campaign and its seller, moves the fund
// difference and rewrites the campaign. The seller never changes.
func (r *CampaignRepository) UpdateCampaignAndAdjust(ctx context.Context, c *domain.Campaign) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		var oldFund, sellerID int64
		err := tx.QueryRow(ctx, `SELECT campaign_fund_cents, seller_id FROM campaigns WHERE id = $1 FOR UPDATE`, c.ID).
			Scan(&oldFund, &sellerID)
		if errors.Is(err, pgx.ErrNoRows) {
			return port.ErrCampaignNotFound
		}
		if err != nil {
			return err
		}
		seller, err := lockSeller(ctx, tx, sellerID)
		if err != nil {
			return err
		}
		balance := seller.EmeraldBalance + oldFund - c.CampaignFund
		if balance < 0 {
			return port.ErrInsufficientFunds
		}
		if err = setBalance(ctx, tx, seller.ID, balance); err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `UPDATE campaigns SET
    campaign_name = $1, keywords = $2, bid_amount_cents = $3, campaign_fund_cents = $4,
    status = $5, town = $6, radius = $7
WHERE id = $8`,
			c.Name, c.Keywords, c.BidAmount, c.CampaignFund, c.Status, c.Town, c.Radius, c.ID)
		if err != nil {
			return err
		}
		c.SellerID = seller.ID
		c.SellerName = seller.Name
		c.SellerBalance = balance
		return nil
	})
}

// DeleteCampaignAndRefund removes the campaign and credits its fund back to
// the seller.
func (r *CampaignRepository) DeleteCampaignAndRefund(ctx context.Context, id int64) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		var fund, sellerID int64
		err := tx.QueryRow(ctx, `DELETE FROM campaigns WHERE id = $1 RETURNING campaign_fund_cents, seller_id`, id).
			Scan(&fund, &sellerID)
		if errors.Is(err, pgx.ErrNoRows) {
			return port.ErrCampaignNotFound
		}
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `UPDATE sellers SET emerald_balance_cents = emerald_balance_cents + $1 WHERE id = $2`, fund, sellerID)
		return err
	})
}

// ListSellers returns all sellers ordered by id.
func (r *CampaignRepository) ListSellers(ctx context.Context) ([]domain.Seller, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, emerald_balance_cents FROM sellers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Seller, error) {
		var s domain.Seller
		err := row.Scan(&s.ID, &s.Name, &s.EmeraldBalance)
		return s, err
	})
}

// GetSeller returns a seller by id.
func (r *CampaignRepository) GetSeller(ctx context.Context, id int64) (*domain.Seller, error) {
	var s domain.Seller
	err := r.pool.QueryRow(ctx, `SELECT id, name, emerald_balance_cents FROM sellers WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.EmeraldBalance)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrSellerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
