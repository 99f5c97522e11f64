package domain

import (
	"errors"
	"math"
)

// CampaignStatus is the on/off switch of a campaign.
type CampaignStatus string

const (
	StatusOn  CampaignStatus = "ON"
	StatusOff CampaignStatus = "OFF"
)

// Valid reports whether s is one of the known statuses.
func (s CampaignStatus) Valid() bool {
	return s == StatusOn || s == StatusOff
}

// Campaign represents an advertising campaign owned by a seller.
// Amounts are stored in integer units (cents).
type Campaign struct {
	ID           int64
	Name         string
	Keywords     string // comma-joined
	BidAmount    int64
	CampaignFund int64
	Status       CampaignStatus
	Town         string
	Radius       int // kilometers
	SellerID     int64
	SellerName   string
	// SellerBalance is the seller's current emerald balance: the balance
	// after the transaction for writes, the stored one for reads.
	SellerBalance int64
}

// CampaignInput carries the writable fields of a campaign.
type CampaignInput struct {
	Name         string
	Keywords     string
	BidAmount    int64
	CampaignFund int64
	Status       CampaignStatus
	Town         string
	Radius       int
	SellerID     int64
}

// MaxAmount is the largest bid or fund accepted, in currency units. It
// keeps every amount and every balance sum well inside int64 cents.
const MaxAmount = 1_000_000_000

// ErrAmountOutOfRange is returned by Cents for amounts that are not finite
// or exceed MaxAmount in magnitude.
var ErrAmountOutOfRange = errors.New("amount out of range")

// Cents converts a decimal currency amount into integer cents.
func Cents(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.Abs(amount) > MaxAmount {
		return 0, ErrAmountOutOfRange
	}
	return int64(math.Round(amount * 100)), nil
}

// Amount converts integer cents back into a decimal currency amount.
func Amount(cents int64) float64 {
	return float64(cents) / 100
}
