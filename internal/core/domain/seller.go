package domain

// Seller owns campaigns and pays for them from an emerald balance (cents).
type Seller struct {
	ID             int64
	Name           string
	EmeraldBalance int64
}
