package domain

import "time"

const (
	GameType2D = "2D"
	GameType3D = "3D"
)

const (
	SessionMorning = "MORNING"
	SessionEvening = "EVENING"
)

const (
	// TicketPending ticket is placed and waits for the result publication.
	TicketPending = "PENDING"
	// TicketWon ticket matched the winning number and the payout was credited.
	TicketWon = "WON"
	// TicketLost ticket did not match the winning number.
	TicketLost = "LOST"
)

const (
	ChoiceHigh = "HIGH"
	ChoiceLow  = "LOW"
)

const (
	CategoryWager        = "wager"
	CategoryPayout       = "payout"
	CategoryChanceWager  = "chance-wager"
	CategoryChancePayout = "chance-payout"
	CategoryAdjustment   = "adjustment"
)

type Account struct {
	ID            int       `db:"id"`
	ExternalID    int64     `db:"external_id"`
	Username      string    `db:"username"`
	IsReseller    bool      `db:"is_reseller"`
	CommissionPct int       `db:"commission_pct"`
	Balance       int64     `db:"balance"`
	CreatedAt     time.Time `db:"created_at"`
}

type WagerTicket struct {
	ID        int       `db:"id"`
	Ref       string    `db:"ref"`
	AccountID int       `db:"account_id"`
	GameType  string    `db:"game_type"`
	Number    string    `db:"number"`
	Stake     int64     `db:"stake"`
	Session   string    `db:"session"`
	Day       time.Time `db:"day"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

// PendingWager is a ticket joined with the owning account's external
// identity, as fetched for settlement.
type PendingWager struct {
	Ticket     WagerTicket
	ExternalID int64
}

type ChanceTicket struct {
	ID        int       `db:"id"`
	Ref       string    `db:"ref"`
	AccountID int       `db:"account_id"`
	Stake     int64     `db:"stake"`
	Choice    string    `db:"choice"`
	ResultNum int       `db:"result_num"`
	Status    string    `db:"status"`
	Payout    int64     `db:"payout"`
	CreatedAt time.Time `db:"created_at"`
}

type LedgerTransaction struct {
	ID          int       `db:"id"`
	AccountID   int       `db:"account_id"`
	Category    string    `db:"category"`
	Amount      int64     `db:"amount"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}
