package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deal stages.
const (
	StageQualification = "qualification"
	StageProposal      = "proposal"
	StageNegotiation   = "negotiation"
	StageClosedWon     = "closed_won"
	StageClosedLost    = "closed_lost"
)

// Deal represents an opportunity in the pipeline.
type Deal struct {
	ID           string
	Title        string
	LeadID       string
	ContactEmail string
	CompanyName  string
	Value        decimal.Decimal
	Currency     string
	Stage        string
	Probability  int // 0-100
	CloseDate    time.Time
	Description  string
	Notes        string
	CreatedBy    *Ref
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
