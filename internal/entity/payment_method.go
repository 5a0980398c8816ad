package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod is a stored card or account reference. The extraction core
// only ever produces the card type and last four digits; nickname and
// method type are user-maintained.
type PaymentMethod struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	MethodType string    `json:"method_type"` // credit_card | debit_card | bank_account
	CardType   *string   `json:"card_type,omitempty"`
	LastFour   string    `json:"last_four"`
	Nickname   *string   `json:"nickname,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
