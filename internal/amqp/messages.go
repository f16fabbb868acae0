package amqp

import (
	"encoding/json"
	"time"

	"fintrack/internal/core"
)

// ExpenseCreatedMessage carries a full expense record so consumers can mirror
// it without a round trip to the store (the log has no record identifiers).
type ExpenseCreatedMessage struct {
	Ref         string    `json:"ref"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	Day         int       `json:"day"`
	Category    string    `json:"category"`
	AmountCents int64     `json:"amount_cents"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewExpenseCreatedMessage builds a message from a stored expense.
func NewExpenseCreatedMessage(ref string, e core.Expense) *ExpenseCreatedMessage {
	return &ExpenseCreatedMessage{
		Ref:         ref,
		Year:        e.Date.Year(),
		Month:       e.Date.Month(),
		Day:         e.Date.Day(),
		Category:    string(e.Category),
		AmountCents: e.Amount.Cents,
		Description: e.Description,
		Timestamp:   time.Now(),
	}
}

// Expense reconstructs the core expense from the message fields.
func (m *ExpenseCreatedMessage) Expense() core.Expense {
	return core.Expense{
		Date:        core.NewDate(m.Year, m.Month, m.Day),
		Category:    core.Category(m.Category),
		Amount:      core.Money{Cents: m.AmountCents},
		Description: m.Description,
	}
}

// ToJSON converts the message to JSON bytes
func (m *ExpenseCreatedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ExpenseCreatedMessageFromJSON creates a message from JSON bytes
func ExpenseCreatedMessageFromJSON(data []byte) (*ExpenseCreatedMessage, error) {
	var msg ExpenseCreatedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
