package amqp

import (
	"testing"

	"fintrack/internal/core"
)

func TestExpenseCreatedMessageRoundTrip(t *testing.T) {
	e := core.NewExpense(core.NewDate(2025, 6, 5), "Groceries", core.Money{Cents: 600000}, "monthly shop")
	msg := NewExpenseCreatedMessage("mem:1", e)

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := ExpenseCreatedMessageFromJSON(body)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Ref != "mem:1" || got.Category != "Groceries" || got.AmountCents != 600000 {
		t.Fatalf("unexpected message: %+v", got)
	}

	back := got.Expense()
	if back.Date != e.Date || back.Category != e.Category || back.Amount != e.Amount || back.Description != e.Description {
		t.Fatalf("reconstructed expense differs: %+v vs %+v", back, e)
	}
}

func TestExpenseCreatedMessageFromJSONInvalid(t *testing.T) {
	if _, err := ExpenseCreatedMessageFromJSON([]byte("{not json")); err == nil {
		t.Fatalf("expected error for malformed payload")
	}
}
