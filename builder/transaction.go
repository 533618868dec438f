package builder

import "time"

// Transaction type discriminators, matching the upstream ledger values.
const (
	TypeIncome  = "ingreso"
	TypeExpense = "egreso"
)

// Transaction is one immutable ledger record. The builder reads it and
// never writes it back.
type Transaction struct {
	ID          int
	Date        time.Time
	Category    string
	Subcategory string
	Amount      float64
	User        string
	Type        string
}

// byUserDate orders a private copy by (User, Date) ascending; stable input
// order breaks remaining ties so repeated builds agree.
func byUserDate(ts []Transaction) func(i, j int) bool {
	return func(i, j int) bool {
		if ts[i].User != ts[j].User {
			return ts[i].User < ts[j].User
		}
		return ts[i].Date.Before(ts[j].Date)
	}
}

// byDate orders by Date ascending.
func byDate(ts []Transaction) func(i, j int) bool {
	return func(i, j int) bool {
		return ts[i].Date.Before(ts[j].Date)
	}
}
