package types

// Preservation controls whether a debit may reap the source account.
type Preservation uint8

const (
	// Expendable lets the balance drop to zero.
	Expendable Preservation = iota
	// Protect keeps the balance at or above the asset minimum.
	Protect
	// Preserve is Protect with the intent that the account must survive.
	Preserve
)

func (p Preservation) String() string {
	switch p {
	case Expendable:
		return "expendable"
	case Protect:
		return "protect"
	case Preserve:
		return "preserve"
	default:
		return "unknown"
	}
}

// Precision controls whether a burn may take less than requested.
type Precision uint8

const (
	// Exact fails unless the full amount can be burned.
	Exact Precision = iota
	// BestEffort burns as much as allowed, up to the amount.
	BestEffort
)

// Fortitude controls whether a burn respects the minimum balance.
type Fortitude uint8

const (
	// Polite keeps the minimum balance rules.
	Polite Fortitude = iota
	// Force ignores them.
	Force
)
