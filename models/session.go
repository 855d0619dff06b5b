package models

import "strconv"

// Keys of the persisted session, shared by every session store.
const (
	SessionKeyToken       = "jwt_token"
	SessionKeyUserID      = "user_id"
	SessionKeyUserEmail   = "user_email"
	SessionKeyActiveOrder = "last_order_uid"
)

// PersistedSession survives process restarts. Empty strings and zero mean the
// value was never stored.
type PersistedSession struct {
	AuthToken     string `json:"-"`
	UserID        int    `json:"user_id,omitempty"`
	UserEmail     string `json:"user_email,omitempty"`
	ActiveOrderID string `json:"active_order_id,omitempty"`
}

func (s PersistedSession) IsLoggedIn() bool {
	return s.AuthToken != ""
}

// SessionFromValues builds a PersistedSession out of raw store values.
func SessionFromValues(values map[string]string) PersistedSession {
	userID, _ := strconv.Atoi(values[SessionKeyUserID])
	return PersistedSession{
		AuthToken:     values[SessionKeyToken],
		UserID:        userID,
		UserEmail:     values[SessionKeyUserEmail],
		ActiveOrderID: values[SessionKeyActiveOrder],
	}
}

type ResumeKind string

const (
	ResumeNeedsAuth ResumeKind = "needs_auth"
	ResumeReceipt   ResumeKind = "resume_receipt"
	ResumeStartScan ResumeKind = "start_scan"
)

type ResumeTarget struct {
	Kind    ResumeKind `json:"kind"`
	OrderID string     `json:"order_id,omitempty"`
}

// ResolveResumeTarget picks the first screen after start: login when there is
// no token, the receipt when an order is still active, the QR scanner
// otherwise.
func ResolveResumeTarget(s PersistedSession) ResumeTarget {
	switch {
	case !s.IsLoggedIn():
		return ResumeTarget{Kind: ResumeNeedsAuth}
	case s.ActiveOrderID != "":
		return ResumeTarget{Kind: ResumeReceipt, OrderID: s.ActiveOrderID}
	default:
		return ResumeTarget{Kind: ResumeStartScan}
	}
}

// TableContext is the outlet and table a QR scan bound the session to.
type TableContext struct {
	OutletID   string `json:"outlet_id"`
	OutletName string `json:"outlet_name"`
	TableLabel string `json:"table_label"`
}
