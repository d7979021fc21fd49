package reservation

import "hotelier/internal/domain"

// Principal is the authenticated caller as seen by the engine: a role
// and, for customers, the email that marks reservation ownership. It is
// extracted from the token by the HTTP layer and passed by value; the
// engine never reaches into ambient request state.
type Principal struct {
	Role  domain.UserRole
	Email string
}

func (p Principal) IsCustomer() bool {
	return p.Role == domain.RoleCustomer
}

// capability is what a role may do with reservations it does not own.
// Customers hold no cross-record capability; staff roles hold both.
// Unknown roles fall through to the zero value and are denied anything
// beyond their own records.
type capability struct {
	viewAny   bool
	modifyAny bool
}

var capabilities = map[domain.UserRole]capability{
	domain.RoleCustomer:     {},
	domain.RoleReceptionist: {viewAny: true, modifyAny: true},
	domain.RoleManager:      {viewAny: true, modifyAny: true},
}

// CanView reports whether p may read the reservation.
func CanView(r *domain.Reservation, p Principal) bool {
	if capabilities[p.Role].viewAny {
		return true
	}
	return p.Email != "" && r.CustomerEmail == p.Email
}

// CanModify reports whether p may change the reservation's state. The
// rule is identical to CanView; the two are kept separate so the
// capability table stays the single place a future divergence lands.
func CanModify(r *domain.Reservation, p Principal) bool {
	if capabilities[p.Role].modifyAny {
		return true
	}
	return p.Email != "" && r.CustomerEmail == p.Email
}
