package domain

// Principal is the authenticated caller as established by the JWT middleware.
// It is passed explicitly into every permission check so the predicates stay
// testable without a request context.
type Principal struct {
	UserID uint
	Role   string
}

func (p Principal) IsAdmin() bool      { return p.Role == RoleAdmin }
func (p Principal) IsOrganizer() bool  { return p.Role == RoleOrganizer }
func (p Principal) IsCompetitor() bool { return p.Role == RoleCompetitor }

// The predicates below decide over already-loaded entities and never touch
// storage themselves.

// CanEditUser: ADMIN edits anyone, everyone edits their own profile.
func CanEditUser(p Principal, targetUserID uint) bool {
	return p.IsAdmin() || p.UserID == targetUserID
}

// CanEditEvent: ADMIN, or the organizer who owns the event.
func CanEditEvent(p Principal, event Event) bool {
	if p.IsAdmin() {
		return true
	}

	return p.IsOrganizer() && event.OrganizerID == p.UserID
}

// CanSeeInscriptions: same ownership rule as editing the event.
func CanSeeInscriptions(p Principal, event Event) bool {
	if p.IsAdmin() {
		return true
	}

	return p.IsOrganizer() && event.OrganizerID == p.UserID
}

// CanSeeCompetitorInscriptions: ADMIN, or the competitor themselves.
func CanSeeCompetitorInscriptions(p Principal, competitorID uint) bool {
	if p.IsAdmin() {
		return true
	}

	return p.IsCompetitor() && p.UserID == competitorID
}

// CanEditInscription: ADMIN, or the competitor who owns the inscription.
func CanEditInscription(p Principal, inscription Inscription) bool {
	if p.IsAdmin() {
		return true
	}

	return p.IsCompetitor() && inscription.CompetitorID == p.UserID
}

func CanDeleteInscription(p Principal, inscription Inscription) bool {
	return CanEditInscription(p, inscription)
}

// CanEditResults: ADMIN, or the organizer of the event the results belong to.
func CanEditResults(p Principal, event Event) bool {
	if p.IsAdmin() {
		return true
	}

	return p.IsOrganizer() && event.OrganizerID == p.UserID
}

// CanEditResult resolves edit rights through the result's owning event.
func CanEditResult(p Principal, event Event) bool {
	return CanEditResults(p, event)
}
