package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jglopez/tappedout-api/internal/domain"
)

var (
	admin      = domain.Principal{UserID: 1, Role: domain.RoleAdmin}
	organizer  = domain.Principal{UserID: 2, Role: domain.RoleOrganizer}
	competitor = domain.Principal{UserID: 3, Role: domain.RoleCompetitor}
)

func TestCanEditUser(t *testing.T) {
	assert.True(t, domain.CanEditUser(admin, 3))
	assert.True(t, domain.CanEditUser(competitor, 3))
	assert.False(t, domain.CanEditUser(competitor, 4))
	assert.False(t, domain.CanEditUser(organizer, 3))
}

func TestCanEditEvent(t *testing.T) {
	owned := domain.Event{ID: 10, OrganizerID: 2}
	foreign := domain.Event{ID: 11, OrganizerID: 9}

	assert.True(t, domain.CanEditEvent(admin, foreign))
	assert.True(t, domain.CanEditEvent(organizer, owned))
	assert.False(t, domain.CanEditEvent(organizer, foreign))
	assert.False(t, domain.CanEditEvent(competitor, owned))
}

func TestCanSeeInscriptions(t *testing.T) {
	owned := domain.Event{ID: 10, OrganizerID: 2}

	assert.True(t, domain.CanSeeInscriptions(admin, owned))
	assert.True(t, domain.CanSeeInscriptions(organizer, owned))
	assert.False(t, domain.CanSeeInscriptions(competitor, owned))
	assert.False(t, domain.CanSeeInscriptions(organizer, domain.Event{OrganizerID: 9}))
}

func TestCanSeeCompetitorInscriptions(t *testing.T) {
	assert.True(t, domain.CanSeeCompetitorInscriptions(admin, 3))
	assert.True(t, domain.CanSeeCompetitorInscriptions(competitor, 3))
	assert.False(t, domain.CanSeeCompetitorInscriptions(competitor, 4))
	assert.False(t, domain.CanSeeCompetitorInscriptions(organizer, 3))
}

func TestCanEditInscription(t *testing.T) {
	own := domain.Inscription{ID: 20, CompetitorID: 3}
	foreign := domain.Inscription{ID: 21, CompetitorID: 4}

	assert.True(t, domain.CanEditInscription(admin, foreign))
	assert.True(t, domain.CanEditInscription(competitor, own))
	assert.False(t, domain.CanEditInscription(competitor, foreign))
	assert.False(t, domain.CanEditInscription(organizer, own))
}

func TestCanEditResults(t *testing.T) {
	owned := domain.Event{ID: 10, OrganizerID: 2}

	assert.True(t, domain.CanEditResults(admin, owned))
	assert.True(t, domain.CanEditResults(organizer, owned))
	assert.False(t, domain.CanEditResults(organizer, domain.Event{OrganizerID: 9}))
	assert.False(t, domain.CanEditResults(competitor, owned))
}
