package services_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	"github.com/fintrackhq/finance_tracker_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAuditEntry_ActorRecorded(t *testing.T) {
	now := time.Now()
	actor := &domain.User{UserID: "user-1", Name: "Jordan Smith"}

	entry := services.BuildAuditEntry(domain.CollectionExpenses, "exp-1", domain.AuditUpdate,
		`{"amount":"50"}`, "updated expense", actor, now)

	assert.Equal(t, domain.AuditEntryID(now), entry.EntryID)
	assert.Equal(t, "user-1", entry.ActorID)
	assert.Equal(t, "Jordan Smith", entry.ActorName)
	assert.Equal(t, domain.CollectionExpenses, entry.EntityType)
	assert.Equal(t, now, entry.Timestamp)
}

func TestBuildAuditEntry_NilActorDegradesToSystem(t *testing.T) {
	entry := services.BuildAuditEntry(domain.CollectionPrograms, "prog-1", domain.AuditCreate,
		"", "seeded default program", nil, time.Now())

	assert.Equal(t, domain.SystemActor, entry.ActorID)
	assert.Equal(t, domain.SystemActor, entry.ActorName)
}

func TestBuildAuditEntry_ChangesPayloadRoundTrips(t *testing.T) {
	changes := map[string]any{"amount": "1500", "year": float64(2025)}
	raw, err := json.Marshal(changes)
	require.NoError(t, err)

	entry := services.BuildAuditEntry(domain.CollectionBudgets, "budget-pc-main-2025",
		domain.AuditUpdate, string(raw), "budget updated", nil, time.Now())

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(entry.Changes), &decoded))
	assert.Equal(t, changes, decoded)
}
