package domain_test

import (
	"testing"
	"time"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotal_SumsDebitLinesOnly(t *testing.T) {
	lines := []domain.JournalLine{
		{LineType: domain.Debit, Amount: decimal.NewFromInt(100)},
		{LineType: domain.Credit, Amount: decimal.NewFromInt(100)},
		{LineType: domain.Debit, Amount: decimal.NewFromInt(50)},
	}
	assert.True(t, domain.ComputeTotal(lines).Equal(decimal.NewFromInt(150)))
}

func TestComputeTotal_NoDebitLines(t *testing.T) {
	lines := []domain.JournalLine{
		{LineType: domain.Credit, Amount: decimal.NewFromInt(75)},
	}
	assert.True(t, domain.ComputeTotal(lines).IsZero())
	assert.True(t, domain.ComputeTotal(nil).IsZero())
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()

	live := &domain.Session{ExpiresAt: now.Add(time.Hour)}
	assert.False(t, live.Expired(now))

	stale := &domain.Session{ExpiresAt: now.Add(-time.Minute)}
	assert.True(t, stale.Expired(now))

	var nilSession *domain.Session
	assert.True(t, nilSession.Expired(now))
}

func TestBudgetID(t *testing.T) {
	assert.Equal(t, "budget-pc-east-2025", domain.BudgetID("pc-east", 2025))
}

func TestAuditEntryID(t *testing.T) {
	ts := time.Unix(1735689600, 123456789)
	assert.Equal(t, "audit-1735689600123456789", domain.AuditEntryID(ts))
}
