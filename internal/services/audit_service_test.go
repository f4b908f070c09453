package services

import (
	"testing"

	"finagent/internal/models"
	"finagent/internal/testutil"
)

func TestAuditRecord(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAuditService(db)
	user := testutil.CreateTestUser(t, db)

	svc.Record(AuditEvent{
		UserID:     user.ID,
		Action:     models.AuditCreateAsset,
		Resource:   "asset",
		ResourceID: "abc",
		IPAddress:  "127.0.0.1",
		Changes:    map[string]any{"ticker": "ABC"},
	})
	svc.Record(AuditEvent{UserID: user.ID, Action: models.AuditDeleteAsset, Resource: "asset", ResourceID: "abc"})

	var entries []models.AuditLog
	if err := db.Where("user_id = ?", user.ID).Order("id ASC").Find(&entries).Error; err != nil {
		t.Fatalf("failed to read audit log: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 audit entries, got %d", len(entries))
	}
	if entries[0].Action != models.AuditCreateAsset || entries[0].Changes != `{"ticker":"ABC"}` {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Changes != "" {
		t.Errorf("expected no changes on delete, got %q", entries[1].Changes)
	}
}
