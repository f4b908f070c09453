package models

// AuditAction names a recorded mutation.
type AuditAction string

const (
	AuditRegister AuditAction = "REGISTER"
	AuditLogin    AuditAction = "LOGIN"

	AuditCreateAsset AuditAction = "CREATE_ASSET"
	AuditUpdateAsset AuditAction = "UPDATE_ASSET"
	AuditDeleteAsset AuditAction = "DELETE_ASSET"

	AuditCreateTransaction AuditAction = "CREATE_TRANSACTION"
	AuditUpdateTransaction AuditAction = "UPDATE_TRANSACTION"
	AuditDeleteTransaction AuditAction = "DELETE_TRANSACTION"

	AuditCreateDividend AuditAction = "CREATE_DIVIDEND"
	AuditUpdateDividend AuditAction = "UPDATE_DIVIDEND"
	AuditDeleteDividend AuditAction = "DELETE_DIVIDEND"
)

// AuditLog is an append-only record of who changed the ledger and how.
type AuditLog struct {
	Base
	UserID       string      `gorm:"index" json:"user_id"`
	Action       AuditAction `gorm:"not null" json:"action"`
	ResourceType string      `gorm:"not null" json:"resource_type"`
	ResourceID   string      `json:"resource_id"`
	IPAddress    string      `json:"ip_address"`
	Changes      string      `json:"changes,omitempty"`
}
