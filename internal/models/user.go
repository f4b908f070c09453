package models

// User is an account. Accounts are soft deleted so agent history stays attributable.
type User struct {
	Base
	SoftDelete
	Email            string        `gorm:"uniqueIndex;not null" json:"email"`
	Password         string        `gorm:"not null" json:"-"`
	FirstName        string        `json:"first_name"`
	LastName         string        `json:"last_name"`
	IsActive         bool          `gorm:"default:true" json:"is_active"`
	RefreshTokenHash string        `gorm:"size:64" json:"-"`
	AgentActions     []AgentAction `gorm:"foreignKey:UserID" json:"agent_actions,omitempty"`
}
