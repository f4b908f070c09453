package models

// AgentAction records a question answered by an agent on behalf of a user,
// together with the tool calls it made.
type AgentAction struct {
	Base
	UserID    string `gorm:"type:uuid;not null;index" json:"user_id"`
	AgentName string `gorm:"not null" json:"agent_name"`
	Question  string `gorm:"type:text;not null" json:"question"`
	ToolCalls string `gorm:"type:text" json:"tool_calls,omitempty"`
	Response  string `gorm:"type:text" json:"response"`
}
