package models

import "time"

type AdminActivity struct {
	Action    string    `json:"action" bson:"action"`
	Details   string    `json:"details,omitempty" bson:"details,omitempty"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

type Admin struct {
	ID           string          `json:"id" bson:"_id,omitempty"`
	UserID       string          `json:"userId" bson:"userId"`
	Permissions  []string        `json:"permissions" bson:"permissions"`
	LastActivity time.Time       `json:"lastActivity" bson:"lastActivity"`
	ActivityLog  []AdminActivity `json:"-" bson:"activityLog,omitempty"`
	TimeModel    `bson:",inline"`
}

func (a *Admin) HasPermission(permission string) bool {
	for _, p := range a.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}
