package models

import "time"

type TimeModel struct {
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}

// User is the shared account identity. Role decides which profile document
// (Patient, Doctor, Admin) carries the role-specific payload.
type User struct {
	ID         string     `json:"id" bson:"_id,omitempty"`
	Phone      string     `json:"phone" bson:"phone"`
	Password   string     `json:"-" bson:"password"`
	Role       string     `json:"role" bson:"role"`
	FirstName  string     `json:"firstName" bson:"firstName"`
	LastName   string     `json:"lastName" bson:"lastName"`
	Email      string     `json:"email,omitempty" bson:"email,omitempty"`
	IsVerified bool       `json:"isVerified" bson:"isVerified"`
	IsActive   bool       `json:"isActive" bson:"isActive"`
	LastLogin  *time.Time `json:"lastLogin,omitempty" bson:"lastLogin,omitempty"`
	TimeModel  `bson:",inline"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
