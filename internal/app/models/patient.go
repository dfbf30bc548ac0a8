package models

import "time"

type Patient struct {
	ID                string     `json:"id" bson:"_id,omitempty"`
	UserID            string     `json:"userId" bson:"userId"`
	DateOfBirth       *time.Time `json:"dateOfBirth,omitempty" bson:"dateOfBirth,omitempty"`
	Gender            string     `json:"gender,omitempty" bson:"gender,omitempty"`
	Address           string     `json:"address,omitempty" bson:"address,omitempty"`
	PhotoObjectName   string     `json:"photo,omitempty" bson:"photoObjectName,omitempty"`
	IsProfileComplete bool       `json:"isProfileComplete" bson:"isProfileComplete"`
	TimeModel         `bson:",inline"`
}
