package models

import "time"

type TimeModel struct {
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" bson:"updatedAt"`
}

type User struct {
	ID           string `bson:"_id,omitempty"`
	Name         string `bson:"name"`
	Email        string `bson:"email"`
	Password     string `bson:"password"`
	Provider     bool   `bson:"provider"`
	AvatarFileID string `bson:"avatarFileId,omitempty"`
	TimeModel    `bson:",inline"`
}
