package models

import "time"

type File struct {
	ID        string    `bson:"_id,omitempty"`
	Name      string    `bson:"name"`
	Path      string    `bson:"path"`
	URL       string    `bson:"url"`
	OwnerID   string    `bson:"ownerId"`
	CreatedAt time.Time `bson:"createdAt"`
}
