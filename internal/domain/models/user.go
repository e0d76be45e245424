package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User mirrors the auth provider's users collection. This service never writes
// to it.
type User struct {
	Id    primitive.ObjectID `bson:"_id" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Image string             `bson:"image,omitempty" json:"image,omitempty"`
}
