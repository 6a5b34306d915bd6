// Package models holds the MongoDB document types and their derived logic.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const defaultProfileImage = "https://cdn.pixabay.com/photo/2015/10/05/22/37/blank-profile-picture-973460_1280.png"

// User is a storefront account. Password holds the bcrypt hash and is never
// serialised to JSON.
type User struct {
	ID                   primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	FirstName            string               `bson:"firstName" json:"firstName"`
	LastName             string               `bson:"lastName" json:"lastName"`
	Email                string               `bson:"email" json:"email"`
	Password             string               `bson:"password" json:"-"`
	IsAdmin              bool                 `bson:"isAdmin" json:"isAdmin"`
	ProfileImage         string               `bson:"profileImage" json:"profileImage"`
	Wishlist             []primitive.ObjectID `bson:"wishlist" json:"wishlist"`
	ResetPasswordToken   string               `bson:"resetPasswordToken,omitempty" json:"-"`
	ResetPasswordExpires time.Time            `bson:"resetPasswordExpires,omitempty" json:"-"`
	CreatedAt            time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// NewUser builds a registration-ready user with defaults applied.
// The password must already be hashed.
func NewUser(firstName, lastName, email, passwordHash string) *User {
	now := time.Now()
	return &User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		Password:     passwordHash,
		ProfileImage: defaultProfileImage,
		Wishlist:     []primitive.ObjectID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// HasActiveResetToken reports whether a reset token exists and has not expired.
func (u *User) HasActiveResetToken(now time.Time) bool {
	return u.ResetPasswordToken != "" && now.Before(u.ResetPasswordExpires)
}
