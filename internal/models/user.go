package models

import "time"

// User owns wardrobe items, outfits and at most one weather preference.
// Users are never deleted.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Password    string    `gorm:"not null" json:"-"`
	DisplayName *string   `gorm:"size:100" json:"display_name"`
	Email       *string   `gorm:"size:255" json:"email"`
	AvatarURL   *string   `gorm:"type:text" json:"avatar_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserPatch lists the mutable profile fields. Nil fields are left untouched.
type UserPatch struct {
	DisplayName *string
	Email       *string
	AvatarURL   *string
}

func (p UserPatch) Apply(u *User) {
	if p.DisplayName != nil {
		u.DisplayName = p.DisplayName
	}
	if p.Email != nil {
		u.Email = p.Email
	}
	if p.AvatarURL != nil {
		u.AvatarURL = p.AvatarURL
	}
}
