package model

import "time"

type UserRole string

const (
	Student  UserRole = "student"
	Educator UserRole = "educator"
)

// Account is the authentication identity: credentials only, no profile data.
// A profile row in users references it through AuthID.
type Account struct {
	BaseModel
	AuthID       string    `gorm:"size:36;uniqueIndex;not null" json:"authId"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	Disabled     bool      `gorm:"default:false" json:"disabled"`
	LastLogin    time.Time `json:"lastLogin"`
}

func (Account) TableName() string {
	return "accounts"
}

// swagger:model User
type User struct {
	BaseModel
	AccountID uint     `gorm:"index;not null" json:"-"`
	AuthID    string   `gorm:"size:36;index;not null" json:"authId"`
	Email     string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	FirstName string   `gorm:"size:100;not null" json:"firstName"`
	LastName  string   `gorm:"size:100;not null" json:"lastName"`
	Role      UserRole `gorm:"type:enum('student','educator');default:'student'" json:"role"`
}

func (User) TableName() string {
	return "users"
}

// Session is the server-side proof of authentication. It lives in redis, not
// MySQL; LastActivity drives the idle-timeout gate.
type Session struct {
	ID           string    `json:"id"`
	AccountID    uint      `json:"accountId"`
	UserID       uint      `json:"userId"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	LastActivity time.Time `json:"lastActivity"`
}
