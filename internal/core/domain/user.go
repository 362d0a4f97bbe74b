package domain

// User models a registered account. Password holds the bcrypt hash of the
// credential; the plaintext is never persisted. The demo API returns records
// verbatim, so the hash is visible on read-back.
type User struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password string `gorm:"size:255;not null" json:"password"`
}

// TableName returns the table name for the User model.
func (User) TableName() string {
	return "users"
}
