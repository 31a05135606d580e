package domain

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey"`      // Primary key
	Name     string `gorm:"not null"`        // Display name
	RollNo   string `gorm:"unique;not null"` // Unique roll number
	Branch   string // Branch/department label
	Email    string `gorm:"unique;not null"` // Unique email, login identity
	Password string `gorm:"not null"`        // Hashed password, never the plaintext
}
