package domain

// Item type values
const (
	ItemTypeLost  = "lost"
	ItemTypeFound = "found"
)

// Item Model
type Item struct {
	ID          uint   `gorm:"primaryKey"` // Primary key
	ItemType    string `gorm:"not null"`   // "lost" or "found"
	ItemName    string `gorm:"not null"`   // Name of the item
	Description string // Free-text description
	StudentName string // Reporter name, copied at post time
	RollNo      string // Reporter roll number, copied at post time
	Branch      string // Reporter branch, copied at post time
}
