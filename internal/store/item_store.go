package store

import (
	"lostfound_portal/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// ItemStore persists lost/found item reports
type ItemStore struct {
	db *gorm.DB // Database handle
}

// NewItemStore returns an ItemStore bound to the given database
func NewItemStore(db *gorm.DB) *ItemStore {
	return &ItemStore{db: db}
}

// Create inserts a new item report. The reporter's identity fields are
// copied from the user at post time; later user edits never touch
// historical items.
func (s *ItemStore) Create(itemType, itemName, description string, reporter *domain.User) (*domain.Item, error) {
	item := domain.Item{
		ItemType:    itemType,      // "lost" or "found"
		ItemName:    itemName,      // Item name
		Description: description,   // Free-text description
		StudentName: reporter.Name, // Reporter snapshot
		RollNo:      reporter.RollNo,
		Branch:      reporter.Branch,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListAll returns every item report, oldest first. The board is public, so
// no viewer restriction applies.
func (s *ItemStore) ListAll() ([]domain.Item, error) {
	var items []domain.Item
	if err := s.db.Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
