package domain

import "time"

// DefaultColor is assigned when a category is created without one.
const DefaultColor = "#3B82F6"

type Category struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:191;not null" json:"name"`
	Description *string   `gorm:"size:500" json:"description"`
	Color       string    `gorm:"size:7;not null;default:#3B82F6" json:"color"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Deleting a category detaches its tasks instead of deleting them.
	Tasks []Task `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"-"`
}

func (Category) TableName() string { return "categories" }

// CategoryView is the external category shape with its task count.
type CategoryView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	TaskCount   int64     `json:"taskCount"`
}

// CategorySummary is the category shape embedded in task responses.
type CategorySummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
