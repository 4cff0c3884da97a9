package domain

import "time"

// Priority is the closed urgency enumeration for tasks.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// PriorityRankExpr ranks the textual enum by urgency inside SQL; the values
// do not sort correctly as strings.
const PriorityRankExpr = "CASE priority " +
	"WHEN 'URGENT' THEN 4 WHEN 'HIGH' THEN 3 WHEN 'MEDIUM' THEN 2 WHEN 'LOW' THEN 1 " +
	"ELSE 0 END"

type Task struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description *string    `gorm:"size:2000" json:"description"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	Priority    Priority   `gorm:"size:8;not null;default:MEDIUM;index" json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	UserID      string     `gorm:"size:36;not null;index" json:"userId"`
	CategoryID  *string    `gorm:"size:36;index" json:"categoryId"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`

	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`
}

func (Task) TableName() string { return "tasks" }

// TaskFilters narrows a task listing; zero values mean "not applied".
// Filters combine with logical AND.
type TaskFilters struct {
	Completed  *bool
	CategoryID string
	Priority   string
}

// TaskView is the external task shape with the owner and category embedded.
type TaskView struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description *string          `json:"description"`
	Completed   bool             `json:"completed"`
	Priority    Priority         `json:"priority"`
	DueDate     *time.Time       `json:"dueDate"`
	UserID      string           `json:"userId"`
	CategoryID  *string          `json:"categoryId"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	User        UserSummary      `json:"user"`
	Category    *CategorySummary `json:"category"`
}
