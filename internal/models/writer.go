package models

// Role represents the capability level of a user or writer
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleWriter Role = "writer"
)

// WriterStatus represents whether a writer is available for assignment
type WriterStatus string

const (
	WriterActive   WriterStatus = "active"
	WriterInactive WriterStatus = "inactive"
)

// Performance holds a writer's accumulated performance figures.
// All fields default to zero on creation; AverageRating is in [0,5].
type Performance struct {
	CompletedTasks       int     `json:"completedTasks" gorm:"column:completed_tasks;default:0"`
	TotalWordCount       int     `json:"totalWordCount" gorm:"column:total_word_count;default:0"`
	DeadlinesMet         int     `json:"deadlinesMet" gorm:"column:deadlines_met;default:0"`
	AverageRating        float64 `json:"averageRating" gorm:"column:average_rating;default:0"`
	WeeklyWordCount      int     `json:"weeklyWordCount" gorm:"column:weekly_word_count;default:0"`
	WeeklyTasksCompleted int     `json:"weeklyTasksCompleted" gorm:"column:weekly_tasks_completed;default:0"`
}

// Writer represents a member of the writing team
type Writer struct {
	ID          string       `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name" gorm:"not null"`
	Email       string       `json:"email" gorm:"not null"`
	Bio         string       `json:"bio"`
	Role        Role         `json:"role" gorm:"not null;default:'writer'"`
	Expertise   StringList   `json:"expertise" gorm:"type:text"`
	Status      WriterStatus `json:"status" gorm:"not null;default:'active'"`
	TeamTags    StringList   `json:"teamTags" gorm:"column:team_tags;type:text"`
	Performance Performance  `json:"performance" gorm:"embedded;embeddedPrefix:perf_"`
}

// TableName specifies the table name for Writer Model
func (Writer) TableName() string {
	return "writers"
}
