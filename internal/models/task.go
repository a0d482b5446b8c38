package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// TaskStatus represents the status of a task in its lifecycle
type TaskStatus string

const (
	StatusPending       TaskStatus = "pending"
	StatusInProgress    TaskStatus = "in-progress"
	StatusSubmitted     TaskStatus = "submitted"
	StatusInReview      TaskStatus = "in-review"
	StatusApproved      TaskStatus = "approved"
	StatusNeedsRevision TaskStatus = "needs-revision"
)

// AllTaskStatuses lists every status a task may occupy, in lifecycle order.
var AllTaskStatuses = []TaskStatus{
	StatusPending,
	StatusInProgress,
	StatusSubmitted,
	StatusInReview,
	StatusApproved,
	StatusNeedsRevision,
}

// Valid reports whether s is a member of the enumerated status set.
func (s TaskStatus) Valid() bool {
	for _, known := range AllTaskStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// StringList stores an ordered list of strings as a JSON-encoded TEXT column.
// Used for task tags, assignees, and writer expertise/team tags.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	default:
		return errors.New("unsupported type for StringList")
	}
}

// Contains reports whether the list includes the given element.
func (l StringList) Contains(s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}

// Task represents a writing assignment in the system
type Task struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description" gorm:"not null"`
	WordCount   int        `json:"wordCount" gorm:"column:word_count;default:0"`
	Deadline    *time.Time `json:"deadline" gorm:"column:deadline"`
	AssignedTo  StringList `json:"assignedTo" gorm:"column:assigned_to;type:text"`
	Status      TaskStatus `json:"status" gorm:"not null;default:'pending'"`
	Tags        StringList `json:"tags" gorm:"type:text"`
	CreatedBy   string     `json:"createdBy" gorm:"column:created_by"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"column:created_at"`
	SubmittedAt *time.Time `json:"submittedAt" gorm:"column:submitted_at"`
	ReviewedAt  *time.Time `json:"reviewedAt" gorm:"column:reviewed_at"`
}

// TableName specifies the table name for Task Model
func (Task) TableName() string {
	return "tasks"
}

// AssignedToWriter reports whether the task is assigned to the given writer.
func (t Task) AssignedToWriter(writerID string) bool {
	return t.AssignedTo.Contains(writerID)
}
