package models

// TaskTemplate is a reusable blueprint for common task shapes
// (blog post, newsletter, social copy, ...).
type TaskTemplate struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"unique;not null"`
	Description string     `json:"description" gorm:"not null"`
	WordCount   int        `json:"wordCount" gorm:"column:word_count;default:0"`
	Tags        StringList `json:"tags" gorm:"type:text"`
	Category    string     `json:"category"`
}

// TableName specifies the table name for TaskTemplate Model
func (TaskTemplate) TableName() string {
	return "task_templates"
}
