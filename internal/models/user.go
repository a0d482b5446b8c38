package models

// User represents a login account. The viewer identity embedded in issued
// tokens comes from this record; WriterID links the account to its writer
// profile when one exists.
type User struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"unique;not null"`
	Password string `json:"-" gorm:"not null"`
	Name     string `json:"name"`
	Role     Role   `json:"role" gorm:"not null;default:'writer'"`
	WriterID string `json:"writerId" gorm:"column:writer_id"`
}

// TableName specifies the table name for User Model
func (User) TableName() string {
	return "users"
}

// Viewer is the transient identity on behalf of which reads and writes are
// performed. It is supplied per call and never stored.
type Viewer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}
