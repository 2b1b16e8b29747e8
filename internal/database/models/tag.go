package models

// Tag is a name-only label shared across all users
type Tag struct {
	BaseModel
	Name string `json:"name" gorm:"size:100;not null;uniqueIndex"`
}

// TableName returns the table name for Tag
func (Tag) TableName() string {
	return "tags"
}
