package models

import "time"

// CommunityNews is a user-submitted article. Only the owning user may update
// or delete it.
type CommunityNews struct {
	ID         string    `gorm:"primaryKey;type:text" json:"id"`
	UserID     string    `gorm:"type:text;index;not null" json:"user_id"`
	Title      string    `gorm:"type:text;not null" json:"title"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	ImageURL   *string   `gorm:"type:text" json:"image_url"`
	AuthorName string    `gorm:"type:text;not null" json:"author_name"`
	CreatedAt  time.Time `gorm:"type:timestamptz;not null;index" json:"created_at"`
	UpdatedAt  time.Time `gorm:"type:timestamptz;not null" json:"updated_at"`
}

func (CommunityNews) TableName() string {
	return "news"
}
