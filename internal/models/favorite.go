package models

import "time"

// Favorite is a denormalized snapshot of a catalog game saved by a user.
// The copy survives upstream catalog changes; the live record is never
// joined back in.
type Favorite struct {
	ID            string    `gorm:"primaryKey;type:text" json:"id"`
	UserID        string    `gorm:"type:text;not null;uniqueIndex:idx_favorites_user_game" json:"user_id"`
	GameID        int       `gorm:"not null;uniqueIndex:idx_favorites_user_game" json:"game_id"`
	GameTitle     string    `gorm:"type:text;not null" json:"game_title"`
	GameThumbnail string    `gorm:"type:text" json:"game_thumbnail"`
	GameGenre     string    `gorm:"type:text" json:"game_genre"`
	GamePlatform  string    `gorm:"type:text" json:"game_platform"`
	CreatedAt     time.Time `gorm:"type:timestamptz;not null" json:"created_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}
