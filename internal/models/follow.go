package models

import "time"

// Follow is a directed edge recording that UserID follows FollowingID.
// The composite unique index makes the ordered pair unique at the store
// level, so duplicate follows lose the race even under concurrent creates.
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_follow_pair" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID" json:"user"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_follow_pair" json:"following_id"`
	Following   User      `gorm:"foreignKey:FollowingID" json:"following"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Follow) TableName() string {
	return "follows"
}
