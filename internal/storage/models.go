package storage

// User is the identity row. The auto-increment primary key `sub` is the
// user identifier carried through sessions and document ownership.
type User struct {
	Sub          int64  `gorm:"primaryKey;autoIncrement" json:"sub"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
}

// PostRef records post ownership in PostgreSQL. The serial post_id is
// the application-level id of the matching MongoDB document.
type PostRef struct {
	PostID int64 `gorm:"primaryKey;autoIncrement;column:post_id" json:"post_id"`
	Sub    int64 `gorm:"index;not null" json:"sub"`
}

// TripGoalFollow is one follower edge of a trip goal.
type TripGoalFollow struct {
	TripGoalID int64 `gorm:"primaryKey;autoIncrement:false;column:trip_goal_id" json:"trip_goal_id"`
	Sub        int64 `gorm:"primaryKey;autoIncrement:false" json:"sub"`
}
