package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type postgresRepository struct {
	db *gorm.DB
}

func NewPostgresRepository(db *gorm.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateUser(username, passwordHash string) (int64, error) {
	u := User{Username: username, PasswordHash: passwordHash}
	err := r.db.Create(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrUsernameTaken
		}
		return 0, err
	}
	return u.Sub, nil
}

func (r *postgresRepository) GetUserByUsername(username string) (*User, error) {
	var u User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *postgresRepository) GetUserBySub(sub int64) (*User, error) {
	var u User
	if err := r.db.First(&u, sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *postgresRepository) CreatePostRef(sub int64) (int64, error) {
	ref := PostRef{Sub: sub}
	if err := r.db.Create(&ref).Error; err != nil {
		return 0, err
	}
	return ref.PostID, nil
}

func (r *postgresRepository) DeletePostRef(postID int64) error {
	return r.db.Delete(&PostRef{}, "post_id = ?", postID).Error
}

func (r *postgresRepository) FollowTripGoal(tripGoalID, sub int64) error {
	// Re-following is a no-op at the relational layer; the document
	// layer rejects duplicates before this runs.
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&TripGoalFollow{TripGoalID: tripGoalID, Sub: sub}).Error
}

func (r *postgresRepository) UnfollowTripGoal(tripGoalID, sub int64) error {
	return r.db.Delete(&TripGoalFollow{}, "trip_goal_id = ? AND sub = ?", tripGoalID, sub).Error
}

func (r *postgresRepository) FollowedTripGoalIDs(sub int64) ([]int64, error) {
	var ids []int64
	err := r.db.Model(&TripGoalFollow{}).Where("sub = ?", sub).
		Pluck("trip_goal_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *postgresRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
