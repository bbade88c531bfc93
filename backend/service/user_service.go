package service

import (
	"errors"
	"fmt"
	"slices"

	"bookgram/backend/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User service functions take the database handle as a parameter so that the
// subscribe step can join the save workflow's transaction.

func GetUser(db *gorm.DB, id int64) (*model.User, error) {
	var user model.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrUserNotFound, id)
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &user, nil
}

func CreateUser(db *gorm.DB, email string, username string) (*model.User, error) {
	user := model.User{
		Email:            email,
		Username:         username,
		SubscribedTopics: datatypes.JSONSlice[string]{},
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

// SubscribeUserToTopic appends the topic to the user's subscriptions unless
// already present, preserving subscription order. The user row is saved even
// when nothing changed.
func SubscribeUserToTopic(db *gorm.DB, userID int64, topic string) (*model.User, error) {
	user, err := GetUser(db, userID)
	if err != nil {
		return nil, err
	}

	if user.SubscribedTopics == nil {
		user.SubscribedTopics = datatypes.JSONSlice[string]{}
	}
	if !slices.Contains(user.SubscribedTopics, topic) {
		user.SubscribedTopics = append(user.SubscribedTopics, topic)
	}

	if err := db.Save(user).Error; err != nil {
		return nil, fmt.Errorf("subscribe user %d to topic %s: %w", userID, topic, err)
	}
	return user, nil
}
