package service

import (
	"errors"
	"testing"

	"bookgram/backend/model"

	"github.com/stretchr/testify/assert"
)

func TestCreateUser(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	user, err := CreateUser(model.DB, "newuser@example.com", "newuser")
	assert.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "newuser@example.com", user.Email)
	assert.Equal(t, "newuser", user.Username)
	assert.Len(t, user.SubscribedTopics, 0)
}

func TestGetUserNotFound(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	_, err := GetUser(model.DB, 424242)
	assert.True(t, errors.Is(err, ErrUserNotFound))
}

func TestSubscribeUserToTopic(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()
	user := seededUser(t)

	subscribed, err := SubscribeUserToTopic(model.DB, user.ID, "golang")
	assert.NoError(t, err)
	assert.Equal(t, []string{"golang"}, []string(subscribed.SubscribedTopics))

	// Subscribing again is a no-op, the topic stays listed once.
	subscribed, err = SubscribeUserToTopic(model.DB, user.ID, "golang")
	assert.NoError(t, err)
	assert.Equal(t, []string{"golang"}, []string(subscribed.SubscribedTopics))

	// Order of later subscriptions is preserved.
	subscribed, err = SubscribeUserToTopic(model.DB, user.ID, "databases")
	assert.NoError(t, err)
	assert.Equal(t, []string{"golang", "databases"}, []string(subscribed.SubscribedTopics))

	// State survives a reload.
	reloaded, err := GetUser(model.DB, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, []string{"golang", "databases"}, []string(reloaded.SubscribedTopics))
}

func TestSubscribeUserNotFound(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	var before int64
	assert.NoError(t, model.DB.Model(&model.User{}).Count(&before).Error)

	_, err := SubscribeUserToTopic(model.DB, 424242, "golang")
	assert.True(t, errors.Is(err, ErrUserNotFound))

	// No user was created as a side effect.
	var after int64
	assert.NoError(t, model.DB.Model(&model.User{}).Count(&after).Error)
	assert.Equal(t, before, after)
}
