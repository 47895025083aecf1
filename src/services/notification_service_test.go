package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusbridge/placement-portal/src/models"
)

func TestFetchFeedSnapshotThenMarkRead(t *testing.T) {
	db := setupTestDB(t)
	sender, _ := createStudent(t, db, "alice")
	_, recipient := createStudent(t, db, "bob")

	for i := 0; i < 2; i++ {
		require.NoError(t, Emit(db, &models.Notification{
			RecipientID: recipient.ID,
			SenderID:    sender.ID,
			Type:        models.NotificationTypeFollow,
		}))
	}

	feed, err := FetchFeed(db, recipient)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	for _, item := range feed {
		// The snapshot carries the pre-update read flags.
		assert.False(t, item.IsRead)
		assert.Equal(t, "alice", item.Sender)
	}

	count, err := UnreadCount(db, recipient)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	feed, err = FetchFeed(db, recipient)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	for _, item := range feed {
		assert.True(t, item.IsRead)
	}
}

func TestFetchFeedNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	sender, _ := createStudent(t, db, "alice")
	_, recipient := createStudent(t, db, "bob")

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.Notification{
			RecipientID: recipient.ID,
			SenderID:    sender.ID,
			Type:        models.NotificationTypeFollow,
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		}).Error)
	}

	feed, err := FetchFeed(db, recipient)
	require.NoError(t, err)
	require.Len(t, feed, 3)
	assert.True(t, feed[0].CreatedAt.After(feed[1].CreatedAt))
	assert.True(t, feed[1].CreatedAt.After(feed[2].CreatedAt))
}

func TestFetchFeedFormatsHirePayload(t *testing.T) {
	db := setupTestDB(t)
	recruiterUser, recruiter := createRecruiter(t, db, "acme")
	_, recipient := createStudent(t, db, "bob")

	_, _, err := InitiateHiring(db, &recruiter, recruiterUser, recipient.ID, "Backend Engineer", "We liked your work")
	require.NoError(t, err)

	feed, err := FetchFeed(db, recipient)
	require.NoError(t, err)
	require.Len(t, feed, 1)

	item := feed[0]
	assert.Equal(t, models.NotificationTypeHire, item.Type)
	assert.Equal(t, "Job Title: Backend Engineer\nMessage: We liked your work", item.Data)
	require.NotNil(t, item.Hiring)
	assert.Equal(t, "Backend Engineer", item.Hiring.JobTitle)
}

func TestFetchFeedResolvesProjectRef(t *testing.T) {
	db := setupTestDB(t)
	recruiterUser, _ := createRecruiter(t, db, "acme")
	_, recipient := createStudent(t, db, "bob")
	project := createProject(t, db, recipient, "Portfolio Site")

	_, err := SendProjectHireRequest(db, recruiterUser, project.ID)
	require.NoError(t, err)

	feed, err := FetchFeed(db, recipient)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	require.NotNil(t, feed[0].Project)
	assert.Equal(t, project.ID, feed[0].Project.ID)
	assert.Equal(t, "Portfolio Site", feed[0].Project.Title)
	assert.Nil(t, feed[0].Hiring)
}

func TestListUnreadLimitAndTotal(t *testing.T) {
	db := setupTestDB(t)
	sender, _ := createStudent(t, db, "alice")
	_, recipient := createStudent(t, db, "bob")

	for i := 0; i < 12; i++ {
		require.NoError(t, Emit(db, &models.Notification{
			RecipientID: recipient.ID,
			SenderID:    sender.ID,
			Type:        models.NotificationTypeFollow,
		}))
	}

	items, total, err := ListUnread(db, recipient, 10)
	require.NoError(t, err)
	assert.Len(t, items, 10)
	assert.Equal(t, int64(12), total)

	// Polling must not consume the notifications.
	count, err := UnreadCount(db, recipient)
	require.NoError(t, err)
	assert.Equal(t, int64(12), count)
}

func TestListUnreadSkipsRead(t *testing.T) {
	db := setupTestDB(t)
	sender, _ := createStudent(t, db, "alice")
	_, recipient := createStudent(t, db, "bob")

	require.NoError(t, db.Create(&models.Notification{
		RecipientID: recipient.ID,
		SenderID:    sender.ID,
		Type:        models.NotificationTypeFollow,
		IsRead:      true,
	}).Error)
	require.NoError(t, Emit(db, &models.Notification{
		RecipientID: recipient.ID,
		SenderID:    sender.ID,
		Type:        models.NotificationTypeFollowAccepted,
	}))

	items, total, err := ListUnread(db, recipient, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, models.NotificationTypeFollowAccepted, items[0].Type)
}

func TestListUnreadParsesStructuredPayload(t *testing.T) {
	db := setupTestDB(t)
	sender, _ := createStudent(t, db, "alice")
	_, recipient := createStudent(t, db, "bob")

	data, err := models.EncodePayload(models.HirePayload{JobTitle: "Intern", Message: "Summer role"})
	require.NoError(t, err)
	require.NoError(t, Emit(db, &models.Notification{
		RecipientID: recipient.ID,
		SenderID:    sender.ID,
		Type:        models.NotificationTypeHire,
		Data:        data,
	}))

	items, _, err := ListUnread(db, recipient, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)

	parsed, ok := items[0].Data.(map[string]any)
	require.True(t, ok, fmt.Sprintf("expected decoded payload, got %T", items[0].Data))
	assert.Equal(t, "Intern", parsed["job_title"])
	assert.Equal(t, "Summer role", parsed["message"])
}

func TestFeedsAreScopedPerRecipient(t *testing.T) {
	db := setupTestDB(t)
	sender, _ := createStudent(t, db, "alice")
	_, bob := createStudent(t, db, "bob")
	_, carol := createStudent(t, db, "carol")

	require.NoError(t, Emit(db, &models.Notification{
		RecipientID: bob.ID,
		SenderID:    sender.ID,
		Type:        models.NotificationTypeFollow,
	}))

	// Bob reading his feed leaves Carol's unread state untouched, and
	// nothing of Bob's leaks into Carol's feed.
	_, err := FetchFeed(db, bob)
	require.NoError(t, err)

	feed, err := FetchFeed(db, carol)
	require.NoError(t, err)
	assert.Empty(t, feed)
}
