package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusbridge/placement-portal/src/models"
)

func TestRequestFollowCreatesPendingEdge(t *testing.T) {
	db := setupTestDB(t)
	follower, _ := createStudent(t, db, "alice")
	_, target := createStudent(t, db, "bob")

	result, err := RequestFollow(db, follower, target.ID)
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, models.FollowStatusPending, result.Status)

	notifications := notificationsFor(t, db, target.ID)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationTypeFollow, notifications[0].Type)
	assert.Equal(t, follower.ID, notifications[0].SenderID)
	assert.False(t, notifications[0].IsRead)
}

func TestRequestFollowDuplicateKeepsSingleEdge(t *testing.T) {
	db := setupTestDB(t)
	follower, _ := createStudent(t, db, "alice")
	_, target := createStudent(t, db, "bob")

	first, err := RequestFollow(db, follower, target.ID)
	require.NoError(t, err)
	require.True(t, first.Created)

	second, err := RequestFollow(db, follower, target.ID)
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, models.FollowStatusPending, second.Status)

	var edges int64
	require.NoError(t, db.Model(&models.StudentFollow{}).
		Where("follower_id = ? AND following_id = ?", follower.ID, target.ID).
		Count(&edges).Error)
	assert.Equal(t, int64(1), edges)

	// No second notification for the duplicate request either.
	assert.Len(t, notificationsFor(t, db, target.ID), 1)
}

func TestRequestFollowSelfRejected(t *testing.T) {
	db := setupTestDB(t)
	user, student := createStudent(t, db, "alice")

	_, err := RequestFollow(db, user, student.ID)
	assert.ErrorIs(t, err, ErrSelfAction)
}

func TestRequestFollowUnknownStudent(t *testing.T) {
	db := setupTestDB(t)
	follower := createUser(t, db, "alice")

	_, err := RequestFollow(db, follower, 4242)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveFollowRequestAccept(t *testing.T) {
	db := setupTestDB(t)
	follower, followerProfile := createStudent(t, db, "alice")
	owner, target := createStudent(t, db, "bob")

	_, err := RequestFollow(db, follower, target.ID)
	require.NoError(t, err)

	var edge models.StudentFollow
	require.NoError(t, db.Where("follower_id = ?", follower.ID).First(&edge).Error)

	count, err := ResolveFollowRequest(db, owner, edge.ID, "accept")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, db.First(&edge, edge.ID).Error)
	assert.Equal(t, models.FollowStatusAccepted, edge.Status)

	// The original follower hears back on their own feed.
	notifications := notificationsFor(t, db, followerProfile.ID)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationTypeFollowAccepted, notifications[0].Type)
	assert.Equal(t, owner.ID, notifications[0].SenderID)
}

func TestResolveFollowRequestReject(t *testing.T) {
	db := setupTestDB(t)
	follower, followerProfile := createStudent(t, db, "alice")
	owner, target := createStudent(t, db, "bob")

	_, err := RequestFollow(db, follower, target.ID)
	require.NoError(t, err)

	var edge models.StudentFollow
	require.NoError(t, db.Where("follower_id = ?", follower.ID).First(&edge).Error)

	count, err := ResolveFollowRequest(db, owner, edge.ID, "reject")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, db.First(&edge, edge.ID).Error)
	assert.Equal(t, models.FollowStatusRejected, edge.Status)
	assert.Empty(t, notificationsFor(t, db, followerProfile.ID))
}

func TestResolveFollowRequestOnlyOwner(t *testing.T) {
	db := setupTestDB(t)
	follower, _ := createStudent(t, db, "alice")
	_, target := createStudent(t, db, "bob")
	stranger, _ := createStudent(t, db, "carol")

	_, err := RequestFollow(db, follower, target.ID)
	require.NoError(t, err)

	var edge models.StudentFollow
	require.NoError(t, db.Where("follower_id = ?", follower.ID).First(&edge).Error)

	_, err = ResolveFollowRequest(db, stranger, edge.ID, "accept")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestResolveFollowRequestTwice(t *testing.T) {
	db := setupTestDB(t)
	follower, _ := createStudent(t, db, "alice")
	owner, target := createStudent(t, db, "bob")

	_, err := RequestFollow(db, follower, target.ID)
	require.NoError(t, err)

	var edge models.StudentFollow
	require.NoError(t, db.Where("follower_id = ?", follower.ID).First(&edge).Error)

	_, err = ResolveFollowRequest(db, owner, edge.ID, "accept")
	require.NoError(t, err)

	_, err = ResolveFollowRequest(db, owner, edge.ID, "reject")
	assert.ErrorIs(t, err, ErrAlreadyResolved)
}

func TestResolveFollowRequestInvalidAction(t *testing.T) {
	db := setupTestDB(t)
	follower, _ := createStudent(t, db, "alice")
	owner, target := createStudent(t, db, "bob")

	_, err := RequestFollow(db, follower, target.ID)
	require.NoError(t, err)

	var edge models.StudentFollow
	require.NoError(t, db.Where("follower_id = ?", follower.ID).First(&edge).Error)

	_, err = ResolveFollowRequest(db, owner, edge.ID, "maybe")
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestResolveFollowRequestRecruiterFollower(t *testing.T) {
	db := setupTestDB(t)
	// Recruiters can follow students but have no feed of their own.
	recruiterUser, _ := createRecruiter(t, db, "acme")
	owner, target := createStudent(t, db, "bob")

	_, err := RequestFollow(db, recruiterUser, target.ID)
	require.NoError(t, err)

	var edge models.StudentFollow
	require.NoError(t, db.Where("follower_id = ?", recruiterUser.ID).First(&edge).Error)

	count, err := ResolveFollowRequest(db, owner, edge.ID, "accept")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	var emitted int64
	require.NoError(t, db.Model(&models.Notification{}).
		Where("type = ?", models.NotificationTypeFollowAccepted).
		Count(&emitted).Error)
	assert.Equal(t, int64(0), emitted)
}

func TestToggleFollowInvolution(t *testing.T) {
	db := setupTestDB(t)
	follower, _ := createStudent(t, db, "alice")
	_, target := createStudent(t, db, "bob")

	following, err := ToggleFollow(db, follower, target.ID)
	require.NoError(t, err)
	assert.True(t, following)

	following, err = ToggleFollow(db, follower, target.ID)
	require.NoError(t, err)
	assert.False(t, following)

	var edges int64
	require.NoError(t, db.Model(&models.StudentFollow{}).
		Where("follower_id = ?", follower.ID).Count(&edges).Error)
	assert.Equal(t, int64(0), edges)

	// A third toggle re-creates the edge fresh, back in the pending state.
	following, err = ToggleFollow(db, follower, target.ID)
	require.NoError(t, err)
	assert.True(t, following)

	status, err := FollowStatusFor(db, follower, target.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.FollowStatusPending), status)
}

func TestToggleFollowRemovesAcceptedEdge(t *testing.T) {
	db := setupTestDB(t)
	follower, _ := createStudent(t, db, "alice")
	owner, target := createStudent(t, db, "bob")

	_, err := RequestFollow(db, follower, target.ID)
	require.NoError(t, err)

	var edge models.StudentFollow
	require.NoError(t, db.Where("follower_id = ?", follower.ID).First(&edge).Error)
	_, err = ResolveFollowRequest(db, owner, edge.ID, "accept")
	require.NoError(t, err)

	following, err := ToggleFollow(db, follower, target.ID)
	require.NoError(t, err)
	assert.False(t, following)

	count, err := FollowerCount(db, target.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestToggleFollowSelfRejected(t *testing.T) {
	db := setupTestDB(t)
	user, student := createStudent(t, db, "alice")

	_, err := ToggleFollow(db, user, student.ID)
	assert.ErrorIs(t, err, ErrSelfAction)
}

func TestFollowCountsOnlyAccepted(t *testing.T) {
	db := setupTestDB(t)
	alice, _ := createStudent(t, db, "alice")
	carol, _ := createStudent(t, db, "carol")
	owner, target := createStudent(t, db, "bob")

	_, err := RequestFollow(db, alice, target.ID)
	require.NoError(t, err)
	_, err = RequestFollow(db, carol, target.ID)
	require.NoError(t, err)

	var edge models.StudentFollow
	require.NoError(t, db.Where("follower_id = ?", alice.ID).First(&edge).Error)
	_, err = ResolveFollowRequest(db, owner, edge.ID, "accept")
	require.NoError(t, err)

	followers, err := FollowerCount(db, target.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), followers)

	followingAlice, err := FollowingCount(db, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), followingAlice)

	followingCarol, err := FollowingCount(db, carol.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), followingCarol)
}

func TestFollowStatusForNoEdge(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "alice")
	_, target := createStudent(t, db, "bob")

	status, err := FollowStatusFor(db, user, target.ID)
	require.NoError(t, err)
	assert.Equal(t, "none", status)
}
