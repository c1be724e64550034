package usecase

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/flight-booking/flight-booking-client/internal/domain"
)

func pendingFixture() []domain.PendingUser {
	last := testDeparture.Add(-time.Hour)
	return []domain.PendingUser{
		{ID: "1", Username: "ann", FirstName: "Ann", LastName: "Lee", Email: "ann@x.io", ApprovalStatus: domain.ApprovalPending, RegisteredAt: testDeparture},
		{ID: "2", Username: "bob", Email: "bob@x.io", ApprovalStatus: domain.ApprovalPending, RegisteredAt: testDeparture, LastLogin: &last},
		{ID: "3", Username: "cy", Email: "cy@x.io", ApprovalStatus: domain.ApprovalRejected, RegisteredAt: testDeparture},
	}
}

func userIDs(v *AdminView) []string {
	ids := make([]string, len(v.Users))
	for i, u := range v.Users {
		ids[i] = u.ID
	}
	return ids
}

func newAdminFixture(t *testing.T) (*domain.MockAdminAPI, AdminUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := domain.NewMockAdminAPI(ctrl)
	api.EXPECT().ListPendingUsers(gomock.Any()).Return(pendingFixture(), nil)
	uc := NewAdminUseCase(api, newFakeNavigator(), nil, nil)
	_, err := uc.Load(context.Background())
	require.NoError(t, err)
	return api, uc
}

func TestAdminUseCase_Load(t *testing.T) {
	_, uc := newAdminFixture(t)

	v, err := uc.View()
	require.NoError(t, err)
	assert.Equal(t, 2, v.PendingCount)
	assert.Equal(t, "Ann Lee", v.Users[0].DisplayName)
	assert.Equal(t, "A", v.Users[0].Initial)
	assert.Equal(t, MsgNeverLoggedIn, v.Users[0].LastLogin)
	assert.Equal(t, "bob", v.Users[1].DisplayName)
	assert.Equal(t, "Dec 15, 2025 07:00", v.Users[1].LastLogin)
}

func TestAdminUseCase_LoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := domain.NewMockAdminAPI(ctrl)
	api.EXPECT().ListPendingUsers(gomock.Any()).Return(nil, domain.NewAPIError(http.StatusForbidden, "", nil))
	uc := NewAdminUseCase(api, newFakeNavigator(), nil, nil)

	_, err := uc.Load(context.Background())
	ve, ok := AsViewError(err)
	require.True(t, ok)
	assert.Equal(t, MsgPendingLoadFailed, ve.Message)

	_, err = uc.Review(context.Background(), "1", domain.ActionApprove)
	assert.ErrorIs(t, err, domain.ErrViewNotLoaded)
}

func TestAdminUseCase_ReviewRemovesOnSuccess(t *testing.T) {
	tests := []struct {
		action  domain.ApprovalAction
		wantMsg string
	}{
		{action: domain.ActionApprove, wantMsg: "User approved successfully!"},
		{action: domain.ActionReject, wantMsg: "User rejected successfully!"},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			api, uc := newAdminFixture(t)
			api.EXPECT().ReviewUser(gomock.Any(), "2", tt.action).Return(nil)

			res, err := uc.Review(context.Background(), "2", tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMsg, res.Message)
			assert.Equal(t, []string{"1", "3"}, userIDs(res.View))
			assert.Equal(t, 1, res.View.PendingCount)
		})
	}
}

func TestAdminUseCase_ReviewFailureKeepsUser(t *testing.T) {
	api, uc := newAdminFixture(t)
	api.EXPECT().ReviewUser(gomock.Any(), "1", domain.ActionReject).Return(domain.NewAPIError(500, "", nil))

	_, err := uc.Review(context.Background(), "1", domain.ActionReject)
	ve, ok := AsViewError(err)
	require.True(t, ok)
	assert.Equal(t, "Failed to reject user. Please try again.", ve.Message)

	v, err := uc.View()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, userIDs(v))
	assert.False(t, v.Users[0].Processing)
}

func TestAdminUseCase_ReviewValidation(t *testing.T) {
	_, uc := newAdminFixture(t)

	_, err := uc.Review(context.Background(), "1", "ban")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	_, err = uc.Review(context.Background(), "42", domain.ActionApprove)
	assert.ErrorIs(t, err, domain.ErrUserNotPending)
}

func TestAdminUseCase_ActionsOnDifferentUsersDoNotBlock(t *testing.T) {
	api, uc := newAdminFixture(t)

	release := make(chan struct{})
	entered := make(chan struct{})
	api.EXPECT().ReviewUser(gomock.Any(), "1", domain.ActionApprove).DoAndReturn(
		func(context.Context, string, domain.ApprovalAction) error {
			close(entered)
			<-release
			return nil
		},
	)
	api.EXPECT().ReviewUser(gomock.Any(), "2", domain.ActionReject).Return(nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := uc.Review(context.Background(), "1", domain.ActionApprove)
		assert.NoError(t, err)
	}()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("first review never reached the API")
	}

	v, err := uc.View()
	require.NoError(t, err)
	assert.True(t, v.Users[0].Processing)

	_, err = uc.Review(context.Background(), "1", domain.ActionReject)
	assert.ErrorIs(t, err, domain.ErrActionInProgress)

	// The second user is reviewed while the first call is still in flight.
	res, err := uc.Review(context.Background(), "2", domain.ActionReject)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, userIDs(res.View))

	close(release)
	wg.Wait()

	v, err = uc.View()
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, userIDs(v))
	assert.Empty(t, v.EmptyMessage)
}
