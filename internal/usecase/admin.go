package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/flight-booking/flight-booking-client/internal/domain"
	"github.com/flight-booking/flight-booking-client/internal/infrastructure/logger"
	"github.com/flight-booking/flight-booking-client/internal/infrastructure/timeutil"
	"github.com/flight-booking/flight-booking-client/internal/navigation"
)

// Admin view messages.
const (
	MsgPendingLoadFailed = "Failed to load pending users. Please try again."
	MsgNoPendingUsers    = "No pending user registrations at the moment."
	MsgNeverLoggedIn     = "Never"
)

// PendingUserCard is one row of the approval list.
type PendingUserCard struct {
	ID           string                `json:"id"`
	Username     string                `json:"username"`
	DisplayName  string                `json:"display_name"`
	Initial      string                `json:"initial"`
	Email        string                `json:"email"`
	Phone        string                `json:"phone,omitempty"`
	Status       domain.ApprovalStatus `json:"approval_status"`
	RegisteredOn string                `json:"registered_on"`
	LastLogin    string                `json:"last_login"`
	Processing   bool                  `json:"processing"`
}

// AdminView is the rendered approval page.
type AdminView struct {
	Users        []PendingUserCard `json:"users"`
	PendingCount int               `json:"pending_count"`
	EmptyMessage string            `json:"empty_message,omitempty"`
}

// ReviewResult is the outcome of a successful approve or reject.
type ReviewResult struct {
	Message string     `json:"message"`
	View    *AdminView `json:"view"`
}

// AdminUseCase defines the admin approval view.
type AdminUseCase interface {
	// Load fetches the pending users once for a view activation.
	Load(ctx context.Context) (*AdminView, error)

	// Review approves or rejects a listed user. On success the user is
	// removed from the local list without a re-fetch.
	Review(ctx context.Context, userID string, action domain.ApprovalAction) (*ReviewResult, error)

	// View returns the current list.
	View() (*AdminView, error)
}

type adminUseCase struct {
	api     domain.AdminAPI
	nav     Navigator
	display *timeutil.Display
	log     *logger.Logger

	// mu guards the list and the processing set; it is never held during a call
	mu         sync.Mutex
	loaded     bool
	users      []domain.PendingUser
	processing map[string]bool
}

// NewAdminUseCase creates an AdminUseCase.
func NewAdminUseCase(api domain.AdminAPI, nav Navigator, display *timeutil.Display, log *logger.Logger) AdminUseCase {
	if display == nil {
		display = timeutil.UTCDisplay()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &adminUseCase{
		api:        api,
		nav:        nav,
		display:    display,
		log:        log.WithComponent("admin"),
		processing: make(map[string]bool),
	}
}

func (uc *adminUseCase) Load(ctx context.Context) (*AdminView, error) {
	uc.nav.Navigate(navigation.PathAdmin)

	users, err := uc.api.ListPendingUsers(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("failed to load pending users")
		return nil, failure(MsgPendingLoadFailed, err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.users = users
	uc.loaded = true
	uc.processing = make(map[string]bool)
	return uc.viewLocked(), nil
}

func (uc *adminUseCase) Review(ctx context.Context, userID string, action domain.ApprovalAction) (*ReviewResult, error) {
	if action != domain.ActionApprove && action != domain.ActionReject {
		return nil, fmt.Errorf("%w: unknown action %q", domain.ErrInvalidRequest, action)
	}

	uc.mu.Lock()
	if !uc.loaded {
		uc.mu.Unlock()
		return nil, domain.ErrViewNotLoaded
	}
	if uc.indexLocked(userID) < 0 {
		uc.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotPending, userID)
	}
	if uc.processing[userID] {
		uc.mu.Unlock()
		return nil, domain.ErrActionInProgress
	}
	uc.processing[userID] = true
	uc.mu.Unlock()

	err := uc.api.ReviewUser(context.WithoutCancel(ctx), userID, action)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.processing, userID)

	if err != nil {
		uc.log.Warn().Err(err).Str("user_id", userID).Str("action", string(action)).Msg("review failed")
		return nil, failure(fmt.Sprintf("Failed to %s user. Please try again.", action), err)
	}

	if i := uc.indexLocked(userID); i >= 0 {
		uc.users = append(uc.users[:i:i], uc.users[i+1:]...)
	}
	uc.log.Info().Str("user_id", userID).Str("action", string(action)).Msg("user reviewed")
	return &ReviewResult{
		Message: fmt.Sprintf("User %s successfully!", action.PastTense()),
		View:    uc.viewLocked(),
	}, nil
}

func (uc *adminUseCase) View() (*AdminView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.loaded {
		return nil, domain.ErrViewNotLoaded
	}
	return uc.viewLocked(), nil
}

func (uc *adminUseCase) indexLocked(userID string) int {
	for i, u := range uc.users {
		if u.ID == userID {
			return i
		}
	}
	return -1
}

func (uc *adminUseCase) viewLocked() *AdminView {
	view := &AdminView{Users: make([]PendingUserCard, 0, len(uc.users))}
	for _, u := range uc.users {
		if u.ApprovalStatus == domain.ApprovalPending {
			view.PendingCount++
		}
		last := MsgNeverLoggedIn
		if u.LastLogin != nil {
			last = uc.display.DateTime(*u.LastLogin)
		}
		view.Users = append(view.Users, PendingUserCard{
			ID:           u.ID,
			Username:     u.Username,
			DisplayName:  u.DisplayName(),
			Initial:      u.Initial(),
			Email:        u.Email,
			Phone:        u.Phone,
			Status:       u.ApprovalStatus,
			RegisteredOn: uc.display.DateTime(u.RegisteredAt),
			LastLogin:    last,
			Processing:   uc.processing[u.ID],
		})
	}
	if len(view.Users) == 0 {
		view.EmptyMessage = MsgNoPendingUsers
	}
	return view
}
