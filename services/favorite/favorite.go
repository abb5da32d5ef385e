package favorite

import (
	"fmt"
	"sync"

	userRepo "stilrandevu/database/repository/user"
	"stilrandevu/utils"

	"go.uber.org/zap"
)

// FavoriteError is a toggle rejected before any state changes.
type FavoriteError struct {
	Code    string
	Message string
}

func (e *FavoriteError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrUnauthenticated signals that no user session is active.
var ErrUnauthenticated = &FavoriteError{Code: "unauthenticated", Message: "you must be signed in to save favorites"}

// RemoteError wraps a failed remote favorites update after local rollback.
type RemoteError struct {
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote favorites update failed: %v", e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// FavoriteService manages a user's favorite-provider set.
type FavoriteService interface {
	// Toggle flips providerID in the user's favorite set and reports the new
	// membership state.
	Toggle(userID, providerID string) (bool, error)
	// Favorites returns the user's current favorite set.
	Favorites(userID string) []string
}

// Controller implements FavoriteService with an optimistic local set: the
// toggle is applied locally first, then confirmed by exactly one remote set
// operation. A failed remote call restores the pre-toggle snapshot.
type Controller struct {
	Repo userRepo.UserRepository

	mu    sync.Mutex
	local map[string]map[string]struct{}
}

// NewController creates a favorite Controller backed by the user repository.
func NewController(repo userRepo.UserRepository) *Controller {
	return &Controller{
		Repo:  repo,
		local: make(map[string]map[string]struct{}),
	}
}

// Toggle flips membership of providerID in the user's favorite set. The local
// set is updated before the remote call so the UI reflects the change
// immediately; on remote failure the pre-toggle state is restored and the
// error surfaced. No retry is attempted.
func (c *Controller) Toggle(userID, providerID string) (bool, error) {
	if userID == "" {
		return false, ErrUnauthenticated
	}

	c.mu.Lock()
	set := c.loadLocked(userID)

	// Capture the pre-toggle snapshot for rollback.
	_, wasFavorite := set[providerID]
	if wasFavorite {
		delete(set, providerID)
	} else {
		set[providerID] = struct{}{}
	}
	nowFavorite := !wasFavorite
	c.mu.Unlock()

	var err error
	if nowFavorite {
		err = c.Repo.AddFavorite(userID, providerID)
	} else {
		err = c.Repo.RemoveFavorite(userID, providerID)
	}
	if err != nil {
		c.mu.Lock()
		if wasFavorite {
			c.local[userID][providerID] = struct{}{}
		} else {
			delete(c.local[userID], providerID)
		}
		c.mu.Unlock()
		return wasFavorite, &RemoteError{Err: err}
	}

	return nowFavorite, nil
}

// Favorites returns the user's current favorite set.
func (c *Controller) Favorites(userID string) []string {
	if userID == "" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	set := c.loadLocked(userID)
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids
}

// loadLocked returns the user's local set, fetching it from storage on first
// use. A failed fetch logs and degrades to an empty set; browsing must not
// break because favorites could not be read.
func (c *Controller) loadLocked(userID string) map[string]struct{} {
	if set, ok := c.local[userID]; ok {
		return set
	}
	set := make(map[string]struct{})
	ids, err := c.Repo.GetFavorites(userID)
	if err != nil {
		utils.GetLogger().Warn("failed to fetch favorites, starting empty", zap.String("userID", userID), zap.Error(err))
	}
	for _, id := range ids {
		set[id] = struct{}{}
	}
	c.local[userID] = set
	return set
}
