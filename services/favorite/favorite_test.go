package favorite

import (
	"errors"
	"sync"
	"testing"

	"stilrandevu/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeUserRepo records favorite mutations and can be made to fail them.
type fakeUserRepo struct {
	mu          sync.Mutex
	favorites   map[string][]string
	failWrites  bool
	addCalls    int
	removeCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{favorites: make(map[string][]string)}
}

func (r *fakeUserRepo) Create(user *models.User) error                { return nil }
func (r *fakeUserRepo) GetByID(id string) (*models.User, error)       { return nil, nil }
func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (r *fakeUserRepo) UpdateSet(id string, updateDoc bson.M) error   { return nil }
func (r *fakeUserRepo) Delete(id string) error                        { return nil }

func (r *fakeUserRepo) GetFavorites(userID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.favorites[userID]...), nil
}

func (r *fakeUserRepo) AddFavorite(userID, providerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addCalls++
	if r.failWrites {
		return errors.New("write unavailable")
	}
	r.favorites[userID] = append(r.favorites[userID], providerID)
	return nil
}

func (r *fakeUserRepo) RemoveFavorite(userID, providerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removeCalls++
	if r.failWrites {
		return errors.New("write unavailable")
	}
	kept := r.favorites[userID][:0]
	for _, id := range r.favorites[userID] {
		if id != providerID {
			kept = append(kept, id)
		}
	}
	r.favorites[userID] = kept
	return nil
}

func TestToggleAddsAndRemoves(t *testing.T) {
	repo := newFakeUserRepo()
	ctrl := NewController(repo)

	isFav, err := ctrl.Toggle("user-1", "prov-1")
	require.NoError(t, err)
	assert.True(t, isFav)
	assert.Equal(t, []string{"prov-1"}, ctrl.Favorites("user-1"))

	isFav, err = ctrl.Toggle("user-1", "prov-1")
	require.NoError(t, err)
	assert.False(t, isFav)
	assert.Empty(t, ctrl.Favorites("user-1"))
}

func TestToggleExactlyOneRemoteCall(t *testing.T) {
	repo := newFakeUserRepo()
	ctrl := NewController(repo)

	_, err := ctrl.Toggle("user-1", "prov-1")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.addCalls)
	assert.Equal(t, 0, repo.removeCalls)

	_, err = ctrl.Toggle("user-1", "prov-1")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.addCalls)
	assert.Equal(t, 1, repo.removeCalls)
}

func TestToggleRollsBackOnRemoteFailure(t *testing.T) {
	repo := newFakeUserRepo()
	ctrl := NewController(repo)

	_, err := ctrl.Toggle("user-1", "prov-1")
	require.NoError(t, err)

	repo.failWrites = true
	isFav, err := ctrl.Toggle("user-1", "prov-2")
	require.Error(t, err)

	var re *RemoteError
	assert.ErrorAs(t, err, &re)
	// Reported state and local set both match the pre-toggle snapshot.
	assert.False(t, isFav)
	assert.Equal(t, []string{"prov-1"}, ctrl.Favorites("user-1"))
}

func TestToggleRollbackRestoresRemoval(t *testing.T) {
	repo := newFakeUserRepo()
	ctrl := NewController(repo)

	_, err := ctrl.Toggle("user-1", "prov-1")
	require.NoError(t, err)

	// Failed un-favorite: the provider stays favorited.
	repo.failWrites = true
	isFav, err := ctrl.Toggle("user-1", "prov-1")
	require.Error(t, err)
	assert.True(t, isFav)
	assert.Equal(t, []string{"prov-1"}, ctrl.Favorites("user-1"))
}

func TestToggleUnauthenticated(t *testing.T) {
	ctrl := NewController(newFakeUserRepo())

	_, err := ctrl.Toggle("", "prov-1")
	assert.Equal(t, ErrUnauthenticated, err)
}

func TestFavoritesLoadsFromStorage(t *testing.T) {
	repo := newFakeUserRepo()
	repo.favorites["user-1"] = []string{"prov-1", "prov-2"}
	ctrl := NewController(repo)

	assert.ElementsMatch(t, []string{"prov-1", "prov-2"}, ctrl.Favorites("user-1"))
}
