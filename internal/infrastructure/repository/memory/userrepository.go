package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/sovoz-hq/sovoz/internal/domain/user"
)

// UserRepository is a mutex-guarded in-memory implementation of
// user.Repository for tests and development mode.
type UserRepository struct {
	mu     sync.RWMutex
	users  map[uint]*user.User
	nextID uint
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[uint]*user.User),
		nextID: 1,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email().Equals(u.Email()) {
			return fmt.Errorf("duplicate entry: email already exists")
		}
	}

	if err := u.SetID(r.nextID); err != nil {
		return err
	}
	r.users[r.nextID] = u
	r.nextID++

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.users[id], nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email().String() == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) GetByPasswordResetToken(ctx context.Context, tokenHash string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		authData := u.GetAuthData()
		if authData.PasswordResetToken != nil && *authData.PasswordResetToken == tokenHash {
			return u, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.ID()]; !ok {
		return fmt.Errorf("user not found: id=%d", u.ID())
	}
	r.users[u.ID()] = u

	return nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email().String() == email {
			return true, nil
		}
	}
	return false, nil
}
