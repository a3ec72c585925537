package repositories

import (
	"time"

	"github.com/google/uuid"

	"convo/domain"
	"convo/dto"
	"convo/errors"
)

// CreateUser stores a new user. Callers may supply an externally issued
// id (an authenticated principal); otherwise a fresh one is generated.
func (r *InMemoryRepository) CreateUser(req dto.CreateUserRequest) (domain.User, error) {
	var id string
	if req.ID != nil && *req.ID != "" {
		id = *req.ID
	} else {
		generated, err := uuid.NewV7()
		if err != nil {
			return domain.User{}, errors.Internal("generating user id", err)
		}
		id = generated.String()
	}

	user := domain.User{
		ID:          id,
		Username:    req.Username,
		DisplayName: req.DisplayName,
		CreatedAt:   time.Now().UTC(),
	}

	r.usersMu.Lock()
	r.users[id] = user
	r.usersMu.Unlock()

	return user, nil
}

func (r *InMemoryRepository) ReadUser(id string) (domain.User, error) {
	r.usersMu.RLock()
	defer r.usersMu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return domain.User{}, errors.NotFound("user not found")
	}
	return user, nil
}

// ReadUsers returns only the subset of ids that resolve. Callers doing
// cardinality checks compare the result length against the input.
func (r *InMemoryRepository) ReadUsers(ids []string) ([]domain.User, error) {
	r.usersMu.RLock()
	defer r.usersMu.RUnlock()

	var users []domain.User
	for _, id := range ids {
		if user, ok := r.users[id]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}

func (r *InMemoryRepository) ReadAllUsers() ([]domain.User, error) {
	r.usersMu.RLock()
	defer r.usersMu.RUnlock()

	users := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}

func (r *InMemoryRepository) UpdateUser(id string, req dto.UpdateUserRequest) (domain.User, error) {
	r.usersMu.Lock()
	defer r.usersMu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return domain.User{}, errors.NotFound("user not found")
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
		r.users[id] = user
	}

	return user, nil
}

func (r *InMemoryRepository) DeleteUser(id string) error {
	r.usersMu.Lock()
	defer r.usersMu.Unlock()

	delete(r.users, id)
	return nil
}
