// ABOUTME: User directory and active-user pointer over global storage keys.
// ABOUTME: Deleting a user cascades to every key in their namespace.
package repo

import (
	"encoding/json"
	"fmt"

	"github.com/harperreed/balance/internal/models"
	"github.com/harperreed/balance/internal/storage"
)

// Users manages the user directory, which lives at global keys shared
// across all namespaces.
type Users struct {
	gw storage.Gateway
}

// NewUsers creates a directory over the given gateway.
func NewUsers(gw storage.Gateway) *Users {
	return &Users{gw: gw}
}

// EnsureDefault makes sure the reserved default user exists and that
// the active pointer points at a real user.
func (u *Users) EnsureDefault() error {
	users, err := u.List()
	if err != nil {
		return err
	}
	for _, usr := range users {
		if usr.IsDefault() {
			return u.ensureActiveValid(users)
		}
	}

	def := &models.User{ID: models.DefaultUserID, Name: "Default"}
	users = append(users, *def)
	if err := u.save(users); err != nil {
		return err
	}
	return u.ensureActiveValid(users)
}

// List returns all users. A missing or unparsable directory yields an
// empty list.
func (u *Users) List() ([]models.User, error) {
	raw, ok, err := u.gw.Get(storage.UsersKey)
	if err != nil {
		return nil, fmt.Errorf("get user directory: %w", err)
	}
	if !ok {
		return []models.User{}, nil
	}

	var users []models.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return []models.User{}, nil
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// Get returns the user with the given id, or nil.
func (u *Users) Get(id string) (*models.User, error) {
	users, err := u.List()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Create adds a new user with a generated opaque id.
func (u *Users) Create(name string) (*models.User, error) {
	users, err := u.List()
	if err != nil {
		return nil, err
	}

	user := models.NewUser(name)
	if !storage.ValidUserID(user.ID) {
		return nil, fmt.Errorf("generated invalid user id: %s", user.ID)
	}

	users = append(users, *user)
	if err := u.save(users); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user and every record in their namespace. The
// reserved default user is rejected. If the deleted user was active,
// the active pointer resets to the default user. Irreversible.
func (u *Users) Delete(id string) error {
	if id == models.DefaultUserID {
		return storage.ErrReservedUser
	}

	users, err := u.List()
	if err != nil {
		return err
	}

	kept := users[:0]
	found := false
	for _, usr := range users {
		if usr.ID == id {
			found = true
			continue
		}
		kept = append(kept, usr)
	}
	if !found {
		return fmt.Errorf("user not found: %s", id)
	}

	if err := storage.DeleteAllForUser(u.gw, id); err != nil {
		return fmt.Errorf("delete user data: %w", err)
	}
	if err := u.save(kept); err != nil {
		return err
	}

	active, err := u.ActiveID()
	if err != nil {
		return err
	}
	if active == id {
		return u.SetActive(models.DefaultUserID)
	}
	return nil
}

// ActiveID returns the id of the active user, falling back to the
// default user when the pointer is unset.
func (u *Users) ActiveID() (string, error) {
	raw, ok, err := u.gw.Get(storage.ActiveUserKey)
	if err != nil {
		return "", fmt.Errorf("get active user: %w", err)
	}
	if !ok || raw == "" {
		return models.DefaultUserID, nil
	}
	return raw, nil
}

// SetActive points the active-user pointer at the given id.
func (u *Users) SetActive(id string) error {
	user, err := u.Get(id)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user not found: %s", id)
	}
	if err := u.gw.Set(storage.ActiveUserKey, id); err != nil {
		return fmt.Errorf("set active user: %w", err)
	}
	return nil
}

func (u *Users) save(users []models.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("marshal user directory: %w", err)
	}
	if err := u.gw.Set(storage.UsersKey, string(data)); err != nil {
		return fmt.Errorf("save user directory: %w", err)
	}
	return nil
}

// ensureActiveValid resets a dangling active pointer to the default user.
func (u *Users) ensureActiveValid(users []models.User) error {
	active, err := u.ActiveID()
	if err != nil {
		return err
	}
	for _, usr := range users {
		if usr.ID == active {
			return nil
		}
	}
	return u.gw.Set(storage.ActiveUserKey, models.DefaultUserID)
}
