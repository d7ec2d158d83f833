// ABOUTME: Namespaced key scheme isolating each user's records in shared storage.
// ABOUTME: Per-user keys are balance_<userId>_<baseKey>; user ids never contain underscores.
package storage

import (
	"errors"
	"strings"
)

const appPrefix = "balance"

// Base keys for per-user collections.
const (
	BaseProfile     = "profile"
	BaseFoodLog     = "foodLog"
	BaseExerciseLog = "exerciseLog"
	BaseWeightLog   = "weightLog"
	BaseCustomFoods = "customFoods"
)

// Global keys, not namespaced to any user.
const (
	UsersKey      = appPrefix + "_users"
	ActiveUserKey = appPrefix + "_activeUser"
)

// ErrReservedUser is returned when a caller tries to delete the
// reserved default user's namespace.
var ErrReservedUser = errors.New("the default user cannot be deleted")

// reservedUserID mirrors models.DefaultUserID without importing models.
const reservedUserID = "default"

// NamespacedKey builds the storage key for a user's collection.
// Distinct (userID, baseKey) pairs never collide because user ids are
// validated to contain no separator characters.
func NamespacedKey(userID, baseKey string) string {
	return appPrefix + "_" + userID + "_" + baseKey
}

// UserKeyPrefix returns the prefix owning every key in a user's
// namespace. The trailing separator makes prefix matching
// segment-exact: "user-1" never matches keys of "user-12".
func UserKeyPrefix(userID string) string {
	return appPrefix + "_" + userID + "_"
}

// ValidUserID reports whether an id is usable as a namespace segment.
func ValidUserID(id string) bool {
	return id != "" && !strings.Contains(id, "_")
}

// DeleteAllForUser removes every key in the user's namespace. Deleting
// the reserved user is rejected. Global keys are never touched.
func DeleteAllForUser(gw Gateway, userID string) error {
	if userID == reservedUserID {
		return ErrReservedUser
	}
	if !ValidUserID(userID) {
		return errors.New("invalid user id: " + userID)
	}

	keys, err := gw.Keys()
	if err != nil {
		return err
	}

	prefix := UserKeyPrefix(userID)
	for _, key := range keys {
		if strings.HasPrefix(key, prefix) {
			if err := gw.Remove(key); err != nil {
				return err
			}
		}
	}
	return nil
}
