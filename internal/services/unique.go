package services

import "wardrobe/internal/models"

// uniqueLookup finds the current owner of a unique-keyed value,
// reporting its identifier. found is false when the value is free.
type uniqueLookup func(value string) (ownerID string, found bool, err error)

// ensureUnique rejects a value that already belongs to a record other
// than excludeID. An empty excludeID means a create, where any owner
// is a collision. The check is advisory under concurrent writers; the
// store's unique index is the final authority and its violation is
// translated to the same ConflictError by the repositories.
func ensureUnique(lookup uniqueLookup, field, value, excludeID string) error {
	ownerID, found, err := lookup(value)
	if err != nil {
		return err
	}
	if found && (excludeID == "" || ownerID != excludeID) {
		return &models.ConflictError{Field: field, Value: value}
	}
	return nil
}

// colorNameLookup adapts a ColorRepository name lookup to uniqueLookup.
func colorNameLookup(find func(string) (*models.Color, error)) uniqueLookup {
	return func(value string) (string, bool, error) {
		c, err := find(value)
		if err != nil || c == nil {
			return "", false, err
		}
		return c.ID, true, nil
	}
}

// typeNameLookup adapts a ClothesTypeRepository name lookup to
// uniqueLookup.
func typeNameLookup(find func(string) (*models.ClothesType, error)) uniqueLookup {
	return func(value string) (string, bool, error) {
		ct, err := find(value)
		if err != nil || ct == nil {
			return "", false, err
		}
		return ct.ID, true, nil
	}
}

// userLookup adapts a UserRepository username/email lookup to
// uniqueLookup.
func userLookup(find func(string) (*models.User, error)) uniqueLookup {
	return func(value string) (string, bool, error) {
		u, err := find(value)
		if err != nil || u == nil {
			return "", false, err
		}
		return u.ID, true, nil
	}
}
