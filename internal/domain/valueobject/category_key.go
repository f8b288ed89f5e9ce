package valueobject

import "github.com/google/uuid"

// CategoryKey identifies a breakdown bucket: either a concrete category or
// the Uncategorized bucket. The zero value is Uncategorized.
type CategoryKey struct {
	id          uuid.UUID
	categorized bool
}

// CategoryKeyFor returns the key for an optional category id.
func CategoryKeyFor(id *uuid.UUID) CategoryKey {
	if id == nil {
		return UncategorizedKey()
	}
	return CategoryKey{id: *id, categorized: true}
}

// UncategorizedKey returns the bucket for transactions without a category.
func UncategorizedKey() CategoryKey {
	return CategoryKey{}
}

// IsUncategorized reports whether the key is the Uncategorized bucket.
func (k CategoryKey) IsUncategorized() bool {
	return !k.categorized
}

// ID returns the category id, or uuid.Nil for the Uncategorized bucket.
func (k CategoryKey) ID() uuid.UUID {
	if !k.categorized {
		return uuid.Nil
	}
	return k.id
}
