// Package access holds the ownership and field-level rules shared by every owned resource.
package access

import (
	"slices"
	"sort"
	"strings"

	domainerrors "jobtrack/internal/domain/errors"
	"jobtrack/internal/errors"
)

// EnsureOwner rejects the call unless the stored owner is the caller.
func EnsureOwner(ownerID, callerID string) error {
	if ownerID == "" || callerID == "" || ownerID != callerID {
		return errors.WithStack(domainerrors.ErrNotOwner)
	}

	return nil
}

// AllowList is the closed set of fields an update may touch.
type AllowList struct {
	fields []string
}

// NewAllowList builds an AllowList from the given JSON field names.
func NewAllowList(fields ...string) AllowList {
	sorted := slices.Clone(fields)
	sort.Strings(sorted)

	return AllowList{fields: sorted}
}

// Fields returns the permitted field names in sorted order.
func (a AllowList) Fields() []string {
	return slices.Clone(a.fields)
}

// Contains reports whether field is permitted.
func (a AllowList) Contains(field string) bool {
	_, found := slices.BinarySearch(a.fields, field)

	return found
}

// Permits succeeds only when every submitted key is in the list. An empty
// submission passes and leaves the record unchanged.
func (a AllowList) Permits(keys []string) error {
	var rejected []string
	for _, key := range keys {
		if !a.Contains(key) {
			rejected = append(rejected, key)
		}
	}
	if len(rejected) > 0 {
		sort.Strings(rejected)

		return errors.WithStack(domainerrors.ErrFieldNotAllowed.WithDetails("not updatable: " + strings.Join(rejected, ", ")))
	}

	return nil
}
