package access

import (
	"testing"

	domainerrors "jobtrack/internal/domain/errors"
	"jobtrack/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestEnsureOwner(t *testing.T) {
	tests := []struct {
		name    string
		owner   string
		caller  string
		wantErr bool
	}{
		{name: "same owner", owner: "u1", caller: "u1"},
		{name: "different owner", owner: "u1", caller: "u2", wantErr: true},
		{name: "missing owner", owner: "", caller: "u2", wantErr: true},
		{name: "missing caller", owner: "u1", caller: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := EnsureOwner(tt.owner, tt.caller)
			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}
			assert.True(t, errors.Is(err, domainerrors.ErrNotOwner))
		})
	}
}

func TestAllowList_Permits(t *testing.T) {
	list := NewAllowList("position", "companyName", "notes")

	assert.NoError(t, list.Permits([]string{"notes"}))
	assert.NoError(t, list.Permits([]string{"companyName", "position"}))

	err := list.Permits([]string{"notes", "userId"})
	assert.True(t, errors.Is(err, domainerrors.ErrFieldNotAllowed))

	var appErr domainerrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "not updatable: userId", appErr.Details())

	assert.NoError(t, list.Permits(nil))
	assert.NoError(t, list.Permits([]string{}))
}

func TestAllowList_Fields(t *testing.T) {
	list := NewAllowList("b", "a")

	assert.Equal(t, []string{"a", "b"}, list.Fields())
	assert.True(t, list.Contains("a"))
	assert.False(t, list.Contains("c"))
}
