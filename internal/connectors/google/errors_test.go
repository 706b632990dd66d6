package google

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	"github.com/archeteam/workspaced/internal/core/domain"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "nil passes through",
			err:  nil,
			want: nil,
		},
		{
			name: "401 is not authorized",
			err:  &googleapi.Error{Code: 401, Message: "invalid credentials"},
			want: domain.ErrNotAuthorized,
		},
		{
			name: "403 is not authorized",
			err:  &googleapi.Error{Code: 403, Message: "insufficient permissions"},
			want: domain.ErrNotAuthorized,
		},
		{
			name: "404 is remote",
			err:  &googleapi.Error{Code: 404, Message: "gone"},
			want: domain.ErrRemote,
		},
		{
			name: "429 is remote",
			err:  &googleapi.Error{Code: 429, Message: "quota exceeded"},
			want: domain.ErrRemote,
		},
		{
			name: "500 is remote",
			err:  &googleapi.Error{Code: 500, Message: "backend error"},
			want: domain.ErrRemote,
		},
		{
			name: "transport error is remote",
			err:  errors.New("connection reset"),
			want: domain.ErrRemote,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			require.Error(t, got)
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestWrapError_PreservesProviderMessage(t *testing.T) {
	err := WrapError(&googleapi.Error{Code: 500, Message: "backend hiccup"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend hiccup")
}

func TestIsNotAuthorized(t *testing.T) {
	assert.True(t, IsNotAuthorized(WrapError(&googleapi.Error{Code: 403})))
	assert.False(t, IsNotAuthorized(WrapError(&googleapi.Error{Code: 500})))
	assert.False(t, IsNotAuthorized(nil))
}
