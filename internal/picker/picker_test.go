// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package picker

import (
	"context"
	"errors"
	"testing"

	"github.com/ncruces/zenity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeNative(path string, err error, calls *int) *Native {
	return &Native{
		Title: "Select a folder",
		selectFile: func(options ...zenity.Option) (string, error) {
			*calls++
			return path, err
		},
	}
}

func TestNativePick(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		err        error
		want       string
		wantCancel bool
		wantErr    bool
	}{
		{name: "folder chosen", path: "/home/me/icons", want: "/home/me/icons"},
		{name: "dialog cancelled", err: zenity.ErrCanceled, wantCancel: true},
		{name: "empty selection counts as cancel", path: "", wantCancel: true},
		{name: "dialog backend missing", err: errors.New("zenity: not found"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int
			got, err := fakeNative(tt.path, tt.err, &calls).Pick(context.Background(), InitialDir)
			assert.Equal(t, 1, calls)

			switch {
			case tt.wantCancel:
				assert.ErrorIs(t, err, ErrCanceled)
			case tt.wantErr:
				require.Error(t, err)
				assert.NotErrorIs(t, err, ErrCanceled)
				assert.Contains(t, err.Error(), "opening folder dialog")
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestStaticPick(t *testing.T) {
	got, err := Static{Dir: "assets"}.Pick(context.Background(), InitialDir)
	require.NoError(t, err)
	assert.Equal(t, "assets", got)

	_, err = Static{}.Pick(context.Background(), InitialDir)
	assert.ErrorIs(t, err, ErrCanceled)
}

func TestFor(t *testing.T) {
	assert.Equal(t, Static{Dir: "assets"}, For("assets", "title"))

	n, ok := For("", "Pick SVG folder").(*Native)
	require.True(t, ok)
	assert.Equal(t, "Pick SVG folder", n.Title)
	assert.NotNil(t, n.selectFile)
}
