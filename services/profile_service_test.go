package services

import (
	"context"
	"errors"
	"testing"

	"cabin-booking-backend/cache"
	"cabin-booking-backend/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fakeGuestStore struct {
	updateErr error
	updated   []updateCall
}

func (f *fakeGuestStore) UpdateProfile(_ context.Context, guestID uint, fields map[string]interface{}) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, updateCall{id: guestID, fields: fields})
	return nil
}

func newProfileFixture(store *fakeGuestStore) (*ProfileService, *cache.MemoryViewCache) {
	views := cache.NewMemoryViewCache()
	svc := NewProfileService(store, views, zerolog.Nop())
	return svc, views
}

func TestUpdateProfileRequiresPrincipal(t *testing.T) {
	store := &fakeGuestStore{}
	svc, _ := newProfileFixture(store)

	err := svc.UpdateProfile(context.Background(), nil, UpdateProfileInput{
		NationalID:  "AB1234",
		Nationality: "French%fr",
	})

	require.ErrorIs(t, err, ErrUnauthenticated)
	require.Empty(t, store.updated)
}

func TestUpdateProfileNationalIDValidation(t *testing.T) {
	tests := []struct {
		name       string
		nationalID string
		valid      bool
	}{
		{name: "six alphanumerics", nationalID: "AB1234", valid: true},
		{name: "twelve alphanumerics", nationalID: "abcdefgh1234", valid: true},
		{name: "digits only", nationalID: "123456", valid: true},
		{name: "too short", nationalID: "AB12", valid: false},
		{name: "too long", nationalID: "ABCDEFGHIJKLM", valid: false},
		{name: "inner space", nationalID: "AB 1234", valid: false},
		{name: "punctuation", nationalID: "AB-1234", valid: false},
		{name: "non-ascii letter", nationalID: "ÅB1234", valid: false},
		{name: "empty", nationalID: "", valid: false},
	}

	principal := &models.Principal{GuestID: 42}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeGuestStore{}
			svc, _ := newProfileFixture(store)

			err := svc.UpdateProfile(context.Background(), principal, UpdateProfileInput{
				NationalID:  tt.nationalID,
				Nationality: "French%fr",
			})

			if tt.valid {
				require.NoError(t, err)
				require.Len(t, store.updated, 1)
				require.Equal(t, tt.nationalID, store.updated[0].fields["national_id"])
			} else {
				require.True(t, IsValidation(err))
				require.EqualError(t, err, "Provide a correct national ID!")
				require.Empty(t, store.updated)
			}
		})
	}
}

func TestUpdateProfileSplitsNationalityComposite(t *testing.T) {
	store := &fakeGuestStore{}
	svc, views := newProfileFixture(store)

	err := svc.UpdateProfile(context.Background(), &models.Principal{GuestID: 42}, UpdateProfileInput{
		NationalID:  "AB1234",
		Nationality: "French%fr",
	})
	require.NoError(t, err)

	require.Len(t, store.updated, 1)
	call := store.updated[0]
	require.Equal(t, uint(42), call.id)
	require.Equal(t, map[string]interface{}{
		"nationality":  "French",
		"country_flag": "fr",
		"national_id":  "AB1234",
	}, call.fields)

	require.Equal(t, []string{"views:account:profile"}, views.Keys())
}

func TestUpdateProfileRejectsMalformedComposite(t *testing.T) {
	store := &fakeGuestStore{}
	svc, _ := newProfileFixture(store)

	for _, raw := range []string{"French", "", "%fr"} {
		err := svc.UpdateProfile(context.Background(), &models.Principal{GuestID: 42}, UpdateProfileInput{
			NationalID:  "AB1234",
			Nationality: raw,
		})
		require.True(t, IsValidation(err), "composite %q should fail validation", raw)
	}
	require.Empty(t, store.updated)
}

func TestUpdateProfilePropagatesStoreFailure(t *testing.T) {
	store := &fakeGuestStore{updateErr: errors.New("connection reset")}
	svc, views := newProfileFixture(store)

	err := svc.UpdateProfile(context.Background(), &models.Principal{GuestID: 42}, UpdateProfileInput{
		NationalID:  "AB1234",
		Nationality: "French%fr",
	})

	require.True(t, IsPersistence(err))
	require.EqualError(t, err, "Guest could not be updated")
	require.Empty(t, views.Keys())
}
