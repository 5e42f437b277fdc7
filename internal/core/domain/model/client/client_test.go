package client_test

import (
	"strings"
	"testing"
	"time"

	"boutique/internal/core/domain/model/client"
	"boutique/internal/core/domain/model/kernel"
	"boutique/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func mustMobile(t *testing.T, s string) kernel.Mobile {
	t.Helper()
	m, err := kernel.NewMobile(s)
	require.NoError(t, err)
	return m
}

func TestNewClient(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		email, err := kernel.NewEmail("priya@example.com")
		require.NoError(t, err)

		c, err := client.NewClient("  Priya Sharma ", mustMobile(t, "9876543210"), email, "12 MG Road", now)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Priya Sharma", c.Name())
		assert.Equal(t, "9876543210", c.Mobile().String())
		assert.Equal(t, "priya@example.com", c.Email().String())
		assert.Equal(t, "12 MG Road", c.Address())
		assert.Equal(t, now, c.CreatedAt())
		assert.Equal(t, now, c.UpdatedAt())
		assert.Zero(t, c.ID())
	})

	t.Run("collects every field error", func(t *testing.T) {
		_, err := client.NewClient(" ", kernel.Mobile{}, kernel.Email{}, strings.Repeat("x", client.MaxAddressLength+1), now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "address")
	})

	t.Run("name too long", func(t *testing.T) {
		_, err := client.NewClient(strings.Repeat("a", client.MaxNameLength+1), mustMobile(t, "9876543210"), kernel.Email{}, "", now)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestClient_ValidateZeroValue(t *testing.T) {
	var c client.Client
	assert.ErrorIs(t, c.Validate(), client.ErrClientIsNotConstructed)

	var nilClient *client.Client
	assert.ErrorIs(t, nilClient.Validate(), client.ErrClientIsNotConstructed)
}

func TestRestoreClient(t *testing.T) {
	updated := now.Add(time.Hour)

	c, err := client.RestoreClient(7, "Anita", mustMobile(t, "9123456780"), kernel.Email{}, "", now, updated)

	require.NoError(t, err)
	assert.EqualValues(t, 7, c.ID())
	assert.Equal(t, updated, c.UpdatedAt())

	_, err = client.RestoreClient(0, "Anita", mustMobile(t, "9123456780"), kernel.Email{}, "", now, updated)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestClient_Update(t *testing.T) {
	c, err := client.NewClient("Priya", mustMobile(t, "9876543210"), kernel.Email{}, "", now)
	require.NoError(t, err)
	later := now.Add(time.Hour)

	t.Run("partial update", func(t *testing.T) {
		name := "Priya S"
		email, _ := kernel.NewEmail("p@example.com")

		err := c.Update(client.Changes{Name: &name, Email: &email}, later)

		require.NoError(t, err)
		assert.Equal(t, "Priya S", c.Name())
		assert.Equal(t, "p@example.com", c.Email().String())
		assert.Equal(t, "9876543210", c.Mobile().String())
		assert.Equal(t, later, c.UpdatedAt())
	})

	t.Run("clear email", func(t *testing.T) {
		err := c.Update(client.Changes{Email: &kernel.Email{}}, later)

		require.NoError(t, err)
		assert.False(t, c.Email().IsPresent())
	})

	t.Run("invalid change leaves the client untouched", func(t *testing.T) {
		empty := ""
		mobile := mustMobile(t, "9000000000")

		err := c.Update(client.Changes{Name: &empty, Mobile: &mobile}, later.Add(time.Hour))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, "Priya S", c.Name())
		assert.Equal(t, "9876543210", c.Mobile().String())
		assert.Equal(t, later, c.UpdatedAt())
	})

	assert.True(t, client.Changes{}.IsEmpty())
}
