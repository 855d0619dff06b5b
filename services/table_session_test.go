package services

import (
	"errors"
	"testing"

	"pepe-order/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableSession_StartClearsCartAndBumpsGeneration(t *testing.T) {
	registry := NewTableRegistry()
	session := registry.Get("dev-1")
	assert.Same(t, session, registry.Get("dev-1"))

	first := session.Start(models.TableContext{OutletID: "3", TableLabel: "Table 1"})
	session.View(func(_ *models.TableContext, cart *models.CartStore, _ uint64) {
		item, err := models.NewCartLineItem(9, "Nasi Goreng", "", 50000, nil, 1)
		require.NoError(t, err)
		cart.AddOrMerge(*item)
	})

	second := session.Start(models.TableContext{OutletID: "3", TableLabel: "Table 2"})
	assert.Greater(t, second, first)

	session.View(func(table *models.TableContext, cart *models.CartStore, generation uint64) {
		assert.Equal(t, "Table 2", table.TableLabel)
		assert.True(t, cart.IsEmpty())
		assert.Equal(t, second, generation)
	})
}

func TestTableSession_ApplyRejectsStaleGeneration(t *testing.T) {
	session := NewTableRegistry().Get("dev-1")
	stale := session.Start(models.TableContext{OutletID: "3"})
	session.Start(models.TableContext{OutletID: "4"})

	ran := false
	err := session.Apply(stale, func(*models.TableContext, *models.CartStore) { ran = true })

	assert.True(t, errors.Is(err, models.ErrSessionChanged))
	assert.False(t, ran)
}

func TestTableRegistry_DropResetsSession(t *testing.T) {
	registry := NewTableRegistry()
	old := registry.Get("dev-1")
	gen := old.Start(models.TableContext{OutletID: "3"})

	registry.Drop("dev-1")

	assert.Error(t, old.Apply(gen, func(*models.TableContext, *models.CartStore) {}))
	registry.Get("dev-1").View(func(table *models.TableContext, _ *models.CartStore, _ uint64) {
		assert.Nil(t, table)
	})
}

func TestTableSession_BeginCheckoutIsExclusive(t *testing.T) {
	session := NewTableRegistry().Get("dev-1")
	session.Start(models.TableContext{OutletID: "3"})
	ok := func(*models.TableContext, *models.CartStore, uint64) error { return nil }

	done, err := session.BeginCheckout(ok)
	require.NoError(t, err)

	_, err = session.BeginCheckout(ok)
	assert.True(t, errors.Is(err, models.ErrCheckoutInProgress))

	done()
	done()

	again, err := session.BeginCheckout(ok)
	require.NoError(t, err)
	again()
}

func TestTableSession_BeginCheckoutFailureLeavesSessionFree(t *testing.T) {
	session := NewTableRegistry().Get("dev-1")

	_, err := session.BeginCheckout(func(table *models.TableContext, _ *models.CartStore, _ uint64) error {
		assert.Nil(t, table)
		return models.ErrNoTable
	})
	assert.True(t, errors.Is(err, models.ErrNoTable))

	done, err := session.BeginCheckout(func(*models.TableContext, *models.CartStore, uint64) error { return nil })
	require.NoError(t, err)
	done()
}
