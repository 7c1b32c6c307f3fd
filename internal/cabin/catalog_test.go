package cabin_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Imaagus/cabin-booking-backend/internal/cabin"
)

func TestCatalog(t *testing.T) {
	c := cabin.NewCatalog([]string{"Capri 1", "", "Capri 2"})

	require.Equal(t, []string{"Capri 1", "Capri 2"}, c.Names())
	require.True(t, c.Exists("Capri 1"))
	require.False(t, c.Exists("Capri 3"))
}

func TestCatalogNamesIsACopy(t *testing.T) {
	c := cabin.NewCatalog([]string{"Capri 1"})

	names := c.Names()
	names[0] = "mutated"
	require.Equal(t, []string{"Capri 1"}, c.Names())
}
