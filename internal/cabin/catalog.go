package cabin

// The cabin fleet is a fixed enumerated set of named units, configured at
// startup. Cabins have no backing table; booking records reference them by
// name as an opaque key.

// DefaultNames is the fleet of the original deployment, used when CABIN_NAMES
// is not set.
var DefaultNames = []string{
	"Orquideas 1", "Orquideas 2", "Orquideas 3",
	"Capri 1", "Capri 2", "Capri 3",
}

// Catalog holds the fixed cabin set for the lifetime of the process.
type Catalog struct {
	names []string
}

func NewCatalog(names []string) *Catalog {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	return &Catalog{names: out}
}

// Names returns the cabin names in configuration order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Exists reports whether the name belongs to the fleet. Advisory only:
// bookings are never rejected for referencing an unknown cabin.
func (c *Catalog) Exists(name string) bool {
	for _, n := range c.names {
		if n == name {
			return true
		}
	}
	return false
}
