package city

import "gig-weather/internal/domain/entity"

// Directory is the static city lookup used in directory mode. It is loaded
// once at startup and read-only afterwards.
type Directory struct {
	cities []entity.City
	byID   map[string]entity.City
}

func NewDirectory(cities []entity.City) *Directory {
	byID := make(map[string]entity.City, len(cities))
	for _, c := range cities {
		byID[c.ID] = c
	}
	return &Directory{cities: cities, byID: byID}
}

// DefaultDirectory returns the built-in Finnish city directory.
func DefaultDirectory() *Directory {
	return NewDirectory([]entity.City{
		{ID: "helsinki", Name: "Helsinki", Latitude: 60.1699, Longitude: 24.9384},
		{ID: "espoo", Name: "Espoo", Latitude: 60.2055, Longitude: 24.6559},
		{ID: "vantaa", Name: "Vantaa", Latitude: 60.2934, Longitude: 25.0378},
		{ID: "tampere", Name: "Tampere", Latitude: 61.4978, Longitude: 23.7610},
		{ID: "turku", Name: "Turku", Latitude: 60.4518, Longitude: 22.2666},
		{ID: "oulu", Name: "Oulu", Latitude: 65.0121, Longitude: 25.4651},
		{ID: "jyvaskyla", Name: "Jyväskylä", Latitude: 62.2426, Longitude: 25.7473},
		{ID: "lahti", Name: "Lahti", Latitude: 60.9827, Longitude: 25.6615},
		{ID: "kuopio", Name: "Kuopio", Latitude: 62.8924, Longitude: 27.6770},
		{ID: "pori", Name: "Pori", Latitude: 61.4850, Longitude: 21.7970},
		{ID: "vaasa", Name: "Vaasa", Latitude: 63.0951, Longitude: 21.6165},
		{ID: "lappeenranta", Name: "Lappeenranta", Latitude: 61.0583, Longitude: 28.1861},
		{ID: "joensuu", Name: "Joensuu", Latitude: 62.6010, Longitude: 29.7636},
		{ID: "seinajoki", Name: "Seinäjoki", Latitude: 62.7903, Longitude: 22.8403},
		{ID: "rovaniemi", Name: "Rovaniemi", Latitude: 66.5039, Longitude: 25.7294},
	})
}

// ByID returns the city for the given id, or false when unknown.
func (d *Directory) ByID(id string) (entity.City, bool) {
	c, ok := d.byID[id]
	return c, ok
}

// All returns the directory contents in their declared order.
func (d *Directory) All() []entity.City {
	out := make([]entity.City, len(d.cities))
	copy(out, d.cities)
	return out
}
