// Package geo holds the static city reference table used by the logistics
// generators and a great-circle distance over it.
package geo

import (
	"github.com/mmrzaf/bizgen/internal/domain"
)

var cities = []domain.City{
	{Name: "São Paulo", State: "SP", Latitude: -23.5505, Longitude: -46.6333},
	{Name: "Rio de Janeiro", State: "RJ", Latitude: -22.9068, Longitude: -43.1729},
	{Name: "Belo Horizonte", State: "MG", Latitude: -19.9167, Longitude: -43.9345},
	{Name: "Brasília", State: "DF", Latitude: -15.7939, Longitude: -47.8828},
	{Name: "Salvador", State: "BA", Latitude: -12.9777, Longitude: -38.5016},
	{Name: "Fortaleza", State: "CE", Latitude: -3.7319, Longitude: -38.5267},
	{Name: "Recife", State: "PE", Latitude: -8.0476, Longitude: -34.8770},
	{Name: "Curitiba", State: "PR", Latitude: -25.4284, Longitude: -49.2733},
	{Name: "Porto Alegre", State: "RS", Latitude: -30.0346, Longitude: -51.2177},
	{Name: "Manaus", State: "AM", Latitude: -3.1190, Longitude: -60.0217},
	{Name: "Belém", State: "PA", Latitude: -1.4558, Longitude: -48.4902},
	{Name: "Goiânia", State: "GO", Latitude: -16.6869, Longitude: -49.2648},
	{Name: "Campinas", State: "SP", Latitude: -22.9099, Longitude: -47.0626},
	{Name: "Florianópolis", State: "SC", Latitude: -27.5954, Longitude: -48.5480},
	{Name: "Vitória", State: "ES", Latitude: -20.3155, Longitude: -40.3128},
	{Name: "Natal", State: "RN", Latitude: -5.7945, Longitude: -35.2110},
	{Name: "João Pessoa", State: "PB", Latitude: -7.1195, Longitude: -34.8450},
	{Name: "Maceió", State: "AL", Latitude: -9.6498, Longitude: -35.7089},
	{Name: "São Luís", State: "MA", Latitude: -2.5307, Longitude: -44.3068},
	{Name: "Teresina", State: "PI", Latitude: -5.0892, Longitude: -42.8019},
	{Name: "Campo Grande", State: "MS", Latitude: -20.4697, Longitude: -54.6201},
	{Name: "Cuiabá", State: "MT", Latitude: -15.6014, Longitude: -56.0979},
	{Name: "Ribeirão Preto", State: "SP", Latitude: -21.1775, Longitude: -47.8103},
	{Name: "Uberlândia", State: "MG", Latitude: -18.9186, Longitude: -48.2772},
	{Name: "Joinville", State: "SC", Latitude: -26.3045, Longitude: -48.8487},
}

var byName = func() map[string]domain.City {
	m := make(map[string]domain.City, len(cities))
	for _, c := range cities {
		m[c.Name] = c
	}
	return m
}()

// Cities returns a copy of the reference table in declaration order.
func Cities() []domain.City {
	out := make([]domain.City, len(cities))
	copy(out, cities)
	return out
}

func Lookup(name string) (domain.City, bool) {
	c, ok := byName[name]
	return c, ok
}

func Len() int {
	return len(cities)
}
