package generators

import (
	"time"

	"github.com/mmrzaf/bizgen/internal/domain"
	"github.com/mmrzaf/bizgen/internal/geo"
	"github.com/mmrzaf/bizgen/internal/random"
	"github.com/mmrzaf/bizgen/internal/timeutil"
	"github.com/shopspring/decimal"
)

const (
	FleetSize = 15

	transportWindow   = "-1M"
	maxPlannedDays    = 10
	maxLateDays       = 5
	onTimeProbability = 0.7
	minFuelMargin     = 1.05
	maxFuelMargin     = 1.15
	longHaulKM        = 1000.0
	mediumHaulKM      = 500.0
)

type efficiencyBand struct {
	Min float64
	Max float64
}

var (
	longHaulEfficiency   = efficiencyBand{Min: 3.2, Max: 4.0}
	mediumHaulEfficiency = efficiencyBand{Min: 2.8, Max: 3.5}
	shortHaulEfficiency  = efficiencyBand{Min: 2.5, Max: 3.2}
)

type FuelGrade struct {
	Name     string
	MinPrice float64
	MaxPrice float64
}

var (
	dieselS10  = FuelGrade{Name: "Diesel S10", MinPrice: 5.89, MaxPrice: 6.49}
	dieselS500 = FuelGrade{Name: "Diesel S500", MinPrice: 5.69, MaxPrice: 6.29}

	fuelGrades = random.MustDistribution(random.W(dieselS10, 95), random.W(dieselS500, 5))

	vehicleModels = []string{
		"Volvo FH 540", "Scania R 450", "Mercedes-Benz Actros 2651", "DAF XF 530",
		"Iveco S-Way 480", "Volkswagen Constellation 24.280", "Volvo VM 270", "Scania P 360",
		"Mercedes-Benz Atego 2430", "Ford Cargo 2429",
	}
)

var transportColumns = []domain.Column{
	col("Data Início", domain.ColumnTypeDate),
	col("Término Previsto", domain.ColumnTypeDate),
	nullable("Término Real", domain.ColumnTypeDate),
	col("Motorista", domain.ColumnTypeString),
	col("Placa Veículo", domain.ColumnTypeString),
	col("Veículo", domain.ColumnTypeString),
	col("Cidade Origem", domain.ColumnTypeString),
	col("Cidade Destino", domain.ColumnTypeString),
	col("Distância (km)", domain.ColumnTypeFloat),
	col("Consumo (km/L)", domain.ColumnTypeFloat),
	col("Combustível (L)", domain.ColumnTypeFloat),
	col("Tipo Combustível", domain.ColumnTypeString),
	col("Preço Litro", domain.ColumnTypeCurrency),
	col("Custo Combustível", domain.ColumnTypeCurrency),
	col("Status", domain.ColumnTypeString),
	nullable("Atraso (dias)", domain.ColumnTypeInt),
}

// Trip is one simulated freight trip. ActualEnd is nil while the trip is
// still in progress relative to the reference date.
type Trip struct {
	Start       time.Time
	PlannedEnd  time.Time
	ActualEnd   *time.Time
	PlannedDays int
	ActualDays  int
	Vehicle     domain.VehicleFleetEntry
	Origin      string
	Destination string
	DistanceKM  float64
	Fuel        FuelPlan
	Status      domain.TripStatus
}

// DelayDays is the number of days past the planned end, or nil while the
// trip is in transit.
func (t Trip) DelayDays() *int64 {
	if t.ActualEnd == nil {
		return nil
	}
	d := int64(0)
	if t.ActualDays > t.PlannedDays {
		d = int64(t.ActualDays - t.PlannedDays)
	}
	return &d
}

type FuelPlan struct {
	EfficiencyKML float64
	BaseLiters    float64
	Margin        float64
	Liters        float64
	Grade         FuelGrade
	PricePerLiter decimal.Decimal
	Cost          decimal.Decimal
}

// TransportGenerator simulates road freight trips run by a bounded fleet.
type TransportGenerator struct {
	Window string
}

func (g *TransportGenerator) Columns() []domain.Column {
	return copyColumns(transportColumns)
}

func (g *TransportGenerator) Generate(src *random.Source, ctx GeneratorContext, rows int) ([]domain.Record, error) {
	window := g.Window
	if window == "" {
		window = transportWindow
	}
	floor, err := timeutil.Window(window, ctx.Today)
	if err != nil {
		return nil, err
	}

	fleet := NewFleet(src, FleetSize)

	out := make([]domain.Record, 0, rows)
	for i := 0; i < rows; i++ {
		t := SimulateTrip(src, fleet, floor, ctx.Today)

		var actualEnd any
		if t.ActualEnd != nil {
			actualEnd = *t.ActualEnd
		}
		var delay any
		if d := t.DelayDays(); d != nil {
			delay = *d
		}

		out = append(out, record(transportColumns,
			t.Start,
			t.PlannedEnd,
			actualEnd,
			t.Vehicle.Driver,
			t.Vehicle.Plate,
			t.Vehicle.Vehicle,
			t.Origin,
			t.Destination,
			round(t.DistanceKM, 2),
			round(t.Fuel.EfficiencyKML, 2),
			t.Fuel.Liters,
			t.Fuel.Grade.Name,
			t.Fuel.PricePerLiter,
			t.Fuel.Cost,
			string(t.Status),
			delay,
		))
	}
	return out, nil
}

// NewFleet builds the vehicle pool shared by every trip of one call.
func NewFleet(src *random.Source, size int) []domain.VehicleFleetEntry {
	fleet := make([]domain.VehicleFleetEntry, size)
	for i := range fleet {
		fleet[i] = domain.VehicleFleetEntry{
			Driver:  src.Name(),
			Plate:   src.Plate(),
			Vehicle: random.Pick(src, vehicleModels),
		}
	}
	return fleet
}

// SimulateTrip draws one trip starting within [floor, today] with a
// vehicle sampled from fleet.
func SimulateTrip(src *random.Source, fleet []domain.VehicleFleetEntry, floor, today time.Time) Trip {
	t := Trip{Start: src.Day(floor, today)}

	t.PlannedDays = src.IntRange(1, maxPlannedDays)
	t.PlannedEnd = t.Start.AddDate(0, 0, t.PlannedDays)

	if src.Chance(onTimeProbability) {
		t.ActualDays = src.IntRange(1, t.PlannedDays)
	} else {
		t.ActualDays = src.IntRange(t.PlannedDays+1, t.PlannedDays+maxLateDays)
	}
	actualEnd := t.Start.AddDate(0, 0, t.ActualDays)

	switch {
	case actualEnd.After(today):
		t.Status = domain.TripInTransit
	case t.ActualDays > t.PlannedDays:
		t.ActualEnd = &actualEnd
		t.Status = domain.TripLate
	default:
		t.ActualEnd = &actualEnd
		t.Status = domain.TripDelivered
	}

	t.Vehicle = random.Pick(src, fleet)

	origin, destination := geo.PickRoute(src)
	t.Origin = origin.Name
	t.Destination = destination.Name
	t.DistanceKM, _ = geo.DistanceKM(src, t.Origin, t.Destination)

	t.Fuel = PlanFuel(src, t.DistanceKM)
	return t
}

// PlanFuel estimates fuel for a trip of distanceKM. Longer hauls run in a
// more efficient band.
func PlanFuel(src *random.Source, distanceKM float64) FuelPlan {
	band := shortHaulEfficiency
	switch {
	case distanceKM > longHaulKM:
		band = longHaulEfficiency
	case distanceKM > mediumHaulKM:
		band = mediumHaulEfficiency
	}

	p := FuelPlan{EfficiencyKML: src.Float(band.Min, band.Max)}
	p.BaseLiters = distanceKM / p.EfficiencyKML
	p.Margin = src.Float(minFuelMargin, maxFuelMargin)
	p.Liters = round(p.BaseLiters*p.Margin, 2)

	p.Grade = fuelGrades.Sample(src)
	p.PricePerLiter = src.Money(p.Grade.MinPrice, p.Grade.MaxPrice)
	p.Cost = decimal.NewFromFloat(p.Liters).Mul(p.PricePerLiter).Round(2)
	return p
}
