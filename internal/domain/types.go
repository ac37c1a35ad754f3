package domain

import (
	"time"
)

const (
	MinRows = 10
	MaxRows = 1000
)

type GenerationRequest struct {
	Category    string `json:"category" yaml:"category"`
	Subcategory string `json:"subcategory,omitempty" yaml:"subcategory,omitempty"`
	Rows        int    `json:"rows" yaml:"rows"`
}

func (r GenerationRequest) Selector() Selector {
	return Selector{Category: r.Category, Subcategory: r.Subcategory}
}

// Selector identifies one record ruleset. Subcategory is empty for
// categories without subcategories.
type Selector struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory,omitempty"`
}

func (s Selector) String() string {
	if s.Subcategory == "" {
		return s.Category
	}
	return s.Category + "/" + s.Subcategory
}

type CategoryInfo struct {
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories,omitempty"`
}

type Column struct {
	Name     string     `json:"name" yaml:"name"`
	Type     ColumnType `json:"type" yaml:"type"`
	Nullable bool       `json:"nullable,omitempty" yaml:"nullable,omitempty"`
}

type ColumnType string

const (
	ColumnTypeInt       ColumnType = "int"
	ColumnTypeFloat     ColumnType = "float"
	ColumnTypeCurrency  ColumnType = "currency"
	ColumnTypeString    ColumnType = "string"
	ColumnTypeTimestamp ColumnType = "timestamp"
	ColumnTypeDate      ColumnType = "date"
)

type Field struct {
	Name  string
	Value any
}

// Record is an ordered field-name -> value mapping.
type Record []Field

func (r Record) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

func (r Record) Names() []string {
	names := make([]string, len(r))
	for i, f := range r {
		names[i] = f.Name
	}
	return names
}

type Table struct {
	Columns []Column `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

type VehicleFleetEntry struct {
	Driver  string `json:"driver"`
	Plate   string `json:"plate"`
	Vehicle string `json:"vehicle"`
}

type City struct {
	Name      string  `json:"name" yaml:"name"`
	State     string  `json:"state" yaml:"state"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "Cartão"
	PaymentCash   PaymentMethod = "Dinheiro"
	PaymentPix    PaymentMethod = "Pix"
	PaymentBoleto PaymentMethod = "Boleto"
)

// Settled reports whether the method settles at the point of sale.
func (m PaymentMethod) Settled() bool {
	return m == PaymentPix || m == PaymentCash
}

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Pago"
	PaymentUnpaid  PaymentStatus = "Não Pago"
	PaymentPending PaymentStatus = "Pendente"
)

type TripStatus string

const (
	TripInTransit TripStatus = "Em Trânsito"
	TripDelivered TripStatus = "Entregue"
	TripLate      TripStatus = "Entregue com Atraso"
)

// Preset is a named, stored GenerationRequest.
type Preset struct {
	GenerationRequest `yaml:",inline"`

	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Seed        *int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
	Today       string `json:"today,omitempty" yaml:"today,omitempty"`
}

type TargetConfig struct {
	ID       string            `json:"id" yaml:"id"`
	Name     string            `json:"name" yaml:"name"`
	Kind     string            `json:"kind" yaml:"kind"`
	DSN      string            `json:"dsn" yaml:"dsn"`
	Database string            `json:"database,omitempty" yaml:"database,omitempty"`
	Schema   string            `json:"schema,omitempty" yaml:"schema,omitempty"`
	Options  map[string]string `json:"options,omitempty" yaml:"options,omitempty"`
}

type TargetCapabilities struct {
	CanCreate   bool `json:"can_create"`
	CanInsert   bool `json:"can_insert"`
	CanTruncate bool `json:"can_truncate"`
}

type TargetCheck struct {
	ID           string             `json:"id"`
	TargetID     string             `json:"target_id"`
	OK           bool               `json:"ok"`
	ServerVer    string             `json:"server_version,omitempty"`
	LatencyMS    int64              `json:"latency_ms"`
	CheckedAt    time.Time          `json:"checked_at"`
	Capabilities TargetCapabilities `json:"capabilities"`
	Error        string             `json:"error,omitempty"`
}

// Result is one completed generation call.
type Result struct {
	Request     GenerationRequest `json:"request"`
	Seed        int64             `json:"seed"`
	Today       time.Time         `json:"today"`
	Fingerprint string            `json:"fingerprint"`
	Table       *Table            `json:"-"`
	Duration    time.Duration     `json:"-"`
}

type ExportStats struct {
	Table           string  `json:"table"`
	RowsWritten     int64   `json:"rows_written"`
	Batches         int     `json:"batches"`
	DurationSeconds float64 `json:"duration_seconds"`
	ConfigHash      string  `json:"config_hash,omitempty"`
}

const (
	TableModeCreate   = "create"
	TableModeTruncate = "truncate"
	TableModeAppend   = "append"
)
