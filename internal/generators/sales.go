package generators

import (
	"errors"
	"time"

	"github.com/mmrzaf/bizgen/internal/domain"
	"github.com/mmrzaf/bizgen/internal/random"
	"github.com/mmrzaf/bizgen/internal/timeutil"
	"github.com/shopspring/decimal"
)

const (
	installmentCadenceDays = 30
	maxInstallments        = 12
	maxQuantity            = 5
	salesWindow            = "-1y"
)

type PriceBand struct {
	Min float64
	Max float64
}

type Product struct {
	Name string
	Band PriceBand
}

var (
	defaultCatalog = []Product{
		{Name: "Camisa", Band: PriceBand{Min: 50, Max: 150}},
		{Name: "Calça", Band: PriceBand{Min: 80, Max: 250}},
		{Name: "Tênis", Band: PriceBand{Min: 150, Max: 800}},
		{Name: "Boné", Band: PriceBand{Min: 30, Max: 120}},
		{Name: "Relógio", Band: PriceBand{Min: 200, Max: 2000}},
	}
	defaultPaymentMethods = []domain.PaymentMethod{
		domain.PaymentCard, domain.PaymentCash, domain.PaymentPix, domain.PaymentBoleto,
	}
	deferredStatuses = []domain.PaymentStatus{
		domain.PaymentPaid, domain.PaymentUnpaid, domain.PaymentPending,
	}
	// most sales carry no discount
	discountPercents = random.MustDistribution(
		random.W(0, 3), random.W(5, 1), random.W(10, 1), random.W(15, 1), random.W(20, 1),
	)
)

var salesColumns = []domain.Column{
	col("Data", domain.ColumnTypeDate),
	col("Cliente", domain.ColumnTypeString),
	col("Produto", domain.ColumnTypeString),
	col("Preço Unitário", domain.ColumnTypeCurrency),
	col("Quantidade", domain.ColumnTypeInt),
	col("Valor Bruto", domain.ColumnTypeCurrency),
	col("Desconto (%)", domain.ColumnTypeInt),
	col("Valor Desconto", domain.ColumnTypeCurrency),
	col("Valor Líquido", domain.ColumnTypeCurrency),
	col("Forma de Pagamento", domain.ColumnTypeString),
	col("Parcelas", domain.ColumnTypeInt),
	col("Valor Parcela", domain.ColumnTypeCurrency),
	col("Vencimento", domain.ColumnTypeDate),
	col("Status Pagamento", domain.ColumnTypeString),
	col("Vendedor", domain.ColumnTypeString),
}

// Sale is one simulated sale with its payment plan.
type Sale struct {
	Date        time.Time
	Client      string
	Seller      string
	Product     string
	UnitPrice   decimal.Decimal
	Quantity    int
	Gross       decimal.Decimal
	DiscountPct int
	Discount    decimal.Decimal
	Net         decimal.Decimal
	Billing     Billing
}

type Billing struct {
	Method           domain.PaymentMethod
	Installments     int
	InstallmentValue decimal.Decimal
	DueDate          time.Time
	Status           domain.PaymentStatus
}

// SalesGenerator simulates retail sales with installment billing. Zero
// fields fall back to the built-in catalog, payment methods and a one year
// sale window.
type SalesGenerator struct {
	Catalog []Product
	Methods []domain.PaymentMethod
	Window  string
}

func (g *SalesGenerator) Columns() []domain.Column {
	return copyColumns(salesColumns)
}

func (g *SalesGenerator) Generate(src *random.Source, ctx GeneratorContext, rows int) ([]domain.Record, error) {
	catalog := g.Catalog
	if len(catalog) == 0 {
		catalog = defaultCatalog
	}
	methods := g.Methods
	if len(methods) == 0 {
		methods = defaultPaymentMethods
	}
	window := g.Window
	if window == "" {
		window = salesWindow
	}
	for _, p := range catalog {
		if p.Band.Max < p.Band.Min || p.Band.Min < 0 {
			return nil, errors.New("invalid price band for product " + p.Name)
		}
	}

	floor, err := timeutil.Window(window, ctx.Today)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Record, 0, rows)
	for i := 0; i < rows; i++ {
		s := SimulateSale(src, catalog, methods, floor, ctx.Today)
		out = append(out, record(salesColumns,
			s.Date,
			s.Client,
			s.Product,
			s.UnitPrice,
			int64(s.Quantity),
			s.Gross,
			int64(s.DiscountPct),
			s.Discount,
			s.Net,
			string(s.Billing.Method),
			int64(s.Billing.Installments),
			s.Billing.InstallmentValue,
			s.Billing.DueDate,
			string(s.Billing.Status),
			s.Seller,
		))
	}
	return out, nil
}

// SimulateSale draws one sale dated within [floor, today]. The caller must
// guarantee floor <= today.
func SimulateSale(src *random.Source, catalog []Product, methods []domain.PaymentMethod, floor, today time.Time) Sale {
	s := Sale{
		Date:   src.Day(floor, today),
		Client: src.Name(),
		Seller: src.FirstName(),
	}

	p := random.Pick(src, catalog)
	s.Product = p.Name
	s.UnitPrice = src.Money(p.Band.Min, p.Band.Max)
	s.Quantity = src.IntRange(1, maxQuantity)
	s.Gross = s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))

	s.DiscountPct = discountPercents.Sample(src)
	s.Discount = s.Gross.Mul(decimal.NewFromInt(int64(s.DiscountPct))).Div(decimal.NewFromInt(100)).Round(2)
	s.Net = s.Gross.Sub(s.Discount).Round(2)

	s.Billing = PlanBilling(src, random.Pick(src, methods), s.Date, today)
	s.Billing.InstallmentValue = s.Net.DivRound(decimal.NewFromInt(int64(s.Billing.Installments)), 2)
	return s
}

// PlanBilling applies the status and installment rules for method and
// derives the due date shown for the sale.
func PlanBilling(src *random.Source, method domain.PaymentMethod, saleDate, today time.Time) Billing {
	b := Billing{Method: method}
	if method.Settled() {
		b.Status = domain.PaymentPaid
		b.Installments = 1
	} else {
		b.Status = random.Pick(src, deferredStatuses)
		b.Installments = src.IntRange(1, maxInstallments)
	}
	b.DueDate = DueDate(method, b.Installments, saleDate, today)
	return b
}

// DueDate returns the due date of the next installment that has not yet
// come due, or of the last one once the plan has matured. Settled methods
// and single installments are due on the sale date.
func DueDate(method domain.PaymentMethod, installments int, saleDate, today time.Time) time.Time {
	if method.Settled() || installments <= 1 {
		return saleDate
	}
	elapsed := timeutil.DaysBetween(saleDate, today)
	if elapsed < 0 {
		elapsed = 0
	}
	next := elapsed/installmentCadenceDays + 1
	if next > installments {
		next = installments
	}
	return saleDate.AddDate(0, 0, next*installmentCadenceDays)
}
