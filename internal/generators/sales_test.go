package generators

import (
	"testing"
	"time"

	"github.com/mmrzaf/bizgen/internal/domain"
	"github.com/mmrzaf/bizgen/internal/random"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testToday = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

func field[T any](t *testing.T, rec domain.Record, name string) T {
	t.Helper()
	v, ok := rec.Get(name)
	require.True(t, ok, "missing field %q", name)
	out, ok := v.(T)
	require.True(t, ok, "field %q has type %T", name, v)
	return out
}

func TestSalesRecordsKeepBillingInvariants(t *testing.T) {
	g := &SalesGenerator{}
	records, err := g.Generate(random.New(42), GeneratorContext{Today: testToday}, 1000)
	require.NoError(t, err)
	require.Len(t, records, 1000)

	floor := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)
	methods := map[string]int{}
	for _, rec := range records {
		require.Equal(t, g.Columns()[0].Name, rec[0].Name)

		sale := field[time.Time](t, rec, "Data")
		due := field[time.Time](t, rec, "Vencimento")
		installments := field[int64](t, rec, "Parcelas")
		gross := field[decimal.Decimal](t, rec, "Valor Bruto")
		net := field[decimal.Decimal](t, rec, "Valor Líquido")
		method := field[string](t, rec, "Forma de Pagamento")
		status := field[string](t, rec, "Status Pagamento")
		qty := field[int64](t, rec, "Quantidade")
		methods[method]++

		require.False(t, sale.Before(floor), "sale before floor: %s", sale)
		require.False(t, sale.After(testToday), "sale in the future: %s", sale)
		require.False(t, due.Before(sale), "due %s before sale %s", due, sale)
		require.Equal(t, installments == 1, due.Equal(sale), "installments=%d sale=%s due=%s", installments, sale, due)
		require.True(t, net.LessThanOrEqual(gross), "net %s > gross %s", net, gross)
		require.True(t, net.IsPositive())
		require.GreaterOrEqual(t, installments, int64(1))
		require.LessOrEqual(t, installments, int64(12))
		require.GreaterOrEqual(t, qty, int64(1))
		require.LessOrEqual(t, qty, int64(5))

		if method == string(domain.PaymentPix) || method == string(domain.PaymentCash) {
			require.Equal(t, string(domain.PaymentPaid), status)
			require.Equal(t, int64(1), installments)
		}
	}
	assert.Len(t, methods, 4, "all payment methods should appear in 1000 rows")
}

func TestSalesForcedPixSettlesOnSaleDate(t *testing.T) {
	g := &SalesGenerator{Methods: []domain.PaymentMethod{domain.PaymentPix}}
	records, err := g.Generate(random.New(7), GeneratorContext{Today: testToday}, 10)
	require.NoError(t, err)
	require.Len(t, records, 10)

	for _, rec := range records {
		assert.Equal(t, "Pix", field[string](t, rec, "Forma de Pagamento"))
		assert.Equal(t, int64(1), field[int64](t, rec, "Parcelas"))
		assert.Equal(t, "Pago", field[string](t, rec, "Status Pagamento"))
		assert.True(t, field[time.Time](t, rec, "Vencimento").Equal(field[time.Time](t, rec, "Data")))
		assert.True(t, field[decimal.Decimal](t, rec, "Valor Parcela").Equal(field[decimal.Decimal](t, rec, "Valor Líquido")))
	}
}

func TestSalesNetTotalMatchesDiscount(t *testing.T) {
	src := random.New(9)
	floor := testToday.AddDate(-1, 0, 0)
	for i := 0; i < 500; i++ {
		s := SimulateSale(src, defaultCatalog, defaultPaymentMethods, floor, testToday)
		expected := s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
		require.True(t, s.Gross.Equal(expected))
		require.Contains(t, []int{0, 5, 10, 15, 20}, s.DiscountPct)
		require.True(t, s.Net.Add(s.Discount).Equal(s.Gross), "net+discount != gross: %s + %s != %s", s.Net, s.Discount, s.Gross)
		if s.DiscountPct == 0 {
			require.True(t, s.Net.Equal(s.Gross))
		}
	}
}

func TestDueDateCadence(t *testing.T) {
	sale := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name         string
		method       domain.PaymentMethod
		installments int
		today        time.Time
		want         time.Time
	}{
		{"pix is due on sale date", domain.PaymentPix, 1, sale.AddDate(0, 0, 100), sale},
		{"cash is due on sale date", domain.PaymentCash, 1, sale.AddDate(0, 0, 5), sale},
		{"single card installment", domain.PaymentCard, 1, sale.AddDate(0, 0, 45), sale},
		{"first installment pending", domain.PaymentCard, 6, sale.AddDate(0, 0, 19), sale.AddDate(0, 0, 30)},
		{"sale made today", domain.PaymentBoleto, 3, sale, sale.AddDate(0, 0, 30)},
		{"boundary moves to second", domain.PaymentBoleto, 6, sale.AddDate(0, 0, 30), sale.AddDate(0, 0, 60)},
		{"second installment pending", domain.PaymentCard, 6, sale.AddDate(0, 0, 45), sale.AddDate(0, 0, 60)},
		{"matured plan shows final installment", domain.PaymentCard, 3, sale.AddDate(0, 0, 400), sale.AddDate(0, 0, 90)},
		{"last installment exactly", domain.PaymentBoleto, 12, sale.AddDate(0, 0, 335), sale.AddDate(0, 0, 360)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DueDate(tc.method, tc.installments, sale, tc.today)
			assert.True(t, got.Equal(tc.want), "want %s, got %s", tc.want.Format("2006-01-02"), got.Format("2006-01-02"))
		})
	}
}

func TestPlanBillingDeferredMethodsSpreadStatuses(t *testing.T) {
	src := random.New(11)
	sale := testToday.AddDate(0, 0, -200)
	statuses := map[domain.PaymentStatus]bool{}
	counts := map[int]bool{}
	for i := 0; i < 2000; i++ {
		b := PlanBilling(src, domain.PaymentBoleto, sale, testToday)
		statuses[b.Status] = true
		counts[b.Installments] = true
		require.Equal(t, DueDate(b.Method, b.Installments, sale, testToday), b.DueDate)
	}
	assert.Len(t, statuses, 3)
	assert.Len(t, counts, 12)
}

func TestSalesRejectsInvalidWindow(t *testing.T) {
	g := &SalesGenerator{Window: "last year"}
	_, err := g.Generate(random.New(1), GeneratorContext{Today: testToday}, 10)
	require.Error(t, err)
}
