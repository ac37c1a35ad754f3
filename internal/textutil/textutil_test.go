package textutil

import "testing"

func TestFold(t *testing.T) {
	cases := map[string]string{
		"Logística":              "logistica",
		"  SLA de  Atendimento ": "sla de atendimento",
		"Saúde":                  "saude",
		"Distribuição":           "distribuicao",
	}
	for in, want := range cases {
		if got := Fold(in); got != want {
			t.Fatalf("Fold(%q) = %q, want %q", in, got, want)
		}
	}
	if !EqualFold("contas a pagar", "Contas a Pagar") {
		t.Fatal("expected case-insensitive match")
	}
	if EqualFold("Estoque", "Transporte") {
		t.Fatal("expected different labels not to match")
	}
}

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Valor (R$)":              "valor_r",
		"Data Início":             "data_inicio",
		"Desconto (%)":            "desconto",
		"Prazo de Entrega (dias)": "prazo_de_entrega_dias",
		"Consumo (km/L)":          "consumo_km_l",
		"3 Turnos":                "c_3_turnos",
	}
	for in, want := range cases {
		if got := Slug(in); got != want {
			t.Fatalf("Slug(%q) = %q, want %q", in, got, want)
		}
	}
}
