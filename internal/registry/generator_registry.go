package registry

import (
	"fmt"
	"sync"

	"github.com/mmrzaf/bizgen/internal/domain"
	"github.com/mmrzaf/bizgen/internal/generators"
	"github.com/mmrzaf/bizgen/internal/textutil"
)

// GeneratorRegistry maps a (category, subcategory) selector to the
// generator that owns its ruleset. Categories keep registration order.
type GeneratorRegistry struct {
	mu         sync.RWMutex
	generators map[domain.Selector]generators.Generator
	order      []domain.Selector
}

func NewGeneratorRegistry() *GeneratorRegistry {
	return &GeneratorRegistry{
		generators: make(map[domain.Selector]generators.Generator),
	}
}

// Register binds gen to category/subcategory. Pass an empty subcategory
// for categories without subcategories. Registering the same selector
// again replaces the generator.
func (r *GeneratorRegistry) Register(category, subcategory string, gen generators.Generator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sel := domain.Selector{Category: category, Subcategory: subcategory}
	if _, ok := r.generators[sel]; !ok {
		r.order = append(r.order, sel)
	}
	r.generators[sel] = gen
}

// Get looks a selector up by its exact registered spelling.
func (r *GeneratorRegistry) Get(sel domain.Selector) (generators.Generator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	gen, ok := r.generators[sel]
	if !ok {
		return nil, fmt.Errorf("%w: generator not found: %s", domain.ErrInvalidRequest, sel)
	}
	return gen, nil
}

// Resolve matches category and subcategory ignoring case and accents and
// returns the canonical selector with its generator. A subcategory is
// required exactly when the category declares subcategories.
func (r *GeneratorRegistry) Resolve(category, subcategory string) (domain.Selector, generators.Generator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var canonical string
	var subs []domain.Selector
	for _, sel := range r.order {
		if !textutil.EqualFold(sel.Category, category) {
			continue
		}
		canonical = sel.Category
		if sel.Subcategory != "" {
			subs = append(subs, sel)
		}
	}
	if canonical == "" {
		return domain.Selector{}, nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidRequest, category)
	}

	if len(subs) == 0 {
		if subcategory != "" {
			return domain.Selector{}, nil, fmt.Errorf("%w: category %q has no subcategories, got %q", domain.ErrInvalidRequest, canonical, subcategory)
		}
		sel := domain.Selector{Category: canonical}
		return sel, r.generators[sel], nil
	}

	if subcategory == "" {
		return domain.Selector{}, nil, fmt.Errorf("%w: category %q requires a subcategory", domain.ErrInvalidRequest, canonical)
	}
	for _, sel := range subs {
		if textutil.EqualFold(sel.Subcategory, subcategory) {
			return sel, r.generators[sel], nil
		}
	}
	return domain.Selector{}, nil, fmt.Errorf("%w: unknown subcategory %q for category %q", domain.ErrInvalidRequest, subcategory, canonical)
}

// List returns every registered selector in registration order.
func (r *GeneratorRegistry) List() []domain.Selector {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Selector, len(r.order))
	copy(out, r.order)
	return out
}

// Categories groups the registered selectors by category.
func (r *GeneratorRegistry) Categories() []domain.CategoryInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.CategoryInfo
	index := make(map[string]int)
	for _, sel := range r.order {
		i, ok := index[sel.Category]
		if !ok {
			i = len(out)
			index[sel.Category] = i
			out = append(out, domain.CategoryInfo{Name: sel.Category})
		}
		if sel.Subcategory != "" {
			out[i].Subcategories = append(out[i].Subcategories, sel.Subcategory)
		}
	}
	return out
}

func DefaultGeneratorRegistry() *GeneratorRegistry {
	r := NewGeneratorRegistry()
	r.Register("Vendas", "", &generators.SalesGenerator{})
	r.Register("Saúde", "", &generators.HealthGenerator{})
	r.Register("RH", "", &generators.HRGenerator{})
	r.Register("Fornecedores", "", &generators.SupplierGenerator{})
	r.Register("Logística", "Transporte", &generators.TransportGenerator{})
	r.Register("Logística", "Estoque", &generators.InventoryGenerator{})
	r.Register("Logística", "Distribuição", &generators.DistributionGenerator{})
	r.Register("Financeiro", "Contas a Pagar", &generators.PayablesGenerator{})
	r.Register("Financeiro", "Contas a Receber", &generators.ReceivablesGenerator{})
	r.Register("Financeiro", "Fluxo de Caixa", &generators.CashFlowGenerator{})
	r.Register("SLA de Atendimento", "Suporte Técnico", &generators.SupportGenerator{})
	r.Register("SLA de Atendimento", "Helpdesk", &generators.HelpdeskGenerator{})
	r.Register("SLA de Atendimento", "Manutenção", &generators.MaintenanceGenerator{})
	return r
}
