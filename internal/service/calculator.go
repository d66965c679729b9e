package service

import (
	"context"
	"strings"
	"time"

	"github.com/tavolo/pricing-service/internal/domain/model"
	"github.com/tavolo/pricing-service/internal/service/cache"
)

// PriceCalculator is the single entry point of the pricing engine. It is a
// pure function of its inputs plus the catalog snapshot it reads, safe to
// call concurrently.
type PriceCalculator interface {
	CalculatePrice(ctx context.Context, req model.PriceRequest) (*model.PriceBreakdown, error)
	// InvalidateCache clears the result cache (call after catalog writes).
	InvalidateCache()
}

// Option configures a PriceCalculatorService.
type Option func(*PriceCalculatorService)

// PriceCalculatorService implements PriceCalculator by dispatching to the
// strategy matching the variant's item type.
type PriceCalculatorService struct {
	catalog   CatalogService
	rules     *RuleResolver
	templates *TemplateResolver
	assembler *BreakdownAssembler
	cache     cache.Cache
}

// NewPriceCalculatorService creates a PriceCalculatorService reading from the
// given catalog.
func NewPriceCalculatorService(catalog CatalogService, opts ...Option) *PriceCalculatorService {
	s := &PriceCalculatorService{
		catalog:   catalog,
		rules:     NewRuleResolver(),
		templates: NewTemplateResolver(),
		assembler: NewBreakdownAssembler(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithRuleResolver replaces the default rule resolver.
func WithRuleResolver(r *RuleResolver) Option {
	return func(s *PriceCalculatorService) {
		if r != nil {
			s.rules = r
		}
	}
}

// WithCache enables result caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *PriceCalculatorService) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *PriceCalculatorService) {
		s.cache = c
	}
}

// CalculatePrice validates the request, reads the catalog, dispatches to the
// matching strategy and assembles the breakdown. The first error encountered
// is terminal: no partial or best-effort price is ever returned.
func (s *PriceCalculatorService) CalculatePrice(ctx context.Context, req model.PriceRequest) (*model.PriceBreakdown, error) {
	normalizeRequest(&req)
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	key := requestFingerprint(req)
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			return &cached, nil
		}
	}

	in, err := s.loadCatalog(ctx, req)
	if err != nil {
		return nil, err
	}

	var out AssemblyInput
	switch in.variant.ItemType {
	case model.ItemTypePizza:
		out, err = s.pricePizza(in)
	case model.ItemTypeChicken:
		out, err = s.priceChicken(in)
	default:
		out, err = s.priceGeneric(in)
	}
	if err != nil {
		return nil, err
	}

	breakdown, err := s.assembler.Assemble(out)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(key, *breakdown)
	}
	return breakdown, nil
}

// InvalidateCache clears the result cache.
func (s *PriceCalculatorService) InvalidateCache() {
	if s.cache != nil {
		if cacheWithClear, ok := s.cache.(interface{ Clear() }); ok {
			cacheWithClear.Clear()
		}
	}
}

// loadCatalog performs all catalog reads for a request and validates the
// selections against the loaded customizations. Everything after this is
// pure computation.
func (s *PriceCalculatorService) loadCatalog(ctx context.Context, req model.PriceRequest) (strategyInput, error) {
	in := strategyInput{req: req}

	variant, err := s.catalog.GetVariant(ctx, req.VariantID)
	if err != nil {
		return in, model.NewCatalogUnavailableError(err)
	}
	if variant == nil {
		return in, model.NewAccessDeniedError("variant " + req.VariantID + " not found")
	}
	if variant.RestaurantID != req.RestaurantID {
		return in, model.NewAccessDeniedError(
			"variant " + req.VariantID + " does not belong to restaurant " + req.RestaurantID)
	}
	if variant.ItemType != req.ItemType {
		return in, model.NewValidationError("item_type",
			"does not match variant item type "+string(variant.ItemType))
	}
	in.variant = variant

	if variant.ItemType == model.ItemTypePizza {
		crust, err := s.catalog.GetCrustPricing(ctx, req.RestaurantID, req.SizeCode, req.CrustCode)
		if err != nil {
			return in, model.NewCatalogUnavailableError(err)
		}
		in.crust = crust // nil is handled by the pizza strategy
	}

	if req.TemplateID != "" {
		tpl, err := s.catalog.GetTemplate(ctx, req.TemplateID)
		if err != nil {
			return in, model.NewCatalogUnavailableError(err)
		}
		if tpl != nil && tpl.ItemID != "" && tpl.ItemID != variant.ItemID {
			return in, model.NewValidationError("template_id", "template belongs to a different menu item")
		}
		in.template = tpl
	}
	in.defaults = s.templates.ResolveDefaults(in.template)

	ids := customizationIDs(req.Selections, in.template)
	custs := map[string]*model.Customization{}
	if len(ids) > 0 {
		list, err := s.catalog.ListCustomizations(ctx, req.RestaurantID, ids, variant.ItemType)
		if err != nil {
			return in, model.NewCatalogUnavailableError(err)
		}
		for i := range list {
			custs[list[i].ID] = &list[i]
		}
	}
	in.custs = custs

	for _, sel := range req.Selections {
		c, ok := custs[sel.CustomizationID]
		if !ok {
			return in, model.NewSelectionInvalidError(sel.CustomizationID, "not found in catalog")
		}
		if !c.Available {
			return in, model.NewSelectionInvalidError(sel.CustomizationID, "not available")
		}
		if !c.AppliesToItemType(variant.ItemType) {
			return in, model.NewSelectionInvalidError(sel.CustomizationID,
				"not applicable to item type "+string(variant.ItemType))
		}
	}

	return in, nil
}

// normalizeRequest fills in the documented defaults: amount tier "normal"
// and, for pizza, placement "whole". The selections slice is cloned first;
// the caller's request is never written to.
func normalizeRequest(req *model.PriceRequest) {
	req.Selections = append([]model.Selection(nil), req.Selections...)
	for i := range req.Selections {
		if req.Selections[i].AmountTier == "" {
			req.Selections[i].AmountTier = model.TierNormal
		}
		if req.ItemType == model.ItemTypePizza {
			if req.Selections[i].Placement == "" {
				req.Selections[i].Placement = model.PlacementWhole
			}
		} else {
			req.Selections[i].Placement = ""
		}
	}
}

// validateRequest rejects missing or malformed fields before any catalog
// access.
func validateRequest(req model.PriceRequest) error {
	if req.RestaurantID == "" {
		return model.NewValidationError("restaurant_id", "is required")
	}
	if req.VariantID == "" {
		return model.NewValidationError("variant_id", "is required")
	}
	if !req.ItemType.Valid() {
		return model.NewValidationError("item_type", "must be one of pizza, chicken, generic")
	}
	if req.ItemType == model.ItemTypePizza {
		if req.SizeCode == "" {
			return model.NewValidationError("size_code", "is required for pizza")
		}
		if req.CrustCode == "" {
			return model.NewValidationError("crust_type", "is required for pizza")
		}
	}
	for _, sel := range req.Selections {
		if sel.CustomizationID == "" {
			return model.NewValidationError("selections", "customization_id is required")
		}
		if !sel.AmountTier.Valid() {
			return model.NewValidationError("selections", "unknown amount tier "+string(sel.AmountTier))
		}
		// "none" only exists for the chicken white-meat tier.
		if sel.AmountTier == model.TierNone && req.ItemType != model.ItemTypeChicken {
			return model.NewValidationError("selections",
				`amount tier "none" is only valid for chicken items`)
		}
		if sel.Placement != "" && !sel.Placement.Valid() {
			return model.NewValidationError("selections", "unknown placement "+string(sel.Placement))
		}
	}
	return nil
}

// customizationIDs collects the distinct customization ids referenced by the
// selections and the template defaults, preserving first-seen order.
func customizationIDs(selections []model.Selection, tpl *model.Template) []string {
	seen := map[string]bool{}
	var ids []string
	for _, sel := range selections {
		if sel.CustomizationID != "" && !seen[sel.CustomizationID] {
			seen[sel.CustomizationID] = true
			ids = append(ids, sel.CustomizationID)
		}
	}
	if tpl != nil {
		for _, d := range tpl.Defaults {
			if !seen[d.CustomizationID] {
				seen[d.CustomizationID] = true
				ids = append(ids, d.CustomizationID)
			}
		}
	}
	return ids
}

// requestFingerprint builds the canonical cache key for a request. Selections
// are order-sensitive on purpose: the breakdown order follows them.
func requestFingerprint(req model.PriceRequest) string {
	var b strings.Builder
	b.WriteString(req.RestaurantID)
	b.WriteByte('|')
	b.WriteString(string(req.ItemType))
	b.WriteByte('|')
	b.WriteString(req.VariantID)
	b.WriteByte('|')
	b.WriteString(req.SizeCode)
	b.WriteByte('|')
	b.WriteString(req.CrustCode)
	b.WriteByte('|')
	b.WriteString(req.TemplateID)
	for _, sel := range req.Selections {
		b.WriteByte('|')
		b.WriteString(sel.CustomizationID)
		b.WriteByte(':')
		b.WriteString(string(sel.AmountTier))
		b.WriteByte(':')
		b.WriteString(string(sel.Placement))
	}
	return b.String()
}
