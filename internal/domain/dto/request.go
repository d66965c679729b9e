// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tavolo/pricing-service/internal/domain/model"
)

// SelectionDTO is one customer-chosen customization in a price request.
// The same customization id may appear more than once with different
// placements.
type SelectionDTO struct {
	// CustomizationID references a customization in the restaurant's catalog.
	CustomizationID string `json:"customization_id" binding:"required" example:"cust-pepperoni"`
	// Amount is the amount tier. Defaults to "normal" when omitted.
	Amount string `json:"amount,omitempty" example:"normal" enums:"none,light,normal,extra,xxtra"`
	// Placement is the pizza placement. Defaults to "whole" for pizzas and is
	// ignored for other item types.
	Placement string `json:"placement,omitempty" example:"whole" enums:"whole,left,right,quarter-1,quarter-2,quarter-3,quarter-4"`
} // @name Selection

// CalculatePriceRequest represents the JSON request body for the price
// calculation endpoint.
//
// RestaurantID and VariantID are always required. SizeCode and CrustType are
// required for pizza variants only.
//
// @Description Request to price a configured menu item
// @Example {"restaurant_id": "rest-1", "variant_id": "var-lg-thin", "item_type": "pizza", "size_code": "12in", "crust_type": "thin", "selections": [{"customization_id": "cust-pepperoni", "amount": "normal", "placement": "whole"}]}
type CalculatePriceRequest struct {
	// RestaurantID scopes every catalog lookup.
	RestaurantID string `json:"restaurant_id" binding:"required" example:"rest-1"`
	// VariantID is the purchasable size/preparation being priced.
	VariantID string `json:"variant_id" binding:"required" example:"var-lg-thin"`
	// ItemType selects the pricing strategy.
	ItemType string `json:"item_type" binding:"required" example:"pizza" enums:"pizza,chicken,generic"`
	// SizeCode is required for pizzas (e.g. "12in").
	SizeCode string `json:"size_code,omitempty" example:"12in"`
	// CrustType is required for pizzas (e.g. "thin").
	CrustType string `json:"crust_type,omitempty" example:"thin"`
	// TemplateID references a specialty template whose defaults are free.
	TemplateID string `json:"template_id,omitempty" example:"tpl-deluxe"`
	// Selections are the chosen customizations, in order.
	Selections []SelectionDTO `json:"selections"`
} // @name CalculatePriceRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidItemType is returned when item_type is not a known strategy.
	ErrInvalidItemType = &ValidationError{
		Field:   "item_type",
		Message: "must be one of pizza, chicken, generic",
	}
	// ErrMissingSizeCode is returned when a pizza request omits size_code.
	ErrMissingSizeCode = &ValidationError{
		Field:   "size_code",
		Message: "required for pizza variants",
	}
	// ErrMissingCrustType is returned when a pizza request omits crust_type.
	ErrMissingCrustType = &ValidationError{
		Field:   "crust_type",
		Message: "required for pizza variants",
	}
)

// Validate performs custom validation beyond the binding tags.
// The engine re-validates tiers and placements per selection; this catches
// only what can be rejected before touching the catalog.
func (r *CalculatePriceRequest) Validate() error {
	if !model.ItemType(r.ItemType).Valid() {
		return ErrInvalidItemType
	}
	if model.ItemType(r.ItemType) == model.ItemTypePizza {
		if r.SizeCode == "" {
			return ErrMissingSizeCode
		}
		if r.CrustType == "" {
			return ErrMissingCrustType
		}
	}
	return nil
}

// ToModel converts the request DTO into the domain price request.
func (r *CalculatePriceRequest) ToModel() model.PriceRequest {
	selections := make([]model.Selection, 0, len(r.Selections))
	for _, s := range r.Selections {
		selections = append(selections, model.Selection{
			CustomizationID: s.CustomizationID,
			AmountTier:      model.AmountTier(s.Amount),
			Placement:       model.Placement(s.Placement),
		})
	}
	return model.PriceRequest{
		RestaurantID: r.RestaurantID,
		ItemType:     model.ItemType(r.ItemType),
		VariantID:    r.VariantID,
		SizeCode:     r.SizeCode,
		CrustCode:    r.CrustType,
		TemplateID:   r.TemplateID,
		Selections:   selections,
	}
}

// UpsertVariantRequest represents the JSON request body for creating or
// replacing a variant.
type UpsertVariantRequest struct {
	ID                string `json:"id" binding:"required"`
	ItemID            string `json:"item_id" binding:"required"`
	RestaurantID      string `json:"restaurant_id" binding:"required"`
	Name              string `json:"name" binding:"required"`
	ItemType          string `json:"item_type" binding:"required"`
	SizeCode          string `json:"size_code,omitempty"`
	CrustCode         string `json:"crust_code,omitempty"`
	BasePrice         string `json:"base_price" binding:"required" example:"15.95"`
	WhiteMeatUpcharge string `json:"white_meat_upcharge,omitempty" example:"1.20"`
	BasePrepMinutes   int    `json:"base_prep_minutes,omitempty"`
	UpdatedBy         string `json:"updated_by,omitempty"`
} // @name UpsertVariantRequest

// ToModel converts the request into a domain variant. Prices are decimal
// strings; a malformed price yields a ValidationError.
func (r *UpsertVariantRequest) ToModel() (model.Variant, error) {
	base, err := parsePriceField("base_price", r.BasePrice)
	if err != nil {
		return model.Variant{}, err
	}
	whiteMeat := decimal.Zero
	if r.WhiteMeatUpcharge != "" {
		whiteMeat, err = parsePriceField("white_meat_upcharge", r.WhiteMeatUpcharge)
		if err != nil {
			return model.Variant{}, err
		}
	}
	if !model.ItemType(r.ItemType).Valid() {
		return model.Variant{}, ErrInvalidItemType
	}
	return model.Variant{
		ID:                r.ID,
		ItemID:            r.ItemID,
		RestaurantID:      r.RestaurantID,
		Name:              r.Name,
		ItemType:          model.ItemType(r.ItemType),
		SizeCode:          r.SizeCode,
		CrustCode:         r.CrustCode,
		BasePrice:         base,
		WhiteMeatUpcharge: whiteMeat,
		BasePrepMinutes:   r.BasePrepMinutes,
	}, nil
}

// UpsertCrustPricingRequest represents the JSON request body for creating or
// replacing a crust pricing row.
type UpsertCrustPricingRequest struct {
	RestaurantID string `json:"restaurant_id" binding:"required"`
	SizeCode     string `json:"size_code" binding:"required"`
	CrustCode    string `json:"crust_code" binding:"required"`
	BasePrice    string `json:"base_price" binding:"required" example:"15.95"`
	Upcharge     string `json:"upcharge,omitempty" example:"0.00"`
	UpdatedBy    string `json:"updated_by,omitempty"`
} // @name UpsertCrustPricingRequest

// ToModel converts the request into a domain crust pricing row.
func (r *UpsertCrustPricingRequest) ToModel() (model.CrustPricing, error) {
	base, err := parsePriceField("base_price", r.BasePrice)
	if err != nil {
		return model.CrustPricing{}, err
	}
	upcharge := decimal.Zero
	if r.Upcharge != "" {
		upcharge, err = parsePriceField("upcharge", r.Upcharge)
		if err != nil {
			return model.CrustPricing{}, err
		}
	}
	return model.CrustPricing{
		RestaurantID: r.RestaurantID,
		SizeCode:     r.SizeCode,
		CrustCode:    r.CrustCode,
		BasePrice:    base,
		Upcharge:     upcharge,
	}, nil
}

// PricingRulesDTO carries optional per-customization rule overrides. All
// prices and multipliers are decimal strings.
type PricingRulesDTO struct {
	SizeMultipliers   map[string]string `json:"size_multipliers,omitempty"`
	TierMultipliers   map[string]string `json:"tier_multipliers,omitempty"`
	VariantBasePrices map[string]string `json:"variant_base_prices,omitempty"`
	PlacementFactors  map[string]string `json:"placement_factors,omitempty"`
	PlacementPrices   map[string]string `json:"placement_prices,omitempty"`
} // @name PricingRules

// UpsertCustomizationRequest represents the JSON request body for creating or
// replacing a customization.
type UpsertCustomizationRequest struct {
	ID           string           `json:"id" binding:"required"`
	RestaurantID string           `json:"restaurant_id" binding:"required"`
	Name         string           `json:"name" binding:"required"`
	Category     string           `json:"category" binding:"required" example:"topping_meat"`
	BasePrice    string           `json:"base_price" binding:"required" example:"1.85"`
	PriceType    string           `json:"price_type" binding:"required" enums:"fixed,multiplied,tiered"`
	Rules        *PricingRulesDTO `json:"rules,omitempty"`
	AppliesTo    []string         `json:"applies_to,omitempty"`
	Available    *bool            `json:"available,omitempty"`
} // @name UpsertCustomizationRequest

// ToModel converts the request into a domain customization. The kind is
// resolved from the category here so it never has to be stored.
func (r *UpsertCustomizationRequest) ToModel() (model.Customization, error) {
	base, err := parsePriceField("base_price", r.BasePrice)
	if err != nil {
		return model.Customization{}, err
	}
	if !model.PriceType(r.PriceType).Valid() {
		return model.Customization{}, &ValidationError{
			Field:   "price_type",
			Message: "must be one of fixed, multiplied, tiered",
		}
	}
	rules, err := r.rulesToModel()
	if err != nil {
		return model.Customization{}, err
	}
	appliesTo := make([]model.ItemType, 0, len(r.AppliesTo))
	for _, t := range r.AppliesTo {
		it := model.ItemType(t)
		if !it.Valid() {
			return model.Customization{}, &ValidationError{
				Field:   "applies_to",
				Message: "unknown item type " + t,
			}
		}
		appliesTo = append(appliesTo, it)
	}
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return model.Customization{
		ID:           r.ID,
		RestaurantID: r.RestaurantID,
		Name:         r.Name,
		Category:     r.Category,
		Kind:         model.KindFromCategory(r.Category),
		BasePrice:    base,
		PriceType:    model.PriceType(r.PriceType),
		Rules:        rules,
		AppliesTo:    appliesTo,
		Available:    available,
	}, nil
}

func (r *UpsertCustomizationRequest) rulesToModel() (model.PricingRules, error) {
	var rules model.PricingRules
	if r.Rules == nil {
		return rules, nil
	}
	var err error
	if rules.SizeMultipliers, err = parsePriceMapField("rules.size_multipliers", r.Rules.SizeMultipliers); err != nil {
		return rules, err
	}
	tiers, err := parsePriceMapField("rules.tier_multipliers", r.Rules.TierMultipliers)
	if err != nil {
		return rules, err
	}
	if len(tiers) > 0 {
		rules.TierMultipliers = make(map[model.AmountTier]decimal.Decimal, len(tiers))
		for k, v := range tiers {
			rules.TierMultipliers[model.AmountTier(k)] = v
		}
	}
	if rules.VariantBasePrices, err = parsePriceMapField("rules.variant_base_prices", r.Rules.VariantBasePrices); err != nil {
		return rules, err
	}
	factors, err := parsePriceMapField("rules.placement_factors", r.Rules.PlacementFactors)
	if err != nil {
		return rules, err
	}
	if len(factors) > 0 {
		rules.PlacementFactors = make(map[model.Placement]decimal.Decimal, len(factors))
		for k, v := range factors {
			rules.PlacementFactors[model.Placement(k)] = v
		}
	}
	prices, err := parsePriceMapField("rules.placement_prices", r.Rules.PlacementPrices)
	if err != nil {
		return rules, err
	}
	if len(prices) > 0 {
		rules.PlacementPrices = make(map[model.Placement]decimal.Decimal, len(prices))
		for k, v := range prices {
			rules.PlacementPrices[model.Placement(k)] = v
		}
	}
	return rules, nil
}

// TemplateDefaultDTO is one free inclusion declared by a template.
type TemplateDefaultDTO struct {
	CustomizationID  string `json:"customization_id" binding:"required"`
	DefaultTier      string `json:"default_tier,omitempty" example:"normal"`
	SubstitutionTier string `json:"substitution_tier,omitempty" example:"normal"`
	Removable        bool   `json:"removable,omitempty"`
} // @name TemplateDefault

// UpsertTemplateRequest represents the JSON request body for creating or
// replacing a specialty template.
type UpsertTemplateRequest struct {
	ID                    string               `json:"id" binding:"required"`
	ItemID                string               `json:"item_id" binding:"required"`
	Name                  string               `json:"name" binding:"required"`
	CreditLimitPercentage string               `json:"credit_limit_percentage,omitempty" example:"50"`
	Defaults              []TemplateDefaultDTO `json:"defaults" binding:"required,min=1"`
} // @name UpsertTemplateRequest

// ToModel converts the request into a domain template.
func (r *UpsertTemplateRequest) ToModel() (model.Template, error) {
	limit := decimal.Zero
	if r.CreditLimitPercentage != "" {
		var err error
		limit, err = parsePriceField("credit_limit_percentage", r.CreditLimitPercentage)
		if err != nil {
			return model.Template{}, err
		}
	}
	defaults := make([]model.TemplateDefault, 0, len(r.Defaults))
	for _, d := range r.Defaults {
		tier := model.AmountTier(d.DefaultTier)
		if d.DefaultTier == "" {
			tier = model.TierNormal
		}
		defaults = append(defaults, model.TemplateDefault{
			CustomizationID:  d.CustomizationID,
			DefaultTier:      tier,
			SubstitutionTier: model.AmountTier(d.SubstitutionTier),
			Removable:        d.Removable,
		})
	}
	return model.Template{
		ID:                    r.ID,
		ItemID:                r.ItemID,
		Name:                  r.Name,
		CreditLimitPercentage: limit,
		Defaults:              defaults,
	}, nil
}

func parsePriceField(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &ValidationError{Field: field, Message: "must be a decimal number"}
	}
	return d, nil
}

func parsePriceMapField(field string, in map[string]string) (map[string]decimal.Decimal, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make(map[string]decimal.Decimal, len(in))
	for k, v := range in {
		d, err := parsePriceField(field+"."+k, v)
		if err != nil {
			return nil, err
		}
		out[k] = d
	}
	return out, nil
}
