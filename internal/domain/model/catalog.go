// Package model defines the core domain entities for the pricing service.
package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ItemType identifies which pricing strategy applies to a variant.
type ItemType string

const (
	// ItemTypePizza uses crust/size pricing and fractional topping placement.
	ItemTypePizza ItemType = "pizza"
	// ItemTypeChicken uses white-meat tier multipliers and flat add-ons.
	ItemTypeChicken ItemType = "chicken"
	// ItemTypeGeneric uses fixed or tiered modifiers only.
	ItemTypeGeneric ItemType = "generic"
)

// Valid reports whether the item type is one of the known strategies.
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypePizza, ItemTypeChicken, ItemTypeGeneric:
		return true
	}
	return false
}

// AmountTier is the coverage/intensity level of a customization.
type AmountTier string

const (
	TierNone   AmountTier = "none"
	TierLight  AmountTier = "light"
	TierNormal AmountTier = "normal"
	TierExtra  AmountTier = "extra"
	TierXXtra  AmountTier = "xxtra"
)

// Valid reports whether the tier is a known amount tier.
func (t AmountTier) Valid() bool {
	switch t {
	case TierNone, TierLight, TierNormal, TierExtra, TierXXtra:
		return true
	}
	return false
}

// Placement is the geometric coverage of a pizza topping.
type Placement string

const (
	PlacementWhole    Placement = "whole"
	PlacementLeft     Placement = "left"
	PlacementRight    Placement = "right"
	PlacementQuarter1 Placement = "quarter-1"
	PlacementQuarter2 Placement = "quarter-2"
	PlacementQuarter3 Placement = "quarter-3"
	PlacementQuarter4 Placement = "quarter-4"
)

// Valid reports whether the placement is a known placement code.
func (p Placement) Valid() bool {
	switch p {
	case PlacementWhole, PlacementLeft, PlacementRight,
		PlacementQuarter1, PlacementQuarter2, PlacementQuarter3, PlacementQuarter4:
		return true
	}
	return false
}

// IsQuarter reports whether the placement covers a single quarter.
func (p Placement) IsQuarter() bool {
	return strings.HasPrefix(string(p), "quarter-")
}

// PriceType determines how a customization's price reacts to context.
type PriceType string

const (
	// PriceTypeFixed returns the base price regardless of context.
	PriceTypeFixed PriceType = "fixed"
	// PriceTypeMultiplied scales the base price by size and tier multipliers.
	PriceTypeMultiplied PriceType = "multiplied"
	// PriceTypeTiered looks up an absolute price per variant or size.
	PriceTypeTiered PriceType = "tiered"
)

// Valid reports whether the price type is a known pricing mode.
func (p PriceType) Valid() bool {
	switch p {
	case PriceTypeFixed, PriceTypeMultiplied, PriceTypeTiered:
		return true
	}
	return false
}

// CustomizationKind classifies a customization once, when it is loaded
// from the catalog, instead of re-parsing category strings per call.
type CustomizationKind string

const (
	KindTopping     CustomizationKind = "topping"
	KindModifier    CustomizationKind = "modifier"
	KindPreparation CustomizationKind = "preparation"
	KindCondiment   CustomizationKind = "condiment"
)

// toppingCategoryPrefix marks catalog categories that represent toppings
// (topping_meat, topping_veggie, ...).
const toppingCategoryPrefix = "topping_"

// KindFromCategory resolves the customization kind from a catalog category tag.
func KindFromCategory(category string) CustomizationKind {
	switch {
	case strings.HasPrefix(category, toppingCategoryPrefix) || category == "topping":
		return KindTopping
	case category == "preparation":
		return KindPreparation
	case category == "condiments" || category == "condiment":
		return KindCondiment
	default:
		return KindModifier
	}
}

// Variant is one purchasable size/preparation of a menu item.
// Variants are read from the menu catalog and never mutated by the engine.
type Variant struct {
	ID                string
	ItemID            string
	RestaurantID      string
	Name              string
	ItemType          ItemType
	SizeCode          string
	CrustCode         string
	BasePrice         decimal.Decimal
	WhiteMeatUpcharge decimal.Decimal
	BasePrepMinutes   int
}

// CrustPricing is the (restaurant, size, crust) price row for pizzas.
// When present it supersedes the variant's own base price.
type CrustPricing struct {
	RestaurantID string
	SizeCode     string
	CrustCode    string
	BasePrice    decimal.Decimal
	Upcharge     decimal.Decimal
}

// PricingRules are the optional per-customization overrides consulted by the
// rule resolver before falling back to restaurant-wide defaults.
type PricingRules struct {
	// SizeMultipliers maps a size code to a multiplier.
	SizeMultipliers map[string]decimal.Decimal
	// TierMultipliers maps an amount tier to a multiplier.
	TierMultipliers map[AmountTier]decimal.Decimal
	// VariantBasePrices maps a variant id or size code to an absolute price
	// (price type "tiered").
	VariantBasePrices map[string]decimal.Decimal
	// PlacementFactors maps a placement to a discount factor.
	PlacementFactors map[Placement]decimal.Decimal
	// PlacementPrices maps a placement to an absolute price, superseding
	// PlacementFactors when both exist.
	PlacementPrices map[Placement]decimal.Decimal
}

// Customization is a restaurant-scoped, reusable pricing unit (topping or
// modifier).
type Customization struct {
	ID           string
	RestaurantID string
	Name         string
	Category     string
	// Kind is resolved from Category once at load time.
	Kind      CustomizationKind
	BasePrice decimal.Decimal
	PriceType PriceType
	Rules     PricingRules
	// AppliesTo lists the item types this customization may be selected on.
	AppliesTo []ItemType
	Available bool
}

// AppliesToItemType reports whether the customization may be selected on the
// given item type. An empty AppliesTo list means it applies everywhere.
func (c *Customization) AppliesToItemType(t ItemType) bool {
	if len(c.AppliesTo) == 0 {
		return true
	}
	for _, it := range c.AppliesTo {
		if it == t {
			return true
		}
	}
	return false
}

// TemplateDefault is one free inclusion declared by a specialty template.
type TemplateDefault struct {
	CustomizationID  string
	DefaultTier      AmountTier
	SubstitutionTier AmountTier
	Removable        bool
}

// Template is a specialty-item definition listing the customizations that are
// included free by default.
type Template struct {
	ID     string
	ItemID string
	Name   string
	// CreditLimitPercentage caps the total substitution credit as a
	// percentage of the variant base price.
	CreditLimitPercentage decimal.Decimal
	Defaults              []TemplateDefault
}

// Default returns the template default for the given customization id,
// or nil if the customization is not a template default.
func (t *Template) Default(customizationID string) *TemplateDefault {
	if t == nil {
		return nil
	}
	for i := range t.Defaults {
		if t.Defaults[i].CustomizationID == customizationID {
			return &t.Defaults[i]
		}
	}
	return nil
}
