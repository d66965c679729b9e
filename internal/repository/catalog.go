// Package repository provides data access for the menu and customization catalogs.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tavolo/pricing-service/internal/domain/model"
)

// Prices are stored as decimal strings so catalog documents round-trip
// without binary floating point drift.

// variantDocument is the MongoDB shape of a menu variant.
type variantDocument struct {
	ID                string    `bson:"_id"`
	ItemID            string    `bson:"item_id"`
	RestaurantID      string    `bson:"restaurant_id"`
	Name              string    `bson:"name"`
	ItemType          string    `bson:"item_type"`
	SizeCode          string    `bson:"size_code,omitempty"`
	CrustCode         string    `bson:"crust_code,omitempty"`
	BasePrice         string    `bson:"base_price"`
	WhiteMeatUpcharge string    `bson:"white_meat_upcharge,omitempty"`
	BasePrepMinutes   int       `bson:"base_prep_minutes"`
	UpdatedAt         time.Time `bson:"updated_at"`
	UpdatedBy         string    `bson:"updated_by,omitempty"`
}

// customizationDocument is the MongoDB shape of a customization.
type customizationDocument struct {
	ID           string               `bson:"_id"`
	RestaurantID string               `bson:"restaurant_id"`
	Name         string               `bson:"name"`
	Category     string               `bson:"category"`
	BasePrice    string               `bson:"base_price"`
	PriceType    string               `bson:"price_type"`
	Rules        pricingRulesDocument `bson:"pricing_rules,omitempty"`
	AppliesTo    []string             `bson:"applies_to,omitempty"`
	Available    bool                 `bson:"available"`
	UpdatedAt    time.Time            `bson:"updated_at"`
	UpdatedBy    string               `bson:"updated_by,omitempty"`
}

type pricingRulesDocument struct {
	SizeMultipliers   map[string]string `bson:"size_multipliers,omitempty"`
	TierMultipliers   map[string]string `bson:"tier_multipliers,omitempty"`
	VariantBasePrices map[string]string `bson:"variant_base_prices,omitempty"`
	PlacementFactors  map[string]string `bson:"placement_factors,omitempty"`
	PlacementPrices   map[string]string `bson:"placement_prices,omitempty"`
}

// crustPricingDocument is the MongoDB shape of a (restaurant, size, crust)
// price row.
type crustPricingDocument struct {
	RestaurantID string    `bson:"restaurant_id"`
	SizeCode     string    `bson:"size_code"`
	CrustCode    string    `bson:"crust_code"`
	BasePrice    string    `bson:"base_price"`
	Upcharge     string    `bson:"upcharge"`
	UpdatedAt    time.Time `bson:"updated_at"`
	UpdatedBy    string    `bson:"updated_by,omitempty"`
}

// templateDocument is the MongoDB shape of a specialty template.
type templateDocument struct {
	ID                    string                    `bson:"_id"`
	ItemID                string                    `bson:"item_id"`
	Name                  string                    `bson:"name"`
	CreditLimitPercentage string                    `bson:"credit_limit_percentage,omitempty"`
	Defaults              []templateDefaultDocument `bson:"defaults"`
	UpdatedAt             time.Time                 `bson:"updated_at"`
	UpdatedBy             string                    `bson:"updated_by,omitempty"`
}

type templateDefaultDocument struct {
	CustomizationID  string `bson:"customization_id"`
	DefaultTier      string `bson:"default_tier"`
	SubstitutionTier string `bson:"substitution_tier,omitempty"`
	Removable        bool   `bson:"removable"`
}

// CatalogRepository provides catalog access backed by MongoDB.
type CatalogRepository struct {
	variants       *mongo.Collection
	customizations *mongo.Collection
	crustPricing   *mongo.Collection
	templates      *mongo.Collection
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(db *MongoDB) *CatalogRepository {
	return &CatalogRepository{
		variants:       db.Variants,
		customizations: db.Customizations,
		crustPricing:   db.CrustPricing,
		templates:      db.Templates,
	}
}

// GetVariant returns the variant with the given id, or (nil, nil) if absent.
func (r *CatalogRepository) GetVariant(ctx context.Context, id string) (*model.Variant, error) {
	var doc variantDocument
	err := r.variants.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return variantFromDocument(doc)
}

// UpsertVariant creates or replaces a variant.
func (r *CatalogRepository) UpsertVariant(ctx context.Context, v model.Variant, updatedBy string) (*model.Variant, error) {
	doc := variantToDocument(v, updatedBy)
	_, err := r.variants.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// GetCrustPricing returns the crust/size price row, or (nil, nil) if absent.
func (r *CatalogRepository) GetCrustPricing(ctx context.Context, restaurantID, sizeCode, crustCode string) (*model.CrustPricing, error) {
	filter := bson.M{
		"restaurant_id": restaurantID,
		"size_code":     sizeCode,
		"crust_code":    crustCode,
	}
	var doc crustPricingDocument
	err := r.crustPricing.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return crustPricingFromDocument(doc)
}

// UpsertCrustPricing creates or replaces a crust/size price row.
func (r *CatalogRepository) UpsertCrustPricing(ctx context.Context, cp model.CrustPricing, updatedBy string) (*model.CrustPricing, error) {
	doc := crustPricingDocument{
		RestaurantID: cp.RestaurantID,
		SizeCode:     cp.SizeCode,
		CrustCode:    cp.CrustCode,
		BasePrice:    cp.BasePrice.String(),
		Upcharge:     cp.Upcharge.String(),
		UpdatedAt:    time.Now(),
		UpdatedBy:    updatedBy,
	}
	filter := bson.M{
		"restaurant_id": cp.RestaurantID,
		"size_code":     cp.SizeCode,
		"crust_code":    cp.CrustCode,
	}
	_, err := r.crustPricing.ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	return &cp, nil
}

// ListCustomizations returns the restaurant's customizations matching the
// given ids. Missing ids are simply not in the result.
func (r *CatalogRepository) ListCustomizations(ctx context.Context, restaurantID string, ids []string) ([]model.Customization, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := r.customizations.Find(ctx, bson.M{
		"restaurant_id": restaurantID,
		"_id":           bson.M{"$in": ids},
	})
	if err != nil {
		return nil, err
	}
	return decodeCustomizations(ctx, cursor)
}

// ListAllCustomizations returns the restaurant's customizations, newest first.
func (r *CatalogRepository) ListAllCustomizations(ctx context.Context, restaurantID string, limit int) ([]model.Customization, error) {
	opts := options.Find().SetSort(bson.M{"updated_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cursor, err := r.customizations.Find(ctx, bson.M{"restaurant_id": restaurantID}, opts)
	if err != nil {
		return nil, err
	}
	return decodeCustomizations(ctx, cursor)
}

// UpsertCustomization creates or replaces a customization.
func (r *CatalogRepository) UpsertCustomization(ctx context.Context, c model.Customization, updatedBy string) (*model.Customization, error) {
	doc := customizationToDocument(c, updatedBy)
	_, err := r.customizations.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	c.Kind = model.KindFromCategory(c.Category)
	return &c, nil
}

// GetTemplate returns the specialty template with the given id, or
// (nil, nil) if absent.
func (r *CatalogRepository) GetTemplate(ctx context.Context, id string) (*model.Template, error) {
	var doc templateDocument
	err := r.templates.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return templateFromDocument(doc)
}

// UpsertTemplate creates or replaces a specialty template.
func (r *CatalogRepository) UpsertTemplate(ctx context.Context, t model.Template, updatedBy string) (*model.Template, error) {
	doc := templateToDocument(t, updatedBy)
	_, err := r.templates.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func decodeCustomizations(ctx context.Context, cursor *mongo.Cursor) ([]model.Customization, error) {
	defer func() {
		_ = cursor.Close(ctx)
	}()
	var docs []customizationDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	result := make([]model.Customization, 0, len(docs))
	for _, doc := range docs {
		c, err := customizationFromDocument(doc)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	return result, nil
}

// Document mapping.

func parsePrice(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", field, s, err)
	}
	return d, nil
}

func parsePriceMap(field string, in map[string]string) (map[string]decimal.Decimal, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make(map[string]decimal.Decimal, len(in))
	for k, v := range in {
		d, err := parsePrice(field, v)
		if err != nil {
			return nil, err
		}
		out[k] = d
	}
	return out, nil
}

func formatPriceMap(in map[string]decimal.Decimal) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v.String()
	}
	return out
}

func variantFromDocument(doc variantDocument) (*model.Variant, error) {
	base, err := parsePrice("base_price", doc.BasePrice)
	if err != nil {
		return nil, err
	}
	upcharge, err := parsePrice("white_meat_upcharge", doc.WhiteMeatUpcharge)
	if err != nil {
		return nil, err
	}
	return &model.Variant{
		ID:                doc.ID,
		ItemID:            doc.ItemID,
		RestaurantID:      doc.RestaurantID,
		Name:              doc.Name,
		ItemType:          model.ItemType(doc.ItemType),
		SizeCode:          doc.SizeCode,
		CrustCode:         doc.CrustCode,
		BasePrice:         base,
		WhiteMeatUpcharge: upcharge,
		BasePrepMinutes:   doc.BasePrepMinutes,
	}, nil
}

func variantToDocument(v model.Variant, updatedBy string) variantDocument {
	return variantDocument{
		ID:                v.ID,
		ItemID:            v.ItemID,
		RestaurantID:      v.RestaurantID,
		Name:              v.Name,
		ItemType:          string(v.ItemType),
		SizeCode:          v.SizeCode,
		CrustCode:         v.CrustCode,
		BasePrice:         v.BasePrice.String(),
		WhiteMeatUpcharge: v.WhiteMeatUpcharge.String(),
		BasePrepMinutes:   v.BasePrepMinutes,
		UpdatedAt:         time.Now(),
		UpdatedBy:         updatedBy,
	}
}

func customizationFromDocument(doc customizationDocument) (*model.Customization, error) {
	base, err := parsePrice("base_price", doc.BasePrice)
	if err != nil {
		return nil, err
	}
	sizeMult, err := parsePriceMap("size_multipliers", doc.Rules.SizeMultipliers)
	if err != nil {
		return nil, err
	}
	tierMultRaw, err := parsePriceMap("tier_multipliers", doc.Rules.TierMultipliers)
	if err != nil {
		return nil, err
	}
	variantPrices, err := parsePriceMap("variant_base_prices", doc.Rules.VariantBasePrices)
	if err != nil {
		return nil, err
	}
	placementFactorsRaw, err := parsePriceMap("placement_factors", doc.Rules.PlacementFactors)
	if err != nil {
		return nil, err
	}
	placementPricesRaw, err := parsePriceMap("placement_prices", doc.Rules.PlacementPrices)
	if err != nil {
		return nil, err
	}

	var tierMult map[model.AmountTier]decimal.Decimal
	if len(tierMultRaw) > 0 {
		tierMult = make(map[model.AmountTier]decimal.Decimal, len(tierMultRaw))
		for k, v := range tierMultRaw {
			tierMult[model.AmountTier(k)] = v
		}
	}
	toPlacementMap := func(in map[string]decimal.Decimal) map[model.Placement]decimal.Decimal {
		if len(in) == 0 {
			return nil
		}
		out := make(map[model.Placement]decimal.Decimal, len(in))
		for k, v := range in {
			out[model.Placement(k)] = v
		}
		return out
	}

	var appliesTo []model.ItemType
	for _, t := range doc.AppliesTo {
		appliesTo = append(appliesTo, model.ItemType(t))
	}

	return &model.Customization{
		ID:           doc.ID,
		RestaurantID: doc.RestaurantID,
		Name:         doc.Name,
		Category:     doc.Category,
		Kind:         model.KindFromCategory(doc.Category),
		BasePrice:    base,
		PriceType:    model.PriceType(doc.PriceType),
		Rules: model.PricingRules{
			SizeMultipliers:   sizeMult,
			TierMultipliers:   tierMult,
			VariantBasePrices: variantPrices,
			PlacementFactors:  toPlacementMap(placementFactorsRaw),
			PlacementPrices:   toPlacementMap(placementPricesRaw),
		},
		AppliesTo: appliesTo,
		Available: doc.Available,
	}, nil
}

func customizationToDocument(c model.Customization, updatedBy string) customizationDocument {
	fromTierMap := func(in map[model.AmountTier]decimal.Decimal) map[string]string {
		if len(in) == 0 {
			return nil
		}
		out := make(map[string]string, len(in))
		for k, v := range in {
			out[string(k)] = v.String()
		}
		return out
	}
	fromPlacementMap := func(in map[model.Placement]decimal.Decimal) map[string]string {
		if len(in) == 0 {
			return nil
		}
		out := make(map[string]string, len(in))
		for k, v := range in {
			out[string(k)] = v.String()
		}
		return out
	}
	var appliesTo []string
	for _, t := range c.AppliesTo {
		appliesTo = append(appliesTo, string(t))
	}
	return customizationDocument{
		ID:           c.ID,
		RestaurantID: c.RestaurantID,
		Name:         c.Name,
		Category:     c.Category,
		BasePrice:    c.BasePrice.String(),
		PriceType:    string(c.PriceType),
		Rules: pricingRulesDocument{
			SizeMultipliers:   formatPriceMap(c.Rules.SizeMultipliers),
			TierMultipliers:   fromTierMap(c.Rules.TierMultipliers),
			VariantBasePrices: formatPriceMap(c.Rules.VariantBasePrices),
			PlacementFactors:  fromPlacementMap(c.Rules.PlacementFactors),
			PlacementPrices:   fromPlacementMap(c.Rules.PlacementPrices),
		},
		AppliesTo: appliesTo,
		Available: c.Available,
		UpdatedAt: time.Now(),
		UpdatedBy: updatedBy,
	}
}

func crustPricingFromDocument(doc crustPricingDocument) (*model.CrustPricing, error) {
	base, err := parsePrice("base_price", doc.BasePrice)
	if err != nil {
		return nil, err
	}
	upcharge, err := parsePrice("upcharge", doc.Upcharge)
	if err != nil {
		return nil, err
	}
	return &model.CrustPricing{
		RestaurantID: doc.RestaurantID,
		SizeCode:     doc.SizeCode,
		CrustCode:    doc.CrustCode,
		BasePrice:    base,
		Upcharge:     upcharge,
	}, nil
}

func templateFromDocument(doc templateDocument) (*model.Template, error) {
	limit, err := parsePrice("credit_limit_percentage", doc.CreditLimitPercentage)
	if err != nil {
		return nil, err
	}
	defaults := make([]model.TemplateDefault, 0, len(doc.Defaults))
	for _, d := range doc.Defaults {
		defaults = append(defaults, model.TemplateDefault{
			CustomizationID:  d.CustomizationID,
			DefaultTier:      model.AmountTier(d.DefaultTier),
			SubstitutionTier: model.AmountTier(d.SubstitutionTier),
			Removable:        d.Removable,
		})
	}
	return &model.Template{
		ID:                    doc.ID,
		ItemID:                doc.ItemID,
		Name:                  doc.Name,
		CreditLimitPercentage: limit,
		Defaults:              defaults,
	}, nil
}

func templateToDocument(t model.Template, updatedBy string) templateDocument {
	defaults := make([]templateDefaultDocument, 0, len(t.Defaults))
	for _, d := range t.Defaults {
		defaults = append(defaults, templateDefaultDocument{
			CustomizationID:  d.CustomizationID,
			DefaultTier:      string(d.DefaultTier),
			SubstitutionTier: string(d.SubstitutionTier),
			Removable:        d.Removable,
		})
	}
	return templateDocument{
		ID:                    t.ID,
		ItemID:                t.ItemID,
		Name:                  t.Name,
		CreditLimitPercentage: t.CreditLimitPercentage.String(),
		Defaults:              defaults,
		UpdatedAt:             time.Now(),
		UpdatedBy:             updatedBy,
	}
}
