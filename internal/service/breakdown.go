package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tavolo/pricing-service/internal/domain/model"
)

// Preparation-time constants. Tunable per restaurant in principle; these are
// the system defaults.
const (
	// PrepPerSelectionMinutes is added per selected customization.
	PrepPerSelectionMinutes = 2
	// PrepSelectionCapMinutes caps the selection-driven prep time.
	PrepSelectionCapMinutes = 10
	// WhiteMeatPrepBonusMinutes is added for any non-none white-meat tier.
	WhiteMeatPrepBonusMinutes = 5
	// WhiteMeatXXtraPrepBonusMinutes is added on top for the xxtra tier.
	WhiteMeatXXtraPrepBonusMinutes = 5
)

// BreakdownAssembler merges base price, upcharges, and per-selection line
// items into an ordered breakdown and computes the final total.
type BreakdownAssembler struct{}

// NewBreakdownAssembler creates a BreakdownAssembler.
func NewBreakdownAssembler() *BreakdownAssembler {
	return &BreakdownAssembler{}
}

// AssemblyInput carries the pieces a strategy produced for assembly.
type AssemblyInput struct {
	BaseName      string
	Base          decimal.Decimal
	CrustName     string
	CrustUpcharge decimal.Decimal
	// TemplateName, when non-empty, adds a zero-cost inclusion marker line.
	TemplateName string
	// Lines are the selection line items in the order the caller supplied
	// selections. Callers rely on this order for receipt rendering.
	Lines []model.LineItem
	// CreditLines are substitution credits, with negative prices.
	CreditLines []model.LineItem
	PrepMinutes int
}

// Assemble produces the final PriceBreakdown and re-validates that the line
// items sum exactly to the final price. A mismatch is an internal defect,
// never silently corrected.
func (a *BreakdownAssembler) Assemble(in AssemblyInput) (*model.PriceBreakdown, error) {
	lines := make([]model.LineItem, 0, len(in.Lines)+len(in.CreditLines)+3)

	lines = append(lines, model.LineItem{
		Name:  in.BaseName,
		Price: in.Base,
		Kind:  model.LineKindBase,
	})
	if in.CrustUpcharge.IsPositive() {
		lines = append(lines, model.LineItem{
			Name:  in.CrustName,
			Price: in.CrustUpcharge,
			Kind:  model.LineKindCrust,
		})
	}
	if in.TemplateName != "" {
		lines = append(lines, model.LineItem{
			Name:      in.TemplateName,
			Price:     decimal.Zero,
			Kind:      model.LineKindTemplateDefault,
			IsDefault: true,
		})
	}
	lines = append(lines, in.Lines...)
	lines = append(lines, in.CreditLines...)

	toppingCost := decimal.Zero
	modifierCost := decimal.Zero
	credit := decimal.Zero
	for _, l := range in.Lines {
		switch l.Kind {
		case model.LineKindTopping, model.LineKindWhiteMeat, model.LineKindTemplateDefault:
			toppingCost = toppingCost.Add(l.Price)
		case model.LineKindModifier:
			modifierCost = modifierCost.Add(l.Price)
		}
	}
	for _, l := range in.CreditLines {
		credit = credit.Sub(l.Price) // credit line prices are negative
	}

	final := in.Base.
		Add(in.CrustUpcharge).
		Add(toppingCost).
		Add(modifierCost).
		Sub(credit)

	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Price)
	}
	if !sum.Equal(final) {
		return nil, model.NewAssemblyInvariantError(
			fmt.Sprintf("line items sum to %s, final price is %s", sum.StringFixed(2), final.StringFixed(2)))
	}

	return &model.PriceBreakdown{
		BasePrice:            in.Base,
		CrustUpcharge:        in.CrustUpcharge,
		ToppingCost:          toppingCost,
		ModifierCost:         modifierCost,
		SubstitutionCredit:   credit,
		FinalPrice:           final,
		Breakdown:            lines,
		EstimatedPrepMinutes: in.PrepMinutes,
	}, nil
}

// basePrepMinutes computes the selection-driven portion of the prep estimate.
func basePrepMinutes(baseline, selectionCount int) int {
	extra := selectionCount * PrepPerSelectionMinutes
	if extra > PrepSelectionCapMinutes {
		extra = PrepSelectionCapMinutes
	}
	return baseline + extra
}
