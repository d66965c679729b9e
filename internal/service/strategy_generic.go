package service

import (
	"github.com/tavolo/pricing-service/internal/domain/model"
)

// priceGeneric prices a generic variant (sandwiches, sides, beverages):
// fixed or tiered modifiers only, no placement concept.
func (s *PriceCalculatorService) priceGeneric(in strategyInput) (AssemblyInput, error) {
	lines := make([]model.LineItem, 0, len(in.req.Selections))
	for _, sel := range in.req.Selections {
		c := in.custs[sel.CustomizationID]

		// Generic items know only fixed and tiered pricing; a multiplied
		// customization is priced at its base.
		if c.PriceType == model.PriceTypeMultiplied {
			flat := *c
			flat.PriceType = model.PriceTypeFixed
			lines = append(lines, s.priceSelection(in, sel, &flat, false))
			continue
		}
		lines = append(lines, s.priceSelection(in, sel, c, false))
	}

	return AssemblyInput{
		BaseName:     in.variant.Name,
		Base:         in.variant.BasePrice,
		TemplateName: templateName(in),
		Lines:        lines,
		CreditLines:  s.substitutionCredits(in, in.variant.BasePrice, false),
		PrepMinutes:  basePrepMinutes(in.variant.BasePrepMinutes, len(in.req.Selections)),
	}, nil
}
