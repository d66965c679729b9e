package service

import (
	"fmt"

	"github.com/tavolo/pricing-service/internal/domain/model"
)

// pricePizza prices a pizza variant: crust/size base pricing plus fractional
// placement toppings.
func (s *PriceCalculatorService) pricePizza(in strategyInput) (AssemblyInput, error) {
	if in.crust == nil {
		return AssemblyInput{}, model.NewPricingRuleNotFoundError(
			fmt.Sprintf("no crust pricing for size %q crust %q", in.req.SizeCode, in.req.CrustCode))
	}

	lines := make([]model.LineItem, 0, len(in.req.Selections))
	for _, sel := range in.req.Selections {
		c := in.custs[sel.CustomizationID]
		lines = append(lines, s.priceSelection(in, sel, c, true))
	}

	return AssemblyInput{
		BaseName:      in.variant.Name,
		Base:          in.crust.BasePrice,
		CrustName:     fmt.Sprintf("%s %s crust", in.req.SizeCode, in.req.CrustCode),
		CrustUpcharge: in.crust.Upcharge,
		TemplateName:  templateName(in),
		Lines:         lines,
		CreditLines:   s.substitutionCredits(in, in.crust.BasePrice, true),
		PrepMinutes:   basePrepMinutes(in.variant.BasePrepMinutes, len(in.req.Selections)),
	}, nil
}
