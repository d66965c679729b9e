package service

import (
	"github.com/tavolo/pricing-service/internal/domain/model"
)

// TemplateResolver resolves the free default inclusions of a specialty
// template. A missing template is not an error: non-specialty items simply
// have no free inclusions.
type TemplateResolver struct{}

// NewTemplateResolver creates a TemplateResolver.
func NewTemplateResolver() *TemplateResolver {
	return &TemplateResolver{}
}

// ResolveDefaults returns the template's default customizations keyed by
// customization id. Returns an empty map when the template is nil.
func (tr *TemplateResolver) ResolveDefaults(tpl *model.Template) map[string]model.TemplateDefault {
	if tpl == nil {
		return map[string]model.TemplateDefault{}
	}
	defaults := make(map[string]model.TemplateDefault, len(tpl.Defaults))
	for _, d := range tpl.Defaults {
		defaults[d.CustomizationID] = d
	}
	return defaults
}

// RemovedDefaults returns the removable template defaults that do not appear
// in any selection, in template declaration order. These are the candidates
// for substitution credits.
func (tr *TemplateResolver) RemovedDefaults(tpl *model.Template, selections []model.Selection) []model.TemplateDefault {
	if tpl == nil {
		return nil
	}
	selected := make(map[string]bool, len(selections))
	for _, s := range selections {
		selected[s.CustomizationID] = true
	}
	var removed []model.TemplateDefault
	for _, d := range tpl.Defaults {
		if d.Removable && !selected[d.CustomizationID] {
			removed = append(removed, d)
		}
	}
	return removed
}
