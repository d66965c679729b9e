package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tavolo/pricing-service/internal/domain/model"
)

// TestTemplateResolver_ResolveDefaults tests default inclusion resolution.
func TestTemplateResolver_ResolveDefaults(t *testing.T) {
	resolver := NewTemplateResolver()

	t.Run("nil template yields an empty map", func(t *testing.T) {
		defaults := resolver.ResolveDefaults(nil)
		assert.NotNil(t, defaults)
		assert.Empty(t, defaults)
	})

	t.Run("defaults are keyed by customization id", func(t *testing.T) {
		tpl := &model.Template{
			ID:   "tpl-deluxe",
			Name: "Deluxe",
			Defaults: []model.TemplateDefault{
				{CustomizationID: "cust-pepperoni", DefaultTier: model.TierNormal, Removable: true},
				{CustomizationID: "cust-mushroom", DefaultTier: model.TierLight},
			},
		}

		defaults := resolver.ResolveDefaults(tpl)
		assert.Len(t, defaults, 2)
		assert.Equal(t, model.TierNormal, defaults["cust-pepperoni"].DefaultTier)
		assert.True(t, defaults["cust-pepperoni"].Removable)
		assert.Equal(t, model.TierLight, defaults["cust-mushroom"].DefaultTier)
		assert.False(t, defaults["cust-mushroom"].Removable)
	})
}

// TestTemplateResolver_RemovedDefaults tests substitution credit candidates.
func TestTemplateResolver_RemovedDefaults(t *testing.T) {
	resolver := NewTemplateResolver()

	tpl := &model.Template{
		ID: "tpl-deluxe",
		Defaults: []model.TemplateDefault{
			{CustomizationID: "cust-pepperoni", DefaultTier: model.TierNormal, Removable: true},
			{CustomizationID: "cust-mushroom", DefaultTier: model.TierNormal, Removable: true},
			{CustomizationID: "cust-cheese", DefaultTier: model.TierNormal, Removable: false},
		},
	}

	tests := []struct {
		name       string
		tpl        *model.Template
		selections []model.Selection
		expected   []string
	}{
		{
			name:     "nil template yields nothing",
			tpl:      nil,
			expected: nil,
		},
		{
			name:     "no selections removes every removable default",
			tpl:      tpl,
			expected: []string{"cust-pepperoni", "cust-mushroom"},
		},
		{
			name: "selected defaults are not removed",
			tpl:  tpl,
			selections: []model.Selection{
				{CustomizationID: "cust-pepperoni", AmountTier: model.TierNormal},
			},
			expected: []string{"cust-mushroom"},
		},
		{
			name: "non-removable defaults never yield credits",
			tpl:  tpl,
			selections: []model.Selection{
				{CustomizationID: "cust-pepperoni"},
				{CustomizationID: "cust-mushroom"},
			},
			expected: nil,
		},
		{
			name: "selection at any tier counts as keeping the default",
			tpl:  tpl,
			selections: []model.Selection{
				{CustomizationID: "cust-pepperoni", AmountTier: model.TierXXtra},
				{CustomizationID: "cust-mushroom", AmountTier: model.TierLight},
			},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			removed := resolver.RemovedDefaults(tt.tpl, tt.selections)
			ids := make([]string, 0, len(removed))
			for _, d := range removed {
				ids = append(ids, d.CustomizationID)
			}
			if tt.expected == nil {
				assert.Empty(t, ids)
			} else {
				assert.Equal(t, tt.expected, ids)
			}
		})
	}
}
