package config

import "testing"

func TestValidateFieldNames(t *testing.T) {
	tests := []struct {
		name           string
		settings       FieldCollectionSettings
		expectedErrors int
		description    string
	}{
		{
			name: "well-formed settings have no conflicts",
			settings: FieldCollectionSettings{
				Name: "packages",
				Fields: []FieldSetting{
					{Name: "name", Weight: 3},
					{Name: "description", Weight: 1},
				},
				OrderingFields: []string{"updated", "likes"},
			},
			expectedErrors: 0,
			description:    "distinct field names and positive weights should pass",
		},
		{
			name: "duplicate field name",
			settings: FieldCollectionSettings{
				Name: "packages",
				Fields: []FieldSetting{
					{Name: "name", Weight: 3},
					{Name: "name", Weight: 1},
				},
			},
			expectedErrors: 1,
			description:    "the same field name twice should conflict",
		},
		{
			name: "zero weight field",
			settings: FieldCollectionSettings{
				Name: "packages",
				Fields: []FieldSetting{
					{Name: "name", Weight: 0},
				},
			},
			expectedErrors: 1,
			description:    "a zero weight should fail after ApplyDefaults is skipped",
		},
		{
			name: "empty collection name",
			settings: FieldCollectionSettings{
				Fields: []FieldSetting{{Name: "name", Weight: 1}},
			},
			expectedErrors: 1,
			description:    "an unnamed collection should conflict",
		},
		{
			name: "duplicate ordering field",
			settings: FieldCollectionSettings{
				Name:           "packages",
				Fields:         []FieldSetting{{Name: "name", Weight: 1}},
				OrderingFields: []string{"updated", "updated"},
			},
			expectedErrors: 1,
			description:    "duplicate ordering field names should conflict",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflicts := tt.settings.ValidateFieldNames()
			if len(conflicts) != tt.expectedErrors {
				t.Errorf("%s: expected %d conflicts, got %d: %v", tt.description, tt.expectedErrors, len(conflicts), conflicts)
			}
		})
	}
}

func TestApplyDefaultsFillsWeightAndSlices(t *testing.T) {
	s := FieldCollectionSettings{
		Name:   "packages",
		Fields: []FieldSetting{{Name: "name", Weight: 0}, {Name: "description", Weight: 2}},
	}
	s.ApplyDefaults()

	if s.Fields[0].Weight != 1 {
		t.Errorf("expected default weight 1, got %v", s.Fields[0].Weight)
	}
	if s.Fields[1].Weight != 2 {
		t.Errorf("expected explicit weight 2 to survive ApplyDefaults, got %v", s.Fields[1].Weight)
	}
	if s.OrderingFields == nil {
		t.Error("expected OrderingFields to be initialized to an empty slice, got nil")
	}
}
