package contracts

import "testing"

func TestGenerateKeyFromPath(t *testing.T) {
	cases := map[string]string{
		"datasets/property-dataset/v1.json":     "PropertyDataset/1.0.0",
		"datasets/rental-yield-dataset/v1.json": "RentalYieldDataset/1.0.0",
	}
	for path, want := range cases {
		if got := generateKeyFromPath(path); got != want {
			t.Errorf("generateKeyFromPath(%q): got %q, want %q", path, got, want)
		}
	}
}

func TestValidateDatasetAcceptsMinimalPayload(t *testing.T) {
	payload := []byte(`{"clusters": 2, "properties": [{"latitude": 19.0, "longitude": 72.9, "carpet_area_sqft": 500, "monthly_rent": 50000}]}`)
	if err := ValidateDataset("PropertyDataset/1.0.0", payload); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestValidateDatasetRejectsEmptyProperties(t *testing.T) {
	payload := []byte(`{"properties": []}`)
	if err := ValidateDataset("PropertyDataset/1.0.0", payload); err == nil {
		t.Error("expected validation error for empty properties array")
	}
}

func TestValidateDatasetRejectsWrongTypes(t *testing.T) {
	payload := []byte(`{"properties": [{"latitude": "not-a-number"}]}`)
	if err := ValidateDataset("PropertyDataset/1.0.0", payload); err == nil {
		t.Error("expected validation error for string latitude")
	}
}

func TestValidateDatasetUnknownSchema(t *testing.T) {
	if err := ValidateDataset("NoSuchDataset/1.0.0", []byte(`{}`)); err == nil {
		t.Error("expected error for unknown schema key")
	}
}
