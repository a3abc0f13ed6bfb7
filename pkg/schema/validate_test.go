package schema

import (
	"encoding/json"
	"testing"

	"github.com/tripweaver/tripweaver/pkg/domain"
)

func TestValidate_Success(t *testing.T) {
	schema := Schema{
		"city":     String(),
		"days":     Int(),
		"price":    Float(),
		"snapshot": Object(),
		"notes":    Slice(String()),
	}

	data := map[string]any{
		"city":     "Paris",
		"days":     3,
		"price":    650.0,
		"snapshot": map[string]any{"temp": 18.0},
		"notes":    []string{"central", "walkable"},
	}

	err := Validate(schema, data)
	if err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_MissingField(t *testing.T) {
	schema := Schema{
		"city": String(),
		"days": Int(),
	}

	data := map[string]any{
		"city": "Paris",
		// missing days
	}

	err := Validate(schema, data)
	if err == nil {
		t.Fatal("Validate() should return error for missing field")
	}

	aggr, ok := err.(*AggregateError)
	if !ok {
		t.Fatalf("error should be *AggregateError, got %T", err)
	}

	if len(aggr.Errors) != 1 {
		t.Errorf("Validate() = %d errors, want 1", len(aggr.Errors))
	}

	validErr, ok := aggr.Errors[0].(*ValidationError)
	if !ok {
		t.Fatalf("error should be *ValidationError, got %T", aggr.Errors[0])
	}

	if validErr.Key != "days" {
		t.Errorf("ValidationError.Key = %q, want %q", validErr.Key, "days")
	}
	if validErr.Reason != "required" {
		t.Errorf("ValidationError.Reason = %q, want %q", validErr.Reason, "required")
	}
}

func TestValidate_WrongType(t *testing.T) {
	schema := Schema{"days": Int()}

	err := Validate(schema, map[string]any{"days": "three"})
	if err == nil {
		t.Fatal("Validate() should reject string for int field")
	}
}

func TestValidate_IntAcceptsWholeJSONNumber(t *testing.T) {
	// json.Unmarshal decodes all numbers as float64
	schema := Schema{"days": Int()}

	if err := Validate(schema, map[string]any{"days": float64(3)}); err != nil {
		t.Errorf("whole float64 should validate as int, got %v", err)
	}
	if err := Validate(schema, map[string]any{"days": 3.5}); err == nil {
		t.Error("fractional float64 should not validate as int")
	}
}

func TestValidate_Union(t *testing.T) {
	schema := Schema{"weather": OneOf(String(), Object())}

	if err := Validate(schema, map[string]any{"weather": "clear, 18C"}); err != nil {
		t.Errorf("string should satisfy union, got %v", err)
	}
	if err := Validate(schema, map[string]any{"weather": map[string]any{"temp": 18.0}}); err != nil {
		t.Errorf("object should satisfy union, got %v", err)
	}
	if err := Validate(schema, map[string]any{"weather": 18.0}); err == nil {
		t.Error("number should not satisfy string|object union")
	}
}

func validPlanJSON(t *testing.T) map[string]any {
	t.Helper()
	raw := `{
		"cultural_significance": "Paris has been a center of European art for centuries.",
		"weather": "Clear sky, 18C",
		"best_time_to_visit": "Late spring, mild and uncrowded.",
		"flights": [{"airline": "Example Air", "to": "Paris"}],
		"hotels": [{"name": "Paris Central Comfort Hotel", "stars": 3}],
		"itinerary": [{"day": 1, "title": "Arrival", "description": "Check in and walk the river."}]
	}`
	var data map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		t.Fatalf("fixture unmarshal failed: %v", err)
	}
	return data
}

func TestValidatePlan_AllKeysPresent(t *testing.T) {
	if err := ValidatePlan(validPlanJSON(t)); err != nil {
		t.Errorf("ValidatePlan() error = %v, want nil", err)
	}
}

func TestValidatePlan_StructuredWeather(t *testing.T) {
	data := validPlanJSON(t)
	data[domain.KeyWeather] = map[string]any{"temp": 18.0, "condition": "clear"}

	if err := ValidatePlan(data); err != nil {
		t.Errorf("structured weather snapshot should validate, got %v", err)
	}
}

func TestValidatePlan_MissingKeysReported(t *testing.T) {
	data := validPlanJSON(t)
	delete(data, domain.KeyFlights)
	delete(data, domain.KeyItinerary)

	err := ValidatePlan(data)
	if err == nil {
		t.Fatal("ValidatePlan() should fail when required keys are missing")
	}

	missing := MissingKeys(err)
	if len(missing) != 2 || missing[0] != domain.KeyFlights || missing[1] != domain.KeyItinerary {
		t.Errorf("MissingKeys() = %v, want [flights itinerary]", missing)
	}
}

func TestValidatePlan_WrongShapeIsFailure(t *testing.T) {
	data := validPlanJSON(t)
	data[domain.KeyHotels] = "no hotels found"

	if err := ValidatePlan(data); err == nil {
		t.Error("string in place of hotel list should fail validation")
	}
}
