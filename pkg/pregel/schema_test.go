package pregel

import (
	"errors"
	"testing"

	"github.com/orneryd/gdscore/pkg/gdserrors"
	"github.com/orneryd/gdscore/pkg/values"
)

func TestSchema_RejectsDuplicateName(t *testing.T) {
	s := NewSchema().Add("rank", values.Double, Public).Add("rank", values.Long, Internal)
	if err := s.validate(); err == nil {
		t.Fatalf("expected a schema violation for duplicate property name")
	}
	var sv *gdserrors.SchemaViolationError
	if _, err := NewNodeValue(s, 1); err == nil {
		t.Fatalf("NewNodeValue should surface the duplicate-name violation")
	} else if !errors.As(err, &sv) {
		t.Fatalf("expected *SchemaViolationError, got %T: %v", err, err)
	}
}

func TestSchema_RejectsFloatArray(t *testing.T) {
	s := NewSchema().Add("embedding", values.FloatArray, Public)
	if _, err := NewNodeValue(s, 1); err == nil {
		t.Fatalf("expected FloatArray to be rejected for node-value columns")
	}
}

func TestSchema_AcceptsAllFourEligibleTypes(t *testing.T) {
	s := NewSchema().
		Add("a", values.Long, Public).
		Add("b", values.Double, Public).
		Add("c", values.LongArray, Internal).
		Add("d", values.DoubleArray, Internal)
	if _, err := NewNodeValue(s, 1); err != nil {
		t.Fatalf("NewNodeValue: %v", err)
	}
}
