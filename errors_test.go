package notation_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/reoring/notation"
)

func TestErrors_CodesAndUnwrap(t *testing.T) {
	cause := errors.New("no constructor")
	ce := &notation.ConstructionError{Target: "Dependency", Cause: cause}
	if !errors.Is(ce, cause) {
		t.Fatalf("construction error must unwrap to its cause")
	}
	if ce.Error() != "Could not create an instance of type Dependency: no constructor" {
		t.Fatalf("unexpected message: %q", ce.Error())
	}

	wrapped := fmt.Errorf("outer: %w", ce)
	if notation.Code(wrapped) != notation.CodeConstruction {
		t.Fatalf("unexpected code: %q", notation.Code(wrapped))
	}
	if notation.Code(errors.New("plain")) != "" {
		t.Fatalf("plain errors carry no code")
	}
	if notation.IsUnsupported(ce) {
		t.Fatalf("construction failures are not unsupported notations")
	}
}

func TestErrors_InvalidNotationMessage(t *testing.T) {
	err := &notation.InvalidNotationError{Notation: "http://example.com/a.zip", Reason: "only file: URIs are supported"}
	if err.Error() != "Cannot convert http://example.com/a.zip: only file: URIs are supported." {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if notation.Code(err) != notation.CodeInvalidNotation {
		t.Fatalf("unexpected code: %q", notation.Code(err))
	}
}

func TestErrors_UnsupportedWithoutCandidates(t *testing.T) {
	err := &notation.UnsupportedNotationError{Target: "Artifact", Notation: nil}
	want := "Cannot convert the provided notation to an object of type Artifact: null.\nNo input types/formats are supported."
	if err.Error() != want {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
