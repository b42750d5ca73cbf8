package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseCast,
				Kind:     KindTypeMismatch,
				GoType:   "int",
				WantType: "string",
				Detail:   "wrong type",
			},
			contains: []string{"[cast]", "type_mismatch", "holds int", "requested string", "wrong type"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseTable,
				Kind:  KindNotFound,
			},
			contains: []string{"[table]", "not_found"},
		},
		{
			name: "held type only",
			err: &Error{
				Phase:  PhaseCopy,
				Kind:   KindCloneFailed,
				GoType: "*box.doc",
			},
			contains: []string{"[copy]", "clone_failed", "holds *box.doc"},
		},
		{
			name: "requested type only",
			err: &Error{
				Phase:    PhaseCast,
				Kind:     KindEmpty,
				WantType: "int",
				Detail:   "box holds no value",
			},
			contains: []string{"[cast]", "empty", "requested int", " - box holds no value"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseCopy,
				Kind:   KindCloneFailed,
				Detail: "clone",
				Cause:  errors.New("disk full"),
			},
			contains: []string{"[copy]", "clone_failed", "clone", "caused by", "disk full"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseCopy,
		Kind:  KindCloneFailed,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:    PhaseCast,
		Kind:     KindTypeMismatch,
		GoType:   "int",
		WantType: "string",
	}

	if !err.Is(&Error{Phase: PhaseCast, Kind: KindTypeMismatch}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseCopy, Kind: KindTypeMismatch}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseCast, Kind: KindEmpty}) {
		t.Error("Is should not match different kind")
	}
	if err.Is(errors.New("other")) {
		t.Error("Is should not match foreign errors")
	}

	target := &Error{Phase: PhaseCast, Kind: KindTypeMismatch}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}

	var asErr *Error
	if !errors.As(error(err), &asErr) || asErr.GoType != "int" {
		t.Error("errors.As should recover *Error")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseCast, KindTypeMismatch).
		GoType("int").
		WantType("string").
		Cause(cause).
		Detail("expected %s, got %s", "string", "int").
		Build()

	if err.Phase != PhaseCast {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseCast)
	}
	if err.Kind != KindTypeMismatch {
		t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
	}
	if err.GoType != "int" {
		t.Errorf("GoType = %v, want 'int'", err.GoType)
	}
	if err.WantType != "string" {
		t.Errorf("WantType = %v, want 'string'", err.WantType)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected string, got int" {
		t.Errorf("Detail = %v, want 'expected string, got int'", err.Detail)
	}

	plain := New(PhaseTable, KindClosed).Detail("100%").Build()
	if plain.Detail != "100%" {
		t.Errorf("Detail without args should be kept verbatim, got %q", plain.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("TypeMismatch", func(t *testing.T) {
		err := TypeMismatch(PhaseCast, "int", "string")
		if err.Kind != KindTypeMismatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
		}
		if err.GoType != "int" || err.WantType != "string" {
			t.Errorf("GoType=%v WantType=%v", err.GoType, err.WantType)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		err := Empty(PhaseCast, "int")
		if err.Kind != KindEmpty || err.WantType != "int" {
			t.Errorf("got %+v", err)
		}
	})

	t.Run("NilPointer", func(t *testing.T) {
		err := NilPointer(PhaseCast, "*box.Box")
		if err.Kind != KindNilPointer {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNilPointer)
		}
		if err.GoType != "*box.Box" {
			t.Errorf("GoType = %v, want '*box.Box'", err.GoType)
		}
	})

	t.Run("CloneFailed", func(t *testing.T) {
		cause := errors.New("quota")
		err := CloneFailed("main.doc", cause)
		if err.Phase != PhaseCopy || err.Kind != KindCloneFailed {
			t.Errorf("got %+v", err)
		}
		if !errors.Is(err, cause) {
			t.Error("CloneFailed should wrap cause")
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseTable, "handle", 7)
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
		}
		if err.Value != 7 {
			t.Errorf("Value = %v, want 7", err.Value)
		}
		if !strings.Contains(err.Detail, "handle 7") {
			t.Errorf("Detail = %q", err.Detail)
		}
	})

	t.Run("Closed", func(t *testing.T) {
		err := Closed(PhaseTable, "table")
		if err.Kind != KindClosed || err.Detail != "table closed" {
			t.Errorf("got %+v", err)
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		err := InvalidInput(PhaseConstruct, "empty box")
		if err.Kind != KindInvalidInput {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidInput)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("inner")
		err := Wrap(PhaseTable, KindNotFound, cause, "lookup")
		if err.Cause != cause || err.Detail != "lookup" {
			t.Errorf("got %+v", err)
		}
	})
}
