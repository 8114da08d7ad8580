package errors

import (
	"errors"
	"testing"
)

func TestLoadError(t *testing.T) {
	cause := errors.New("file not found")
	loadErr := NewLoadError("parse", "/path/to/subjects.yaml", cause)

	expectedMsg := "load parse failed for '/path/to/subjects.yaml': file not found"
	if loadErr.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, loadErr.Error())
	}

	if loadErr.Op != "parse" {
		t.Errorf("Expected Op 'parse', got '%s'", loadErr.Op)
	}
	if loadErr.Path != "/path/to/subjects.yaml" {
		t.Errorf("Expected Path '/path/to/subjects.yaml', got '%s'", loadErr.Path)
	}
	if loadErr.Cause != cause {
		t.Error("Expected Cause to be the original error")
	}
}

func TestLoadErrorUnwrap(t *testing.T) {
	cause := errors.New("original error")
	loadErr := NewLoadError("read", "/path", cause)

	if loadErr.Unwrap() != cause {
		t.Error("Expected unwrapped error to be the original cause")
	}
	if !errors.Is(loadErr, cause) {
		t.Error("Expected errors.Is to find the cause in the error chain")
	}
}

func TestBuildError(t *testing.T) {
	cause := errors.New("posting references unknown subject")
	buildErr := NewBuildError("person", cause)

	expectedMsg := "build failed for kind 'person': posting references unknown subject"
	if buildErr.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, buildErr.Error())
	}
	if !errors.Is(buildErr, cause) {
		t.Error("Expected errors.Is to find the cause in the error chain")
	}
}

func TestValidationError(t *testing.T) {
	cause := errors.New("must be one of M, F")
	valErr := NewValidationError("gender", "X", cause)

	expectedMsg := "invalid gender 'X': must be one of M, F"
	if valErr.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, valErr.Error())
	}
	if !errors.Is(valErr, cause) {
		t.Error("Expected errors.Is to find the cause in the error chain")
	}
}

func TestErrorChaining(t *testing.T) {
	originalErr := errors.New("root cause")
	loadErr := NewLoadError("read", "/path", originalErr)
	buildErr := NewBuildError("entity", loadErr)

	if !errors.Is(buildErr, originalErr) {
		t.Error("Expected errors.Is to find the root cause through the error chain")
	}
	if !errors.Is(buildErr, loadErr) {
		t.Error("Expected errors.Is to find the load error in the chain")
	}
}

func TestErrorWithNilCause(t *testing.T) {
	loadErr := NewLoadError("test", "/path", nil)

	expectedMsg := "load test failed for '/path': <nil>"
	if loadErr.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, loadErr.Error())
	}
	if loadErr.Unwrap() != nil {
		t.Error("Expected Unwrap() to return nil when cause is nil")
	}
}
