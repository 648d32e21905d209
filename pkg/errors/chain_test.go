package errors

import (
	"context"
	"errors"
	"testing"
)

func TestChainErrorHandler_Handle_NilError(t *testing.T) {
	handler := NewChainErrorHandler()
	if err := handler.Handle(context.Background(), nil); err != nil {
		t.Error("should return nil for nil error")
	}
}

func TestChainErrorHandler_Handle_StopsAtFirstHandled(t *testing.T) {
	var calls []string

	handler := NewChainErrorHandler(
		HandlerFunc(func(_ context.Context, err error) error {
			calls = append(calls, "log")
			return err
		}),
	).Add(HandlerFunc(func(_ context.Context, _ error) error {
		calls = append(calls, "render")
		return nil
	})).Add(HandlerFunc(func(_ context.Context, err error) error {
		calls = append(calls, "never")
		return err
	}))

	if err := handler.Handle(context.Background(), errors.New("boom")); err != nil {
		t.Errorf("expected error to be handled, got %v", err)
	}
	if len(calls) != 2 || calls[0] != "log" || calls[1] != "render" {
		t.Errorf("expected [log render], got %v", calls)
	}
}

func TestChainErrorHandler_Handle_Unhandled(t *testing.T) {
	original := errors.New("boom")
	handler := NewChainErrorHandler(HandlerFunc(func(_ context.Context, err error) error {
		return err
	}))

	if err := handler.Handle(context.Background(), original); !errors.Is(err, original) {
		t.Errorf("expected original error back, got %v", err)
	}
}
