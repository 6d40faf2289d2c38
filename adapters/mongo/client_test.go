package mongo

import (
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestNewClient_RequiresURI(t *testing.T) {
	t.Setenv("MONGODB_URI", "")

	if _, err := NewClient(zaptest.NewLogger(t)); err == nil {
		t.Error("Expected error when MONGODB_URI is unset")
	}
}
