package runner

import (
	"testing"

	"go.uber.org/goleak"
)

// The loop is single-goroutine; nothing it starts may outlive a test.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
