package services

import (
	"testing"

	"go.uber.org/goleak"
)

// Generation goroutines must never outlive a cancelled or finished call.
// Keep-alive connections from the httptest backends are not ours.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreAnyFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreAnyFunction("net/http.(*persistConn).writeLoop"),
	)
}
