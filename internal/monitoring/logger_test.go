package monitoring

import (
	"fmt"
	"testing"
)

func TestSetLogger(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	var got string
	SetLogger(func(format string, v ...interface{}) {
		got = fmt.Sprintf(format, v...)
	})

	Logf("slot %d ignored", 7)
	if got != "slot 7 ignored" {
		t.Errorf("custom logger got %q", got)
	}

	got = ""
	SetLogger(nil)
	Logf("muted")

	if got != "" {
		t.Errorf("no-op logger forwarded %q", got)
	}
}

func TestLogfDefault(t *testing.T) {
	if Logf == nil {
		t.Fatal("Logf should not be nil by default")
	}

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Logf panicked: %v", r)
		}
	}()

	Logf("test message: %s", "value")
}
