package extension

import (
	"testing"

	"github.com/spf13/cobra"
)

// testExtension is a minimal Extension implementation for testing.
type testExtension struct {
	name string
}

func (e testExtension) Name() string               { return e.name }
func (e testExtension) Commands() []*cobra.Command { return nil }
func (e testExtension) MCPTools() []MCPTool        { return nil }

func TestRegister_PanicOnDuplicate(t *testing.T) {
	// Register with a unique name for this test
	name := "test-duplicate-panic"
	Register(testExtension{name: name})

	// Registering the same name again should panic
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate registration, got none")
		}
	}()

	Register(testExtension{name: name})
}

func TestAll_RegistrationOrder(t *testing.T) {
	Register(testExtension{name: "test-order-a"})
	Register(testExtension{name: "test-order-b"})

	names := Names()
	ia, ib := -1, -1
	for i, n := range names {
		switch n {
		case "test-order-a":
			ia = i
		case "test-order-b":
			ib = i
		}
	}
	if ia == -1 || ib == -1 || ia > ib {
		t.Errorf("Names() = %v, want test-order-a before test-order-b", names)
	}

	if Get("test-order-a") == nil {
		t.Error("Get(test-order-a) = nil, want extension")
	}
	if Get("test-missing") != nil {
		t.Error("Get(test-missing) != nil, want nil")
	}
	if got := len(All()); got != len(names) {
		t.Errorf("len(All()) = %d, want %d", got, len(names))
	}
}
