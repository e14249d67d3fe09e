package nullz

import (
	"strconv"
	"testing"

	nullztest "github.com/zoobzio/nullz/testing"
)

func TestTransform(t *testing.T) {
	t.Run("Value Path Maps And Rebinds", func(t *testing.T) {
		format := nullztest.NewMockAction[int, string](t, "format").WithFunc(strconv.Itoa)

		var result maybe[string] = Transform[maybe[int], maybe[string]](format.Call).Apply(some(42))

		if result != some("42") {
			t.Errorf("expected \"42\", got %+v", result)
		}
		nullztest.AssertCalledWith(t, format, 42)
	})

	t.Run("Empty Path Preserves Absence", func(t *testing.T) {
		format := nullztest.NewMockAction[int, string](t, "format").WithFunc(strconv.Itoa)

		result := Transform[maybe[int], maybe[string]](format.Call).Apply(none[int]())

		if result != none[string]() {
			t.Errorf("expected empty result, got %+v", result)
		}
		nullztest.AssertNotCalled(t, format)
	})

	t.Run("Rebinds Across Container Types", func(t *testing.T) {
		probe := nullztest.NewProbe()
		length := Transform[nullztest.Nullable[string], maybe[int]](func(s string) int { return len(s) })

		result := length.Apply(nullztest.Present(probe, "four"))

		if result != some(4) {
			t.Errorf("expected 4, got %+v", result)
		}
		nullztest.AssertProbed(t, probe, 1, 1)
	})

	t.Run("Wrapped Result Is Not Tested Again", func(t *testing.T) {
		nullztest.Detached.Reset()
		inc := Transform[maybe[int], nullztest.Nullable[int]](func(x int) int { return x + 1 })
		double := AndThen[nullztest.Nullable[int]](func(x int) maybe[int] { return some(x * 2) })

		result := Append(inc, double).Apply(some(1))

		if result != some(4) {
			t.Errorf("expected 4, got %+v", result)
		}
		// The wrapped value is bound to Detached; AndThen reads it without testing.
		nullztest.AssertProbed(t, nullztest.Detached, 0, 1)
	})
}
