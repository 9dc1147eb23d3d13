package conv

import "testing"

func TestIntToUint16(t *testing.T) {
	cases := []struct {
		in   int
		want uint16
	}{
		{0, 0},
		{512, 512},
		{65535, 65535},
	}
	for _, tc := range cases {
		if got := IntToUint16(tc.in); got != tc.want {
			t.Errorf("IntToUint16(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestIntToUint16PanicsOnOverflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on overflow")
		}
	}()
	IntToUint16(65536)
}

func TestIntToUint16PanicsOnNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on negative input")
		}
	}()
	IntToUint16(-1)
}
