package booking

import "testing"

// Prices arrive as float dollars and Stripe wants integer cents. Several
// common price points sit just below their cent value in binary floating
// point, so a plain int64 cast undercharges by a cent.
func TestAmountToCentsRounds(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{79.99, 7999},
		{12.34, 1234},
		{49.50, 4950},
		{100, 10000},
		{0, 0},
	}
	for _, tc := range cases {
		if got := amountToCents(tc.amount); got != tc.want {
			t.Errorf("amountToCents(%v) = %d, want %d", tc.amount, got, tc.want)
		}
	}
}
