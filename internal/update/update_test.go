package update

import "testing"

func TestNewer(t *testing.T) {
	cases := []struct {
		latest, current string
		want            bool
	}{
		{"1.2.0", "1.1.9", true},
		{"1.1.9", "1.2.0", false},
		{"0.1.0", "0.1.0", false},
		{"garbage", "0.1.0", false},
	}
	for _, c := range cases {
		if got := newer(c.latest, c.current); got != c.want {
			t.Fatalf("newer(%q, %q) = %v, want %v", c.latest, c.current, got, c.want)
		}
	}
}

func TestCheckSkipsWhenOffline(t *testing.T) {
	latest, isNewer, err := Check("0.1.0", true)
	if err != nil || isNewer || latest != "" {
		t.Fatalf("offline check must be a no-op: %q %v %v", latest, isNewer, err)
	}
}
