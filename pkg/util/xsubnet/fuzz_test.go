package xsubnet

import (
	"testing"
)

func FuzzParsePrefixRoundTrip(f *testing.F) {
	f.Add("10.0.0.0/8")
	f.Add("192.168.1.7/255.255.255.0")
	f.Add("0.0.0.0/0")
	f.Add("255.255.255.255/32")
	f.Add("::ffff:10.0.0.0/104")
	f.Add("2001:db8::/32")

	f.Fuzz(func(t *testing.T, s string) {
		p, err := ParsePrefix(s)
		if err != nil {
			return
		}
		if !p.Addr().Is4() {
			t.Fatalf("ParsePrefix(%q) = %v, want IPv4 prefix", s, p)
		}
		if p != p.Masked() {
			t.Fatalf("ParsePrefix(%q) = %v, host bits not cleared", s, p)
		}
		again, err := ParsePrefix(p.String())
		if err != nil {
			t.Fatalf("ParsePrefix(%q) failed on canonical form: %v", p.String(), err)
		}
		if again != p {
			t.Errorf("round-trip mismatch: %q → %v → %v", s, p, again)
		}
	})
}
