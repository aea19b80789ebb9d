package server

import "testing"

func TestAddr(t *testing.T) {
	cases := map[string]string{
		"":      ":3000",
		"8080":  ":8080",
		":9090": ":9090",
	}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
