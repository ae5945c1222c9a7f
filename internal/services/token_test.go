package services

import (
	"strconv"
	"testing"
)

func TestGenerateOTP(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		otp, err := generateOTP()
		if err != nil {
			t.Fatalf("generateOTP error: %v", err)
		}
		if len(otp) != 6 {
			t.Fatalf("otp %q has length %d, want 6", otp, len(otp))
		}
		n, err := strconv.Atoi(otp)
		if err != nil {
			t.Fatalf("otp %q is not numeric", otp)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("otp %d out of range", n)
		}
		seen[otp] = true
	}
	if len(seen) < 2 {
		t.Error("100 generated codes were all identical")
	}
}

func TestHashToken(t *testing.T) {
	h1 := hashToken("secret-token")
	h2 := hashToken("secret-token")
	h3 := hashToken("other-token")

	if h1 != h2 {
		t.Error("hashToken is not deterministic")
	}
	if h1 == h3 {
		t.Error("different tokens produced identical hashes")
	}
	if len(h1) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(h1))
	}
	if h1 == "secret-token" {
		t.Error("token stored unhashed")
	}
}

func TestRandomToken(t *testing.T) {
	t1, err := randomToken()
	if err != nil {
		t.Fatalf("randomToken error: %v", err)
	}
	t2, err := randomToken()
	if err != nil {
		t.Fatalf("randomToken error: %v", err)
	}
	if t1 == t2 {
		t.Error("two generated tokens were identical")
	}
	if len(t1) < 32 {
		t.Errorf("token length = %d, too short", len(t1))
	}
}
