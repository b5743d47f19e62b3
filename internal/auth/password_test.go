package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret" {
		t.Fatalf("hash equals plaintext")
	}
	if !h.Verify("s3cret", hash) {
		t.Fatalf("expected verify to succeed")
	}
	if h.Verify("wrong", hash) {
		t.Fatalf("expected verify to fail for wrong password")
	}
}

func TestHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	a, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same input should differ")
	}
	if !h.Verify("same-input", a) || !h.Verify("same-input", b) {
		t.Fatalf("both hashes should verify")
	}
}

func TestHasher_MalformedHash(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	if h.Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must verify false")
	}
	if h.Verify("anything", "") {
		t.Fatalf("empty hash must verify false")
	}
}

func TestNewHasher_CostOutOfRange(t *testing.T) {
	h := NewHasher(99)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected fallback to default cost, got %d", h.cost)
	}
}
