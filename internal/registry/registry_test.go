package registry

import "testing"

func assertEqual[T comparable](t *testing.T, want, got T) {
	t.Helper()
	if want != got {
		t.Errorf("want %v, got %v", want, got)
	}
}

func TestUpsertAssignsMonotonicIds(t *testing.T) {
	r := New()
	assertEqual(t, TokenId(0), r.Upsert("AAPL"))
	assertEqual(t, TokenId(1), r.Upsert("MSFT"))
	assertEqual(t, TokenId(0), r.Upsert("AAPL"))
	assertEqual(t, 2, r.Len())
}

func TestGetIdIsReadOnly(t *testing.T) {
	r := New()
	r.Upsert("AAPL")

	id, ok := r.GetId("AAPL")
	assertEqual(t, true, ok)
	assertEqual(t, TokenId(0), id)

	_, ok = r.GetId("MSFT")
	assertEqual(t, false, ok)
	assertEqual(t, 1, r.Len())
}

func TestGetFilteredIdsDropsUnknownTokens(t *testing.T) {
	r := New()
	r.Upsert("APPLE")
	r.Upsert("INC")

	ids := r.GetFilteredIds([]string{"APPLE", "GOOGLE", "INC", "TESLA"})
	assertEqual(t, 2, len(ids))
	assertEqual(t, TokenId(0), ids[0])
	assertEqual(t, TokenId(1), ids[1])
}

func TestTokenRoundTrip(t *testing.T) {
	r := New()
	id := r.Upsert("MICROSOFT")
	assertEqual(t, "MICROSOFT", r.Token(id))
}

func TestUpsertAllPreservesOrder(t *testing.T) {
	r := New()
	ids := r.UpsertAll([]string{"A", "B", "A", "C"})
	assertEqual(t, TokenId(0), ids[0])
	assertEqual(t, TokenId(1), ids[1])
	assertEqual(t, TokenId(0), ids[2])
	assertEqual(t, TokenId(2), ids[3])
}
