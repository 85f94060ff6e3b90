// Package registry maintains the bidirectional mapping between normalized
// tokens and the dense integer TokenId space the rest of the engine
// operates on. A Registry is built once during corpus ingestion and is
// read-only thereafter, safe for concurrent reads by reference.
package registry

import "github.com/jzombie/ticker-sniffer-go/internal/tokenizer"

// TokenId is a dense, non-negative identifier assigned on first sight of a
// token. Identifiers are stable for the lifetime of one Registry but carry
// no meaning across separately built registries.
type TokenId int

// Registry maps tokens to TokenIds and back. The zero value is not usable;
// construct with New.
type Registry struct {
	byToken []tokenEntry
	ids     map[string]TokenId
}

type tokenEntry struct {
	token tokenizer.Token
}

// New returns an empty Registry ready for Upsert calls.
func New() *Registry {
	return &Registry{
		ids: make(map[string]TokenId),
	}
}

// Upsert returns the existing TokenId for tok if already known, otherwise
// assigns the next monotonically increasing id and returns it.
func (r *Registry) Upsert(tok tokenizer.Token) TokenId {
	if id, ok := r.ids[tok]; ok {
		return id
	}
	id := TokenId(len(r.byToken))
	r.byToken = append(r.byToken, tokenEntry{token: tok})
	r.ids[tok] = id
	return id
}

// UpsertAll upserts each token in order and returns the resulting ids.
func (r *Registry) UpsertAll(toks []tokenizer.Token) []TokenId {
	ids := make([]TokenId, len(toks))
	for i, tok := range toks {
		ids[i] = r.Upsert(tok)
	}
	return ids
}

// GetId is a read-only lookup: it never assigns a new id. The second return
// value reports whether tok is already known to the registry.
func (r *Registry) GetId(tok tokenizer.Token) (TokenId, bool) {
	id, ok := r.ids[tok]
	return id, ok
}

// GetFilteredIds projects a query's tokens onto the registry's known
// vocabulary, silently dropping tokens that were never seen during
// ingestion — an unknown token cannot align with any corpus sequence, so
// there is nothing for the caller to do with it.
func (r *Registry) GetFilteredIds(toks []tokenizer.Token) []TokenId {
	ids := make([]TokenId, 0, len(toks))
	for _, tok := range toks {
		if id, ok := r.ids[tok]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Token returns the token string a TokenId was assigned to. It panics if id
// is out of range, since any TokenId in circulation must have come from
// this registry's own Upsert.
func (r *Registry) Token(id TokenId) tokenizer.Token {
	return r.byToken[id].token
}

// Len reports the number of distinct tokens registered so far.
func (r *Registry) Len() int {
	return len(r.byToken)
}
