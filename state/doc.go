// Package state bridges a centralized store to plain get/set access.
//
// Reads go straight to the store.  Every write is committed as the single
// SetMutation, so the store stays the only place state changes:
//
//	store := state.NewMemStore(nil, nil)
//	acc := state.Bridge(store)
//	err := acc.Set("user", user)       // commits "$state"
//	err = state.Update(acc, "user", patch)
package state
