package replay

import "errors"

var (
	// ErrNoBattleData marks a capture with no usable battle data, which is
	// what a recording looks like when the player quit before the match
	// ended: the metadata object is present but no battle-data objects
	// follow it.
	ErrNoBattleData = errors.New("replay contains no usable battle data")

	// ErrAmbiguousAccount marks a personal section whose account map does
	// not hold exactly one account id. For one's own replay the map always
	// has a single key; anything else is a format violation that must not
	// be resolved by picking an arbitrary entry.
	ErrAmbiguousAccount = errors.New("replay personal section does not identify a single account")
)
