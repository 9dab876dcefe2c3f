// Package replay decodes .wotreplay captures produced by the World of Tanks
// client. A capture is a hybrid file: the first line embeds a run of
// concatenated JSON objects (battle metadata followed by battle-data
// objects), the rest is an opaque binary payload used only by the client to
// re-simulate the match. Parsing is a single synchronous pass with no shared
// state, so concurrent parses of different files need no locking.
package replay

import "fmt"

// Battle is everything recovered from one capture: metadata merged from the
// metadata object and the arena-level "common" map, the owner's performance,
// economy and XP breakdowns, and the full participant roster.
type Battle struct {
	Metadata    BattleMetadata    `json:"metadata"`
	Performance BattlePerformance `json:"performance"`
	Players     []BattlePlayer    `json:"players"`
	Economy     BattleEconomy     `json:"economy"`
	XP          BattleXP          `json:"xp"`
}

// ParseFile reads and decodes a capture from disk. I/O failures propagate
// unchanged; content failures are either absorbed by defaulting or reported
// as ErrNoBattleData / ErrAmbiguousAccount.
func ParseFile(path string) (*Battle, error) {
	text, err := ExtractFirstLine(path)
	if err != nil {
		return nil, err
	}
	return Parse(text)
}

// Parse decodes a capture from its already-extracted first line. The first
// object found is the metadata; everything after it is the battle-data
// sequence. A capture whose player quit before the match ended has the
// metadata object only and is rejected with ErrNoBattleData.
func Parse(text string) (*Battle, error) {
	objects := NewScanner(text).All()
	if len(objects) < 2 {
		return nil, ErrNoBattleData
	}

	meta, ok := objects[0].(map[string]any)
	if !ok {
		return nil, ErrNoBattleData
	}
	battleData := objects[1:]
	first, ok := battleData[0].(map[string]any)
	if !ok {
		return nil, ErrNoBattleData
	}

	var b Battle
	if err := decodeInto(meta, &b.Metadata); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	common, _ := first["common"].(map[string]any)
	if err := decodeInto(common, &b.Metadata.Arena); err != nil {
		return nil, fmt.Errorf("decode arena fields: %w", err)
	}
	b.Metadata.derive()

	personal, err := personalRecord(first)
	if err != nil {
		return nil, err
	}
	if err := decodeInto(personal, &b.Performance); err != nil {
		return nil, fmt.Errorf("decode performance: %w", err)
	}
	if err := decodeInto(personal, &b.Economy); err != nil {
		return nil, fmt.Errorf("decode economy: %w", err)
	}
	if err := decodeInto(personal, &b.XP); err != nil {
		return nil, fmt.Errorf("decode xp: %w", err)
	}

	var roster, frags map[string]any
	if len(battleData) >= 2 {
		roster, _ = battleData[1].(map[string]any)
	}
	if len(battleData) >= 3 {
		frags, _ = battleData[2].(map[string]any)
	}
	b.Players, err = buildPlayers(roster, frags)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

// personalRecord resolves the owner's stats map inside the "personal"
// section. The section is keyed by an opaque account id not known ahead of
// parsing; for one's own replay it holds exactly one entry, and any other
// cardinality is a format violation reported as ErrAmbiguousAccount rather
// than resolved by picking an arbitrary key.
func personalRecord(first map[string]any) (map[string]any, error) {
	personal, _ := first["personal"].(map[string]any)
	if len(personal) != 1 {
		return nil, ErrAmbiguousAccount
	}
	for _, v := range personal {
		record, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("decode personal record: unexpected shape")
		}
		return record, nil
	}
	return nil, ErrAmbiguousAccount
}
