package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	apperr "github.com/antaresengine/antares/internal/errors"
)

// DiceRoll is a dice specification of the form NdS+B (e.g. "1d10", "2d6+1").
// The content core never rolls dice; deterministic derivations use Sides
// directly (maximum roll) so pre-made characters are reproducible.
type DiceRoll struct {
	Count int `json:"count"`
	Sides int `json:"sides"`
	Bonus int `json:"bonus"`
}

// NewDiceRoll creates a dice specification.
func NewDiceRoll(count, sides, bonus int) DiceRoll {
	return DiceRoll{Count: count, Sides: sides, Bonus: bonus}
}

// ParseDiceRoll parses a dice string such as "2d6+1" or "1d10".
func ParseDiceRoll(s string) (DiceRoll, error) {
	var bonus int
	dice := s

	if idx := strings.IndexByte(s, '+'); idx >= 0 {
		b, err := strconv.Atoi(s[idx+1:])
		if err != nil {
			return DiceRoll{}, apperr.ParseErrorf("invalid dice bonus in %q", s)
		}
		bonus = b
		dice = s[:idx]
	}

	parts := strings.SplitN(dice, "d", 2)
	if len(parts) != 2 {
		return DiceRoll{}, apperr.ParseErrorf("invalid dice string %q", s)
	}

	count, err := strconv.Atoi(parts[0])
	if err != nil || count < 1 {
		return DiceRoll{}, apperr.ParseErrorf("invalid dice count in %q", s)
	}

	sides, err := strconv.Atoi(parts[1])
	if err != nil || sides < 1 {
		return DiceRoll{}, apperr.ParseErrorf("invalid dice size in %q", s)
	}

	return DiceRoll{Count: count, Sides: sides, Bonus: bonus}, nil
}

// String renders the canonical dice string form.
func (d DiceRoll) String() string {
	if d.Bonus != 0 {
		return fmt.Sprintf("%dd%d+%d", d.Count, d.Sides, d.Bonus)
	}
	return fmt.Sprintf("%dd%d", d.Count, d.Sides)
}

// Min returns the minimum possible roll.
func (d DiceRoll) Min() int {
	return d.Count + d.Bonus
}

// Max returns the maximum possible roll.
func (d DiceRoll) Max() int {
	return d.Count*d.Sides + d.Bonus
}

// Average returns the expected roll value.
func (d DiceRoll) Average() float64 {
	return float64(d.Count)*(float64(d.Sides)+1)/2 + float64(d.Bonus)
}

// MarshalJSON emits the compact string form.
func (d DiceRoll) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts either the string form ("1d10+2") or the object form.
func (d *DiceRoll) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, perr := ParseDiceRoll(s)
		if perr != nil {
			return perr
		}
		*d = parsed
		return nil
	}

	type diceAlias DiceRoll
	var alias diceAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*d = DiceRoll(alias)
	return nil
}
