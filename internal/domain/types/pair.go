package types

import "encoding/json"

// AttributePair stores a stat as a base value plus a current value that
// temporary effects may push above or below the base. Used for the seven
// character stats, AC, resistances, and spell level.
type AttributePair struct {
	Base    uint8 `json:"base"`
	Current uint8 `json:"current"`
}

// NewAttributePair creates a pair with base and current set to the same value.
func NewAttributePair(value uint8) AttributePair {
	return AttributePair{Base: value, Current: value}
}

// Reset restores current to base.
func (p *AttributePair) Reset() {
	p.Current = p.Base
}

// Modify adjusts current by amount, clamping to the uint8 range.
func (p *AttributePair) Modify(amount int16) {
	v := int16(p.Current) + amount
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	p.Current = uint8(v)
}

// UnmarshalJSON accepts either a bare number, which expands to
// {base: n, current: n}, or the explicit object form.
func (p *AttributePair) UnmarshalJSON(data []byte) error {
	var n uint8
	if err := json.Unmarshal(data, &n); err == nil {
		p.Base = n
		p.Current = n
		return nil
	}

	type pairAlias AttributePair
	var alias pairAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*p = AttributePair(alias)
	return nil
}

// AttributePair16 is the 16-bit variant used for resource pools (HP, SP).
// For pools, current never exceeds base once loading completes.
type AttributePair16 struct {
	Base    uint16 `json:"base"`
	Current uint16 `json:"current"`
}

// NewAttributePair16 creates a pair with base and current set to the same value.
func NewAttributePair16(value uint16) AttributePair16 {
	return AttributePair16{Base: value, Current: value}
}

// Reset restores current to base.
func (p *AttributePair16) Reset() {
	p.Current = p.Base
}

// Modify adjusts current by amount, clamping to [0, base].
func (p *AttributePair16) Modify(amount int32) {
	v := int32(p.Current) + amount
	if v < 0 {
		v = 0
	}
	if v > int32(p.Base) {
		v = int32(p.Base)
	}
	p.Current = uint16(v)
}

// ClampCurrent lowers current to base if it exceeds it.
func (p *AttributePair16) ClampCurrent() {
	if p.Current > p.Base {
		p.Current = p.Base
	}
}

// UnmarshalJSON accepts either a bare number or the explicit object form.
func (p *AttributePair16) UnmarshalJSON(data []byte) error {
	var n uint16
	if err := json.Unmarshal(data, &n); err == nil {
		p.Base = n
		p.Current = n
		return nil
	}

	type pairAlias AttributePair16
	var alias pairAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*p = AttributePair16(alias)
	return nil
}
