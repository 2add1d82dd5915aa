// Package types holds the primitive identifier and value types shared by the
// content model: IDs, dice specifications, positions, and paired attributes.
package types

// Numeric identifiers are small unsigned integers assigned in content files.
type (
	// ItemID identifies an item definition
	ItemID uint16

	// MonsterID identifies a monster definition
	MonsterID uint16

	// MapID identifies a map definition
	MapID uint16

	// QuestID identifies a quest definition
	QuestID uint16

	// DialogueID identifies a dialogue tree
	DialogueID uint16

	// NodeID identifies a node inside a dialogue tree
	NodeID uint16

	// SpellID identifies a spell definition
	SpellID uint16

	// CreatureID identifies a creature visual definition
	CreatureID uint16

	// PortraitID identifies a character portrait asset
	PortraitID = string
)

// String identifiers are short stable strings shared across content files.
type (
	// RaceID identifies a race definition (e.g. "elf")
	RaceID = string

	// ClassID identifies a class definition (e.g. "knight")
	ClassID = string

	// ProficiencyID identifies a proficiency (e.g. "martial_melee")
	ProficiencyID = string

	// CharacterDefID identifies a character definition template
	CharacterDefID = string
)
