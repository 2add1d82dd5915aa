package types

// Alignment is a character's moral alignment. Some items gate on it.
type Alignment string

const (
	AlignmentGood    Alignment = "good"
	AlignmentNeutral Alignment = "neutral"
	AlignmentEvil    Alignment = "evil"
)

// Sex is a character's sex as recorded in content files.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)
