package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundCollect
	SoundCollision
)

func (s SoundID) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundCollect:
		return "collect"
	case SoundCollision:
		return "collision"
	}
	return "none"
}
