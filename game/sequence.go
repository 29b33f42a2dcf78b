/*
 * Simon for Raspberry Pi Pico
 * Go version
 *
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */
package game

// Sequence is the fixed-capacity list of channels the player must repeat.
// The zero value is an empty sequence ready for use.
type Sequence struct {
	items  [MAX_SEQUENCE_LENGTH]Channel
	length int
}

// Append adds c to the end of the sequence. It reports false, and leaves the
// sequence untouched, once MAX_SEQUENCE_LENGTH has been reached.
func (s *Sequence) Append(c Channel) bool {

	if s.length >= MAX_SEQUENCE_LENGTH {
		return false
	}
	s.items[s.length] = c
	s.length++
	return true
}

func (s *Sequence) Len() int {

	return s.length
}

func (s *Sequence) Full() bool {

	return s.length >= MAX_SEQUENCE_LENGTH
}

// At returns the channel at position i. It panics if i is out of range.
func (s *Sequence) At(i int) Channel {

	if i < 0 || i >= s.length {
		panic("game: sequence index out of range")
	}
	return s.items[i]
}

func (s *Sequence) Reset() {

	s.length = 0
}

// Channels returns a copy of the current sequence.
func (s *Sequence) Channels() []Channel {

	out := make([]Channel, s.length)
	copy(out, s.items[:s.length])
	return out
}
