package game

import (
	"testing"
)

func TestSequenceAppend(t *testing.T) {

	var s Sequence
	if s.Len() != 0 {
		t.Fatalf("Expected empty sequence, got length %d", s.Len())
	}

	for i := 0; i < MAX_SEQUENCE_LENGTH; i++ {
		if !s.Append(Channels[i%NumChannels]) {
			t.Fatalf("Append %d refused before capacity", i)
		}
	}
	if !s.Full() {
		t.Error("Expected sequence to be full")
	}

	if s.Append(Red) {
		t.Error("Expected Append to refuse past capacity")
	}
	if s.Len() != MAX_SEQUENCE_LENGTH {
		t.Errorf("Expected length %d, got %d", MAX_SEQUENCE_LENGTH, s.Len())
	}
	if s.At(MAX_SEQUENCE_LENGTH-1) != Channels[(MAX_SEQUENCE_LENGTH-1)%NumChannels] {
		t.Error("Last element changed by refused Append")
	}

	s.Reset()
	if s.Len() != 0 {
		t.Errorf("Expected empty sequence after Reset, got %d", s.Len())
	}
}

func TestSequenceChannelsIsCopy(t *testing.T) {

	var s Sequence
	s.Append(Blue)
	s.Append(Yellow)

	got := s.Channels()
	got[0] = Red
	if s.At(0) != Blue {
		t.Error("Channels returned a view into the sequence")
	}
}

func TestSequenceAtOutOfRange(t *testing.T) {

	defer func() {
		if recover() == nil {
			t.Error("Expected panic reading past the end")
		}
	}()

	var s Sequence
	s.Append(Red)
	s.At(1)
}

func TestChannels(t *testing.T) {

	tests := []struct {
		ch   Channel
		name string
		tone uint
	}{
		{Red, "red", 310},
		{Green, "green", 415},
		{Blue, "blue", 209},
		{Yellow, "yellow", 252},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.ch.String() != tt.name {
				t.Errorf("String() = %q, want %q", tt.ch.String(), tt.name)
			}
			if tt.ch.Tone() != tt.tone {
				t.Errorf("Tone() = %d, want %d", tt.ch.Tone(), tt.tone)
			}
			parsed, ok := ParseChannel(tt.name)
			if !ok || parsed != tt.ch {
				t.Errorf("ParseChannel(%q) = %v, %v", tt.name, parsed, ok)
			}
		})
	}

	if _, ok := ParseChannel("purple"); ok {
		t.Error("Expected unknown colour to fail parsing")
	}
	if Channel(7).Valid() || Channel(7).Tone() != 0 {
		t.Error("Expected channel 7 to be invalid")
	}
}

func TestElapsedAcrossWrap(t *testing.T) {

	if got := Elapsed(5, 0xFFFFFFFB); got != 10 {
		t.Errorf("Elapsed across wrap = %d, want 10", got)
	}
	if got := Elapsed(1500, 1000); got != 500 {
		t.Errorf("Elapsed = %d, want 500", got)
	}
}
