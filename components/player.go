package components

import (
	"fmt"
	"strings"

	"github.com/yohamta/donburi"
)

// CharacterName selects which character variant the player entity represents.
type CharacterName int

const (
	CharacterOne CharacterName = iota
	CharacterTwo
	CharacterThree
	CharacterDebug
)

var characterNames = [...]string{
	CharacterOne:   "one",
	CharacterTwo:   "two",
	CharacterThree: "three",
	CharacterDebug: "debug",
}

func (c CharacterName) String() string {
	if c < 0 || int(c) >= len(characterNames) {
		return fmt.Sprintf("CharacterName(%d)", int(c))
	}
	return characterNames[c]
}

// ParseCharacterName maps a level or config string onto a CharacterName.
func ParseCharacterName(s string) (CharacterName, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range characterNames {
		if name == s {
			return CharacterName(i), nil
		}
	}
	return 0, fmt.Errorf("unknown character %q", s)
}

type PlayerData struct {
	Character CharacterName
}

var Player = donburi.NewComponentType[PlayerData]()
