package state

import (
	"github.com/pkg/errors"
	"regexp"
	"strconv"
	"strings"
)

// ActionFromTriple decodes the external action encoding (kind, x, y), where kind is
// 0 (Move), 1 (PlaceWallHorizontal), 2 (PlaceWallVertical) or 3 (RotateSection).
//
// It only checks that the values can be represented: coordinates are accepted in [0, BoardSize],
// and whether they are valid for the kind of action is left to State.Step.
func ActionFromTriple(kind, x, y int) (Action, error) {
	if kind < 0 || kind >= int(NumActionKinds) {
		return Action{}, errors.Errorf("invalid action kind %d, valid values are 0 (move), 1 (horizontal wall), "+
			"2 (vertical wall) and 3 (rotate section)", kind)
	}
	for _, v := range [2]int{x, y} {
		if v < 0 || v > BoardSize {
			return Action{}, errors.Errorf("invalid coordinate %d for action (%d, %d, %d)", v, kind, x, y)
		}
	}
	return Action{Kind: ActionKind(kind), Pos: Pos{int8(x), int8(y)}}, nil
}

// Triple returns the external encoding of the action, see ActionFromTriple.
func (a Action) Triple() [3]int {
	return [3]int{int(a.Kind), int(a.Pos[0]), int(a.Pos[1])}
}

var tripleParser = regexp.MustCompile(`^\s*(-?\d+)[\s,]+(-?\d+)[\s,]+(-?\d+)[\s,]*$`)

// ParseAction parses an action given as "kind x y", with values separated by spaces or commas.
func ParseAction(text string) (Action, error) {
	matches := tripleParser.FindStringSubmatch(text)
	if len(matches) != 4 {
		return Action{}, errors.Errorf("failed to parse action %q, expected \"kind x y\"", text)
	}
	var values [3]int
	for ii := range values {
		v, err := strconv.Atoi(matches[1+ii])
		if err != nil {
			return Action{}, errors.Wrapf(err, "failed to parse value %q in action %q", matches[1+ii], text)
		}
		values[ii] = v
	}
	return ActionFromTriple(values[0], values[1], values[2])
}

// ParseActions parses a list of actions separated by ";". Empty entries are ignored.
func ParseActions(text string) ([]Action, error) {
	var actions []Action
	for ii, part := range strings.Split(text, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		action, err := ParseAction(part)
		if err != nil {
			return nil, errors.WithMessagef(err, "action #%d", ii)
		}
		actions = append(actions, action)
	}
	return actions, nil
}
