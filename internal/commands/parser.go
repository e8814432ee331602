package commands

import (
	"fmt"
	"strconv"
	"strings"
)

// parseIDList accepts "1,2,3" or "[1,2,3]".
func parseIDList(s string) ([]int, error) {
	inner := s
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		inner = s[1 : len(s)-1]
	}
	var ids []int
	for _, part := range strings.Split(inner, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid order id: `%s`", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseInt(s, what string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad %s", what)
	}
	return v, nil
}

// Parse turns one input line into a Command. An empty line advances the
// clock one hour.
func Parse(line string) (Command, error) {
	toks := strings.Fields(line)

	// LOAD/UNLOAD ORDERS allow the id list to be split across tokens
	// ("[1, 2, 3]"), so they are handled before the fixed-arity matches.
	if len(toks) >= 5 && toks[1] == "ORDERS" && (toks[0] == "LOAD" || toks[0] == "UNLOAD") {
		onIdx := -1
		for i, t := range toks {
			if t == "ON" {
				onIdx = i
				break
			}
		}
		if onIdx < 0 {
			return nil, fmt.Errorf("expected ON before plane id")
		}
		orders, err := parseIDList(strings.Join(toks[2:onIdx], " "))
		if err != nil {
			return nil, fmt.Errorf("could not parse order list: %v", err)
		}
		if onIdx+1 >= len(toks) {
			return nil, fmt.Errorf("expected plane id after ON")
		}
		plane, err := parseInt(toks[onIdx+1], "plane id")
		if err != nil {
			return nil, err
		}
		if toks[0] == "LOAD" {
			return LoadOrders{Orders: orders, Plane: plane}, nil
		}
		return UnloadOrders{Orders: orders, Plane: plane}, nil
	}

	switch {
	case len(toks) == 0:
		return Advance{Hours: 1}, nil

	case matches(toks, "SHOW", "AIRPORTS"):
		return ShowAirports{}, nil
	case matches(toks, "SHOW", "AIRPORTS", "WITH", "ORDERS"):
		return ShowAirports{WithOrders: true}, nil
	case matches(toks, "SHOW", "AIRPORTS", "*"):
		id, err := parseInt(toks[2], "airport id")
		if err != nil {
			return nil, err
		}
		return ShowAirport{ID: id}, nil
	case matches(toks, "SHOW", "AIRPORTS", "*", "WITH", "ORDERS"):
		id, err := parseInt(toks[2], "airport id")
		if err != nil {
			return nil, err
		}
		return ShowAirport{ID: id, WithOrders: true}, nil

	case matches(toks, "SHOW", "PLANES"):
		return ShowPlanes{}, nil
	case matches(toks, "SHOW", "PLANES", "*"):
		id, err := parseInt(toks[2], "plane id")
		if err != nil {
			return nil, err
		}
		return ShowPlane{ID: id}, nil
	case matches(toks, "SHOW", "DISTANCES", "*"):
		id, err := parseInt(toks[2], "plane id")
		if err != nil {
			return nil, err
		}
		return ShowDistances{Plane: id}, nil
	case matches(toks, "SHOW", "MODELS"):
		return ShowModels{}, nil
	case matches(toks, "SHOW", "CASH"):
		return ShowCash{}, nil
	case matches(toks, "SHOW", "TIME"):
		return ShowTime{}, nil
	case matches(toks, "SHOW", "STATS"):
		return ShowStats{}, nil

	case matches(toks, "BUY", "PLANE", "*", "*"):
		airport, err := parseInt(toks[3], "airport id")
		if err != nil {
			return nil, err
		}
		return BuyPlane{Model: toks[2], Airport: airport}, nil

	case matches(toks, "LOAD", "ORDER", "*", "ON", "*"):
		order, err := parseInt(toks[2], "order id")
		if err != nil {
			return nil, err
		}
		plane, err := parseInt(toks[4], "plane id")
		if err != nil {
			return nil, err
		}
		return LoadOrder{Order: order, Plane: plane}, nil

	case matches(toks, "UNLOAD", "ORDER", "*", "FROM", "*"):
		order, err := parseInt(toks[2], "order id")
		if err != nil {
			return nil, err
		}
		plane, err := parseInt(toks[4], "plane id")
		if err != nil {
			return nil, err
		}
		return UnloadOrder{Order: order, Plane: plane}, nil

	case matches(toks, "UNLOAD", "ALL", "FROM", "*"):
		plane, err := parseInt(toks[3], "plane id")
		if err != nil {
			return nil, err
		}
		return UnloadAll{Plane: plane}, nil

	case matches(toks, "REFUEL", "PLANE", "*"):
		plane, err := parseInt(toks[2], "plane id")
		if err != nil {
			return nil, err
		}
		return Refuel{Plane: plane}, nil

	case matches(toks, "MAINTENANCE", "*"):
		plane, err := parseInt(toks[1], "plane id")
		if err != nil {
			return nil, err
		}
		return Maintenance{Plane: plane}, nil

	case matches(toks, "DEPART", "PLANE", "*", "*"):
		plane, err := parseInt(toks[2], "plane id")
		if err != nil {
			return nil, err
		}
		dest, err := parseInt(toks[3], "airport id")
		if err != nil {
			return nil, err
		}
		return DepartPlane{Plane: plane, Dest: dest}, nil

	case matches(toks, "HOLD", "PLANE", "*"):
		plane, err := parseInt(toks[2], "plane id")
		if err != nil {
			return nil, err
		}
		return HoldPlane{Plane: plane}, nil

	case matches(toks, "ADVANCE", "*"):
		hours, err := strconv.ParseUint(toks[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad time n")
		}
		return Advance{Hours: hours}, nil

	case matches(toks, "SAVE", "*"):
		return SaveGame{Name: toks[1]}, nil
	case matches(toks, "LOAD", "*"):
		return LoadGame{Name: toks[1]}, nil

	case matches(toks, "EXIT"):
		return Exit{}, nil
	}

	return nil, fmt.Errorf("unrecognized command: %q", strings.Join(toks, " "))
}

// matches checks token count and literal keywords; "*" accepts any token.
func matches(toks []string, pattern ...string) bool {
	if len(toks) != len(pattern) {
		return false
	}
	for i, p := range pattern {
		if p != "*" && toks[i] != p {
			return false
		}
	}
	return true
}
