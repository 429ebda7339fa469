package loader

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers all Lua constructors and helpers as globals.
func registerAPI(L *lua.LState, coll *collector) {
	registerConstructors(L, coll)
	registerBlockHelpers(L)
}

func registerConstructors(L *lua.LState, coll *collector) {
	// Board { {x = 3, y = 3, block = Grass}, ... }; may be called repeatedly.
	L.SetGlobal("Board", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		n := tbl.MaxN()
		for i := 1; i <= n; i++ {
			entry, ok := tbl.RawGetInt(i).(*lua.LTable)
			if !ok {
				L.RaiseError("Board entry %d: expected a table", i)
				return 0
			}
			cell, err := cellFromTable(entry)
			if err != nil {
				L.RaiseError("Board entry %d: %s", i, err.Error())
				return 0
			}
			cell.src = fmt.Sprintf("%s: Board entry %d", coll.file, i)
			coll.add(cell)
		}
		return 0
	}))

	// Cell(x, y, block) defines a single cell, handy inside loops.
	L.SetGlobal("Cell", L.NewFunction(func(L *lua.LState) int {
		x := L.CheckInt(1)
		y := L.CheckInt(2)
		cell, err := blockFromValue(L.Get(3))
		if err != nil {
			L.ArgError(3, err.Error())
			return 0
		}
		cell.x, cell.y = x, y
		cell.src = fmt.Sprintf("%s: Cell(%d, %d)", coll.file, x, y)
		coll.add(cell)
		return 0
	}))
}

func registerBlockHelpers(L *lua.LState) {
	// Bare terrain names evaluate to their tag: block = Grass.
	for _, name := range terrainTags {
		L.SetGlobal(name, lua.LString(name))
	}

	// Sign "text"
	L.SetGlobal("Sign", L.NewFunction(func(L *lua.LState) int {
		text := L.CheckString(1)
		tbl := L.NewTable()
		tbl.RawSetString("tag", lua.LString("Sign"))
		tbl.RawSetString("payload", lua.LString(text))
		L.Push(tbl)
		return 1
	}))

	// Object "y"
	L.SetGlobal("Object", L.NewFunction(func(L *lua.LState) int {
		ch := L.CheckString(1)
		tbl := L.NewTable()
		tbl.RawSetString("tag", lua.LString("Object"))
		tbl.RawSetString("payload", lua.LString(ch))
		L.Push(tbl)
		return 1
	}))
}

// cellFromTable reads {x = ..., y = ..., block = ...}.
func cellFromTable(tbl *lua.LTable) (rawCell, error) {
	x, err := getCoord(tbl, "x")
	if err != nil {
		return rawCell{}, err
	}
	y, err := getCoord(tbl, "y")
	if err != nil {
		return rawCell{}, err
	}
	cell, err := blockFromValue(tbl.RawGetString("block"))
	if err != nil {
		return rawCell{}, err
	}
	cell.x, cell.y = x, y
	return cell, nil
}

// blockFromValue accepts a tag string ("Sand", "Object('y')") or a table
// built by Sign/Object.
func blockFromValue(v lua.LValue) (rawCell, error) {
	switch val := v.(type) {
	case lua.LString:
		tag, payload, hasPayload := parseBlockLiteral(string(val))
		return rawCell{tag: tag, payload: payload, hasPayload: hasPayload}, nil
	case *lua.LTable:
		tag := getString(val, "tag")
		if tag == "" {
			return rawCell{}, fmt.Errorf("block table has no tag")
		}
		payload, ok := val.RawGetString("payload").(lua.LString)
		return rawCell{tag: tag, payload: string(payload), hasPayload: ok}, nil
	case *lua.LNilType:
		return rawCell{}, fmt.Errorf("missing block")
	default:
		return rawCell{}, fmt.Errorf("block must be a string or table, got %s", v.Type())
	}
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getCoord returns an integral numeric field from a Lua table.
func getCoord(tbl *lua.LTable, key string) (int, error) {
	v := tbl.RawGetString(key)
	n, ok := v.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("%s must be a number, got %s", key, v.Type())
	}
	f := float64(n)
	if f != float64(int(f)) {
		return 0, fmt.Errorf("%s must be an integer, got %v", key, f)
	}
	return int(f), nil
}
