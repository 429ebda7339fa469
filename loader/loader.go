package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/adventurers/engine/board"
)

// collector accumulates cell definitions during Lua file execution.
type collector struct {
	file  string
	cells []rawCell
}

func (c *collector) add(cell rawCell) {
	c.cells = append(c.cells, cell)
}

// Load reads a board file, validates it and returns the immutable Board.
// The format is chosen by extension: .lua runs a sandboxed Lua script,
// .yaml/.yml is a mapping of "x,y" keys to blocks.
func Load(path string) (*board.Board, error) {
	var (
		cells []rawCell
		err   error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".lua":
		cells, err = loadLua(path)
	case ".yaml", ".yml":
		cells, err = loadYAML(path)
	default:
		return nil, fmt.Errorf("unsupported map format %q (want .lua, .yaml or .yml)", ext)
	}
	if err != nil {
		return nil, err
	}

	if err := validate(cells); err != nil {
		return nil, err
	}

	b, err := compile(cells)
	if err != nil {
		return nil, fmt.Errorf("compiling board: %w", err)
	}
	return b, nil
}

// loadLua executes a Lua board script and collects the cells it declares.
// The Lua VM is discarded afterwards.
func loadLua(path string) ([]rawCell, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("reading map %s: %w", path, err)
	}

	// Create sandboxed VM.
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	// Open safe libs only.
	openSafeLibs(L)

	// Sandbox: remove dangerous globals.
	sandbox(L)

	// Register API.
	coll := &collector{file: filepath.Base(path)}
	registerAPI(L, coll)

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("executing %s: %w", filepath.Base(path), err)
	}
	if len(coll.cells) == 0 {
		return nil, fmt.Errorf("no cells defined in %s", path)
	}
	return coll.cells, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	// Base library (print, type, tostring, tonumber, pairs, ipairs, etc.)
	lua.OpenBase(L)
	// Table library (table.insert, table.sort, etc.)
	lua.OpenTable(L)
	// String library (string.format, string.sub, etc.)
	lua.OpenString(L)
	// Math library (math.floor, math.max, etc.)
	lua.OpenMath(L)
}

// sandbox removes dangerous globals and functions.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	// Boards must be the same on every load.
	if mathTbl := L.GetGlobal("math"); mathTbl != lua.LNil {
		if tbl, ok := mathTbl.(*lua.LTable); ok {
			tbl.RawSetString("random", lua.LNil)
			tbl.RawSetString("randomseed", lua.LNil)
		}
	}
}
