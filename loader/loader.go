package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nathoo/frontiercore/types"
	lua "github.com/yuin/gopher-lua"
)

// collector accumulates Lua definitions during file execution.
type collector struct {
	pack       *lua.LTable
	pools      []rawPool
	npcs       []rawDef
	archetypes []rawDef
	encounters []rawDef
	snippets   []rawDef
	modifiers  []rawDef
	regions    []rawDef
	trees      []rawDef
	warnings   []string
}

func (c *collector) warnf(format string, args ...any) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

// Load reads all .lua and .yaml files from dir, compiles them into a
// content pack, validates it, and returns the immutable Pack. The Lua VM
// is discarded after loading.
func Load(dir string) (*types.Pack, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading content directory %s: %w", dir, err)
	}

	var luaFiles, yamlFiles []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch {
		case strings.HasSuffix(e.Name(), ".lua"):
			luaFiles = append(luaFiles, e.Name())
		case strings.HasSuffix(e.Name(), ".yaml"), strings.HasSuffix(e.Name(), ".yml"):
			yamlFiles = append(yamlFiles, e.Name())
		}
	}
	if len(luaFiles) == 0 && len(yamlFiles) == 0 {
		return nil, fmt.Errorf("no .lua or .yaml files found in %s", dir)
	}

	luaFiles = sortedContentFiles(luaFiles)
	sort.Strings(yamlFiles)

	coll := &collector{}

	if len(luaFiles) > 0 {
		L := lua.NewState(lua.Options{SkipOpenLibs: true})
		defer L.Close()

		openSafeLibs(L)
		sandbox(L)
		registerAPI(L, coll)

		for _, f := range luaFiles {
			path := filepath.Join(dir, f)
			if err := L.DoFile(path); err != nil {
				return nil, fmt.Errorf("executing %s: %w", f, err)
			}
		}
	}

	pack, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling content: %w", err)
	}

	for _, f := range yamlFiles {
		path := filepath.Join(dir, f)
		if err := mergeYAMLFile(path, pack, coll); err != nil {
			return nil, fmt.Errorf("reading %s: %w", f, err)
		}
	}

	if err := validate(pack, coll.warnings); err != nil {
		return nil, err
	}

	return pack, nil
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

	// Remove math.randomseed to preserve determinism.
	if mathTbl := L.GetGlobal("math"); mathTbl != lua.LNil {
		if tbl, ok := mathTbl.(*lua.LTable); ok {
			tbl.RawSetString("randomseed", lua.LNil)
		}
	}
}

// sortedContentFiles returns .lua files with pack.lua first and the rest
// sorted alphabetically.
func sortedContentFiles(files []string) []string {
	var packFile string
	var others []string
	for _, f := range files {
		if f == "pack.lua" {
			packFile = f
		} else {
			others = append(others, f)
		}
	}
	sort.Strings(others)
	if packFile != "" {
		return append([]string{packFile}, others...)
	}
	return others
}
