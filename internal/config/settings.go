// Package config loads the installer's optional Lua settings file.
//
// Settings override the built-in template and release defaults. The
// file is executed in a sandboxed Lua VM so it stays declarative: no
// filesystem access, no process execution, no module loading.
//
// Example install.lua:
//
//	install = {
//	    template_url  = "https://github.com/me/my-template.git",
//	    pinned_version = "0.25.0",
//	    release_index = "https://api.github.com/repos/pocketbase/pocketbase/releases/latest",
//	}
package config

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/realJogicodes/install-svelte-app-fast-dev/internal/release"
	"github.com/realJogicodes/install-svelte-app-fast-dev/internal/setup"
)

// SettingsFileName is looked up in the working directory.
const SettingsFileName = "install.lua"

// Settings are the tunable installer defaults.
type Settings struct {
	TemplateURL   string
	PinnedVersion string
	ReleaseIndex  string
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		TemplateURL:   setup.DefaultTemplateURL,
		PinnedVersion: release.PinnedVersion,
		ReleaseIndex:  release.DefaultIndexURL,
	}
}

// Load reads settings from a Lua file. A missing file is not an error:
// the defaults are returned unchanged. A present but invalid file is an
// error, since silently ignoring a broken override would install the
// wrong template.
func Load(path string) (Settings, error) {
	settings := DefaultSettings()

	code, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	return parse(settings, string(code))
}

// parse executes the Lua code in a sandbox and applies the install
// table's fields over the given defaults.
func parse(settings Settings, code string) (Settings, error) {
	L := newSandboxedVM()
	defer L.Close()

	if err := L.DoString(code); err != nil {
		return settings, fmt.Errorf("settings syntax error: %w", err)
	}

	installVal := L.GetGlobal("install")
	if installVal.Type() != lua.LTTable {
		return settings, fmt.Errorf("missing or invalid 'install' table: expected table, got %s", installVal.Type())
	}
	table := installVal.(*lua.LTable)

	if v := table.RawGetString("template_url"); v.Type() == lua.LTString {
		settings.TemplateURL = v.String()
	}
	if v := table.RawGetString("pinned_version"); v.Type() == lua.LTString {
		settings.PinnedVersion = v.String()
	}
	if v := table.RawGetString("release_index"); v.Type() == lua.LTString {
		settings.ReleaseIndex = v.String()
	}

	if settings.TemplateURL == "" {
		return settings, fmt.Errorf("template_url cannot be empty")
	}
	if settings.PinnedVersion == "" {
		return settings, fmt.Errorf("pinned_version cannot be empty")
	}

	return settings, nil
}
