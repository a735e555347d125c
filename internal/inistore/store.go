// Package inistore is a section-scoped key/value view over an INI file.
package inistore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"pngopt/internal/domain/errconsts"
	"pngopt/internal/parsing"

	"gopkg.in/ini.v1"
)

// Store reads and writes typed values under one INI section.
//
// Section and key names match case-insensitively; the spelling used when a
// key is first written is the one saved to disk.
type Store struct {
	file    *ini.File
	section *ini.Section
}

// loadOptions are shared by reading and writing; the writer's quoting
// depends on them. A trailing backslash is part of the value.
var loadOptions = ini.LoadOptions{IgnoreContinuation: true}

// New returns an empty store scoped to section.
func New(section string) *Store {
	f := ini.Empty(loadOptions)
	return &Store{file: f, section: findOrCreateSection(f, section)}
}

// Load reads path and scopes the store to section.
//
// A missing section is not an error: every getter then returns its default.
func Load(path, section string) (*Store, error) {
	f, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return nil, fmt.Errorf(errconsts.SettingsLoadFail, path, err)
	}
	return &Store{file: f, section: findOrCreateSection(f, section)}, nil
}

func findOrCreateSection(f *ini.File, name string) *ini.Section {
	for _, sec := range f.Sections() {
		if strings.EqualFold(sec.Name(), name) {
			return sec
		}
	}
	return f.Section(name)
}

// Section returns the section name the store is scoped to.
func (s *Store) Section() string {
	return s.section.Name()
}

// SetComment sets the comment lines written above the section header.
func (s *Store) SetComment(lines ...string) {
	var kept []string
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			kept = append(kept, l)
		}
	}
	s.section.Comment = strings.Join(kept, ini.LineBreak)
}

// Save writes the whole file to path.
//
// The file is written next to path and renamed over it, so a failed write
// leaves an existing file untouched.
func (s *Store) Save(path string) (err error) {
	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf(errconsts.SettingsSaveFail, path, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := s.writeTo(tmp); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(errconsts.SettingsSaveFail, path, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(errconsts.SettingsSaveFail, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf(errconsts.SettingsCloseFail, path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf(errconsts.SettingsSaveFail, path, err)
	}
	return nil
}

// writeTo writes the file with every value in a form the parser reads back
// unchanged. In-memory values are restored afterwards.
func (s *Store) writeTo(w io.Writer) error {
	type saved struct {
		key   *ini.Key
		value string
	}
	var restore []saved
	defer func() {
		for _, r := range restore {
			r.key.SetValue(r.value)
		}
	}()

	for _, sec := range s.file.Sections() {
		for _, k := range sec.Keys() {
			v := k.Value()
			if quoted := diskValue(v); quoted != v {
				restore = append(restore, saved{key: k, value: v})
				k.SetValue(quoted)
			}
		}
	}

	_, err := s.file.WriteTo(w)
	return err
}

// diskValue returns v wrapped in triple quotes when the writer would
// otherwise emit it in a form the parser alters: surrounding whitespace or
// a leading quote character. Values holding a newline, a backtick, '#' or
// ';' are left alone since the writer already quotes them losslessly.
func diskValue(v string) string {
	if strings.ContainsAny(v, "\n`#;") {
		return v
	}
	if strings.TrimSpace(v) != v || strings.HasPrefix(v, `"`) || strings.HasPrefix(v, "'") {
		return `"""` + v + `"""`
	}
	return v
}

// lookup finds a key in the current section, ignoring case.
func (s *Store) lookup(name string) *ini.Key {
	if s.section.HasKey(name) {
		return s.section.Key(name)
	}
	for _, k := range s.section.Keys() {
		if strings.EqualFold(k.Name(), name) {
			return k
		}
	}
	return nil
}

// Has reports whether key is present.
func (s *Store) Has(key string) bool {
	return s.lookup(key) != nil
}

// GetString returns the raw value of key, or def when absent.
func (s *Store) GetString(key, def string) string {
	k := s.lookup(key)
	if k == nil {
		return def
	}
	return k.String()
}

// GetBool returns the boolean value of key, or def when absent.
func (s *Store) GetBool(key string, def bool) (bool, error) {
	k := s.lookup(key)
	if k == nil {
		return def, nil
	}
	return parsing.ParseBool(key, k.String())
}

// GetUint returns the unsigned value of key, or def when absent.
func (s *Store) GetUint(key string, def uint32) (uint32, error) {
	k := s.lookup(key)
	if k == nil {
		return def, nil
	}
	return parsing.ParseUint(key, k.String())
}

// SetString stores v as-is.
func (s *Store) SetString(key, v string) {
	if key == "" {
		return
	}
	if k := s.lookup(key); k != nil {
		k.SetValue(v)
		return
	}
	// NewKey only fails on an empty name
	_, _ = s.section.NewKey(key, v)
}

// SetBool stores v as "1" or "0".
func (s *Store) SetBool(key string, v bool) {
	if v {
		s.SetString(key, "1")
		return
	}
	s.SetString(key, "0")
}

// SetUint stores v in decimal.
func (s *Store) SetUint(key string, v uint32) {
	s.SetString(key, strconv.FormatUint(uint64(v), 10))
}
