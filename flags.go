package main

import (
	"strconv"

	filterpkg "github.com/nethoundsh/findit/pkg/filter"
)

// The test options are flag.Values so that Set runs in command-line order
// and can append to the pipeline as each option is seen. Repeating an option
// queues its test again against the last value given.

type typeFlag struct {
	cfg *appConfig
}

func (f *typeFlag) String() string {
	if f.cfg == nil {
		return ""
	}
	return f.cfg.query.Type.String()
}

func (f *typeFlag) Set(v string) error {
	t, err := filterpkg.ParseEntryType(v)
	if err != nil {
		return err
	}
	f.cfg.query.Type = t
	f.cfg.filters.Append(filterpkg.TypeFilter{})
	return nil
}

type nameFlag struct {
	cfg *appConfig
}

func (f *nameFlag) String() string {
	if f.cfg == nil {
		return ""
	}
	return f.cfg.query.Name
}

func (f *nameFlag) Set(v string) error {
	if err := f.cfg.query.SetName(v); err != nil {
		return err
	}
	f.cfg.filters.Append(filterpkg.NameFilter{})
	return nil
}

// modeFlag is a boolean option; -readable=false is accepted and ignored.
type modeFlag struct {
	cfg  *appConfig
	mode filterpkg.AccessMode
}

func (f *modeFlag) IsBoolFlag() bool { return true }

func (f *modeFlag) String() string {
	if f.cfg == nil {
		return "false"
	}
	return strconv.FormatBool(f.cfg.query.Mode == f.mode)
}

func (f *modeFlag) Set(v string) error {
	on, err := strconv.ParseBool(v)
	if err != nil {
		return err
	}
	if !on {
		return nil
	}
	f.cfg.query.Mode = f.mode
	f.cfg.filters.Append(filterpkg.ModeFilter{})
	return nil
}
