package menu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type fileDocument struct {
	Menu []fileItem `toml:"menu"`
}

type fileItem struct {
	ID          string     `toml:"id"`
	Label       string     `toml:"label"`
	Accelerator string     `toml:"accelerator"`
	Action      string     `toml:"action"`
	Command     string     `toml:"command"`
	Disabled    bool       `toml:"disabled"`
	Type        string     `toml:"type"`
	Submenu     []fileItem `toml:"submenu"`
}

// LoadFile reads a TOML menu definition.
func LoadFile(path string) ([]Item, error) {
	var doc fileDocument
	md, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return nil, fmt.Errorf("decode menu file %s: %w", path, err)
	}
	return fromDocument(doc, md, path)
}

// Parse decodes a TOML menu definition held in memory.
func Parse(data string) ([]Item, error) {
	var doc fileDocument
	md, err := toml.Decode(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}
	return fromDocument(doc, md, "menu")
}

func fromDocument(doc fileDocument, md toml.MetaData, source string) ([]Item, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", source, strings.Join(keys, ", "))
	}
	items, err := convertItems(doc.Menu, "menu")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return items, nil
}

func convertItems(in []fileItem, trail string) ([]Item, error) {
	out := make([]Item, 0, len(in))
	var errs []error
	for i, entry := range in {
		where := fmt.Sprintf("%s[%d]", trail, i)
		item, err := convertItem(entry, where)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, item)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

func convertItem(entry fileItem, where string) (Item, error) {
	switch strings.ToLower(strings.TrimSpace(entry.Type)) {
	case "separator":
		return Item{ID: entry.ID, Separator: true, Disabled: true}, nil
	case "", "normal", "submenu":
	default:
		return Item{}, fmt.Errorf("%s: unknown type %q", where, entry.Type)
	}
	if strings.TrimSpace(entry.Label) == "" {
		return Item{}, fmt.Errorf("%s: label is required", where)
	}
	if strings.Count(entry.Label, "&") > 1 {
		return Item{}, fmt.Errorf("%s: label %q has more than one mnemonic marker", where, entry.Label)
	}
	item := Item{
		ID:          entry.ID,
		Label:       entry.Label,
		Accelerator: entry.Accelerator,
		Action:      entry.Action,
		Command:     entry.Command,
		Disabled:    entry.Disabled,
	}
	if entry.Submenu != nil || strings.EqualFold(entry.Type, "submenu") {
		children, err := convertItems(entry.Submenu, where+".submenu")
		if err != nil {
			return Item{}, err
		}
		item.Submenu = children
	}
	return item, nil
}
