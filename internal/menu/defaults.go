package menu

func separator() Item {
	return Item{Separator: true, Disabled: true}
}

// DefaultItems returns the menu shown when no menu file is configured.
func DefaultItems() []Item {
	return []Item{
		{ID: "file", Label: "&File", Submenu: []Item{
			{ID: "file:new", Label: "&New", Accelerator: "Ctrl+N"},
			{ID: "file:open", Label: "&Open…", Accelerator: "Ctrl+O"},
			{ID: "file:recent", Label: "Open &Recent", Submenu: []Item{
				{ID: "file:recent:clear", Label: "&Clear Recent", Disabled: true},
			}},
			separator(),
			{ID: "file:save", Label: "&Save", Accelerator: "Ctrl+S", Disabled: true},
			separator(),
			{ID: "app:quit", Label: "E&xit", Accelerator: "Ctrl+C"},
		}},
		{ID: "edit", Label: "&Edit", Submenu: []Item{
			{ID: "edit:undo", Label: "&Undo", Accelerator: "Ctrl+Z", Disabled: true},
			{ID: "edit:redo", Label: "&Redo", Accelerator: "Ctrl+Y", Disabled: true},
			separator(),
			{ID: "edit:cut", Label: "Cu&t", Accelerator: "Ctrl+X"},
			{ID: "edit:copy", Label: "&Copy", Accelerator: "Ctrl+C"},
			{ID: "edit:paste", Label: "&Paste", Accelerator: "Ctrl+V"},
		}},
		{ID: "view", Label: "&View", Submenu: []Item{
			{ID: "view:toggle-style", Label: "Toggle &Menu Style"},
			{ID: "view:appearance", Label: "&Appearance", Submenu: []Item{
				{ID: "view:appearance:zoom-in", Label: "Zoom &In"},
				{ID: "view:appearance:zoom-out", Label: "Zoom &Out"},
				{ID: "view:appearance:reset", Label: "&Reset Zoom", Disabled: true},
			}},
			separator(),
			{ID: "view:reload-menu", Label: "&Reload Menu", Accelerator: "Ctrl+R"},
		}},
		{ID: "window", Label: "&Window", Submenu: []Item{
			{ID: "window:minimize", Label: "&Minimize", Disabled: true},
			{ID: "window:date", Label: "Show &Date", Action: "exec", Command: "date"},
		}},
		{ID: "help", Label: "&Help", Submenu: []Item{
			{ID: "app:about", Label: "&About"},
		}},
	}
}
