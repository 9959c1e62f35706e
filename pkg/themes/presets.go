package themes

// Nord, https://www.nordtheme.com/
var nord = Preset{
	Name:        "nord",
	DisplayName: "Nord",
	Light: Colors{
		Background:            "oklch(0.97 0.005 240)",
		Foreground:            "oklch(0.30 0.02 240)",
		Card:                  "oklch(0.95 0.005 240)",
		CardForeground:        "oklch(0.30 0.02 240)",
		Popover:               "oklch(0.97 0.005 240)",
		PopoverForeground:     "oklch(0.30 0.02 240)",
		Primary:               "oklch(0.60 0.12 240)",
		PrimaryForeground:     "oklch(0.97 0.005 240)",
		Secondary:             "oklch(0.90 0.01 240)",
		SecondaryForeground:   "oklch(0.30 0.02 240)",
		Muted:                 "oklch(0.92 0.005 240)",
		MutedForeground:       "oklch(0.50 0.02 240)",
		Accent:                "oklch(0.70 0.10 180)",
		AccentForeground:      "oklch(0.20 0.02 240)",
		Destructive:           "oklch(0.60 0.18 25)",
		DestructiveForeground: "oklch(0.97 0.005 240)",
		Border:                "oklch(0.88 0.01 240)",
		Input:                 "oklch(0.88 0.01 240)",
		Ring:                  "oklch(0.60 0.12 240)",
	},
	Dark: Colors{
		Background:            "oklch(0.25 0.02 240)",
		Foreground:            "oklch(0.92 0.01 240)",
		Card:                  "oklch(0.28 0.02 240)",
		CardForeground:        "oklch(0.92 0.01 240)",
		Popover:               "oklch(0.25 0.02 240)",
		PopoverForeground:     "oklch(0.92 0.01 240)",
		Primary:               "oklch(0.72 0.10 240)",
		PrimaryForeground:     "oklch(0.25 0.02 240)",
		Secondary:             "oklch(0.32 0.02 240)",
		SecondaryForeground:   "oklch(0.92 0.01 240)",
		Muted:                 "oklch(0.32 0.02 240)",
		MutedForeground:       "oklch(0.65 0.02 240)",
		Accent:                "oklch(0.70 0.12 180)",
		AccentForeground:      "oklch(0.92 0.01 240)",
		Destructive:           "oklch(0.60 0.18 25)",
		DestructiveForeground: "oklch(0.92 0.01 240)",
		Border:                "oklch(0.35 0.02 240)",
		Input:                 "oklch(0.35 0.02 240)",
		Ring:                  "oklch(0.72 0.10 240)",
	},
}

// Catppuccin, Latte for light and Mocha for dark, https://catppuccin.com/
var catppuccin = Preset{
	Name:        "catppuccin",
	DisplayName: "Catppuccin",
	Light: Colors{
		Background:            "oklch(0.96 0.01 240)",
		Foreground:            "oklch(0.30 0.04 270)",
		Card:                  "oklch(0.94 0.01 240)",
		CardForeground:        "oklch(0.30 0.04 270)",
		Popover:               "oklch(0.96 0.01 240)",
		PopoverForeground:     "oklch(0.30 0.04 270)",
		Primary:               "oklch(0.55 0.18 280)",
		PrimaryForeground:     "oklch(0.96 0.01 240)",
		Secondary:             "oklch(0.90 0.02 260)",
		SecondaryForeground:   "oklch(0.30 0.04 270)",
		Muted:                 "oklch(0.92 0.01 260)",
		MutedForeground:       "oklch(0.50 0.03 270)",
		Accent:                "oklch(0.70 0.14 200)",
		AccentForeground:      "oklch(0.20 0.03 270)",
		Destructive:           "oklch(0.60 0.20 25)",
		DestructiveForeground: "oklch(0.96 0.01 240)",
		Border:                "oklch(0.85 0.02 260)",
		Input:                 "oklch(0.85 0.02 260)",
		Ring:                  "oklch(0.55 0.18 280)",
	},
	Dark: Colors{
		Background:            "oklch(0.24 0.02 270)",
		Foreground:            "oklch(0.90 0.01 270)",
		Card:                  "oklch(0.27 0.02 270)",
		CardForeground:        "oklch(0.90 0.01 270)",
		Popover:               "oklch(0.24 0.02 270)",
		PopoverForeground:     "oklch(0.90 0.01 270)",
		Primary:               "oklch(0.75 0.14 280)",
		PrimaryForeground:     "oklch(0.24 0.02 270)",
		Secondary:             "oklch(0.32 0.03 270)",
		SecondaryForeground:   "oklch(0.90 0.01 270)",
		Muted:                 "oklch(0.32 0.02 270)",
		MutedForeground:       "oklch(0.65 0.02 270)",
		Accent:                "oklch(0.75 0.12 200)",
		AccentForeground:      "oklch(0.90 0.01 270)",
		Destructive:           "oklch(0.65 0.20 25)",
		DestructiveForeground: "oklch(0.90 0.01 270)",
		Border:                "oklch(0.38 0.03 270)",
		Input:                 "oklch(0.38 0.03 270)",
		Ring:                  "oklch(0.75 0.14 280)",
	},
}

// Dracula, https://draculatheme.com/
var dracula = Preset{
	Name:        "dracula",
	DisplayName: "Dracula",
	Light: Colors{
		Background:            "#f8f8f2",
		Foreground:            "#282a36",
		Card:                  "#ffffff",
		CardForeground:        "#282a36",
		Popover:               "#ffffff",
		PopoverForeground:     "#282a36",
		Primary:               "#bd93f9",
		PrimaryForeground:     "#282a36",
		Secondary:             "#e2e2e2",
		SecondaryForeground:   "#282a36",
		Muted:                 "#e8e8e8",
		MutedForeground:       "#6272a4",
		Accent:                "#ff79c6",
		AccentForeground:      "#282a36",
		Destructive:           "#ff5555",
		DestructiveForeground: "#f8f8f2",
		Border:                "#d0d0d0",
		Input:                 "#d0d0d0",
		Ring:                  "#bd93f9",
	},
	Dark: Colors{
		Background:            "#282a36",
		Foreground:            "#f8f8f2",
		Card:                  "#44475a",
		CardForeground:        "#f8f8f2",
		Popover:               "#282a36",
		PopoverForeground:     "#f8f8f2",
		Primary:               "#bd93f9",
		PrimaryForeground:     "#282a36",
		Secondary:             "#44475a",
		SecondaryForeground:   "#f8f8f2",
		Muted:                 "#44475a",
		MutedForeground:       "#6272a4",
		Accent:                "#ff79c6",
		AccentForeground:      "#f8f8f2",
		Destructive:           "#ff5555",
		DestructiveForeground: "#f8f8f2",
		Border:                "#6272a4",
		Input:                 "#6272a4",
		Ring:                  "#bd93f9",
	},
}

// Gruvbox, https://github.com/morhetz/gruvbox
var gruvbox = Preset{
	Name:        "gruvbox",
	DisplayName: "Gruvbox",
	Light: Colors{
		Background:            "oklch(0.94 0.02 85)",
		Foreground:            "oklch(0.30 0.04 50)",
		Card:                  "oklch(0.91 0.02 85)",
		CardForeground:        "oklch(0.30 0.04 50)",
		Popover:               "oklch(0.94 0.02 85)",
		PopoverForeground:     "oklch(0.30 0.04 50)",
		Primary:               "oklch(0.55 0.15 45)",
		PrimaryForeground:     "oklch(0.94 0.02 85)",
		Secondary:             "oklch(0.85 0.03 85)",
		SecondaryForeground:   "oklch(0.30 0.04 50)",
		Muted:                 "oklch(0.88 0.02 85)",
		MutedForeground:       "oklch(0.50 0.03 50)",
		Accent:                "oklch(0.65 0.15 150)",
		AccentForeground:      "oklch(0.20 0.03 50)",
		Destructive:           "oklch(0.55 0.20 25)",
		DestructiveForeground: "oklch(0.94 0.02 85)",
		Border:                "oklch(0.80 0.03 85)",
		Input:                 "oklch(0.80 0.03 85)",
		Ring:                  "oklch(0.55 0.15 45)",
	},
	Dark: Colors{
		Background:            "oklch(0.27 0.03 50)",
		Foreground:            "oklch(0.88 0.03 85)",
		Card:                  "oklch(0.30 0.03 50)",
		CardForeground:        "oklch(0.88 0.03 85)",
		Popover:               "oklch(0.27 0.03 50)",
		PopoverForeground:     "oklch(0.88 0.03 85)",
		Primary:               "oklch(0.70 0.15 45)",
		PrimaryForeground:     "oklch(0.27 0.03 50)",
		Secondary:             "oklch(0.35 0.03 50)",
		SecondaryForeground:   "oklch(0.88 0.03 85)",
		Muted:                 "oklch(0.35 0.02 50)",
		MutedForeground:       "oklch(0.65 0.02 85)",
		Accent:                "oklch(0.72 0.15 150)",
		AccentForeground:      "oklch(0.88 0.03 85)",
		Destructive:           "oklch(0.60 0.20 25)",
		DestructiveForeground: "oklch(0.88 0.03 85)",
		Border:                "oklch(0.40 0.03 50)",
		Input:                 "oklch(0.40 0.03 50)",
		Ring:                  "oklch(0.70 0.15 45)",
	},
}

// Tokyo Night, Storm for dark, https://github.com/enkia/tokyo-night-vscode-theme
var tokyoNight = Preset{
	Name:        "tokyo-night",
	DisplayName: "Tokyo Night",
	Light: Colors{
		Background:            "oklch(0.97 0.005 250)",
		Foreground:            "oklch(0.30 0.03 250)",
		Card:                  "oklch(0.95 0.005 250)",
		CardForeground:        "oklch(0.30 0.03 250)",
		Popover:               "oklch(0.97 0.005 250)",
		PopoverForeground:     "oklch(0.30 0.03 250)",
		Primary:               "oklch(0.55 0.18 260)",
		PrimaryForeground:     "oklch(0.97 0.005 250)",
		Secondary:             "oklch(0.90 0.01 250)",
		SecondaryForeground:   "oklch(0.30 0.03 250)",
		Muted:                 "oklch(0.92 0.005 250)",
		MutedForeground:       "oklch(0.50 0.02 250)",
		Accent:                "oklch(0.70 0.15 200)",
		AccentForeground:      "oklch(0.20 0.02 250)",
		Destructive:           "oklch(0.60 0.20 15)",
		DestructiveForeground: "oklch(0.97 0.005 250)",
		Border:                "oklch(0.85 0.01 250)",
		Input:                 "oklch(0.85 0.01 250)",
		Ring:                  "oklch(0.55 0.18 260)",
	},
	Dark: Colors{
		Background:            "oklch(0.22 0.03 260)",
		Foreground:            "oklch(0.85 0.02 260)",
		Card:                  "oklch(0.25 0.03 260)",
		CardForeground:        "oklch(0.85 0.02 260)",
		Popover:               "oklch(0.22 0.03 260)",
		PopoverForeground:     "oklch(0.85 0.02 260)",
		Primary:               "oklch(0.72 0.15 260)",
		PrimaryForeground:     "oklch(0.22 0.03 260)",
		Secondary:             "oklch(0.30 0.03 260)",
		SecondaryForeground:   "oklch(0.85 0.02 260)",
		Muted:                 "oklch(0.30 0.02 260)",
		MutedForeground:       "oklch(0.60 0.02 260)",
		Accent:                "oklch(0.75 0.15 200)",
		AccentForeground:      "oklch(0.85 0.02 260)",
		Destructive:           "oklch(0.65 0.20 15)",
		DestructiveForeground: "oklch(0.85 0.02 260)",
		Border:                "oklch(0.35 0.03 260)",
		Input:                 "oklch(0.35 0.03 260)",
		Ring:                  "oklch(0.72 0.15 260)",
	},
}

// Rose Pine, Dawn for light and Main for dark, https://rosepinetheme.com/
var rosePine = Preset{
	Name:        "rose-pine",
	DisplayName: "Rosé Pine",
	Light: Colors{
		Background:            "oklch(0.97 0.01 50)",
		Foreground:            "oklch(0.35 0.04 300)",
		Card:                  "oklch(0.95 0.01 50)",
		CardForeground:        "oklch(0.35 0.04 300)",
		Popover:               "oklch(0.97 0.01 50)",
		PopoverForeground:     "oklch(0.35 0.04 300)",
		Primary:               "oklch(0.55 0.18 340)",
		PrimaryForeground:     "oklch(0.97 0.01 50)",
		Secondary:             "oklch(0.92 0.02 50)",
		SecondaryForeground:   "oklch(0.35 0.04 300)",
		Muted:                 "oklch(0.93 0.01 50)",
		MutedForeground:       "oklch(0.50 0.03 300)",
		Accent:                "oklch(0.65 0.12 30)",
		AccentForeground:      "oklch(0.20 0.03 300)",
		Destructive:           "oklch(0.60 0.20 15)",
		DestructiveForeground: "oklch(0.97 0.01 50)",
		Border:                "oklch(0.88 0.02 50)",
		Input:                 "oklch(0.88 0.02 50)",
		Ring:                  "oklch(0.55 0.18 340)",
	},
	Dark: Colors{
		Background:            "oklch(0.22 0.03 300)",
		Foreground:            "oklch(0.90 0.02 50)",
		Card:                  "oklch(0.25 0.03 300)",
		CardForeground:        "oklch(0.90 0.02 50)",
		Popover:               "oklch(0.22 0.03 300)",
		PopoverForeground:     "oklch(0.90 0.02 50)",
		Primary:               "oklch(0.72 0.15 340)",
		PrimaryForeground:     "oklch(0.22 0.03 300)",
		Secondary:             "oklch(0.30 0.03 300)",
		SecondaryForeground:   "oklch(0.90 0.02 50)",
		Muted:                 "oklch(0.30 0.02 300)",
		MutedForeground:       "oklch(0.65 0.02 50)",
		Accent:                "oklch(0.70 0.12 30)",
		AccentForeground:      "oklch(0.90 0.02 50)",
		Destructive:           "oklch(0.65 0.20 15)",
		DestructiveForeground: "oklch(0.90 0.02 50)",
		Border:                "oklch(0.35 0.03 300)",
		Input:                 "oklch(0.35 0.03 300)",
		Ring:                  "oklch(0.72 0.15 340)",
	},
}
