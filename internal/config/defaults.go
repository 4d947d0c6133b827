package config

import (
	_ "embed"
)

//go:embed defaults/termplay.yaml
var defaultSettingsYAML []byte
