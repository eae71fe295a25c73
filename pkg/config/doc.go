// Package config loads retree configuration.
//
// Settings are layered: embedded defaults first, then an optional
// user config in the XDG config directory, then an optional
// .retree.toml or retree.toml in the working directory. Later layers
// override earlier ones key by key.
package config
