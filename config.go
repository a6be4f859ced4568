package main

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/9seconds/ipinfo-widget/widget"
	"github.com/BurntSushi/toml"
	"github.com/hjson/hjson-go"
	"github.com/juju/errors"
	"github.com/spf13/afero"
	"golang.org/x/text/language"
)

const (
	DefaultLanguage  = "en"
	DefaultCacheSize = 1024
	DefaultPageTitle = "IP info"
)

var (
	ErrUnknownConfigFormat = errors.New("unknown config format")

	defaultPageScripts = []string{
		"https://code.jquery.com/jquery-3.7.1.min.js",
		"js/kv-ipinfo.js",
	}
	defaultPageStyles = []string{
		"css/kv-ipinfo.css",
	}
)

type config struct {
	Language   string           `json:"language" toml:"language"`
	PluginName string           `json:"plugin_name" toml:"plugin_name"`
	CacheSize  uint             `json:"cache_size" toml:"cache_size"`
	Endpoints  widget.Endpoints `json:"endpoints" toml:"endpoints"`
	Page       configPage       `json:"page" toml:"page"`
	Widget     widget.Options   `json:"widget" toml:"widget"`
}

func (c config) GetLanguage() string {
	if c.Language != "" {
		return c.Language
	}

	return DefaultLanguage
}

func (c config) GetPluginName() string {
	if c.PluginName != "" {
		return c.PluginName
	}

	return widget.DefaultPluginName
}

func (c config) GetCacheSize() uint {
	if c.CacheSize != 0 {
		return c.CacheSize
	}

	return DefaultCacheSize
}

type configPage struct {
	Title   string   `json:"title" toml:"title"`
	Scripts []string `json:"scripts" toml:"scripts"`
	Styles  []string `json:"styles" toml:"styles"`
}

func (c configPage) GetTitle() string {
	if c.Title != "" {
		return c.Title
	}

	return DefaultPageTitle
}

func (c configPage) GetScripts() []string {
	if c.Scripts != nil {
		return c.Scripts
	}

	return defaultPageScripts
}

func (c configPage) GetStyles() []string {
	if c.Styles != nil {
		return c.Styles
	}

	return defaultPageStyles
}

// parseConfig reads a config file. Widget options are decoded over
// widget.DefaultOptions so absent keys keep defaults. Empty path means
// a default config.
func parseConfig(fs afero.Fs, path string) (*config, error) {
	conf := &config{
		Widget: widget.DefaultOptions(),
	}

	if path == "" {
		return conf, nil
	}

	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Annotate(err, "Cannot read config file")
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(content), conf); err != nil {
			return nil, errors.Annotate(err, "Cannot parse config file")
		}
	case ".hjson", ".json":
		rawMap := map[string]interface{}{}

		if err := hjson.Unmarshal(content, &rawMap); err != nil {
			return nil, errors.Annotate(err, "Cannot parse config file")
		}

		rawBytes, _ := json.Marshal(rawMap)

		if err := json.Unmarshal(rawBytes, conf); err != nil {
			return nil, errors.Annotate(err, "Incorrect structure of config file")
		}
	default:
		return nil, errors.Annotatef(ErrUnknownConfigFormat, "Extension %q", ext)
	}

	if err := validate(conf); err != nil {
		return nil, errors.Annotate(err, "Invalid value")
	}

	return conf, nil
}

func validate(conf *config) error {
	if _, err := language.Parse(conf.GetLanguage()); err != nil {
		return errors.Annotatef(err, "Incorrect language %s", conf.GetLanguage())
	}

	if !widget.IsPluginName(conf.GetPluginName()) {
		return errors.Errorf("Incorrect plugin name %s", conf.GetPluginName())
	}

	return nil
}
