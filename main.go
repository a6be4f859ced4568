package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

var version = "dev"

var (
	app = kingpin.New(
		"ipinfo-widget",
		"Renders placeholders and plugin payloads of IP info widgets")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("IPINFO_WIDGET_DEBUG").
		Bool()
	lang = app.Flag("lang", "Language of widget messages.").
		Short('l').
		Envar("IPINFO_WIDGET_LANG").
		String()
	configPath = app.Flag("config", "Path to the config (toml, hjson or json).").
			Short('c').
			Envar("IPINFO_WIDGET_CONFIG").
			String()
	ips = app.Flag("ip", "IP address to render a widget for. Can be repeated.").
		Strings()

	renderCommand = app.Command("render", "Render HTML fragment with widgets and a bootstrap script.")
	renderOutput  = renderCommand.Flag("output", "Path to the output file.").
			Short('o').
			String()

	pageCommand = app.Command("page", "Render a standalone HTML page with widgets.")
	pageOutput  = pageCommand.Flag("output", "Path to the output file.").
			Short('o').
			String()

	payloadCommand = app.Command("payload", "Dump plugin payloads as JSON.")
	payloadOutput  = payloadCommand.Flag("output", "Path to the output file.").
			Short('o').
			String()
)

func init() {
	app.Version(version)
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	log := newStderrLogger(*debug)
	fs := afero.NewOsFs()

	conf, err := parseConfig(fs, *configPath)
	if err != nil {
		log.Fatal(err)
	}

	configurer, err := makeConfigurer(conf, *lang, log)
	if err != nil {
		log.Fatal(err)
	}

	widgets, err := renderWidgets(configurer, conf.Widget, *ips, log)
	if err != nil {
		log.Fatal(err)
	}

	var (
		data   []byte
		output string
	)

	switch command {
	case renderCommand.FullCommand():
		data, output = widgets.Fragment(), *renderOutput
	case pageCommand.FullCommand():
		output = *pageOutput
		if data, err = widgets.Page(conf, *lang); err != nil {
			log.Fatal(err)
		}
	case payloadCommand.FullCommand():
		output = *payloadOutput
		if data, err = widgets.Payload(); err != nil {
			log.Fatal(err)
		}
	}

	if err := writeOutput(fs, os.Stdout, output, data); err != nil {
		log.Fatal(err)
	}
}
