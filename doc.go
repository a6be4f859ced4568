// ipinfo-widget renders an IP information widget for server-side
// pages.
//
// Idea is simple: you have a page and you want to show where a visitor
// (or some IP address like 1.2.3.4) comes from: a country flag and a
// popover with country, city and coordinates. Data is fetched by
// browser from the lookup service, server renders only a placeholder
// and a configuration for a client-side plugin.
//
// Tool itself is organized into 2 logical parts:
//
// Widget
//
// widget is a core package of the application which contains
// Configurator: it turns declarative Options into markup and a plugin
// payload. It never talks to network.
//
// ipinfo-widget
//
// A main package itself is an example of how to use widget. It loads
// options from toml or hjson files and renders markup, a standalone
// page or a plugin payload.
package main
