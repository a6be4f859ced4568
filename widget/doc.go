// This package provides a set of structs and functions which are used
// to render an IP information widget: a country flag, a loading
// placeholder and an optional popover with geolocation details.
//
// widget is core of the ipinfo-widget project. You can treat the rest
// of the application as an _example_ on how to use this library: how
// to load options from files, how to pass the result into a page
// template, how to register the client-side plugin.
//
// Configurator is a main entity of the package. It accepts Options and
// returns Result: server-rendered placeholder markup and a Binding. The
// binding pairs the id of the rendered root element with PluginConfig,
// a payload for the client-side plugin which actually fetches data from
// the lookup endpoint and replaces the placeholder.
//
// Configurator never does any network calls. Everything is rendered
// eagerly: failure and empty states are pre-rendered fragments inside
// PluginConfig, waiting to be activated by the plugin.
package widget
