package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net"
	"path/filepath"

	"github.com/9seconds/ipinfo-widget/widget"
	"github.com/spf13/afero"
	"golang.org/x/text/language"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="{{ .Language }}">
<head>
<meta charset="utf-8">
<title>{{ .Title }}</title>
{{- range .Styles }}
<link rel="stylesheet" href="{{ . }}">
{{- end }}
</head>
<body>
{{- range .Widgets }}
{{ . }}
{{- end }}
{{- range .Scripts }}
<script src="{{ . }}"></script>
{{- end }}
{{- if .Script }}
<script>{{ .Script }}</script>
{{- end }}
</body>
</html>
`))

type renderedPage struct {
	Language string
	Title    string
	Styles   []string
	Scripts  []string
	Widgets  []template.HTML
	Script   template.JS
}

type payloadItem struct {
	ElementID string              `json:"element_id"`
	Plugin    string              `json:"plugin"`
	Config    widget.PluginConfig `json:"config"`
}

type renderedWidgets struct {
	results   []widget.Result
	registrar *widget.ScriptRegistrar
}

func makeConfigurer(conf *config, lang string, log widget.Logger) (widget.Configurer, error) {
	if lang == "" {
		lang = conf.GetLanguage()
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("incorrect language %s: %w", lang, err)
	}

	configurator := widget.NewConfigurator(widget.NewTranslator(tag),
		widget.BootstrapPopover(),
		log,
		widget.WithEndpoints(conf.Endpoints),
		widget.WithPluginName(conf.GetPluginName()))

	return widget.NewCachingConfigurator(configurator, conf.GetCacheSize(), 0), nil
}

// renderWidgets renders a widget per IP address. No addresses means a
// single widget for IP from options. Configured container id gets a
// numeric suffix if there are many widgets.
func renderWidgets(configurer widget.Configurer, base widget.Options, ips []string, log *logger) (*renderedWidgets, error) {
	if len(ips) == 0 {
		ips = []string{base.IP}
	}

	rv := &renderedWidgets{
		results:   make([]widget.Result, 0, len(ips)),
		registrar: &widget.ScriptRegistrar{},
	}

	for i, v := range ips {
		if v != "" && net.ParseIP(v) == nil {
			log.InvalidIP(v)
		}

		opts := base
		opts.IP = v

		if base.Container.ID != "" && len(ips) > 1 {
			opts.Container.ID = fmt.Sprintf("%s-%d", base.Container.ID, i+1)
		}

		result := configurer.Configure(opts)

		if err := result.Register(rv.registrar); err != nil {
			return nil, fmt.Errorf("cannot register widget for %q: %w", v, err)
		}

		log.Rendered(result.Binding.ElementID, v)

		rv.results = append(rv.results, result)
	}

	return rv, nil
}

func (r *renderedWidgets) Fragment() []byte {
	buf := bytes.Buffer{}

	for _, v := range r.results {
		buf.WriteString(string(v.HTML))
		buf.WriteByte('\n')
	}

	if script := r.registrar.Script(); script != "" {
		buf.WriteString("<script>")
		buf.WriteString(string(script))
		buf.WriteString("</script>\n")
	}

	return buf.Bytes()
}

func (r *renderedWidgets) Page(conf *config, lang string) ([]byte, error) {
	if lang == "" {
		lang = conf.GetLanguage()
	}

	page := renderedPage{
		Language: lang,
		Title:    conf.Page.GetTitle(),
		Styles:   conf.Page.GetStyles(),
		Scripts:  conf.Page.GetScripts(),
		Widgets:  make([]template.HTML, 0, len(r.results)),
		Script:   r.registrar.Script(),
	}

	for _, v := range r.results {
		page.Widgets = append(page.Widgets, v.HTML)
	}

	buf := bytes.Buffer{}
	if err := pageTemplate.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("cannot render page: %w", err)
	}

	return buf.Bytes(), nil
}

func (r *renderedWidgets) Payload() ([]byte, error) {
	items := make([]payloadItem, 0, len(r.results))

	for _, v := range r.results {
		items = append(items, payloadItem{
			ElementID: v.Binding.ElementID,
			Plugin:    v.Binding.Plugin,
			Config:    v.Binding.Config,
		})
	}

	buf := bytes.Buffer{}
	encoder := json.NewEncoder(&buf)

	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(items); err != nil {
		return nil, fmt.Errorf("cannot encode payload: %w", err)
	}

	return buf.Bytes(), nil
}

func writeOutput(fs afero.Fs, stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)

		return err
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("cannot create directory for %s: %w", path, err)
	}

	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}

	return nil
}
