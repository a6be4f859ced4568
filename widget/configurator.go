package widget

import (
	"html/template"

	"golang.org/x/text/language"
)

const (
	defaultContainerTag = "span"
	defaultLoadingTag   = "div"
	defaultNoDataTag    = "div"
	defaultErrorDataTag = "span"

	defaultToggleClass = "btn btn-xs btn-link"
	defaultToggleStyle = "margin:0"
)

var defaultConfigurator = NewConfigurator(nil, nil, nil)

type tagSpec struct {
	tag   string
	attrs Attrs
}

// resolvedOptions are options with all defaults applied and reserved
// keys extracted from attribute bags.
type resolvedOptions struct {
	ip        string
	elementID string
	header    string

	container tagSpec
	loading   tagSpec
	noData    tagSpec
	errorData tagSpec
	toggle    tagSpec

	loadingMessage string
	noDataMessage  string
	creditsLabel   string
	creditsAttrs   Attrs
	flagAttrs      Attrs
	popoverID      string
	popoverAttrs   Attrs
}

// Configurator renders widgets. It has no mutable state so a single
// instance can be shared between goroutines.
type Configurator struct {
	translator Translator
	popover    PopoverRenderer
	logger     Logger
	endpoints  Endpoints
	pluginName string
}

// ConfiguratorOption customizes a configurator.
type ConfiguratorOption func(*Configurator)

// WithEndpoints sets URLs of the lookup service. Empty URLs keep
// defaults.
func WithEndpoints(endpoints Endpoints) ConfiguratorOption {
	return func(c *Configurator) {
		c.endpoints = endpoints.withDefaults()
	}
}

// WithPluginName sets a name of the client-side plugin. Names which are
// not javascript identifiers are ignored.
func WithPluginName(name string) ConfiguratorOption {
	return func(c *Configurator) {
		if IsPluginName(name) {
			c.pluginName = name
		}
	}
}

// Configure renders a widget with default collaborators: English
// messages and bootstrap popover.
func Configure(options Options) Result {
	return defaultConfigurator.Configure(options)
}

// Configure renders placeholder markup and prepares plugin payload.
// This is a pure function of options: it never fails and equal options
// produce equal results.
func (c *Configurator) Configure(options Options) Result {
	opts := c.resolve(options)

	content := renderTag(opts.container.tag,
		renderTag(opts.loading.tag, opts.loadingMessage, opts.loading.attrs),
		opts.container.attrs)

	if options.ShowFlag {
		flag := renderImg(c.endpoints.FlagURL(opts.ip), opts.flagAttrs)

		if options.ShowPopover {
			content = c.popover.RenderPopover(PopoverSpec{
				ID:          opts.popoverID,
				Header:      opts.header,
				Content:     content,
				Toggle:      flag,
				ToggleTag:   opts.toggle.tag,
				ToggleAttrs: opts.toggle.attrs,
				Placement:   options.Popover.Placement,
				Size:        options.Popover.Size,
				Attrs:       opts.popoverAttrs,
			})
		} else {
			content = flag + content
		}
	}

	return Result{
		HTML: template.HTML(content), // nolint: gosec
		Binding: Binding{
			ElementID: opts.elementID,
			Plugin:    c.pluginName,
			Config:    c.pluginConfig(options, opts),
		},
	}
}

func (c *Configurator) pluginConfig(options Options, opts resolvedOptions) PluginConfig {
	catalog := NewFieldCatalog(c.translator)
	fields := catalog.Keys()

	if len(options.Fields) > 0 {
		fields = append([]string(nil), options.Fields...)

		for _, v := range fields {
			if _, ok := catalog.Label(v); !ok {
				c.logger.UnknownField(v)
			}
		}
	}

	rv := PluginConfig{
		Fields:        fields,
		DefaultFields: catalog,
		URL:           c.endpoints.Lookup,
		Params: Params{
			IP:       opts.ip,
			Position: options.ShowPosition,
		},
		NoData: renderTag(opts.noData.tag, opts.noDataMessage, opts.noData.attrs),
	}

	if options.ContentOptions != nil {
		rv.ContentOptions = options.ContentOptions.clone()
	}

	if options.ShowCredits {
		rv.Credits = renderLink(opts.creditsLabel, c.endpoints.Home, opts.creditsAttrs)
	}

	if options.ErrorData != "" {
		rv.ErrorData = renderTag(opts.errorData.tag, options.ErrorData, opts.errorData.attrs)
	}

	return rv
}

func (c *Configurator) resolve(options Options) resolvedOptions {
	rv := resolvedOptions{}

	if options.IP != "" {
		rv.ip = escapeHTML(options.IP)
	}

	rv.container.attrs = options.Container.Attrs.clone()
	rv.container.tag = rv.container.attrs.extract("tag", options.Container.Tag, defaultContainerTag)
	rv.elementID = rv.container.attrs.extract("id", options.Container.ID, "")

	if rv.elementID == "" {
		rv.elementID = elementIDPrefix + options.Fingerprint().String()[:8]
	}

	rv.container.attrs["id"] = rv.elementID

	rv.loading.attrs = options.Loading.Attrs.clone()
	rv.loading.tag = rv.loading.attrs.extract("tag", options.Loading.Tag, defaultLoadingTag)
	rv.loadingMessage = rv.loading.attrs.extract("message", options.Loading.Message,
		c.translator.Translate(MsgFetching))

	rv.noData.attrs = options.NoDataOptions.Attrs.clone()
	rv.noData.tag = rv.noData.attrs.extract("tag", options.NoDataOptions.Tag, defaultNoDataTag)

	switch {
	case options.NoData != "":
		rv.noDataMessage = options.NoData
	case rv.ip == "":
		rv.noDataMessage = c.translator.Translate(MsgNoDataUser)
	default:
		rv.noDataMessage = c.translator.Translate(MsgNoDataIP, "<kbd>"+rv.ip+"</kbd>")
	}

	rv.errorData.attrs = options.ErrorDataOptions.Attrs.clone()
	rv.errorData.tag = rv.errorData.attrs.extract("tag", options.ErrorDataOptions.Tag, defaultErrorDataTag)
	rv.errorData.attrs["title"] = rv.errorData.attrs.extract("title", options.ErrorDataOptions.Title,
		c.translator.Translate(MsgFetchError))

	rv.creditsAttrs = options.Credits.Attrs.clone()
	rv.creditsLabel = rv.creditsAttrs.extract("label", options.Credits.Label,
		c.translator.Translate(MsgRevalidate))

	defaultAlt := rv.ip
	if defaultAlt == "" {
		defaultAlt = c.translator.Translate(MsgNoFlag)
	}

	rv.flagAttrs = options.Flag.Attrs.clone()
	rv.flagAttrs["alt"] = rv.flagAttrs.extract("alt", options.Flag.Alt, defaultAlt)

	header := options.ContentHeader
	if header == "" {
		header = c.translator.Translate(MsgPositionDetails)
	}

	rv.header = options.ContentHeaderIcon + header

	rv.toggle.attrs = options.Popover.ToggleButton.Attrs.clone()
	rv.toggle.tag = rv.toggle.attrs.extract("tag", options.Popover.ToggleButton.Tag, popoverToggleTag)
	rv.toggle.attrs.setDefault("class", defaultToggleClass)
	rv.toggle.attrs.setDefault("style", defaultToggleStyle)

	rv.popoverAttrs = options.Popover.Attrs.clone()
	rv.popoverID = rv.popoverAttrs.extract("id", options.Popover.ID, rv.elementID+"-popover")

	return rv
}

// NewConfigurator creates a new configurator. nil collaborators are
// replaced with defaults: English translator, bootstrap popover and a
// logger which drops everything.
func NewConfigurator(translator Translator,
	popover PopoverRenderer,
	logger Logger,
	opts ...ConfiguratorOption) *Configurator {
	rv := &Configurator{
		translator: translator,
		popover:    popover,
		logger:     logger,
		endpoints:  DefaultEndpoints(),
		pluginName: DefaultPluginName,
	}

	if rv.translator == nil {
		rv.translator = NewTranslator(language.English)
	}

	if rv.popover == nil {
		rv.popover = BootstrapPopover()
	}

	if rv.logger == nil {
		rv.logger = NoopLogger()
	}

	for _, opt := range opts {
		opt(rv)
	}

	return rv
}
