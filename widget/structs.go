package widget

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/net/html"
)

const (
	// DefaultErrorData is a markup shown by plugin if lookup has failed.
	DefaultErrorData = `<i class="glyphicon glyphicon-exclamation-sign text-danger"></i>`

	// DefaultContentHeaderIcon is prepended to a popover header.
	DefaultContentHeaderIcon = `<i class="glyphicon glyphicon-map-marker"></i> `

	// DefaultPluginName is a name of jQuery plugin which refreshes the
	// widget in browser.
	DefaultPluginName = "kvIpInfo"

	elementIDPrefix = "ipinfo-"
)

var fingerprintNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte(DefaultHomeURL))

// Attrs is a set of HTML attributes.
type Attrs map[string]string

// MarshalJSON is to conform json.Marshaller interface. Absent bag is
// an empty object, not null: plugin iterates over it.
func (a Attrs) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("{}"), nil
	}

	return json.Marshal(map[string]string(a))
}

// UnmarshalJSON replaces a bag: decoding over defaults drops default
// attributes instead of merging with them.
func (a *Attrs) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*a = nil

		return nil
	}

	value := map[string]string{}
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	*a = value

	return nil
}

// UnmarshalTOML is the same as UnmarshalJSON but for toml tables.
func (a *Attrs) UnmarshalTOML(data interface{}) error {
	table, ok := data.(map[string]interface{})
	if !ok {
		return fmt.Errorf("attributes should be a table, got %T", data)
	}

	value := make(Attrs, len(table))

	for k, v := range table {
		str, ok := v.(string)
		if !ok {
			return fmt.Errorf("attribute %s should be a string, got %T", k, v)
		}

		value[k] = str
	}

	*a = value

	return nil
}

func (a Attrs) clone() Attrs {
	rv := make(Attrs, len(a))

	for k, v := range a {
		rv[k] = v
	}

	return rv
}

// extract removes a reserved key from attributes. Explicit value wins,
// then a value of the key, then fallback.
func (a Attrs) extract(key, explicit, fallback string) string {
	value, ok := a[key]
	delete(a, key)

	switch {
	case explicit != "":
		return explicit
	case ok && value != "":
		return value
	}

	return fallback
}

func (a Attrs) setDefault(key, value string) {
	if _, ok := a[key]; !ok {
		a[key] = value
	}
}

func (a Attrs) htmlAttributes() []html.Attribute {
	keys := make([]string, 0, len(a))

	for k := range a {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	rv := make([]html.Attribute, 0, len(keys))

	for _, k := range keys {
		rv = append(rv, html.Attribute{Key: k, Val: a[k]})
	}

	return rv
}

// ContainerConfig describes a root element of the widget. ID is a DOM
// id which plugin is bound to. If it is empty, a deterministic one is
// generated from options.
type ContainerConfig struct {
	Tag   string `json:"tag" toml:"tag"`
	ID    string `json:"id" toml:"id"`
	Attrs Attrs  `json:"attrs" toml:"attrs"`
}

// LoadingConfig describes a loading placeholder.
type LoadingConfig struct {
	Tag     string `json:"tag" toml:"tag"`
	Message string `json:"message" toml:"message"`
	Attrs   Attrs  `json:"attrs" toml:"attrs"`
}

// CreditsConfig describes a link to the lookup service.
type CreditsConfig struct {
	Label string `json:"label" toml:"label"`
	Attrs Attrs  `json:"attrs" toml:"attrs"`
}

// NoDataConfig describes a container of a message shown if lookup
// service knows nothing about IP.
type NoDataConfig struct {
	Tag   string `json:"tag" toml:"tag"`
	Attrs Attrs  `json:"attrs" toml:"attrs"`
}

// ErrorDataConfig describes a container of error markup. Title is a
// tooltip of this container.
type ErrorDataConfig struct {
	Tag   string `json:"tag" toml:"tag"`
	Title string `json:"title" toml:"title"`
	Attrs Attrs  `json:"attrs" toml:"attrs"`
}

// FlagConfig describes a flag image.
type FlagConfig struct {
	Alt   string `json:"alt" toml:"alt"`
	Attrs Attrs  `json:"attrs" toml:"attrs"`
}

// ToggleButtonConfig describes an element which opens a popover.
type ToggleButtonConfig struct {
	Tag   string `json:"tag" toml:"tag"`
	Attrs Attrs  `json:"attrs" toml:"attrs"`
}

// PopoverConfig describes a popover with details.
type PopoverConfig struct {
	ID           string             `json:"id" toml:"id"`
	Placement    string             `json:"placement" toml:"placement"`
	Size         string             `json:"size" toml:"size"`
	ToggleButton ToggleButtonConfig `json:"toggle_button" toml:"toggle_button"`
	Attrs        Attrs              `json:"attrs" toml:"attrs"`
}

// Options is a declarative description of the widget. Zero value is
// valid and renders a bare placeholder; DefaultOptions returns a widget
// with flag, popover and credits.
type Options struct {
	IP string `json:"ip" toml:"ip"`

	ShowFlag     bool `json:"show_flag" toml:"show_flag"`
	ShowPosition bool `json:"show_position" toml:"show_position"`
	ShowPopover  bool `json:"show_popover" toml:"show_popover"`
	ShowCredits  bool `json:"show_credits" toml:"show_credits"`

	Container ContainerConfig `json:"container" toml:"container"`
	Loading   LoadingConfig   `json:"loading" toml:"loading"`
	Credits   CreditsConfig   `json:"credits" toml:"credits"`

	// NoData is used verbatim if set.
	NoData        string       `json:"no_data" toml:"no_data"`
	NoDataOptions NoDataConfig `json:"no_data_options" toml:"no_data_options"`

	// Empty ErrorData means that error indicator is never shown.
	ErrorData        string          `json:"error_data" toml:"error_data"`
	ErrorDataOptions ErrorDataConfig `json:"error_data_options" toml:"error_data_options"`

	// Fields is an ordered list of field keys to display. Empty means
	// all keys of the field catalog.
	Fields []string `json:"fields" toml:"fields"`

	Popover PopoverConfig `json:"popover" toml:"popover"`
	Flag    FlagConfig    `json:"flag" toml:"flag"`

	ContentHeader     string `json:"content_header" toml:"content_header"`
	ContentHeaderIcon string `json:"content_header_icon" toml:"content_header_icon"`
	ContentOptions    Attrs  `json:"content_options" toml:"content_options"`
}

// Fingerprint returns a name-based UUID of options. Equal options have
// equal fingerprints.
func (o Options) Fingerprint() uuid.UUID {
	data, _ := json.Marshal(o)

	return uuid.NewSHA1(fingerprintNamespace, data)
}

// DefaultOptions returns options of a full-featured widget.
func DefaultOptions() Options {
	return Options{
		ShowFlag:     true,
		ShowPosition: true,
		ShowPopover:  true,
		ShowCredits:  true,
		Loading: LoadingConfig{
			Attrs: Attrs{"class": "kv-ip-loading"},
		},
		Credits: CreditsConfig{
			Attrs: Attrs{"class": "btn btn-xs center-block", "target": "_blank"},
		},
		NoDataOptions: NoDataConfig{
			Attrs: Attrs{"class": "alert alert-danger text-center"},
		},
		ErrorData: DefaultErrorData,
		ErrorDataOptions: ErrorDataConfig{
			Attrs: Attrs{"class": "img-thumbnail btn-default", "style": "padding:0 6px"},
		},
		Flag: FlagConfig{
			Attrs: Attrs{"style": "height:18px"},
		},
		ContentHeaderIcon: DefaultContentHeaderIcon,
		ContentOptions:    Attrs{"class": "table"},
	}
}

// Params are query parameters of the lookup endpoint.
type Params struct {
	IP       string `json:"ip,omitempty"`
	Position bool   `json:"position,omitempty"`
}

// PluginConfig is a payload for the client-side plugin. Names of JSON
// fields are the names plugin reads.
type PluginConfig struct {
	Fields         []string     `json:"fields"`
	DefaultFields  FieldCatalog `json:"defaultFields"`
	URL            string       `json:"url"`
	Params         Params       `json:"params"`
	Credits        string       `json:"credits"`
	ContentOptions Attrs        `json:"contentOptions"`
	NoData         string       `json:"noData"`
	ErrorData      string       `json:"errorData"`
}

// Binding is a directive to attach Config to the element with id
// ElementID by invoking a plugin named Plugin.
type Binding struct {
	ElementID string
	Plugin    string
	Config    PluginConfig
}

// Result is an outcome of Configure. Treat it as read-only: cached
// results are shared.
type Result struct {
	HTML    template.HTML
	Binding Binding
}

func (r Result) clone() Result {
	config := &r.Binding.Config

	if config.Fields != nil {
		config.Fields = append([]string(nil), config.Fields...)
	}

	if config.DefaultFields != nil {
		config.DefaultFields = append(FieldCatalog(nil), config.DefaultFields...)
	}

	if config.ContentOptions != nil {
		config.ContentOptions = config.ContentOptions.clone()
	}

	return r
}

// Register hands the binding over to a registrar.
func (r Result) Register(registrar Registrar) error {
	return registrar.Register(r.Binding)
}

// PopoverSpec is an input of PopoverRenderer. Toggle, Header and
// Content contain markup.
type PopoverSpec struct {
	ID          string
	Header      string
	Content     string
	Toggle      string
	ToggleTag   string
	ToggleAttrs Attrs
	Placement   string
	Size        string
	Attrs       Attrs
}
