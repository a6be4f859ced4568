package widget

import "strings"

const (
	DefaultHomeURL   = "http://www.hostip.info/"
	DefaultLookupURL = "http://api.hostip.info/get_json.php"
	DefaultFlagURL   = "http://api.hostip.info/flag.php"
)

// Endpoints is a set of URLs of the lookup service. Widget never calls
// them, it only renders them into markup and plugin payload.
type Endpoints struct {
	Home   string `json:"home" toml:"home"`
	Lookup string `json:"lookup" toml:"lookup"`
	Flag   string `json:"flag" toml:"flag"`
}

// FlagURL returns URL of a flag image. escapedIP is already
// HTML-escaped; empty value means 'IP of a requester'.
func (e Endpoints) FlagURL(escapedIP string) string {
	if escapedIP == "" {
		return e.Flag
	}

	separator := "?"
	if strings.Contains(e.Flag, "?") {
		separator = "&"
	}

	return e.Flag + separator + "ip=" + escapedIP
}

func (e Endpoints) withDefaults() Endpoints {
	if e.Home == "" {
		e.Home = DefaultHomeURL
	}

	if e.Lookup == "" {
		e.Lookup = DefaultLookupURL
	}

	if e.Flag == "" {
		e.Flag = DefaultFlagURL
	}

	return e
}

func DefaultEndpoints() Endpoints {
	return Endpoints{}.withDefaults()
}
