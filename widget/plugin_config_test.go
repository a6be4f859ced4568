package widget_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/9seconds/ipinfo-widget/widget"
	"github.com/qri-io/jsonschema"
	"github.com/stretchr/testify/suite"
)

var jsonSchemaPluginConfig = func() *jsonschema.Schema {
	data := `{
      "type": "object",
      "required": [
        "fields",
        "defaultFields",
        "url",
        "params",
        "credits",
        "contentOptions",
        "noData",
        "errorData"
      ],
      "additionalProperties": false,
      "properties": {
        "fields": {
          "type": "array",
          "items": {
            "type": "string",
            "minLength": 1
          }
        },
        "defaultFields": {
          "type": "object",
          "required": [
            "country_code",
            "country_name",
            "city",
            "ip",
            "lat",
            "lng"
          ],
          "additionalProperties": false,
          "properties": {
            "country_code": {"type": "string", "minLength": 1},
            "country_name": {"type": "string", "minLength": 1},
            "city": {"type": "string", "minLength": 1},
            "ip": {"type": "string", "minLength": 1},
            "lat": {"type": "string", "minLength": 1},
            "lng": {"type": "string", "minLength": 1}
          }
        },
        "url": {
          "type": "string",
          "minLength": 1
        },
        "params": {
          "type": "object",
          "additionalProperties": false,
          "properties": {
            "ip": {"type": "string", "minLength": 1},
            "position": {"type": "boolean"}
          }
        },
        "credits": {
          "type": "string"
        },
        "contentOptions": {
          "type": "object",
          "additionalProperties": {
            "type": "string"
          }
        },
        "noData": {
          "type": "string",
          "minLength": 1
        },
        "errorData": {
          "type": "string"
        }
      }
    }`

	rv := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(data), rv); err != nil {
		panic(err)
	}

	return rv
}()

type PluginConfigTestSuite struct {
	suite.Suite

	opts widget.Options
}

func (suite *PluginConfigTestSuite) SetupTest() {
	suite.opts = widget.DefaultOptions()
	suite.opts.Container.ID = "geo"
}

func (suite *PluginConfigTestSuite) marshal() []byte {
	data, err := json.Marshal(widget.Configure(suite.opts).Binding.Config)
	suite.NoError(err)

	return data
}

func (suite *PluginConfigTestSuite) TestSchemaDefault() {
	errs, err := jsonSchemaPluginConfig.ValidateBytes(context.Background(), suite.marshal())

	suite.NoError(err)
	suite.Empty(errs)
}

func (suite *PluginConfigTestSuite) TestSchemaZero() {
	suite.opts = widget.Options{}

	data := suite.marshal()
	errs, err := jsonSchemaPluginConfig.ValidateBytes(context.Background(), data)

	suite.NoError(err)
	suite.Empty(errs)
	suite.Contains(string(data), `"contentOptions":{}`)
	suite.Contains(string(data), `"params":{}`)
	suite.Contains(string(data), `"errorData":""`)
}

func (suite *PluginConfigTestSuite) TestParams() {
	suite.opts.IP = "1.2.3.4"

	suite.Contains(string(suite.marshal()), `"params":{"ip":"1.2.3.4","position":true}`)
}

func (suite *PluginConfigTestSuite) TestDefaultFieldsOrder() {
	data := string(suite.marshal())

	suite.Contains(data, `"defaultFields":{"country_code":"Country Code",`+
		`"country_name":"Country Name","city":"City","ip":"IP Address",`+
		`"lat":"Latitude","lng":"Longitude"}`)
	suite.True(strings.Index(data, `"fields"`) < strings.Index(data, `"defaultFields"`))
}

func TestPluginConfig(t *testing.T) {
	suite.Run(t, &PluginConfigTestSuite{})
}
