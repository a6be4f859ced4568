package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/9seconds/ipinfo-widget/widget"
	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"
)

type UtilsTestSuite struct {
	suite.Suite

	logs       *bytes.Buffer
	log        *logger
	conf       *config
	configurer widget.Configurer
}

func (suite *UtilsTestSuite) SetupTest() {
	suite.logs = &bytes.Buffer{}
	suite.log = newLogger(suite.logs, true)

	conf, err := parseConfig(afero.NewMemMapFs(), "")
	suite.Nil(err)

	suite.conf = conf

	configurer, err := makeConfigurer(conf, "", suite.log)
	suite.Nil(err)

	suite.configurer = configurer
}

func (suite *UtilsTestSuite) TearDownTest() {
	if closer, ok := suite.configurer.(*widget.CachingConfigurator); ok {
		closer.Close()
	}
}

func (suite *UtilsTestSuite) TestMakeConfigurerIncorrectLanguage() {
	_, err := makeConfigurer(suite.conf, "not a language", suite.log)
	suite.NotNil(err)
}

func (suite *UtilsTestSuite) TestMakeConfigurerLanguage() {
	configurer, err := makeConfigurer(suite.conf, "ru", suite.log)
	suite.Nil(err)

	defer configurer.(*widget.CachingConfigurator).Close()

	result := configurer.Configure(widget.Options{})
	suite.Contains(string(result.HTML), "Получение информации о местоположении...")
}

func (suite *UtilsTestSuite) TestRenderSingle() {
	widgets, err := renderWidgets(suite.configurer, suite.conf.Widget, nil, suite.log)
	suite.Nil(err)
	suite.Len(widgets.results, 1)
	suite.Equal(1, widgets.registrar.Len())
	suite.Contains(suite.logs.String(), `"event_name":"render"`)
}

func (suite *UtilsTestSuite) TestRenderMany() {
	base := suite.conf.Widget
	base.Container.ID = "geo"

	widgets, err := renderWidgets(suite.configurer, base, []string{"1.1.1.1", "8.8.8.8"}, suite.log)
	suite.Nil(err)
	suite.Len(widgets.results, 2)

	suite.Equal("geo-1", widgets.results[0].Binding.ElementID)
	suite.Equal("1.1.1.1", widgets.results[0].Binding.Config.Params.IP)
	suite.Equal("geo-2", widgets.results[1].Binding.ElementID)
	suite.Equal("8.8.8.8", widgets.results[1].Binding.Config.Params.IP)
}

func (suite *UtilsTestSuite) TestRenderDuplicate() {
	_, err := renderWidgets(suite.configurer, suite.conf.Widget, []string{"1.1.1.1", "1.1.1.1"}, suite.log)
	suite.NotNil(err)
}

func (suite *UtilsTestSuite) TestRenderInvalidIP() {
	_, err := renderWidgets(suite.configurer, suite.conf.Widget, []string{"localhost"}, suite.log)
	suite.Nil(err)
	suite.Contains(suite.logs.String(), `"ip":"localhost"`)
	suite.Contains(suite.logs.String(), "IP address looks incorrect")
}

func (suite *UtilsTestSuite) TestFragment() {
	widgets, err := renderWidgets(suite.configurer, widget.Options{}, []string{"1.1.1.1"}, suite.log)
	suite.Nil(err)

	fragment := string(widgets.Fragment())
	elementID := widgets.results[0].Binding.ElementID

	suite.True(strings.HasPrefix(fragment, string(widgets.results[0].HTML)))
	suite.Contains(fragment, "<script>jQuery(function () {")
	suite.Contains(fragment, `jQuery("#`+elementID+`").kvIpInfo(`)
}

func (suite *UtilsTestSuite) TestPage() {
	widgets, err := renderWidgets(suite.configurer, suite.conf.Widget, []string{"1.1.1.1", "8.8.8.8"}, suite.log)
	suite.Nil(err)

	page, err := widgets.Page(suite.conf, "")
	suite.Nil(err)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	suite.Nil(err)

	suite.Equal(DefaultPageTitle, doc.Find("title").Text())
	suite.Equal("en", doc.Find("html").AttrOr("lang", ""))
	suite.Equal(1, doc.Find(`link[href="css/kv-ipinfo.css"]`).Length())
	suite.Equal(1, doc.Find(`script[src="js/kv-ipinfo.js"]`).Length())

	for _, v := range widgets.results {
		suite.Equal(1, doc.Find("#"+v.Binding.ElementID).Length())
	}

	inline := doc.Find("script:not([src])")
	suite.Equal(1, inline.Length())
	suite.Contains(inline.Text(), ".kvIpInfo(")
}

func (suite *UtilsTestSuite) TestPayload() {
	widgets, err := renderWidgets(suite.configurer, suite.conf.Widget, []string{"1.1.1.1"}, suite.log)
	suite.Nil(err)

	data, err := widgets.Payload()
	suite.Nil(err)

	items := []map[string]interface{}{}
	suite.Nil(json.Unmarshal(data, &items))
	suite.Len(items, 1)

	suite.Equal(widgets.results[0].Binding.ElementID, items[0]["element_id"])
	suite.Equal(widget.DefaultPluginName, items[0]["plugin"])

	pluginConfig := items[0]["config"].(map[string]interface{})
	suite.Equal(widget.DefaultLookupURL, pluginConfig["url"])
	suite.Equal(map[string]interface{}{"ip": "1.1.1.1", "position": true}, pluginConfig["params"])
}

func (suite *UtilsTestSuite) TestWriteOutputStdout() {
	fs := afero.NewMemMapFs()
	stdout := &bytes.Buffer{}

	suite.Nil(writeOutput(fs, stdout, "", []byte("data")))
	suite.Equal("data", stdout.String())
}

func (suite *UtilsTestSuite) TestWriteOutputFile() {
	fs := afero.NewMemMapFs()
	stdout := &bytes.Buffer{}

	suite.Nil(writeOutput(fs, stdout, "/out/dir/widget.html", []byte("data")))
	suite.Empty(stdout.String())

	content, err := afero.ReadFile(fs, "/out/dir/widget.html")
	suite.Nil(err)
	suite.Equal("data", string(content))
}

func (suite *UtilsTestSuite) TestWriteOutputReadOnly() {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	suite.NotNil(writeOutput(fs, &bytes.Buffer{}, "/widget.html", []byte("data")))
}

func TestUtils(t *testing.T) {
	suite.Run(t, &UtilsTestSuite{})
}
