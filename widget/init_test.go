package widget_test

import (
	"html/template"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/mock"
	"golang.org/x/net/html"
)

type LoggerMock struct {
	mock.Mock
}

func (m *LoggerMock) UnknownField(key string) {
	m.Called(key)
}

func parseHTML(markup template.HTML) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(markup)))
	if err != nil {
		panic(err)
	}

	return doc
}

func escape(text string) string {
	return html.EscapeString(text)
}
