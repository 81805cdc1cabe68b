package adapters

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tamil182006/AI-Stylist-manoj/internal/types"
)

func ajioCard(brand, title, price, image string) string {
	var b strings.Builder
	b.WriteString(`<div class="item"><a href="/p/4001">`)
	if image != "" {
		b.WriteString(`<img src="` + image + `"/>`)
	}
	b.WriteString(`<div class="brand">` + brand + `</div>`)
	b.WriteString(`<div class="nameCls">` + title + `</div>`)
	b.WriteString(`<span class="price">` + price + `</span>`)
	b.WriteString(`</a></div>`)
	return b.String()
}

func newAjioForTest() *AjioAdapter {
	return NewAjioAdapter(types.DefaultConfig(), logrus.New())
}

func TestAjioAdapter_SearchURL(t *testing.T) {
	a := newAjioForTest()

	assert.Equal(t, "https://www.ajio.com/search/?text=navy+blue+formal+shirt+men", a.SearchURL("navy blue formal shirt men"))
}

func TestAjioParse_FieldMapping(t *testing.T) {
	a := newAjioForTest()
	doc := docFromHTML(t, ajioCard("Netplay", "Checked Slim Fit Shirt", "₹1,099", "https://assets.ajio.com/1.jpg"))

	listings := a.parseSearchResults(doc, 10)

	require.Len(t, listings, 1)
	got := listings[0]
	assert.True(t, strings.HasPrefix(got.ID, "ajio-"))
	assert.Equal(t, "Netplay Checked Slim Fit Shirt", got.Name)
	assert.Equal(t, "Netplay", got.Brand)
	assert.Equal(t, "₹1,099", got.Price)
	assert.Equal(t, "https://assets.ajio.com/1.jpg", got.ImageURL)
	assert.Equal(t, "https://www.ajio.com/p/4001", got.BuyLink)
	assert.Equal(t, types.CategoryTop, got.Category)
	assert.Equal(t, "Ajio", got.Source)
}

func TestAjioParse_NormalizesProtocolRelativeImage(t *testing.T) {
	a := newAjioForTest()
	doc := docFromHTML(t, ajioCard("Netplay", "Checked Shirt", "₹999", "//assets.ajio.com/2.jpg"))

	listings := a.parseSearchResults(doc, 10)

	require.Len(t, listings, 1)
	assert.Equal(t, "https://assets.ajio.com/2.jpg", listings[0].ImageURL)
}

func TestAjioParse_DropsIncompleteCards(t *testing.T) {
	a := newAjioForTest()
	html := ajioCard("BrandA", "Shirt One", "₹100", "https://img/1.jpg") +
		ajioCard("BrandB", "Shirt Two", "₹200", "") + // no image
		`<div class="item"><a href="/p/5"><img src="https://img/3.jpg"/><div class="brand">BrandC</div></a></div>` + // no name
		ajioCard("BrandD", "Shirt Four", "₹400", "https://img/4.jpg")
	doc := docFromHTML(t, html)

	listings := a.parseSearchResults(doc, 10)

	require.Len(t, listings, 2)
	assert.Equal(t, "BrandA Shirt One", listings[0].Name)
	assert.Equal(t, "BrandD Shirt Four", listings[1].Name)
}

func TestAjioParse_HonorsLimit(t *testing.T) {
	a := newAjioForTest()
	var html strings.Builder
	for _, title := range []string{"One", "Two", "Three", "Four"} {
		html.WriteString(ajioCard("Brand", "Shirt "+title, "₹100", "https://img/x.jpg"))
	}
	doc := docFromHTML(t, html.String())

	listings := a.parseSearchResults(doc, 2)

	assert.Len(t, listings, 2)
}
