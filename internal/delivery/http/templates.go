package http

import "html/template"

const indexTemplateName = "index.html"

var indexTemplate = template.Must(template.New(indexTemplateName).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>PriceLens</title>
</head>
<body>
<h1>PriceLens</h1>
<form method="post" action="/">
  <input type="url" name="product_url" placeholder="Amazon or Flipkart product URL" value="{{.InputURL}}" size="80">
  <button type="submit">Compare</button>
</form>
{{with .Result}}
  {{if .Error}}<p class="error">{{.Error}}</p>{{end}}
  {{if .Notice}}<p class="notice">{{.Notice}}</p>{{end}}
  {{with .Listing}}
  <section class="listing">
    <h2>{{if .Name}}{{.Name}}{{else}}N/A{{end}}</h2>
    <p>Price: {{if $.Result.ListingPriceText}}{{$.Result.ListingPriceText}}{{else}}N/A{{end}}</p>
    {{with $.Result.Product}}<p>From <a href="{{.RawURL}}">{{.Domain}}</a></p>{{end}}
    {{range .Thumbnails}}<img src="{{.}}" alt="" width="96">{{end}}
    {{if .TrackerURL}}<p><a href="{{.TrackerURL}}">Price history</a></p>{{end}}
  </section>
  {{end}}
  {{with .BestOffer}}
  <p class="best">Lowest price: <strong>{{.PriceText}}</strong> at <a href="{{.Link}}">{{.Seller}}</a>{{if .IsOriginal}} (original listing){{end}}</p>
  {{end}}
  {{if .Offers}}
  <table class="offers">
    <tr><th>Seller</th><th>Title</th><th>Price</th><th></th></tr>
    {{range .Offers}}
    <tr><td>{{.Seller}}</td><td>{{.Title}}</td><td>{{.PriceText}}</td><td><a href="{{.Link}}">Buy</a></td></tr>
    {{end}}
  </table>
  {{end}}
{{end}}
</body>
</html>
`))
