package extract

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const trackerPageURL = "https://buyhatke.com/amazon-acme-phone-x-price-in-india-63-98765"

// trackerPage mirrors the structure of a live tracker page
const trackerPage = `<html><body>
<section id="onlineStoresList" class="grid">
  <h2>Found 3 more prices</h2>
  <ul class="my-4 grid grid-cols-1 gap-2">
    <li>
      <div class="flex gap-2 items-center">
        <img class="w-6 h-6 rounded-full" alt="Croma" src="/stores/croma.png">
      </div>
      <p class="capitalize" title="Acme Phone X &amp;amp; Case">
        <span class="hidden md:inline">Acme Phone X &amp; Case (Blue)</span>
        <span class="md:hidden">Acme X</span>
      </p>
      <div class="flex justify-between items-center">
        <span class="font-bold">₹ 12,499</span>
        <a class="btn text-primary" href="/redirect?store=croma">Buy Now</a>
      </div>
    </li>
    <li>
      <div class="flex items-center">
        <img class="rounded-full" src="https://cdn.example.com/icons/reliancedigital1.png">
      </div>
      <p class="capitalize">
        <span class="hidden md:inline">Acme Phone X Blue 128GB</span>
        <span class="md:hidden">Acme X</span>
      </p>
      <div class="flex justify-between">
        <p>Now at ₹11,999.00 only</p>
        <a href="https://www.reliancedigital.in/acme">Buy</a>
      </div>
    </li>
    <li>
      <p class="capitalize">Acme Phone</p>
      <div class="flex justify-between">
        <span class="font-bold">₹13,100</span>
      </div>
      <a href="https://tracking.buyhatke.com/go?link=https%3A%2F%2Fwww.flipkart.com%2Facme">Buy it</a>
    </li>
    <li>
      <p class="capitalize">Sponsored</p>
    </li>
  </ul>
</section>
</body></html>`

func parseFragment(t *testing.T, fragment string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body><ul><li>" + fragment + "</li></ul></body></html>"))
	require.NoError(t, err)
	return doc.Find("li").First()
}
