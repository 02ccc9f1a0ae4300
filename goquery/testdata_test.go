package goquery_test

// currentListingHTML mirrors the current listing page markup.
const currentListingHTML = `<!DOCTYPE html>
<html>
<head><title>Sunny 2BR - apts/housing for rent</title></head>
<body>
<section class="body">
  <h1 class="postingtitle">
    <span class="postingtitletext">
      <span id="titletextonly">Sunny 2BR</span>
      <span class="price">$2,400</span>
      <span class="housing">/ 2br - 900ft2 -</span>
    </span>
  </h1>
  <div class="mapAndAttrs">
    <div class="mapbox"><div class="mapaddress">123 Main St</div></div>
    <div class="attrgroup"><span class="attr important">2BR / 1Ba</span></div>
    <div class="attrgroup">
      <span>apartment</span><br>
      <span>laundry in bldg</span>
    </div>
  </div>
  <section id="postingbody">
    <div class="print-information print-qrcode-container">
      <p class="print-qrcode-label">QR Code Link to This Post</p>
    </div>
    Bright unit near the park.<br>
    Sorry, no pets.<br><br>
    Call Dana at 555-0100.
  </section>
  <div class="postinginfos">
    <p class="postinginfo">post id: 7712345678</p>
    <p class="postinginfo">posted: 2024-05-01 10:00</p>
  </div>
</section>
<div class="related"><span class="price">$999</span></div>
</body>
</html>`

// legacyListingHTML mirrors the older class-only markup.
const legacyListingHTML = `<html><body>
<h2 class="postingtitle">Cozy studio - $1,200</h2>
<span class="price">$1,200</span>
<div class="mapbox"><div class="showaddress">45 Oak Ave</div></div>
<p class="attrgroup"><span><b>1</b>BR / <b>1</b>Ba</span></p>
<section id="postingbody">Cats are OK.</section>
<div class="postinginfos">post id: 42</div>
</body></html>`
